// This file is part of smpsim.
//
// smpsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// smpsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with smpsim.  If not, see <https://www.gnu.org/licenses/>.

package snapshot

// offsets and sizes of the regions in a snapshot file.
const (
	OriginRegisters = 0x25
	SizeRegisters   = 7

	OriginRAM = 0x100
	SizeRAM   = 0x10000

	// the DSP registers immediately follow the memory image
	OriginDSP = OriginRAM + SizeRAM
	SizeDSP   = 128

	OriginOverlay = 0x101c0
	SizeOverlay   = 64

	// the address in the memory image that the overlay is copied to
	OverlayAddress = 0xffc0

	// the minimum length of a usable snapshot file
	MinimumSize = OriginOverlay + SizeOverlay
)

// index of each processor register in the Registers array.
const (
	PCLow = iota
	PCHigh
	A
	X
	Y
	PSW
	SP
)

// signature is the text at the start of a well formed file.
const signature = "SNES-SPC700 Sound File Data"

// ID666 text tag locations.
const (
	originTagFlag = 0x23
	hasTags       = 0x1a

	originSong     = 0x2e
	originGame     = 0x4e
	originDumper   = 0x6e
	originComments = 0x7e
	originArtist   = 0xb1
)
