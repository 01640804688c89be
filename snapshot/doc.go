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

// Package snapshot reads the fixed layout binary file that supplies the
// initial contents of the sound processor's memory and registers.
//
// The layout is that of an SPC700 sound file:
//
//	offset   length  content
//	0x00025  7       processor registers: PC low, PC high, A, X, Y, PSW, SP
//	0x00100  65536   memory image 0x0000 to 0xffff
//	0x10100  128     DSP registers
//	0x101c0  64      overlay for memory image 0xffc0 to 0xffff
//
// The text header and the ID666 tags are parsed when present but neither is
// required. A file that does not start with the expected signature is loaded
// anyway and the mismatch logged.
package snapshot
