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

import (
	"io"

	"github.com/jetsetilly/smpsim/curated"
)

// Write the snapshot to an io.Writer in the same layout that Read()
// expects. The memory image from 0xffc0 is written to both the main image
// and the overlay region. Tags are not written.
func (s *Snapshot) Write(w io.Writer) error {
	data := make([]byte, MinimumSize)
	copy(data, signature)
	copy(data[OriginRegisters:], s.Registers[:])
	copy(data[OriginRAM:], s.RAM[:])
	copy(data[OriginDSP:], s.DSP[:])
	copy(data[OriginOverlay:], s.RAM[OverlayAddress:])

	_, err := w.Write(data)
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}
	return nil
}
