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

// Package aram models the memory and register file of the sound processor as
// a passive bus responder. The ARAM type is called once per simulated clock
// cycle with the current value of its input ports and drives new values onto
// its output ports.
//
// There are four decoders sharing the same clock. The main decoder reads and
// writes the 64KiB memory image. Three narrower decoders read the processor
// registers (SPC), the DSP registers and the SMP registers. The SMP
// registers are not separate storage. They are the sixteen bytes of the
// memory image starting at address 0x00f0.
//
// The initial state of the memory and registers comes from a snapshot file,
// which is loaded on the first call to Step() if Load() or Attach() has not
// been called already. If the snapshot cannot be loaded the memory and
// registers remain zeroed and the model continues to respond to the bus.
package aram
