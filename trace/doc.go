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

// Package trace drives the hardware models from a text file of per-cycle
// signal values. It stands in for the logic simulator, which is useful when
// checking the behaviour of the models in isolation.
//
// Each line of the trace is one call to one model. Fields are separated by
// whitespace and use the character form of the logic package:
//
//	# clk we din      addr                spc smp  dsp
//	aram  1   1  0101_1010 0000_0000_1111_0101 000 0101 0000000
//
//	# clk rdy right               left
//	audio 1   1   0111_1111_1111_1111 1000_0000_0000_0000
//
// Blank lines and lines starting with # are ignored. For every aram line the
// four output ports are written to the output, separated by a space, in the
// order: data out, SPC register, SMP register, DSP register.
package trace
