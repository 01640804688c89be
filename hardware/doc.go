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

// Package hardware is the base package for the behavioural models of the
// sound subsystem. Each sub-package models one component and is driven by a
// simulator cycle by cycle through a Ports structure.
//
// The aram package models the audio RAM and the register windows of the
// SPC700, SMP and DSP. The audio package captures the stereo samples
// produced by the DSP.
package hardware
