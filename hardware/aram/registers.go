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

package aram

import "github.com/jetsetilly/smpsim/snapshot"

// the first address of the SMP register window in the memory image
const smpRegisterOrigin = 0x00f0

// noRegister indicates an SPC register address with no backing register
const noRegister = -1

// spcRegisters maps the three bit SPC register address to an index in the
// register scratch. the scratch is in snapshot file order, which is not the
// same as the address order.
var spcRegisters = [1 << WidthSPCRegAddr]int{
	snapshot.A,
	snapshot.X,
	snapshot.Y,
	snapshot.PCLow,
	snapshot.PCHigh,
	snapshot.PSW,
	snapshot.SP,
	noRegister,
}

// SPCRegister returns the processor register for the SPC register address.
// Addresses without a register return zero.
func (m *ARAM) SPCRegister(address uint8) uint8 {
	idx := spcRegisters[address&0x07]
	if idx == noRegister {
		return 0
	}
	return m.registers[idx]
}

// DSPRegister returns the DSP register for the seven bit address.
func (m *ARAM) DSPRegister(address uint8) uint8 {
	return m.dsp[address&0x7f]
}

// SMPRegister returns the SMP register for the four bit address. SMP
// registers are an alias for part of the memory image.
func (m *ARAM) SMPRegister(address uint8) uint8 {
	return m.Peek(smpRegisterOrigin + uint16(address&0x0f))
}
