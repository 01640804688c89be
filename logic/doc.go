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

// Package logic converts between the nine-valued signals used by a digital
// logic simulator and plain unsigned integers.
//
// Every wire in the simulator carries one of nine states. Only two of those
// states, Forcing1 and Weak1, are considered to be high when decoding a
// Vector. Everything else, including the unknown and high impedance states,
// decodes as zero:
//
//	v, _ := logic.Parse("01HLXZ-U")
//	fmt.Printf("%#02x", logic.Decode(v))   // 0x60
//
// Encoding only ever produces the strongly driven states Forcing0 and
// Forcing1. The conversion is therefore lossy and re-encoding a decoded
// value will not reproduce the original Vector unless it was already
// strongly driven.
//
// Vectors are ordered most-significant bit first, which is the order the
// simulator presents a std_ulogic_vector declared with a "downto" range.
package logic
