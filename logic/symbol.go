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

package logic

import (
	"unicode"

	"github.com/pkg/errors"
)

// Symbol is the state of a single wire. The numeric values match the
// position of each state in the std_ulogic enumeration, which is how the
// simulator passes them across the foreign function boundary.
type Symbol uint8

// List of valid Symbol values.
const (
	Uninitialized Symbol = iota
	ForcingUnknown
	Forcing0
	Forcing1
	HighImpedance
	WeakUnknown
	Weak0
	Weak1
	DontCare

	numSymbols
)

// the character used by hardware description languages for each state
var symbolChars = [numSymbols]rune{'U', 'X', '0', '1', 'Z', 'W', 'L', 'H', '-'}

func (s Symbol) String() string {
	if s >= numSymbols {
		return "?"
	}
	return string(symbolChars[s])
}

// IsHigh returns true if the symbol decodes as a one bit.
func (s Symbol) IsHigh() bool {
	return s == Forcing1 || s == Weak1
}

// IsLow returns true if the symbol is a driven zero, either strong or weak.
//
// Note that IsLow() is not the inverse of IsHigh(). The unknown, high
// impedance and don't care states are neither high nor low.
func (s Symbol) IsLow() bool {
	return s == Forcing0 || s == Weak0
}

// FromBool returns the strongly driven symbol for the boolean value.
func FromBool(b bool) Symbol {
	if b {
		return Forcing1
	}
	return Forcing0
}

// ParseSymbol returns the Symbol for the character form of a state. Letter
// states are case insensitive.
func ParseSymbol(r rune) (Symbol, error) {
	r = unicode.ToUpper(r)
	for i, c := range symbolChars {
		if c == r {
			return Symbol(i), nil
		}
	}
	return Uninitialized, errors.Errorf("unrecognised symbol %q", r)
}
