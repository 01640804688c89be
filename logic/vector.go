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
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Vector is an ordered sequence of symbols, most-significant bit first.
type Vector []Symbol

func (v Vector) String() string {
	s := strings.Builder{}
	for _, b := range v {
		s.WriteString(b.String())
	}
	return s.String()
}

// Decode folds the vector into an unsigned integer. Symbols that are not
// high contribute a zero bit. Vectors longer than 64 symbols lose their most
// significant bits.
func Decode(v Vector) uint64 {
	var d uint64
	for _, b := range v {
		d <<= 1
		if b.IsHigh() {
			d |= 1
		}
	}
	return d
}

// Signed16 decodes the vector and interprets the lower sixteen bits as a
// two's complement value.
func Signed16(v Vector) int16 {
	return int16(uint16(Decode(v)))
}

// Encode writes value into the vector in place. The width of the vector
// determines how many bits of value are used. Only Forcing0 and Forcing1 are
// ever written.
func Encode(value uint64, v Vector) {
	for i := range v {
		v[i] = FromBool(value&(1<<uint(len(v)-1-i)) != 0)
	}
}

// NewVector allocates a vector of the specified width and encodes value into
// it.
func NewVector(value uint64, width int) Vector {
	v := make(Vector, width)
	Encode(value, v)
	return v
}

// Parse converts the character form of a vector, eg. "01ZX", into a Vector.
// Underscores may be used to separate groups of symbols and are ignored.
func Parse(s string) (Vector, error) {
	v := make(Vector, 0, len(s))
	for i, r := range s {
		if r == '_' {
			continue
		}
		if unicode.IsSpace(r) {
			return nil, errors.Errorf("whitespace in vector at position %d", i)
		}
		b, err := ParseSymbol(r)
		if err != nil {
			return nil, errors.Wrapf(err, "vector %q at position %d", s, i)
		}
		v = append(v, b)
	}
	return v, nil
}
