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

package logic_test

import (
	"testing"

	"github.com/jetsetilly/smpsim/logic"
	"github.com/jetsetilly/smpsim/test"
)

func TestSymbolLevels(t *testing.T) {
	high := map[logic.Symbol]bool{logic.Forcing1: true, logic.Weak1: true}
	low := map[logic.Symbol]bool{logic.Forcing0: true, logic.Weak0: true}

	for s := logic.Uninitialized; s <= logic.DontCare; s++ {
		test.ExpectEquality(t, s.IsHigh(), high[s], s)
		test.ExpectEquality(t, s.IsLow(), low[s], s)
	}
}

func TestSymbolString(t *testing.T) {
	var v logic.Vector
	for s := logic.Uninitialized; s <= logic.DontCare; s++ {
		v = append(v, s)
	}
	test.ExpectEquality(t, v.String(), "UX01ZWLH-")
	test.ExpectEquality(t, logic.Symbol(100).String(), "?")
}

func TestDecode(t *testing.T) {
	v, err := logic.Parse("01HLXZ-U")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, logic.Decode(v), uint64(0x60))

	// only Forcing1 and Weak1 contribute a bit
	for s := logic.Uninitialized; s <= logic.DontCare; s++ {
		d := logic.Decode(logic.Vector{s})
		if s.IsHigh() {
			test.ExpectEquality(t, d, uint64(1), s)
		} else {
			test.ExpectEquality(t, d, uint64(0), s)
		}
	}

	// empty vector
	test.ExpectEquality(t, logic.Decode(logic.Vector{}), uint64(0))
}

func TestEncode(t *testing.T) {
	v := logic.NewVector(0xa5, 8)
	test.ExpectEquality(t, v.String(), "10100101")

	// bits beyond the width of the vector are ignored
	v = logic.NewVector(0x1ff, 4)
	test.ExpectEquality(t, v.String(), "1111")

	// encoding in place overwrites weak and unknown states
	v, _ = logic.Parse("HLXZ")
	logic.Encode(0x9, v)
	test.ExpectEquality(t, v.String(), "1001")
}

func TestRoundTrip(t *testing.T) {
	for _, w := range []int{1, 3, 4, 7, 8, 16} {
		for d := uint64(0); d < 1<<uint(w); d += 1 + d/7 {
			v := logic.NewVector(d, w)
			test.ExpectEquality(t, logic.Decode(v), d, w)
			test.ExpectEquality(t, logic.Decode(logic.NewVector(logic.Decode(v), w)), logic.Decode(v), w)
		}
	}
}

func TestLossy(t *testing.T) {
	v, err := logic.Parse("HLZ-")
	test.DemandSuccess(t, err)
	e := logic.NewVector(logic.Decode(v), len(v))
	test.ExpectEquality(t, e.String(), "1000")
	test.ExpectInequality(t, e.String(), v.String())
}

func TestSigned16(t *testing.T) {
	test.ExpectEquality(t, logic.Signed16(logic.NewVector(0x7fff, 16)), int16(32767))
	test.ExpectEquality(t, logic.Signed16(logic.NewVector(0x8000, 16)), int16(-32768))
	test.ExpectEquality(t, logic.Signed16(logic.NewVector(0xffff, 16)), int16(-1))
	test.ExpectEquality(t, logic.Signed16(logic.NewVector(0, 16)), int16(0))
}

func TestParse(t *testing.T) {
	v, err := logic.Parse("0000_1111")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(v), 8)
	test.ExpectEquality(t, logic.Decode(v), uint64(0x0f))

	v, err = logic.Parse("hlzxwu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.String(), "HLZXWU")

	_, err = logic.Parse("01A")
	test.ExpectFailure(t, err)

	_, err = logic.Parse("01 1")
	test.ExpectFailure(t, err)

	_, err = logic.ParseSymbol('?')
	test.ExpectFailure(t, err)
}
