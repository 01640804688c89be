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

package player

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/jetsetilly/smpsim/test"
)

func TestSwapper(t *testing.T) {
	raw := &bytes.Buffer{}
	binary.Write(raw, binary.LittleEndian, []int16{1, 2, 3, 4, 5})

	s := &swapper{src: raw}
	b, err := io.ReadAll(s)
	test.ExpectSuccess(t, err)

	// the trailing half frame is dropped
	test.DemandEquality(t, len(b), 8)

	var out [4]int16
	test.DemandSuccess(t, binary.Read(bytes.NewReader(b), binary.LittleEndian, &out))
	test.ExpectEquality(t, out, [4]int16{2, 1, 4, 3})
}
