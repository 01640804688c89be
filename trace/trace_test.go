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

package trace_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/smpsim/curated"
	"github.com/jetsetilly/smpsim/hardware/aram"
	"github.com/jetsetilly/smpsim/hardware/audio"
	"github.com/jetsetilly/smpsim/snapshot"
	"github.com/jetsetilly/smpsim/test"
	"github.com/jetsetilly/smpsim/trace"
)

type bufferCloser struct {
	bytes.Buffer
}

func (b *bufferCloser) Close() error {
	return nil
}

func testARAM() *aram.ARAM {
	s := &snapshot.Snapshot{
		Registers: [7]byte{0x12, 0x34, 0xaa, 0xbb, 0xcc, 0xdd, 0xee},
	}
	for i := range s.RAM {
		s.RAM[i] = byte(i)
	}
	for i := range s.DSP {
		s.DSP[i] = byte(0x80 | i)
	}
	m := aram.NewARAM("")
	m.Attach(s)
	return m
}

const aramTrace = `
# read 0x00f5 with the SMP register window also reading 0x00f5
aram 1 0 0000_0000 0000_0000_1111_0101 000 0101 0000001

# clock unchanged: no work so the output repeats
aram 1 1 1111_1111 0001_0010_0011_0100 011 0000 0000010

# write 0x5a to 0x0100
aram 0 1 0101_1010 0000_0001_0000_0000 011 0000 0000010

# address held: write of 0x11 suppressed
aram 1 1 0001_0001 0000_0001_0000_0000 111 0000 0000010
`

func TestReplayARAM(t *testing.T) {
	m := testARAM()
	out := &test.CompareWriter{}

	stats, err := trace.Replay(strings.NewReader(aramTrace), m, nil, out)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, stats.ARAM, 4)
	test.ExpectEquality(t, stats.Audio, 0)

	expected := "11110101 10101010 11110101 10000001\n" +
		"11110101 10101010 11110101 10000001\n" +
		"01011010 00010010 11110000 10000010\n" +
		"01011010 00000000 11110000 10000010\n"
	test.ExpectEquality(t, out.String(), expected)
	test.ExpectEquality(t, m.Peek(0x0100), 0x5a)
	test.ExpectEquality(t, m.Writes, 1)
}

const audioTrace = `
audio 0 1 0000_0000_0000_0000 0000_0000_0000_0000
audio 1 0 0000_0000_0000_0001 0000_0000_0000_0001
audio 0 1 0000_0000_0000_0000 0000_0000_0000_0000
audio 1 1 0111_1111_1111_1111 1000_0000_0000_0000
audio 1 1 0000_0000_0000_0011 0000_0000_0000_0011
audio H H 0000_0000_0000_0010 1111_1111_1111_1111
`

func TestReplayAudio(t *testing.T) {
	b := &bufferCloser{}
	c := audio.NewCaptureWithOpener(func() (io.WriteCloser, error) {
		return b, nil
	})

	stats, err := trace.Replay(strings.NewReader(audioTrace), nil, c, io.Discard)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, stats.Audio, 6)
	test.ExpectEquality(t, c.Frames, 2)
	test.ExpectEquality(t, b.String(), "\xff\x7f\x00\x80\x02\x00\xff\xff")
}

func TestMalformed(t *testing.T) {
	for _, tr := range []string{
		"aram 1 0 0000_0000",
		"aram 1 0 0000_000 0000_0000_1111_0101 000 0101 0000001",
		"aram 10 0 0000_0000 0000_0000_1111_0101 000 0101 0000001",
		"aram 1 0 0000_0000 0000_0000_1111_0101 000 0101 000000A",
		"audio 1 1 0000 0000",
		"bus 1 1",
	} {
		_, err := trace.Replay(strings.NewReader(tr), testARAM(), audio.NewCapture(""), io.Discard)
		test.ExpectSuccess(t, curated.Is(err, trace.Malformed), tr)
	}
}

func TestMissingModel(t *testing.T) {
	_, err := trace.Replay(strings.NewReader("\n\naudio 1 1 0000_0000_0000_0000 0000_0000_0000_0000"), testARAM(), nil, io.Discard)
	test.ExpectSuccess(t, curated.Is(err, trace.Malformed))
	test.ExpectEquality(t, err.Error(), "trace: line 3: no audio model")

	_, err = trace.Replay(strings.NewReader("aram 1 0 0000_0000 0000_0000_1111_0101 000 0101 0000001"), nil, nil, io.Discard)
	test.ExpectSuccess(t, curated.Is(err, trace.Malformed))
}
