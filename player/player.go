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
	"encoding/binary"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/smpsim/curated"
	"github.com/jetsetilly/smpsim/logger"
)

// swapper converts the right/left order of the raw stream into the
// left/right order expected by the audio device.
type swapper struct {
	src     io.Reader
	pending []byte
}

func (s *swapper) Read(p []byte) (int, error) {
	if len(p) < 4 {
		return 0, io.ErrShortBuffer
	}

	// bytes of an incomplete frame from the previous call
	n := copy(p, s.pending)

	var err error
	if n < 4 {
		var m int
		m, err = io.ReadAtLeast(s.src, p[n:], 4-n)
		n += m
	}
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}

	// only ever hand out whole frames
	whole := n - n%4
	s.pending = append(s.pending[:0], p[whole:n]...)

	for i := 0; i < whole; i += 4 {
		right := binary.LittleEndian.Uint16(p[i:])
		left := binary.LittleEndian.Uint16(p[i+2:])
		binary.LittleEndian.PutUint16(p[i:], left)
		binary.LittleEndian.PutUint16(p[i+2:], right)
	}

	return whole, err
}

// Play the raw stream at the sample rate. Play returns when the stream has
// been played in full or when the stop channel is closed. A nil stop channel
// is never closed.
func Play(raw io.Reader, sampleRate int, stop <-chan struct{}) error {
	if sampleRate <= 0 {
		return curated.Errorf("player: invalid sample rate (%d)", sampleRate)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return curated.Errorf("player: %v", err)
	}
	<-ready

	p := ctx.NewPlayer(&swapper{src: raw})
	defer p.Close()

	logger.Logf(logger.Allow, "player", "playing at %dHz", sampleRate)
	p.Play()

	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for p.IsPlaying() {
		select {
		case <-stop:
			p.Pause()
			logger.Log(logger.Allow, "player", "stopped")
			return nil
		case <-tick.C:
		}
	}

	if err := p.Err(); err != nil && err != io.EOF {
		return curated.Errorf("player: %v", err)
	}

	return nil
}
