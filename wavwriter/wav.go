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

package wavwriter

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/jetsetilly/smpsim/curated"
	"github.com/jetsetilly/smpsim/logger"
	"github.com/youpy/go-wav"
)

// DefaultSampleRate is the output rate of the sound processor's DSP.
const DefaultSampleRate = 32000

// PartialFrame is the error pattern used when the raw stream does not end on
// a frame boundary. The value is the number of trailing bytes.
const PartialFrame = "wavwriter: partial frame: %d trailing bytes"

// size of one stereo frame in the raw stream
const frameSize = 4

// WavWriter implements the io.WriteCloser interface. Data written to it is
// treated as a raw sample stream and the WAV file is created on Close().
// This means it can be used as the output of the audio capture model.
type WavWriter struct {
	filename   string
	sampleRate int

	buffer []wav.Sample

	// bytes of an incomplete frame carried over between calls to Write()
	partial []byte
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: invalid sample rate (%d)", sampleRate)
	}

	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]wav.Sample, 0),
	}, nil
}

// Write implements the io.Writer interface.
func (aw *WavWriter) Write(p []byte) (int, error) {
	n := len(p)

	if len(aw.partial) > 0 {
		p = append(aw.partial, p...)
		aw.partial = nil
	}

	for len(p) >= frameSize {
		right := int16(binary.LittleEndian.Uint16(p[0:]))
		left := int16(binary.LittleEndian.Uint16(p[2:]))

		w := wav.Sample{}
		w.Values[0] = int(left)
		w.Values[1] = int(right)
		aw.buffer = append(aw.buffer, w)

		p = p[frameSize:]
	}

	if len(p) > 0 {
		aw.partial = append([]byte{}, p...)
	}

	return n, nil
}

// Frames returns the number of stereo frames buffered so far.
func (aw *WavWriter) Frames() int {
	return len(aw.buffer)
}

// Close implements the io.Closer interface. The WAV file is written even if
// the stream ended on a partial frame but an error is still returned.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 2, uint32(aw.sampleRate), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d frames to %s", len(aw.buffer), aw.filename)
	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if len(aw.partial) > 0 {
		return curated.Errorf(PartialFrame, len(aw.partial))
	}

	return nil
}

// Convert reads a raw sample stream and writes it to a WAV file.
func Convert(raw io.Reader, filename string, sampleRate int) error {
	aw, err := New(filename, sampleRate)
	if err != nil {
		return err
	}

	_, err = io.Copy(aw, raw)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return aw.Close()
}
