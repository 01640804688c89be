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
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/smpsim/curated"
)

// Info describes the content of a WAV file.
type Info struct {
	Channels   int
	SampleRate int
	BitDepth   int
	Frames     int

	// the decoded sample data, interleaved by channel
	Data *audio.IntBuffer
}

func (inf Info) String() string {
	return fmt.Sprintf("%d frames, %d channels, %dHz, %dbit", inf.Frames, inf.Channels, inf.SampleRate, inf.BitDepth)
}

// Inspect decodes a WAV file.
func Inspect(r io.ReadSeeker) (Info, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Info{}, curated.Errorf("wavwriter: %v", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Info{}, curated.Errorf("wavwriter: %v", err)
	}

	return Info{
		Channels:   int(dec.NumChans),
		SampleRate: int(dec.SampleRate),
		BitDepth:   int(dec.BitDepth),
		Frames:     buf.NumFrames(),
		Data:       buf,
	}, nil
}
