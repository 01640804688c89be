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

package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/smpsim/curated"
	"github.com/jetsetilly/smpsim/logger"
)

// Sentinal error patterns.
const (
	// the region that could not be read in full is the value
	Truncated = "snapshot: truncated: %s"

	// the wrapped error is the value
	CannotOpen = "snapshot: cannot open: %v"
)

// Tags are the optional ID666 text fields.
type Tags struct {
	Song     string
	Game     string
	Dumper   string
	Comments string
	Artist   string
}

// Snapshot is the decoded contents of a snapshot file.
type Snapshot struct {
	Filename string

	// processor registers in file order. use the PCLow, A, etc. constants
	// to index the array
	Registers [SizeRegisters]byte

	// memory image with the overlay already applied
	RAM [SizeRAM]byte

	DSP [SizeDSP]byte

	// whether the file started with the expected signature
	Signed bool

	// nil if the file has no ID666 text tags
	Tags *Tags
}

// Load opens and reads a snapshot file.
func Load(filename string) (*Snapshot, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(CannotOpen, err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, err
	}
	s.Filename = filename

	return s, nil
}

// Read a snapshot from an io.Reader. All regions must be present in full. A
// short source is an error rather than a partially filled Snapshot.
func Read(r io.Reader) (*Snapshot, error) {
	data := make([]byte, MinimumSize)
	n, err := io.ReadFull(r, data)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, curated.Errorf("snapshot: %v", err)
	}

	// report the first region that is incomplete
	switch {
	case n < OriginRegisters+SizeRegisters:
		return nil, curated.Errorf(Truncated, "registers")
	case n < OriginRAM+SizeRAM:
		return nil, curated.Errorf(Truncated, "memory image")
	case n < OriginDSP+SizeDSP:
		return nil, curated.Errorf(Truncated, "dsp registers")
	case n < OriginOverlay+SizeOverlay:
		return nil, curated.Errorf(Truncated, "memory overlay")
	}

	s := &Snapshot{}
	copy(s.Registers[:], data[OriginRegisters:])
	copy(s.RAM[:], data[OriginRAM:])
	copy(s.DSP[:], data[OriginDSP:])
	copy(s.RAM[OverlayAddress:], data[OriginOverlay:OriginOverlay+SizeOverlay])

	s.Signed = bytes.HasPrefix(data, []byte(signature))
	if !s.Signed {
		logger.Log(logger.Allow, "snapshot", "unexpected file signature")
	}

	if data[originTagFlag] == hasTags {
		s.Tags = &Tags{
			Song:     tagString(data[originSong : originSong+32]),
			Game:     tagString(data[originGame : originGame+32]),
			Dumper:   tagString(data[originDumper : originDumper+16]),
			Comments: tagString(data[originComments : originComments+32]),
			Artist:   tagString(data[originArtist : originArtist+32]),
		}
	}

	return s, nil
}

// tag strings are null terminated or null padded
func tagString(b []byte) string {
	if i := bytes.IndexByte(b, 0x00); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

// PC returns the program counter from the low and high register bytes.
func (s *Snapshot) PC() uint16 {
	return uint16(s.Registers[PCHigh])<<8 | uint16(s.Registers[PCLow])
}

func (s *Snapshot) String() string {
	b := strings.Builder{}
	if s.Filename != "" {
		b.WriteString(fmt.Sprintf("%s\n", s.Filename))
	}
	if s.Tags != nil {
		if s.Tags.Song != "" {
			b.WriteString(fmt.Sprintf("song: %s\n", s.Tags.Song))
		}
		if s.Tags.Game != "" {
			b.WriteString(fmt.Sprintf("game: %s\n", s.Tags.Game))
		}
		if s.Tags.Artist != "" {
			b.WriteString(fmt.Sprintf("artist: %s\n", s.Tags.Artist))
		}
		if s.Tags.Dumper != "" {
			b.WriteString(fmt.Sprintf("dumper: %s\n", s.Tags.Dumper))
		}
		if s.Tags.Comments != "" {
			b.WriteString(fmt.Sprintf("comments: %s\n", s.Tags.Comments))
		}
	}
	b.WriteString(fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x PSW=%02x SP=%02x",
		s.PC(), s.Registers[A], s.Registers[X], s.Registers[Y], s.Registers[PSW], s.Registers[SP]))
	return b.String()
}
