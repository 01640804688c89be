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

package trace

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/smpsim/curated"
	"github.com/jetsetilly/smpsim/hardware/aram"
	"github.com/jetsetilly/smpsim/hardware/audio"
	"github.com/jetsetilly/smpsim/logger"
	"github.com/jetsetilly/smpsim/logic"
)

// Malformed is the pattern for errors caused by the content of the trace.
// The values are the line number and the reason.
const Malformed = "trace: line %d: %v"

// Stats summarises a replay.
type Stats struct {
	Lines int
	ARAM  int
	Audio int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d lines: %d aram cycles, %d audio cycles", s.Lines, s.ARAM, s.Audio)
}

// Replay reads the trace and calls the models accordingly. Either model may
// be nil if the trace does not reference it.
func Replay(r io.Reader, ram *aram.ARAM, aud *audio.Capture, out io.Writer) (Stats, error) {
	var stats Stats

	ramPorts := aram.NewPorts()
	audPorts := audio.NewPorts()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "aram":
			if ram == nil {
				return stats, curated.Errorf(Malformed, stats.Lines, "no aram model")
			}
			if err := parseARAM(fields[1:], ramPorts); err != nil {
				return stats, curated.Errorf(Malformed, stats.Lines, err)
			}
			ram.Step(ramPorts)
			stats.ARAM++

			_, err := fmt.Fprintf(out, "%s %s %s %s\n", ramPorts.DataOut, ramPorts.SPCRegOut, ramPorts.SMPRegOut, ramPorts.DSPRegOut)
			if err != nil {
				return stats, curated.Errorf("trace: %v", err)
			}

		case "audio":
			if aud == nil {
				return stats, curated.Errorf(Malformed, stats.Lines, "no audio model")
			}
			if err := parseAudio(fields[1:], audPorts); err != nil {
				return stats, curated.Errorf(Malformed, stats.Lines, err)
			}
			aud.Step(audPorts)
			stats.Audio++

		default:
			return stats, curated.Errorf(Malformed, stats.Lines, fmt.Sprintf("unknown model %q", fields[0]))
		}
	}

	if err := scanner.Err(); err != nil {
		return stats, curated.Errorf("trace: %v", err)
	}

	logger.Logf(logger.Allow, "trace", "replayed %s", stats)

	return stats, nil
}

func parseARAM(fields []string, p *aram.Ports) error {
	if len(fields) != 7 {
		return fmt.Errorf("aram requires 7 fields, found %d", len(fields))
	}

	var err error
	if p.Clock, err = parseSymbol(fields[0]); err != nil {
		return err
	}
	if p.WriteEnable, err = parseSymbol(fields[1]); err != nil {
		return err
	}

	for i, v := range []struct {
		dest  logic.Vector
		width int
	}{
		{dest: p.DataIn, width: aram.WidthDataIn},
		{dest: p.Address, width: aram.WidthAddress},
		{dest: p.SPCRegAddr, width: aram.WidthSPCRegAddr},
		{dest: p.SMPRegAddr, width: aram.WidthSMPRegAddr},
		{dest: p.DSPRegAddr, width: aram.WidthDSPRegAddr},
	} {
		if err := parseVector(fields[i+2], v.dest, v.width); err != nil {
			return err
		}
	}

	return nil
}

func parseAudio(fields []string, p *audio.Ports) error {
	if len(fields) != 4 {
		return fmt.Errorf("audio requires 4 fields, found %d", len(fields))
	}

	var err error
	if p.Clock, err = parseSymbol(fields[0]); err != nil {
		return err
	}
	if p.Ready, err = parseSymbol(fields[1]); err != nil {
		return err
	}
	if err := parseVector(fields[2], p.Right, audio.WidthSample); err != nil {
		return err
	}
	return parseVector(fields[3], p.Left, audio.WidthSample)
}

func parseSymbol(s string) (logic.Symbol, error) {
	v, err := logic.Parse(s)
	if err != nil {
		return logic.Uninitialized, err
	}
	if len(v) != 1 {
		return logic.Uninitialized, fmt.Errorf("expected single symbol, found %q", s)
	}
	return v[0], nil
}

// parseVector parses s into dest, which must already be of the correct width
func parseVector(s string, dest logic.Vector, width int) error {
	v, err := logic.Parse(s)
	if err != nil {
		return err
	}
	if len(v) != width {
		return fmt.Errorf("%q is %d symbols wide, expected %d", s, len(v), width)
	}
	copy(dest, v)
	return nil
}
