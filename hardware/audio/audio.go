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

package audio

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/jetsetilly/smpsim/curated"
	"github.com/jetsetilly/smpsim/logger"
	"github.com/jetsetilly/smpsim/logic"
)

// WidthSample is the width of each sample port in symbols.
const WidthSample = 16

// FrameSize is the number of bytes written for each captured sample pair.
const FrameSize = 4

// Sentinal error patterns.
const (
	CannotCreate = "audio: cannot create output: %v"
	WriteError   = "audio: write error: %v"
)

// Ports are the signals connecting the model to the simulator. The model
// has no outputs.
type Ports struct {
	Clock logic.Symbol
	Ready logic.Symbol
	Right logic.Vector
	Left  logic.Vector
}

// NewPorts allocates a Ports instance with sample vectors of the correct
// width.
func NewPorts() *Ports {
	return &Ports{
		Right: make(logic.Vector, WidthSample),
		Left:  make(logic.Vector, WidthSample),
	}
}

// Opener creates the output stream. It is called at most once per Capture.
type Opener func() (io.WriteCloser, error)

// Capture is the audio capture model.
type Capture struct {
	open Opener

	out           io.WriteCloser
	openAttempted bool
	closed        bool

	// the first error encountered. once set no more samples are written
	err error

	lastClock logic.Symbol

	// number of sample pairs written and the number dropped because of an
	// error
	Frames  int
	Dropped int

	frame [FrameSize]byte
}

// NewCapture is the preferred method of initialisation for the Capture type.
// The named file is created (or truncated) when the first sample pair is
// captured.
func NewCapture(filename string) *Capture {
	return NewCaptureWithOpener(func() (io.WriteCloser, error) {
		logger.Logf(logger.Allow, "audio", "writing samples to %s", filename)
		return os.Create(filename)
	})
}

// NewCaptureWithOpener creates a Capture that obtains its output stream from
// the Opener.
func NewCaptureWithOpener(open Opener) *Capture {
	return &Capture{
		open:      open,
		lastClock: logic.Uninitialized,
	}
}

// Step is called once per simulation cycle.
func (c *Capture) Step(p *Ports) {
	if p.Clock == c.lastClock {
		return
	}
	c.lastClock = p.Clock

	// only the rising edge is interesting
	if p.Clock.IsLow() {
		return
	}

	// no new data
	if p.Ready.IsLow() {
		return
	}

	right := logic.Signed16(p.Right)
	left := logic.Signed16(p.Left)

	if !c.openAttempted && !c.closed {
		c.openAttempted = true
		out, err := c.open()
		if err != nil {
			c.fail(curated.Errorf(CannotCreate, err))
		} else {
			c.out = out
		}
	}

	if c.err != nil || c.closed {
		c.Dropped++
		return
	}

	binary.LittleEndian.PutUint16(c.frame[0:], uint16(right))
	binary.LittleEndian.PutUint16(c.frame[2:], uint16(left))
	if _, err := c.out.Write(c.frame[:]); err != nil {
		c.fail(curated.Errorf(WriteError, err))
		c.Dropped++
		return
	}

	c.Frames++
}

// fail records the first error and logs it.
func (c *Capture) fail(err error) {
	if c.err == nil {
		c.err = err
		logger.Log(logger.Allow, "audio", err)
	}
}

// Err returns the first error encountered while creating or writing the
// output stream.
func (c *Capture) Err() error {
	return c.err
}

// Close the output stream if it was ever opened. Samples captured after
// Close() are dropped. The returned error is the
// first error encountered during capture, or the error from closing the
// stream.
func (c *Capture) Close() error {
	c.closed = true
	if c.out != nil {
		err := c.out.Close()
		c.out = nil
		if err != nil && c.err == nil {
			c.err = curated.Errorf("audio: %v", err)
		}
		logger.Logf(logger.Allow, "audio", "%d sample pairs written, %d dropped", c.Frames, c.Dropped)
	}
	return c.err
}
