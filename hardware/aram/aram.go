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

package aram

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/smpsim/curated"
	"github.com/jetsetilly/smpsim/logger"
	"github.com/jetsetilly/smpsim/logic"
	"github.com/jetsetilly/smpsim/snapshot"
)

// initial values of the edge detection state. the address sentinel means
// that a write to 0xffff on the very first active cycle is suppressed.
const (
	initialClock   = logic.Uninitialized
	initialAddress = 0xffff
)

// NotLoaded is returned by Load() when a previous attempt to load the
// snapshot failed.
const NotLoaded = "aram: snapshot not loaded: %s"

// ARAM is the memory and register model.
type ARAM struct {
	filename string

	// whether a load has been tried and whether it succeeded
	loadAttempted bool
	loaded        bool

	ram       [snapshot.SizeRAM]uint8
	dsp       [snapshot.SizeDSP]uint8
	registers [snapshot.SizeRegisters]uint8

	lastClock   logic.Symbol
	lastAddress uint16

	// number of times the clock gate has passed and the number of committed
	// writes
	Cycles int
	Writes int
}

// NewARAM is the preferred method of initialisation for the ARAM type. The
// snapshot file is not opened until Load() or the first call to Step().
func NewARAM(filename string) *ARAM {
	return &ARAM{
		filename:    filename,
		lastClock:   initialClock,
		lastAddress: initialAddress,
	}
}

// Load the snapshot file named in NewARAM(). Only the first call does
// anything; subsequent calls return nil if the first call succeeded and a
// NotLoaded error otherwise.
//
// A failure is logged and the memory and registers are left zeroed. The
// model is still usable.
func (m *ARAM) Load() error {
	if m.loadAttempted {
		if !m.loaded {
			return curated.Errorf(NotLoaded, m.filename)
		}
		return nil
	}
	m.loadAttempted = true

	logger.Logf(logger.Allow, "aram", "loading snapshot from %s", m.filename)

	s, err := snapshot.Load(m.filename)
	if err != nil {
		logger.Log(logger.Allow, "aram", err)
		return err
	}

	m.Attach(s)
	return nil
}

// Attach a snapshot directly, replacing the contents of memory and the
// registers. After Attach() the model will not try to load from file.
func (m *ARAM) Attach(s *snapshot.Snapshot) {
	m.ram = s.RAM
	m.dsp = s.DSP
	m.registers = s.Registers
	m.loadAttempted = true
	m.loaded = true
}

// Loaded returns true if a snapshot has been successfully loaded or
// attached.
func (m *ARAM) Loaded() bool {
	return m.loaded
}

// Step is called once per simulation cycle. The model only does work when
// the clock has changed since the previous call, or when the clock is being
// held low. Otherwise the output ports are left as they are.
func (m *ARAM) Step(p *Ports) {
	if !m.loadAttempted {
		_ = m.Load()
	}

	if p.Clock == m.lastClock && !p.Clock.IsLow() {
		return
	}
	m.lastClock = p.Clock
	m.Cycles++

	// main memory. the value driven onto the data bus is the value after any
	// write
	a := uint16(logic.Decode(p.Address))
	if a != m.lastAddress && p.WriteEnable.IsHigh() {
		m.ram[a] = uint8(logic.Decode(p.DataIn))
		m.Writes++
	}
	logic.Encode(uint64(m.ram[a]), p.DataOut)
	m.lastAddress = a

	logic.Encode(uint64(m.SPCRegister(uint8(logic.Decode(p.SPCRegAddr)))), p.SPCRegOut)
	logic.Encode(uint64(m.DSPRegister(uint8(logic.Decode(p.DSPRegAddr)))), p.DSPRegOut)
	logic.Encode(uint64(m.SMPRegister(uint8(logic.Decode(p.SMPRegAddr)))), p.SMPRegOut)
}

// Peek returns the value in memory without affecting the bus state.
func (m *ARAM) Peek(address uint16) uint8 {
	return m.ram[address]
}

// Poke sets the value in memory without affecting the bus state.
func (m *ARAM) Poke(address uint16, data uint8) {
	m.ram[address] = data
}

// Snapshot returns a copy of the current state as a Snapshot.
func (m *ARAM) Snapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Filename:  m.filename,
		RAM:       m.ram,
		DSP:       m.dsp,
		Registers: m.registers,
	}
}

// String returns the SMP register window and the DSP registers as a hex
// dump.
func (m *ARAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	s.WriteString("smp | ")
	for x := 0; x < 16; x++ {
		s.WriteString(fmt.Sprintf(" %02x", m.SMPRegister(uint8(x))))
	}
	s.WriteString("\n")
	for y := 0; y < snapshot.SizeDSP/16; y++ {
		s.WriteString(fmt.Sprintf("d%X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", m.DSPRegister(uint8(y*16+x))))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
