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

// Package preferences holds the values that configure a simulation session:
// where the snapshot is loaded from, where captured audio is written to and
// the sample rate used when converting or playing the captured audio.
package preferences

import (
	"github.com/jetsetilly/smpsim/curated"
	"github.com/jetsetilly/smpsim/prefs"
	"github.com/jetsetilly/smpsim/wavwriter"
)

// default values used by SetDefaults(). the file names are the names used by
// the simulation test benches.
const (
	DefaultSnapshot = "snes.spc"
	DefaultAudio    = "snes.aud"
)

// Preferences for a simulation session.
type Preferences struct {
	dsk *prefs.Disk

	Snapshot   prefs.String
	Audio      prefs.String
	SampleRate prefs.Int

	// echo log entries to stdout
	Echo prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the named file, if it exists,
// and from the command line stack. An empty filename means values come only
// from the defaults and the command line.
func NewPreferences(filename string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.SampleRate.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf("preferences: sample rate must be positive (%d)", v)
		}
		return nil
	})

	p.dsk = prefs.NewDisk(filename)

	err := p.dsk.Add("snapshot", &p.Snapshot)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio", &p.Audio)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("samplerate", &p.SampleRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("echo", &p.Echo)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all values to their default.
func (p *Preferences) SetDefaults() {
	_ = p.Snapshot.Set(DefaultSnapshot)
	_ = p.Audio.Set(DefaultAudio)
	_ = p.SampleRate.Set(wavwriter.DefaultSampleRate)
	_ = p.Echo.Set(false)
}

// Save current values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
