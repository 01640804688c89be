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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/smpsim/preferences"
	"github.com/jetsetilly/smpsim/prefs"
	"github.com/jetsetilly/smpsim/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Snapshot.String(), preferences.DefaultSnapshot)
	test.ExpectEquality(t, p.Audio.String(), preferences.DefaultAudio)
	test.ExpectEquality(t, p.SampleRate.Get(), prefs.Value(32000))
	test.ExpectEquality(t, p.Echo.Get(), prefs.Value(false))

	// no file to save to
	test.ExpectFailure(t, p.Save())
}

func TestSampleRateHook(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.SampleRate.Set(0))
	test.ExpectEquality(t, p.SampleRate.Get(), prefs.Value(32000))
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("snapshot::other.spc; samplerate::-5")
	_, err := preferences.NewPreferences("")
	test.ExpectFailure(t, err)
	prefs.PopCommandLineStack()

	prefs.PushCommandLineStack("snapshot::other.spc; echo::true")
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Snapshot.String(), "other.spc")
	test.ExpectEquality(t, p.Echo.Get(), prefs.Value(true))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Audio.Set("capture.aud"))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Audio.String(), "capture.aud")
	test.ExpectEquality(t, q.Snapshot.String(), preferences.DefaultSnapshot)
}
