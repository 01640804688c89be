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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/smpsim/curated"
	"github.com/jetsetilly/smpsim/hardware/aram"
	"github.com/jetsetilly/smpsim/hardware/audio"
	"github.com/jetsetilly/smpsim/logger"
	"github.com/jetsetilly/smpsim/modalflag"
	"github.com/jetsetilly/smpsim/player"
	"github.com/jetsetilly/smpsim/preferences"
	"github.com/jetsetilly/smpsim/prefs"
	"github.com/jetsetilly/smpsim/snapshot"
	"github.com/jetsetilly/smpsim/statsview"
	"github.com/jetsetilly/smpsim/trace"
	"github.com/jetsetilly/smpsim/wavwriter"
	"golang.org/x/term"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch returns the exit status of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "INFO", "CONVERT", "PLAY")

	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, "run statistics server")
	prefsFile := md.AddString("prefsfile", "", "preferences file")
	cmdPrefs := md.AddString("prefs", "", "preferences for this session (eg. \"samplerate::44100; echo::true\")")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	prefs.PushCommandLineStack(*cmdPrefs)
	defer prefs.PopCommandLineStack()

	pref, err := preferences.NewPreferences(*prefsFile)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *log || pref.Echo.Get().(bool) {
		if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			logger.SetEcho(logger.NewColorizer(output))
		} else {
			logger.SetEcho(output)
		}
	}

	if *stats {
		statsview.Launch(output)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, pref, output)
	case "INFO":
		err = info(md, output)
	case "CONVERT":
		err = convert(md, pref, output)
	case "PLAY":
		err = play(md, pref)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return 20
	}

	return 0
}

func run(md *modalflag.Modes, pref *preferences.Preferences, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("The trace is read from standard input if no file is named.")

	snapshotFile := md.AddString("snapshot", pref.Snapshot.String(), "snapshot file loaded into the ARAM")
	audioFile := md.AddString("audio", pref.Audio.String(), "file receiving raw audio samples")
	wavFile := md.AddString("wav", "", "write audio to a WAV file instead of raw samples")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var in io.Reader
	switch len(md.RemainingArgs()) {
	case 0:
		in = os.Stdin
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return curated.Errorf("run: %v", err)
		}
		defer f.Close()
		in = f
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ram := aram.NewARAM(*snapshotFile)

	var aud *audio.Capture
	if *wavFile != "" {
		rate := pref.SampleRate.Get().(int)
		aud = audio.NewCaptureWithOpener(func() (io.WriteCloser, error) {
			return wavwriter.New(*wavFile, rate)
		})
	} else {
		aud = audio.NewCapture(*audioFile)
	}

	w := bufio.NewWriter(output)
	stats, err := trace.Replay(in, ram, aud, w)
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}

	// errors from the audio capture are reported but do not stop the
	// simulation
	if cerr := aud.Close(); cerr != nil {
		logger.Log(logger.Allow, "run", cerr)
	}

	logger.Logf(logger.Allow, "run", "%s", stats)
	logger.Logf(logger.Allow, "run", "%d aram writes", ram.Writes)

	return err
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	dump := md.AddBool("dump", false, "hex dump of ARAM contents")
	viz := md.AddString("memviz", "", "write graphviz representation of the snapshot header to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("snapshot file required for %s mode", md)
	}

	s, err := snapshot.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprintln(output, s)

	if *dump {
		ram := aram.NewARAM(s.Filename)
		ram.Attach(s)
		fmt.Fprintln(output, ram)
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return curated.Errorf("info: %v", err)
		}
		defer f.Close()

		memviz.Map(f, &struct {
			Registers [7]byte
			Tags      *snapshot.Tags
		}{
			Registers: s.Registers,
			Tags:      s.Tags,
		})
	}

	return nil
}

func convert(md *modalflag.Modes, pref *preferences.Preferences, output io.Writer) error {
	md.NewMode()

	rate := md.AddInt("rate", pref.SampleRate.Get().(int), "sample rate of the raw stream")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("raw audio file and WAV file required for %s mode", md)
	}

	raw, err := os.Open(md.GetArg(0))
	if err != nil {
		return curated.Errorf("convert: %v", err)
	}
	defer raw.Close()

	err = wavwriter.Convert(raw, md.GetArg(1), *rate)
	if err != nil {
		return err
	}

	f, err := os.Open(md.GetArg(1))
	if err != nil {
		return curated.Errorf("convert: %v", err)
	}
	defer f.Close()

	inf, err := wavwriter.Inspect(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "%s: %s\n", md.GetArg(1), inf)

	return nil
}

func play(md *modalflag.Modes, pref *preferences.Preferences) error {
	md.NewMode()
	md.AdditionalHelp("Press any key to stop playback.")

	rate := md.AddInt("rate", pref.SampleRate.Get().(int), "sample rate of the raw stream")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename := pref.Audio.String()
	if len(md.RemainingArgs()) > 0 {
		filename = md.GetArg(0)
	}

	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("play: %v", err)
	}
	defer f.Close()

	stop, restore := player.KeyPress()
	defer restore()

	return player.Play(f, *rate, stop)
}
