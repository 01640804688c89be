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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest, it can be used as a replacement for the flag package, with
// some differences. Most importantly, Parse() returns a ParseResult which
// indicates whether help was requested, whether an error occurred, or whether
// parsing should continue.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO", "CONVERT", "PLAY")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// The selected mode is returned by Mode(). Each mode then calls NewMode(),
// adds its own flags and calls Parse() again:
//
//	switch md.Mode() {
//	case "CONVERT":
//		md.NewMode()
//		rate := md.AddInt("rate", 32000, "sample rate")
//		p, err := md.Parse()
//		...
//		convert(md.GetArg(0), md.GetArg(1), *rate)
//	}
//
// The first sub-mode in the list is the default and is selected if the next
// argument does not name a sub-mode. Sub-modes are case insensitive and
// Mode() always returns the upper case form. Path() returns the series of
// modes selected so far, separated by a slash.
package modalflag
