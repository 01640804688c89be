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

// Package test contains helper functions that remove common boilerplate from
// the test files of the smpsim packages.
//
// The Expect functions report a test failure with t.Errorf() and allow the
// test to continue. The Demand functions are the same but stop the test with
// t.Fatalf(), which is useful when later checks would be meaningless.
//
// The nil value is considered a success. This mirrors how error values work
// in Go, where a nil error indicates that nothing went wrong.
//
// The CompareWriter type implements io.Writer and is used to capture output
// for comparison against an expected string.
package test
