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

// Package prefs facilitates the storage of preferential values in the
// smpsim system. Values are stored in a typed wrapper (Bool, String, Int)
// which can have hooks that run before and after a new value is set. A
// pre-hook that returns an error prevents the value from being set.
//
// Values can be saved to and loaded from a file with the Disk type. Values
// can also be set from the command line with a prefs string of the form:
//
//	"key::value; key::value"
//
// The string is pushed onto the command line stack with
// PushCommandLineStack(). Values on the stack take priority over values
// loaded from disk and are consumed when they are used.
package prefs
