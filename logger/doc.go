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

// Package logger is the central log for smpsim. Each entry is a tag and a
// detail. The tag is usually the name of the component making the entry, for
// example "aram" or "audio".
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count. This is important for the hardware
// models because they are called once per simulated clock cycle and a
// problem on one cycle is likely to be a problem on every cycle.
//
// Every logging call takes a Permission argument. Use the Allow value when
// the entry should always be made.
package logger
