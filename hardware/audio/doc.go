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

// Package audio captures the digital audio samples presented by the sound
// processor on its output bus. Samples are written to a raw stream as signed
// 16bit little-endian values, right channel first then left channel. There
// is no header and no framing. The stream can be converted to a WAV file with
// the wavwriter package or played with the player package.
//
// A sample pair is captured on the rising edge of the clock while the ready
// signal is not low. The output file is created when the first sample pair is
// captured. If the output cannot be created the failure is logged and
// samples are dropped for the rest of the session; the error is available
// from Err() and Close().
package audio
