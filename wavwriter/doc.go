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

// Package wavwriter converts the raw sample stream produced by the audio
// capture model into a WAV file. Note that audio data is buffered in memory
// in its entirety and written to disk when the WavWriter is closed.
//
// The raw stream is pairs of signed 16bit little-endian samples with the
// right channel first. WAV files store the left channel first so the order is
// swapped on conversion.
package wavwriter
