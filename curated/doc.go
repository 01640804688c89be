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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that are checked in this way should be stored as
// a const string in the package that creates the error. For example:
//
//	const Truncated = "snapshot: truncated: %s"
//
//	e := curated.Errorf(Truncated, "dsp registers")
//
//	if curated.Is(e, Truncated) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("aram: %v", e)
//
//	if curated.Has(f, Truncated) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all.
//
// The Error() function for curated errors normalises the error chain by
// removing duplicate adjacent parts. For the purposes of this package chains
// are composed of parts separated by the sub-string ': '. For example:
//
//	part 1: part 2: part 3
//
// An error wrapped as "snapshot: %v" around an error that already starts with
// "snapshot: " will therefore only print the prefix once.
//
// Curated errors also implement Unwrap() so that the errors.Is() and
// errors.As() functions from the standard library can see the first error
// value in the chain.
package curated
