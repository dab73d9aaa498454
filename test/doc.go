// This file is part of NTSC-CRT.
//
// NTSC-CRT is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// NTSC-CRT is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with NTSC-CRT.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectFailure and ExpectSuccess functions test for failure and success
// under generic conditions; DemandSuccess and DemandFailure do the same but
// call t.Fatalf instead of t.Errorf. The documentation for those functions
// describes the currently supported types.
//
// It is worth describing how these functions handle the nil type because it
// is not obvious. The nil type is considered a success and consequently will
// cause ExpectFailure/DemandFailure to fail and ExpectSuccess/DemandSuccess
// to succeed. This may not be how we want to interpret nil in all situations
// but because of how errors usually work (nil to indicate no error) we *need*
// to interpret nil in this way.
//
// CompareWriter and CappedWriter both implement io.Writer and are meant to
// capture output for comparison against an expected string; RingWriter does
// the same but bounds memory use by wrapping once its buffer is full.
//
// Equate, ExpectEquality/ExpectInequality, and DemandEquality compare
// like-typed variables for equality. Equate additionally allows some types
// (e.g. uint16) to be compared against a literal int for convenience; see its
// documentation for why.
package test
