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

package diagnostics

import "fmt"

// FrameUndefined marks a Position's Frame field as not meaningful, for
// telemetry recorded before a full frame count is available.
const FrameUndefined = ^0

// Position identifies a single demodulated sample in time: which frame,
// which line within that frame's field, and which sample within that line.
// It is the unit telemetry events are timestamped with.
type Position struct {
	Frame  int
	Line   int
	Sample int
}

func (p Position) String() string {
	if p.Frame == FrameUndefined {
		return fmt.Sprintf("line=%03d sample=%04d", p.Line, p.Sample)
	}
	return fmt.Sprintf("frame=%d line=%03d sample=%04d", p.Frame, p.Line, p.Sample)
}

// Equal reports whether a and b identify the same position. If either's
// Frame is undefined, Frame is ignored.
func Equal(a, b Position) bool {
	if a.Frame == FrameUndefined || b.Frame == FrameUndefined {
		return a.Line == b.Line && a.Sample == b.Sample
	}
	return a.Frame == b.Frame && a.Line == b.Line && a.Sample == b.Sample
}

// GreaterThan reports whether a occurs strictly after b. If either's Frame
// is undefined, Frame is ignored.
func GreaterThan(a, b Position) bool {
	if a.Frame == FrameUndefined || b.Frame == FrameUndefined {
		return a.Line > b.Line || (a.Line == b.Line && a.Sample > b.Sample)
	}
	return a.Frame > b.Frame ||
		(a.Frame == b.Frame && a.Line > b.Line) ||
		(a.Frame == b.Frame && a.Line == b.Line && a.Sample > b.Sample)
}

// Diff returns a-b, expressed in Position terms, given hres samples per
// line and vres lines per frame. If either's Frame is undefined, Frame is
// ignored and the result's Frame is undefined too. If b is later than a, the
// result's Line and Sample are zero.
func Diff(a, b Position, hres, vres int) Position {
	undefined := a.Frame == FrameUndefined || b.Frame == FrameUndefined

	d := Position{Frame: a.Frame - b.Frame, Line: a.Line - b.Line, Sample: a.Sample - b.Sample}
	if undefined {
		d.Frame = 0
	}

	if d.Sample < 0 {
		d.Line--
		d.Sample += hres
	}
	if d.Line < 0 {
		d.Frame--
		d.Line += vres
	}
	if d.Frame < 0 {
		d.Frame, d.Line, d.Sample = 0, 0, 0
	}

	if undefined {
		d.Frame = FrameUndefined
	}
	return d
}

// Sum returns the total sample count a represents, given hres samples per
// line and vres lines per frame.
func Sum(a Position, hres, vres int) int {
	if a.Frame == FrameUndefined {
		return a.Line*hres + a.Sample
	}
	return a.Frame*(vres*hres) + a.Line*hres + a.Sample
}
