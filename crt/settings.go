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

package crt

import "github.com/indigoparadox/NTSC-CRT/errors"

// Settings describes one field's worth of source image to Modulate: the
// buffer, its pixel layout and dimensions, whether to render in color, the
// field/frame parity for interlace and checkered-chroma phase, the user hue
// offset in degrees, optional destination x/y offsets, and whether to treat
// the source as already matching the active-area resolution (raw) instead
// of scaling it.
//
// A zero-value Settings is ready to use: the embedded IIR instances are
// lazily initialized on the first call to Modulate that receives it, via
// iirsInitialized. Callers must not share one Settings between CRT values
// they intend to drive concurrently, and must zero a Settings (rather than
// copy one already used) before its first use.
type Settings struct {
	Data   []byte
	Format PixFormat
	W, H   int

	Raw     bool
	AsColor bool

	// Field is the interlace field parity (0 or 1) for this pass. Modulate
	// uses it to pick which half of the vsync serration pattern to write
	// (lines 4-6) and to offset which source rows land in the active area,
	// so two Modulate calls that differ only in Field interleave into
	// disjoint sets of output rows. Demodulate reads the same parity back
	// out of its own vertical sync search (it does not read Settings.Field
	// directly) and offsets decoded output rows to match.
	Field int // 0 or 1

	// Frame is the frame parity (0 or 1) for this pass. Combined with
	// Field it controls burst phase: when Field and Frame agree, Modulate
	// inverts the checkered-chroma pattern and shifts the color burst by
	// half a chroma period, the NTSC convention that keeps a static image's
	// chroma dot pattern from visibly strobing across repeated passes.
	// Driving several passes with Field and/or Frame alternating (an
	// "accumulation pass") is how the demodulator's ccf convergence filter
	// and sync search are expected to settle — a single pass decodes a
	// recognizable image, but the convergence/sync state it leaves in CRT
	// is not yet stable until a few alternating passes have run.
	Frame int // 0 or 1

	Hue     int // degrees
	XOffset int
	YOffset int

	iirsInitialized  bool
	iirY, iirI, iirQ iirLowpass
}

// Validate checks that s's source dimensions are usable. Modulate itself
// never returns an error — an invalid Settings is a caller mistake the
// caller can check for up front, not a hot-path failure mode — but callers
// that build a Settings from untrusted dimensions may want this check.
func (s *Settings) Validate() error {
	if s.W <= 0 || s.H <= 0 {
		return errors.New(errors.InvalidSourceDimensions, s.W, s.H)
	}
	return nil
}
