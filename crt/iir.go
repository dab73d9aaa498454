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

// iirLowpass is a single-pole low-pass filter used during modulation to
// band-limit Y, I and Q before they are laid onto the composite signal.
type iirLowpass struct {
	h int // filter memory
	c int // coefficient, Q11 fixed point
}

// newIIRLowpass derives the Q11 coefficient c = 1 - exp(-pi*freq/limit) for
// a cutoff freq within bandwidth limit.
func newIIRLowpass(freq, limit int) iirLowpass {
	// piQ11 is pi in Q11 fixed point (round(pi*2048)).
	const piQ11 = 6434
	arg := -(piQ11 * freq) / limit
	return iirLowpass{c: expOne - expx(arg)}
}

// filter advances the filter by one sample and returns the new state.
func (f *iirLowpass) filter(s int) int {
	f.h += ((s - f.h) * f.c) >> expFracBits
	return f.h
}

// reset clears filter memory; the coefficient is untouched.
func (f *iirLowpass) reset() {
	f.h = 0
}
