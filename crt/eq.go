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

// gainFracBits and gainOne give the Q16 scale of the equalizer's internal
// split coefficients and band gains.
const (
	gainFracBits = 16
	gainOne      = 1 << gainFracBits
)

// eqCoeff returns 2*sin(pi*f/rate) as a Q16 fraction, the one-pole
// coefficient a band-split cutoff at f resolves to within bandwidth rate.
func eqCoeff(f, rate int) int {
	angle := (f * 8192) / rate // f/rate turns of pi, in 14-bit angle units
	sin14, _ := SinCos14(angle)
	return (sin14 * (2 * gainOne)) / 32767
}

// eqStage is one one-pole stage of a cascade, with a Q16 coefficient.
type eqStage struct {
	h, c int
}

func (s *eqStage) filter(v int) int {
	s.h += ((v - s.h) * s.c) >> gainFracBits
	return s.h
}

func (s *eqStage) reset() {
	s.h = 0
}

// eqf is a three-band equalizer used during demodulation to separate a
// filtered composite sample into low, mid and high bands before each band's
// gain is applied and the bands are summed back together. Two independent
// four-stage one-pole cascades, split at a low and a high cutoff, are fed
// the same raw input: the low cascade's output is the low band, the
// difference between the high cascade's output and the low cascade's output
// is the mid band, and the difference between the raw input three samples
// ago and the high cascade's output is the high band.
type eqf struct {
	lo, hi [4]eqStage

	// hist is a 3-deep delay line of raw input samples, for the high band.
	hist    [3]int
	histPos int

	gl, gm, gh int // Q16 band gains
}

// newEQF builds an equalizer whose low/high cascades split at fLo/fHi within
// bandwidth rate, with Q16 gains gl, gm, gh for the low, mid and high bands.
func newEQF(fLo, fHi, rate int, gl, gm, gh int) eqf {
	var e eqf
	lc := eqCoeff(fLo, rate)
	hc := eqCoeff(fHi, rate)
	for i := range e.lo {
		e.lo[i].c = lc
		e.hi[i].c = hc
	}
	e.gl, e.gm, e.gh = gl, gm, gh
	return e
}

// reset clears all cascade and history state; gains and coefficients are
// untouched.
func (e *eqf) reset() {
	for i := range e.lo {
		e.lo[i].reset()
		e.hi[i].reset()
	}
	e.hist = [3]int{}
	e.histPos = 0
}

func eqCascade(stages *[4]eqStage, s int) int {
	v := s
	for i := range stages {
		v = stages[i].filter(v)
	}
	return v
}

// filter advances the equalizer by one sample and returns the band-summed,
// gain-weighted output.
func (e *eqf) filter(s int) int {
	lp := eqCascade(&e.lo, s)
	hp := eqCascade(&e.hi, s)

	old := e.hist[e.histPos]
	e.hist[e.histPos] = s
	e.histPos = (e.histPos + 1) % len(e.hist)

	low := lp
	mid := hp - lp
	high := old - hp

	return (low*e.gl + mid*e.gm + high*e.gh) >> gainFracBits
}
