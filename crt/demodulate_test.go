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

import "testing"

func runCycles(c *CRT, s *Settings, n int, noise int) {
	for i := 0; i < n; i++ {
		Modulate(c, s)
		Demodulate(c, noise)
	}
}

func TestSaveAnalogValueDistribution(t *testing.T) {
	c := newTestCRT(t, 64, 48)
	img := solidImage(64, 48, 200, 80, 40)
	s := &Settings{Data: img, Format: FormatRGB, W: 64, H: 48, AsColor: true}
	runCycles(c, s, 4, 0)

	dst := make([]byte, len(c.analog))
	c.AnalogSnapshot(dst)

	hasSyncLow, hasBlankMid, hasActiveHigh := false, false, false
	for _, v := range dst {
		switch {
		case v <= 10:
			hasSyncLow = true
		case v >= 120 && v <= 136:
			hasBlankMid = true
		case v > 150:
			hasActiveHigh = true
		}
	}
	if !hasSyncLow {
		t.Error("save-analog snapshot has no sync-low values")
	}
	if !hasBlankMid {
		t.Error("save-analog snapshot has no blanking-mid values")
	}
	if !hasActiveHigh {
		t.Error("save-analog snapshot has no active-high values")
	}
}

func TestHue180SwapsChannelDominance(t *testing.T) {
	img := solidImage(64, 48, 220, 60, 60)

	c0 := newTestCRT(t, 640, 480)
	s0 := &Settings{Data: img, Format: FormatRGB, W: 64, H: 48, AsColor: true, Hue: 0}
	runCycles(c0, s0, 4, 0)

	c180 := newTestCRT(t, 640, 480)
	s180 := &Settings{Data: img, Format: FormatRGB, W: 64, H: 48, AsColor: true, Hue: 180}
	runCycles(c180, s180, 4, 0)

	idx := (240*640 + 320) * 4
	b0, _, r0 := int(c0.out[idx+0]), int(c0.out[idx+1]), int(c0.out[idx+2])
	b180, _, r180 := int(c180.out[idx+0]), int(c180.out[idx+1]), int(c180.out[idx+2])

	dominantAt0IsRed := r0 > b0
	dominantAt180IsRed := r180 > b180
	if dominantAt0IsRed == dominantAt180IsRed {
		t.Errorf("hue=180 did not flip red/blue dominance: (r=%d,b=%d) at hue=0 vs (r=%d,b=%d) at hue=180", r0, b0, r180, b180)
	}
}

func TestBlendAveragesWithPreviousFrame(t *testing.T) {
	img := solidImage(64, 48, 180, 90, 30)
	s := &Settings{Data: img, Format: FormatRGB, W: 64, H: 48, AsColor: true}

	a := newTestCRT(t, 64, 48)
	b := newTestCRT(t, 64, 48)

	// Two identical, unblended warm-up cycles bring both instances to the
	// same sync/ccf state with the same buffer contents.
	for i := 0; i < 2; i++ {
		Modulate(a, s)
		Demodulate(a, 0)
		Modulate(b, s)
		Demodulate(b, 0)
	}
	oldFrame := append([]byte(nil), a.out...)

	a.SetBlend(true)
	Modulate(a, s)
	Demodulate(a, 0)

	b.SetBlend(false)
	Modulate(b, s)
	Demodulate(b, 0)
	freshFrame := b.out

	mismatches := 0
	for i := range a.out {
		want := (int(freshFrame[i]) >> 1) + (int(oldFrame[i]) >> 1)
		d := int(a.out[i]) - want
		if d < -1 || d > 1 {
			mismatches++
		}
	}
	if mismatches > 0 {
		t.Errorf("%d/%d blended samples did not match the expected average", mismatches, len(a.out))
	}
}

func TestDemodulateUnknownFormatNoOp(t *testing.T) {
	c := newTestCRT(t, 64, 48)
	c.outFormat = PixFormat(999)
	before := append([]byte(nil), c.out...)
	Demodulate(c, 0)
	for i := range before {
		if c.out[i] != before[i] {
			t.Fatal("Demodulate wrote output despite an unrecognised pixel format")
		}
	}
}
