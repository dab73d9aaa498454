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

func barsImage(w, h int) []byte {
	buf := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(0)
			if (x/2)%2 == 0 {
				v = 255
			}
			i := (y*w + x) * 3
			buf[i+0], buf[i+1], buf[i+2] = v, v, v
		}
	}
	return buf
}

func TestRawModeUsesSourceDimensionsClamped(t *testing.T) {
	c := newTestCRT(t, 64, 48)
	img := solidImage(1000, 1000, 10, 20, 30)
	s := &Settings{Data: img, Format: FormatRGB, W: 1000, H: 1000, AsColor: true, Raw: true}
	Modulate(c, s)
	// Must not panic and must stay within the analog buffer's bounds,
	// which Modulate enforces by clamping destw/desth to the active area.
	for _, v := range c.analog {
		if v < SyncLevel || int(v) > WhiteLevel+10 {
			t.Fatalf("analog sample %d out of range in raw mode", v)
		}
	}
}

func TestXOffsetRoundedToChromaMultiple(t *testing.T) {
	s := &Settings{XOffset: 7}
	n := 4
	xo := (s.XOffset / n) * n
	if xo != 4 {
		t.Errorf("rounded xoffset = %d, want 4", xo)
	}
}

func TestArtifactColorOnBars(t *testing.T) {
	c := newTestCRT(t, 640, 480)
	img := barsImage(64, 48)
	s := &Settings{Data: img, Format: FormatRGB, W: 64, H: 48, AsColor: true, Raw: true}
	for i := 0; i < 4; i++ {
		Modulate(c, s)
		Demodulate(c, 0)
	}

	foundGreen := false
	foundBlue := false
	for y := 100; y < 400; y += 4 {
		for x := 0; x < 640; x++ {
			idx := (y*640 + x) * 4
			b, g, r := int(c.out[idx+0]), int(c.out[idx+1]), int(c.out[idx+2])
			if g > r+20 {
				foundGreen = true
			}
			if b > r+20 {
				foundBlue = true
			}
		}
	}
	if !foundGreen && !foundBlue {
		t.Error("expected a false-color artifact on alternating bars, found none")
	}
}

func TestModulateInitializesIIRsOnce(t *testing.T) {
	c := newTestCRT(t, 64, 48)
	img := solidImage(64, 48, 1, 2, 3)
	s := &Settings{Data: img, Format: FormatRGB, W: 64, H: 48, AsColor: true}
	Modulate(c, s)
	if !s.iirsInitialized {
		t.Fatal("Modulate did not mark iirsInitialized")
	}
	savedC := s.iirY.c
	Modulate(c, s)
	if s.iirY.c != savedC {
		t.Error("Modulate reinitialized the IIR coefficient on a second call")
	}
}
