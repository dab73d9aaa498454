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

func TestBPP4Fmt(t *testing.T) {
	cases := map[PixFormat]int{
		FormatRGB:      3,
		FormatBGR:      3,
		FormatARGB:     4,
		FormatRGBA:     4,
		FormatABGR:     4,
		FormatBGRA:     4,
		PixFormat(999): 0,
	}
	for f, want := range cases {
		if got := BPP4Fmt(f); got != want {
			t.Errorf("BPP4Fmt(%d) = %d, want %d", f, got, want)
		}
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for format, l := range layouts {
		buf := make([]byte, l.bpp*2)
		if !packPixel(buf, format, 0, 10, 20, 30) {
			t.Fatalf("packPixel failed for format %d", format)
		}
		r, g, b, ok := unpackPixel(buf, format, 0)
		if !ok {
			t.Fatalf("unpackPixel failed for format %d", format)
		}
		if r != 10 || g != 20 || b != 30 {
			t.Errorf("format %d round-trip = (%d,%d,%d), want (10,20,30)", format, r, g, b)
		}
	}
}

func TestUnpackPixelOutOfBounds(t *testing.T) {
	buf := make([]byte, 3)
	if _, _, _, ok := unpackPixel(buf, FormatRGB, 1); ok {
		t.Error("unpackPixel should fail past end of buffer")
	}
}

func TestUnpackPixelUnknownFormat(t *testing.T) {
	buf := make([]byte, 16)
	if _, _, _, ok := unpackPixel(buf, PixFormat(999), 0); ok {
		t.Error("unpackPixel should fail for unknown format")
	}
}
