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

// PixFormat identifies the byte layout of a packed RGB(A) image buffer.
// The package never reads or writes the alpha channel of a 4-byte format.
type PixFormat int

// The six supported pixel formats.
const (
	FormatRGB  PixFormat = iota // 3 bytes: R,G,B
	FormatBGR                   // 3 bytes: B,G,R
	FormatARGB                  // 4 bytes: A,R,G,B
	FormatRGBA                  // 4 bytes: R,G,B,A
	FormatABGR                  // 4 bytes: A,B,G,R
	FormatBGRA                  // 4 bytes: B,G,R,A
)

// pixLayout gives the byte offset of each color channel within one pixel,
// and the total bytes per pixel.
type pixLayout struct {
	r, g, b int
	bpp     int
}

var layouts = map[PixFormat]pixLayout{
	FormatRGB:  {r: 0, g: 1, b: 2, bpp: 3},
	FormatBGR:  {r: 2, g: 1, b: 0, bpp: 3},
	FormatARGB: {r: 1, g: 2, b: 3, bpp: 4},
	FormatRGBA: {r: 0, g: 1, b: 2, bpp: 4},
	FormatABGR: {r: 3, g: 2, b: 1, bpp: 4},
	FormatBGRA: {r: 2, g: 1, b: 0, bpp: 4},
}

// BPP4Fmt returns the number of bytes per pixel for format, or 0 if format
// does not correspond to any supported layout.
func BPP4Fmt(format PixFormat) int {
	l, ok := layouts[format]
	if !ok {
		return 0
	}
	return l.bpp
}

// unpackPixel reads the R,G,B bytes of the pixel at index i (i counts
// pixels, not bytes) out of data, per format's layout. ok is false if
// format is not recognised or the pixel would read past the end of data.
func unpackPixel(data []byte, format PixFormat, i int) (r, g, b byte, ok bool) {
	l, known := layouts[format]
	if !known {
		return 0, 0, 0, false
	}
	off := i * l.bpp
	if off+l.bpp > len(data) {
		return 0, 0, 0, false
	}
	return data[off+l.r], data[off+l.g], data[off+l.b], true
}

// packPixel writes r,g,b into the pixel at index i of data, per format's
// layout. ok is false if format is not recognised or the pixel would write
// past the end of data. Alpha bytes, if the format has one, are left
// untouched.
func packPixel(data []byte, format PixFormat, i int, r, g, b byte) (ok bool) {
	l, known := layouts[format]
	if !known {
		return false
	}
	off := i * l.bpp
	if off+l.bpp > len(data) {
		return false
	}
	data[off+l.r] = r
	data[off+l.g] = g
	data[off+l.b] = b
	return true
}
