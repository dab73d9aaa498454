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

// ImageSource is implemented by collaborators that decode an image file
// into a packed RGB(A) buffer this package can consume as Modulate's
// source — a PPM or BMP reader, for instance. This package declares the
// interface only; it performs no file I/O itself.
type ImageSource interface {
	// ReadImage returns a tightly packed pixel buffer, its PixFormat and
	// its dimensions.
	ReadImage() (data []byte, format PixFormat, w, h int, err error)
}

// PixelSink is implemented by collaborators that encode this package's
// output buffer to a file, or display it — a PPM/BMP writer, or an
// interactive viewer's blit target. This package declares the interface
// only; it performs no file I/O or windowing itself.
type PixelSink interface {
	// WriteImage consumes a tightly packed pixel buffer in the given
	// format and dimensions.
	WriteImage(data []byte, format PixFormat, w, h int) error
}
