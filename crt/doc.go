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

// Package crt is an integer-only emulation of the NTSC composite video
// pipeline. It synthesizes a baseband analog composite signal from an RGB
// raster image exactly as a broadcast encoder would — front porch, sync
// tip, breezeway, color burst, back porch, active video — and demodulates
// that signal back into an RGB raster exactly as a CRT receiver would,
// including sync search, color-burst phase recovery, YIQ separation by
// band filtering and artifact generation from chroma/luma crosstalk.
//
// The package performs no I/O. Callers supply a source RGB byte buffer in
// one of the PixFormat layouts to Modulate, and an output byte buffer of a
// (possibly different) PixFormat layout to Init/Resize for Demodulate to
// write into. Every multiply and shift in the signal path uses a declared
// fixed-point scale; there is no floating point anywhere between Modulate
// and Demodulate.
//
// A CRT value carries state across calls — sync search position, the
// color-carrier convergence filter, the noise generator seed, and the
// monitor controls (hue, saturation, brightness, contrast, black/white
// point, scanlines, blend). Two CRT values are fully independent and may be
// driven concurrently from separate goroutines; a single CRT value must not
// have Modulate or Demodulate called on it concurrently with itself.
//
// Driving a still image through a single Modulate/Demodulate call decodes
// a recognizable picture, but a real tube never locks on in one field: its
// sync search and color-carrier convergence filter settle over several
// successive fields. Callers reproduce this with an accumulation pass: call
// Modulate/Demodulate repeatedly against the same CRT value, alternating
// Settings.Field and/or Settings.Frame between calls (see their doc
// comments), until sync and ccf settle. cmd/ntsccrt's -passes flag drives
// exactly this loop.
package crt
