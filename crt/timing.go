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

// ChromaPattern selects the number of chroma subcarrier cycles per line.
type ChromaPattern int

const (
	// ChromaVertical uses 228 chroma clocks per line; the classic "rainbow"
	// waterfall artifact comes from this pattern.
	ChromaVertical ChromaPattern = iota

	// ChromaCheckered uses 227.5 chroma clocks per line, so the burst phase
	// inverts every other field/line, producing the checkered artifact
	// pattern real NTSC decoders see.
	ChromaCheckered
)

// VRES is the number of lines in one field, fixed by the NTSC timing this
// package emulates (the "system" per spec.md §6 is NTSC only).
const VRES = 262

// TOP and BOT are the first and one-past-last scanlines that carry active
// video.
const (
	TOP = 21
	BOT = 261

	// LINES is the number of active video lines.
	LINES = BOT - TOP
)

// CC_VPER is the vertical period, in scanline buckets, over which the
// color-carrier convergence filter state repeats.
const CC_VPER = 1

// Search windows, in samples, and accumulated-signal thresholds for sync
// acquisition.
const (
	HSyncWindow = 8
	VSyncWindow = 8

	HSyncThresh = 4
	VSyncThresh = 94
)

// Line timeline, in nanoseconds. One scanline is the sum of the six
// sub-periods below; ns2pos maps an offset into this timeline onto a
// sample position on the sampled line.
//
//	FP (1500ns) SYNC (4700ns) BW (600ns) CB (2500ns) BP (1600ns) AV (52600ns)
//	|----------||------------||---------||-----------||----------||----------|
//	   BLANK        SYNC         BLANK       BLANK        BLANK      ACTIVE
const (
	FPns   = 1500
	SYNCns = 4700
	BWns   = 600
	CBns   = 2500
	BPns   = 1600
	AVns   = 52600

	HBns   = FPns + SYNCns + BWns + CBns + BPns
	LINEns = HBns + AVns
)

// CBCycles is the number of color-burst cycles written during the back
// porch; anywhere from 7 to 12 is plausible, 10 is conventional.
const CBCycles = 10

// Frequencies for modulation band-limiting, in Hz, relative to the full
// line bandwidth LFreq.
const (
	LFreq = 1431818
	YFreq = 420000
	IFreq = 150000
	QFreq = 55000
)

// IRE levels. White is 100 IRE, blanking is 0 IRE, sync tip is -40 IRE.
const (
	WhiteLevel = 100
	BurstLevel = 20
	BlackLevel = 7
	BlankLevel = 0
	SyncLevel  = -40
)

// Config bundles the compile/runtime-selectable parameters spec.md §6
// requires be exposed: chroma pattern, samples per chroma period, and the
// three optional subsystems (bloom, horizontal sync search, vertical sync
// search).
type Config struct {
	ChromaPattern ChromaPattern

	// SamplesPerChroma is the number of samples taken per chroma subcarrier
	// period (N in spec.md); 4 or 5 are the supported values.
	SamplesPerChroma int

	DoBloom bool
	DoHSync bool
	DoVSync bool
}

// DefaultConfig matches the reference NTSC/CRT emulator: checkered chroma,
// 4 samples per chroma period, bloom disabled, both syncs enabled.
func DefaultConfig() Config {
	return Config{
		ChromaPattern:    ChromaCheckered,
		SamplesPerChroma: 4,
		DoBloom:          false,
		DoHSync:          true,
		DoVSync:          true,
	}
}

// ccLine returns CC_LINE: the number of chroma subcarrier cycles per line,
// in tenths of a cycle so that the checkered pattern's half-cycle is exact.
func (c Config) ccLine() int {
	if c.ChromaPattern == ChromaCheckered {
		return 2275
	}
	return 2280
}

// samplesPerChroma returns the configured N, defaulting to 4 if unset so a
// zero-value Config is still usable.
func (c Config) samplesPerChroma() int {
	if c.SamplesPerChroma == 0 {
		return 4
	}
	return c.SamplesPerChroma
}

// HRES returns the horizontal resolution: the number of samples per line.
// The sampled grid is exact so that every multiple of the chroma period
// aligns with an integer sample.
func (c Config) HRES() int {
	return c.ccLine() * c.samplesPerChroma() / 10
}

// InputSize returns HRES*VRES, the size of the analog/inp sample buffers.
func (c Config) InputSize() int {
	return c.HRES() * VRES
}

// ns2pos maps a nanosecond offset into the line timeline onto its sample
// position on the sampled line.
func (c Config) ns2pos(ns int) int {
	return ns * c.HRES() / LINEns
}

// Derived starting positions for each pulse in the horizontal-blanking
// timeline, plus the active-video region.
func (c Config) fpBeg() int  { return c.ns2pos(0) }
func (c Config) syncBeg() int { return c.ns2pos(FPns) }
func (c Config) bwBeg() int  { return c.ns2pos(FPns + SYNCns) }
func (c Config) cbBeg() int  { return c.ns2pos(FPns + SYNCns + BWns) }
func (c Config) bpBeg() int  { return c.ns2pos(HBns - BPns) }
func (c Config) avBeg() int  { return c.ns2pos(HBns) }
func (c Config) avLen() int  { return c.ns2pos(AVns) }
