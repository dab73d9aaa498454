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

import (
	"github.com/indigoparadox/NTSC-CRT/errors"
)

// CRT carries everything that persists across Modulate/Demodulate calls:
// the analog signal buffers, sync search state, color-carrier convergence
// filter, noise generator seed, monitor controls and the output descriptor.
//
// A CRT value is not safe for concurrent use with itself; distinct CRT
// values are fully independent and may be driven from separate goroutines.
type CRT struct {
	cfg Config

	analog []int8 // signed-8 IRE samples, the modulator's write surface
	inp    []int8 // analog + noise, clamped, the demodulator's read surface

	ccf [][]int // [CC_VPER][N] color-carrier convergence filter state

	hsync, vsync int
	rn           uint32
	bloomE       int // filtered beam energy, carried across lines and calls

	// Telemetry from the most recent Demodulate call, read through
	// SyncDeltas/ConvergenceMagnitude/BloomEnergy.
	lastHSyncDelta, lastVSyncDelta int
	lastConvergence                int

	// Monitor controls.
	hue, saturation, brightness, contrast int
	blackPoint, whitePoint                int
	scanlines, blend                      bool

	eqY, eqI, eqQ eqf

	outw, outh int
	outFormat  PixFormat
	out        []byte
}

// eqGains are the tuned per-band Q16 gains for the Y, I and Q equalizers:
// the luma filter's gains attenuate the chroma subcarrier, while the chroma
// filters' gains attenuate content above their own bandwidth.
type eqGains struct{ low, mid, high int }

var (
	yGains = eqGains{low: gainOne, mid: gainOne / 4, high: 0}
	iGains = eqGains{low: gainOne, mid: gainOne / 2, high: 0}
	qGains = eqGains{low: gainOne, mid: gainOne / 3, high: 0}
)

// newCRTEQs builds the three per-channel equalizers at the band edges
// spec.md's filter frequencies imply for demodulation: each channel's low/
// high split brackets its own bandwidth within the full line rate.
func newCRTEQs() (eqY, eqI, eqQ eqf) {
	eqY = newEQF(YFreq/2, YFreq, LFreq, yGains.low, yGains.mid, yGains.high)
	eqI = newEQF(IFreq/2, IFreq, LFreq, iGains.low, iGains.mid, iGains.high)
	eqQ = newEQF(QFreq/2, QFreq, LFreq, qGains.low, qGains.mid, qGains.high)
	return eqY, eqI, eqQ
}

// Init configures c for the given output dimensions, pixel format and
// externally-owned output buffer, and resets all CRT state. cfg selects the
// chroma pattern, samples-per-chroma-period and optional subsystems. The
// zero Config is usable (4 samples per chroma period) but differs from
// DefaultConfig: it selects the vertical chroma pattern and leaves bloom and
// both sync searches disabled.
func Init(c *CRT, cfg Config, outw, outh int, format PixFormat, out []byte) error {
	if BPP4Fmt(format) == 0 {
		return errors.New(errors.InvalidPixFormat, format)
	}
	if outw <= 0 || outh <= 0 {
		return errors.New(errors.InvalidOutputDimensions, outw, outh)
	}
	need := outw * outh * BPP4Fmt(format)
	if len(out) < need {
		return errors.New(errors.OutputBufferTooSmall, need, len(out))
	}

	*c = CRT{}
	c.cfg = cfg

	c.outw, c.outh, c.outFormat, c.out = outw, outh, format, out

	c.analog = make([]int8, c.cfg.InputSize())
	c.inp = make([]int8, c.cfg.InputSize())

	n := c.cfg.samplesPerChroma()
	c.ccf = make([][]int, CC_VPER)
	for i := range c.ccf {
		c.ccf[i] = make([]int, n)
	}

	Reset(c)
	c.rn = 194
	c.eqY, c.eqI, c.eqQ = newCRTEQs()

	return nil
}

// Resize updates c's output dimensions, pixel format and output buffer
// without disturbing any signal or monitor state.
func Resize(c *CRT, outw, outh int, format PixFormat, out []byte) error {
	if BPP4Fmt(format) == 0 {
		return errors.New(errors.InvalidPixFormat, format)
	}
	if outw <= 0 || outh <= 0 {
		return errors.New(errors.InvalidOutputDimensions, outw, outh)
	}
	need := outw * outh * BPP4Fmt(format)
	if len(out) < need {
		return errors.New(errors.OutputBufferTooSmall, need, len(out))
	}
	c.outw, c.outh, c.outFormat, c.out = outw, outh, format, out
	return nil
}

// Reset restores c's monitor controls to their defaults and clears sync
// search state. The analog/inp buffers, ccf and rn are left untouched.
func Reset(c *CRT) {
	c.hue = 0
	c.saturation = 10
	c.brightness = 0
	c.contrast = 180
	c.blackPoint = 0
	c.whitePoint = 100
	c.scanlines = false
	c.blend = false
	c.hsync = 0
	c.vsync = 0
}

// AnalogSnapshot copies c's current analog buffer, offset by +128 so every
// sample becomes a grayscale byte, into dst. It is a debug accessor only: it
// performs no I/O itself, leaving encoding entirely to the caller. dst must
// be at least len(c.analog) bytes; AnalogSnapshot copies min(len(dst),
// len(c.analog)) bytes and returns the count copied.
func (c *CRT) AnalogSnapshot(dst []byte) int {
	n := len(c.analog)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = byte(int(c.analog[i]) + 128)
	}
	return n
}

// SetHue, SetSaturation, SetBrightness, SetContrast, SetBlackPoint and
// SetWhitePoint update individual monitor controls; SetScanlines and
// SetBlend toggle the scanline-duplication-with-gap and previous-frame
// blending behaviors of Demodulate.
func (c *CRT) SetHue(v int)        { c.hue = v }
func (c *CRT) SetSaturation(v int) { c.saturation = v }
func (c *CRT) SetBrightness(v int) { c.brightness = v }
func (c *CRT) SetContrast(v int)   { c.contrast = v }
func (c *CRT) SetBlackPoint(v int) { c.blackPoint = v }
func (c *CRT) SetWhitePoint(v int) { c.whitePoint = v }
func (c *CRT) SetScanlines(v bool) { c.scanlines = v }
func (c *CRT) SetBlend(v bool)     { c.blend = v }

// SyncDeltas returns the total horizontal sync correction summed across
// every scanline, and the vertical sync correction, applied by the most
// recent Demodulate call.
func (c *CRT) SyncDeltas() (hsync, vsync int) { return c.lastHSyncDelta, c.lastVSyncDelta }

// ConvergenceMagnitude returns how far the color-carrier convergence filter
// moved, summed across every tap update, during the most recent Demodulate
// call.
func (c *CRT) ConvergenceMagnitude() int { return c.lastConvergence }

// BloomEnergy returns the filtered beam energy currently driving
// line-width modulation. It is only meaningful when the CRT's Config
// enables DoBloom.
func (c *CRT) BloomEnergy() int { return c.bloomE }
