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

// injectNoiseField advances rn once per sample, per the fixed LCG
// recurrence, and derives inp from analog for every sample.
func (c *CRT) injectNoiseField(noise int) {
	if noise < 0 {
		noise = 0
	}
	for i := range c.analog {
		c.rn = nextRN(c.rn)
		c.inp[i] = int8(injectNoise(int(c.analog[i]), c.rn, noise))
	}
}

// verticalSyncSearch updates c.vsync and returns the detected field parity.
func (c *CRT) verticalSyncSearch() int {
	hres := c.cfg.HRES()
	thresh := VSyncThresh * SyncLevel
	field := 0

	for i := -VSyncWindow; i < VSyncWindow; i++ {
		line := posmod(c.vsync+i, VRES)
		sum := 0
		row := c.inp[line*hres : line*hres+hres]
		for j := 0; j < hres; j++ {
			sum += int(row[j])
			if sum < thresh {
				c.vsync = line
				if j > hres/2 {
					field = 1
				}
				return field
			}
		}
	}
	return field
}

// horizontalSyncSearch returns the hsync offset found by integrating line's
// input across the window around the expected sync tip (c.hsync), or
// c.hsync unchanged if the running sum never crosses threshold.
func (c *CRT) horizontalSyncSearch(line int) int {
	hres := c.cfg.HRES()
	syncBeg := c.cfg.syncBeg()
	thresh := HSyncThresh * SyncLevel
	row := c.inp[line*hres : line*hres+hres]

	sum := 0
	for d := -HSyncWindow; d < HSyncWindow; d++ {
		sum += int(row[posmod(syncBeg+c.hsync+d, hres)])
		if sum <= thresh {
			return posmod(c.hsync+d, hres)
		}
	}
	return c.hsync
}

// lerp12 linearly interpolates between a and b using a 12-bit fraction.
func lerp12(a, b, frac int) int {
	return a + (((b - a) * frac) >> 12)
}

// abs returns the absolute value of v.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Demodulate reads c.analog, corrupts it with noise, recovers sync and
// chroma phase, and writes the decoded RGB image into c's output buffer. It
// updates c.hsync, c.vsync, c.ccf and c.rn, and records this call's sync
// correction and burst convergence movement for SyncDeltas and
// ConvergenceMagnitude.
func Demodulate(c *CRT, noise int) {
	if BPP4Fmt(c.outFormat) == 0 {
		return
	}

	hres := c.cfg.HRES()
	n := c.cfg.samplesPerChroma()
	avBeg, avLen := c.cfg.avBeg(), c.cfg.avLen()
	cbBeg := c.cfg.cbBeg()

	c.injectNoiseField(noise)
	oldVsync := c.vsync
	field := 0
	if c.cfg.DoVSync {
		field = c.verticalSyncSearch()
	}
	c.lastVSyncDelta = c.vsync - oldVsync
	c.lastHSyncDelta = 0
	c.lastConvergence = 0

	ratio := (c.outh + LINES/2) / LINES
	if ratio < 1 {
		ratio = 1
	}
	fieldOffsetPx := field * (ratio / 2)

	maxE := avLen * WhiteLevel
	if maxE == 0 {
		maxE = 1
	}

	bright := c.brightness - (BlackLevel + c.blackPoint)

	ys := make([]int, avLen)
	is := make([]int, avLen)
	qs := make([]int, avLen)

	for line := TOP; line < BOT; line++ {
		oldHsync := c.hsync
		if c.cfg.DoHSync {
			c.hsync = c.horizontalSyncSearch(line)
		}
		c.lastHSyncDelta += abs(c.hsync - oldHsync)

		xpos := posmod(avBeg+c.hsync-3, hres)
		ypos := posmod(line+c.vsync+3, VRES)
		pos := xpos + ypos*hres

		ccr := c.ccf[ypos%CC_VPER]
		base := line*hres + cbBeg + c.hsync
		rowBuf := c.inp[line*hres : line*hres+hres]
		for t := 0; t < CBCycles*n; t++ {
			p := base + t - line*hres
			if p < 0 || p >= hres {
				continue
			}
			idx := t % n
			old := ccr[idx]
			ccr[idx] = ccr[idx]*127/128 + int(rowBuf[p])
			c.lastConvergence += abs(ccr[idx] - old)
		}

		align := posmod(c.hsync, n)
		dci := ccr[(align+1)%n] - ccr[(align+3)%n]
		dcq := ccr[(align+2)%n] - ccr[(align+0)%n]

		huesn, huecs := SinCos14(deg14(posmod(c.hue, 360) + 33))
		huesn >>= 11
		huecs >>= 11

		w0 := (dci*huecs - dcq*huesn) * c.saturation
		w1 := (dcq*huecs + dci*huesn) * c.saturation
		base4 := [4]int{w0, w1, -w0, -w1}
		wave := make([]int, n)
		for k := 0; k < n; k++ {
			wave[k] = base4[k%4]
		}

		var dx, scanL int
		if c.cfg.DoBloom {
			s := 0
			for i := 0; i < avLen; i++ {
				p := pos + i
				s += int(c.inp[p%len(c.inp)])
			}
			c.bloomE = c.bloomE*123/128 + (((maxE/2)-s)<<10)/maxE
			lineW := (avLen * 112 / 128) + (c.bloomE >> 9)
			if lineW < 1 {
				lineW = 1
			}
			dx = (lineW << 12) / c.outw
			scanL = ((avLen / 2) - (lineW / 2) + 8) << 12
		} else {
			dx = ((avLen - 1) << 12) / c.outw
			scanL = 0
		}

		c.eqY.reset()
		c.eqI.reset()
		c.eqQ.reset()

		for i := 0; i < avLen; i++ {
			p := (pos + i) % len(c.inp)
			s := int(c.inp[p])
			ys[i] = c.eqY.filter(s+bright) << 4
			is[i] = c.eqI.filter((s*wave[i%n])>>9) >> 3
			qs[i] = c.eqQ.filter((s*wave[(i+3)%n])>>9) >> 3
		}

		activeIndex := line - TOP
		destRowBase := activeIndex*ratio + fieldOffsetPx
		dupRows := ratio
		if c.scanlines && dupRows > 1 {
			dupRows--
		}

		outRow := make([]byte, c.outw*4)
		for outx := 0; outx < c.outw; outx++ {
			rp := scanL + dx*outx
			si := rp >> 12
			frac := rp & 0xfff
			if si < 0 {
				si = 0
			}
			if si >= avLen-1 {
				si = avLen - 2
			}
			if si < 0 {
				si = 0
			}

			// Luma is carried at 16x IRE; scale it up so the >>12 of the
			// conversion matrix below leaves it at 4x IRE.
			yv := lerp12(ys[si], ys[si+1], frac) << 10
			iv := lerp12(is[si], is[si+1], frac)
			qv := lerp12(qs[si], qs[si+1], frac)

			r := clampByte(((yv+3879*iv+2556*qv)>>12)*c.contrast>>8)
			g := clampByte(((yv-1126*iv-2605*qv)>>12)*c.contrast>>8)
			b := clampByte(((yv-4530*iv+7021*qv)>>12)*c.contrast>>8)

			outRow[outx*4+0] = r
			outRow[outx*4+1] = g
			outRow[outx*4+2] = b
		}

		for k := 0; k < dupRows; k++ {
			destRow := destRowBase + k
			if destRow < 0 || destRow >= c.outh {
				continue
			}
			for outx := 0; outx < c.outw; outx++ {
				r, g, b := outRow[outx*4+0], outRow[outx*4+1], outRow[outx*4+2]
				pxIdx := destRow*c.outw + outx
				if c.blend {
					or, og, ob, ok := unpackPixel(c.out, c.outFormat, pxIdx)
					if ok {
						r = byte((int(r) >> 1) + (int(or) >> 1))
						g = byte((int(g) >> 1) + (int(og) >> 1))
						b = byte((int(b) >> 1) + (int(ob) >> 1))
					}
				}
				packPixel(c.out, c.outFormat, pxIdx, r, g, b)
			}
		}
	}
}
