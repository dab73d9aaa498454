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

// nextRN advances the noise generator's seed. This is a fixed linear
// congruential recurrence, not a general-purpose PRNG: the multiplier and
// increment are chosen to match what a reference decoder produces, sample
// for sample, given the same seed.
func nextRN(rn uint32) uint32 {
	return 214019*rn + 140327895
}

// clamp8 restricts v to the signed 8-bit range carried by the analog/inp
// sample buffers.
func clamp8(v int) int {
	if v < -127 {
		return -127
	}
	if v > 127 {
		return 127
	}
	return v
}

// injectNoise derives one inp sample from one analog sample: bits 16-23 of
// rn, recentred around zero, is scaled by amount and added to analog, then
// clamped back into signed 8-bit range. rn is the generator state to use for
// this sample; callers advance it with nextRN between samples.
func injectNoise(analog int, rn uint32, amount int) int {
	n := int((rn>>16)&0xff) - 127
	return clamp8(analog + ((n * amount) >> 8))
}
