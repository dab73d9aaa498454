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

package diagnostics

import "fmt"

// Sample is one tick of decode telemetry, taken after a Demodulate call.
type Sample struct {
	At Position

	// HSyncDelta and VSyncDelta are the sync search's correction applied
	// this call, in samples and lines respectively. Large or persistently
	// nonzero values indicate the source signal's timing has drifted from
	// the nominal line/frame length.
	HSyncDelta int
	VSyncDelta int

	// ConvergenceMagnitude summarises how far the color-carrier filter
	// moved this call, summed across its taps. It trends toward zero as
	// burst lock settles and spikes on a hue or scene change.
	ConvergenceMagnitude int

	// BloomEnergy is the filtered beam energy driving line-width
	// modulation, present only when the bloom model is enabled.
	BloomEnergy int
}

// Recorder keeps the most recent samples in a fixed amount of memory,
// overwriting the oldest sample once full.
type Recorder struct {
	samples []Sample
	size    int
	cursor  int
	wrapped bool
}

// NewRecorder creates a Recorder holding up to size samples.
func NewRecorder(size int) (*Recorder, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for Recorder (%d)", size)
	}
	return &Recorder{
		size:    size,
		samples: make([]Sample, size),
	}, nil
}

// Record appends s, overwriting the oldest sample if the Recorder is full.
func (r *Recorder) Record(s Sample) {
	r.samples[r.cursor] = s
	r.cursor++
	if r.cursor == r.size {
		r.cursor = 0
		r.wrapped = true
	}
}

// Reset discards all recorded samples.
func (r *Recorder) Reset() {
	r.cursor = 0
	r.wrapped = false
}

// History returns the recorded samples in chronological order, oldest
// first. The returned slice is a copy and safe to retain.
func (r *Recorder) History() []Sample {
	if !r.wrapped {
		out := make([]Sample, r.cursor)
		copy(out, r.samples[:r.cursor])
		return out
	}

	out := make([]Sample, r.size)
	n := copy(out, r.samples[r.cursor:])
	copy(out[n:], r.samples[:r.cursor])
	return out
}

// Len returns the number of samples currently recorded, capped at size.
func (r *Recorder) Len() int {
	if r.wrapped {
		return r.size
	}
	return r.cursor
}

// Latest returns the most recently recorded sample and true, or a zero
// Sample and false if nothing has been recorded yet.
func (r *Recorder) Latest() (Sample, bool) {
	if r.cursor == 0 && !r.wrapped {
		return Sample{}, false
	}
	i := r.cursor - 1
	if i < 0 {
		i = r.size - 1
	}
	return r.samples[i], true
}
