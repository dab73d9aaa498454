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

import "testing"

func TestNewRecorderRejectsNonPositiveSize(t *testing.T) {
	if _, err := NewRecorder(0); err == nil {
		t.Error("NewRecorder should reject a zero size")
	}
	if _, err := NewRecorder(-1); err == nil {
		t.Error("NewRecorder should reject a negative size")
	}
}

func TestRecorderHistoryBeforeWrap(t *testing.T) {
	r, err := NewRecorder(4)
	if err != nil {
		t.Fatal(err)
	}
	r.Record(Sample{At: Position{Line: 1}})
	r.Record(Sample{At: Position{Line: 2}})

	h := r.History()
	if len(h) != 2 {
		t.Fatalf("len(History()) = %d, want 2", len(h))
	}
	if h[0].At.Line != 1 || h[1].At.Line != 2 {
		t.Errorf("History() order = %v, want [1,2]", h)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRecorderHistoryAfterWrapIsChronological(t *testing.T) {
	r, err := NewRecorder(3)
	if err != nil {
		t.Fatal(err)
	}
	for line := 1; line <= 5; line++ {
		r.Record(Sample{At: Position{Line: line}})
	}

	h := r.History()
	want := []int{3, 4, 5}
	if len(h) != len(want) {
		t.Fatalf("len(History()) = %d, want %d", len(h), len(want))
	}
	for i, w := range want {
		if h[i].At.Line != w {
			t.Errorf("History()[%d].At.Line = %d, want %d", i, h[i].At.Line, w)
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestRecorderLatest(t *testing.T) {
	r, err := NewRecorder(2)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Latest(); ok {
		t.Error("Latest() should report false on an empty Recorder")
	}

	r.Record(Sample{At: Position{Line: 1}})
	r.Record(Sample{At: Position{Line: 2}})
	r.Record(Sample{At: Position{Line: 3}})

	s, ok := r.Latest()
	if !ok || s.At.Line != 3 {
		t.Errorf("Latest() = %v,%v, want line=3,true", s, ok)
	}
}

func TestRecorderResetClearsHistory(t *testing.T) {
	r, err := NewRecorder(2)
	if err != nil {
		t.Fatal(err)
	}
	r.Record(Sample{At: Position{Line: 1}})
	r.Record(Sample{At: Position{Line: 2}})
	r.Record(Sample{At: Position{Line: 3}})

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset() = %d, want 0", r.Len())
	}
	if len(r.History()) != 0 {
		t.Error("History() after Reset() should be empty")
	}
}
