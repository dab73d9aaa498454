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

//go:build statsview
// +build statsview

// Package statsview exposes a diagnostics.Recorder's history on the same
// local dashboard the go-echarts/statsview package already serves for
// runtime stats, built only when the "statsview" build tag is present.
package statsview

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/indigoparadox/NTSC-CRT/diagnostics"
)

const Address = "localhost:12601"
const url = "/debug/statsview"

// pollInterval is how often the latest recorded Sample is sampled into the
// dashboard's count gauges.
const pollInterval = time.Second

// Launch starts a goroutine running the statsview dashboard, with three
// extra gauges drawn from r's most recently recorded Sample: horizontal
// sync delta, vertical sync delta, and burst convergence magnitude.
func Launch(output io.Writer, r *diagnostics.Recorder) {
	viewer.RegisterCountFunc("hsync_delta", pollInterval, func() int64 {
		s, ok := r.Latest()
		if !ok {
			return 0
		}
		return int64(s.HSyncDelta)
	})
	viewer.RegisterCountFunc("vsync_delta", pollInterval, func() int64 {
		s, ok := r.Latest()
		if !ok {
			return 0
		}
		return int64(s.VSyncDelta)
	})
	viewer.RegisterCountFunc("burst_convergence", pollInterval, func() int64 {
		s, ok := r.Latest()
		if !ok {
			return 0
		}
		return int64(s.ConvergenceMagnitude)
	})

	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	output.Write([]byte(fmt.Sprintf("decode diagnostics available at %s%s\n", Address, url)))
}

// Available returns true if a statsview dashboard is available to launch.
func Available() bool {
	return true
}
