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

// Package statsview is an optional package that is built only when the
// +statsview build constraint is present.
//
//	It provides a HTTP server running locally offering decode diagnostics
//	alongside the usual go-echarts/statsview runtime stats. Underlying
//	functionality provided by "github.com/go-echarts/statsview".
//
//	After launch, graphical statistics will be viewable at:
//
//		localhost:12601/debug/statsview
package statsview
