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

// Package diagnostics collects telemetry about a running crt.CRT that is
// useful for judging decode quality while tuning an emulation: how far the
// horizontal/vertical sync search had to travel this call, how quickly the
// color-carrier convergence filter is settling, and (when bloom is enabled)
// the filtered beam energy driving line-width modulation.
//
// The recorder itself has no I/O and no external dependency; it is plain
// bookkeeping a caller polls. The optional statsview subpackage exposes a
// Recorder's history on a local HTTP dashboard, built only with the
// "statsview" build tag, exactly as the emulator this package's layout is
// modeled on exposes its own runtime statistics.
package diagnostics
