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

// ntsccrt runs an image through the NTSC composite modulate/demodulate
// round trip and writes the decoded result back out as a PNG, the way a
// CRT display would have rendered the source signal.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/indigoparadox/NTSC-CRT/crt"
	"github.com/indigoparadox/NTSC-CRT/diagnostics"
	"github.com/indigoparadox/NTSC-CRT/logger"
	"github.com/indigoparadox/NTSC-CRT/version"
)

func main() {
	var (
		inPath    = flag.String("in", "", "source PNG image")
		outPath   = flag.String("out", "out.png", "decoded PNG image")
		passes    = flag.Int("passes", 4, "number of modulate/demodulate cycles to settle burst lock")
		noise     = flag.Int("noise", 0, "analog noise amount (0-255)")
		hue       = flag.Int("hue", 0, "hue rotation in degrees")
		blend     = flag.Bool("blend", false, "blend with the previous decoded frame")
		scanlines = flag.Bool("scanlines", false, "darken duplicated scanlines")
		mono      = flag.Bool("mono", false, "decode as monochrome")
	)
	flag.Parse()

	logger.Log(logger.Allow, "ntsccrt", fmt.Sprintf("%s starting", version.ApplicationName))

	if err := run(*inPath, *outPath, *passes, *noise, *hue, *blend, *scanlines, *mono); err != nil {
		logger.Log(logger.Allow, "ntsccrt", err)
		logger.Write(os.Stderr)
		os.Exit(1)
	}
}

func run(inPath, outPath string, passes, noise, hue int, blend, scanlines, mono bool) error {
	if inPath == "" {
		return fmt.Errorf("-in is required")
	}

	src, err := loadPNG(inPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inPath, err)
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	outw, outh := w*2, h*2
	out := make([]byte, outw*outh*4)

	var c crt.CRT
	if err := crt.Init(&c, crt.DefaultConfig(), outw, outh, crt.FormatBGRA, out); err != nil {
		return fmt.Errorf("crt.Init: %w", err)
	}
	c.SetBlend(blend)
	c.SetScanlines(scanlines)

	rec, err := diagnostics.NewRecorder(passes)
	if err != nil {
		return err
	}

	s := &crt.Settings{
		Data:    rgbBytes(src),
		Format:  crt.FormatRGB,
		W:       w,
		H:       h,
		AsColor: !mono,
		Hue:     hue,
	}

	for i := 0; i < passes; i++ {
		crt.Modulate(&c, s)
		crt.Demodulate(&c, noise)

		hsync, vsync := c.SyncDeltas()
		rec.Record(diagnostics.Sample{
			At:                   diagnostics.Position{Frame: i, Line: 0, Sample: 0},
			HSyncDelta:           hsync,
			VSyncDelta:           vsync,
			ConvergenceMagnitude: c.ConvergenceMagnitude(),
			BloomEnergy:          c.BloomEnergy(),
		})

		s.Frame = (s.Frame + 1) % 2
		s.Field = (s.Field + 1) % 2
	}

	logger.Logf(logger.Allow, "ntsccrt", "decoded %d frame(s), writing %s", rec.Len(), outPath)

	return savePNG(outPath, out, outw, outh)
}

func rgbBytes(img image.Image) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			buf[i+0] = byte(r >> 8)
			buf[i+1] = byte(g >> 8)
			buf[i+2] = byte(bl >> 8)
		}
	}
	return buf
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func savePNG(path string, bgra []byte, w, h int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		b, g, r := bgra[i*4+0], bgra[i*4+1], bgra[i*4+2]
		img.Pix[i*4+0], img.Pix[i*4+1], img.Pix[i*4+2], img.Pix[i*4+3] = r, g, b, 255
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
