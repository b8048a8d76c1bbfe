// Package main regenerates the embedded image assets for the layout
// demo. The cover photo is painted procedurally so the repository does
// not carry a binary original: a lake under two mountain ridges,
// rendered at double size and downsampled with bilinear filtering
// before being encoded as JPEG.
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

const (
	coverWidth  = 600
	coverHeight = 240

	// supersample is the oversampling factor for the painted scene.
	// Downsampling smooths the ridge and shoreline edges.
	supersample = 2

	jpegQuality = 85
)

func main() {
	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}

	out := filepath.Join(root, "assets", "images", "lake.jpg")
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating asset directory: %v\n", err)
		os.Exit(1)
	}

	if err := writeCover(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", out, coverWidth, coverHeight)
}

func writeCover(path string) error {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, renderCover(), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// renderCover paints the scene oversized and scales it down to the
// embedded cover dimensions.
func renderCover() *image.RGBA {
	scene := paintLakeScene(coverWidth*supersample, coverHeight*supersample)
	cover := image.NewRGBA(image.Rect(0, 0, coverWidth, coverHeight))
	xdraw.BiLinear.Scale(cover, cover.Bounds(), scene, scene.Bounds(), xdraw.Src, nil)
	return cover
}

// paintLakeScene fills a w by h image with the cover scene: a pale sky,
// a far and a near mountain ridge, the lake, and a dark shore band.
// The painter is deterministic so regenerated assets are reproducible.
func paintLakeScene(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	var (
		skyTop    = color.RGBA{R: 0x8E, G: 0xC5, B: 0xE8, A: 0xFF}
		skyHaze   = color.RGBA{R: 0xE8, G: 0xF0, B: 0xF2, A: 0xFF}
		farRidge  = color.RGBA{R: 0x7A, G: 0x8E, B: 0x9E, A: 0xFF}
		nearRidge = color.RGBA{R: 0x4A, G: 0x5D, B: 0x66, A: 0xFF}
		snow      = color.RGBA{R: 0xF2, G: 0xF6, B: 0xF8, A: 0xFF}
		lakeNear  = color.RGBA{R: 0x14, G: 0x6E, B: 0x82, A: 0xFF}
		lakeFar   = color.RGBA{R: 0x4F, G: 0xB3, B: 0xBF, A: 0xFF}
		shore     = color.RGBA{R: 0x24, G: 0x38, B: 0x2B, A: 0xFF}
	)

	horizon := 0.55 * float64(h)
	shoreTop := 0.92 * float64(h)

	for x := 0; x < w; x++ {
		fx := float64(x) / float64(w)

		// Ridge lines as layered sine profiles, in pixels from the top.
		far := horizon - float64(h)*(0.18+0.10*math.Sin(fx*7.1)+0.05*math.Sin(fx*17.3+1.2))
		near := horizon - float64(h)*(0.05+0.14*math.Abs(math.Sin(fx*4.3+0.7)))
		snowline := far + 0.08*float64(h)

		for y := 0; y < h; y++ {
			fy := float64(y)

			var c color.RGBA
			switch {
			case fy >= shoreTop:
				c = shore
			case fy >= horizon:
				depth := (fy - horizon) / (shoreTop - horizon)
				c = lerpRGBA(lakeFar, lakeNear, depth)
				// Light streaks across the surface.
				glint := 0.06 * math.Sin(fx*40+depth*9)
				c = lighten(c, glint)
			case fy >= near:
				c = nearRidge
			case fy >= far:
				if fy < snowline {
					c = snow
				} else {
					c = farRidge
				}
			default:
				c = lerpRGBA(skyTop, skyHaze, fy/horizon)
			}

			img.SetRGBA(x, y, c)
		}
	}

	return img
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 0xFF,
	}
}

// lighten shifts a color toward white (or black for negative amounts).
func lighten(c color.RGBA, amount float64) color.RGBA {
	adjust := func(v uint8) uint8 {
		f := float64(v) + amount*255
		if f < 0 {
			return 0
		}
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return color.RGBA{R: adjust(c.R), G: adjust(c.G), B: adjust(c.B), A: 0xFF}
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}
