package lmu2png

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/lmu2png/xyz"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

const maxColors = 256

func reduceColors(m image.Image, colors int) *image.Paletted {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// Save writes m to file, choosing the format from the extension: ".png" or
// ".xyz". If colors is greater than zero a PNG is reduced to at most that
// many colors.
func Save(file string, m image.Image, colors int) error {
	if colors < 0 || colors > maxColors {
		return fmt.Errorf("lmu2png: colors must be between 0 and %d", maxColors)
	}

	var encode func(*os.File, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".png":
		if colors > 0 {
			m = reduceColors(m, colors)
		}
		encode = func(f *os.File, m image.Image) error {
			return png.Encode(f, m)
		}
	case ".xyz":
		encode = func(f *os.File, m image.Image) error {
			return xyz.Encode(f, m)
		}
	default:
		return fmt.Errorf("lmu2png: unsupported output format %q", ext)
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := encode(f, m); err != nil {
		return err
	}

	return f.Close()
}
