package xyz

import (
	"compress/zlib"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

type encoder struct {
	w io.Writer
}

func padPalette(p color.Palette) color.Palette {
	// Pad palette to exactly paletteColors
	for len(p) < paletteColors {
		p = append(p, color.RGBA{0, 0, 0, 0xff})
	}
	return p
}

func (e *encoder) encode(m *image.Paletted) error {
	b := m.Bounds()

	var header [headerSize]byte
	copy(header[:], signature)
	binary.LittleEndian.PutUint16(header[4:6], uint16(b.Dx()))
	binary.LittleEndian.PutUint16(header[6:8], uint16(b.Dy()))
	if _, err := e.w.Write(header[:]); err != nil {
		return err
	}

	zw := zlib.NewWriter(e.w)

	// Write out palette
	var tmp [paletteBytes]byte
	for i, c := range m.Palette {
		r, g, b, _ := c.RGBA()
		tmp[i*3+0] = byte(r >> 8)
		tmp[i*3+1] = byte(g >> 8)
		tmp[i*3+2] = byte(b >> 8)
	}
	if _, err := zw.Write(tmp[:]); err != nil {
		return err
	}

	// Write out pixel information, one row at a time as the stride may be
	// wider than the image
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		if _, err := zw.Write(m.Pix[i : i+b.Dx()]); err != nil {
			return err
		}
	}

	return zw.Close()
}

// Encode writes the Image m to w in XYZ format. Images with more than 256
// colors are quantized.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() > maxDimension || b.Dy() > maxDimension {
		return errors.New("xyz: image is too large")
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil {
		if cp, ok := m.ColorModel().(color.Palette); ok && len(cp) <= paletteColors {
			pm = image.NewPaletted(b, cp)
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					pm.Set(x, y, cp.Convert(m.At(x, y)))
				}
			}
		}
	}

	if pm == nil || len(pm.Palette) > paletteColors {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, paletteColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	// Copy so the caller's palette is not extended
	dup := *pm
	dup.Palette = padPalette(append(color.Palette(nil), pm.Palette...))

	e := encoder{w: w}

	return e.encode(&dup)
}
