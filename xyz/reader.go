package xyz

import (
	"bufio"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
)

var (
	errSignature = errors.New("xyz: invalid format")
	errNotEnough = errors.New("xyz: not enough image data")
	errTooMuch   = errors.New("xyz: too much image data")
)

func init() {
	image.RegisterFormat("xyz", signature, Decode, DecodeConfig)
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	width, height int

	image   *image.Paletted
	palette color.Palette

	tmp [paletteBytes]byte
}

func (d *decoder) readHeader() error {
	if err := readFull(d.r, d.tmp[:headerSize]); err != nil {
		return err
	}
	if string(d.tmp[:len(signature)]) != signature {
		return errSignature
	}
	d.width = int(binary.LittleEndian.Uint16(d.tmp[4:6]))
	d.height = int(binary.LittleEndian.Uint16(d.tmp[6:8]))
	return nil
}

func (d *decoder) readPalette(r io.Reader) error {
	if err := readFull(r, d.tmp[:]); err != nil {
		return err
	}
	d.palette = make(color.Palette, paletteColors)
	for i := range d.palette {
		d.palette[i] = color.RGBA{d.tmp[i*3], d.tmp[i*3+1], d.tmp[i*3+2], 0xff}
	}
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = bufio.NewReader(r)

	if err := d.readHeader(); err != nil {
		if err == io.ErrUnexpectedEOF {
			return errNotEnough
		}
		return err
	}

	zr, err := zlib.NewReader(d.r)
	if err != nil {
		return err
	}
	defer zr.Close()

	if err := d.readPalette(zr); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, d.width, d.height), d.palette)
	if err := readFull(zr, d.image.Pix); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if n, err := zr.Read(d.tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil && n == 0 {
			return err
		}
		return errTooMuch
	}

	return nil
}

// Decode reads an XYZ image from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of an XYZ image
// without decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: d.palette,
		Width:      d.width,
		Height:     d.height,
	}, nil
}
