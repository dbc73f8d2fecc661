/*
Package lmu2png is a library for rendering RPG Maker 2000/2003 maps to
images.

A map is drawn as a single still frame in the same order the engine uses: the
parallax background, tiles below events, events below and at hero level,
tiles that the chipset flags as drawn above events and finally events above
the hero.
*/
package lmu2png

import (
	"errors"
	"image"
	"io/ioutil"
	"log"
)

// ResourceFinder resolves a resource name within a category such as
// "ChipSet" to a loadable file, returning an empty string if there is none.
type ResourceFinder interface {
	FindResource(category, base string) string
}

// ImageLoader decodes an image file. With transparent set, the first color
// of a paletted image is treated as transparent.
type ImageLoader interface {
	LoadImage(path string, transparent bool) (image.Image, error)
}

// Config toggles parts of the rendered image. The zero value draws
// everything.
type Config struct {
	NoBackground bool
	NoLowerTiles bool
	NoUpperTiles bool
	NoEvents     bool

	// IgnoreConditions always draws the first page of an event.
	IgnoreConditions bool
	// SimulateMovement draws the middle frame for pages whose animation
	// type would cycle through it.
	SimulateMovement bool
}

var errNoLoader = errors.New("lmu2png: no image loader")

// noResources finds and loads nothing.
type noResources struct{}

func (noResources) FindResource(string, string) string { return "" }

func (noResources) LoadImage(string, bool) (image.Image, error) { return nil, errNoLoader }

type Renderer struct {
	finder ResourceFinder
	loader ImageLoader
	logger *log.Logger
}

// New returns a Renderer resolving and loading images with finder and
// loader. Missing resources are reported to logger. A nil finder finds no
// resources and a nil loader fails to load every image.
func New(finder ResourceFinder, loader ImageLoader, logger *log.Logger) *Renderer {
	if finder == nil {
		finder = noResources{}
	}
	if loader == nil {
		loader = noResources{}
	}
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Renderer{
		finder: finder,
		loader: loader,
		logger: logger,
	}
}
