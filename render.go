package lmu2png

import (
	"errors"
	"fmt"
	"image"

	"github.com/bodgit/lmu2png/chipset"
	"github.com/bodgit/lmu2png/rpg"
	"golang.org/x/image/draw"
)

// TileSize is the width and height in pixels of a map tile.
const TileSize = chipset.TileSize

// ErrCanvas is returned when the output image cannot be created.
var ErrCanvas = errors.New("lmu2png: unable to create output image")

func newCanvas(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || width > rpg.MaxDimension || height > rpg.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d tiles", ErrCanvas, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width*TileSize, height*TileSize)), nil
}

// scene is the state of a single render.
type scene struct {
	*Renderer

	m     *rpg.Map
	flags *chipset.FlagTable
	atlas chipset.Atlas
	conf  Config

	out   *image.RGBA
	order []int

	// Charsets loaded so far, nil for those that could not be loaded
	sheets map[string]image.Image
}

// Render draws m using the tile flags and chipset atlas and returns the
// resulting image. A nil atlas draws no tiles, a nil flags table treats every
// tile as drawn below events.
//
// Background and charset images are resolved and loaded as needed; any that
// are missing are reported and left out of the image.
func (r *Renderer) Render(m *rpg.Map, flags *chipset.FlagTable, atlas chipset.Atlas, conf Config) (*image.RGBA, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	out, err := newCanvas(m.Width, m.Height)
	if err != nil {
		return nil, err
	}

	if flags == nil {
		flags = new(chipset.FlagTable)
	}

	s := &scene{
		Renderer: r,
		m:        m,
		flags:    flags,
		atlas:    atlas,
		conf:     conf,
		out:      out,
		sheets:   make(map[string]image.Image),
	}

	tiles := !(conf.NoLowerTiles && conf.NoUpperTiles)
	if tiles && atlas == nil {
		r.logger.Println("No chipset image, tiles will not be drawn")
	}

	if !conf.NoBackground {
		s.drawBackground()
	}
	if tiles {
		s.drawTiles(false)
	}
	if !conf.NoEvents {
		s.order = drawOrder(m.Events)
		s.drawEvents(rpg.LayerBelow)
		s.drawEvents(rpg.LayerSame)
	}
	if tiles {
		s.drawTiles(true)
	}
	if !conf.NoEvents {
		s.drawEvents(rpg.LayerAbove)
	}

	return out, nil
}

func (s *scene) drawBackground() {
	name := s.m.ParallaxName
	if name == "" {
		return
	}

	file := s.finder.FindResource("Panorama", name)
	if file == "" {
		s.logger.Printf("Can't find parallax background %s\n", name)
		return
	}

	bg, err := s.loader.LoadImage(file, false)
	if err != nil {
		s.logger.Printf("Can't load parallax background %s: %v\n", name, err)
		return
	}

	b := bg.Bounds()
	if b.Empty() {
		return
	}

	// Fill the image with copies of the background
	size := s.out.Bounds().Size()
	for x := 0; x < size.X; x += b.Dx() {
		for y := 0; y < size.Y; y += b.Dy() {
			draw.Draw(s.out, image.Rect(x, y, x+b.Dx(), y+b.Dy()), bg, b.Min, draw.Src)
		}
	}
}

func (s *scene) drawTile(id, x, y int) {
	if s.atlas == nil {
		return
	}
	if r, ok := s.atlas.TileRect(id); ok {
		s.atlas.Blit(s.out, r, x, y)
	}
}

// drawTiles draws the tiles of both layers whose flags put them above events
// if above is set, or below events otherwise.
func (s *scene) drawTiles(above bool) {
	for y := 0; y < s.m.Height; y++ {
		for x := 0; x < s.m.Width; x++ {
			i := x + y*s.m.Width
			if !s.conf.NoLowerTiles {
				id := s.m.LowerLayer[i]
				if (s.flags[id]&chipset.FlagAboveLower != 0) == above {
					s.drawTile(int(id), x*TileSize, y*TileSize)
				}
			}
			if !s.conf.NoUpperTiles {
				id := s.m.UpperLayer[i]
				if (s.flags[id]&chipset.FlagAboveUpper != 0) == above {
					s.drawTile(int(id), x*TileSize, y*TileSize)
				}
			}
		}
	}
}

// sheet returns the named charset, loading it on first use.
func (s *scene) sheet(name string) image.Image {
	if m, ok := s.sheets[name]; ok {
		return m
	}

	var m image.Image
	if file := s.finder.FindResource("CharSet", name); file == "" {
		s.logger.Printf("Can't find charset %s\n", name)
	} else {
		var err error
		if m, err = s.loader.LoadImage(file, true); err != nil {
			s.logger.Printf("Can't load charset %s: %v\n", name, err)
			m = nil
		}
	}
	s.sheets[name] = m

	return m
}

// drawEvents draws every event whose active page is on the given layer.
func (s *scene) drawEvents(band int) {
	for _, i := range s.order {
		ev := &s.m.Events[i]

		n, ok := SelectActivePage(ev, s.conf.IgnoreConditions)
		if !ok {
			continue
		}
		p := &ev.Pages[n]
		if !onLayer(p, band) {
			continue
		}

		if p.CharacterName == "" {
			s.drawTile(PlaceholderBase+p.CharacterIndex, ev.X*TileSize, ev.Y*TileSize)
			continue
		}

		sheet := s.sheet(p.CharacterName)
		if sheet == nil {
			continue
		}

		r := SpriteRect(p.CharacterIndex, spriteFrame(p, s.conf.SimulateMovement), p.CharacterDirection)
		blitSprite(s.out, sheet, r.Add(sheet.Bounds().Min), ev.X, ev.Y)
	}
}
