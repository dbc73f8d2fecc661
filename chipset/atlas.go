package chipset

import (
	"image"

	"golang.org/x/image/draw"
)

const (
	// TileSize is the width and height of a chipset cell
	TileSize = 16

	sheetCols = 30
	sheetRows = 16
)

// Atlas maps tile ids to cells of a chipset and draws them.
type Atlas interface {
	// TileRect returns the source rectangle of id, or false if id does
	// not name a drawable cell.
	TileRect(id int) (image.Rectangle, bool)
	// Blit composites the source rectangle r onto dst with its top-left
	// corner at x, y.
	Blit(dst draw.Image, r image.Rectangle, x, y int)
}

// Sheet is an Atlas over a standard chipset image.
//
// Autotiles are drawn using a single representative cell of their block;
// neighbour-dependent autotile composition is not performed.
type Sheet struct {
	img image.Image
}

// NewSheet returns a Sheet for the chipset image m.
func NewSheet(m image.Image) *Sheet {
	return &Sheet{img: m}
}

// Water A/B/C source cells
var waterCells = [waterZones]image.Point{{0, 0}, {3, 0}, {0, 4}}

// Origin of each terrain block; each block is 3 by 4 cells
var terrainCells = [terrainZones]image.Point{
	{0, 8}, {3, 8}, {0, 12}, {3, 12},
	{6, 0}, {9, 0}, {6, 4}, {9, 4},
	{6, 8}, {9, 8}, {6, 12}, {9, 12},
}

func cell(id int) (image.Point, bool) {
	switch {
	case id < 0:
		return image.Point{}, false
	case id < waterZones*waterZoneSize:
		return waterCells[id/waterZoneSize], true
	case id >= animBase && id < animBase+animZones*autoZoneSize:
		return image.Pt(3+(id-animBase)/autoZoneSize, 4), true
	case id >= terrainBase && id < terrainBase+terrainZones*autoZoneSize:
		// Centre of the block, the fully surrounded variant
		return terrainCells[(id-terrainBase)/autoZoneSize].Add(image.Pt(1, 2)), true
	case id >= LowerBase && id < LowerBase+TilesPerLayer:
		n := id - LowerBase
		if n < 96 {
			return image.Pt(12+n%6, n/6), true
		}
		n -= 96
		return image.Pt(18+n%6, n/6), true
	case id >= UpperBase && id < UpperBase+TilesPerLayer:
		n := id - UpperBase
		if n < 48 {
			return image.Pt(18+n%6, 8+n/6), true
		}
		n -= 48
		return image.Pt(24+n%6, n/6), true
	}
	return image.Point{}, false
}

// TileRect implements Atlas.
func (s *Sheet) TileRect(id int) (image.Rectangle, bool) {
	c, ok := cell(id)
	if !ok || c.X >= sheetCols || c.Y >= sheetRows {
		return image.Rectangle{}, false
	}
	min := s.img.Bounds().Min.Add(c.Mul(TileSize))
	r := image.Rectangle{Min: min, Max: min.Add(image.Pt(TileSize, TileSize))}
	if !r.In(s.img.Bounds()) {
		return image.Rectangle{}, false
	}
	return r, true
}

// Blit implements Atlas.
func (s *Sheet) Blit(dst draw.Image, r image.Rectangle, x, y int) {
	draw.Draw(dst, image.Rect(x, y, x+r.Dx(), y+r.Dy()), s.img, r.Min, draw.Over)
}
