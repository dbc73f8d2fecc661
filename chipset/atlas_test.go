package chipset

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetTileRect(t *testing.T) {
	s := NewSheet(image.NewNRGBA(image.Rect(0, 0, 480, 256)))

	tests := []struct {
		name string
		id   int
		cell image.Point
		ok   bool
	}{
		{"lower first", LowerBase, image.Pt(12, 0), true},
		{"lower end of first column", LowerBase + 95, image.Pt(17, 15), true},
		{"lower second column", LowerBase + 96, image.Pt(18, 0), true},
		{"lower last", LowerBase + 143, image.Pt(23, 7), true},
		{"upper first", UpperBase, image.Pt(18, 8), true},
		{"upper second column", UpperBase + 48, image.Pt(24, 0), true},
		{"upper last", UpperBase + 143, image.Pt(29, 15), true},
		{"water A", 0, image.Pt(0, 0), true},
		{"water C", 2999, image.Pt(0, 4), true},
		{"animated", 3050, image.Pt(4, 4), true},
		{"terrain 1", 4000, image.Pt(1, 10), true},
		{"terrain 12", 4599, image.Pt(10, 14), true},
		{"gap", 3500, image.Point{}, false},
		{"past lower", LowerBase + 144, image.Point{}, false},
		{"past upper", UpperBase + 144, image.Point{}, false},
		{"negative", -1, image.Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := s.TileRect(tt.id)
			require.Equal(t, tt.ok, ok)
			if ok {
				min := tt.cell.Mul(TileSize)
				assert.Equal(t, image.Rect(min.X, min.Y, min.X+TileSize, min.Y+TileSize), r)
			}
		})
	}
}

func TestSheetTileRectSmallImage(t *testing.T) {
	s := NewSheet(image.NewNRGBA(image.Rect(0, 0, 64, 64)))

	_, ok := s.TileRect(LowerBase)
	assert.False(t, ok)
	_, ok = s.TileRect(0)
	assert.True(t, ok)
}

func TestSheetBlit(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 480, 256))
	red := color.NRGBA{0xff, 0, 0, 0xff}
	// Fill the first lower tile, leaving one transparent pixel
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			src.Set(12*TileSize+x, y, red)
		}
	}
	src.Set(12*TileSize, 0, color.NRGBA{})

	s := NewSheet(src)
	dst := image.NewRGBA(image.Rect(0, 0, 32, 16))
	blue := color.RGBA{0, 0, 0xff, 0xff}
	dst.Set(16, 0, blue)

	r, ok := s.TileRect(LowerBase)
	require.True(t, ok)
	s.Blit(dst, r, 16, 0)

	assert.Equal(t, blue, dst.RGBAAt(16, 0))
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, dst.RGBAAt(31, 15))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(15, 0))
}
