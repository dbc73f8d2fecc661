package lmu2png

import (
	"image"
	"testing"

	"github.com/bodgit/lmu2png/chipset"
	"github.com/bodgit/lmu2png/rpg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

func testChipsetImage(t *testing.T) *image.NRGBA {
	t.Helper()

	m := image.NewNRGBA(image.Rect(0, 0, 480, 256))
	s := chipset.NewSheet(m)
	for id, c := range map[int]image.Image{
		chipset.LowerBase:     image.NewUniform(red),
		chipset.UpperBase:     image.NewUniform(blue),
		chipset.UpperBase + 1: image.NewUniform(green),
	} {
		r, ok := s.TileRect(id)
		require.True(t, ok)
		draw.Draw(m, r, c, image.Point{}, draw.Src)
	}
	return m
}

func TestRenderMapDatabase(t *testing.T) {
	res := newFakeResources()
	res.add("ChipSet", "world", testChipsetImage(t))

	lower := make(rpg.Bytes, 162)
	lower[18] = 0x30
	db := &rpg.Database{
		Chipsets: []rpg.Chipset{
			{ChipsetName: "world", PassableDataLower: lower},
			{ChipsetName: "world"},
			{ChipsetName: "missing"},
		},
	}

	m := newTestMap(1, 1)
	m.LowerLayer[0] = chipset.LowerBase
	m.Events = []rpg.Event{placeholderEvent(0, 0, 0, rpg.LayerSame)}

	r, logged := newTestRenderer(res)

	m.ChipsetID = 1
	out, err := r.RenderMap(m, db, "", Config{})
	require.NoError(t, err)
	assertRegion(t, out, out.Bounds(), red)
	assert.Equal(t, 1, res.loads["ChipSet/world"])

	m.ChipsetID = 2
	out, err = r.RenderMap(m, db, "", Config{})
	require.NoError(t, err)
	assertRegion(t, out, out.Bounds(), blue)

	m.ChipsetID = 3
	out, err = r.RenderMap(m, db, "", Config{})
	require.NoError(t, err)
	assertRegion(t, out, out.Bounds(), transparent)
	assert.Contains(t, logged.String(), "Chipset missing cannot be found")

	m.ChipsetID = 4
	_, err = r.RenderMap(m, db, "", Config{})
	assert.Error(t, err)
}

func TestRenderMapChipsetFile(t *testing.T) {
	res := newFakeResources()
	res.files["custom.png"] = testChipsetImage(t)

	m := newTestMap(1, 1)
	m.UpperLayer[0] = chipset.UpperBase
	m.Events = []rpg.Event{placeholderEvent(0, 0, 1, rpg.LayerSame)}

	r, logged := newTestRenderer(res)

	// Upper tiles are drawn above events by default
	out, err := r.RenderMap(m, nil, "custom.png", Config{})
	require.NoError(t, err)
	assertRegion(t, out, out.Bounds(), blue)

	out, err = r.RenderMap(m, nil, "custom.png", Config{NoUpperTiles: true})
	require.NoError(t, err)
	assertRegion(t, out, out.Bounds(), green)

	out, err = r.RenderMap(m, nil, "broken.png", Config{})
	require.NoError(t, err)
	assertRegion(t, out, out.Bounds(), transparent)
	assert.Contains(t, logged.String(), "Can't load chipset broken.png")
}

func TestRenderMapNoChipset(t *testing.T) {
	r, _ := newTestRenderer(newFakeResources())

	_, err := r.RenderMap(newTestMap(1, 1), nil, "", Config{})
	assert.Equal(t, errNoChipset, err)
}
