package resource

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/lmu2png/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, file string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, nil, 0o644))
}

func TestSplitPath(t *testing.T) {
	assert.Equal(t, []string{"/a", "/b", "/c"}, SplitPath("/a;/b:/c"))
	assert.Empty(t, SplitPath(""))
	assert.Equal(t, []string{"/a"}, SplitPath(";/a;"))
}

func TestFindResource(t *testing.T) {
	project := t.TempDir()
	rtp := t.TempDir()

	touch(t, filepath.Join(project, "CharSet", "hero.bmp"))
	touch(t, filepath.Join(rtp, "CharSet", "hero.png"))
	touch(t, filepath.Join(rtp, "ChipSet", "World.xyz"))
	touch(t, filepath.Join(rtp, "Panorama", "Ｓｋｙ.png"))

	f := NewFinder(project, rtp)

	tests := []struct {
		name     string
		category string
		base     string
		want     string
	}{
		{"project first", "CharSet", "hero", filepath.Join(project, "CharSet", "hero.bmp")},
		{"rtp", "ChipSet", "World", filepath.Join(rtp, "ChipSet", "World.xyz")},
		{"case folded", "ChipSet", "world", filepath.Join(rtp, "ChipSet", "World.xyz")},
		{"width folded", "Panorama", "sky", filepath.Join(rtp, "Panorama", "Ｓｋｙ.png")},
		{"missing", "CharSet", "villain", ""},
		{"missing category", "Battle", "hero", ""},
		{"empty name", "CharSet", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FindResource(tt.category, tt.base))
		})
	}
}

func TestFindResourceExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "CharSet", "hero.png"))
	touch(t, filepath.Join(dir, "CharSet", "hero.xyz"))

	f := &Finder{Dirs: []string{dir}}
	assert.Equal(t, filepath.Join(dir, "CharSet", "hero.png"), f.FindResource("CharSet", "hero"))

	f.Extensions = []string{".xyz"}
	assert.Equal(t, filepath.Join(dir, "CharSet", "hero.xyz"), f.FindResource("CharSet", "hero"))

	// Each Finder has its own list
	g := NewFinder(dir)
	g.Extensions[0] = ".bmp"
	assert.Equal(t, ".png", NewFinder(dir).Extensions[0])
}

func writePaletted(t *testing.T, file string, encode func(*os.File, image.Image) error) {
	t.Helper()
	m := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{
		color.RGBA{0xff, 0x00, 0xff, 0xff},
		color.RGBA{0x00, 0xff, 0x00, 0xff},
	})
	m.Pix[1] = 1

	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f, m))
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()

	encoders := map[string]func(*os.File, image.Image) error{
		"test.png": func(f *os.File, m image.Image) error { return png.Encode(f, m) },
		"test.xyz": func(f *os.File, m image.Image) error { return xyz.Encode(f, m) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(dir, name)
			writePaletted(t, file, encode)

			m, err := LoadImage(file, false)
			require.NoError(t, err)
			_, _, _, a := m.At(0, 0).RGBA()
			assert.Equal(t, uint32(0xffff), a)

			m, err = LoadImage(file, true)
			require.NoError(t, err)
			_, _, _, a = m.At(0, 0).RGBA()
			assert.Zero(t, a)
			_, g, _, a := m.At(1, 0).RGBA()
			assert.Equal(t, uint32(0xffff), a)
			assert.Equal(t, uint32(0xffff), g)
		})
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadImage(filepath.Join(dir, "missing.png"), false)
	assert.True(t, os.IsNotExist(err))

	file := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(file, []byte("not an image"), 0o644))
	_, err = LoadImage(file, false)
	assert.Error(t, err)
}

func TestColorKey(t *testing.T) {
	p := color.Palette{color.RGBA{1, 2, 3, 0xff}, color.RGBA{4, 5, 6, 0xff}}
	m := image.NewPaletted(image.Rect(0, 0, 1, 1), p)

	k := ColorKey(m)
	assert.Equal(t, color.NRGBA{}, k.Palette[0])
	assert.Equal(t, color.RGBA{1, 2, 3, 0xff}, m.Palette[0])
	assert.Equal(t, p[1], k.Palette[1])
}
