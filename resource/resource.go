/*
Package resource locates and loads the image resources of a game project.

Resources live in category directories such as ChipSet, CharSet and Panorama
under the project directory and any number of runtime package (RTP)
directories, which are searched in order.
*/
package resource

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG
	"os"
	"path/filepath"
	"strings"

	_ "github.com/bodgit/lmu2png/xyz" // register XYZ
	_ "golang.org/x/image/bmp"         // register BMP
	"golang.org/x/text/unicode/norm"
)

func defaultExtensions() []string {
	return []string{".png", ".bmp", ".xyz"}
}

// SplitPath splits a list of directories separated by ';' or ':' as used by
// the RPG2K_RTP_PATH and RPG2K3_RTP_PATH environment variables.
func SplitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == ';' || r == ':'
	})
}

func foldName(name string) string {
	return strings.ToLower(norm.NFKC.String(name))
}

// Finder resolves resource names against a list of directories.
type Finder struct {
	Dirs       []string
	// Extensions are tried in this order for every directory. If empty,
	// ".png", ".bmp" and ".xyz" are used.
	Extensions []string
}

// NewFinder returns a Finder searching the project directory first and then
// each RTP directory.
func NewFinder(project string, rtp ...string) *Finder {
	return &Finder{
		Dirs:       append([]string{project}, rtp...),
		Extensions: defaultExtensions(),
	}
}

// fold looks for a directory entry matching name ignoring case and Unicode
// normalization differences.
func fold(dir, name string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	want := foldName(name)
	for _, e := range entries {
		if !e.IsDir() && foldName(e.Name()) == want {
			return filepath.Join(dir, e.Name())
		}
	}
	return ""
}

func (f *Finder) extensions() []string {
	if len(f.Extensions) == 0 {
		return defaultExtensions()
	}
	return f.Extensions
}

func exists(file string) bool {
	info, err := os.Stat(file)
	return err == nil && info.Mode().IsRegular()
}

// FindResource returns the path of the first file named base in the category
// subdirectory of any search directory, or an empty string if there is none.
func (f *Finder) FindResource(category, base string) string {
	if base == "" {
		return ""
	}
	exts := f.extensions()
	for _, dir := range f.Dirs {
		for _, ext := range exts {
			file := filepath.Join(dir, category, base+ext)
			if exists(file) {
				return file
			}
		}
	}
	// Projects made on case-insensitive filesystems are often inconsistent
	for _, dir := range f.Dirs {
		for _, ext := range exts {
			if file := fold(filepath.Join(dir, category), base+ext); file != "" {
				return file
			}
		}
	}
	return ""
}

// LoadImage is the same as the package level LoadImage.
func (f *Finder) LoadImage(path string, transparent bool) (image.Image, error) {
	return LoadImage(path, transparent)
}

// LoadImage decodes the image at path. With transparent set, palette index 0
// of a paletted image becomes fully transparent.
func LoadImage(path string, transparent bool) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if pm, ok := m.(*image.Paletted); ok && transparent && len(pm.Palette) > 0 {
		return ColorKey(pm), nil
	}

	return m, nil
}

// ColorKey returns a copy of m sharing its pixels where the first palette
// entry is fully transparent.
func ColorKey(m *image.Paletted) *image.Paletted {
	dup := *m
	dup.Palette = append(color.Palette(nil), m.Palette...)
	dup.Palette[0] = color.NRGBA{}
	return &dup
}
