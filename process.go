package lmu2png

import (
	"errors"
	"image"

	"github.com/bodgit/lmu2png/chipset"
	"github.com/bodgit/lmu2png/rpg"
)

var errNoChipset = errors.New("lmu2png: no chipset image or database")

// Chipsets looks up database chipsets by their 1-based id.
type Chipsets interface {
	Chipset(id int) (*rpg.Chipset, error)
}

// RenderMap renders m using the chipset named by the map in chipsets. If
// file is not empty it is used as the chipset image instead, with default
// flags that draw every upper layer tile above events.
func (r *Renderer) RenderMap(m *rpg.Map, chipsets Chipsets, file string, conf Config) (*image.RGBA, error) {
	var flags *chipset.FlagTable
	if file == "" {
		if chipsets == nil {
			return nil, errNoChipset
		}

		cs, err := chipsets.Chipset(m.ChipsetID)
		if err != nil {
			return nil, err
		}
		flags = chipset.Build(cs)

		if file = r.finder.FindResource("ChipSet", cs.ChipsetName); file == "" {
			r.logger.Printf("Chipset %s cannot be found\n", cs.ChipsetName)
		}
	} else {
		flags = chipset.DefaultFlags()
	}

	var atlas chipset.Atlas
	if file != "" {
		img, err := r.loader.LoadImage(file, true)
		if err != nil {
			r.logger.Printf("Can't load chipset %s: %v\n", file, err)
		} else {
			atlas = chipset.NewSheet(img)
		}
	}

	return r.Render(m, flags, atlas, conf)
}
