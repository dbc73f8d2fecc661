package lmu2png

import "github.com/bodgit/lmu2png/rpg"

// SelectActivePage returns the index of the page of ev that is drawn. With
// ignoreConditions the first page is always used, otherwise it is the last
// page without any activation conditions. It returns false if there is no
// such page.
func SelectActivePage(ev *rpg.Event, ignoreConditions bool) (int, bool) {
	if len(ev.Pages) == 0 {
		return 0, false
	}
	if ignoreConditions {
		return 0, true
	}

	page, ok := 0, false
	for i := range ev.Pages {
		if ev.Pages[i].Condition.Flags.Any() {
			continue
		}
		page, ok = i, true
	}
	return page, ok
}

// onLayer reports whether p is drawn in the given band. Pages with an unknown
// layer are drawn in every band.
func onLayer(p *rpg.EventPage, band int) bool {
	switch p.Layer {
	case rpg.LayerBelow, rpg.LayerSame, rpg.LayerAbove:
		return p.Layer == band
	}
	return true
}
