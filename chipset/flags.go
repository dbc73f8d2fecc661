/*
Package chipset implements the passability flag table and the tile atlas of an
RPG Maker 2000/2003 chipset.

A chipset image is 480 by 256 pixels, split into 30 by 16 cells of 16 by 16
pixels. Tile ids on a map are not cell indices; they are grouped into blocks
of water, animated and terrain autotiles (ids below 5000), 144 lower layer
tiles starting at 5000 and 144 upper layer tiles starting at 10000.
*/
package chipset

import "github.com/bodgit/lmu2png/rpg"

const (
	waterZones     = 3
	waterZoneSize  = 1000
	animBase       = 3000
	animZones      = 3
	terrainBase    = 4000
	terrainZones   = 12
	autoZoneSize   = 50
	LowerBase      = 5000
	UpperBase      = 10000
	TilesPerLayer  = 144
	lowerAutoBytes = waterZones + animZones + terrainZones
)

// Flag bits that move a tile above same layer events.
const (
	FlagAboveLower = 0x30
	FlagAboveUpper = 0x10
)

// FlagTable holds the passability flags for every possible tile id.
type FlagTable [65536]byte

func flag(b []byte, i int) byte {
	if i < len(b) {
		return b[i]
	}
	return 0
}

func fill(t *FlagTable, start, n int, v byte) {
	for i := start; i < start+n; i++ {
		t[i] = v
	}
}

// Build expands the per-block passability data of cs into a flag table.
// Missing bytes are treated as zero.
func Build(cs *rpg.Chipset) *FlagTable {
	t := new(FlagTable)
	lower := []byte(cs.PassableDataLower)
	upper := []byte(cs.PassableDataUpper)

	// Water A/B/C
	for i := 0; i < waterZones; i++ {
		fill(t, i*waterZoneSize, waterZoneSize, flag(lower, i))
	}
	// Animated tiles
	for i := 0; i < animZones; i++ {
		fill(t, animBase+i*autoZoneSize, autoZoneSize, flag(lower, waterZones+i))
	}
	// Terrain autotiles
	for i := 0; i < terrainZones; i++ {
		fill(t, terrainBase+i*autoZoneSize, autoZoneSize, flag(lower, waterZones+animZones+i))
	}
	// One byte per tile for the lower and upper pages
	for i := 0; i < TilesPerLayer; i++ {
		t[LowerBase+i] = flag(lower, lowerAutoBytes+i)
		t[UpperBase+i] = flag(upper, i)
	}

	return t
}

// DefaultFlags returns the table used when no database chipset is available;
// every upper layer tile is drawn above events.
func DefaultFlags() *FlagTable {
	t := new(FlagTable)
	fill(t, UpperBase, TilesPerLayer, FlagAboveUpper)
	return t
}
