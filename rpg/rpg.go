/*
Package rpg defines the typed map and database records consumed by the
renderer.

The records mirror the fields of the RPG Maker 2000/2003 LMU and LDB formats
that matter for drawing a still frame of a map. They are decoded from JSON
exports of those files; the binary formats themselves are not parsed here.
*/
package rpg

import (
	"errors"
	"fmt"
)

// MaxDimension is the largest map width or height the editor allows.
const MaxDimension = 500

// Event layers as stored on a page.
const (
	LayerBelow = iota
	LayerSame
	LayerAbove
)

// Animation types as stored on a page.
const (
	AnimationNonContinuous = iota
	AnimationContinuous
	AnimationFixedNonContinuous
	AnimationFixedContinuous
	AnimationFixedGraphic
	AnimationSpin
	AnimationStepFrameFix
)

var (
	errDimensions = errors.New("rpg: invalid map dimensions")
	errLayerSize  = errors.New("rpg: layer size does not match map dimensions")
)

// Map is a single map with its two tile layers and placed events.
type Map struct {
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	ChipsetID    int      `json:"chipset_id"`
	ParallaxName string   `json:"parallax_name"`
	LowerLayer   []uint16 `json:"lower_layer"`
	UpperLayer   []uint16 `json:"upper_layer"`
	Events       []Event  `json:"events"`
}

// Validate checks the map dimensions agree with its layers.
func (m *Map) Validate() error {
	if m.Width <= 0 || m.Height <= 0 || m.Width > MaxDimension || m.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d", errDimensions, m.Width, m.Height)
	}
	n := m.Width * m.Height
	if len(m.LowerLayer) != n {
		return fmt.Errorf("%w: lower layer has %d tiles, want %d", errLayerSize, len(m.LowerLayer), n)
	}
	if len(m.UpperLayer) != n {
		return fmt.Errorf("%w: upper layer has %d tiles, want %d", errLayerSize, len(m.UpperLayer), n)
	}
	return nil
}

// Event is an object placed on the map.
type Event struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Pages []EventPage `json:"pages"`
}

// ConditionFlags are the activation conditions of a page.
type ConditionFlags struct {
	SwitchA  bool `json:"switch_a"`
	SwitchB  bool `json:"switch_b"`
	Variable bool `json:"variable"`
	Item     bool `json:"item"`
	Actor    bool `json:"actor"`
	Timer    bool `json:"timer"`
	Timer2   bool `json:"timer2"`
}

// Any reports whether any condition is engaged.
func (f ConditionFlags) Any() bool {
	return f.SwitchA || f.SwitchB || f.Variable || f.Item || f.Actor || f.Timer || f.Timer2
}

// EventPageCondition wraps the condition flags of a page.
type EventPageCondition struct {
	Flags ConditionFlags `json:"flags"`
}

// EventPage is one conditional appearance of an event.
type EventPage struct {
	ID                 int                `json:"id"`
	Condition          EventPageCondition `json:"condition"`
	CharacterName      string             `json:"character_name"`
	CharacterIndex     int                `json:"character_index"`
	CharacterDirection int                `json:"character_direction"`
	CharacterPattern   int                `json:"character_pattern"`
	Layer              int                `json:"layer"`
	AnimationType      int                `json:"animation_type"`
}

// Chipset is a chipset entry from the database.
type Chipset struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	ChipsetName       string `json:"chipset_name"`
	PassableDataLower Bytes  `json:"passable_data_lower"`
	PassableDataUpper Bytes  `json:"passable_data_upper"`
}

// Database holds the database entries used when rendering.
type Database struct {
	Chipsets []Chipset `json:"chipsets"`
}

// Chipset returns the chipset with the given 1-based id.
func (db *Database) Chipset(id int) (*Chipset, error) {
	if id < 1 || id > len(db.Chipsets) {
		return nil, fmt.Errorf("rpg: chipset %d out of range (1-%d)", id, len(db.Chipsets))
	}
	return &db.Chipsets[id-1], nil
}
