package lmu2png

import (
	"image"

	"github.com/bodgit/lmu2png/rpg"
	"golang.org/x/image/draw"
)

// A charset holds 8 characters, 4 per row. Each character has 3 frames
// across and 4 directions down.
const (
	spritesPerRow   = 4
	spriteStride    = 72
	frameWidth      = 24
	rowStride       = 128
	directionHeight = 32
	spriteWidth     = 24
	spriteHeight    = 32

	// Offset of the sprite from the top-left corner of its tile so it is
	// centred horizontally and stands on the bottom edge
	anchorX = -4
	anchorY = -16

	middleFrame = 1
)

// PlaceholderBase is added to the character index of a page without a
// charset to get the chipset tile drawn in its place.
const PlaceholderBase = 0x2710

// SpriteRect returns the source rectangle within a charset of the character
// at index showing frame facing direction.
func SpriteRect(index, frame, direction int) image.Rectangle {
	x := (index%spritesPerRow)*spriteStride + frame*frameWidth
	y := (index/spritesPerRow)*rowStride + direction*directionHeight
	return image.Rect(x, y, x+spriteWidth, y+spriteHeight)
}

func spriteFrame(p *rpg.EventPage, simulateMovement bool) int {
	if simulateMovement {
		switch p.AnimationType {
		case rpg.AnimationNonContinuous, rpg.AnimationFixedNonContinuous, rpg.AnimationStepFrameFix:
			return middleFrame
		}
	}
	return p.CharacterPattern
}

// blitSprite draws the r region of sheet onto dst for an event standing on
// tile x, y. The whole region is drawn, so the sprite overhangs the tile by
// 4 pixels on either side and 16 pixels above.
func blitSprite(dst draw.Image, sheet image.Image, r image.Rectangle, x, y int) {
	dx := x*TileSize + anchorX
	dy := y*TileSize + anchorY
	draw.Draw(dst, image.Rect(dx, dy, dx+r.Dx(), dy+r.Dy()), sheet, r.Min, draw.Over)
}
