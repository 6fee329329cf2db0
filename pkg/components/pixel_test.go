package components

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultPixelHasNoSprite(t *testing.T) {
	p := DefaultPixel()
	if p.HasSprite() {
		t.Error("default pixel should not hold a sprite")
	}
	if p != (Pixel{}) {
		t.Error("default pixel should equal the zero value")
	}
}

func TestPixelEqualityByValue(t *testing.T) {
	sprite := ebiten.NewImage(4, 4)
	a := NewSpritePixel(sprite)
	b := NewSpritePixel(sprite)
	if a != b {
		t.Error("pixels holding the same sprite should compare equal")
	}

	other := NewSpritePixel(ebiten.NewImage(4, 4))
	if a == other {
		t.Error("pixels holding different sprites should not compare equal")
	}

	// 复制后修改副本不影响原值
	c := a
	c.Clear()
	if !a.HasSprite() {
		t.Error("clearing a copy should not affect the original pixel")
	}
	if c.HasSprite() {
		t.Error("Clear should empty the sprite slot")
	}
}
