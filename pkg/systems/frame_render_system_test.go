package systems

import (
	"testing"

	"github.com/decker502/pixelframe/pkg/components"
	"github.com/decker502/pixelframe/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestCellScreenPosition(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFrameRenderSystem(em, 16, 8)
	frame, _ := components.NewFrameBuilder(components.GridSize{Width: 4, Height: 4}).
		Position(components.Offset{X: 100, Y: 50}).
		Build()

	tests := []struct {
		name  string
		c     components.Coordinate
		wantX float64
		wantY float64
	}{
		{"origin", components.Coordinate{X: 0, Y: 0}, 100, 50},
		{"second column", components.Coordinate{X: 1, Y: 0}, 116, 50},
		{"second row", components.Coordinate{X: 0, Y: 1}, 100, 58},
		{"last cell", components.Coordinate{X: 3, Y: 3}, 148, 74},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := system.CellScreenPosition(frame, tt.c)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("CellScreenPosition(%v) = (%.0f, %.0f), want (%.0f, %.0f)", tt.c, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestFrameRenderSystemDraw(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFrameRenderSystem(em, 8, 8)

	a := createTestFrameEntity(t, em, "a", 3, 3, components.Offset{})
	b := createTestFrameEntity(t, em, "b", 2, 2, components.Offset{X: 32})

	sprite := ebiten.NewImage(4, 4)
	frameA, _ := ecs.GetComponent[*components.FrameComponent](em, a)
	frameB, _ := ecs.GetComponent[*components.FrameComponent](em, b)
	frameA.WritePixel(components.Coordinate{X: 0, Y: 0}, components.NewSpritePixel(sprite))
	frameA.WritePixel(components.Coordinate{X: 2, Y: 2}, components.NewSpritePixel(sprite))
	frameB.WritePixel(components.Coordinate{X: 1, Y: 0}, components.NewSpritePixel(sprite))

	screen := ebiten.NewImage(64, 64)
	if drawn := system.Draw(screen); drawn != 3 {
		t.Errorf("Draw() drew %d sprites, want 3", drawn)
	}
}

func TestFrameRenderSystemEmptyFrames(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFrameRenderSystem(em, 8, 8)
	createTestFrameEntity(t, em, "empty", 24, 24, components.Offset{})

	screen := ebiten.NewImage(200, 200)
	if drawn := system.Draw(screen); drawn != 0 {
		t.Errorf("empty frame should draw nothing, drew %d", drawn)
	}
}

func TestFrameRenderSystemFrameAt(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFrameRenderSystem(em, 10, 10)

	bottom := createTestFrameEntity(t, em, "bottom", 10, 10, components.Offset{})
	// 覆盖在 bottom 右下角的面板
	top := createTestFrameEntity(t, em, "top", 2, 2, components.Offset{X: 50, Y: 50})

	tests := []struct {
		name       string
		x, y       int
		wantEntity ecs.EntityID
		wantCoord  components.Coordinate
		wantHit    bool
	}{
		{"bottom only", 5, 5, bottom, components.Coordinate{X: 0, Y: 0}, true},
		{"overlap picks top", 55, 65, top, components.Coordinate{X: 0, Y: 1}, true},
		{"outside every frame", 150, 5, 0, components.Coordinate{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, c, hit := system.FrameAt(tt.x, tt.y)
			if hit != tt.wantHit || id != tt.wantEntity || c != tt.wantCoord {
				t.Errorf("FrameAt(%d,%d) = (%d, %v, %v), want (%d, %v, %v)",
					tt.x, tt.y, id, c, hit, tt.wantEntity, tt.wantCoord, tt.wantHit)
			}
		})
	}
}
