package systems

import (
	"github.com/decker502/pixelframe/pkg/components"
	"github.com/decker502/pixelframe/pkg/ecs"
	"github.com/decker502/pixelframe/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameRenderSystem 将所有帧的精灵绘制到 ebiten 屏幕上
//
// 每个格子占 CellWidth x CellHeight 设备像素，精灵缩放到格子大小。
// 帧按实体ID升序绘制，后创建的帧覆盖先创建的帧。
type FrameRenderSystem struct {
	entityManager *ecs.EntityManager
	CellWidth     int
	CellHeight    int
}

// NewFrameRenderSystem 创建帧渲染系统
//
// 参数:
//   - em: 宿主世界
//   - cellWidth, cellHeight: 格子的设备像素尺寸
func NewFrameRenderSystem(em *ecs.EntityManager, cellWidth, cellHeight int) *FrameRenderSystem {
	return &FrameRenderSystem{
		entityManager: em,
		CellWidth:     cellWidth,
		CellHeight:    cellHeight,
	}
}

// CellScreenPosition 计算格子左上角在屏幕上的位置（设备像素）
//
// screen = Position + (x*CellWidth, y*CellHeight)
func (s *FrameRenderSystem) CellScreenPosition(frame *components.FrameComponent, c components.Coordinate) (x, y float64) {
	x = float64(frame.Position.X + c.X*s.CellWidth)
	y = float64(frame.Position.Y + c.Y*s.CellHeight)
	return x, y
}

// FrameAt 查找屏幕坐标处最上层的帧及格子坐标
//
// 与绘制顺序相反，从最后绘制的帧开始检测。
func (s *FrameRenderSystem) FrameAt(screenX, screenY int) (ecs.EntityID, components.Coordinate, bool) {
	ids := ecs.Query1[*components.FrameComponent](s.entityManager)
	for i := len(ids) - 1; i >= 0; i-- {
		frame, ok := ecs.GetComponent[*components.FrameComponent](s.entityManager, ids[i])
		if !ok {
			continue
		}
		if c, hit := utils.ScreenToFrameCoords(frame, s.CellWidth, s.CellHeight, screenX, screenY); hit {
			return ids[i], c, true
		}
	}
	return 0, components.Coordinate{}, false
}

// Draw 绘制所有帧，返回实际绘制的精灵数量
func (s *FrameRenderSystem) Draw(screen *ebiten.Image) int {
	drawn := 0
	for _, id := range ecs.Query1[*components.FrameComponent](s.entityManager) {
		frame, ok := ecs.GetComponent[*components.FrameComponent](s.entityManager, id)
		if !ok {
			continue
		}
		drawn += s.DrawFrame(screen, frame)
	}
	return drawn
}

// DrawFrame 绘制单个帧，跳过空格子
func (s *FrameRenderSystem) DrawFrame(screen *ebiten.Image, frame *components.FrameComponent) int {
	drawn := 0
	frame.Each(func(c components.Coordinate, p *components.Pixel) {
		if !p.HasSprite() {
			return
		}

		bounds := p.Sprite.Bounds()
		if bounds.Dx() == 0 || bounds.Dy() == 0 {
			return
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(
			float64(s.CellWidth)/float64(bounds.Dx()),
			float64(s.CellHeight)/float64(bounds.Dy()),
		)
		x, y := s.CellScreenPosition(frame, c)
		op.GeoM.Translate(x, y)

		screen.DrawImage(p.Sprite, op)
		drawn++
	})
	return drawn
}
