package systems

import (
	"github.com/decker502/pixelframe/pkg/components"
	"github.com/decker502/pixelframe/pkg/ecs"
	"github.com/gdamore/tcell/v2"
)

// 终端预览的默认字符
const (
	DefaultFilledRune = '█'
	DefaultEmptyRune  = '·'
)

// FrameTermRenderSystem 在终端上预览帧布局
//
// 每个像素对应一个终端字符格。帧的设备像素偏移按格子尺寸换算成终端坐标，
// 即 (Position.X / CellWidth, Position.Y / CellHeight)。
type FrameTermRenderSystem struct {
	entityManager *ecs.EntityManager
	CellWidth     int
	CellHeight    int
	FilledRune    rune
	EmptyRune     rune
	Style         tcell.Style
}

// NewFrameTermRenderSystem 创建终端预览系统
func NewFrameTermRenderSystem(em *ecs.EntityManager, cellWidth, cellHeight int) *FrameTermRenderSystem {
	return &FrameTermRenderSystem{
		entityManager: em,
		CellWidth:     cellWidth,
		CellHeight:    cellHeight,
		FilledRune:    DefaultFilledRune,
		EmptyRune:     DefaultEmptyRune,
		Style:         tcell.StyleDefault,
	}
}

// Origin 返回帧左上角对应的终端坐标
func (s *FrameTermRenderSystem) Origin(frame *components.FrameComponent) (col, row int) {
	if s.CellWidth > 0 {
		col = frame.Position.X / s.CellWidth
	}
	if s.CellHeight > 0 {
		row = frame.Position.Y / s.CellHeight
	}
	return col, row
}

// Draw 将所有帧写入终端屏幕缓冲区（不调用 Show）
// 超出屏幕的部分被裁剪
func (s *FrameTermRenderSystem) Draw(screen tcell.Screen) {
	width, height := screen.Size()
	for _, id := range ecs.Query1[*components.FrameComponent](s.entityManager) {
		frame, ok := ecs.GetComponent[*components.FrameComponent](s.entityManager, id)
		if !ok {
			continue
		}

		col, row := s.Origin(frame)
		frame.Each(func(c components.Coordinate, p *components.Pixel) {
			x, y := col+c.X, row+c.Y
			if x >= width || y >= height {
				return
			}
			ch := s.EmptyRune
			if p.HasSprite() {
				ch = s.FilledRune
			}
			screen.SetContent(x, y, ch, nil, s.Style)
		})
	}
}
