package systems

import (
	"fmt"

	"github.com/decker502/pixelframe/pkg/components"
	"github.com/decker502/pixelframe/pkg/ecs"
)

// FrameSystem 通过宿主世界访问帧实体的像素
//
// 与 FrameComponent 上的 ReadPixel/WritePixel 不同，这里的接口全部带边界检查，
// 越界或实体缺少帧组件时返回错误而不是 panic，适合处理来自输入或配置的坐标。
type FrameSystem struct {
	entityManager *ecs.EntityManager
}

// NewFrameSystem 创建帧系统
func NewFrameSystem(em *ecs.EntityManager) *FrameSystem {
	return &FrameSystem{entityManager: em}
}

// Frame 获取实体上的帧组件
func (s *FrameSystem) Frame(entity ecs.EntityID) (*components.FrameComponent, error) {
	frame, ok := ecs.GetComponent[*components.FrameComponent](s.entityManager, entity)
	if !ok {
		return nil, fmt.Errorf("entity %d has no FrameComponent", entity)
	}
	return frame, nil
}

// Frames 返回所有帧实体（按实体ID升序）
func (s *FrameSystem) Frames() []ecs.EntityID {
	return ecs.Query1[*components.FrameComponent](s.entityManager)
}

// FrameByName 按名称查找帧实体
func (s *FrameSystem) FrameByName(name string) (ecs.EntityID, bool) {
	for _, id := range s.Frames() {
		if n, ok := ecs.GetComponent[*components.FrameNameComponent](s.entityManager, id); ok && n.Name == name {
			return id, true
		}
	}
	return 0, false
}

// ReadPixel 读取帧实体指定坐标处的像素
//
// 返回:
//   - *components.Pixel: 像素引用，可直接修改
//   - error: 实体无帧组件或坐标越界（errors.Is(err, components.ErrOutOfBounds)）
func (s *FrameSystem) ReadPixel(entity ecs.EntityID, c components.Coordinate) (*components.Pixel, error) {
	frame, err := s.Frame(entity)
	if err != nil {
		return nil, err
	}
	p, err := frame.TryReadPixel(c)
	if err != nil {
		return nil, fmt.Errorf("entity %d: %w", entity, err)
	}
	return p, nil
}

// WritePixel 向帧实体指定坐标写入像素
func (s *FrameSystem) WritePixel(entity ecs.EntityID, c components.Coordinate, p components.Pixel) error {
	frame, err := s.Frame(entity)
	if err != nil {
		return err
	}
	if err := frame.TryWritePixel(c, p); err != nil {
		return fmt.Errorf("entity %d: %w", entity, err)
	}
	return nil
}

// ClearFrame 将帧实体的所有像素重置为默认值
func (s *FrameSystem) ClearFrame(entity ecs.EntityID) error {
	frame, err := s.Frame(entity)
	if err != nil {
		return err
	}
	frame.Clear()
	return nil
}
