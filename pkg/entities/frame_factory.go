package entities

import (
	"fmt"
	"log"

	"github.com/decker502/pixelframe/pkg/components"
	"github.com/decker502/pixelframe/pkg/config"
	"github.com/decker502/pixelframe/pkg/ecs"
)

// AttachFrame 创建一个新实体并将帧挂载到该实体上
//
// 宿主世界以参数形式显式传入，不依赖任何全局注册表。
// 帧只能被一个实体持有：同一世界中已挂载的帧会被拒绝；
// 跨世界共享同一个帧实例由调用方负责避免。
//
// 参数:
//   - em: 宿主世界（实体管理器）
//   - frame: 已构建的帧，挂载后由该实体独占
//
// 返回:
//   - ecs.EntityID: 新实体ID，失败时为 0
//   - error: em 或 frame 为 nil、或帧已挂载到其他实体时返回错误
func AttachFrame(em *ecs.EntityManager, frame *components.FrameComponent) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if frame == nil {
		return 0, fmt.Errorf("frame cannot be nil")
	}

	for _, id := range ecs.Query1[*components.FrameComponent](em) {
		if attached, ok := ecs.GetComponent[*components.FrameComponent](em, id); ok && attached == frame {
			return 0, fmt.Errorf("frame is already attached to entity %d", id)
		}
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, frame)
	return entityID, nil
}

// NewFrameEntity 根据布局配置创建帧实体
//
// 除 FrameComponent 外还挂载 FrameNameComponent，便于按名称查找。
func NewFrameEntity(em *ecs.EntityManager, cfg config.FrameConfig) (ecs.EntityID, error) {
	frame, err := components.NewFrameBuilder(components.GridSize{Width: cfg.Width, Height: cfg.Height}).
		Position(components.Offset{X: cfg.Position.X, Y: cfg.Position.Y}).
		Build()
	if err != nil {
		return 0, fmt.Errorf("failed to build frame '%s': %w", cfg.Name, err)
	}

	entityID, err := AttachFrame(em, frame)
	if err != nil {
		return 0, err
	}
	em.AddComponent(entityID, &components.FrameNameComponent{Name: cfg.Name})

	log.Printf("[FrameFactory] Created frame '%s' (%dx%d at %d,%d) as entity %d",
		cfg.Name, cfg.Width, cfg.Height, cfg.Position.X, cfg.Position.Y, entityID)
	return entityID, nil
}

// NewFrameEntitiesFromLayout 按声明顺序为布局中的每个帧创建实体
//
// 任意一个帧创建失败时，本次已创建的实体会被立即移除并返回错误，
// 宿主此前标记删除的实体不受影响。
func NewFrameEntitiesFromLayout(em *ecs.EntityManager, layout *config.FrameLayoutConfig) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if layout == nil {
		return nil, fmt.Errorf("layout cannot be nil")
	}

	ids := make([]ecs.EntityID, 0, len(layout.Frames))
	for _, fc := range layout.Frames {
		id, err := NewFrameEntity(em, fc)
		if err != nil {
			for _, created := range ids {
				em.RemoveEntity(created)
			}
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
