package game

import (
	"fmt"
	"log"

	"github.com/decker502/pixelframe/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	layoutObject   = "layout"
	layoutProperty = "frames"
)

// LayoutStore 持久化帧布局
//
// 布局以 YAML 格式保存到 gdata 跨平台存储中，格式与 data/frame_layout.yaml 相同。
// gdataManager 为 nil 时进入降级模式：布局只保存在内存中。
type LayoutStore struct {
	gdataManager *gdata.Manager
	memory       *config.FrameLayoutConfig
}

// NewLayoutStore 创建布局存储
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
func NewLayoutStore(gdataManager *gdata.Manager) *LayoutStore {
	return &LayoutStore{gdataManager: gdataManager}
}

// Save 保存布局
//
// 保存前会先验证布局，非法布局不会覆盖已保存的数据。
func (s *LayoutStore) Save(layout *config.FrameLayoutConfig) error {
	if layout == nil {
		return fmt.Errorf("layout cannot be nil")
	}
	if err := layout.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid layout: %w", err)
	}

	data, err := yaml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	// 降级模式：只保存到内存
	if s.gdataManager == nil {
		parsed, err := config.ParseFrameLayoutConfig(data)
		if err != nil {
			return err
		}
		s.memory = parsed
		return nil
	}

	if err := s.gdataManager.SaveObjectProp(layoutObject, layoutProperty, data); err != nil {
		return fmt.Errorf("failed to save layout: %w", err)
	}

	log.Printf("[LayoutStore] Saved layout with %d frames", len(layout.Frames))
	return nil
}

// Load 加载已保存的布局
//
// 返回：
//   - *config.FrameLayoutConfig: 已保存的布局，不存在时为 nil
//   - bool: 是否存在已保存的布局
//   - error: 读取或解析失败时返回错误
func (s *LayoutStore) Load() (*config.FrameLayoutConfig, bool, error) {
	if s.gdataManager == nil {
		return s.memory, s.memory != nil, nil
	}

	if !s.gdataManager.ObjectPropExists(layoutObject, layoutProperty) {
		return nil, false, nil
	}

	data, err := s.gdataManager.LoadObjectProp(layoutObject, layoutProperty)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load layout: %w", err)
	}

	layout, err := config.ParseFrameLayoutConfig(data)
	if err != nil {
		return nil, false, err
	}

	log.Printf("[LayoutStore] Loaded layout with %d frames", len(layout.Frames))
	return layout, true, nil
}

// LoadOrDefault 加载已保存的布局，不存在或损坏时返回 fallback
func (s *LayoutStore) LoadOrDefault(fallback *config.FrameLayoutConfig) *config.FrameLayoutConfig {
	layout, ok, err := s.Load()
	if err != nil {
		log.Printf("[LayoutStore] Warning: %v (using default layout)", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return layout
}
