package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// 默认的格子尺寸（设备像素）
const (
	DefaultCellWidth  = 16
	DefaultCellHeight = 16
)

// FrameLayoutConfig 帧布局配置
//
// 描述一个显示表面上要合成的所有帧（逻辑屏幕/面板）。
//
// 配置文件位置: data/frame_layout.yaml
type FrameLayoutConfig struct {
	// CellWidth 每个格子在设备上的宽度（像素）
	CellWidth int `yaml:"cellWidth"`

	// CellHeight 每个格子在设备上的高度（像素）
	CellHeight int `yaml:"cellHeight"`

	// Frames 帧列表，按声明顺序创建和绘制
	Frames []FrameConfig `yaml:"frames"`
}

// FrameConfig 单个帧的配置
type FrameConfig struct {
	// Name 帧名称，布局内唯一
	Name string `yaml:"name"`

	// Width 帧宽度（格子）
	Width int `yaml:"width"`

	// Height 帧高度（格子）
	Height int `yaml:"height"`

	// Position 放置偏移（设备像素）
	Position PositionConfig `yaml:"position"`
}

// PositionConfig 放置偏移
type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LoadFrameLayoutConfig 加载帧布局配置
//
// 参数:
//   - path: 配置文件路径（如 "data/frame_layout.yaml"）
//
// 返回:
//   - *FrameLayoutConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadFrameLayoutConfig(path string) (*FrameLayoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame layout config: %w", err)
	}
	return ParseFrameLayoutConfig(data)
}

// ParseFrameLayoutConfig 从 YAML 数据解析帧布局配置
//
// 未设置的格子尺寸使用默认值 (16x16)。
func ParseFrameLayoutConfig(data []byte) (*FrameLayoutConfig, error) {
	var config FrameLayoutConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse frame layout config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid frame layout config: %w", err)
	}

	return &config, nil
}

// applyDefaults 填充未配置的格子尺寸
func (c *FrameLayoutConfig) applyDefaults() {
	if c.CellWidth == 0 {
		c.CellWidth = DefaultCellWidth
	}
	if c.CellHeight == 0 {
		c.CellHeight = DefaultCellHeight
	}
}

// Validate 验证配置有效性
//
// 检查：
//   - 格子尺寸为正
//   - 至少有一个帧
//   - 帧名称非空且唯一
//   - 帧尺寸至少 1x1（不允许零面积帧），格子总数不超出 int 范围
//   - 放置偏移非负
func (c *FrameLayoutConfig) Validate() error {
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", c.CellWidth, c.CellHeight)
	}

	if len(c.Frames) == 0 {
		return fmt.Errorf("layout must declare at least one frame")
	}

	seen := make(map[string]bool, len(c.Frames))
	for i, f := range c.Frames {
		if f.Name == "" {
			return fmt.Errorf("frame #%d has no name", i)
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate frame name '%s'", f.Name)
		}
		seen[f.Name] = true

		if f.Width < 1 || f.Height < 1 {
			return fmt.Errorf("frame '%s' size must be at least 1x1, got %dx%d", f.Name, f.Width, f.Height)
		}
		if f.Width > math.MaxInt/f.Height {
			return fmt.Errorf("frame '%s' size %dx%d is too large", f.Name, f.Width, f.Height)
		}
		if f.Position.X < 0 || f.Position.Y < 0 {
			return fmt.Errorf("frame '%s' position must be non-negative, got (%d, %d)",
				f.Name, f.Position.X, f.Position.Y)
		}
	}

	return nil
}

// GetFrame 按名称查找帧配置
func (c *FrameLayoutConfig) GetFrame(name string) (FrameConfig, bool) {
	for _, f := range c.Frames {
		if f.Name == name {
			return f, true
		}
	}
	return FrameConfig{}, false
}

// SurfaceSize 返回容纳所有帧所需的最小显示表面尺寸（设备像素）
func (c *FrameLayoutConfig) SurfaceSize() (width, height int) {
	for _, f := range c.Frames {
		right := f.Position.X + f.Width*c.CellWidth
		bottom := f.Position.Y + f.Height*c.CellHeight
		if right > width {
			width = right
		}
		if bottom > height {
			height = bottom
		}
	}
	return width, height
}
