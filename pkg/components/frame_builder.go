package components

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSize 帧的宽或高小于 1，或格子总数超出 int 范围
	ErrInvalidSize = errors.New("frame size must be at least 1x1")
	// ErrInvalidPosition 帧的放置偏移为负
	ErrInvalidPosition = errors.New("frame position must be non-negative")
	// ErrRaggedRows 预填充的像素行长度不一致
	ErrRaggedRows = errors.New("pixel rows must all have the same length")
	// ErrBuilderConsumed 构建器已经被 Build 消耗
	ErrBuilderConsumed = errors.New("frame builder already consumed")
)

// FrameBuilder 分阶段构建 FrameComponent
//
// 尺寸在创建构建器时确定并立即分配像素缓冲区；放置偏移可选，
// 在 Build 之前可以多次修改（以最后一次为准）。
// Build 将缓冲区的所有权转移给帧，之后构建器不可再用。
type FrameBuilder struct {
	size     GridSize
	position Offset
	pixels   []Pixel
	err      error
	consumed bool
}

// ValidateGridSize 检查尺寸至少 1x1 且 Width*Height 不溢出 int
func ValidateGridSize(size GridSize) error {
	if size.Width < 1 || size.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, size.Width, size.Height)
	}
	if size.Width > math.MaxInt/size.Height {
		return fmt.Errorf("%w: %dx%d overflows the cell count", ErrInvalidSize, size.Width, size.Height)
	}
	return nil
}

// NewFrameBuilder 创建一个填充默认像素的构建器，放置偏移为 (0,0)
//
// 尺寸非法时不会分配缓冲区，错误在 Build 时返回。
func NewFrameBuilder(size GridSize) *FrameBuilder {
	b := &FrameBuilder{size: size}
	if err := ValidateGridSize(size); err != nil {
		b.err = err
		return b
	}
	b.pixels = make([]Pixel, size.Area())
	return b
}

// NewFrameBuilderFromRows 用预填充的像素创建构建器
//
// rows[y][x] 为坐标 (x,y) 的像素。所有行长度必须一致且非空。
// 像素会被复制，构建器不持有调用方的切片。
func NewFrameBuilderFromRows(rows [][]Pixel) *FrameBuilder {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	b := &FrameBuilder{size: GridSize{Width: width, Height: height}}
	if err := ValidateGridSize(b.size); err != nil {
		b.err = err
		return b
	}

	b.pixels = make([]Pixel, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			b.pixels = nil
			b.err = fmt.Errorf("%w: row %d has %d pixels, expected %d", ErrRaggedRows, y, len(row), width)
			return b
		}
		b.pixels = append(b.pixels, row...)
	}
	return b
}

// Position 设置放置偏移（设备像素），返回构建器以便链式调用
func (b *FrameBuilder) Position(offset Offset) *FrameBuilder {
	b.position = offset
	return b
}

// Build 校验并生成 FrameComponent，同时消耗构建器
//
// 返回:
//   - *FrameComponent: 构建完成的帧
//   - error: 尺寸或偏移非法、或构建器已被消耗时返回错误
func (b *FrameBuilder) Build() (*FrameComponent, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	if b.err != nil {
		return nil, b.err
	}
	if b.position.X < 0 || b.position.Y < 0 {
		return nil, fmt.Errorf("%w: got (%d, %d)", ErrInvalidPosition, b.position.X, b.position.Y)
	}

	frame := &FrameComponent{
		Position: b.position,
		size:     b.size,
		pixels:   b.pixels,
	}
	b.pixels = nil
	b.consumed = true
	return frame, nil
}
