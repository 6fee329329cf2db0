package components

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds 坐标超出帧的逻辑尺寸
var ErrOutOfBounds = errors.New("pixel coordinate out of bounds")

// Coordinate 是帧内的格子坐标（单位：格子，不是设备像素）
type Coordinate struct {
	X, Y int
}

// GridSize 是帧的逻辑尺寸（单位：格子）
type GridSize struct {
	Width, Height int
}

// Area 返回格子总数
func (s GridSize) Area() int {
	return s.Width * s.Height
}

// Offset 是帧相对宿主坐标原点的放置偏移（单位：设备像素）
// 只用于放置，不参与索引计算
type Offset struct {
	X, Y int
}

// BoundsError 描述一次越界访问
// errors.Is(err, ErrOutOfBounds) 对它成立
type BoundsError struct {
	Coordinate Coordinate
	Size       GridSize
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: (%d, %d) not within %dx%d frame",
		ErrOutOfBounds, e.Coordinate.X, e.Coordinate.Y, e.Size.Width, e.Size.Height)
}

// Is 让 errors.Is 能匹配 ErrOutOfBounds
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// FrameComponent 是屏幕上的一个固定尺寸像素网格，挂载在宿主实体上
//
// 不直接构造，而是通过 FrameBuilder 创建。尺寸在构建后不可变（只读访问 Size()），
// 只有格子内容可以通过 WritePixel 修改。
//
// 像素按行优先存储: index = x + Width*y
type FrameComponent struct {
	// Position 帧的放置偏移（设备像素）
	Position Offset

	// size 与 pixels 一起在构建时确定，保证 len(pixels) == size.Area()
	size   GridSize
	pixels []Pixel
}

// Size 返回帧的逻辑尺寸（格子）
func (f *FrameComponent) Size() GridSize {
	return f.size
}

// Width 返回帧宽度（格子）
func (f *FrameComponent) Width() int {
	return f.size.Width
}

// Height 返回帧高度（格子）
func (f *FrameComponent) Height() int {
	return f.size.Height
}

// Area 返回帧的格子总数
func (f *FrameComponent) Area() int {
	return f.size.Area()
}

// Contains 检查坐标是否位于 [0,Width) x [0,Height) 内
func (f *FrameComponent) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < f.size.Width && c.Y >= 0 && c.Y < f.size.Height
}

// Index 返回坐标对应的行优先一维索引，不做边界检查
func (f *FrameComponent) Index(c Coordinate) int {
	return c.X + f.size.Width*c.Y
}

// mustIndex 返回一维索引，坐标越界时 panic
//
// 只检查一维索引不够：4x4 帧上的 (4,0) 会映射到合法的索引 4
func (f *FrameComponent) mustIndex(c Coordinate) int {
	if !f.Contains(c) {
		panic(&BoundsError{Coordinate: c, Size: f.size})
	}
	return f.Index(c)
}

// WritePixel 将像素写入指定坐标
//
// 坐标必须在帧范围内，越界属于调用方的编程错误，会以 *BoundsError panic。
// 需要可恢复错误时使用 TryWritePixel。
func (f *FrameComponent) WritePixel(c Coordinate, p Pixel) {
	f.pixels[f.mustIndex(c)] = p
}

// ReadPixel 返回指定坐标处像素的引用，越界规则同 WritePixel
func (f *FrameComponent) ReadPixel(c Coordinate) *Pixel {
	return &f.pixels[f.mustIndex(c)]
}

// TryWritePixel 是 WritePixel 的带检查版本，越界时返回 *BoundsError
func (f *FrameComponent) TryWritePixel(c Coordinate, p Pixel) error {
	if !f.Contains(c) {
		return &BoundsError{Coordinate: c, Size: f.size}
	}
	f.pixels[f.Index(c)] = p
	return nil
}

// TryReadPixel 是 ReadPixel 的带检查版本，越界时返回 *BoundsError
func (f *FrameComponent) TryReadPixel(c Coordinate) (*Pixel, error) {
	if !f.Contains(c) {
		return nil, &BoundsError{Coordinate: c, Size: f.size}
	}
	return &f.pixels[f.Index(c)], nil
}

// Pixels 返回像素缓冲区的行优先副本
func (f *FrameComponent) Pixels() []Pixel {
	out := make([]Pixel, len(f.pixels))
	copy(out, f.pixels)
	return out
}

// Each 按行优先顺序遍历所有格子
func (f *FrameComponent) Each(fn func(c Coordinate, p *Pixel)) {
	for i := range f.pixels {
		fn(Coordinate{X: i % f.size.Width, Y: i / f.size.Width}, &f.pixels[i])
	}
}

// Clear 将所有格子重置为默认像素，尺寸不变
func (f *FrameComponent) Clear() {
	for i := range f.pixels {
		f.pixels[i] = Pixel{}
	}
}
