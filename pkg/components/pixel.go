package components

import "github.com/hajimehoshi/ebiten/v2"

// Pixel 是网格中最小的可寻址单元，可选地持有一个精灵引用
//
// 零值即默认像素（无精灵）。精灵是宿主资源系统提供的不透明句柄，
// 本包只保存和比较引用，不读取其内容。
type Pixel struct {
	// Sprite 精灵句柄，nil 表示空格子
	Sprite *ebiten.Image
}

// DefaultPixel 返回不带精灵的默认像素
func DefaultPixel() Pixel {
	return Pixel{}
}

// NewSpritePixel 返回持有指定精灵的像素
func NewSpritePixel(sprite *ebiten.Image) Pixel {
	return Pixel{Sprite: sprite}
}

// HasSprite 检查像素是否持有精灵
func (p Pixel) HasSprite() bool {
	return p.Sprite != nil
}

// Clear 清空像素的精灵槽位
func (p *Pixel) Clear() {
	p.Sprite = nil
}
