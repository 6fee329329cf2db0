package utils

import "github.com/decker502/pixelframe/pkg/components"

// ScreenToFrameCoords 将屏幕坐标（设备像素）转换为帧内格子坐标
// 参数:
//   - frame: 目标帧，使用其 Position 和 Size
//   - cellWidth, cellHeight: 格子的设备像素尺寸
//   - screenX, screenY: 屏幕坐标
//
// 返回:
//   - components.Coordinate: 格子坐标
//   - bool: 是否落在帧范围内
func ScreenToFrameCoords(frame *components.FrameComponent, cellWidth, cellHeight, screenX, screenY int) (components.Coordinate, bool) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return components.Coordinate{}, false
	}

	localX := screenX - frame.Position.X
	localY := screenY - frame.Position.Y
	if localX < 0 || localY < 0 {
		return components.Coordinate{}, false
	}

	c := components.Coordinate{X: localX / cellWidth, Y: localY / cellHeight}
	if !frame.Contains(c) {
		return components.Coordinate{}, false
	}
	return c, true
}

// FrameCellCenter 返回格子中心的屏幕坐标
//
// 示例（Position=(100,50)，格子 16x8）:
//
//	FrameCellCenter(frame, 16, 8, {0,0}) = (108, 54)
func FrameCellCenter(frame *components.FrameComponent, cellWidth, cellHeight int, c components.Coordinate) (centerX, centerY float64) {
	centerX = float64(frame.Position.X+c.X*cellWidth) + float64(cellWidth)/2
	centerY = float64(frame.Position.Y+c.Y*cellHeight) + float64(cellHeight)/2
	return centerX, centerY
}
