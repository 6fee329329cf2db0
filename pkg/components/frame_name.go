package components

// FrameNameComponent 为帧实体提供一个可读名称（来自布局配置）
// 宿主可以据此按名称查找面板，如 "playfield"、"status"
type FrameNameComponent struct {
	Name string
}
