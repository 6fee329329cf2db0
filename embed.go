// embed.go - 默认布局嵌入声明
// 必须放在项目根目录（与 data/ 同级）
package main

import _ "embed"

//go:embed data/frame_layout.yaml
var defaultLayoutYAML []byte
