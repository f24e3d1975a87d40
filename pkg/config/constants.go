// Package config 提供游戏的常量与 YAML 调参配置
//
// 所有可调数值都走配置文件（data/*.yaml），加载失败时退回内置默认值，
// 配置结构在加载后统一经 Validate 校验。
package config

const (
	// GameWindowWidth 游戏窗口逻辑宽度（像素）
	GameWindowWidth = 800
	// GameWindowHeight 游戏窗口逻辑高度（像素）
	GameWindowHeight = 600

	// CellPixels 每个网格格子渲染为多少像素
	CellPixels = 4

	// TickRate 模拟固定步长频率（每秒 tick 数）
	// 渲染帧率由 ebiten 决定（通常 60fps），模拟以 30Hz 独立推进
	TickRate = 30

	// TickDuration 单个 tick 的时长（秒）
	TickDuration = 1.0 / float64(TickRate)
)
