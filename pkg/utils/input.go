// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FrameInput 存储当前帧的键盘输入状态
//
// 持续动作（移动、冲刺）按"按住"采样，边沿动作（跳跃、攻击、
// 暂停、重开）按"刚按下"采样。帧率高于逻辑 tick 率，边沿动作
// 由调用方在两次 tick 之间锁存。
type FrameInput struct {
	MoveLeft  bool
	MoveRight bool
	Sprint    bool

	JumpPressed    bool
	AttackPressed  bool
	PausePressed   bool
	RestartPressed bool
}

// ReadFrameInput 采样当前帧的键盘状态
//
// 移动同时支持 WASD 和方向键，攻击支持 J/X 和鼠标左键。
func ReadFrameInput() FrameInput {
	in := FrameInput{}

	// 持续按住的动作
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveLeft = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveRight = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		in.Sprint = true
	}

	// 边沿触发的动作
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		in.JumpPressed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyX) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.AttackPressed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.PausePressed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.RestartPressed = true
	}

	return in
}

// IsFullscreenTogglePressed 检查是否按下全屏切换键
func IsFullscreenTogglePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF11)
}
