package systems

import (
	"math"

	"github.com/decker502/sandfall/pkg/entities"
	"github.com/decker502/sandfall/pkg/physics"
	"github.com/decker502/sandfall/pkg/world"
)

// advanceSpider 爬墙型行为：{攀爬, 地面} 两互斥模式
//
// 每 tick 先探测左右一格是否贴墙（零垂直偏移的碰撞测试）。
// 贴墙且与玩家垂直距离超过阈值时进入攀爬：以单位速度直接朝玩家 y
// 移动，vx 强制为零，y 夹到 [0, height−footprint]，完全绕过运动学。
// 否则按地面跳跃型行为处理（参数与史莱姆不同）并走运动学。
func (s *BehaviorSystem) advanceSpider(e, player *entities.Entity, g *world.Grid) {
	cfg := s.units.Spider

	if e.JumpCooldown > 0 {
		e.JumpCooldown--
	}

	dy := player.CenterY() - e.CenterY()
	wallAdjacent := physics.Collides(g, e.X-1, e.Y, e.W, e.H) ||
		physics.Collides(g, e.X+1, e.Y, e.W, e.H)

	if wallAdjacent && math.Abs(dy) > cfg.MinClimbDY {
		// 攀爬模式：无视重力，位置直接推进
		e.SpiderMode = entities.SpiderClimbing
		e.VX = 0
		e.VY = 0
		e.Y += cfg.ClimbSpeed * sign(dy)

		if e.Y < 0 {
			e.Y = 0
		}
		if max := float64(g.Height() - e.H); e.Y > max {
			e.Y = max
		}
		return
	}

	// 地面模式：跳跃参数与史莱姆不同
	e.SpiderMode = entities.SpiderGrounded
	dx := player.CenterX() - e.CenterX()
	if e.Grounded && e.JumpCooldown == 0 && math.Abs(dx) < cfg.JumpRange {
		e.VY = -cfg.JumpImpulse
		e.VX = cfg.JumpSpeed * sign(dx)
		e.JumpCooldown = cfg.CooldownMin + s.rng.Intn(cfg.CooldownMax-cfg.CooldownMin)
	}

	physics.ApplyGravity(&e.Body, e.Profile)
	physics.Integrate(&e.Body, g, e.Profile)
}
