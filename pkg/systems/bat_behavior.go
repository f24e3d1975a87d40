package systems

import (
	"math"

	"github.com/decker502/sandfall/pkg/entities"
	"github.com/decker502/sandfall/pkg/physics"
	"github.com/decker502/sandfall/pkg/world"
)

// advanceBat 飞行型行为：{悬停, 俯冲} 两状态机
//
// 悬停：垂直目标沿基准高度做正弦起伏，vy 向目标缓动，
// vx 以固定速度追踪玩家方位；无视重力。
// 俯冲：两轴速度锁定朝向玩家；探测到正下方实心格时回到悬停，
// 冷却重置并给 vy 一个向上的反冲。
// 两轴速度每 tick 按 damping 衰减，位置夹到水平边界且 y≥0。
func (s *BehaviorSystem) advanceBat(e, player *entities.Entity, g *world.Grid) {
	cfg := s.units.Bat

	// 私有状态推进：冷却与起伏相位每 tick 各走一次
	if e.DiveCooldown > 0 {
		e.DiveCooldown--
	}
	e.BobPhase += cfg.BobRate

	dx := player.CenterX() - e.CenterX()
	dy := player.CenterY() - e.CenterY()

	switch e.BatMode {
	case entities.BatHovering:
		targetY := e.BaselineY + cfg.BobAmplitude*math.Sin(e.BobPhase)
		e.VY += (targetY - e.Y) * cfg.EaseFactor
		e.VX = cfg.HoverSpeed * sign(dx)

		if e.DiveCooldown == 0 && dist(dx, dy) < cfg.DiveRange {
			e.BatMode = entities.BatDiving
		}

	case entities.BatDiving:
		e.VX = cfg.DiveSpeed * sign(dx)
		e.VY = cfg.DiveSpeed * sign(dy)

		// 下缘正下方探到实心格即拉起
		if s.solidBeneath(e, g) {
			e.BatMode = entities.BatHovering
			e.DiveCooldown = cfg.DiveCooldown
			e.VY = -cfg.KickImpulse
		}
	}

	// 无重力，直接积分（蝙蝠 Profile 的摩擦为恒等）
	physics.Integrate(&e.Body, g, e.Profile)

	// 两轴衰减
	e.VX *= cfg.Damping
	e.VY *= cfg.Damping

	// 位置夹取：水平不出界，顶部不为负
	if e.X < 0 {
		e.X = 0
	}
	if max := float64(g.Width() - e.W); e.X > max {
		e.X = max
	}
	if e.Y < 0 {
		e.Y = 0
	}
}

// solidBeneath 探测蝙蝠下缘正下方的格子是否实心
func (s *BehaviorSystem) solidBeneath(e *entities.Entity, g *world.Grid) bool {
	cx := int(math.Floor(e.CenterX()))
	below := int(math.Floor(e.Y)) + e.H
	return g.IsSolid(cx, below)
}
