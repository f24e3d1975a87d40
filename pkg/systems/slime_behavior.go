package systems

import (
	"math"

	"github.com/decker502/sandfall/pkg/entities"
	"github.com/decker502/sandfall/pkg/physics"
	"github.com/decker502/sandfall/pkg/world"
)

// advanceSlime 地面跳跃型行为
//
// 着地且冷却归零时，若与玩家水平距离进入触发范围则朝玩家起跳，
// 冷却重置为随机区间内的值；其余时间只受重力与摩擦支配。
func (s *BehaviorSystem) advanceSlime(e, player *entities.Entity, g *world.Grid) {
	cfg := s.units.Slime

	if e.JumpCooldown > 0 {
		e.JumpCooldown--
	}

	dx := player.CenterX() - e.CenterX()
	if e.Grounded && e.JumpCooldown == 0 && math.Abs(dx) < cfg.JumpRange {
		e.VY = -cfg.JumpImpulse
		e.VX = cfg.JumpSpeed * sign(dx)
		e.JumpCooldown = cfg.CooldownMin + s.rng.Intn(cfg.CooldownMax-cfg.CooldownMin)
	}

	physics.ApplyGravity(&e.Body, e.Profile)
	physics.Integrate(&e.Body, g, e.Profile)
}
