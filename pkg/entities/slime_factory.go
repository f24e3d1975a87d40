package entities

import (
	"math/rand"

	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/physics"
)

// NewSlime 创建史莱姆实体
//
// 初始跳跃冷却取随机值，避免同一波敌人同步起跳。
//
// 参数:
//   - cfg: 单位配置
//   - rng: 注入的随机源
//   - x, y: 初始位置（格，左上角）
func NewSlime(cfg *config.UnitsConfig, rng *rand.Rand, x, y float64) *Entity {
	s := cfg.Slime
	return &Entity{
		Body: physics.Body{
			X: x, Y: y,
			W: s.Width, H: s.Height,
		},
		Archetype:    ArchetypeSlime,
		Profile:      profileFromConfig(s.Physics),
		Health:       s.MaxHealth,
		MaxHealth:    s.MaxHealth,
		JumpCooldown: s.CooldownMin + rng.Intn(s.CooldownMax-s.CooldownMin),
	}
}
