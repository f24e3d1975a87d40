package entities

import (
	"math/rand"

	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/physics"
)

// NewSpider 创建蜘蛛实体
//
// 参数:
//   - cfg: 单位配置
//   - rng: 注入的随机源
//   - x, y: 初始位置（格，左上角）
func NewSpider(cfg *config.UnitsConfig, rng *rand.Rand, x, y float64) *Entity {
	s := cfg.Spider
	return &Entity{
		Body: physics.Body{
			X: x, Y: y,
			W: s.Width, H: s.Height,
		},
		Archetype:    ArchetypeSpider,
		Profile:      profileFromConfig(s.Physics),
		Health:       s.MaxHealth,
		MaxHealth:    s.MaxHealth,
		SpiderMode:   SpiderGrounded,
		JumpCooldown: s.CooldownMin + rng.Intn(s.CooldownMax-s.CooldownMin),
	}
}
