package entities

import (
	"math/rand"

	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/physics"
)

// NewBat 创建蝙蝠实体
//
// 出生点高度即悬停基准高度；起伏相位随机，避免成群蝙蝠同相。
//
// 参数:
//   - cfg: 单位配置
//   - rng: 注入的随机源
//   - x, y: 初始位置（格，左上角）
func NewBat(cfg *config.UnitsConfig, rng *rand.Rand, x, y float64) *Entity {
	b := cfg.Bat
	return &Entity{
		Body: physics.Body{
			X: x, Y: y,
			W: b.Width, H: b.Height,
		},
		Archetype: ArchetypeBat,
		// 蝙蝠无视重力，速度衰减由行为层的 damping 负责，
		// 积分例程里的摩擦必须是恒等（Friction=1）
		Profile:   physics.Profile{Friction: 1},
		Health:    b.MaxHealth,
		MaxHealth: b.MaxHealth,
		BatMode:   BatHovering,
		BaselineY: y,
		BobPhase:  rng.Float64() * 6.28318,
	}
}
