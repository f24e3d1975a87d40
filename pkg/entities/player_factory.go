package entities

import (
	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/physics"
)

// NewPlayer 创建玩家实体
//
// 参数:
//   - cfg: 单位配置
//   - x, y: 初始位置（格，左上角）
//
// 返回:
//   - *Entity: 玩家实体
func NewPlayer(cfg *config.UnitsConfig, x, y float64) *Entity {
	p := cfg.Player
	return &Entity{
		Body: physics.Body{
			X: x, Y: y,
			W: p.Width, H: p.Height,
		},
		Archetype: ArchetypePlayer,
		Profile:   profileFromConfig(p.Physics),
		Health:    p.MaxHealth,
		MaxHealth: p.MaxHealth,
		Facing:    1,
	}
}
