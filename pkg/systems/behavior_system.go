// Package systems 实现每 tick 的行为、控制与战斗逻辑
//
// 行为系统按原型查表分发：每个原型根据私有状态、玩家位置与网格
// 计算速度意图，再交给共享的运动学例程积分（蜘蛛攀爬模式除外，
// 它绕过运动学直接移动）。
package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/entities"
	"github.com/decker502/sandfall/pkg/world"
)

// behaviorHandler 推进一个敌人一个 tick：AI 决策 + 运动学积分
type behaviorHandler func(e, player *entities.Entity, g *world.Grid)

// BehaviorSystem 敌人 AI 分发器
//
// 原型是封闭集合，通过查表分发而不是继承；
// 所有随机决策（跳跃冷却抖动等）走注入的随机源。
type BehaviorSystem struct {
	units    *config.UnitsConfig
	rng      *rand.Rand
	handlers map[entities.Archetype]behaviorHandler
}

// NewBehaviorSystem 创建行为系统
//
// 参数:
//   - units: 单位配置
//   - rng: 注入的随机源
func NewBehaviorSystem(units *config.UnitsConfig, rng *rand.Rand) *BehaviorSystem {
	s := &BehaviorSystem{units: units, rng: rng}
	s.handlers = map[entities.Archetype]behaviorHandler{
		entities.ArchetypeSlime:  s.advanceSlime,
		entities.ArchetypeBat:    s.advanceBat,
		entities.ArchetypeSpider: s.advanceSpider,
	}
	return s
}

// Advance 推进一个敌人的行为与运动学一个 tick
//
// 私有 AI 状态（冷却、相位）每 tick 恰好推进一次，与玩家距离无关。
func (s *BehaviorSystem) Advance(e, player *entities.Entity, g *world.Grid) {
	if handler, ok := s.handlers[e.Archetype]; ok {
		handler(e, player, g)
	}
}

// sign 返回 ±1（0 视为正方向）
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// dist 欧氏距离
func dist(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}
