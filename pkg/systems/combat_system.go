package systems

import (
	"math"

	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/entities"
)

// EventType 战斗事件类型
type EventType int

const (
	// EventPlayerDamaged 玩家受到接触伤害
	EventPlayerDamaged EventType = iota
	// EventEnemyDamaged 敌人被挥剑命中
	EventEnemyDamaged
	// EventEnemyKilled 敌人生命值归零，已标记待移除
	EventEnemyKilled
)

// Event 是战斗判定产生的离散状态增量
// 核心只产出事件，分数、连击与结算归外层所有
type Event struct {
	Type   EventType
	Target entities.Archetype // 承受方的原型
	Amount int                // 伤害值
}

// CombatSystem 矩形重叠判定与伤害结算
//
// 接触伤害的冷却门在所有敌对来源间全局共享：一个冷却窗口内
// 同时接触两个不同敌人也只结算一次伤害。该行为是既定语义，
// 不要按 per-pair 冷却"修复"。
type CombatSystem struct {
	units           *config.UnitsConfig
	lastContactTick int64
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(units *config.UnitsConfig) *CombatSystem {
	return &CombatSystem{
		units: units,
		// 首次接触必须立即结算
		lastContactTick: int64(-units.Combat.ContactCooldownTicks),
	}
}

// Overlap 严格的轴对齐矩形重叠测试
// 两盒重叠，除非某轴上一盒完全位于另一盒一侧
func Overlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x2 < x1+w1 &&
		y1 < y2+h2 && y2 < y1+h1
}

// SwordHitbox 返回当前挥剑帧的剑尖判定盒
//
// 剑尖沿半圆弧扫动：动画帧在固定帧数内线性推进，
// 剑尖从玩家正上方出发，经朝向一侧扫过半周到正下方。
// 判定盒是以剑尖为中心的固定小盒，每帧随剑尖移动。
//
// 返回:
//   - x, y, w, h: 判定盒
//   - bool: 玩家是否处于攻击窗口（false 时无判定盒）
func (cs *CombatSystem) SwordHitbox(player *entities.Entity) (float64, float64, float64, float64, bool) {
	if !player.Attacking {
		return 0, 0, 0, 0, false
	}
	cfg := cs.units.Combat

	// 弧进度：0 → 正上方，1/2 → 朝向水平，1 → 正下方
	progress := float64(player.AttackFrame) / float64(cfg.SwingFrames)
	angle := progress * math.Pi

	tipX := player.CenterX() + float64(player.Facing)*cfg.SwordLength*math.Sin(angle)
	tipY := player.CenterY() - cfg.SwordLength*math.Cos(angle)

	half := cfg.HitboxSize / 2
	return tipX - half, tipY - half, cfg.HitboxSize, cfg.HitboxSize, true
}

// Resolve 判定一个敌人本 tick 的接触伤害与挥剑命中
//
// 参数:
//   - tick: 当前模拟 tick 计数（接触冷却的时间基准，不依赖墙钟）
//   - player: 玩家
//   - enemy: 敌人
//
// 返回:
//   - []Event: 本次判定产生的状态增量（可能为空）
func (cs *CombatSystem) Resolve(tick int64, player, enemy *entities.Entity) []Event {
	if enemy.Dead {
		return nil
	}
	var events []Event
	cfg := cs.units.Combat

	// 玩家 ↔ 敌人接触伤害，全局冷却门
	if Overlap(player.X, player.Y, float64(player.W), float64(player.H),
		enemy.X, enemy.Y, float64(enemy.W), float64(enemy.H)) {
		if tick-cs.lastContactTick >= int64(cfg.ContactCooldownTicks) {
			damage := cs.contactDamage(enemy.Archetype)
			player.TakeDamage(damage)
			cs.lastContactTick = tick
			events = append(events, Event{Type: EventPlayerDamaged, Target: entities.ArchetypePlayer, Amount: damage})
		}
	}

	// 剑尖判定盒 ↔ 敌人
	if hx, hy, hw, hh, ok := cs.SwordHitbox(player); ok {
		if Overlap(hx, hy, hw, hh, enemy.X, enemy.Y, float64(enemy.W), float64(enemy.H)) {
			killed := enemy.TakeDamage(cfg.MeleeDamage)
			events = append(events, Event{Type: EventEnemyDamaged, Target: enemy.Archetype, Amount: cfg.MeleeDamage})
			if killed {
				events = append(events, Event{Type: EventEnemyKilled, Target: enemy.Archetype, Amount: 0})
			}
		}
	}
	return events
}

// contactDamage 返回原型的固定接触伤害值
func (cs *CombatSystem) contactDamage(a entities.Archetype) int {
	switch a {
	case entities.ArchetypeSlime:
		return cs.units.Slime.ContactDamage
	case entities.ArchetypeBat:
		return cs.units.Bat.ContactDamage
	case entities.ArchetypeSpider:
		return cs.units.Spider.ContactDamage
	default:
		return 0
	}
}
