// Package entities 定义角色实体与各原型的工厂函数
//
// 实体是调用方名册持有的独立对象，网格不拥有实体；
// 位置真相只存在于实体上，网格中的角色标记仅为渲染回显。
package entities

import (
	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/physics"
)

// Archetype 定义实体的行为原型
// 原型是封闭集合，行为分发通过查表完成而非继承
type Archetype int

const (
	// ArchetypePlayer 玩家
	ArchetypePlayer Archetype = iota
	// ArchetypeSlime 地面跳跃型敌人
	ArchetypeSlime
	// ArchetypeBat 飞行型敌人
	ArchetypeBat
	// ArchetypeSpider 爬墙型敌人
	ArchetypeSpider
)

// String 返回原型名称（日志用）
func (a Archetype) String() string {
	switch a {
	case ArchetypePlayer:
		return "player"
	case ArchetypeSlime:
		return "slime"
	case ArchetypeBat:
		return "bat"
	case ArchetypeSpider:
		return "spider"
	default:
		return "unknown"
	}
}

// BatMode 蝙蝠的两个互斥状态
type BatMode int

const (
	// BatHovering 悬停：正弦起伏 + 水平追踪玩家
	BatHovering BatMode = iota
	// BatDiving 俯冲：两轴锁定朝玩家
	BatDiving
)

// SpiderMode 蜘蛛的两个互斥模式
type SpiderMode int

const (
	// SpiderGrounded 地面模式：按地面跳跃型行为走运动学
	SpiderGrounded SpiderMode = iota
	// SpiderClimbing 攀爬模式：贴墙直接移动，绕过运动学
	SpiderClimbing
)

// Entity 是一个可移动角色
//
// 嵌入 physics.Body 提供连续位置、速度、占位与着地标记；
// 其余字段为生命值与各原型私有的行为状态。
// 私有状态每 tick 恰好推进一次，与玩家距离无关。
type Entity struct {
	physics.Body

	Archetype Archetype
	Profile   physics.Profile // 本原型的运动学常量

	Health    int
	MaxHealth int
	Dead      bool // 标记待移除，名册在扫描结束后统一清理

	Facing int // 朝向（+1 右 / -1 左），决定挥剑弧的方向

	// 跳跃型（史莱姆 / 地面模式蜘蛛）私有状态
	JumpCooldown int

	// 蝙蝠私有状态
	BatMode      BatMode
	DiveCooldown int
	BobPhase     float64
	BaselineY    float64 // 悬停基准高度

	// 蜘蛛私有状态
	SpiderMode SpiderMode

	// 玩家挥剑窗口
	Attacking   bool
	AttackFrame int
}

// TakeDamage 扣除生命值，降到 0 及以下时标记待移除
//
// 返回:
//   - bool: 本次伤害是否致死
func (e *Entity) TakeDamage(amount int) bool {
	e.Health -= amount
	if e.Health <= 0 && !e.Dead {
		e.Dead = true
		return true
	}
	return false
}

// CenterX 返回包围盒水平中心
func (e *Entity) CenterX() float64 { return e.X + float64(e.W)/2 }

// CenterY 返回包围盒垂直中心
func (e *Entity) CenterY() float64 { return e.Y + float64(e.H)/2 }

// profileFromConfig 把 YAML 运动学配置转换为 physics.Profile
func profileFromConfig(c config.PhysicsProfileConfig) physics.Profile {
	return physics.Profile{
		Gravity:       c.Gravity,
		Friction:      c.Friction,
		MaxFall:       c.MaxFall,
		StopThreshold: c.StopThreshold,
	}
}
