package systems

import (
	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/entities"
	"github.com/decker502/sandfall/pkg/physics"
	"github.com/decker502/sandfall/pkg/world"
)

// Intents 是输入边界翻译出的命名意图
//
// 外层负责按键捕获，核心只定义每个意图的效果：
// 速度赋值、起跳冲量、攻击窗口开启。
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	Sprint    bool
	Jump      bool
	Attack    bool
}

// PlayerControlSystem 把意图转换为玩家运动并完成积分
type PlayerControlSystem struct {
	units *config.UnitsConfig
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(units *config.UnitsConfig) *PlayerControlSystem {
	return &PlayerControlSystem{units: units}
}

// Apply 应用一个 tick 的玩家意图并积分
//
// 效果定义：
//   - move-left/right: vx 赋值为移动速度（冲刺时用冲刺速度），更新朝向
//   - jump: 仅着地时生效，vy 置为起跳冲量
//   - attack: 不在攻击窗口时开启新窗口（帧 0 起）
//
// 攻击窗口帧计数每 tick 推进一次，满帧后关闭。
func (ps *PlayerControlSystem) Apply(player *entities.Entity, g *world.Grid, in Intents) {
	cfg := ps.units.Player

	speed := cfg.MoveSpeed
	if in.Sprint {
		speed = cfg.SprintSpeed
	}
	if in.MoveLeft {
		player.VX = -speed
		player.Facing = -1
	}
	if in.MoveRight {
		player.VX = speed
		player.Facing = 1
	}
	if in.Jump && player.Grounded {
		player.VY = -cfg.JumpImpulse
	}

	if in.Attack && !player.Attacking {
		player.Attacking = true
		player.AttackFrame = 0
	} else if player.Attacking {
		player.AttackFrame++
		if player.AttackFrame >= ps.units.Combat.SwingFrames {
			player.Attacking = false
			player.AttackFrame = 0
		}
	}

	physics.ApplyGravity(&player.Body, player.Profile)
	physics.Integrate(&player.Body, g, player.Profile)
}
