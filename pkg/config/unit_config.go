package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PhysicsProfileConfig 单个原型的运动学常量
// 与 physics.Profile 字段一一对应
type PhysicsProfileConfig struct {
	Gravity       float64 `yaml:"gravity"`       // 重力加速度（格/tick²）
	Friction      float64 `yaml:"friction"`      // 水平速度衰减系数
	MaxFall       float64 `yaml:"maxFall"`       // 下落终端速度
	StopThreshold float64 `yaml:"stopThreshold"` // 水平速度归零阈值
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	MaxHealth   int                  `yaml:"maxHealth"`
	MoveSpeed   float64              `yaml:"moveSpeed"`   // 普通移动速度（格/tick）
	SprintSpeed float64              `yaml:"sprintSpeed"` // 冲刺速度
	JumpImpulse float64              `yaml:"jumpImpulse"` // 起跳冲量（存正值，施加时取负）
	Width       int                  `yaml:"width"`
	Height      int                  `yaml:"height"`
	Physics     PhysicsProfileConfig `yaml:"physics"`
}

// SlimeConfig 地面跳跃型敌人参数
type SlimeConfig struct {
	MaxHealth     int                  `yaml:"maxHealth"`
	ContactDamage int                  `yaml:"contactDamage"`
	JumpRange     float64              `yaml:"jumpRange"`   // 与玩家水平距离小于该值时起跳
	JumpImpulse   float64              `yaml:"jumpImpulse"` // 起跳冲量
	JumpSpeed     float64              `yaml:"jumpSpeed"`   // 起跳水平速度
	CooldownMin   int                  `yaml:"cooldownMin"` // 跳跃冷却随机区间 [min,max)（tick）
	CooldownMax   int                  `yaml:"cooldownMax"`
	Width         int                  `yaml:"width"`
	Height        int                  `yaml:"height"`
	Physics       PhysicsProfileConfig `yaml:"physics"`
}

// BatConfig 飞行型敌人参数
type BatConfig struct {
	MaxHealth     int     `yaml:"maxHealth"`
	ContactDamage int     `yaml:"contactDamage"`
	HoverSpeed    float64 `yaml:"hoverSpeed"`   // 悬停时朝玩家方向的水平速度
	DiveSpeed     float64 `yaml:"diveSpeed"`    // 俯冲时两轴锁定速度
	DiveRange     float64 `yaml:"diveRange"`    // 欧氏距离小于该值时触发俯冲
	DiveCooldown  int     `yaml:"diveCooldown"` // 俯冲结束后的冷却（tick）
	BobAmplitude  float64 `yaml:"bobAmplitude"` // 悬停正弦起伏振幅（格）
	BobRate       float64 `yaml:"bobRate"`      // 起伏相位每 tick 推进量
	EaseFactor    float64 `yaml:"easeFactor"`   // vy 向目标高度的缓动系数
	Damping       float64 `yaml:"damping"`      // 每 tick 两轴速度衰减系数
	KickImpulse   float64 `yaml:"kickImpulse"`  // 触地回升的向上冲量
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
}

// SpiderConfig 爬墙型敌人参数
type SpiderConfig struct {
	MaxHealth     int                  `yaml:"maxHealth"`
	ContactDamage int                  `yaml:"contactDamage"`
	ClimbSpeed    float64              `yaml:"climbSpeed"`  // 攀爬时朝玩家 y 的单位速度（格/tick）
	MinClimbDY    float64              `yaml:"minClimbDY"`  // 进入攀爬所需的最小垂直距离
	JumpRange     float64              `yaml:"jumpRange"`   // 地面模式起跳距离
	JumpImpulse   float64              `yaml:"jumpImpulse"` // 地面模式起跳冲量
	JumpSpeed     float64              `yaml:"jumpSpeed"`   // 地面模式起跳水平速度
	CooldownMin   int                  `yaml:"cooldownMin"` // 地面模式冷却区间 [min,max)（tick）
	CooldownMax   int                  `yaml:"cooldownMax"`
	Width         int                  `yaml:"width"`
	Height        int                  `yaml:"height"`
	Physics       PhysicsProfileConfig `yaml:"physics"`
}

// CombatConfig 战斗参数
type CombatConfig struct {
	MeleeDamage          int     `yaml:"meleeDamage"`          // 挥剑单次伤害
	SwordLength          float64 `yaml:"swordLength"`          // 剑尖到玩家中心的距离（格）
	SwingFrames          int     `yaml:"swingFrames"`          // 挥剑动画总帧数（tick）
	HitboxSize           float64 `yaml:"hitboxSize"`           // 剑尖判定盒边长（格）
	ContactCooldownTicks int     `yaml:"contactCooldownTicks"` // 接触伤害全局冷却（tick）
}

// SpawnConfig 敌人数量与重生参数
type SpawnConfig struct {
	SlimeCount        int `yaml:"slimeCount"`
	BatCount          int `yaml:"batCount"`
	SpiderCount       int `yaml:"spiderCount"`
	RespawnDelayTicks int `yaml:"respawnDelayTicks"` // 死亡到重生的延迟（tick）
	ScorePerKill      int `yaml:"scorePerKill"`      // 击杀基础得分
}

// UnitsConfig 全部单位与战斗调参的聚合配置
//
// 配置文件位置: data/units.yaml
type UnitsConfig struct {
	Player PlayerConfig `yaml:"player"`
	Slime  SlimeConfig  `yaml:"slime"`
	Bat    BatConfig    `yaml:"bat"`
	Spider SpiderConfig `yaml:"spider"`
	Combat CombatConfig `yaml:"combat"`
	Spawn  SpawnConfig  `yaml:"spawn"`
}

// DefaultUnitsConfig 返回默认单位配置
//
// 数值基准：格为单位、30 tick/秒。接触伤害冷却 15 tick ≈ 500ms。
func DefaultUnitsConfig() *UnitsConfig {
	groundPhysics := PhysicsProfileConfig{
		Gravity:       0.25,
		Friction:      0.8,
		MaxFall:       8,
		StopThreshold: 0.05,
	}
	return &UnitsConfig{
		Player: PlayerConfig{
			MaxHealth:   100,
			// 水平位移按整格量化（ceil(|vx|) 格/tick），
			// 普速与冲刺必须落在不同的整格档位上
			MoveSpeed:   1.0,
			SprintSpeed: 2.0,
			JumpImpulse: 4.5,
			Width:       2,
			Height:      3,
			Physics:     groundPhysics,
		},
		Slime: SlimeConfig{
			MaxHealth:     30,
			ContactDamage: 10,
			JumpRange:     30,
			JumpImpulse:   4,
			JumpSpeed:     2,
			CooldownMin:   60,
			CooldownMax:   100,
			Width:         2,
			Height:        2,
			Physics:       groundPhysics,
		},
		Bat: BatConfig{
			MaxHealth:     20,
			ContactDamage: 5,
			HoverSpeed:    0.8,
			DiveSpeed:     2.5,
			DiveRange:     40,
			DiveCooldown:  120,
			BobAmplitude:  4,
			BobRate:       0.08,
			EaseFactor:    0.1,
			Damping:       0.95,
			KickImpulse:   2,
			Width:         2,
			Height:        1,
		},
		Spider: SpiderConfig{
			MaxHealth:     25,
			ContactDamage: 8,
			ClimbSpeed:    1,
			MinClimbDY:    3,
			JumpRange:     35,
			JumpImpulse:   3.5,
			JumpSpeed:     1.5,
			CooldownMin:   50,
			CooldownMax:   80,
			Width:         2,
			Height:        1,
			Physics:       groundPhysics,
		},
		Combat: CombatConfig{
			MeleeDamage:          15,
			SwordLength:          6,
			SwingFrames:          10,
			HitboxSize:           3,
			ContactCooldownTicks: 15,
		},
		Spawn: SpawnConfig{
			SlimeCount:        4,
			BatCount:          2,
			SpiderCount:       2,
			RespawnDelayTicks: 90,
			ScorePerKill:      100,
		},
	}
}

// LoadUnitsConfig 加载单位配置
//
// 参数:
//   - path: 配置文件路径（如 "data/units.yaml"）
//
// 返回:
//   - *UnitsConfig: 加载成功后的配置结构
//   - error: 加载或校验失败时返回错误
func LoadUnitsConfig(path string) (*UnitsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read units config: %w", err)
	}

	cfg := DefaultUnitsConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse units config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid units config: %w", err)
	}
	return cfg, nil
}

// Validate 校验配置有效性
//
// 返回:
//   - error: 校验失败时返回错误，成功返回 nil
func (c *UnitsConfig) Validate() error {
	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player maxHealth must be positive, got %d", c.Player.MaxHealth)
	}
	if c.Player.Width < 1 || c.Player.Height < 1 {
		return fmt.Errorf("player footprint invalid: %dx%d", c.Player.Width, c.Player.Height)
	}
	if c.Slime.CooldownMin >= c.Slime.CooldownMax {
		return fmt.Errorf("slime cooldown range invalid: min(%d) >= max(%d)",
			c.Slime.CooldownMin, c.Slime.CooldownMax)
	}
	if c.Spider.CooldownMin >= c.Spider.CooldownMax {
		return fmt.Errorf("spider cooldown range invalid: min(%d) >= max(%d)",
			c.Spider.CooldownMin, c.Spider.CooldownMax)
	}
	if c.Bat.Damping <= 0 || c.Bat.Damping > 1 {
		return fmt.Errorf("bat damping must be in (0,1], got %.2f", c.Bat.Damping)
	}
	if c.Combat.SwingFrames < 2 {
		return fmt.Errorf("combat swingFrames must be >= 2, got %d", c.Combat.SwingFrames)
	}
	if c.Combat.MeleeDamage <= 0 {
		return fmt.Errorf("combat meleeDamage must be positive, got %d", c.Combat.MeleeDamage)
	}
	if c.Combat.ContactCooldownTicks < 0 {
		return fmt.Errorf("combat contactCooldownTicks must not be negative, got %d",
			c.Combat.ContactCooldownTicks)
	}
	for name, hp := range map[string]int{
		"slime": c.Slime.MaxHealth, "bat": c.Bat.MaxHealth, "spider": c.Spider.MaxHealth,
	} {
		if hp <= 0 {
			return fmt.Errorf("%s maxHealth must be positive, got %d", name, hp)
		}
	}
	return nil
}
