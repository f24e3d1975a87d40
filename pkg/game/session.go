// Package game 提供对局推进、全局状态与存档管理
package game

import (
	"log"
	"math/rand"

	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/entities"
	"github.com/decker502/sandfall/pkg/level"
	"github.com/decker502/sandfall/pkg/systems"
	"github.com/decker502/sandfall/pkg/world"
)

// respawnEntry 待重生的敌人：原型 + 剩余延迟
type respawnEntry struct {
	archetype entities.Archetype
	ticksLeft int
}

// Session 是一局游戏的 tick 驱动器
//
// 单线程、固定步长、协作式：外层累积真实时间并以整 tick 调用
// Advance，核心内部从不阻塞、没有后台执行。每 tick 的次序本身就是
// 正确性契约：玩家积分 → 恰好一次 Grid.Step → 逐敌人 AI+积分+战斗。
// 这保证敌人总是基于本 tick 已沉降完毕的网格行动。
//
// 名册只由 tick 驱动器修改，永不并发；扫描期间的移除采用
// 标记-清扫两阶段，避免原地删除导致顶位实体被跳过。
type Session struct {
	Grid    *world.Grid
	Player  *entities.Entity
	Enemies []*entities.Entity

	rng      *rand.Rand
	worldCfg *config.WorldConfig
	unitsCfg *config.UnitsConfig

	behavior *systems.BehaviorSystem
	combat   *systems.CombatSystem
	control  *systems.PlayerControlSystem

	tick     int64
	respawns []respawnEntry
}

// NewSession 生成地形并放置玩家与初始敌人
//
// 参数:
//   - worldCfg: 世界生成配置
//   - unitsCfg: 单位配置
//   - rng: 注入的随机源（地形、出生点、AI 抖动共用一个源，
//     固定种子可复现实整局轨迹）
func NewSession(worldCfg *config.WorldConfig, unitsCfg *config.UnitsConfig, rng *rand.Rand) *Session {
	grid := world.NewGrid(worldCfg.Width, worldCfg.Height)
	level.Generate(grid, rng, worldCfg)

	s := &Session{
		Grid:     grid,
		rng:      rng,
		worldCfg: worldCfg,
		unitsCfg: unitsCfg,
		behavior: systems.NewBehaviorSystem(unitsCfg, rng),
		combat:   systems.NewCombatSystem(unitsCfg),
		control:  systems.NewPlayerControlSystem(unitsCfg),
	}

	px, py := level.Locate(grid, rng, unitsCfg.Player.Width)
	s.Player = entities.NewPlayer(unitsCfg, float64(px), float64(py))
	log.Printf("[Session] Player spawned at (%d,%d)", px, py)

	spawn := unitsCfg.Spawn
	for i := 0; i < spawn.SlimeCount; i++ {
		s.Enemies = append(s.Enemies, s.spawnEnemy(entities.ArchetypeSlime))
	}
	for i := 0; i < spawn.BatCount; i++ {
		s.Enemies = append(s.Enemies, s.spawnEnemy(entities.ArchetypeBat))
	}
	for i := 0; i < spawn.SpiderCount; i++ {
		s.Enemies = append(s.Enemies, s.spawnEnemy(entities.ArchetypeSpider))
	}
	log.Printf("[Session] %d enemies spawned", len(s.Enemies))

	return s
}

// spawnEnemy 为原型探测落点并创建实体
// 落点可能是保底点（不保证有效）；无效落点由运动学自行化解
func (s *Session) spawnEnemy(a entities.Archetype) *entities.Entity {
	switch a {
	case entities.ArchetypeBat:
		x, y := level.Locate(s.Grid, s.rng, s.unitsCfg.Bat.Width)
		// 蝙蝠悬停在落点上方的空域
		fy := float64(y) - 8
		if fy < 0 {
			fy = 0
		}
		return entities.NewBat(s.unitsCfg, s.rng, float64(x), fy)
	case entities.ArchetypeSpider:
		x, y := level.Locate(s.Grid, s.rng, s.unitsCfg.Spider.Width)
		return entities.NewSpider(s.unitsCfg, s.rng, float64(x), float64(y))
	default:
		x, y := level.Locate(s.Grid, s.rng, s.unitsCfg.Slime.Width)
		return entities.NewSlime(s.unitsCfg, s.rng, float64(x), float64(y))
	}
}

// Advance 推进一个完整 tick，返回本 tick 的战斗事件
//
// tick 中途没有取消点；暂停只允许发生在两次 Advance 之间。
func (s *Session) Advance(in systems.Intents) []systems.Event {
	s.tick++

	// 1. 玩家意图 + 积分
	s.control.Apply(s.Player, s.Grid, in)

	// 2. 恰好一次沉降
	s.Grid.Step(s.rng)

	// 3. 按名册次序逐敌人：AI → 积分 → 战斗判定
	var events []systems.Event
	for _, e := range s.Enemies {
		if e.Dead {
			continue
		}
		s.behavior.Advance(e, s.Player, s.Grid)
		events = append(events, s.combat.Resolve(s.tick, s.Player, e)...)
	}

	// 4. 标记-清扫 + 重生排队
	s.sweepDead()
	s.advanceRespawns()

	return events
}

// sweepDead 用过滤快照重建名册，死亡敌人进入重生队列
func (s *Session) sweepDead() {
	alive := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Dead {
			s.respawns = append(s.respawns, respawnEntry{
				archetype: e.Archetype,
				ticksLeft: s.unitsCfg.Spawn.RespawnDelayTicks,
			})
			continue
		}
		alive = append(alive, e)
	}
	s.Enemies = alive
}

// advanceRespawns 推进重生延迟，到期的敌人重新探测落点入册
func (s *Session) advanceRespawns() {
	pending := s.respawns[:0]
	for _, r := range s.respawns {
		r.ticksLeft--
		if r.ticksLeft <= 0 {
			s.Enemies = append(s.Enemies, s.spawnEnemy(r.archetype))
			log.Printf("[Session] Respawned %s at tick %d", r.archetype, s.tick)
			continue
		}
		pending = append(pending, r)
	}
	s.respawns = pending
}

// SwordHitbox 返回玩家当前挥剑帧的剑尖判定盒，供渲染层使用
func (s *Session) SwordHitbox() (float64, float64, float64, float64, bool) {
	return s.combat.SwordHitbox(s.Player)
}

// Tick 返回当前 tick 计数
func (s *Session) Tick() int64 { return s.tick }

// GameOver 玩家生命值耗尽即对局结束
func (s *Session) GameOver() bool { return s.Player.Dead }
