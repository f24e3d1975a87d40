package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/entities"
	"github.com/decker502/sandfall/pkg/world"
)

// newFlatWorld 创建第 floorY 行以下全为石头的网格
func newFlatWorld(w, h, floorY int) *world.Grid {
	g := world.NewGrid(w, h)
	for y := floorY; y < h; y++ {
		for x := 0; x < w; x++ {
			g.SetMaterial(x, y, world.MaterialStone)
		}
	}
	return g
}

func newTestBehaviorSystem() (*BehaviorSystem, *config.UnitsConfig, *rand.Rand) {
	cfg := config.DefaultUnitsConfig()
	rng := rand.New(rand.NewSource(11))
	return NewBehaviorSystem(cfg, rng), cfg, rng
}

// settle 让实体落到地面上
func settle(s *BehaviorSystem, e, player *entities.Entity, g *world.Grid) {
	for i := 0; i < 120 && !e.Grounded; i++ {
		s.Advance(e, player, g)
	}
}

func TestSlimeJumpsTowardNearbyPlayer(t *testing.T) {
	s, cfg, rng := newTestBehaviorSystem()
	g := newFlatWorld(100, 50, 30)

	player := entities.NewPlayer(cfg, 60, 27)
	slime := entities.NewSlime(cfg, rng, 50, 27)
	slime.JumpCooldown = 0
	settle(s, slime, player, g)
	slime.JumpCooldown = 0

	s.Advance(slime, player, g)

	// 水平距离 10 < 30：应朝玩家（右侧）起跳
	if slime.VY >= 0 {
		t.Errorf("Slime should launch upward, VY=%v", slime.VY)
	}
	if slime.VX <= 0 {
		t.Errorf("Slime should move toward the player (right), VX=%v", slime.VX)
	}
	// 冷却重置到 [min,max)
	if slime.JumpCooldown < cfg.Slime.CooldownMin || slime.JumpCooldown >= cfg.Slime.CooldownMax {
		t.Errorf("Jump cooldown should be in [%d,%d), got %d",
			cfg.Slime.CooldownMin, cfg.Slime.CooldownMax, slime.JumpCooldown)
	}
}

func TestSlimeIgnoresDistantPlayer(t *testing.T) {
	s, cfg, rng := newTestBehaviorSystem()
	g := newFlatWorld(200, 50, 30)

	player := entities.NewPlayer(cfg, 150, 27)
	slime := entities.NewSlime(cfg, rng, 20, 27)
	settle(s, slime, player, g)
	slime.JumpCooldown = 0

	s.Advance(slime, player, g)

	// 距离远超触发范围：不起跳（仅重力/摩擦作用）
	if slime.VY < 0 {
		t.Errorf("Distant slime must not jump, VY=%v", slime.VY)
	}
}

func TestSlimeCooldownAdvancesEveryTick(t *testing.T) {
	s, cfg, rng := newTestBehaviorSystem()
	g := newFlatWorld(200, 50, 30)

	player := entities.NewPlayer(cfg, 190, 27)
	slime := entities.NewSlime(cfg, rng, 5, 27)
	slime.JumpCooldown = 10

	// 玩家在远处：冷却依然每 tick 推进一次
	for i := 0; i < 4; i++ {
		s.Advance(slime, player, g)
	}
	if slime.JumpCooldown != 6 {
		t.Errorf("Cooldown should advance once per tick regardless of player distance, got %d", slime.JumpCooldown)
	}
}

func TestBatTransitionsToDivingInRange(t *testing.T) {
	s, cfg, rng := newTestBehaviorSystem()
	g := world.NewGrid(200, 100)

	// 规约场景：距玩家 35 < 40 且冷却为 0 → 下一个 AI tick 进入俯冲
	player := entities.NewPlayer(cfg, 50, 50)
	bat := entities.NewBat(cfg, rng, player.X+35, player.Y)
	bat.DiveCooldown = 0

	s.Advance(bat, player, g)

	if bat.BatMode != entities.BatDiving {
		t.Errorf("Bat at distance 35 with zero cooldown should dive, mode=%v", bat.BatMode)
	}
}

func TestBatStaysHoveringWhileOnCooldown(t *testing.T) {
	s, cfg, rng := newTestBehaviorSystem()
	g := world.NewGrid(200, 100)

	player := entities.NewPlayer(cfg, 50, 50)
	bat := entities.NewBat(cfg, rng, player.X+35, player.Y)
	bat.DiveCooldown = 60

	s.Advance(bat, player, g)

	if bat.BatMode != entities.BatHovering {
		t.Error("Bat on dive cooldown must keep hovering")
	}
	if bat.DiveCooldown != 59 {
		t.Errorf("Dive cooldown should advance once per tick, got %d", bat.DiveCooldown)
	}
}

func TestBatPullsUpOverSolidGround(t *testing.T) {
	s, cfg, rng := newTestBehaviorSystem()
	g := world.NewGrid(200, 100)

	player := entities.NewPlayer(cfg, 50, 60)
	bat := entities.NewBat(cfg, rng, 50, 40)
	bat.BatMode = entities.BatDiving

	// 蝙蝠下缘正下方放实心格
	g.SetMaterial(int(bat.CenterX()), int(bat.Y)+bat.H, world.MaterialStone)

	s.Advance(bat, player, g)

	// 规约场景：探到地面 → 回悬停，冷却 120，vy 被强制向上
	if bat.BatMode != entities.BatHovering {
		t.Error("Bat probing ground beneath should return to hovering")
	}
	if bat.DiveCooldown != cfg.Bat.DiveCooldown {
		t.Errorf("Dive cooldown should reset to %d, got %d", cfg.Bat.DiveCooldown, bat.DiveCooldown)
	}
	if bat.VY >= 0 {
		t.Errorf("Pull-up must force VY negative, got %v", bat.VY)
	}
}

func TestBatClampedToBounds(t *testing.T) {
	s, cfg, rng := newTestBehaviorSystem()
	g := world.NewGrid(100, 100)

	player := entities.NewPlayer(cfg, 5, 5)
	bat := entities.NewBat(cfg, rng, 0.5, 0.5)
	bat.BaselineY = -20 // 迫使缓动目标位于网格上方
	bat.VY = -5

	for i := 0; i < 30; i++ {
		s.Advance(bat, player, g)
	}

	if bat.Y < 0 {
		t.Errorf("Bat Y must be clamped to >= 0, got %v", bat.Y)
	}
	if bat.X < 0 || bat.X > float64(g.Width()-bat.W) {
		t.Errorf("Bat X must stay within horizontal bounds, got %v", bat.X)
	}
}

func TestSpiderClimbsWallTowardPlayer(t *testing.T) {
	s, cfg, rng := newTestBehaviorSystem()
	g := newFlatWorld(100, 60, 50)

	// 蜘蛛贴着一堵竖墙，玩家在高处
	for y := 10; y < 50; y++ {
		g.SetMaterial(40, y, world.MaterialStone)
	}
	spider := entities.NewSpider(cfg, rng, 41, 40)
	player := entities.NewPlayer(cfg, 44, 15)

	startY := spider.Y
	s.Advance(spider, player, g)

	if spider.SpiderMode != entities.SpiderClimbing {
		t.Fatalf("Wall-adjacent spider with large dy should climb, mode=%v", spider.SpiderMode)
	}
	// 朝玩家方向（向上）以单位速度直接移动，vx 强制为零
	if spider.Y != startY-cfg.Spider.ClimbSpeed {
		t.Errorf("Climbing spider should move %v toward player, Y %v -> %v",
			cfg.Spider.ClimbSpeed, startY, spider.Y)
	}
	if spider.VX != 0 {
		t.Errorf("Climbing forces VX to zero, got %v", spider.VX)
	}
}

func TestSpiderGroundedModeWithoutWall(t *testing.T) {
	s, cfg, rng := newTestBehaviorSystem()
	g := newFlatWorld(100, 60, 40)

	spider := entities.NewSpider(cfg, rng, 50, 37)
	player := entities.NewPlayer(cfg, 60, 37)
	settle(s, spider, player, g)
	spider.JumpCooldown = 0

	s.Advance(spider, player, g)

	if spider.SpiderMode != entities.SpiderGrounded {
		t.Errorf("Spider with no adjacent wall should be grounded, mode=%v", spider.SpiderMode)
	}
	// 距离 10 < 35：地面模式起跳
	if spider.VY >= 0 {
		t.Errorf("Grounded spider in range should jump, VY=%v", spider.VY)
	}
	if spider.JumpCooldown < cfg.Spider.CooldownMin || spider.JumpCooldown >= cfg.Spider.CooldownMax {
		t.Errorf("Spider cooldown should be in [%d,%d), got %d",
			cfg.Spider.CooldownMin, cfg.Spider.CooldownMax, spider.JumpCooldown)
	}
}

func TestSpiderClimbClampedToGrid(t *testing.T) {
	s, cfg, rng := newTestBehaviorSystem()
	g := world.NewGrid(100, 60)
	for y := 0; y < 60; y++ {
		g.SetMaterial(40, y, world.MaterialStone)
	}

	spider := entities.NewSpider(cfg, rng, 41, 1)
	// 玩家置于网格下方之外，保证蜘蛛持续向下攀爬
	player := entities.NewPlayer(cfg, 44, 55)
	player.Y = 70

	// 向下爬到底部应被夹在 height−footprint
	for i := 0; i < 120; i++ {
		s.Advance(spider, player, g)
	}
	if spider.SpiderMode != entities.SpiderClimbing {
		t.Fatalf("Spider should still be climbing, mode=%v", spider.SpiderMode)
	}
	if spider.Y != float64(g.Height()-spider.H) {
		t.Errorf("Climbing Y must be clamped to height-footprint (%d), got %v",
			g.Height()-spider.H, spider.Y)
	}
}
