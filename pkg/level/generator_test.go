package level

import (
	"math/rand"
	"testing"

	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/world"
)

func newTestWorldConfig() *config.WorldConfig {
	cfg := config.DefaultWorldConfig()
	cfg.Width = 60
	cfg.Height = 40
	return cfg
}

func TestGenerateFillsEveryColumn(t *testing.T) {
	cfg := newTestWorldConfig()
	g := world.NewGrid(cfg.Width, cfg.Height)
	Generate(g, rand.New(rand.NewSource(7)), cfg)

	// 每列从某个地表行起到底部都应为非空气
	for x := 0; x < cfg.Width; x++ {
		bottom, _ := g.Get(x, cfg.Height-1)
		if bottom.Material == world.MaterialAir {
			t.Fatalf("Column %d has air at the bottom row", x)
		}
	}
}

func TestGenerateCapsColumnsWithGrass(t *testing.T) {
	cfg := newTestWorldConfig()
	// 关闭装饰，只验证基础地形
	cfg.Platforms.Count = 0
	cfg.Pillars.Count = 0
	cfg.PlantChance = 0
	g := world.NewGrid(cfg.Width, cfg.Height)
	Generate(g, rand.New(rand.NewSource(7)), cfg)

	for x := 0; x < cfg.Width; x++ {
		// 找到该列第一个非空气格，应为草
		for y := 0; y < cfg.Height; y++ {
			c, _ := g.Get(x, y)
			if c.Material == world.MaterialAir {
				continue
			}
			if c.Material != world.MaterialGrass {
				t.Fatalf("Column %d surface should be grass, got %v at y=%d", x, c.Material, y)
			}
			// 地表下一格应为泥土（StoneDepth > 1 时地表下不可能是石头）
			below, _ := g.Get(x, y+1)
			if below.Material != world.MaterialDirt {
				t.Fatalf("Column %d should have dirt under grass, got %v", x, below.Material)
			}
			break
		}
	}
}

func TestGenerateStoneOnlyBelowStoneDepth(t *testing.T) {
	cfg := newTestWorldConfig()
	cfg.Platforms.Count = 0
	cfg.Pillars.Count = 0
	cfg.PlantChance = 0
	cfg.StoneChance = 1.0 // 强制足够深的格子全部为石头
	g := world.NewGrid(cfg.Width, cfg.Height)
	Generate(g, rand.New(rand.NewSource(7)), cfg)

	for x := 0; x < cfg.Width; x++ {
		surface := -1
		for y := 0; y < cfg.Height; y++ {
			c, _ := g.Get(x, y)
			if surface < 0 {
				if c.Material != world.MaterialAir {
					surface = y
				}
				continue
			}
			depth := y - surface
			if depth > 0 && depth < cfg.StoneDepth && c.Material == world.MaterialStone {
				t.Fatalf("Stone above stoneDepth at column %d depth %d", x, depth)
			}
			if depth >= cfg.StoneDepth && c.Material != world.MaterialStone {
				t.Fatalf("Expected stone at column %d depth %d, got %v", x, depth, c.Material)
			}
		}
	}
}

func TestGeneratePlantsSitOnSurface(t *testing.T) {
	cfg := newTestWorldConfig()
	cfg.Platforms.Count = 0
	cfg.Pillars.Count = 0
	cfg.PlantChance = 1.0
	g := world.NewGrid(cfg.Width, cfg.Height)
	Generate(g, rand.New(rand.NewSource(7)), cfg)

	// 每株植物的正下方应为植物或草（堆叠在柱顶上）
	for y := 0; y < cfg.Height-1; y++ {
		for x := 0; x < cfg.Width; x++ {
			c, _ := g.Get(x, y)
			if c.Material != world.MaterialPlant {
				continue
			}
			below, _ := g.Get(x, y+1)
			if below.Material != world.MaterialPlant && below.Material != world.MaterialGrass {
				t.Fatalf("Plant at (%d,%d) is floating above %v", x, y, below.Material)
			}
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	cfg := newTestWorldConfig()
	g1 := world.NewGrid(cfg.Width, cfg.Height)
	g2 := world.NewGrid(cfg.Width, cfg.Height)
	Generate(g1, rand.New(rand.NewSource(99)), cfg)
	Generate(g2, rand.New(rand.NewSource(99)), cfg)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			c1, _ := g1.Get(x, y)
			c2, _ := g2.Get(x, y)
			if c1.Material != c2.Material {
				t.Fatalf("Same seed produced different terrain at (%d,%d)", x, y)
			}
		}
	}
}
