// Package level 提供一次性地形生成与出生点探测
//
// 两者都只在关卡开始/重置时运行：生成器通过 Grid.Set 写入地形，
// 探测器通过 Grid.Get 做有界随机搜索。所有随机决策都走注入的随机源。
package level

import (
	"math"
	"math/rand"

	"github.com/decker502/sandfall/pkg/config"
	"github.com/decker502/sandfall/pkg/world"
)

// Generate 在空网格上生成地形与装饰
//
// 地表高度 = 基准地面比例 × 网格高度 + 低频正弦起伏；
// 柱顶盖草、下方填泥土、足够深时按概率替换为石头；
// 低概率在柱顶生成 1~3 格植物堆；随后放置可选的浮空平台与石柱，
// 装饰只写入当前为空气的格子并裁剪到网格边界。
func Generate(g *world.Grid, rng *rand.Rand, cfg *config.WorldConfig) {
	w, h := g.Width(), g.Height()

	for x := 0; x < w; x++ {
		surface := surfaceY(x, h, cfg)

		for y := surface; y < h; y++ {
			depth := y - surface
			m := world.MaterialDirt
			switch {
			case depth == 0:
				m = world.MaterialGrass
			case depth >= cfg.StoneDepth && rng.Float64() < cfg.StoneChance:
				m = world.MaterialStone
			}
			g.SetMaterial(x, y, m)
		}

		// 柱顶植物堆
		if rng.Float64() < cfg.PlantChance {
			stack := 1 + rng.Intn(cfg.PlantMaxHeight)
			for i := 1; i <= stack; i++ {
				if !g.IsEmpty(x, surface-i) {
					break
				}
				g.SetMaterial(x, surface-i, world.MaterialPlant)
			}
		}
	}

	placePlatforms(g, rng, cfg)
	placePillars(g, rng, cfg)
}

// surfaceY 计算第 x 列的地表行号，并裁剪到有效范围
func surfaceY(x, height int, cfg *config.WorldConfig) int {
	base := float64(height) * cfg.GroundRatio
	wave := cfg.WaveAmplitude * math.Sin(float64(x)*cfg.WaveFrequency)
	surface := int(base + wave)
	if surface < 1 {
		surface = 1
	}
	if surface > height-1 {
		surface = height - 1
	}
	return surface
}

// placePlatforms 放置浮空平台：草皮盖顶的泥土矩形，
// 只覆盖当前为空气的格子
func placePlatforms(g *world.Grid, rng *rand.Rand, cfg *config.WorldConfig) {
	d := cfg.Platforms
	if d.Count <= 0 {
		return
	}
	const thickness = 3 // 1 行草 + 2 行泥土

	for i := 0; i < d.Count; i++ {
		width := d.MinSize + rng.Intn(d.MaxSize-d.MinSize+1)
		px := rng.Intn(g.Width())
		// 平台落在地表以上的空域
		py := 4 + rng.Intn(maxInt(1, int(float64(g.Height())*cfg.GroundRatio)-8))

		for ox := 0; ox < width; ox++ {
			for oy := 0; oy < thickness; oy++ {
				x, y := px+ox, py+oy
				if !g.IsEmpty(x, y) {
					continue
				}
				if oy == 0 {
					g.SetMaterial(x, y, world.MaterialGrass)
				} else {
					g.SetMaterial(x, y, world.MaterialDirt)
				}
			}
		}
	}
}

// placePillars 放置垂直石柱，只覆盖当前为空气的格子
func placePillars(g *world.Grid, rng *rand.Rand, cfg *config.WorldConfig) {
	d := cfg.Pillars
	if d.Count <= 0 {
		return
	}

	for i := 0; i < d.Count; i++ {
		height := d.MinSize + rng.Intn(d.MaxSize-d.MinSize+1)
		px := rng.Intn(g.Width())
		// 从地表向上长
		top := surfaceY(px, g.Height(), cfg) - height

		for oy := 0; oy < height; oy++ {
			y := top + oy
			if g.IsEmpty(px, y) {
				g.SetMaterial(px, y, world.MaterialStone)
			}
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
