package world

import (
	"math/rand"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// countMaterials 统计所有非空气材质的数量，用于守恒性断言
func countMaterials(g *Grid) map[Material]int {
	counts := make(map[Material]int)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, _ := g.Get(x, y)
			if c.Material != MaterialAir {
				counts[c.Material]++
			}
		}
	}
	return counts
}

func TestDirtFallsOneRowPerStep(t *testing.T) {
	g := NewGrid(10, 10)
	g.SetMaterial(5, 0, MaterialDirt)
	rng := newTestRand()

	// 孤立泥土下方全空时，每次 Step 恰好下落一行
	for i := 1; i <= 5; i++ {
		g.Step(rng)
		c, _ := g.Get(5, i)
		if c.Material != MaterialDirt {
			t.Fatalf("After %d steps dirt should be at (5,%d)", i, i)
		}
		if above, _ := g.Get(5, i-1); above.Material != MaterialAir {
			t.Fatalf("After %d steps cell above should be air", i)
		}
	}
}

func TestScenarioDirtSettlesOnBottomRow(t *testing.T) {
	// 规约场景：10×10 网格，第 9 行为固定地面，其余为空气，
	// 泥土放在 (5,0)；1 次 Step 后位于 (5,1)，8 次后停在 (5,8)
	g := NewGrid(10, 10)
	for x := 0; x < 10; x++ {
		g.SetMaterial(x, 9, MaterialStone)
	}
	g.SetMaterial(5, 0, MaterialDirt)
	rng := newTestRand()

	g.Step(rng)
	if c, _ := g.Get(5, 1); c.Material != MaterialDirt {
		t.Fatal("After 1 step dirt should be at (5,1)")
	}

	for i := 0; i < 7; i++ {
		g.Step(rng)
	}
	if c, _ := g.Get(5, 8); c.Material != MaterialDirt {
		t.Fatal("After 8 steps dirt should rest at (5,8)")
	}

	// 继续 Step 不应再移动（下方是石头）
	g.Step(rng)
	if c, _ := g.Get(5, 8); c.Material != MaterialDirt {
		t.Fatal("Settled dirt should not move further")
	}
}

func TestBottomRowNeverMoves(t *testing.T) {
	g := NewGrid(10, 10)
	// 最底行放置泥土：底行永不扫描，材质保持原位
	g.SetMaterial(4, 9, MaterialDirt)
	rng := newTestRand()

	for i := 0; i < 5; i++ {
		g.Step(rng)
	}
	if c, _ := g.Get(4, 9); c.Material != MaterialDirt {
		t.Error("Dirt on the bottom row must never move")
	}
}

func TestGrassDecaysToDirtWhenUnsupported(t *testing.T) {
	g := NewGrid(10, 10)
	g.SetMaterial(3, 2, MaterialGrass)
	rng := newTestRand()

	g.Step(rng)

	// 草应退化为泥土并占据下一行
	if c, _ := g.Get(3, 3); c.Material != MaterialDirt {
		t.Error("Unsupported grass should become dirt one row below")
	}
	if g.Count(MaterialGrass) != 0 {
		t.Error("Grass must not survive falling")
	}
}

func TestGrassOnSupportStaysGrass(t *testing.T) {
	g := NewGrid(10, 10)
	g.SetMaterial(3, 5, MaterialGrass)
	g.SetMaterial(3, 6, MaterialStone)
	rng := newTestRand()

	g.Step(rng)

	if c, _ := g.Get(3, 5); c.Material != MaterialGrass {
		t.Error("Supported grass should stay grass in place")
	}
}

func TestStepConservesMaterial(t *testing.T) {
	g := NewGrid(20, 20)
	rng := newTestRand()

	// 随机铺一批材质
	for i := 0; i < 80; i++ {
		x := rng.Intn(20)
		y := rng.Intn(19)
		materials := []Material{MaterialDirt, MaterialStone, MaterialPlant}
		g.SetMaterial(x, y, materials[rng.Intn(len(materials))])
	}

	before := countMaterials(g)
	total := 0
	for _, n := range before {
		total += n
	}

	// 任意次 Step 后非空气材质总数不变（本组不含草，各类数量也不变）
	for i := 0; i < 30; i++ {
		g.Step(rng)
	}

	after := countMaterials(g)
	totalAfter := 0
	for _, n := range after {
		totalAfter += n
	}
	if totalAfter != total {
		t.Errorf("Material total changed: before=%d after=%d", total, totalAfter)
	}
	for m, n := range before {
		if after[m] != n {
			t.Errorf("Material %v count changed: before=%d after=%d", m, n, after[m])
		}
	}
}

func TestGrassConservationConvertsInPlace(t *testing.T) {
	g := NewGrid(10, 10)
	g.SetMaterial(2, 0, MaterialGrass)
	g.SetMaterial(7, 0, MaterialGrass)
	rng := newTestRand()

	g.Step(rng)

	// 草只会原地转为泥土再移动，总量守恒
	if n := g.Count(MaterialGrass) + g.Count(MaterialDirt); n != 2 {
		t.Errorf("Grass+Dirt total should stay 2, got %d", n)
	}
}

func TestNoDoubleMovePerStep(t *testing.T) {
	g := NewGrid(10, 12)
	// 一列 5 格泥土悬空，下面全是空气
	for y := 0; y < 5; y++ {
		g.SetMaterial(4, y, MaterialDirt)
	}
	rng := newTestRand()

	g.Step(rng)

	// 每格每 tick 至多移动一次：整列应整体下移恰好一行
	for y := 1; y <= 5; y++ {
		c, _ := g.Get(4, y)
		if c.Material != MaterialDirt {
			t.Fatalf("After one step column should occupy rows 1..5, missing at y=%d", y)
		}
	}
	if c, _ := g.Get(4, 0); c.Material != MaterialAir {
		t.Error("Top cell should be vacated after one step")
	}
	if c, _ := g.Get(4, 6); c.Material != MaterialAir {
		t.Error("No cell may move two rows in one step")
	}
}

func TestDirtSlidesDiagonally(t *testing.T) {
	g := NewGrid(10, 10)
	// 泥土落在石头尖顶上，两侧斜下方为空，应滑向某一侧
	g.SetMaterial(5, 4, MaterialDirt)
	g.SetMaterial(5, 5, MaterialStone)
	for x := 0; x < 10; x++ {
		g.SetMaterial(x, 9, MaterialStone)
	}
	rng := newTestRand()

	g.Step(rng)

	left, _ := g.Get(4, 5)
	right, _ := g.Get(6, 5)
	if left.Material != MaterialDirt && right.Material != MaterialDirt {
		t.Error("Dirt on a peak should slide into a diagonal air cell")
	}
	if c, _ := g.Get(5, 4); c.Material != MaterialAir {
		t.Error("Origin cell should be vacated after sliding")
	}
}

func TestDirtBlockedStaysPut(t *testing.T) {
	g := NewGrid(10, 10)
	// 三个下方格子全被堵住，泥土应保持原位
	g.SetMaterial(5, 4, MaterialDirt)
	g.SetMaterial(4, 5, MaterialStone)
	g.SetMaterial(5, 5, MaterialStone)
	g.SetMaterial(6, 5, MaterialStone)
	rng := newTestRand()

	g.Step(rng)

	if c, _ := g.Get(5, 4); c.Material != MaterialDirt {
		t.Error("Fully blocked dirt must stay in place")
	}
}
