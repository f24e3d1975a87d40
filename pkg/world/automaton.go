package world

import "math/rand"

// Step 推进沉降自动机一个 tick
//
// 扫描顺序是正确性契约的一部分：
//   - 行从 height-2 向上扫到 0（最底行是固定地面，永不扫描）
//   - 行内从左向右
//   - 已带更新标记的格子本 tick 跳过
//
// 自底向上扫描加更新标记保证每格每 tick 至多移动一次，
// 沉降结果确定且不会出现"一格连落两行"。
//
// 参数:
//   - rng: 注入的随机源，用于泥土斜向滑落的左右偏向（50/50）
func (g *Grid) Step(rng *rand.Rand) {
	// 清除上一 tick 的更新标记
	for i := range g.cells {
		g.cells[i].Updated = false
	}

	for y := g.height - 2; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.Updated {
				continue
			}
			switch c.Material {
			case MaterialDirt:
				g.stepDirt(x, y, rng)
			case MaterialGrass:
				g.stepGrass(x, y)
			}
			// 其余材质静止
		}
	}
}

// stepDirt 处理泥土沉降：正下方为空则直落，
// 否则按随机偏向依次尝试两个斜下方
func (g *Grid) stepDirt(x, y int, rng *rand.Rand) {
	if g.IsEmpty(x, y+1) {
		g.moveTo(x, y, x, y+1)
		return
	}

	dir := 1
	if rng.Intn(2) == 0 {
		dir = -1
	}
	if g.IsEmpty(x+dir, y+1) {
		g.moveTo(x, y, x+dir, y+1)
	} else if g.IsEmpty(x-dir, y+1) {
		g.moveTo(x, y, x-dir, y+1)
	}
	// 两侧都被堵住则保持原位
}

// stepGrass 处理草的退化：下方为空时草存活不了，
// 原地转为泥土后立即下落一格
func (g *Grid) stepGrass(x, y int) {
	if !g.IsEmpty(x, y+1) {
		return
	}
	g.cells[y*g.width+x].Material = MaterialDirt
	g.moveTo(x, y, x, y+1)
}

// moveTo 把 (x,y) 的材质交换到目标格并给目标打上更新标记
func (g *Grid) moveTo(x, y, nx, ny int) {
	g.Swap(x, y, nx, ny)
	g.cells[ny*g.width+nx].Updated = true
}
