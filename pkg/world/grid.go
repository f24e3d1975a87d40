package world

// Grid 是 width×height 的稠密材质网格
//
// 坐标系：x∈[0,width)，y∈[0,height)，y 向下增大。
// 所有访问都做边界检查：越界读取返回"无格子"，越界写入静默忽略，
// 模拟核心从不因坐标问题报错或中断（错误处理约定见各方法注释）。
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid 创建指定尺寸的网格，所有格子初始化为空气
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width 返回网格宽度（格）
func (g *Grid) Width() int { return g.width }

// Height 返回网格高度（格）
func (g *Grid) Height() int { return g.height }

// InBounds 判断坐标是否在网格范围内
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get 读取格子
//
// 返回:
//   - Cell: 格子内容
//   - bool: 坐标越界时为 false（"无格子"）
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.width+x], true
}

// Set 写入格子，越界时静默忽略
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// SetMaterial 写入材质并清除更新标记，越界时静默忽略
func (g *Grid) SetMaterial(x, y int, m Material) {
	g.Set(x, y, Cell{Material: m})
}

// Swap 交换两个格子的内容，任一坐标越界时整体忽略
// 不变式：交换不创造也不销毁材质，每个格子始终恰好持有一种材质
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		return
	}
	i1 := y1*g.width + x1
	i2 := y2*g.width + x2
	g.cells[i1], g.cells[i2] = g.cells[i2], g.cells[i1]
}

// IsEmpty 判断格子是否为空气（越界视为非空）
func (g *Grid) IsEmpty(x, y int) bool {
	c, ok := g.Get(x, y)
	return ok && c.Material == MaterialAir
}

// IsSolid 判断格子对实体碰撞而言是否为实心
//
// 实心定义：材质不是空气、不是植物、也不是角色标记。
// 越界位置一律视为实心，保证实体永远无法离开网格。
func (g *Grid) IsSolid(x, y int) bool {
	c, ok := g.Get(x, y)
	if !ok {
		return true
	}
	m := c.Material
	return m != MaterialAir && m != MaterialPlant && !m.IsActorMarker()
}

// IsPassable 判断格子对出生点探测而言是否可通过（空气或植物）
func (g *Grid) IsPassable(x, y int) bool {
	c, ok := g.Get(x, y)
	if !ok {
		return false
	}
	return c.Material == MaterialAir || c.Material == MaterialPlant
}

// Count 统计指定材质的格子数量（测试与调试用）
func (g *Grid) Count(m Material) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Material == m {
			n++
		}
	}
	return n
}
