package level

import "math/rand"

// 网格读取接口，出生点探测只需要可通过性判断
type passableGrid interface {
	Width() int
	Height() int
	IsPassable(x, y int) bool
}

// maxSpawnProbes 随机探测次数上限
const maxSpawnProbes = 100

// Locate 为宽度 w 的占位寻找一个有效的开放落点
//
// 每次探测随机取 x∈[0, gridWidth−w)，从 y=0 向下扫到 gridHeight−10，
// 接受第一个满足"该行 w 列全部可通过（空气或植物）且下一行至少
// 一列不可通过（存在地板支撑）"的行。
//
// 探测预算耗尽时返回固定保底点（水平居中 − w/2, y=10）。
// 保底点不保证有效，调用方必须容忍无效落点。
//
// 参数:
//   - g: 网格
//   - rng: 注入的随机源
//   - w: 所需占位宽度（格）
//
// 返回:
//   - x, y: 落点（格，左上角）
func Locate(g passableGrid, rng *rand.Rand, w int) (int, int) {
	for probe := 0; probe < maxSpawnProbes; probe++ {
		x := rng.Intn(g.Width() - w)

		for y := 0; y <= g.Height()-10; y++ {
			if !rowPassable(g, x, y, w) {
				continue
			}
			if rowHasSupport(g, x, y+1, w) {
				return x, y
			}
		}
	}

	// 保底点：水平居中，固定高度
	return g.Width()/2 - w/2, 10
}

// rowPassable 判断 (x..x+w-1, y) 是否全部可通过
func rowPassable(g passableGrid, x, y, w int) bool {
	for i := 0; i < w; i++ {
		if !g.IsPassable(x+i, y) {
			return false
		}
	}
	return true
}

// rowHasSupport 判断 (x..x+w-1, y) 是否至少有一列不可通过
func rowHasSupport(g passableGrid, x, y, w int) bool {
	for i := 0; i < w; i++ {
		if !g.IsPassable(x+i, y) {
			return true
		}
	}
	return false
}
