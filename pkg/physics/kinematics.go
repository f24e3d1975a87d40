// Package physics 提供所有可移动角色共用的运动学与碰撞例程
//
// 每个原型只在常量上有差异（重力、摩擦、速度上限），
// 积分与碰撞逻辑本身对所有角色逐字共用。
// 分步积分（每子步不超过一格）是高速穿透薄地层的唯一防线。
package physics

import (
	"math"

	"github.com/decker502/sandfall/pkg/world"
)

// Profile 定义单个原型的运动学常量
//
// 积分例程是纯函数：所有随原型变化的量都通过 Profile 显式传入，
// 不依赖任何全局状态。
type Profile struct {
	Gravity       float64 // 每 tick 的重力加速度（格/tick²）
	Friction      float64 // 水平速度每 tick 的衰减系数（0~1）
	MaxFall       float64 // 下落终端速度上限（格/tick）
	StopThreshold float64 // 低于该速度时水平速度直接归零
}

// Body 是参与运动学积分的刚体状态
// 位置以格为单位连续取值，包围盒为向下取整后的 W×H 整数格
type Body struct {
	X, Y     float64 // 左上角位置（格）
	VX, VY   float64 // 速度（格/tick）
	W, H     int     // 占位尺寸（格）
	Grounded bool    // 是否站在实心格上
}

// Collides 检测位于 (x,y) 的 w×h 包围盒是否与实心格重叠
//
// 包围盒按向下取整对齐到格子；实心的定义见 world.Grid.IsSolid：
// 空气、植物与角色标记可穿过，越界一律实心。
func Collides(g *world.Grid, x, y float64, w, h int) bool {
	cx := int(math.Floor(x))
	cy := int(math.Floor(y))
	for ox := 0; ox < w; ox++ {
		for oy := 0; oy < h; oy++ {
			if g.IsSolid(cx+ox, cy+oy) {
				return true
			}
		}
	}
	return false
}

// ApplyGravity 施加重力并按终端速度截断
func ApplyGravity(b *Body, p Profile) {
	b.VY += p.Gravity
	if b.VY > p.MaxFall {
		b.VY = p.MaxFall
	}
}

// Integrate 执行一个 tick 的分步碰撞积分
//
// 垂直方向把 vy 均分为 ceil(|vy|) 个子步（每子步不超过一格），
// 每子步提交前先做碰撞测试：向下碰撞置 Grounded 并清零 vy，
// 向上碰撞只清零 vy。水平方向按 vx 的符号以整格步进，
// 至多 ceil(|vx|) 步，首次碰撞即停止并清零 vx；
// 水平位移因此以整格为粒度（vx=1.2 一个 tick 走 2 格）。
// 积分完成后水平速度按摩擦系数衰减，低于阈值时吸附为零。
func Integrate(b *Body, g *world.Grid, p Profile) {
	b.Grounded = false

	// 垂直分步
	if b.VY != 0 {
		steps := int(math.Ceil(math.Abs(b.VY)))
		dy := b.VY / float64(steps)
		for i := 0; i < steps; i++ {
			if Collides(g, b.X, b.Y+dy, b.W, b.H) {
				if b.VY > 0 {
					b.Grounded = true
				}
				b.VY = 0
				break
			}
			b.Y += dy
		}
	}

	// 水平分步：每子步恰好一格，方向取 vx 的符号
	if b.VX != 0 {
		steps := int(math.Ceil(math.Abs(b.VX)))
		dx := 1.0
		if b.VX < 0 {
			dx = -1
		}
		for i := 0; i < steps; i++ {
			if Collides(g, b.X+dx, b.Y, b.W, b.H) {
				b.VX = 0
				break
			}
			b.X += dx
		}
	}

	// 摩擦衰减与小速度吸附
	b.VX *= p.Friction
	if math.Abs(b.VX) < p.StopThreshold {
		b.VX = 0
	}
}
