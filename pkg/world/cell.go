// Package world 实现沙盘世界的材质网格与沉降元胞自动机
//
// 网格是整个模拟的地形真相：每个格子持有唯一材质，
// 自动机每 tick 让松散材质（泥土、草）向下沉降一步。
// 实体位置的真相只存在于 Entity 对象上，网格中的角色标记
// 材质只是渲染回显，物理系统永远不会读取它们（见 IsActorMarker）。
package world

// Material 定义格子的材质类型
type Material int

const (
	// MaterialAir 空气：默认的空置材质
	MaterialAir Material = iota
	// MaterialDirt 泥土：受自动机沉降规则影响
	MaterialDirt
	// MaterialGrass 草：失去支撑时原地退化为泥土再下落
	MaterialGrass
	// MaterialPlant 植物：装饰材质，可穿过，不沉降
	MaterialPlant
	// MaterialStone 石头：静止的实心材质
	MaterialStone
	// MaterialPlayer 玩家标记：渲染回显，非权威位置
	MaterialPlayer
	// MaterialSlime 敌人标记：渲染回显，非权威位置
	MaterialSlime
	// MaterialSword 武器标记：渲染回显，非权威位置
	MaterialSword
)

// IsActorMarker 判断材质是否为角色标记
// 角色标记只用于渲染回显，对碰撞检测永远视为可穿过
func (m Material) IsActorMarker() bool {
	return m == MaterialPlayer || m == MaterialSlime || m == MaterialSword
}

// Cell 是网格中的一个格子
type Cell struct {
	Material Material // 当前材质
	Updated  bool     // 本 tick 是否已移动过（防止同一 tick 内二次移动）
}
