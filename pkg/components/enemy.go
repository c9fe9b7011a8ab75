package components

// EnemyComponent 普通敌人
type EnemyComponent struct {
	Archetype string // 原型名称,对应配置中的 enemies 键
	Points    int    // 基础分值(结算时乘以连击倍率)

	// HasHitPlayer 身体接触只伤害玩家一次,敌人本身不会因此被摧毁
	HasHitPlayer bool
}

// MineComponent 水雷:缓慢漂移,可被击毁,接触玩家即爆炸
type MineComponent struct {
	Points   int
	Rotation float64 // 当前旋转角(弧度),仅供表现层使用
}

// CollectibleComponent 只加分的漂浮拾取物
type CollectibleComponent struct {
	Value int
}
