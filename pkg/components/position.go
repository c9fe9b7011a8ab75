package components

// PositionComponent 实体在场地中的中心坐标(像素)
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 线性速度,单位为 60fps 下的像素/帧
// 用于玩家弹药和 Boss 弹幕,不受难度倍率影响
type VelocityComponent struct {
	VX float64
	VY float64
}
