package components

// CollisionComponent 定义实体的圆形碰撞范围
// 两实体中心距离小于半径之和即视为接触(静态圆-圆测试,不做连续碰撞)
type CollisionComponent struct {
	Radius float64 // 碰撞半径(像素)
}
