package systems

import (
	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/ecs"
)

// BoundsSystem 场地边界清理
// 越界是实体除了被击毁之外唯一的回收途径,必须每帧在碰撞检测之前运行
type BoundsSystem struct {
	world *World
}

// NewBoundsSystem 创建边界系统
func NewBoundsSystem(world *World) *BoundsSystem {
	return &BoundsSystem{world: world}
}

// Update 标记所有越界实体待删除,返回本帧移除数量
func (s *BoundsSystem) Update() int {
	em := s.world.EM
	field := s.world.Config.Field
	removed := 0

	destroyIf := func(ids []ecs.EntityID, out func(*components.PositionComponent) bool) {
		for _, id := range ids {
			pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
			if !ok || !out(pos) {
				continue
			}
			em.DestroyEntity(id)
			removed++
		}
	}

	// 向右飞行的玩家弹药
	destroyIf(ecs.GetEntitiesWith1[*components.ProjectileComponent](em), func(p *components.PositionComponent) bool {
		return p.X > field.ProjectileRightBound
	})

	// 向左漂移的敌人
	destroyIf(ecs.GetEntitiesWith1[*components.EnemyComponent](em), func(p *components.PositionComponent) bool {
		return p.X < field.EnemyLeftBound
	})

	// 水雷和拾取物
	pickupOut := func(p *components.PositionComponent) bool {
		return p.X < field.PickupLeftBound
	}
	destroyIf(ecs.GetEntitiesWith1[*components.MineComponent](em), pickupOut)
	destroyIf(ecs.GetEntitiesWith1[*components.CollectibleComponent](em), pickupOut)
	destroyIf(ecs.GetEntitiesWith1[*components.PowerupComponent](em), pickupOut)

	// Boss 弹幕可以斜向飞出,需要检查左边界和上下边界
	destroyIf(ecs.GetEntitiesWith1[*components.BossProjectileComponent](em), func(p *components.PositionComponent) bool {
		return p.X < field.HazardLeftBound ||
			p.Y < -field.HazardVerticalMargin ||
			p.Y > field.Height+field.HazardVerticalMargin
	})

	return removed
}
