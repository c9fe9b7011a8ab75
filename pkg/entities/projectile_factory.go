package entities

import (
	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
)

// NewBullet 创建普通鱼叉,向右匀速飞行,命中第一个目标后销毁
func NewBullet(em *ecs.EntityManager, weapons config.WeaponConfig, x, y float64) ecs.EntityID {
	return newPlayerProjectile(em, components.ProjectileBullet, false, x, y, weapons.BulletSpeed, weapons.BulletRadius)
}

// NewFireball 创建穿透火球
// 对普通敌人和水雷穿透(每个目标只结算一次),命中 Boss 时被消耗
func NewFireball(em *ecs.EntityManager, weapons config.WeaponConfig, x, y float64) ecs.EntityID {
	return newPlayerProjectile(em, components.ProjectileFireball, true, x, y, weapons.FireballSpeed, weapons.FireballRadius)
}

// NewCompanionShot 创建僚机子弹
func NewCompanionShot(em *ecs.EntityManager, companion config.CompanionConfig, x, y float64) ecs.EntityID {
	return newPlayerProjectile(em, components.ProjectileCompanion, false, x, y, companion.ShotSpeed, companion.ShotRadius)
}

func newPlayerProjectile(em *ecs.EntityManager, kind components.ProjectileKind, piercing bool, x, y, speed, radius float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: speed})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: radius})

	proj := &components.ProjectileComponent{Kind: kind, Piercing: piercing}
	if piercing {
		proj.HitSet = make(map[ecs.EntityID]struct{})
	}
	ecs.AddComponent(em, id, proj)
	return id
}

// NewBossProjectile 创建 Boss 弹幕
//
// 参数:
//   - owner: 发射者,Boss 击破时据此清除
//   - vx, vy: 60fps 下的像素/帧速度
func NewBossProjectile(em *ecs.EntityManager, owner ecs.EntityID, x, y, vx, vy, radius float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: radius})
	ecs.AddComponent(em, id, &components.BossProjectileComponent{Owner: owner})
	return id
}
