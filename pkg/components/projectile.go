package components

import "github.com/decker502/deepdive/pkg/ecs"

// ProjectileKind 玩家方弹药种类
type ProjectileKind int

const (
	ProjectileBullet    ProjectileKind = iota // 普通鱼叉
	ProjectileFireball                        // 穿透火球
	ProjectileCompanion                       // 僚机子弹
)

// ProjectileComponent 玩家方弹药,向 +x 方向飞行
//
// 非穿透弹药命中第一个目标后即被销毁;
// 穿透弹药把命中过的目标记在 HitSet 中,同一目标在其生命期内只结算一次。
type ProjectileComponent struct {
	Kind     ProjectileKind
	Piercing bool
	HitSet   map[ecs.EntityID]struct{}
}

// HasHit 是否已命中过该目标
func (p *ProjectileComponent) HasHit(target ecs.EntityID) bool {
	_, ok := p.HitSet[target]
	return ok
}

// RecordHit 记录命中目标
func (p *ProjectileComponent) RecordHit(target ecs.EntityID) {
	if p.HitSet == nil {
		p.HitSet = make(map[ecs.EntityID]struct{})
	}
	p.HitSet[target] = struct{}{}
}

// BossProjectileComponent Boss 弹幕(飞行由 VelocityComponent 驱动)
type BossProjectileComponent struct {
	Owner ecs.EntityID // 发射它的 Boss 实体,Boss 击破时据此清场
}
