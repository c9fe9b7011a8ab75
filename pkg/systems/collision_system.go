package systems

import (
	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/types"
)

// ContactHandler 接触结算
// CollisionSystem 每检测到一次接触就立即同步调用对应方法,
// 处理方法销毁的实体在本帧后续的检测中会被跳过
type ContactHandler interface {
	OnProjectileEnemy(projectile, enemy ecs.EntityID)
	OnProjectileBoss(projectile, boss ecs.EntityID)
	OnProjectileMine(projectile, mine ecs.EntityID)
	OnMinePlayer(mine, player ecs.EntityID)
	OnPickup(pickup, player ecs.EntityID)
	OnBossProjectilePlayer(projectile, player ecs.EntityID)
	OnEnemyPlayer(enemy, player ecs.EntityID)
	OnBossPlayer(boss, player ecs.EntityID)
}

// CollisionSystem 圆形接触检测
//
// 静态圆-圆重叠(中心距 < 半径之和),不做连续检测,高速穿透是已知限制。
type CollisionSystem struct {
	world   *World
	handler ContactHandler
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - world: 共享上下文
//   - handler: 接触结算,通常是 CombatSystem
func NewCollisionSystem(world *World, handler ContactHandler) *CollisionSystem {
	return &CollisionSystem{world: world, handler: handler}
}

// circlesOverlap 两圆是否重叠,刚好相切不算
func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x1 - x2
	dy := y1 - y2
	sum := r1 + r2
	return dx*dx+dy*dy < sum*sum
}

// body 一次检测所需的位置和半径
type body struct {
	id     ecs.EntityID
	x, y   float64
	radius float64
}

func (s *CollisionSystem) bodyOf(id ecs.EntityID) (body, bool) {
	em := s.world.EM
	if !em.IsAlive(id) {
		return body{}, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return body{}, false
	}
	b := body{id: id, x: pos.X, y: pos.Y}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		b.radius = col.Radius
	}
	return b, true
}

// Update 检测本帧所有接触对
func (s *CollisionSystem) Update() {
	s.checkProjectiles()

	if s.world.State.GameOver {
		return
	}
	player, ok := s.bodyOf(s.world.State.PlayerID)
	if !ok {
		return
	}
	s.checkPlayer(player)
}

// checkProjectiles 玩家弹药 vs 敌人、Boss、水雷
func (s *CollisionSystem) checkProjectiles() {
	em := s.world.EM
	projectiles := ecs.GetEntitiesWith1[*components.ProjectileComponent](em)
	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](em)
	mines := ecs.GetEntitiesWith1[*components.MineComponent](em)
	bosses := s.hittableBosses()

	for _, pid := range projectiles {
		proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, pid)
		if !ok {
			continue
		}

		s.sweep(pid, proj, enemies, s.handler.OnProjectileEnemy)
		s.sweep(pid, proj, bosses, s.hitBoss)
		s.sweep(pid, proj, mines, s.handler.OnProjectileMine)
	}
}

// sweep 一颗弹药对一组目标逐个检测
// 弹药失效(非穿透命中)后立即停止;穿透弹药跳过已命中过的目标
func (s *CollisionSystem) sweep(pid ecs.EntityID, proj *components.ProjectileComponent, targets []ecs.EntityID, hit func(projectile, target ecs.EntityID)) {
	for _, tid := range targets {
		p, ok := s.bodyOf(pid)
		if !ok {
			return
		}
		if proj.Piercing && proj.HasHit(tid) {
			continue
		}
		t, ok := s.bodyOf(tid)
		if !ok {
			continue
		}
		if circlesOverlap(p.x, p.y, p.radius, t.x, t.y, t.radius) {
			hit(pid, tid)
		}
	}
}

// hittableBosses 处于入场或交战阶段的 Boss 实体
func (s *CollisionSystem) hittableBosses() []ecs.EntityID {
	var ids []ecs.EntityID
	for _, slot := range s.world.State.Bosses {
		if s.bossHittable(slot.Entity) {
			ids = append(ids, slot.Entity)
		}
	}
	return ids
}

// bossHittable Boss 实体存活且所在槽位处于入场或交战阶段
func (s *CollisionSystem) bossHittable(id ecs.EntityID) bool {
	if !s.world.EM.IsAlive(id) {
		return false
	}
	boss, ok := ecs.GetComponent[*components.BossComponent](s.world.EM, id)
	if !ok {
		return false
	}
	phase := s.world.State.Slot(boss.Slot).Phase
	return phase == types.BossEntering || phase == types.BossEngaged
}

// hitBoss 快照在帧首生成,同一帧内更早的弹药可能已击破 Boss,每次结算前重新确认阶段
func (s *CollisionSystem) hitBoss(projectile, boss ecs.EntityID) {
	if !s.bossHittable(boss) {
		return
	}
	s.handler.OnProjectileBoss(projectile, boss)
}

// checkPlayer 各类实体 vs 玩家
// 玩家对不同对象使用不同的接触半径: 敌人和弹幕用 HitRadius,水雷和 Boss 身体用 BodyRadius
func (s *CollisionSystem) checkPlayer(player body) {
	em := s.world.EM
	cfg := s.world.Config.Player

	touch := func(ids []ecs.EntityID, playerRadius float64, hit func(other, player ecs.EntityID)) {
		for _, id := range ids {
			if s.world.State.GameOver {
				return
			}
			o, ok := s.bodyOf(id)
			if !ok {
				continue
			}
			if circlesOverlap(player.x, player.y, playerRadius, o.x, o.y, o.radius) {
				hit(id, player.id)
			}
		}
	}

	touch(ecs.GetEntitiesWith1[*components.MineComponent](em), cfg.BodyRadius, s.handler.OnMinePlayer)
	touch(ecs.GetEntitiesWith1[*components.CollectibleComponent](em), cfg.PickupRadius, s.handler.OnPickup)
	touch(ecs.GetEntitiesWith1[*components.PowerupComponent](em), cfg.PickupRadius, s.handler.OnPickup)
	touch(ecs.GetEntitiesWith1[*components.BossProjectileComponent](em), cfg.HitRadius, s.handler.OnBossProjectilePlayer)

	var fresh []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		if enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id); !enemy.HasHitPlayer {
			fresh = append(fresh, id)
		}
	}
	touch(fresh, cfg.HitRadius, s.handler.OnEnemyPlayer)

	var ready []ecs.EntityID
	for _, id := range s.hittableBosses() {
		if boss, ok := ecs.GetComponent[*components.BossComponent](em, id); ok && !boss.JustHit {
			ready = append(ready, id)
		}
	}
	touch(ready, cfg.BodyRadius, s.handler.OnBossPlayer)
}
