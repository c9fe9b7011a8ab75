package systems

import (
	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/entities"
	"github.com/decker502/deepdive/pkg/game"
)

// WeaponSystem 玩家开火和僚机自动射击
//
// 按住开火(或拖拽)时每个冷却周期最多开火一次。
// 火球模式与多路弹道互斥: 火球增益生效时只发射一枚穿透火球。
type WeaponSystem struct {
	world *World
}

// NewWeaponSystem 创建武器系统
func NewWeaponSystem(world *World) *WeaponSystem {
	return &WeaponSystem{world: world}
}

// Update 处理开火意图并推进僚机射击计时
func (s *WeaponSystem) Update(dt float64, input game.InputState) {
	if s.world.State.GameOver {
		return
	}
	em := s.world.EM
	id := s.world.State.PlayerID
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		return
	}

	if input.WantsFire() {
		s.tryFire(id, player)
	}
	s.updateCompanion(player, dt)
}

// tryFire 冷却结束时开火,返回是否开火
func (s *WeaponSystem) tryFire(id ecs.EntityID, player *components.PlayerComponent) bool {
	now := s.world.Now()
	weapons := s.world.Config.Weapons
	if player.HasFired && now-player.LastFired < weapons.FireRate {
		return false
	}
	player.LastFired = now
	player.HasFired = true

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EM, id)
	if !ok {
		return false
	}
	x := pos.X + weapons.MuzzleOffsetX

	if player.FireballActive {
		entities.NewFireball(s.world.EM, weapons, x, pos.Y)
		return true
	}
	for _, offset := range s.world.Config.LaneOffsets(player.Firepower) {
		entities.NewBullet(s.world.EM, weapons, x, pos.Y+offset)
	}
	return true
}

func (s *WeaponSystem) updateCompanion(player *components.PlayerComponent, dt float64) {
	em := s.world.EM
	if !em.IsAlive(player.Companion) {
		return
	}
	comp, ok := ecs.GetComponent[*components.CompanionComponent](em, player.Companion)
	if !ok {
		return
	}
	cfg := s.world.Config.Companion

	comp.FireTimer -= dt
	if comp.FireTimer > 0 {
		return
	}
	comp.FireTimer += cfg.FireInterval
	if comp.FireTimer <= 0 {
		comp.FireTimer = cfg.FireInterval
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, player.Companion)
	entities.NewCompanionShot(em, cfg, pos.X, pos.Y)
}
