package systems

import (
	"log"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/entities"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/types"
)

// PowerupSystem 道具效果与到期
//
// 限时增益重复拾取时刷新而不叠加: 每次拾取分配新代次并排定新的到期事件,
// 到期事件只在代次仍是最新时才撤销效果。
type PowerupSystem struct {
	world *World
}

// NewPowerupSystem 创建道具系统
func NewPowerupSystem(world *World) *PowerupSystem {
	return &PowerupSystem{world: world}
}

// Apply 应用道具效果并显示横幅
// 未知种类属于编程错误,直接 panic
func (s *PowerupSystem) Apply(kind types.PowerupKind) {
	if !kind.Valid() {
		panic("systems: unknown powerup kind " + string(kind))
	}
	em := s.world.EM
	id := s.world.State.PlayerID
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		log.Printf("[PowerupSystem] Warning: player %d missing, %s ignored", id, kind)
		return
	}
	cfg := s.world.Config.Powerup(kind)

	switch kind {
	case types.PowerupFirepower:
		player.Firepower = int(cfg.Value)
	case types.PowerupSpeed:
		player.Speed = cfg.Value
	case types.PowerupShield:
		player.ShieldActive = true
	case types.PowerupHealth:
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
			health.Heal(int(cfg.Value))
		}
	case types.PowerupFireball:
		player.FireballActive = true
	case types.PowerupCompanion:
		if !em.IsAlive(player.Companion) {
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			player.Companion = entities.NewCompanion(em, id, s.world.Config.Companion, pos.X, pos.Y)
		}
	}

	if kind.Timed() {
		gen := player.NextBuffGeneration(string(kind))
		s.world.After(cfg.Duration, game.EventBuffExpire, game.EventPayload{Buff: kind, Generation: gen})
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok && cfg.Banner != "" {
		s.world.Presenter.ShowText(pos.X, pos.Y-config.PopupRiseDistance, cfg.Banner, types.TextBanner)
	}
}

// HandleExpire 增益到期
// 已被更新的拾取刷新过的旧事件直接忽略
func (s *PowerupSystem) HandleExpire(ev game.ScheduledEvent) {
	em := s.world.EM
	id := s.world.State.PlayerID
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		return
	}
	kind := ev.Payload.Buff
	if !player.IsCurrentBuff(string(kind), ev.Payload.Generation) {
		return
	}

	switch kind {
	case types.PowerupFirepower:
		player.Firepower = 1
	case types.PowerupSpeed:
		player.Speed = player.BaseSpeed
	case types.PowerupShield:
		player.ShieldActive = false
	case types.PowerupFireball:
		player.FireballActive = false
	case types.PowerupCompanion:
		em.DestroyEntity(player.Companion)
		player.Companion = 0
	}
}
