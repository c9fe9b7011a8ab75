package entities

import (
	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
)

// NewPlayer 创建玩家,位于 (startX, 场地中线)
func NewPlayer(em *ecs.EntityManager, cfg *config.GameplayConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: cfg.Player.StartX,
		Y: cfg.Field.Height / 2,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: cfg.Player.HitRadius})
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth: cfg.Player.MaxHealth,
		MaxHealth:     cfg.Player.MaxHealth,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		BaseSpeed: cfg.Player.Speed,
		Speed:     cfg.Player.Speed,
		Firepower: 1,
	})
	return id
}

// NewCompanion 创建僚机,出现在玩家的跟随偏移处
func NewCompanion(em *ecs.EntityManager, owner ecs.EntityID, cfg config.CompanionConfig, ownerX, ownerY float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: ownerX + cfg.OffsetX, Y: ownerY + cfg.OffsetY})
	ecs.AddComponent(em, id, &components.CompanionComponent{
		Owner:     owner,
		OffsetX:   cfg.OffsetX,
		OffsetY:   cfg.OffsetY,
		FireTimer: cfg.FireInterval,
	})
	return id
}
