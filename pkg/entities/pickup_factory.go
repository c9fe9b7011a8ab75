package entities

import (
	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/types"
)

// NewCollectible 创建金币
func NewCollectible(em *ecs.EntityManager, cfg config.PickupConfig, x, y, bobDelta float64) ecs.EntityID {
	id := newDriftingPickup(em, cfg, x, y, bobDelta)
	ecs.AddComponent(em, id, &components.CollectibleComponent{Value: cfg.CollectibleValue})
	return id
}

// NewPowerup 创建道具
func NewPowerup(em *ecs.EntityManager, cfg config.PickupConfig, kind types.PowerupKind, x, y, bobDelta float64) ecs.EntityID {
	if !kind.Valid() {
		panic("entities: unknown powerup kind " + string(kind))
	}
	id := newDriftingPickup(em, cfg, x, y, bobDelta)
	ecs.AddComponent(em, id, &components.PowerupComponent{Kind: kind})
	return id
}

func newDriftingPickup(em *ecs.EntityManager, cfg config.PickupConfig, x, y, bobDelta float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: cfg.Radius})
	ecs.AddComponent(em, id, &components.MotionComponent{
		Model:         types.MotionBob,
		Speed:         cfg.DriftSpeed,
		BaseY:         y,
		BobDelta:      bobDelta,
		BobHalfPeriod: cfg.BobHalfPeriod,
	})
	return id
}
