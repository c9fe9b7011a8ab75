package entities

import (
	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/types"
)

// NewMine 创建水雷
// bobDelta 为摆动偏移,水雷默认向下摆动 BobAmplitude
func NewMine(em *ecs.EntityManager, cfg config.MineConfig, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: cfg.Radius})
	ecs.AddComponent(em, id, &components.MineComponent{Points: cfg.Points})
	ecs.AddComponent(em, id, &components.MotionComponent{
		Model:          types.MotionBob,
		Speed:          cfg.Speed,
		BaseY:          y,
		BobDelta:       cfg.BobAmplitude,
		BobHalfPeriod:  cfg.BobHalfPeriod,
		RotationPeriod: cfg.RotationPeriod,
	})
	return id
}
