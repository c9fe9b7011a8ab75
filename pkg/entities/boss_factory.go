package entities

import (
	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/types"
)

// NewBoss 创建 Boss 实体
// Boss 生成在场地右侧之外,入场动画把它带到 width - EntryInset
func NewBoss(em *ecs.EntityManager, slot types.BossSlot, name string, cfg config.BossConfig, field config.FieldConfig) ecs.EntityID {
	id := em.CreateEntity()
	fromX := field.Width + cfg.EntryOffsetX
	y := field.Height / 2

	ecs.AddComponent(em, id, &components.PositionComponent{X: fromX, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: cfg.Radius})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: cfg.Health, MaxHealth: cfg.Health})
	ecs.AddComponent(em, id, &components.BossComponent{
		Slot:          slot,
		Name:          name,
		AttackTimer:   cfg.AttackInterval,
		EntryFromX:    fromX,
		EntryToX:      field.Width - cfg.EntryInset,
		EntryDuration: cfg.EntryDuration,
		TrackY:        y,
	})
	return id
}
