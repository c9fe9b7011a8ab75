package systems

import (
	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/ecs"
)

// FlashEffectSystem 闪烁效果系统
// 管理受击闪烁的生命周期,纯表现用途
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪烁效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{
		entityManager: em,
	}
}

// Update 更新所有闪烁效果
// 参数：
//   - dt: 时间增量（秒）
func (s *FlashEffectSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager)

	for _, entity := range entities {
		flashComp, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, entity)
		if !ok || !flashComp.IsActive {
			continue
		}

		flashComp.Elapsed += dt

		// 闪烁结束，移除组件
		if flashComp.Elapsed >= flashComp.Duration {
			ecs.RemoveComponent[*components.FlashEffectComponent](s.entityManager, entity)
		}
	}
}

// StartFlash 给实体挂上(或重新开始)一次闪烁
func StartFlash(em *ecs.EntityManager, id ecs.EntityID, duration, alpha float64) {
	if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](em, id); ok {
		flash.Duration = duration
		flash.Elapsed = 0
		flash.Alpha = alpha
		flash.IsActive = true
		return
	}
	ecs.AddComponent(em, id, &components.FlashEffectComponent{
		Duration: duration,
		Alpha:    alpha,
		IsActive: true,
	})
}
