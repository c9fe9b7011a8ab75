package entities

import (
	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/types"
)

// EnemySpawn 单个敌人的生成参数
// 随机量(摆幅、折线初始方向)由生成系统抽取后传入,工厂本身是确定性的
type EnemySpawn struct {
	Archetype string
	Config    config.EnemyArchetypeConfig
	X, Y      float64

	// BobDelta 摆动目标相对 BaseY 的偏移
	BobDelta float64

	// ZigzagDir 折线初始方向(+1 向下,-1 向上)
	ZigzagDir float64

	// FormationIndex 队形中的序号
	FormationIndex int
}

// NewEnemy 创建普通敌人
func NewEnemy(em *ecs.EntityManager, spawn EnemySpawn) ecs.EntityID {
	arch := spawn.Config
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: spawn.X, Y: spawn.Y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: arch.Radius})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: arch.Health, MaxHealth: arch.Health})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Archetype: spawn.Archetype,
		Points:    arch.Points,
	})

	motion := &components.MotionComponent{
		Model:          arch.Motion,
		Speed:          arch.Speed,
		BaseY:          spawn.Y,
		FormationIndex: spawn.FormationIndex,
	}
	switch arch.Motion {
	case types.MotionBob:
		motion.BobDelta = spawn.BobDelta
		motion.BobHalfPeriod = arch.BobHalfPeriod
	case types.MotionFormation:
		motion.BobDelta = spawn.BobDelta
		motion.BobHalfPeriod = arch.BobHalfPeriod + float64(spawn.FormationIndex)*arch.BobPeriodStep
	case types.MotionZigzag:
		motion.ZigzagDir = spawn.ZigzagDir
		if motion.ZigzagDir == 0 {
			motion.ZigzagDir = 1
		}
		motion.ZigzagInterval = arch.ZigzagInterval
		motion.ZigzagStep = arch.ZigzagStep
	case types.MotionWave:
		motion.WavePhaseStep = arch.WavePhaseStep
		motion.WaveAmplitude = arch.WaveAmplitude
	}
	ecs.AddComponent(em, id, motion)
	return id
}
