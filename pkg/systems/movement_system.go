package systems

import (
	"math"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/types"
	"github.com/decker502/deepdive/pkg/utils"
)

// MovementSystem 推进所有漂移实体和弹药
//
// 两类运动:
//   - VelocityComponent: 弹药,按固定速度飞行,不受难度倍率影响
//   - MotionComponent: 敌人/水雷/拾取物,向左漂移(乘以难度倍率)并按运动模型计算纵坐标
type MovementSystem struct {
	world *World
}

// NewMovementSystem 创建运动系统
func NewMovementSystem(world *World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update 推进一帧
func (s *MovementSystem) Update(dt float64) {
	em := s.world.EM
	f := frameScale(dt)

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		pos.X += vel.VX * f
		pos.Y += vel.VY * f
	}

	speed := s.world.State.GameSpeed
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.MotionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		motion, _ := ecs.GetComponent[*components.MotionComponent](em, id)

		pos.X -= motion.Speed * speed * f
		motion.Elapsed += dt
		pos.Y = s.advanceY(motion, pos.Y, dt, f)

		if motion.RotationPeriod > 0 {
			if mine, ok := ecs.GetComponent[*components.MineComponent](em, id); ok {
				mine.Rotation = math.Mod(2*math.Pi*motion.Elapsed/motion.RotationPeriod, 2*math.Pi)
			}
		}
	}
}

// advanceY 按运动模型计算新的纵坐标
func (s *MovementSystem) advanceY(m *components.MotionComponent, y, dt, f float64) float64 {
	switch m.Model {
	case types.MotionStraight:
		return y
	case types.MotionBob, types.MotionFormation:
		return m.BaseY + bobOffset(m.BobDelta, m.BobHalfPeriod, m.Elapsed)
	case types.MotionZigzag:
		m.ZigzagTimer += dt
		for m.ZigzagInterval > 0 && m.ZigzagTimer >= m.ZigzagInterval {
			m.ZigzagTimer -= m.ZigzagInterval
			m.ZigzagDir = -m.ZigzagDir
		}
		return y + m.ZigzagDir*m.ZigzagStep*f
	case types.MotionWave:
		m.WavePhase += m.WavePhaseStep * f
		return m.BaseY + m.WaveAmplitude*math.Sin(m.WavePhase)
	}
	panic("systems: unknown motion model " + string(m.Model))
}

// bobOffset 正弦缓动的往返摆动: 0 → delta → 0,半周期为 halfPeriod
func bobOffset(delta, halfPeriod, elapsed float64) float64 {
	if delta == 0 {
		return 0
	}
	return delta * utils.SineYoyo(elapsed, halfPeriod)
}
