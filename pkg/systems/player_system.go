package systems

import (
	"math"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/game"
)

// PlayerSystem 玩家移动与僚机跟随
//
// 每帧按优先级选择一种移动方式(先匹配先生效):
//  1. 虚拟摇杆,向量长度超过死区
//  2. 指针/触摸拖拽目标,以封顶速度靠近,进入吸附半径后停下
//  3. 八方向按键,斜向两个分量各乘 √2/2
//
// 结果位置夹在场地减去边距的范围内。
type PlayerSystem struct {
	world *World
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(world *World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

// Update 处理本帧输入
func (s *PlayerSystem) Update(dt float64, input game.InputState) {
	if s.world.State.GameOver {
		return
	}
	em := s.world.EM
	id := s.world.State.PlayerID
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	dx, dy := s.moveVector(input, pos, player.Speed*frameScale(dt))
	pos.X += dx
	pos.Y += dy

	field := s.world.Config.Field
	m := field.PlayerMargin
	pos.X = clamp(pos.X, m, field.Width-m)
	pos.Y = clamp(pos.Y, m, field.Height-m)

	s.followCompanion(player, pos, dt)
}

// moveVector 本帧位移,step 为本帧的最大移动距离
func (s *PlayerSystem) moveVector(input game.InputState, pos *components.PositionComponent, step float64) (float64, float64) {
	cfg := s.world.Config.Player

	// 手柄摇杆对角线可超过单位长度,限制在单位圆内
	jx, jy := input.JoystickX, input.JoystickY
	if mag := math.Hypot(jx, jy); mag > cfg.JoystickDeadzone {
		if mag > 1 {
			jx, jy = jx/mag, jy/mag
		}
		return jx * step, jy * step
	}

	if input.PointerActive {
		tx := input.PointerX - pos.X
		ty := input.PointerY - pos.Y
		dist := math.Hypot(tx, ty)
		if dist <= cfg.PointerSnapRadius {
			return 0, 0
		}
		move := math.Min(step, dist)
		return tx / dist * move, ty / dist * move
	}

	var vx, vy float64
	if input.Left {
		vx--
	}
	if input.Right {
		vx++
	}
	if input.Up {
		vy--
	}
	if input.Down {
		vy++
	}
	if vx != 0 && vy != 0 {
		vx *= math.Sqrt2 / 2
		vy *= math.Sqrt2 / 2
	}
	return vx * step, vy * step
}

// followCompanion 僚机以阻尼方式靠近玩家身后的偏移点
func (s *PlayerSystem) followCompanion(player *components.PlayerComponent, pos *components.PositionComponent, dt float64) {
	em := s.world.EM
	if !em.IsAlive(player.Companion) {
		return
	}
	comp, ok := ecs.GetComponent[*components.CompanionComponent](em, player.Companion)
	if !ok {
		return
	}
	cpos, _ := ecs.GetComponent[*components.PositionComponent](em, player.Companion)

	rate := math.Min(1, s.world.Config.Companion.FollowRate*frameScale(dt))
	cpos.X += (pos.X + comp.OffsetX - cpos.X) * rate
	cpos.Y += (pos.Y + comp.OffsetY - cpos.Y) * rate
}
