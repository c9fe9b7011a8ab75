package systems

import (
	"math/rand"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/game"
)

// World 所有玩法系统共享的一局游戏上下文
//
// 由 session.Session 创建并持有;系统只在单个更新步内读写它。
type World struct {
	EM        *ecs.EntityManager
	Config    *config.GameplayConfig
	State     *game.GameState
	Clock     *game.GameClock
	Scheduler *game.Scheduler
	Presenter game.Presenter
	Rand      *rand.Rand

	// GodMode 调试无敌,受击只震屏不扣血
	GodMode bool
}

// NewWorld 创建共享上下文
// presenter 为 nil 时使用 NopPresenter
func NewWorld(cfg *config.GameplayConfig, presenter game.Presenter, seed int64) *World {
	if presenter == nil {
		presenter = game.NopPresenter{}
	}
	return &World{
		EM:        ecs.NewEntityManager(),
		Config:    cfg,
		State:     game.NewGameState(cfg),
		Clock:     &game.GameClock{},
		Scheduler: game.NewScheduler(),
		Presenter: presenter,
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

// Now 当前游戏时间
func (w *World) Now() float64 {
	return w.Clock.Now()
}

// After 在 delay 秒后登记事件
func (w *World) After(delay float64, tag game.EventTag, payload game.EventPayload) {
	w.Scheduler.Schedule(w.Clock.Now()+delay, tag, payload)
}

// randRange 返回 [lo, hi) 内的均匀随机数
func (w *World) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + w.Rand.Float64()*(hi-lo)
}

// randIntRange 返回 [lo, hi] 内的均匀随机整数
func (w *World) randIntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.Rand.Intn(hi-lo+1)
}

// playerPosition 玩家位置,玩家不存在时返回 nil
func (w *World) playerPosition() *components.PositionComponent {
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.EM, w.State.PlayerID)
	if !ok {
		return nil
	}
	return pos
}

// frameScale 把秒换算成 60fps 下的帧数,所有"每帧"常量乘以它
func frameScale(dt float64) float64 {
	return dt * 60
}
