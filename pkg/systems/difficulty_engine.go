package systems

import (
	"log"
	"math"

	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/game"
)

// DifficultyEngine 难度引擎
// 按固定间隔提高全局速度倍率直到上限,并推进背景视差滚动
type DifficultyEngine struct {
	world *World
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(world *World) *DifficultyEngine {
	return &DifficultyEngine{world: world}
}

// Start 排定第一次难度提升
func (d *DifficultyEngine) Start() {
	d.world.After(d.world.Config.Difficulty.Interval, game.EventDifficultyRamp, game.EventPayload{})
}

// NextSpeed 计算下一档速度倍率
// 公式: min(Max, current + Step)
// 参数:
//
//	current - 当前倍率
//
// 返回:
//
//	提升后的倍率(不超过上限)
func NextSpeed(cfg config.DifficultyConfig, current float64) float64 {
	return math.Min(cfg.Max, current+cfg.Step)
}

// HandleRamp 处理一次难度提升并排定下一次
func (d *DifficultyEngine) HandleRamp(ev game.ScheduledEvent) {
	cfg := d.world.Config.Difficulty
	state := d.world.State
	state.GameSpeed = NextSpeed(cfg, state.GameSpeed)
	d.world.Scheduler.Schedule(ev.FireAt+cfg.Interval, game.EventDifficultyRamp, game.EventPayload{})
	log.Printf("[DifficultyEngine] Game speed %.2f", state.GameSpeed)
}

// Update 推进背景滚动(随难度加快)
func (d *DifficultyEngine) Update(dt float64) {
	state := d.world.State
	state.ScrollX += d.world.Config.Field.ParallaxScrollPerSecond * state.GameSpeed * dt
}
