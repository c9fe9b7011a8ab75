package systems

import (
	"fmt"
	"log"

	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/types"
)

// LevelSystem 关卡推进
//
// 职责:
//   - 击杀后检查水雷阵和 Boss 的触发条件
//   - Boss 演出结束后切换关卡或以胜利结束本局
type LevelSystem struct {
	world *World
	boss  *BossSystem
	spawn *SpawnSystem
}

// NewLevelSystem 创建关卡系统
func NewLevelSystem(world *World, boss *BossSystem, spawn *SpawnSystem) *LevelSystem {
	return &LevelSystem{world: world, boss: boss, spawn: spawn}
}

// CurrentLevel 当前关卡配置
func (s *LevelSystem) CurrentLevel() config.LevelConfig {
	return s.world.Config.Level(s.world.State.Level)
}

// OnKill 每次击杀敌人后调用
// Boss 触发是边沿触发的: 同一更新步内即从 Dormant 进入 Warning
func (s *LevelSystem) OnKill() {
	state := s.world.State
	if state.GameOver || state.AnyBossActive() {
		return
	}
	level := s.CurrentLevel()

	if !state.MineFieldTriggered && state.Kills >= s.world.Config.MineField.KillThreshold {
		state.MineFieldTriggered = true
		s.spawn.StartMineField()
	}

	if state.Kills < level.BossKillCount {
		return
	}
	slot := state.CurrentBossSlot()
	if state.Slot(slot).Phase != types.BossDormant {
		return
	}
	if !s.predecessorsConcluded(slot) {
		return
	}
	s.boss.BeginWarning(slot)
}

// predecessorsConcluded 之前的 Boss 槽位是否都已结束
func (s *LevelSystem) predecessorsConcluded(slot types.BossSlot) bool {
	for i := types.BossPrimary; i < slot; i++ {
		if s.world.State.Slot(i).Phase != types.BossConcluded {
			return false
		}
	}
	return true
}

// OnBossConcluded Boss 演出结束
// 最后一个 Boss 以胜利结束本局,其余切换到下一关
func (s *LevelSystem) OnBossConcluded(slot types.BossSlot) {
	state := s.world.State
	if int(slot)+1 >= len(s.world.Config.Levels) {
		state.Victory = true
		outro := s.world.Config.Boss(state.Slot(slot).Name).OutroDelay
		s.world.After(outro, game.EventEndRun, game.EventPayload{Victory: true})
		log.Printf("[LevelSystem] Final boss concluded, run ends in %.1fs", outro)
		return
	}
	s.AdvanceLevel()
}

// AdvanceLevel 进入下一关: 击杀数清零、水雷阵重新待命
func (s *LevelSystem) AdvanceLevel() {
	state := s.world.State
	if state.Level >= len(s.world.Config.Levels) {
		return
	}
	state.Level++
	state.Kills = 0
	state.MineFieldTriggered = false

	level := s.CurrentLevel()
	field := s.world.Config.Field
	s.world.Presenter.ShowText(field.Width/2, config.BannerY,
		fmt.Sprintf("LEVEL %d\n%s", state.Level, level.Name), types.TextBanner)
	log.Printf("[LevelSystem] Level %d: %s", state.Level, level.Name)
}
