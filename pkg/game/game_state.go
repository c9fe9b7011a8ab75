package game

import (
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/types"
)

// BossSlotState 一个 Boss 槽位的遭遇状态
type BossSlotState struct {
	Phase  types.BossPhase
	Entity ecs.EntityID // 仅在 Entering..Engaged 期间非 0
	Name   string       // 配置中的 Boss 键
}

// GameState 一局游戏的全部可变状态
//
// 由 session.Session 持有并在单个更新步内修改,没有全局实例。
type GameState struct {
	Score int
	Kills int // 本关累计击杀,Boss 击破后清零
	Level int // 当前关卡,从 1 开始

	// GameSpeed 全局速度倍率(难度)
	GameSpeed float64

	Paused   bool
	GameOver bool // 玩家生命归零
	Victory  bool
	Ended    bool // 已调用 SceneTransition,之后的一切更新和事件都被忽略

	MineFieldTriggered bool

	Combo  ComboState
	Bosses [types.BossSlotCount]BossSlotState

	PlayerID ecs.EntityID

	// ScrollX 背景累计滚动距离,仅供表现层做视差
	ScrollX float64

	// Elapsed 未暂停的游戏时间(秒)
	Elapsed float64
}

// NewGameState 按配置创建初始状态
func NewGameState(cfg *config.GameplayConfig) *GameState {
	gs := &GameState{
		Level:     1,
		GameSpeed: cfg.Difficulty.Initial,
		Combo:     NewComboState(cfg.Combo.Window, cfg.Combo.MaxMultiplier),
	}
	for i := range gs.Bosses {
		if i < len(cfg.Levels) {
			gs.Bosses[i].Name = cfg.Levels[i].Boss
		} else {
			// 没有对应关卡的槽位直接视为已结束
			gs.Bosses[i].Phase = types.BossConcluded
		}
	}
	return gs
}

// AnyBossActive 是否有 Boss 处于 Warning..Defeating
func (gs *GameState) AnyBossActive() bool {
	for _, slot := range gs.Bosses {
		if slot.Phase.Active() {
			return true
		}
	}
	return false
}

// CurrentBossSlot 当前关卡对应的 Boss 槽位
func (gs *GameState) CurrentBossSlot() types.BossSlot {
	slot := types.BossSlot(gs.Level - 1)
	if slot < 0 {
		slot = types.BossPrimary
	}
	if slot >= types.BossSlotCount {
		slot = types.BossSlotCount - 1
	}
	return slot
}

// Slot 获取槽位状态
func (gs *GameState) Slot(slot types.BossSlot) *BossSlotState {
	return &gs.Bosses[slot]
}

// AddScore 加分,负值被忽略
func (gs *GameState) AddScore(points int) {
	if points > 0 {
		gs.Score += points
	}
}

// Running 本局是否仍在进行(未暂停、未结束)
func (gs *GameState) Running() bool {
	return !gs.Paused && !gs.Ended
}
