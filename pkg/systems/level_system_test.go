package systems

import (
	"strings"
	"testing"

	"github.com/decker502/deepdive/pkg/types"
)

func TestAdvanceLevel(t *testing.T) {
	r := newTestRig(t)
	state := r.world.State
	state.Kills = 30
	state.MineFieldTriggered = true

	r.level.AdvanceLevel()

	if state.Level != 2 {
		t.Errorf("Level = %d, want 2", state.Level)
	}
	if state.Kills != 0 || state.MineFieldTriggered {
		t.Errorf("kills=%d mineField=%v, want reset", state.Kills, state.MineFieldTriggered)
	}
	if len(r.presenter.texts) != 1 || !strings.Contains(r.presenter.texts[0], r.cfg().Level(2).Name) {
		t.Errorf("level banner = %v", r.presenter.texts)
	}

	// 已是最后一关时不再前进
	r.level.AdvanceLevel()
	if state.Level != 2 {
		t.Errorf("Level = %d, want to stay at 2", state.Level)
	}
}

// TestSecondLevelBossTrigger 第一个 Boss 结束后,第二关达到阈值触发第二个 Boss
func TestSecondLevelBossTrigger(t *testing.T) {
	r := newTestRig(t)
	state := r.world.State
	state.Slot(types.BossPrimary).Phase = types.BossConcluded
	r.level.AdvanceLevel()

	state.MineFieldTriggered = true
	state.Kills = r.cfg().Level(2).BossKillCount
	r.level.OnKill()

	if got := state.Slot(types.BossSecondary).Phase; got != types.BossWarning {
		t.Errorf("secondary phase = %s, want Warning", got)
	}
	if got := state.Slot(types.BossPrimary).Phase; got != types.BossConcluded {
		t.Errorf("primary phase = %s, want Concluded", got)
	}
}

func TestMineFieldRearmedPerLevel(t *testing.T) {
	r := newTestRig(t)
	state := r.world.State
	state.Kills = r.cfg().MineField.KillThreshold
	r.level.OnKill()
	if !state.MineFieldTriggered {
		t.Fatal("mine field should trigger at threshold")
	}

	r.level.AdvanceLevel()
	if state.MineFieldTriggered {
		t.Error("mine field should be re-armed on the next level")
	}
}
