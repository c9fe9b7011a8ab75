package game

import (
	"testing"

	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/types"
)

func TestNewGameState(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	gs := NewGameState(cfg)

	if gs.Level != 1 || gs.GameSpeed != 1 || gs.Combo.Multiplier != 1 {
		t.Errorf("unexpected initial state: level=%d speed=%f multiplier=%d", gs.Level, gs.GameSpeed, gs.Combo.Multiplier)
	}
	if gs.Bosses[types.BossPrimary].Name != config.BossMegaShark || gs.Bosses[types.BossSecondary].Name != config.BossKraken {
		t.Errorf("boss slots not bound to levels: %+v", gs.Bosses)
	}
	if gs.AnyBossActive() {
		t.Error("no boss should be active at start")
	}
}

func TestGameStateSingleLevelConcludesSpareSlot(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	cfg.Levels = cfg.Levels[:1]
	gs := NewGameState(cfg)
	if gs.Bosses[types.BossSecondary].Phase != types.BossConcluded {
		t.Errorf("slot without a level should be concluded, got %s", gs.Bosses[types.BossSecondary].Phase)
	}
}

func TestAnyBossActive(t *testing.T) {
	gs := NewGameState(config.DefaultGameplayConfig())
	for _, phase := range []types.BossPhase{types.BossWarning, types.BossEntering, types.BossEngaged, types.BossDefeating} {
		gs.Bosses[types.BossPrimary].Phase = phase
		if !gs.AnyBossActive() {
			t.Errorf("phase %s should count as active", phase)
		}
	}
	gs.Bosses[types.BossPrimary].Phase = types.BossConcluded
	if gs.AnyBossActive() {
		t.Error("concluded boss should not count as active")
	}
}

func TestCurrentBossSlotClamps(t *testing.T) {
	gs := NewGameState(config.DefaultGameplayConfig())
	gs.Level = 2
	if gs.CurrentBossSlot() != types.BossSecondary {
		t.Errorf("level 2 should map to secondary slot")
	}
	gs.Level = 5
	if gs.CurrentBossSlot() != types.BossSecondary {
		t.Errorf("level beyond range should clamp to last slot")
	}
}
