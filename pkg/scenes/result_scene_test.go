package scenes

import (
	"testing"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/types"
)

func TestResultSceneCountUp(t *testing.T) {
	rs := &ResultScene{result: game.RunResult{Score: 1000}}

	if got := rs.displayedScore(); got != 0 {
		t.Errorf("initial displayed score = %d, want 0", got)
	}
	rs.elapsed = countUpDuration / 2
	mid := rs.displayedScore()
	if mid <= 0 || mid >= 1000 {
		t.Errorf("mid count-up score = %d, want within (0, 1000)", mid)
	}
	rs.elapsed = countUpDuration
	if got := rs.displayedScore(); got != 1000 {
		t.Errorf("final displayed score = %d, want 1000", got)
	}
}

func TestResultSceneRestartDelay(t *testing.T) {
	rs := &ResultScene{}
	if rs.canRestart() {
		t.Error("restart should be blocked right after the run ends")
	}
	rs.elapsed = restartDelay
	if !rs.canRestart() {
		t.Error("restart should be allowed after the delay")
	}
}

func TestBuffSummary(t *testing.T) {
	p := &components.PlayerComponent{BaseSpeed: 5, Speed: 8, Firepower: 3, ShieldActive: true}
	if got, want := buffSummary(p), "LANES 3  SPEED  SHIELD"; got != want {
		t.Errorf("buffSummary() = %q, want %q", got, want)
	}
	if got := buffSummary(&components.PlayerComponent{BaseSpeed: 5, Speed: 5, Firepower: 1}); got != "" {
		t.Errorf("buffSummary() with no buffs = %q, want empty", got)
	}
}

func TestTextStyleOptions(t *testing.T) {
	if o := textStyleOptions(types.TextWarning); o.scale <= textStyleOptions(types.TextPopup).scale {
		t.Error("warning text should be larger than score popups")
	}
}
