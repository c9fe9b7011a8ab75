package systems

import (
	"testing"

	"github.com/decker502/deepdive/pkg/config"
)

func TestNextSpeed(t *testing.T) {
	cfg := config.DifficultyConfig{Initial: 1, Interval: 15, Step: 0.1, Max: 2.5}

	tests := []struct {
		name    string
		current float64
		want    float64
	}{
		{name: "ramp", current: 1, want: 1.1},
		{name: "near cap", current: 2.45, want: 2.5},
		{name: "at cap", current: 2.5, want: 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextSpeed(cfg, tt.current); !approx(got, tt.want) {
				t.Errorf("NextSpeed(%v) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}

func TestDifficultyRampsOnClock(t *testing.T) {
	r := newTestRig(t)
	r.difficulty.Start()
	cfg := r.cfg().Difficulty

	r.advance(cfg.Interval)
	if !approx(r.world.State.GameSpeed, cfg.Initial+cfg.Step) {
		t.Errorf("GameSpeed = %v, want %v", r.world.State.GameSpeed, cfg.Initial+cfg.Step)
	}

	// 时钟暂停时不推进
	r.world.Clock.Pause()
	r.advance(cfg.Interval * 10)
	if !approx(r.world.State.GameSpeed, cfg.Initial+cfg.Step) {
		t.Errorf("GameSpeed changed while paused: %v", r.world.State.GameSpeed)
	}
	r.world.Clock.Resume()

	for i := 0; i < 100; i++ {
		r.advance(cfg.Interval)
	}
	if r.world.State.GameSpeed != cfg.Max {
		t.Errorf("GameSpeed = %v, want cap %v", r.world.State.GameSpeed, cfg.Max)
	}
}

func TestScrollFollowsGameSpeed(t *testing.T) {
	r := newTestRig(t)
	r.world.State.GameSpeed = 2
	r.difficulty.Update(1)

	want := r.cfg().Field.ParallaxScrollPerSecond * 2
	if !approx(r.world.State.ScrollX, want) {
		t.Errorf("ScrollX = %v, want %v", r.world.State.ScrollX, want)
	}
}
