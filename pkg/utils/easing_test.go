package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{t: 0, want: 0},
		{t: 0.5, want: 0.875},
		{t: 1, want: 1},
		{t: -1, want: 0},
		{t: 2, want: 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.t); math.Abs(got-tt.want) > epsilon {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestEaseOutCubicMonotonic(t *testing.T) {
	prev := EaseOutCubic(0)
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseOutCubic decreased at step %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestEaseInOutSine(t *testing.T) {
	if got := EaseInOutSine(0.5); math.Abs(got-0.5) > epsilon {
		t.Errorf("EaseInOutSine(0.5) = %v, want 0.5", got)
	}
	if got := EaseInOutSine(1); math.Abs(got-1) > epsilon {
		t.Errorf("EaseInOutSine(1) = %v, want 1", got)
	}
}

func TestSineYoyo(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		want    float64
	}{
		{name: "start", elapsed: 0, want: 0},
		{name: "quarter", elapsed: 0.5, want: 0.5},
		{name: "peak", elapsed: 1, want: 1},
		{name: "back", elapsed: 2, want: 0},
		{name: "second peak", elapsed: 3, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SineYoyo(tt.elapsed, 1); math.Abs(got-tt.want) > epsilon {
				t.Errorf("SineYoyo(%v, 1) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
	if got := SineYoyo(1, 0); got != 0 {
		t.Errorf("SineYoyo with zero period = %v, want 0", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, want 12.5", got)
	}
}
