package main

import (
	"math"
	"testing"

	"github.com/decker502/deepdive/pkg/game"
)

func TestViewportToCell(t *testing.T) {
	v := newViewport(80, 23, 800, 600) // 20 行场地

	tests := []struct {
		name     string
		x, y     float64
		col, row int
		inside   bool
	}{
		{name: "origin", x: 0, y: 0, col: 0, row: hudRows, inside: true},
		{name: "center", x: 400, y: 300, col: 40, row: hudRows + 10, inside: true},
		{name: "right of field", x: 850, y: 300, col: 85, row: hudRows + 10, inside: false},
		{name: "left of field", x: -10, y: 300, inside: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, inside := v.toCell(tt.x, tt.y)
			if inside != tt.inside {
				t.Fatalf("inside = %v, want %v", inside, tt.inside)
			}
			if tt.inside && (col != tt.col || row != tt.row) {
				t.Errorf("toCell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
			}
		})
	}
}

func TestViewportToFieldRoundTrip(t *testing.T) {
	v := newViewport(80, 23, 800, 600)
	x, y := v.toField(40, hudRows+10)
	if math.Abs(x-405) > 1e-9 || math.Abs(y-315) > 1e-9 {
		t.Errorf("toField = (%v, %v), want (405, 315)", x, y)
	}
	col, row, ok := v.toCell(x, y)
	if !ok || col != 40 || row != hudRows+10 {
		t.Errorf("round trip = (%d, %d, %v)", col, row, ok)
	}

	// HUD 行被夹到场地第一行
	_, y = v.toField(0, 0)
	if math.Abs(y-15) > 1e-9 {
		t.Errorf("toField on HUD row y = %v, want 15", y)
	}
}

func TestEnemyGlyph(t *testing.T) {
	if g := enemyGlyph("angler"); g != 'A' {
		t.Errorf("enemyGlyph(angler) = %q", g)
	}
	if g := enemyGlyph("fishbig"); g != 'f' {
		t.Errorf("enemyGlyph(fishbig) = %q, want first letter", g)
	}
	if g := enemyGlyph(""); g != 'e' {
		t.Errorf("enemyGlyph(\"\") = %q, want fallback", g)
	}
}

func TestToneGeneratorEnds(t *testing.T) {
	g := newToneGenerator(game.ToneSpec{StartFreq: 440, EndFreq: 220, Duration: 0.05, Noise: 0.5})
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 100; i++ {
		n, ok := g.Stream(buf)
		for _, s := range buf[:n] {
			if math.Abs(s[0]) > 1 || s[0] != s[1] {
				t.Fatalf("sample %v out of range or not mono", s)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != g.total {
		t.Errorf("streamed %d samples, want %d", total, g.total)
	}
}
