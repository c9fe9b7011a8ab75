package main

import "testing"

func TestKeyLatchHoldsUntilExpiry(t *testing.T) {
	var k keyLatch
	k.handleRune('w')

	if in := k.snapshot(); !in.Up {
		t.Fatal("up should be held right after the key event")
	}
	k.tick(holdDuration / 2)
	if in := k.snapshot(); !in.Up {
		t.Error("up should still be held within the hold window")
	}
	k.tick(holdDuration)
	if in := k.snapshot(); in.Up {
		t.Error("up should be released after the hold window")
	}
}

func TestKeyLatchRunes(t *testing.T) {
	tests := []struct {
		name  string
		r     rune
		check func(k *keyLatch) bool
		cmd   command
	}{
		{name: "w moves up", r: 'w', check: func(k *keyLatch) bool { return k.held(intentUp) }},
		{name: "d moves right", r: 'D', check: func(k *keyLatch) bool { return k.held(intentRight) }},
		{name: "space fires", r: ' ', check: func(k *keyLatch) bool { return k.held(intentFire) }},
		{name: "f toggles auto-fire", r: 'f', check: func(k *keyLatch) bool { return k.autoFire }},
		{name: "q quits", r: 'q', check: func(k *keyLatch) bool { return true }, cmd: cmdQuit},
		{name: "r restarts", r: 'r', check: func(k *keyLatch) bool { return true }, cmd: cmdRestart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k keyLatch
			if got := k.handleRune(tt.r); got != tt.cmd {
				t.Errorf("handleRune(%q) = %v, want %v", tt.r, got, tt.cmd)
			}
			if !tt.check(&k) {
				t.Errorf("handleRune(%q) did not set the expected state", tt.r)
			}
		})
	}
}

func TestKeyLatchPauseIsEdgeTriggered(t *testing.T) {
	var k keyLatch
	k.handleRune('p')
	if in := k.snapshot(); !in.TogglePause {
		t.Fatal("first snapshot should carry the pause toggle")
	}
	if in := k.snapshot(); in.TogglePause {
		t.Error("pause toggle should be consumed by the first snapshot")
	}
}

func TestAutoFire(t *testing.T) {
	var k keyLatch
	k.handleRune('f')
	k.tick(10)
	if in := k.snapshot(); !in.Fire {
		t.Error("auto-fire should keep firing without key presses")
	}
}
