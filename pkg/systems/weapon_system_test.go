package systems

import (
	"testing"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/types"
)

func countProjectiles(em *ecs.EntityManager, kind components.ProjectileKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		p, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func TestFireCooldown(t *testing.T) {
	r := newTestRig(t)
	fire := game.InputState{Fire: true}

	r.weapons.Update(frame, fire)
	r.advance(frame)
	r.weapons.Update(frame, fire)
	if n := countProjectiles(r.em(), components.ProjectileBullet); n != 1 {
		t.Fatalf("bullets within cooldown = %d, want 1", n)
	}

	r.advance(r.cfg().Weapons.FireRate)
	r.weapons.Update(frame, fire)
	if n := countProjectiles(r.em(), components.ProjectileBullet); n != 2 {
		t.Errorf("bullets after cooldown = %d, want 2", n)
	}
}

func TestFireRequiresIntent(t *testing.T) {
	r := newTestRig(t)
	r.weapons.Update(frame, game.InputState{})
	if n := countProjectiles(r.em(), components.ProjectileBullet); n != 0 {
		t.Errorf("bullets without fire intent = %d", n)
	}

	// 拖拽视为开火
	r.weapons.Update(frame, game.InputState{PointerActive: true, PointerX: 300, PointerY: 300})
	if n := countProjectiles(r.em(), components.ProjectileBullet); n != 1 {
		t.Errorf("bullets while dragging = %d, want 1", n)
	}
}

func TestFireModes(t *testing.T) {
	tests := []struct {
		name      string
		powerup   types.PowerupKind
		bullets   int
		fireballs int
	}{
		{name: "single lane", bullets: 1},
		{name: "triple shot", powerup: types.PowerupFirepower, bullets: 3},
		{name: "fireball replaces lanes", powerup: types.PowerupFireball, fireballs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			if tt.powerup != "" {
				r.powerups.Apply(tt.powerup)
			}
			r.weapons.Update(frame, game.InputState{Fire: true})

			if n := countProjectiles(r.em(), components.ProjectileBullet); n != tt.bullets {
				t.Errorf("bullets = %d, want %d", n, tt.bullets)
			}
			if n := countProjectiles(r.em(), components.ProjectileFireball); n != tt.fireballs {
				t.Errorf("fireballs = %d, want %d", n, tt.fireballs)
			}
		})
	}
}

func TestFireballAndFirepowerExclusive(t *testing.T) {
	r := newTestRig(t)
	r.powerups.Apply(types.PowerupFirepower)
	r.powerups.Apply(types.PowerupFireball)

	r.weapons.Update(frame, game.InputState{Fire: true})
	if n := countProjectiles(r.em(), components.ProjectileBullet); n != 0 {
		t.Errorf("bullets = %d, want 0 while fireball active", n)
	}
	if n := countProjectiles(r.em(), components.ProjectileFireball); n != 1 {
		t.Errorf("fireballs = %d, want 1", n)
	}
}

func TestCompanionAutoFires(t *testing.T) {
	r := newTestRig(t)
	r.powerups.Apply(types.PowerupCompanion)
	interval := r.cfg().Companion.FireInterval

	// 不按开火键,僚机也按自己的间隔射击
	r.weapons.Update(interval, game.InputState{})
	r.weapons.Update(interval, game.InputState{})

	if n := countProjectiles(r.em(), components.ProjectileCompanion); n != 2 {
		t.Errorf("companion shots = %d, want 2", n)
	}
}
