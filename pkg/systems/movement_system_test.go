package systems

import (
	"math"
	"testing"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/entities"
)

const frame = 1.0 / 60

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStraightDriftScalesWithGameSpeed(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
	}{
		{name: "initial", speed: 1},
		{name: "ramped", speed: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t)
			r.world.State.GameSpeed = tt.speed
			id := r.spawnEnemy("swordfish", 500, 300)

			r.movement.Update(frame)

			pos := r.position(t, id)
			want := 500 - r.cfg().Archetype("swordfish").Speed*tt.speed
			if !approx(pos.X, want) {
				t.Errorf("x = %v, want %v", pos.X, want)
			}
			if pos.Y != 300 {
				t.Errorf("straight drift changed y to %v", pos.Y)
			}
		})
	}
}

func TestProjectilesIgnoreGameSpeed(t *testing.T) {
	r := newTestRig(t)
	r.world.State.GameSpeed = 2
	id := entities.NewBullet(r.em(), r.cfg().Weapons, 100, 300)

	r.movement.Update(frame)

	if got, want := r.position(t, id).X, 100+r.cfg().Weapons.BulletSpeed; !approx(got, want) {
		t.Errorf("bullet x = %v, want %v", got, want)
	}
}

func TestBobOffset(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		want    float64
	}{
		{name: "start", elapsed: 0, want: 0},
		{name: "quarter", elapsed: 0.5, want: 10},
		{name: "peak", elapsed: 1, want: 20},
		{name: "back", elapsed: 2, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bobOffset(20, 1, tt.elapsed); !approx(got, tt.want) {
				t.Errorf("bobOffset(20, 1, %v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
	if got := bobOffset(20, 0, 1); got != 0 {
		t.Errorf("zero half period should not bob, got %v", got)
	}
}

func TestBobEnemyStaysAroundBase(t *testing.T) {
	r := newTestRig(t)
	arch := r.cfg().Archetype("jellyfish")
	id := entities.NewEnemy(r.em(), entities.EnemySpawn{
		Archetype: "jellyfish",
		Config:    arch,
		X:         600,
		Y:         300,
		BobDelta:  40,
	})

	steps := int(arch.BobHalfPeriod / frame)
	for i := 0; i < steps; i++ {
		r.movement.Update(frame)
	}
	if y := r.position(t, id).Y; math.Abs(y-340) > 0.5 {
		t.Errorf("y at half period = %v, want ~340", y)
	}
}

func TestZigzagFlipsDirection(t *testing.T) {
	r := newTestRig(t)
	arch := r.cfg().Archetype("squid")
	id := entities.NewEnemy(r.em(), entities.EnemySpawn{
		Archetype: "squid",
		Config:    arch,
		X:         600,
		Y:         300,
		ZigzagDir: 1,
	})
	motion, _ := ecs.GetComponent[*components.MotionComponent](r.em(), id)

	r.movement.Update(frame)
	if y := r.position(t, id).Y; !approx(y, 300+arch.ZigzagStep) {
		t.Fatalf("first step y = %v, want %v", y, 300+arch.ZigzagStep)
	}

	r.movement.Update(arch.ZigzagInterval)
	if motion.ZigzagDir != -1 {
		t.Errorf("direction after interval = %v, want -1", motion.ZigzagDir)
	}
}

func TestWaveFollowsSine(t *testing.T) {
	r := newTestRig(t)
	arch := r.cfg().Archetype("sawshark")
	id := r.spawnEnemy("sawshark", 600, 300)

	r.movement.Update(frame)

	want := 300 + arch.WaveAmplitude*math.Sin(arch.WavePhaseStep)
	if y := r.position(t, id).Y; !approx(y, want) {
		t.Errorf("y = %v, want %v", y, want)
	}
}

func TestFormationPeriodsStaggered(t *testing.T) {
	r := newTestRig(t)
	ids := r.spawn.SpawnArchetype("angler")
	arch := r.cfg().Archetype("angler")
	if len(ids) != len(arch.Offsets) {
		t.Fatalf("formation size = %d, want %d", len(ids), len(arch.Offsets))
	}
	for i, id := range ids {
		m, _ := ecs.GetComponent[*components.MotionComponent](r.em(), id)
		want := arch.BobHalfPeriod + float64(i)*arch.BobPeriodStep
		if !approx(m.BobHalfPeriod, want) {
			t.Errorf("member %d half period = %v, want %v", i, m.BobHalfPeriod, want)
		}
	}
}

func TestMineRotates(t *testing.T) {
	r := newTestRig(t)
	id := entities.NewMine(r.em(), r.cfg().Mines, 600, 300)

	r.movement.Update(r.cfg().Mines.RotationPeriod / 4)

	mine, _ := ecs.GetComponent[*components.MineComponent](r.em(), id)
	if !approx(mine.Rotation, math.Pi/2) {
		t.Errorf("rotation = %v, want π/2", mine.Rotation)
	}
}
