package systems

import (
	"testing"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/entities"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/types"
)

// recordingPresenter 记录表现层调用,供断言使用
type recordingPresenter struct {
	effects []types.EffectKind
	sounds  []types.SoundID
	shakes  int
	texts   []string
}

func (p *recordingPresenter) SpawnEffect(kind types.EffectKind, x, y, scale float64) {
	p.effects = append(p.effects, kind)
}

func (p *recordingPresenter) PlaySound(id types.SoundID) {
	p.sounds = append(p.sounds, id)
}

func (p *recordingPresenter) ShakeCamera(duration, intensity float64) {
	p.shakes++
}

func (p *recordingPresenter) ShowText(x, y float64, content string, style types.TextStyle) {
	p.texts = append(p.texts, content)
}

func (p *recordingPresenter) countSound(id types.SoundID) int {
	n := 0
	for _, s := range p.sounds {
		if s == id {
			n++
		}
	}
	return n
}

// testRig 与 session 相同方式装配的一组系统
type testRig struct {
	world     *World
	presenter *recordingPresenter

	player     *PlayerSystem
	weapons    *WeaponSystem
	movement   *MovementSystem
	boss       *BossSystem
	bounds     *BoundsSystem
	collision  *CollisionSystem
	combat     *CombatSystem
	spawn      *SpawnSystem
	difficulty *DifficultyEngine
	powerups   *PowerupSystem
	level      *LevelSystem
	flash      *FlashEffectSystem

	endRuns []bool
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	cfg := config.DefaultGameplayConfig()
	p := &recordingPresenter{}
	w := NewWorld(cfg, p, 1)

	r := &testRig{world: w, presenter: p}
	r.player = NewPlayerSystem(w)
	r.weapons = NewWeaponSystem(w)
	r.movement = NewMovementSystem(w)
	r.boss = NewBossSystem(w)
	r.bounds = NewBoundsSystem(w)
	r.spawn = NewSpawnSystem(w)
	r.difficulty = NewDifficultyEngine(w)
	r.powerups = NewPowerupSystem(w)
	r.level = NewLevelSystem(w, r.boss, r.spawn)
	r.combat = NewCombatSystem(w, r.level, r.boss, r.powerups)
	r.collision = NewCollisionSystem(w, r.combat)
	r.flash = NewFlashEffectSystem(w.EM)

	w.State.PlayerID = entities.NewPlayer(w.EM, cfg)
	return r
}

// advance 推进虚拟时钟并派发到期事件(不运行逐帧系统)
func (r *testRig) advance(dt float64) {
	r.world.Clock.Advance(dt)
	r.world.Scheduler.Drain(r.world.Now(), r.dispatch)
}

func (r *testRig) dispatch(ev game.ScheduledEvent) {
	switch ev.Tag {
	case game.EventSpawnCollectible, game.EventSpawnEnemy, game.EventSpawnMine, game.EventSpawnPowerup:
		r.spawn.HandleTimer(ev)
	case game.EventMineFieldDrop:
		r.spawn.HandleMineFieldDrop(ev)
	case game.EventDifficultyRamp:
		r.difficulty.HandleRamp(ev)
	case game.EventBuffExpire:
		r.powerups.HandleExpire(ev)
	case game.EventBossWarningEnd:
		r.boss.HandleWarningEnd(ev)
	case game.EventBossDebounceReset:
		r.boss.HandleDebounceReset(ev)
	case game.EventBossExplosion:
		r.boss.HandleExplosion(ev)
	case game.EventBossSweepShot:
		r.boss.HandleSweepShot(ev)
	case game.EventBossDefeatComplete:
		if slot, ok := r.boss.Conclude(ev); ok {
			r.level.OnBossConcluded(slot)
		}
	case game.EventEndRun:
		r.endRuns = append(r.endRuns, ev.Payload.Victory)
	}
}

func (r *testRig) cfg() *config.GameplayConfig {
	return r.world.Config
}

func (r *testRig) em() *ecs.EntityManager {
	return r.world.EM
}

func (r *testRig) playerID() ecs.EntityID {
	return r.world.State.PlayerID
}

func (r *testRig) playerComp(t *testing.T) *components.PlayerComponent {
	t.Helper()
	p, ok := ecs.GetComponent[*components.PlayerComponent](r.em(), r.playerID())
	if !ok {
		t.Fatal("player component missing")
	}
	return p
}

func (r *testRig) playerHealth(t *testing.T) *components.HealthComponent {
	t.Helper()
	h, ok := ecs.GetComponent[*components.HealthComponent](r.em(), r.playerID())
	if !ok {
		t.Fatal("player health missing")
	}
	return h
}

func (r *testRig) position(t *testing.T, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](r.em(), id)
	if !ok {
		t.Fatalf("entity %d has no position", id)
	}
	return pos
}

// spawnEnemy 在指定位置生成一个原型敌人
func (r *testRig) spawnEnemy(archetype string, x, y float64) ecs.EntityID {
	return entities.NewEnemy(r.em(), entities.EnemySpawn{
		Archetype: archetype,
		Config:    r.cfg().Archetype(archetype),
		X:         x,
		Y:         y,
	})
}

// startBoss 把当前关卡的 Boss 推进到入场阶段
func (r *testRig) startBoss(t *testing.T, slot types.BossSlot) ecs.EntityID {
	t.Helper()
	if !r.boss.BeginWarning(slot) {
		t.Fatalf("BeginWarning(%s) refused", slot)
	}
	st := r.world.State.Slot(slot)
	r.advance(r.cfg().Boss(st.Name).WarningDuration)
	if st.Phase != types.BossEntering {
		t.Fatalf("phase after warning = %s, want Entering", st.Phase)
	}
	return st.Entity
}

func alive(em *ecs.EntityManager, id ecs.EntityID) bool {
	return em.IsAlive(id)
}
