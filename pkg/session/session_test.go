package session

import (
	"testing"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/entities"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/types"
)

const frame = 1.0 / 60

func newTestSession(t *testing.T, opts Options) (*Session, *[]game.RunResult) {
	t.Helper()
	var results []game.RunResult
	opts.Transition = game.SceneTransitionFunc(func(r game.RunResult) {
		results = append(results, r)
	})
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, &results
}

func TestNewRequiresLevels(t *testing.T) {
	cfg := config.DefaultGameplayConfig()
	cfg.Levels = nil
	if _, err := New(Options{Config: cfg}); err == nil {
		t.Error("expected error without levels")
	}
}

func TestNewSchedulesTimers(t *testing.T) {
	s, _ := newTestSession(t, Options{Seed: 1})
	sched := s.World().Scheduler
	for _, tag := range []game.EventTag{
		game.EventSpawnCollectible, game.EventSpawnEnemy, game.EventSpawnMine,
		game.EventSpawnPowerup, game.EventDifficultyRamp,
	} {
		if sched.Pending(tag) != 1 {
			t.Errorf("%s not scheduled", tag)
		}
	}
	if !s.EntityManager().IsAlive(s.State().PlayerID) {
		t.Error("player should exist")
	}
}

// TestUpdateResolvesBulletKill 一个完整更新步: 子弹移动后与敌人接触并结算
func TestUpdateResolvesBulletKill(t *testing.T) {
	s, _ := newTestSession(t, Options{Seed: 1})
	em := s.EntityManager()
	cfg := s.Config()

	enemy := entities.NewEnemy(em, entities.EnemySpawn{
		Archetype: "jellyfish",
		Config:    cfg.Archetype("jellyfish"),
		X:         500,
		Y:         200,
	})
	bullet := entities.NewBullet(em, cfg.Weapons, 500, 200)

	s.Update(frame, game.InputState{})

	if em.IsAlive(enemy) || em.IsAlive(bullet) {
		t.Error("enemy and bullet should be gone after one step")
	}
	if s.State().Kills != 1 {
		t.Errorf("Kills = %d, want 1", s.State().Kills)
	}
	if s.State().Score != cfg.Archetype("jellyfish").Points {
		t.Errorf("Score = %d, want %d", s.State().Score, cfg.Archetype("jellyfish").Points)
	}
}

// TestPauseFreezesEverything 暂停期间时钟、计时器和运动全部冻结,恢复后连续
func TestPauseFreezesEverything(t *testing.T) {
	s, _ := newTestSession(t, Options{Seed: 1})
	em := s.EntityManager()
	enemy := entities.NewEnemy(em, entities.EnemySpawn{
		Archetype: "fish",
		Config:    s.Config().Archetype("fish"),
		X:         600,
		Y:         300,
	})
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, enemy)

	s.Update(frame, game.InputState{TogglePause: true})
	if !s.State().Paused {
		t.Fatal("session should be paused")
	}
	x := pos.X
	pending := s.World().Scheduler.Len()

	for i := 0; i < 600; i++ {
		s.Update(frame, game.InputState{Right: true, Fire: true})
	}
	if s.Now() != 0 {
		t.Errorf("clock advanced to %v while paused", s.Now())
	}
	if pos.X != x {
		t.Error("enemy moved while paused")
	}
	if s.World().Scheduler.Len() != pending {
		t.Error("events fired while paused")
	}

	s.Update(frame, game.InputState{TogglePause: true})
	if s.State().Paused {
		t.Fatal("session should resume")
	}
	if pos.X >= x {
		t.Error("enemy should move after resume")
	}
}

func TestComboLapsesOverTime(t *testing.T) {
	s, _ := newTestSession(t, Options{Seed: 1})
	state := s.State()
	state.Combo.RegisterKill()
	state.Combo.RegisterKill()

	steps := int(s.Config().Combo.Window/frame) + 2
	for i := 0; i < steps; i++ {
		s.Update(frame, game.InputState{})
	}
	if state.Combo.Count != 0 || state.Combo.Multiplier != 1 {
		t.Errorf("combo = %d x%d, want reset", state.Combo.Count, state.Combo.Multiplier)
	}
}

// TestGameOverSubmitsScore 生命归零后延迟结束,提交最高分并通知场景切换一次
func TestGameOverSubmitsScore(t *testing.T) {
	store := &game.MemoryScoreStore{Best: 10}
	s, results := newTestSession(t, Options{Seed: 1, Scores: store})
	state := s.State()
	state.Score = 500

	health, _ := ecs.GetComponent[*components.HealthComponent](s.EntityManager(), state.PlayerID)
	health.CurrentHealth = 1
	s.Combat().HitPlayer()

	steps := int(s.Config().GameOverDelay/frame) + 2
	for i := 0; i < steps; i++ {
		s.Update(frame, game.InputState{})
	}

	if len(*results) != 1 {
		t.Fatalf("EndRun called %d times, want 1", len(*results))
	}
	r := (*results)[0]
	if r.Victory || r.Score != 500 || r.BestScore != 500 || !r.NewBest {
		t.Errorf("result = %+v", r)
	}
	if store.Best != 500 {
		t.Errorf("stored best = %d, want 500", store.Best)
	}
	if !state.Ended {
		t.Error("state should be ended")
	}

	// 结束后继续调用 Update 没有任何效果
	now := s.Now()
	s.Update(frame, game.InputState{})
	if s.Now() != now || len(*results) != 1 {
		t.Error("updates after the run ended should be ignored")
	}
}

// TestCloseDiscardsPendingEvents 退出场景后到期的增益事件不会落到已拆除的状态上
func TestCloseDiscardsPendingEvents(t *testing.T) {
	s, results := newTestSession(t, Options{Seed: 1})
	s.World().After(0.5, game.EventBuffExpire, game.EventPayload{Buff: types.PowerupShield, Generation: 1})

	s.Close()
	for i := 0; i < 120; i++ {
		s.Update(frame, game.InputState{})
	}
	if s.World().Scheduler.Len() != 0 {
		t.Error("scheduler should be empty after Close")
	}
	if s.EntityManager().Count() != 0 {
		t.Error("entities should be cleared after Close")
	}
	if len(*results) != 0 {
		t.Error("Close should not trigger EndRun")
	}
}

// TestSameSeedSameRun 相同种子和输入得到相同的一局
func TestSameSeedSameRun(t *testing.T) {
	run := func() (int, int) {
		s, _ := newTestSession(t, Options{Seed: 42, GodMode: true})
		for i := 0; i < 60*20; i++ {
			s.Update(frame, game.InputState{Fire: true, Up: i%120 < 60, Down: i%120 >= 60})
		}
		return s.State().Score, s.EntityManager().Count()
	}
	score1, count1 := run()
	score2, count2 := run()
	if score1 != score2 || count1 != count2 {
		t.Errorf("runs differ: (%d, %d) vs (%d, %d)", score1, count1, score2, count2)
	}
}

// TestSecondaryNeverEntersBeforePrimary 长时间无敌自动游玩,第二个 Boss 入场时第一个必然已结束
func TestSecondaryNeverEntersBeforePrimary(t *testing.T) {
	s, _ := newTestSession(t, Options{Seed: 7, GodMode: true})
	state := s.State()
	for i := 0; i < 60*180 && !state.Ended; i++ {
		s.Update(frame, game.InputState{Fire: true, Up: i%90 < 45, Down: i%90 >= 45})
		if p := state.Slot(types.BossSecondary).Phase; p >= types.BossEntering && p != types.BossConcluded {
			if state.Slot(types.BossPrimary).Phase != types.BossConcluded {
				t.Fatalf("frame %d: secondary %s while primary %s", i, p, state.Slot(types.BossPrimary).Phase)
			}
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](s.EntityManager(), state.PlayerID)
		if health.CurrentHealth < 0 || health.CurrentHealth > health.MaxHealth {
			t.Fatalf("frame %d: health %d out of range", i, health.CurrentHealth)
		}
	}
}
