package session

import (
	"fmt"
	"log"

	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/entities"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/systems"
)

// Options 创建一局游戏所需的协作者
type Options struct {
	// Config 玩法配置,nil 时使用内置默认值
	Config *config.GameplayConfig

	// Presenter 表现层,nil 时使用 NopPresenter
	Presenter game.Presenter

	// Transition 本局结束时调用,可为 nil
	Transition game.SceneTransition

	// Scores 最高分存储,nil 时使用内存存储
	Scores game.ScoreStore

	// Seed 随机种子,相同种子和相同输入序列得到相同的一局
	Seed int64

	// GodMode 调试无敌
	GodMode bool
}

// Session 一局游戏的模拟核心
//
// 持有全部可变状态、虚拟时钟、调度器和各个系统。
// 单线程: 所有修改都发生在 Update 及其同步派发的定时事件中。
type Session struct {
	world      *systems.World
	transition game.SceneTransition
	scores     game.ScoreStore

	player     *systems.PlayerSystem
	weapons    *systems.WeaponSystem
	movement   *systems.MovementSystem
	boss       *systems.BossSystem
	bounds     *systems.BoundsSystem
	collision  *systems.CollisionSystem
	combat     *systems.CombatSystem
	spawn      *systems.SpawnSystem
	difficulty *systems.DifficultyEngine
	powerups   *systems.PowerupSystem
	level      *systems.LevelSystem
	flash      *systems.FlashEffectSystem

	result game.RunResult
}

// New 创建一局新游戏并排定所有计时器
func New(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("failed to create session: no levels configured")
	}
	scores := opts.Scores
	if scores == nil {
		scores = &game.MemoryScoreStore{}
	}

	world := systems.NewWorld(cfg, opts.Presenter, opts.Seed)
	world.GodMode = opts.GodMode

	s := &Session{
		world:      world,
		transition: opts.Transition,
		scores:     scores,
	}
	s.player = systems.NewPlayerSystem(world)
	s.weapons = systems.NewWeaponSystem(world)
	s.movement = systems.NewMovementSystem(world)
	s.boss = systems.NewBossSystem(world)
	s.bounds = systems.NewBoundsSystem(world)
	s.spawn = systems.NewSpawnSystem(world)
	s.difficulty = systems.NewDifficultyEngine(world)
	s.powerups = systems.NewPowerupSystem(world)
	s.level = systems.NewLevelSystem(world, s.boss, s.spawn)
	s.combat = systems.NewCombatSystem(world, s.level, s.boss, s.powerups)
	s.collision = systems.NewCollisionSystem(world, s.combat)
	s.flash = systems.NewFlashEffectSystem(world.EM)

	world.State.PlayerID = entities.NewPlayer(world.EM, cfg)
	s.spawn.Start()
	s.difficulty.Start()

	log.Printf("[Session] New run: seed=%d godMode=%v levels=%d", opts.Seed, opts.GodMode, len(cfg.Levels))
	return s, nil
}

// Update 推进一个模拟步
//
// 顺序: 暂停切换 → 时钟推进与定时事件派发 → 连击窗口 → 玩家移动 → 开火 →
// 全体运动 → Boss 行为 → 越界清理 → 接触检测与结算 → 闪烁计时 → 清理已销毁实体
func (s *Session) Update(dt float64, input game.InputState) {
	state := s.world.State
	if input.TogglePause {
		s.TogglePause()
	}
	if state.Ended || state.Paused {
		return
	}

	s.world.Clock.Advance(dt)
	state.Elapsed = s.world.Clock.Now()
	s.world.Scheduler.Drain(s.world.Clock.Now(), s.dispatch)
	if state.Ended {
		return
	}

	state.Combo.Tick(dt)
	s.player.Update(dt, input)
	s.weapons.Update(dt, input)
	s.movement.Update(dt)
	s.boss.Update(dt)
	s.difficulty.Update(dt)
	s.bounds.Update()
	s.collision.Update()
	s.flash.Update(dt)
	s.world.EM.RemoveMarkedEntities()
}

// dispatch 把到期的定时事件路由到对应系统
func (s *Session) dispatch(ev game.ScheduledEvent) {
	if s.world.State.Ended {
		return
	}
	switch ev.Tag {
	case game.EventSpawnCollectible, game.EventSpawnEnemy, game.EventSpawnMine, game.EventSpawnPowerup:
		s.spawn.HandleTimer(ev)
	case game.EventMineFieldDrop:
		s.spawn.HandleMineFieldDrop(ev)
	case game.EventDifficultyRamp:
		s.difficulty.HandleRamp(ev)
	case game.EventBuffExpire:
		s.powerups.HandleExpire(ev)
	case game.EventBossWarningEnd:
		s.boss.HandleWarningEnd(ev)
	case game.EventBossDebounceReset:
		s.boss.HandleDebounceReset(ev)
	case game.EventBossExplosion:
		s.boss.HandleExplosion(ev)
	case game.EventBossSweepShot:
		s.boss.HandleSweepShot(ev)
	case game.EventBossDefeatComplete:
		if slot, ok := s.boss.Conclude(ev); ok {
			s.level.OnBossConcluded(slot)
		}
	case game.EventEndRun:
		s.endRun(ev.Payload.Victory)
	default:
		log.Printf("[Session] Warning: unhandled event %s", ev.Tag)
	}
}

// endRun 结束本局: 提交最高分,丢弃所有未触发事件,通知场景切换
func (s *Session) endRun(victory bool) {
	state := s.world.State
	if state.Ended {
		return
	}
	state.Ended = true
	state.Victory = victory
	s.world.Scheduler.Clear()

	newBest, err := s.scores.SubmitScore(state.Score)
	if err != nil {
		log.Printf("[Session] Warning: failed to save best score: %v", err)
	}
	s.result = game.RunResult{
		Score:     state.Score,
		Victory:   victory,
		BestScore: s.scores.BestScore(),
		NewBest:   newBest,
	}
	log.Printf("[Session] Run ended: score=%d victory=%v best=%d", state.Score, victory, s.result.BestScore)

	if s.transition != nil {
		s.transition.EndRun(s.result)
	}
}

// TogglePause 切换暂停,已结束的一局不受影响
func (s *Session) TogglePause() {
	state := s.world.State
	if state.Ended {
		return
	}
	state.Paused = !state.Paused
	if state.Paused {
		s.world.Clock.Pause()
	} else {
		s.world.Clock.Resume()
	}
}

// Close 退出场景: 丢弃未触发事件和全部实体,之后的 Update 不再有任何效果
func (s *Session) Close() {
	s.world.State.Ended = true
	s.world.Scheduler.Clear()
	s.world.EM.Clear()
}

// State 当前游戏状态(只读使用)
func (s *Session) State() *game.GameState {
	return s.world.State
}

// EntityManager 实体存储,表现层据此绘制
func (s *Session) EntityManager() *ecs.EntityManager {
	return s.world.EM
}

// Config 本局使用的玩法配置
func (s *Session) Config() *config.GameplayConfig {
	return s.world.Config
}

// Now 当前游戏时间
func (s *Session) Now() float64 {
	return s.world.Clock.Now()
}

// Result 本局结果,仅在结束后有效
func (s *Session) Result() game.RunResult {
	return s.result
}

// World 共享上下文,供测试和调试工具直接操纵
func (s *Session) World() *systems.World {
	return s.world
}

// Combat 战斗结算系统
func (s *Session) Combat() *systems.CombatSystem {
	return s.combat
}
