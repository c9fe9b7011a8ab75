package systems

import (
	"log"

	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/entities"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/types"
)

// SpawnSystem 定时生成器
//
// 金币、敌人、水雷、道具各有一个独立的重复计时器,都挂在虚拟时钟上。
// 任一 Boss 遭遇进行中时,敌人、水雷和道具的生成被整体抑制;金币照常生成。
type SpawnSystem struct {
	world *World
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(world *World) *SpawnSystem {
	return &SpawnSystem{world: world}
}

// Start 排定四个重复计时器的第一次触发
func (s *SpawnSystem) Start() {
	timers := s.world.Config.Spawn
	s.world.After(timers.Collectible, game.EventSpawnCollectible, game.EventPayload{})
	s.world.After(timers.Enemy, game.EventSpawnEnemy, game.EventPayload{})
	s.world.After(timers.Mine, game.EventSpawnMine, game.EventPayload{})
	s.world.After(timers.Powerup, game.EventSpawnPowerup, game.EventPayload{})
}

// HandleTimer 处理一次计时器触发并排定下一次
// 下一次的时间从本次的计划触发时间起算,长帧不会让节奏漂移
func (s *SpawnSystem) HandleTimer(ev game.ScheduledEvent) {
	timers := s.world.Config.Spawn
	var interval float64
	var spawn func()

	switch ev.Tag {
	case game.EventSpawnCollectible:
		interval, spawn = timers.Collectible, func() { s.SpawnCollectible() }
	case game.EventSpawnEnemy:
		interval, spawn = timers.Enemy, func() { s.SpawnEnemy() }
	case game.EventSpawnMine:
		interval, spawn = timers.Mine, func() { s.SpawnMine() }
	case game.EventSpawnPowerup:
		interval, spawn = timers.Powerup, func() { s.SpawnPowerup() }
	default:
		return
	}

	s.world.Scheduler.Schedule(ev.FireAt+interval, ev.Tag, game.EventPayload{})
	if s.world.State.GameOver {
		return
	}
	spawn()
}

// spawnX 右边界外的生成横坐标
func (s *SpawnSystem) spawnX(offset float64) float64 {
	return s.world.Config.Field.Width + offset
}

// spawnY 在 [margin, height-margin] 内随机取纵坐标
func (s *SpawnSystem) spawnY(margin float64) float64 {
	return s.world.randRange(margin, s.world.Config.Field.Height-margin)
}

// SpawnCollectible 生成一枚金币
func (s *SpawnSystem) SpawnCollectible() ecs.EntityID {
	cfg := s.world.Config
	pickups := cfg.Pickups
	return entities.NewCollectible(s.world.EM, pickups,
		s.spawnX(cfg.Field.PickupSpawnOffsetX),
		s.spawnY(cfg.Field.CollectibleSpawnMargin),
		s.world.randRange(-pickups.BobAmplitude, pickups.BobAmplitude))
}

// SpawnEnemy 从当前关卡的原型集合中均匀抽取一种并按其生成模式生成
// 返回本次生成的全部实体
func (s *SpawnSystem) SpawnEnemy() []ecs.EntityID {
	if s.world.State.AnyBossActive() {
		return nil
	}
	level := s.world.Config.Level(s.world.State.Level)
	if len(level.Archetypes) == 0 {
		return nil
	}
	name := level.Archetypes[s.world.Rand.Intn(len(level.Archetypes))]
	return s.SpawnArchetype(name)
}

// SpawnArchetype 按原型的生成模式生成一只或一组敌人
//
// 模式:
//   - single: 一只
//   - line: 数量在 [GroupMin, GroupMax] 内随机,同一纵坐标,沿 x 按 Spacing 排开
//   - formation: 按 Offsets 固定队形排列
func (s *SpawnSystem) SpawnArchetype(name string) []ecs.EntityID {
	arch := s.world.Config.Archetype(name)
	x := s.spawnX(s.world.Config.Field.EnemySpawnOffsetX)
	y := s.spawnY(arch.SpawnMargin)

	newOne := func(x, y float64, index int) ecs.EntityID {
		return entities.NewEnemy(s.world.EM, entities.EnemySpawn{
			Archetype:      name,
			Config:         arch,
			X:              x,
			Y:              y,
			BobDelta:       s.world.randRange(-arch.BobAmplitude, arch.BobAmplitude),
			ZigzagDir:      s.randomDirection(),
			FormationIndex: index,
		})
	}

	switch arch.Pattern {
	case types.PatternSingle:
		return []ecs.EntityID{newOne(x, y, 0)}
	case types.PatternLine:
		n := s.world.randIntRange(arch.GroupMin, arch.GroupMax)
		ids := make([]ecs.EntityID, 0, n)
		for i := 0; i < n; i++ {
			ids = append(ids, newOne(x+float64(i)*arch.Spacing, y, i))
		}
		return ids
	case types.PatternFormation:
		ids := make([]ecs.EntityID, 0, len(arch.Offsets))
		for i, off := range arch.Offsets {
			ids = append(ids, newOne(x+off.X, y+off.Y, i))
		}
		return ids
	}
	panic("systems: unknown spawn pattern " + string(arch.Pattern))
}

func (s *SpawnSystem) randomDirection() float64 {
	if s.world.Rand.Intn(2) == 0 {
		return -1
	}
	return 1
}

// SpawnMine 生成一颗水雷
func (s *SpawnSystem) SpawnMine() ecs.EntityID {
	if s.world.State.AnyBossActive() {
		return 0
	}
	cfg := s.world.Config
	return entities.NewMine(s.world.EM, cfg.Mines,
		s.spawnX(cfg.Field.PickupSpawnOffsetX),
		s.spawnY(cfg.Field.MineSpawnMargin))
}

// SpawnPowerup 从当前关卡的道具池中均匀抽取一种生成
func (s *SpawnSystem) SpawnPowerup() ecs.EntityID {
	if s.world.State.AnyBossActive() {
		return 0
	}
	cfg := s.world.Config
	level := cfg.Level(s.world.State.Level)
	if len(level.Powerups) == 0 {
		return 0
	}
	kind := level.Powerups[s.world.Rand.Intn(len(level.Powerups))]
	return s.spawnPowerupKind(cfg, kind)
}

func (s *SpawnSystem) spawnPowerupKind(cfg *config.GameplayConfig, kind types.PowerupKind) ecs.EntityID {
	pickups := cfg.Pickups
	return entities.NewPowerup(s.world.EM, pickups, kind,
		s.spawnX(cfg.Field.PickupSpawnOffsetX),
		s.spawnY(cfg.Field.CollectibleSpawnMargin),
		s.world.randRange(-pickups.BobAmplitude, pickups.BobAmplitude))
}

// StartMineField 水雷阵: 逐个错开释放若干颗水雷
// 每颗的延迟在上一颗的基础上累加 [IntervalMin, IntervalMax) 内的随机值
func (s *SpawnSystem) StartMineField() {
	mf := s.world.Config.MineField
	delay := 0.0
	for i := 0; i < mf.Count; i++ {
		delay += s.world.randRange(mf.IntervalMin, mf.IntervalMax)
		s.world.After(delay, game.EventMineFieldDrop, game.EventPayload{Index: i})
	}
	log.Printf("[SpawnSystem] Mine field: %d mines over %.2fs", mf.Count, delay)
}

// HandleMineFieldDrop 释放水雷阵中的一颗
func (s *SpawnSystem) HandleMineFieldDrop(ev game.ScheduledEvent) {
	if s.world.State.GameOver {
		return
	}
	s.SpawnMine()
}
