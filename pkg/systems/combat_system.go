package systems

import (
	"fmt"
	"log"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/types"
)

// 受击闪烁透明度
const (
	enemyFlashAlpha  = 0.5
	bossFlashAlpha   = 0.3
	playerFlashAlpha = 0.2
)

// CombatSystem 接触结算: 伤害、击杀、计分、玩家受击
// 实现 ContactHandler
type CombatSystem struct {
	world    *World
	level    *LevelSystem
	boss     *BossSystem
	powerups *PowerupSystem
}

// NewCombatSystem 创建战斗结算系统
func NewCombatSystem(world *World, level *LevelSystem, boss *BossSystem, powerups *PowerupSystem) *CombatSystem {
	return &CombatSystem{
		world:    world,
		level:    level,
		boss:     boss,
		powerups: powerups,
	}
}

var _ ContactHandler = (*CombatSystem)(nil)

// OnProjectileEnemy 弹药命中敌人
// 火球无视剩余生命直接击杀且不被消耗;其他弹药扣 1 点生命后销毁
func (s *CombatSystem) OnProjectileEnemy(projectile, enemy ecs.EntityID) {
	em := s.world.EM
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, projectile)
	if !ok {
		return
	}

	if proj.Kind == components.ProjectileFireball {
		proj.RecordHit(enemy)
		s.killEnemy(enemy)
		return
	}

	em.DestroyEntity(projectile)
	health, ok := ecs.GetComponent[*components.HealthComponent](em, enemy)
	if !ok {
		return
	}
	if health.Damage(1) {
		s.killEnemy(enemy)
		return
	}
	StartFlash(em, enemy, s.world.Config.Effects.EnemyFlashDuration, enemyFlashAlpha)
}

// killEnemy 击杀结算: 击杀数、连击倍率计分、爆炸、飘字,然后检查关卡触发
func (s *CombatSystem) killEnemy(enemy ecs.EntityID) {
	em := s.world.EM
	state := s.world.State

	info, ok := ecs.GetComponent[*components.EnemyComponent](em, enemy)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, enemy)

	state.Kills++
	multiplier := state.Combo.RegisterKill()
	points := info.Points * multiplier
	state.AddScore(points)
	em.DestroyEntity(enemy)

	if pos != nil {
		s.explode(pos.X, pos.Y, s.world.Config.Effects.ExplosionScale)
		s.world.Presenter.ShowText(pos.X, pos.Y, fmt.Sprintf("+%d", points), types.TextPopup)
	}

	s.level.OnKill()
}

// OnProjectileBoss 弹药命中 Boss,任何弹药都扣 1 点且被消耗
func (s *CombatSystem) OnProjectileBoss(projectile, boss ecs.EntityID) {
	em := s.world.EM
	em.DestroyEntity(projectile)

	health, ok := ecs.GetComponent[*components.HealthComponent](em, boss)
	if !ok {
		return
	}
	effects := s.world.Config.Effects
	if health.Damage(1) {
		s.boss.Defeat(boss)
		return
	}
	StartFlash(em, boss, effects.BossFlashDuration, bossFlashAlpha)
	s.world.Presenter.ShakeCamera(effects.BossHitShake.Duration, effects.BossHitShake.Intensity)
}

// OnProjectileMine 弹药击毁水雷
// 水雷分值乘以当前连击倍率,但不计入击杀数也不延续连击
func (s *CombatSystem) OnProjectileMine(projectile, mine ecs.EntityID) {
	em := s.world.EM
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, projectile)
	if !ok {
		return
	}
	if proj.Piercing {
		proj.RecordHit(mine)
	} else {
		em.DestroyEntity(projectile)
	}

	info, ok := ecs.GetComponent[*components.MineComponent](em, mine)
	if !ok {
		return
	}
	points := info.Points * s.world.State.Combo.Multiplier
	s.world.State.AddScore(points)
	em.DestroyEntity(mine)

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, mine); ok {
		s.explode(pos.X, pos.Y, s.world.Config.Effects.MineExplosionScale)
		s.world.Presenter.ShowText(pos.X, pos.Y, fmt.Sprintf("+%d", points), types.TextPopup)
	}
}

// OnMinePlayer 水雷撞上玩家: 爆炸、不计分,按普通受击处理
func (s *CombatSystem) OnMinePlayer(mine, player ecs.EntityID) {
	em := s.world.EM
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, mine); ok {
		s.explode(pos.X, pos.Y, s.world.Config.Effects.MineExplosionScale)
	}
	em.DestroyEntity(mine)
	s.HitPlayer()
}

// OnPickup 拾取金币或道具
func (s *CombatSystem) OnPickup(pickup, player ecs.EntityID) {
	em := s.world.EM
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, pickup)

	if coin, ok := ecs.GetComponent[*components.CollectibleComponent](em, pickup); ok {
		s.world.State.AddScore(coin.Value)
		em.DestroyEntity(pickup)
		s.world.Presenter.PlaySound(types.SoundPickup)
		if pos != nil {
			s.world.Presenter.SpawnEffect(types.EffectSparkle, pos.X, pos.Y, 1)
			s.world.Presenter.ShowText(pos.X, pos.Y, fmt.Sprintf("+%d", coin.Value), types.TextPopup)
		}
		return
	}

	if pu, ok := ecs.GetComponent[*components.PowerupComponent](em, pickup); ok {
		em.DestroyEntity(pickup)
		s.world.Presenter.PlaySound(types.SoundPickup)
		s.powerups.Apply(pu.Kind)
	}
}

// OnBossProjectilePlayer Boss 弹幕命中玩家
func (s *CombatSystem) OnBossProjectilePlayer(projectile, player ecs.EntityID) {
	s.world.EM.DestroyEntity(projectile)
	s.HitPlayer()
}

// OnEnemyPlayer 敌人身体撞上玩家,每个敌人只造成一次伤害且自身不受影响
func (s *CombatSystem) OnEnemyPlayer(enemy, player ecs.EntityID) {
	info, ok := ecs.GetComponent[*components.EnemyComponent](s.world.EM, enemy)
	if !ok || info.HasHitPlayer {
		return
	}
	info.HasHitPlayer = true
	s.HitPlayer()
}

// OnBossPlayer Boss 身体撞上玩家,防抖窗口内只结算一次
func (s *CombatSystem) OnBossPlayer(boss, player ecs.EntityID) {
	comp, ok := ecs.GetComponent[*components.BossComponent](s.world.EM, boss)
	if !ok || comp.JustHit {
		return
	}
	comp.JustHit = true
	cfg := s.world.Config.Boss(comp.Name)
	s.world.After(cfg.ContactDebounce, game.EventBossDebounceReset, game.EventPayload{Slot: comp.Slot, Entity: boss})
	s.HitPlayer()
}

// HitPlayer 玩家受击
//
// 顺序: 无敌模式只震屏 → 护盾抵消一次 → 扣 1 点生命,归零进入游戏结束
func (s *CombatSystem) HitPlayer() {
	state := s.world.State
	if state.GameOver {
		return
	}
	em := s.world.EM
	effects := s.world.Config.Effects
	presenter := s.world.Presenter

	if s.world.GodMode {
		presenter.ShakeCamera(effects.GodModeShake.Duration, effects.GodModeShake.Intensity)
		return
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, state.PlayerID)
	if !ok {
		log.Printf("[CombatSystem] Warning: player %d missing, hit ignored", state.PlayerID)
		return
	}

	if player.ShieldActive {
		player.ShieldActive = false
		presenter.PlaySound(types.SoundHit)
		presenter.ShakeCamera(effects.ShieldShake.Duration, effects.ShieldShake.Intensity)
		return
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](em, state.PlayerID)
	if !ok {
		return
	}
	presenter.PlaySound(types.SoundHurt)
	dead := health.Damage(1)
	StartFlash(em, state.PlayerID, s.world.Config.Player.HitFlashDuration, playerFlashAlpha)
	presenter.ShakeCamera(effects.HurtShake.Duration, effects.HurtShake.Intensity)

	if dead {
		s.gameOver()
	}
}

// gameOver 生命归零: 冻结玩家,延迟一段时间后结束本局
func (s *CombatSystem) gameOver() {
	state := s.world.State
	state.GameOver = true
	log.Printf("[CombatSystem] Game over, score=%d", state.Score)
	s.world.After(s.world.Config.GameOverDelay, game.EventEndRun, game.EventPayload{Victory: false})
}

func (s *CombatSystem) explode(x, y, scale float64) {
	s.world.Presenter.SpawnEffect(types.EffectExplosion, x, y, scale)
	s.world.Presenter.PlaySound(types.SoundExplosion)
}
