package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/entities"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/types"
	"github.com/decker502/deepdive/pkg/utils"
)

// 绝望攻击类型
const (
	desperationSpread = "spread"
	desperationSweep  = "sweep"
)

// BossSystem Boss 状态机
//
// 阶段: Dormant → Warning → Entering → Engaged → Defeating → Concluded。
// 阶段记录在 GameState 的槽位上;Warning 结束、接触防抖、连环爆炸和击破演出结束
// 都通过调度器在虚拟时钟上触发,暂停时一并冻结。
type BossSystem struct {
	world *World
}

// NewBossSystem 创建 Boss 系统
func NewBossSystem(world *World) *BossSystem {
	return &BossSystem{world: world}
}

// BeginWarning 进入警告阶段,槽位必须处于 Dormant
func (s *BossSystem) BeginWarning(slot types.BossSlot) bool {
	st := s.world.State.Slot(slot)
	if st.Phase != types.BossDormant {
		return false
	}
	cfg := s.world.Config.Boss(st.Name)
	st.Phase = types.BossWarning

	field := s.world.Config.Field
	s.world.Presenter.PlaySound(types.SoundWarning)
	s.world.Presenter.ShowText(field.Width/2, field.Height/2,
		fmt.Sprintf("WARNING\n%s approaching", cfg.DisplayName), types.TextWarning)
	s.world.After(cfg.WarningDuration, game.EventBossWarningEnd, game.EventPayload{Slot: slot})

	log.Printf("[BossSystem] %s warning (slot %s)", cfg.DisplayName, slot)
	return true
}

// HandleWarningEnd 警告结束,生成 Boss 并开始入场
// 前一个槽位尚未结束时拒绝入场
func (s *BossSystem) HandleWarningEnd(ev game.ScheduledEvent) {
	slot := ev.Payload.Slot
	st := s.world.State.Slot(slot)
	if st.Phase != types.BossWarning {
		return
	}
	for i := types.BossPrimary; i < slot; i++ {
		if s.world.State.Slot(i).Phase != types.BossConcluded {
			log.Printf("[BossSystem] Warning: slot %s cannot enter before slot %s concludes", slot, i)
			return
		}
	}

	cfg := s.world.Config.Boss(st.Name)
	st.Entity = entities.NewBoss(s.world.EM, slot, st.Name, cfg, s.world.Config.Field)
	st.Phase = types.BossEntering
}

// Update 推进入场动画和交战行为
func (s *BossSystem) Update(dt float64) {
	for i := range s.world.State.Bosses {
		st := &s.world.State.Bosses[i]
		switch st.Phase {
		case types.BossEntering:
			s.updateEntering(st, dt)
		case types.BossEngaged:
			s.updateEngaged(st, dt)
		}
	}
}

func (s *BossSystem) updateEntering(st *game.BossSlotState, dt float64) {
	em := s.world.EM
	boss, ok := ecs.GetComponent[*components.BossComponent](em, st.Entity)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, st.Entity)

	boss.EntryElapsed += dt
	t := 1.0
	if boss.EntryDuration > 0 {
		t = math.Min(1, boss.EntryElapsed/boss.EntryDuration)
	}
	pos.X = boss.EntryFromX + (boss.EntryToX-boss.EntryFromX)*utils.EaseOutCubic(t)

	if t >= 1 {
		st.Phase = types.BossEngaged
		log.Printf("[BossSystem] %s engaged", boss.Name)
	}
}

// updateEngaged 追踪玩家纵坐标(阻尼靠拢)并按间隔齐射
func (s *BossSystem) updateEngaged(st *game.BossSlotState, dt float64) {
	em := s.world.EM
	boss, ok := ecs.GetComponent[*components.BossComponent](em, st.Entity)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, st.Entity)
	cfg := s.world.Config.Boss(boss.Name)

	if player := s.world.playerPosition(); player != nil {
		rate := math.Min(1, cfg.PursueRate*frameScale(dt))
		boss.TrackY += (player.Y - boss.TrackY) * rate
	}
	boss.TrackY = clamp(boss.TrackY, cfg.MinY, cfg.MaxY)
	boss.BobElapsed += dt
	pos.Y = clamp(boss.TrackY+bobOffset(cfg.BobAmplitude, cfg.BobHalfPeriod, boss.BobElapsed), cfg.MinY, cfg.MaxY)

	boss.AttackTimer -= dt
	if boss.AttackTimer > 0 {
		return
	}
	boss.AttackTimer += cfg.AttackInterval
	if boss.AttackTimer <= 0 {
		boss.AttackTimer = cfg.AttackInterval
	}

	s.fireVolley(st.Entity, pos, cfg.Volley, cfg.ProjectileRadius)
	s.maybeDesperation(st.Entity, pos, cfg)
}

// fireVolley 扇形齐射,角度相对正左方,正值向下
func (s *BossSystem) fireVolley(owner ecs.EntityID, pos *components.PositionComponent, volley config.VolleyConfig, radius float64) {
	x := pos.X - volley.OriginOffsetX
	for _, deg := range volley.Angles {
		rad := deg * math.Pi / 180
		vx := -volley.Speed * math.Cos(rad)
		vy := volley.Speed * math.Sin(rad)
		entities.NewBossProjectile(s.world.EM, owner, x, pos.Y, vx, vy, radius)
	}
}

// maybeDesperation 生命低于阈值时按概率追加一次绝望攻击
func (s *BossSystem) maybeDesperation(owner ecs.EntityID, pos *components.PositionComponent, cfg config.BossConfig) {
	d := cfg.Desperation
	health, ok := ecs.GetComponent[*components.HealthComponent](s.world.EM, owner)
	if !ok || health.CurrentHealth >= d.HealthBelow {
		return
	}
	if s.world.Rand.Float64() >= d.Chance {
		return
	}

	switch d.Kind {
	case desperationSpread:
		s.fireVolley(owner, pos, d.Volley, cfg.ProjectileRadius)
	case desperationSweep:
		for i := 0; i < d.Count; i++ {
			s.world.After(float64(i)*d.Stagger, game.EventBossSweepShot, game.EventPayload{Entity: owner, Index: i})
		}
	default:
		panic("systems: unknown desperation kind " + d.Kind)
	}
}

// HandleSweepShot 触手横扫中的一发,Boss 已离开交战阶段时忽略
func (s *BossSystem) HandleSweepShot(ev game.ScheduledEvent) {
	em := s.world.EM
	owner := ev.Payload.Entity
	boss, ok := ecs.GetComponent[*components.BossComponent](em, owner)
	if !ok || !em.IsAlive(owner) || s.world.State.Slot(boss.Slot).Phase != types.BossEngaged {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, owner)
	cfg := s.world.Config.Boss(boss.Name)
	d := cfg.Desperation

	vy := float64(ev.Payload.Index-(d.Count-1)/2) * d.StepVY
	entities.NewBossProjectile(em, owner, pos.X-d.OriginOffsetX, pos.Y, d.VX, vy, cfg.ProjectileRadius)
}

// HandleDebounceReset 接触防抖窗口结束
func (s *BossSystem) HandleDebounceReset(ev game.ScheduledEvent) {
	if boss, ok := ecs.GetComponent[*components.BossComponent](s.world.EM, ev.Payload.Entity); ok {
		boss.JustHit = false
	}
}

// Defeat Boss 生命归零: 同一步内进入 Defeating
//
// 加固定奖励分(不乘连击倍率),清除该 Boss 的全部弹幕,排定连环爆炸,
// 显示击破横幅。Boss 实体保留到演出结束,期间不移动、不攻击、不可被命中。
func (s *BossSystem) Defeat(entity ecs.EntityID) {
	em := s.world.EM
	boss, ok := ecs.GetComponent[*components.BossComponent](em, entity)
	if !ok {
		return
	}
	st := s.world.State.Slot(boss.Slot)
	if st.Phase != types.BossEntering && st.Phase != types.BossEngaged {
		return
	}
	cfg := s.world.Config.Boss(boss.Name)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, entity)

	st.Phase = types.BossDefeating
	s.world.State.AddScore(cfg.Points)
	s.ClearProjectiles(entity)

	for i := 0; i < cfg.Explosions.Count; i++ {
		s.world.After(float64(i)*cfg.Explosions.Interval, game.EventBossExplosion, game.EventPayload{
			Slot: boss.Slot,
			X:    pos.X,
			Y:    pos.Y,
		})
	}

	field := s.world.Config.Field
	presenter := s.world.Presenter
	presenter.PlaySound(types.SoundExplosion)
	presenter.ShakeCamera(cfg.DefeatShake.Duration, cfg.DefeatShake.Intensity)
	presenter.ShowText(field.Width/2, field.Height/2, cfg.DefeatBanner, types.TextVictory)
	s.world.After(cfg.BannerDuration, game.EventBossDefeatComplete, game.EventPayload{Slot: boss.Slot, Entity: entity})

	log.Printf("[BossSystem] %s defeated, +%d", cfg.DisplayName, cfg.Points)
}

// ClearProjectiles 清除某个 Boss 发射的全部弹幕,返回清除数量
func (s *BossSystem) ClearProjectiles(owner ecs.EntityID) int {
	em := s.world.EM
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BossProjectileComponent](em) {
		bp, _ := ecs.GetComponent[*components.BossProjectileComponent](em, id)
		if bp.Owner == owner {
			em.DestroyEntity(id)
			n++
		}
	}
	return n
}

// HandleExplosion 连环爆炸中的一次,位置在击破点附近随机散布
func (s *BossSystem) HandleExplosion(ev game.ScheduledEvent) {
	st := s.world.State.Slot(ev.Payload.Slot)
	cfg := s.world.Config.Boss(st.Name)
	spread := cfg.Explosions.Spread
	x := ev.Payload.X + s.world.randRange(-spread, spread)
	y := ev.Payload.Y + s.world.randRange(-spread, spread)
	s.world.Presenter.SpawnEffect(types.EffectExplosion, x, y, cfg.Explosions.Scale)
}

// Conclude 击破演出结束: 销毁 Boss 实体、清空引用、进入终态
// 返回 false 表示事件已过期(槽位不在 Defeating)
func (s *BossSystem) Conclude(ev game.ScheduledEvent) (types.BossSlot, bool) {
	slot := ev.Payload.Slot
	st := s.world.State.Slot(slot)
	if st.Phase != types.BossDefeating {
		return slot, false
	}
	s.world.EM.DestroyEntity(st.Entity)
	st.Entity = 0
	st.Phase = types.BossConcluded
	return slot, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
