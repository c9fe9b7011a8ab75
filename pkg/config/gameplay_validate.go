package config

import (
	"fmt"

	"github.com/decker502/deepdive/pkg/types"
)

// validateGameplayConfig 验证玩法配置的完整性和合法性
// 关卡引用的原型、道具种类和 Boss 必须全部存在,运行期不再做存在性检查
func validateGameplayConfig(cfg *GameplayConfig) error {
	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %.0fx%.0f", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Field.PlayerMargin*2 >= cfg.Field.Width || cfg.Field.PlayerMargin*2 >= cfg.Field.Height {
		return fmt.Errorf("playerMargin %.0f leaves no room on a %.0fx%.0f field",
			cfg.Field.PlayerMargin, cfg.Field.Width, cfg.Field.Height)
	}

	if cfg.Player.MaxHealth < 1 {
		return fmt.Errorf("player: maxHealth must be at least 1, got %d", cfg.Player.MaxHealth)
	}
	if cfg.Player.Speed <= 0 {
		return fmt.Errorf("player: speed must be positive, got %f", cfg.Player.Speed)
	}

	if cfg.Weapons.FireRate <= 0 {
		return fmt.Errorf("weapons: fireRate must be positive, got %f", cfg.Weapons.FireRate)
	}
	if len(cfg.Weapons.Lanes) == 0 {
		return fmt.Errorf("weapons: at least one lane tier is required")
	}
	for i, lane := range cfg.Weapons.Lanes {
		if len(lane) == 0 {
			return fmt.Errorf("weapons: lane tier %d is empty", i+1)
		}
	}

	for name, arch := range cfg.Enemies {
		if err := validateArchetype(name, arch); err != nil {
			return err
		}
	}

	for name, p := range cfg.Powerups {
		kind := types.PowerupKind(name)
		if !kind.Valid() {
			return fmt.Errorf("powerup %s: unknown kind", name)
		}
		if kind.Timed() && p.Duration <= 0 {
			return fmt.Errorf("powerup %s: duration must be positive, got %f", name, p.Duration)
		}
	}

	for name, boss := range cfg.Bosses {
		if err := validateBoss(name, boss); err != nil {
			return err
		}
	}

	if len(cfg.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	if len(cfg.Levels) > types.BossSlotCount {
		return fmt.Errorf("at most %d levels are supported, got %d", types.BossSlotCount, len(cfg.Levels))
	}
	for i, level := range cfg.Levels {
		if len(level.Archetypes) == 0 {
			return fmt.Errorf("level %d: at least one archetype is required", i+1)
		}
		for _, name := range level.Archetypes {
			if _, ok := cfg.Enemies[name]; !ok {
				return fmt.Errorf("level %d: unknown archetype %q", i+1, name)
			}
		}
		for _, kind := range level.Powerups {
			if !kind.Valid() {
				return fmt.Errorf("level %d: unknown powerup kind %q", i+1, kind)
			}
			if _, ok := cfg.Powerups[string(kind)]; !ok {
				return fmt.Errorf("level %d: powerup %q has no parameters", i+1, kind)
			}
		}
		if _, ok := cfg.Bosses[level.Boss]; !ok {
			return fmt.Errorf("level %d: unknown boss %q", i+1, level.Boss)
		}
		if level.BossKillCount < 1 {
			return fmt.Errorf("level %d: bossKillCount must be at least 1, got %d", i+1, level.BossKillCount)
		}
		if cfg.MineField.Count > 0 && cfg.MineField.KillThreshold >= level.BossKillCount {
			return fmt.Errorf("level %d: mineField.killThreshold %d must be below bossKillCount %d",
				i+1, cfg.MineField.KillThreshold, level.BossKillCount)
		}
	}

	if cfg.MineField.IntervalMax < cfg.MineField.IntervalMin {
		return fmt.Errorf("mineField: intervalMax %f below intervalMin %f", cfg.MineField.IntervalMax, cfg.MineField.IntervalMin)
	}

	timers := map[string]float64{
		"collectible": cfg.Spawn.Collectible,
		"enemy":       cfg.Spawn.Enemy,
		"mine":        cfg.Spawn.Mine,
		"powerup":     cfg.Spawn.Powerup,
		"difficulty":  cfg.Difficulty.Interval,
	}
	for name, interval := range timers {
		if interval <= 0 {
			return fmt.Errorf("spawn timer %s must be positive, got %f", name, interval)
		}
	}
	if cfg.Difficulty.Max < cfg.Difficulty.Initial {
		return fmt.Errorf("difficulty: max %f below initial %f", cfg.Difficulty.Max, cfg.Difficulty.Initial)
	}

	if cfg.Combo.Window <= 0 {
		return fmt.Errorf("combo: window must be positive, got %f", cfg.Combo.Window)
	}
	if cfg.Combo.MaxMultiplier < 1 {
		return fmt.Errorf("combo: maxMultiplier must be at least 1, got %d", cfg.Combo.MaxMultiplier)
	}

	return nil
}

func validateArchetype(name string, arch EnemyArchetypeConfig) error {
	if !arch.Motion.Valid() {
		return fmt.Errorf("enemy %s: unknown motion model %q", name, arch.Motion)
	}
	if !arch.Pattern.Valid() {
		return fmt.Errorf("enemy %s: unknown spawn pattern %q", name, arch.Pattern)
	}
	if arch.Health < 1 {
		return fmt.Errorf("enemy %s: health must be at least 1, got %d", name, arch.Health)
	}
	if arch.Radius <= 0 {
		return fmt.Errorf("enemy %s: radius must be positive, got %f", name, arch.Radius)
	}
	if arch.Points < 0 {
		return fmt.Errorf("enemy %s: points cannot be negative, got %d", name, arch.Points)
	}
	switch arch.Pattern {
	case types.PatternLine:
		if arch.GroupMin < 1 || arch.GroupMax < arch.GroupMin {
			return fmt.Errorf("enemy %s: invalid group size range [%d, %d]", name, arch.GroupMin, arch.GroupMax)
		}
	case types.PatternFormation:
		if len(arch.Offsets) == 0 {
			return fmt.Errorf("enemy %s: formation requires offsets", name)
		}
	}
	switch arch.Motion {
	case types.MotionBob, types.MotionFormation:
		if arch.BobHalfPeriod <= 0 {
			return fmt.Errorf("enemy %s: bobHalfPeriod must be positive, got %f", name, arch.BobHalfPeriod)
		}
	case types.MotionZigzag:
		if arch.ZigzagInterval <= 0 {
			return fmt.Errorf("enemy %s: zigzagInterval must be positive, got %f", name, arch.ZigzagInterval)
		}
	}
	return nil
}

func validateBoss(name string, boss BossConfig) error {
	if boss.Health < 1 {
		return fmt.Errorf("boss %s: health must be at least 1, got %d", name, boss.Health)
	}
	if boss.AttackInterval <= 0 {
		return fmt.Errorf("boss %s: attackInterval must be positive, got %f", name, boss.AttackInterval)
	}
	if boss.EntryDuration <= 0 {
		return fmt.Errorf("boss %s: entryDuration must be positive, got %f", name, boss.EntryDuration)
	}
	if boss.MaxY < boss.MinY {
		return fmt.Errorf("boss %s: maxY %f below minY %f", name, boss.MaxY, boss.MinY)
	}
	if len(boss.Volley.Angles) == 0 {
		return fmt.Errorf("boss %s: volley requires at least one angle", name)
	}
	d := boss.Desperation
	switch d.Kind {
	case "":
		if d.Chance > 0 || d.HealthBelow > 0 {
			return fmt.Errorf("boss %s: desperation kind required when chance or healthBelow is set", name)
		}
	case "spread":
		if len(d.Volley.Angles) == 0 {
			return fmt.Errorf("boss %s: spread desperation requires at least one angle", name)
		}
	case "sweep":
		if d.Count < 1 {
			return fmt.Errorf("boss %s: sweep desperation count must be at least 1, got %d", name, d.Count)
		}
	default:
		return fmt.Errorf("boss %s: unknown desperation kind %q", name, d.Kind)
	}
	if d.Chance < 0 || d.Chance > 1 {
		return fmt.Errorf("boss %s: desperation chance must be within [0, 1], got %f", name, d.Chance)
	}
	return nil
}
