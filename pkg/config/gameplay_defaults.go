package config

import "github.com/decker502/deepdive/pkg/types"

// 关卡与 Boss 名称
const (
	BossMegaShark = "megashark"
	BossKraken    = "kraken"
)

// DefaultGameplayConfig 返回内置默认玩法配置
// data/gameplay.yaml 与此保持一致,便于在没有内嵌资源时(测试、终端版)直接运行
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Field: FieldConfig{
			Width:                   800,
			Height:                  600,
			ProjectileRightBound:    850,
			EnemyLeftBound:          -60,
			PickupLeftBound:         -50,
			HazardLeftBound:         -30,
			HazardVerticalMargin:    30,
			EnemySpawnOffsetX:       50,
			PickupSpawnOffsetX:      30,
			PlayerMargin:            40,
			CollectibleSpawnMargin:  80,
			MineSpawnMargin:         100,
			ParallaxScrollPerSecond: 90,
		},
		Player: PlayerConfig{
			StartX:            100,
			Speed:             5,
			MaxHealth:         3,
			HitRadius:         25,
			BodyRadius:        30,
			PickupRadius:      15,
			PointerSnapRadius: 10,
			JoystickDeadzone:  0.08,
			HitFlashDuration:  0.64,
		},
		Weapons: WeaponConfig{
			FireRate:       0.2,
			MuzzleOffsetX:  40,
			BulletSpeed:    12,
			BulletRadius:   6,
			FireballSpeed:  10,
			FireballRadius: 12,
			Lanes: [][]float64{
				{0},
				{-15, 15},
				{-20, 0, 20},
			},
		},
		Companion: CompanionConfig{
			OffsetX:      -30,
			OffsetY:      -50,
			FollowRate:   0.15,
			FireInterval: 0.5,
			ShotSpeed:    11,
			ShotRadius:   5,
		},
		Enemies: map[string]EnemyArchetypeConfig{
			"jellyfish": {
				Speed: 1.5, Health: 1, Points: 50, Radius: 15,
				Motion: types.MotionBob, Pattern: types.PatternSingle, SpawnMargin: 80,
				BobAmplitude: 50, BobHalfPeriod: 1.2,
			},
			"swordfish": {
				Speed: 4, Health: 1, Points: 75, Radius: 30,
				Motion: types.MotionStraight, Pattern: types.PatternLine, SpawnMargin: 100,
				GroupMin: 3, GroupMax: 5, Spacing: 60,
			},
			"angler": {
				Speed: 1.5, Health: 1, Points: 100, Radius: 30,
				Motion: types.MotionFormation, Pattern: types.PatternFormation, SpawnMargin: 120,
				Offsets:      []Offset{{X: 0, Y: 0}, {X: 50, Y: -40}, {X: 50, Y: 40}},
				BobAmplitude: 15, BobHalfPeriod: 0.8, BobPeriodStep: 0.1,
			},
			"squid": {
				Speed: 5, Health: 1, Points: 100, Radius: 15,
				Motion: types.MotionZigzag, Pattern: types.PatternSingle, SpawnMargin: 100,
				ZigzagInterval: 0.2, ZigzagStep: 3,
			},
			"sawshark": {
				Speed: 2, Health: 1, Points: 150, Radius: 25,
				Motion: types.MotionWave, Pattern: types.PatternSingle, SpawnMargin: 100,
				WavePhaseStep: 0.05, WaveAmplitude: 80,
			},
			"fish": {
				Speed: 2.5, Health: 1, Points: 50, Radius: 18,
				Motion: types.MotionStraight, Pattern: types.PatternSingle, SpawnMargin: 80,
			},
			"fishbig": {
				Speed: 1.2, Health: 3, Points: 150, Radius: 35,
				Motion: types.MotionBob, Pattern: types.PatternSingle, SpawnMargin: 100,
				BobAmplitude: 20, BobHalfPeriod: 1.6,
			},
			"fishdart": {
				Speed: 6, Health: 1, Points: 75, Radius: 12,
				Motion: types.MotionStraight, Pattern: types.PatternLine, SpawnMargin: 100,
				GroupMin: 2, GroupMax: 3, Spacing: 50,
			},
		},
		Mines: MineConfig{
			Speed:          0.5,
			Radius:         20,
			Points:         25,
			BobAmplitude:   15,
			BobHalfPeriod:  2.0,
			RotationPeriod: 8.0,
		},
		MineField: MineFieldConfig{
			KillThreshold: 15,
			Count:         6,
			IntervalMin:   0.3,
			IntervalMax:   0.4,
		},
		Pickups: PickupConfig{
			DriftSpeed:       2,
			CollectibleValue: 50,
			Radius:           15,
			BobAmplitude:     20,
			BobHalfPeriod:    1.0,
		},
		Powerups: map[string]PowerupConfig{
			string(types.PowerupFirepower): {Duration: 10, Value: 3, Banner: "TRIPLE SHOT!"},
			string(types.PowerupSpeed):     {Duration: 8, Value: 9, Banner: "SPEED BOOST!"},
			string(types.PowerupShield):    {Duration: 6, Banner: "SHIELD!"},
			string(types.PowerupHealth):    {Value: 1, Banner: "HEALTH UP!"},
			string(types.PowerupFireball):  {Duration: 8, Banner: "FIREBALL!"},
			string(types.PowerupCompanion): {Duration: 12, Banner: "COMPANION!"},
		},
		Bosses: map[string]BossConfig{
			BossMegaShark: {
				DisplayName:      "Megalodon",
				Health:           100,
				Radius:           150,
				Points:           1000,
				WarningDuration:  3,
				EntryOffsetX:     100,
				EntryInset:       100,
				EntryDuration:    2,
				PursueRate:       0.02,
				MinY:             80,
				MaxY:             520,
				AttackInterval:   1.5,
				ContactDebounce:  1,
				ProjectileRadius: 0,
				Volley:           VolleyConfig{Angles: []float64{-15, 0, 15}, Speed: 6, OriginOffsetX: 80},
				Desperation: DesperationConfig{
					HealthBelow: 50,
					Chance:      0.4,
					Kind:        "spread",
					Volley:      VolleyConfig{Angles: []float64{-30, -15, 0, 15, 30}, Speed: 5, OriginOffsetX: 60},
				},
				Explosions:     ExplosionSequenceConfig{Count: 20, Interval: 0.05, Spread: 40, Scale: 0.7},
				DefeatShake:    ShakeConfig{Duration: 0.5, Intensity: 0.02},
				BannerDuration: 2,
				DefeatBanner:   "MEGALODON DEFEATED!\n+1000",
			},
			BossKraken: {
				DisplayName:      "Kraken",
				Health:           120,
				Radius:           100,
				Points:           2000,
				WarningDuration:  3,
				EntryOffsetX:     100,
				EntryInset:       80,
				EntryDuration:    2,
				PursueRate:       0.01,
				MinY:             80,
				MaxY:             520,
				BobAmplitude:     50,
				BobHalfPeriod:    2.5,
				AttackInterval:   1.2,
				ContactDebounce:  1,
				ProjectileRadius: 0,
				Volley:           VolleyConfig{Angles: []float64{-30, -15, 0, 15, 30}, Speed: 5, OriginOffsetX: 60},
				Desperation: DesperationConfig{
					HealthBelow:   60,
					Chance:        0.3,
					Kind:          "sweep",
					Count:         5,
					Stagger:       0.15,
					VX:            -8,
					StepVY:        2,
					OriginOffsetX: 50,
				},
				Explosions:     ExplosionSequenceConfig{Count: 30, Interval: 0.04, Spread: 60, Scale: 0.8},
				DefeatShake:    ShakeConfig{Duration: 0.8, Intensity: 0.03},
				BannerDuration: 3,
				OutroDelay:     1,
				DefeatBanner:   "KRAKEN DEFEATED!\n+2000\nYOU WIN!",
			},
		},
		Levels: []LevelConfig{
			{
				Name:       "Coral Reef",
				Archetypes: []string{"jellyfish", "swordfish", "angler", "squid", "sawshark"},
				Powerups: []types.PowerupKind{
					types.PowerupFirepower, types.PowerupSpeed, types.PowerupShield,
					types.PowerupHealth, types.PowerupFireball,
				},
				Boss:          BossMegaShark,
				BossKillCount: 25,
			},
			{
				Name:       "The Abyss",
				Archetypes: []string{"jellyfish", "squid", "sawshark", "fish", "fishbig", "fishdart"},
				Powerups: []types.PowerupKind{
					types.PowerupFirepower, types.PowerupCompanion, types.PowerupShield,
					types.PowerupHealth, types.PowerupFireball,
				},
				Boss:          BossKraken,
				BossKillCount: 25,
			},
		},
		Spawn: SpawnTimersConfig{
			Collectible: 2.5,
			Enemy:       0.7,
			Mine:        4,
			Powerup:     2.5,
		},
		Difficulty: DifficultyConfig{
			Initial:  1,
			Interval: 15,
			Step:     0.1,
			Max:      2.5,
		},
		Combo: ComboConfig{
			Window:        2,
			MaxMultiplier: 5,
		},
		Effects: EffectsConfig{
			EnemyFlashDuration: 0.1,
			BossFlashDuration:  0.1,
			BossHitShake:       ShakeConfig{Duration: 0.05, Intensity: 0.003},
			ShieldShake:        ShakeConfig{Duration: 0.1, Intensity: 0.005},
			HurtShake:          ShakeConfig{Duration: 0.2, Intensity: 0.015},
			GodModeShake:       ShakeConfig{Duration: 0.1, Intensity: 0.005},
			ExplosionScale:     0.6,
			MineExplosionScale: 0.8,
		},
		GameOverDelay: 1,
	}
}
