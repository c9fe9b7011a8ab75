package config

import (
	"fmt"
	"os"

	"github.com/decker502/deepdive/pkg/embedded"
	"github.com/decker502/deepdive/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultGameplayConfigPath 内嵌默认玩法配置的路径
const DefaultGameplayConfigPath = "data/gameplay.yaml"

// GameplayConfig 玩法调参总表
//
// 时间类字段统一以秒为单位;速度类字段以 60fps 下的像素/帧为单位。
type GameplayConfig struct {
	Field      FieldConfig                     `yaml:"field"`
	Player     PlayerConfig                    `yaml:"player"`
	Weapons    WeaponConfig                    `yaml:"weapons"`
	Companion  CompanionConfig                 `yaml:"companion"`
	Enemies    map[string]EnemyArchetypeConfig `yaml:"enemies"`
	Mines      MineConfig                      `yaml:"mines"`
	MineField  MineFieldConfig                 `yaml:"mineField"`
	Pickups    PickupConfig                    `yaml:"pickups"`
	Powerups   map[string]PowerupConfig        `yaml:"powerups"`
	Bosses     map[string]BossConfig           `yaml:"bosses"`
	Levels     []LevelConfig                   `yaml:"levels"`
	Spawn      SpawnTimersConfig               `yaml:"spawn"`
	Difficulty DifficultyConfig                `yaml:"difficulty"`
	Combo      ComboConfig                     `yaml:"combo"`
	Effects    EffectsConfig                   `yaml:"effects"`

	// GameOverDelay 生命归零到结束本局的延迟(淡出)
	GameOverDelay float64 `yaml:"gameOverDelay"`
}

// FieldConfig 场地尺寸与各类出界边界
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	ProjectileRightBound    float64 `yaml:"projectileRightBound"`    // 玩家弹药 x 超出即移除
	EnemyLeftBound          float64 `yaml:"enemyLeftBound"`          // 敌人 x 低于即移除
	PickupLeftBound         float64 `yaml:"pickupLeftBound"`         // 拾取物/水雷 x 低于即移除
	HazardLeftBound         float64 `yaml:"hazardLeftBound"`         // Boss 弹幕左边界
	HazardVerticalMargin    float64 `yaml:"hazardVerticalMargin"`    // Boss 弹幕上下越界余量
	EnemySpawnOffsetX       float64 `yaml:"enemySpawnOffsetX"`       // 敌人在右边界外的生成距离
	PickupSpawnOffsetX      float64 `yaml:"pickupSpawnOffsetX"`      // 拾取物/水雷生成距离
	PlayerMargin            float64 `yaml:"playerMargin"`            // 玩家活动范围的边距
	CollectibleSpawnMargin  float64 `yaml:"collectibleSpawnMargin"`  // 拾取物生成的纵向边距
	MineSpawnMargin         float64 `yaml:"mineSpawnMargin"`         // 水雷生成的纵向边距
	ParallaxScrollPerSecond float64 `yaml:"parallaxScrollPerSecond"` // 背景滚动速度基准
}

// PlayerConfig 玩家属性
type PlayerConfig struct {
	StartX            float64 `yaml:"startX"`
	Speed             float64 `yaml:"speed"`
	MaxHealth         int     `yaml:"maxHealth"`
	HitRadius         float64 `yaml:"hitRadius"`         // 与敌人、Boss 弹幕的接触半径
	BodyRadius        float64 `yaml:"bodyRadius"`        // 与水雷、Boss 身体的接触半径(护盾大小)
	PickupRadius      float64 `yaml:"pickupRadius"`      // 拾取半径
	PointerSnapRadius float64 `yaml:"pointerSnapRadius"` // 拖拽目标到达判定
	JoystickDeadzone  float64 `yaml:"joystickDeadzone"`
	HitFlashDuration  float64 `yaml:"hitFlashDuration"`
}

// WeaponConfig 主武器
type WeaponConfig struct {
	FireRate       float64     `yaml:"fireRate"` // 两次开火的最小间隔
	MuzzleOffsetX  float64     `yaml:"muzzleOffsetX"`
	BulletSpeed    float64     `yaml:"bulletSpeed"`
	BulletRadius   float64     `yaml:"bulletRadius"`
	FireballSpeed  float64     `yaml:"fireballSpeed"`
	FireballRadius float64     `yaml:"fireballRadius"`
	Lanes          [][]float64 `yaml:"lanes"` // 按弹道层级(1 起)给出纵向偏移
}

// CompanionConfig 僚机
type CompanionConfig struct {
	OffsetX      float64 `yaml:"offsetX"`
	OffsetY      float64 `yaml:"offsetY"`
	FollowRate   float64 `yaml:"followRate"` // 每帧向目标位置靠拢的比例
	FireInterval float64 `yaml:"fireInterval"`
	ShotSpeed    float64 `yaml:"shotSpeed"`
	ShotRadius   float64 `yaml:"shotRadius"`
}

// Offset 二维偏移
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EnemyArchetypeConfig 敌人原型
type EnemyArchetypeConfig struct {
	Speed       float64            `yaml:"speed"`
	Health      int                `yaml:"health"`
	Points      int                `yaml:"points"`
	Radius      float64            `yaml:"radius"`
	Motion      types.MotionModel  `yaml:"motion"`
	Pattern     types.SpawnPattern `yaml:"pattern"`
	SpawnMargin float64            `yaml:"spawnMargin"` // 生成纵坐标距上下边界的最小距离

	// line 图案
	GroupMin int     `yaml:"groupMin"`
	GroupMax int     `yaml:"groupMax"`
	Spacing  float64 `yaml:"spacing"`

	// formation 图案
	Offsets []Offset `yaml:"offsets"`

	// bob / formation: 摆幅上限与半周期,formation 每个成员的半周期额外增加 index*BobPeriodStep
	BobAmplitude  float64 `yaml:"bobAmplitude"`
	BobHalfPeriod float64 `yaml:"bobHalfPeriod"`
	BobPeriodStep float64 `yaml:"bobPeriodStep"`

	// zigzag
	ZigzagInterval float64 `yaml:"zigzagInterval"`
	ZigzagStep     float64 `yaml:"zigzagStep"`

	// wave
	WavePhaseStep float64 `yaml:"wavePhaseStep"`
	WaveAmplitude float64 `yaml:"waveAmplitude"`
}

// MineConfig 水雷
type MineConfig struct {
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	Points         int     `yaml:"points"`
	BobAmplitude   float64 `yaml:"bobAmplitude"`
	BobHalfPeriod  float64 `yaml:"bobHalfPeriod"`
	RotationPeriod float64 `yaml:"rotationPeriod"`
}

// MineFieldConfig 雷区爆发: 每关一次,击杀数达到阈值时分批投放
type MineFieldConfig struct {
	KillThreshold int     `yaml:"killThreshold"`
	Count         int     `yaml:"count"`
	IntervalMin   float64 `yaml:"intervalMin"`
	IntervalMax   float64 `yaml:"intervalMax"`
}

// PickupConfig 拾取物(金币与道具共享漂移参数)
type PickupConfig struct {
	DriftSpeed       float64 `yaml:"driftSpeed"`
	CollectibleValue int     `yaml:"collectibleValue"`
	Radius           float64 `yaml:"radius"`
	BobAmplitude     float64 `yaml:"bobAmplitude"`
	BobHalfPeriod    float64 `yaml:"bobHalfPeriod"`
}

// PowerupConfig 道具效果参数
type PowerupConfig struct {
	Duration float64 `yaml:"duration"` // 限时增益的持续时间
	Value    float64 `yaml:"value"`    // firepower: 层级; speed: 加速后速度; health: 回复量
	Banner   string  `yaml:"banner"`   // 拾取时显示的横幅
}

// VolleyConfig 一次扇形齐射
type VolleyConfig struct {
	Angles        []float64 `yaml:"angles"` // 相对正左方的角度(度),正值向下
	Speed         float64   `yaml:"speed"`
	OriginOffsetX float64   `yaml:"originOffsetX"`
}

// DesperationConfig 低血量时的概率追加攻击
type DesperationConfig struct {
	HealthBelow int     `yaml:"healthBelow"`
	Chance      float64 `yaml:"chance"`
	Kind        string  `yaml:"kind"` // "spread" 或 "sweep"

	// spread
	Volley VolleyConfig `yaml:"volley"`

	// sweep: Count 发,间隔 Stagger 秒,速度 (VX, (i-mid)*StepVY)
	Count         int     `yaml:"count"`
	Stagger       float64 `yaml:"stagger"`
	VX            float64 `yaml:"vx"`
	StepVY        float64 `yaml:"stepVY"`
	OriginOffsetX float64 `yaml:"originOffsetX"`
}

// ExplosionSequenceConfig 击破时的连环爆炸
type ExplosionSequenceConfig struct {
	Count    int     `yaml:"count"`
	Interval float64 `yaml:"interval"`
	Spread   float64 `yaml:"spread"`
	Scale    float64 `yaml:"scale"`
}

// ShakeConfig 镜头震动
type ShakeConfig struct {
	Duration  float64 `yaml:"duration"`
	Intensity float64 `yaml:"intensity"`
}

// BossConfig Boss 参数
type BossConfig struct {
	DisplayName      string  `yaml:"displayName"`
	Health           int     `yaml:"health"`
	Radius           float64 `yaml:"radius"`
	Points           int     `yaml:"points"`
	WarningDuration  float64 `yaml:"warningDuration"`
	EntryOffsetX     float64 `yaml:"entryOffsetX"` // 生成于 width + EntryOffsetX
	EntryInset       float64 `yaml:"entryInset"`   // 入场终点 width - EntryInset
	EntryDuration    float64 `yaml:"entryDuration"`
	PursueRate       float64 `yaml:"pursueRate"` // 每帧向玩家 y 靠拢的比例
	MinY             float64 `yaml:"minY"`
	MaxY             float64 `yaml:"maxY"`
	BobAmplitude     float64 `yaml:"bobAmplitude"`
	BobHalfPeriod    float64 `yaml:"bobHalfPeriod"`
	AttackInterval   float64 `yaml:"attackInterval"`
	ContactDebounce  float64 `yaml:"contactDebounce"`
	ProjectileRadius float64 `yaml:"projectileRadius"`

	Volley      VolleyConfig            `yaml:"volley"`
	Desperation DesperationConfig       `yaml:"desperation"`
	Explosions  ExplosionSequenceConfig `yaml:"explosions"`
	DefeatShake ShakeConfig             `yaml:"defeatShake"`

	// BannerDuration 击破横幅时长,之后进入下一关(或再等 OutroDelay 后结束本局)
	BannerDuration float64 `yaml:"bannerDuration"`
	OutroDelay     float64 `yaml:"outroDelay"`
	DefeatBanner   string  `yaml:"defeatBanner"`
}

// LevelConfig 关卡
type LevelConfig struct {
	Name          string              `yaml:"name"`
	Archetypes    []string            `yaml:"archetypes"`
	Powerups      []types.PowerupKind `yaml:"powerups"`
	Boss          string              `yaml:"boss"`
	BossKillCount int                 `yaml:"bossKillCount"`
}

// SpawnTimersConfig 各类生成的固定间隔
type SpawnTimersConfig struct {
	Collectible float64 `yaml:"collectible"`
	Enemy       float64 `yaml:"enemy"`
	Mine        float64 `yaml:"mine"`
	Powerup     float64 `yaml:"powerup"`
}

// DifficultyConfig 全局速度倍率爬升
type DifficultyConfig struct {
	Initial  float64 `yaml:"initial"`
	Interval float64 `yaml:"interval"`
	Step     float64 `yaml:"step"`
	Max      float64 `yaml:"max"`
}

// ComboConfig 连击
type ComboConfig struct {
	Window        float64 `yaml:"window"`
	MaxMultiplier int     `yaml:"maxMultiplier"`
}

// EffectsConfig 受击反馈参数
type EffectsConfig struct {
	EnemyFlashDuration float64     `yaml:"enemyFlashDuration"`
	BossFlashDuration  float64     `yaml:"bossFlashDuration"`
	BossHitShake       ShakeConfig `yaml:"bossHitShake"`
	ShieldShake        ShakeConfig `yaml:"shieldShake"`
	HurtShake          ShakeConfig `yaml:"hurtShake"`
	GodModeShake       ShakeConfig `yaml:"godModeShake"`
	ExplosionScale     float64     `yaml:"explosionScale"`
	MineExplosionScale float64     `yaml:"mineExplosionScale"`
}

// LoadGameplayConfig 从文件系统加载玩法配置
// 参数：
//
//	path - 配置文件路径
//
// 返回：
//
//	*GameplayConfig - 以默认值为底、文件内容覆盖后的配置
//	error - 读取、解析或校验失败
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", path, err)
	}
	cfg, err := ParseGameplayConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid gameplay config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEmbeddedGameplayConfig 加载内嵌的默认玩法配置
// embedded 包未初始化时直接返回代码内置默认值
func LoadEmbeddedGameplayConfig() (*GameplayConfig, error) {
	if !embedded.IsInitialized() {
		return DefaultGameplayConfig(), nil
	}
	data, err := embedded.ReadFile(DefaultGameplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", DefaultGameplayConfigPath, err)
	}
	cfg, err := ParseGameplayConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid gameplay config %s: %w", DefaultGameplayConfigPath, err)
	}
	return cfg, nil
}

// ParseGameplayConfig 解析 YAML 并覆盖到默认配置上
//
// map 类字段(enemies/powerups/bosses)按键合并;levels 列表整体替换。
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay YAML: %w", err)
	}
	if err := validateGameplayConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Archetype 获取敌人原型,未知名称属于编程错误
func (c *GameplayConfig) Archetype(name string) EnemyArchetypeConfig {
	arch, ok := c.Enemies[name]
	if !ok {
		panic(fmt.Sprintf("unknown enemy archetype %q", name))
	}
	return arch
}

// Powerup 获取道具参数,未知种类属于编程错误
func (c *GameplayConfig) Powerup(kind types.PowerupKind) PowerupConfig {
	p, ok := c.Powerups[string(kind)]
	if !ok {
		panic(fmt.Sprintf("unknown powerup kind %q", kind))
	}
	return p
}

// Boss 获取 Boss 参数
func (c *GameplayConfig) Boss(name string) BossConfig {
	b, ok := c.Bosses[name]
	if !ok {
		panic(fmt.Sprintf("unknown boss %q", name))
	}
	return b
}

// Level 获取关卡配置,超出范围时夹到最后一关
func (c *GameplayConfig) Level(index int) LevelConfig {
	if index < 1 {
		index = 1
	}
	if index > len(c.Levels) {
		index = len(c.Levels)
	}
	return c.Levels[index-1]
}

// LaneOffsets 返回某一弹道层级的纵向偏移,层级被夹在可用范围内
func (c *GameplayConfig) LaneOffsets(tier int) []float64 {
	if tier < 1 {
		tier = 1
	}
	if tier > len(c.Weapons.Lanes) {
		tier = len(c.Weapons.Lanes)
	}
	return c.Weapons.Lanes[tier-1]
}
