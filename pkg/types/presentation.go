package types

// EffectKind 表现层特效种类
type EffectKind string

const (
	EffectExplosion EffectKind = "explosion"
	EffectSparkle   EffectKind = "sparkle"
	EffectHitSpark  EffectKind = "hitspark"
)

// SoundID 音效标识
type SoundID string

const (
	SoundExplosion SoundID = "explosion"
	SoundPickup    SoundID = "pickup"
	SoundHit       SoundID = "hit"
	SoundHurt      SoundID = "hurt"
	SoundWarning   SoundID = "warning"
)

// TextStyle 浮动文字样式
type TextStyle int

const (
	TextPopup   TextStyle = iota // 得分飘字,短时上浮淡出
	TextBanner                   // 屏幕中央横幅(道具名、关卡)
	TextWarning                  // Boss 警告,闪烁
	TextVictory                  // Boss 击破横幅
)
