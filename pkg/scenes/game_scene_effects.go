package scenes

import (
	"math"

	"github.com/decker502/deepdive/pkg/types"
)

// 特效与浮动文字的时长(秒)
const (
	explosionLifetime = 0.5
	sparkleLifetime   = 0.4
	hitSparkLifetime  = 0.2

	popupLifetime   = 0.8
	bannerLifetime  = 1.5
	warningLifetime = 3.0
	victoryLifetime = 3.0

	// warningBlinkPeriod 警告文字的闪烁周期
	warningBlinkPeriod = 0.5
)

// effect 一次性视觉特效
type effect struct {
	kind    types.EffectKind
	x, y    float64
	scale   float64
	elapsed float64
	life    float64
}

// progress 播放进度 0~1
func (e *effect) progress() float64 {
	if e.life <= 0 {
		return 1
	}
	return math.Min(e.elapsed/e.life, 1)
}

// floatingText 飘字、横幅与警告
type floatingText struct {
	x, y    float64
	content string
	style   types.TextStyle
	elapsed float64
	life    float64
}

// offsetY 飘字的上浮量,其它样式原地不动
func (t *floatingText) offsetY(rise float64) float64 {
	if t.style != types.TextPopup || t.life <= 0 {
		return 0
	}
	return -rise * math.Min(t.elapsed/t.life, 1)
}

// alpha 当前透明度
func (t *floatingText) alpha() float64 {
	if t.life <= 0 {
		return 0
	}
	p := math.Min(t.elapsed/t.life, 1)
	switch t.style {
	case types.TextPopup:
		return 1 - p
	case types.TextWarning:
		// 前后两半周期交替显隐
		if math.Mod(t.elapsed, warningBlinkPeriod) < warningBlinkPeriod/2 {
			return 1
		}
		return 0.25
	default:
		// 横幅在最后 20% 时间内淡出
		if p < 0.8 {
			return 1
		}
		return (1 - p) / 0.2
	}
}

func effectLifetime(kind types.EffectKind) float64 {
	switch kind {
	case types.EffectExplosion:
		return explosionLifetime
	case types.EffectSparkle:
		return sparkleLifetime
	default:
		return hitSparkLifetime
	}
}

func textLifetime(style types.TextStyle) float64 {
	switch style {
	case types.TextPopup:
		return popupLifetime
	case types.TextWarning:
		return warningLifetime
	case types.TextVictory:
		return victoryLifetime
	default:
		return bannerLifetime
	}
}

// cameraShake 镜头震动,强度为屏幕宽度的比例
type cameraShake struct {
	remaining float64
	intensity float64
	phase     float64
}

// start 新的震动只会加强或延长当前震动
func (c *cameraShake) start(duration, intensity float64) {
	if c.remaining <= 0 || intensity > c.intensity {
		c.intensity = intensity
	}
	if duration > c.remaining {
		c.remaining = duration
	}
}

func (c *cameraShake) update(dt float64) {
	if c.remaining <= 0 {
		return
	}
	c.remaining -= dt
	c.phase += dt
	if c.remaining <= 0 {
		c.remaining = 0
		c.intensity = 0
	}
}

// offset 当前帧的画面偏移(像素)
func (c *cameraShake) offset(screenWidth float64) (float64, float64) {
	if c.remaining <= 0 {
		return 0, 0
	}
	amp := c.intensity * screenWidth
	return amp * math.Sin(c.phase*90), amp * math.Cos(c.phase*73)
}

// effectLayer 表现层的短生命周期对象
type effectLayer struct {
	effects []*effect
	texts   []*floatingText
	shake   cameraShake
}

func (l *effectLayer) spawnEffect(kind types.EffectKind, x, y, scale float64) {
	l.effects = append(l.effects, &effect{kind: kind, x: x, y: y, scale: scale, life: effectLifetime(kind)})
}

// showText 横幅/警告/胜利文字同一时刻只保留最新一条
func (l *effectLayer) showText(x, y float64, content string, style types.TextStyle) {
	if style != types.TextPopup {
		kept := l.texts[:0]
		for _, t := range l.texts {
			if t.style == types.TextPopup || t.y != y {
				kept = append(kept, t)
			}
		}
		l.texts = kept
	}
	l.texts = append(l.texts, &floatingText{x: x, y: y, content: content, style: style, life: textLifetime(style)})
}

// update 推进所有特效并移除已结束的
func (l *effectLayer) update(dt float64) {
	effects := l.effects[:0]
	for _, e := range l.effects {
		e.elapsed += dt
		if e.elapsed < e.life {
			effects = append(effects, e)
		}
	}
	l.effects = effects

	texts := l.texts[:0]
	for _, t := range l.texts {
		t.elapsed += dt
		if t.elapsed < t.life {
			texts = append(texts, t)
		}
	}
	l.texts = texts

	l.shake.update(dt)
}

func (l *effectLayer) clear() {
	l.effects = nil
	l.texts = nil
	l.shake = cameraShake{}
}
