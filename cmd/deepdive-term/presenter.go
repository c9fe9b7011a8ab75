package main

import (
	"strings"

	"github.com/decker502/deepdive/pkg/types"
)

// flare 场地上短暂显示的特效字符
type flare struct {
	x, y      float64
	glyph     rune
	remaining float64
}

// message 状态栏与场地中央的文字
type message struct {
	x, y      float64
	text      string
	style     types.TextStyle
	remaining float64
}

// termPresenter 终端版表现层
type termPresenter struct {
	sound    *soundPlayer
	flares   []flare
	messages []message
	shake    float64 // 剩余震动时间,期间边框闪烁
}

func (p *termPresenter) SpawnEffect(kind types.EffectKind, x, y, scale float64) {
	f := flare{x: x, y: y, glyph: '+', remaining: 0.2}
	switch kind {
	case types.EffectExplosion:
		f.glyph, f.remaining = '*', 0.4
	case types.EffectSparkle:
		f.glyph, f.remaining = '\'', 0.3
	}
	p.flares = append(p.flares, f)
}

func (p *termPresenter) PlaySound(id types.SoundID) {
	if p.sound != nil {
		p.sound.play(id)
	}
}

func (p *termPresenter) ShakeCamera(duration, intensity float64) {
	if duration > p.shake {
		p.shake = duration
	}
}

func (p *termPresenter) ShowText(x, y float64, content string, style types.TextStyle) {
	life := 1.5
	switch style {
	case types.TextPopup:
		life = 0.6
	case types.TextWarning, types.TextVictory:
		life = 3
	}
	// 终端一行放不下换行,合并成一行
	content = strings.ReplaceAll(content, "\n", " - ")
	p.messages = append(p.messages, message{x: x, y: y, text: content, style: style, remaining: life})
}

// update 推进特效计时
func (p *termPresenter) update(dt float64) {
	flares := p.flares[:0]
	for _, f := range p.flares {
		f.remaining -= dt
		if f.remaining > 0 {
			flares = append(flares, f)
		}
	}
	p.flares = flares

	messages := p.messages[:0]
	for _, m := range p.messages {
		m.remaining -= dt
		if m.remaining > 0 {
			messages = append(messages, m)
		}
	}
	p.messages = messages

	if p.shake > 0 {
		p.shake -= dt
	}
}

// banner 当前应显示在场地中央的横幅(最新的非飘字消息)
func (p *termPresenter) banner() (message, bool) {
	for i := len(p.messages) - 1; i >= 0; i-- {
		if p.messages[i].style != types.TextPopup {
			return p.messages[i], true
		}
	}
	return message{}, false
}

func (p *termPresenter) reset() {
	p.flares = nil
	p.messages = nil
	p.shake = 0
}
