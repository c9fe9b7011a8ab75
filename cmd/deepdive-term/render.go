package main

import (
	"fmt"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/session"
	"github.com/decker502/deepdive/pkg/types"
	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleShield  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	styleHazard  = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleGold    = tcell.StyleDefault.Foreground(tcell.ColorGold)
	stylePowerup = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleMine    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorNavy)
	styleShake   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// enemyGlyphs 各原型的显示字符,未列出的用原型名首字母
var enemyGlyphs = map[string]rune{
	"jellyfish": 'j',
	"swordfish": '<',
	"angler":    'A',
	"squid":     'S',
	"sawshark":  'W',
}

var powerupGlyphs = map[types.PowerupKind]rune{
	types.PowerupFirepower: '3',
	types.PowerupSpeed:     '>',
	types.PowerupShield:    'O',
	types.PowerupHealth:    '+',
	types.PowerupFireball:  '@',
	types.PowerupCompanion: 'c',
}

func enemyGlyph(archetype string) rune {
	if g, ok := enemyGlyphs[archetype]; ok {
		return g
	}
	for _, r := range archetype {
		return r
	}
	return 'e'
}

// putText 在 (col, row) 处写一行文字
func putText(s tcell.Screen, col, row int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(col, row, r, nil, style)
		col++
	}
}

// putCentered 以 col 为中心写一行文字
func putCentered(s tcell.Screen, col, row int, text string, style tcell.Style) {
	putText(s, col-len([]rune(text))/2, row, text, style)
}

// drawFrame 绘制一帧
func drawFrame(s tcell.Screen, v viewport, sess *session.Session, p *termPresenter) {
	s.Clear()
	state := sess.State()
	em := sess.EntityManager()

	plot := func(x, y float64, r rune, style tcell.Style) {
		if col, row, ok := v.toCell(x, y); ok {
			s.SetContent(col, row, r, nil, style)
		}
	}
	plotDisc := func(x, y, radius float64, r rune, style tcell.Style) {
		cr := v.cellRadius(radius)
		col, row, _ := v.toCell(x, y)
		for dy := -cr / 2; dy <= cr/2; dy++ {
			for dx := -cr; dx <= cr; dx++ {
				// 格子约为 1:2 的长方形,纵向半径减半
				if dx*dx+4*dy*dy > cr*cr {
					continue
				}
				c, rr := col+dx, row+dy
				if c >= 0 && c < v.cols && rr >= hudRows && rr < hudRows+v.playRows() {
					s.SetContent(c, rr, r, nil, style)
				}
			}
		}
	}

	border := styleBorder
	if p.shake > 0 {
		border = styleShake
	}
	for c := 0; c < v.cols; c++ {
		s.SetContent(c, hudRows-1, '~', nil, border)
		s.SetContent(c, hudRows+v.playRows(), '~', nil, border)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.CollectibleComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		plot(pos.X, pos.Y, '$', styleGold)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.PowerupComponent, *components.PositionComponent](em) {
		pu, _ := ecs.GetComponent[*components.PowerupComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		g, ok := powerupGlyphs[pu.Kind]
		if !ok {
			g = '?'
		}
		plot(pos.X, pos.Y, g, stylePowerup)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.MineComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		plot(pos.X, pos.Y, '*', styleMine)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		plot(pos.X, pos.Y, enemyGlyph(enemy.Archetype), styleEnemy)
	}
	for _, id := range ecs.GetEntitiesWith3[*components.BossComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		plotDisc(pos.X, pos.Y, col.Radius, '#', styleBoss)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.BossProjectileComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		plot(pos.X, pos.Y, 'o', styleHazard)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		g := '-'
		if proj.Kind == components.ProjectileFireball {
			g = '@'
		}
		plot(pos.X, pos.Y, g, styleShot)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.CompanionComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		plot(pos.X, pos.Y, 'c', stylePlayer)
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, state.PlayerID); ok {
		style := stylePlayer
		if player, ok := ecs.GetComponent[*components.PlayerComponent](em, state.PlayerID); ok && player.ShieldActive {
			style = styleShield
		}
		plot(pos.X, pos.Y, '>', style)
	}

	for _, f := range p.flares {
		plot(f.x, f.y, f.glyph, styleHazard)
	}
	for _, m := range p.messages {
		if m.style == types.TextPopup {
			plot(m.x, m.y, '+', styleGold)
		}
	}

	drawHUD(s, v, sess)
	if m, ok := p.banner(); ok {
		style := styleBanner
		if m.style == types.TextWarning {
			style = styleWarning
		}
		putCentered(s, v.cols/2, hudRows+v.playRows()/2, " "+m.text+" ", style)
	}
	if state.Paused {
		putCentered(s, v.cols/2, hudRows+v.playRows()/2+2, " PAUSED - P to resume ", styleBanner)
	}
	s.Show()
}

// hudLine HUD 第一行
func hudLine(state *game.GameState, health, maxHealth int) string {
	line := fmt.Sprintf("SCORE %d  LEVEL %d  HP %d/%d", state.Score, state.Level, health, maxHealth)
	if state.Combo.Active() {
		line += fmt.Sprintf("  COMBO x%d", state.Combo.Multiplier)
	}
	return line
}

func drawHUD(s tcell.Screen, v viewport, sess *session.Session) {
	state := sess.State()
	em := sess.EntityManager()
	health, maxHealth := 0, 0
	if h, ok := ecs.GetComponent[*components.HealthComponent](em, state.PlayerID); ok {
		health, maxHealth = h.CurrentHealth, h.MaxHealth
	}
	putText(s, 1, 0, hudLine(state, health, maxHealth), styleHUD)

	for _, slot := range state.Bosses {
		if slot.Phase != types.BossEngaged && slot.Phase != types.BossEntering {
			continue
		}
		if h, ok := ecs.GetComponent[*components.HealthComponent](em, slot.Entity); ok {
			putText(s, v.cols-24, 0, fmt.Sprintf("BOSS %3d/%3d", h.CurrentHealth, h.MaxHealth), styleBoss)
		}
	}

	putText(s, 1, hudRows+v.playRows()+1, "WASD/arrows move  SPACE fire  F auto-fire  P pause  Q quit", styleDefault)
}

// drawResult 结算画面
func drawResult(s tcell.Screen, v viewport, result game.RunResult) {
	s.Clear()
	title := "GAME OVER"
	if result.Victory {
		title = "VICTORY!"
	}
	mid := v.rows / 2
	putCentered(s, v.cols/2, mid-2, title, styleWarning)
	putCentered(s, v.cols/2, mid, fmt.Sprintf("SCORE %d", result.Score), styleHUD)
	best := fmt.Sprintf("BEST %d", result.BestScore)
	if result.NewBest {
		best = "NEW BEST! " + best
	}
	putCentered(s, v.cols/2, mid+1, best, styleGold)
	putCentered(s, v.cols/2, mid+3, "R to dive again, Q to quit", styleDefault)
	s.Show()
}
