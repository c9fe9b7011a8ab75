package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/types"
	"github.com/decker502/deepdive/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// textOptions 文字绘制参数
type textOptions struct {
	scale float64
	align text.Align
	clr   color.Color
	alpha float64
}

// drawText 以 (x, y) 为锚点绘制文字,支持多行
func drawText(screen *ebiten.Image, face text.Face, s string, x, y float64, o textOptions) {
	if o.scale <= 0 {
		o.scale = 1
	}
	if o.clr == nil {
		o.clr = colornames.White
	}
	if o.alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(o.scale, o.scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.clr)
	op.ColorScale.ScaleAlpha(float32(o.alpha))
	op.PrimaryAlign = o.align
	op.LineSpacing = config.HUDLineHeight
	text.Draw(screen, s, face, op)
}

// textStyleOptions 各浮动文字样式的外观
func textStyleOptions(style types.TextStyle) textOptions {
	switch style {
	case types.TextPopup:
		return textOptions{scale: 1.5, align: text.AlignCenter, clr: colornames.Gold}
	case types.TextWarning:
		return textOptions{scale: 3, align: text.AlignCenter, clr: colornames.Red}
	case types.TextVictory:
		return textOptions{scale: 3, align: text.AlignCenter, clr: colornames.Gold}
	default:
		return textOptions{scale: 2, align: text.AlignCenter, clr: colornames.White}
	}
}

// drawTexts 飘字、横幅与警告,不受镜头震动影响
func (gs *GameScene) drawTexts(screen *ebiten.Image) {
	for _, t := range gs.layer.texts {
		o := textStyleOptions(t.style)
		o.alpha = t.alpha()
		lines := strings.Count(t.content, "\n") + 1
		// 多行文字以中心对齐到锚点
		y := t.y + t.offsetY(config.PopupRiseDistance) - float64(lines)*config.HUDLineHeight*o.scale/2
		drawText(screen, gs.face, t.content, t.x, y, o)
	}
}

// drawHUD 分数、连击、关卡、生命与 Boss 血条
func (gs *GameScene) drawHUD(screen *ebiten.Image) {
	state := gs.session.State()
	em := gs.session.EntityManager()

	y := config.HUDScoreY
	drawText(screen, gs.face, fmt.Sprintf("SCORE: %d", state.Score), config.HUDMarginX, y,
		textOptions{scale: 1.5, alpha: 1})
	y += config.HUDLineHeight * 1.5
	drawText(screen, gs.face, fmt.Sprintf("LEVEL %d", state.Level), config.HUDMarginX, y,
		textOptions{alpha: 1, clr: colornames.Lightskyblue})
	y += config.HUDLineHeight

	if state.Combo.Active() {
		drawText(screen, gs.face, fmt.Sprintf("COMBO x%d", state.Combo.Multiplier), config.HUDMarginX, y,
			textOptions{alpha: 1, clr: colornames.Orange})
	}

	if health, ok := ecs.GetComponent[*components.HealthComponent](em, state.PlayerID); ok {
		drawBar(screen, config.GameWindowWidth-config.HUDMarginX-config.HealthBarWidth, config.HUDScoreY,
			config.HealthBarWidth, config.HealthBarHeight, health.CurrentHealth, health.MaxHealth, colornames.Limegreen)
		drawText(screen, gs.face, "HP", config.GameWindowWidth-config.HUDMarginX-config.HealthBarWidth-24, config.HUDScoreY-2,
			textOptions{alpha: 1})
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](em, state.PlayerID); ok {
		drawText(screen, gs.face, buffSummary(player), config.GameWindowWidth-config.HUDMarginX, config.HUDScoreY+config.HUDLineHeight,
			textOptions{alpha: 1, align: text.AlignEnd, clr: colornames.Aqua})
	}

	for _, slot := range state.Bosses {
		if slot.Entity == 0 || (slot.Phase != types.BossEntering && slot.Phase != types.BossEngaged) {
			continue
		}
		health, ok := ecs.GetComponent[*components.HealthComponent](em, slot.Entity)
		if !ok {
			continue
		}
		x := (config.GameWindowWidth - config.BossBarWidth) / 2
		drawBar(screen, x, config.BossBarY, config.BossBarWidth, config.HealthBarHeight, health.CurrentHealth, health.MaxHealth, colornames.Crimson)
		name := slot.Name
		if cfg, ok := gs.session.Config().Bosses[slot.Name]; ok && cfg.DisplayName != "" {
			name = cfg.DisplayName
		}
		drawText(screen, gs.face, name, config.GameWindowWidth/2, config.BossBarY-config.HUDLineHeight,
			textOptions{alpha: 1, align: text.AlignCenter})
	}
}

// buffSummary 当前生效的增益
func buffSummary(p *components.PlayerComponent) string {
	var parts []string
	if p.Firepower > 1 {
		parts = append(parts, fmt.Sprintf("LANES %d", p.Firepower))
	}
	if p.Speed > p.BaseSpeed {
		parts = append(parts, "SPEED")
	}
	if p.ShieldActive {
		parts = append(parts, "SHIELD")
	}
	if p.FireballActive {
		parts = append(parts, "FIREBALL")
	}
	if p.Companion != 0 {
		parts = append(parts, "COMPANION")
	}
	return strings.Join(parts, "  ")
}

// drawBar 绘制带边框的比例条
func drawBar(screen *ebiten.Image, x, y, w, h float64, current, max int, fill color.RGBA) {
	ratio := 0.0
	if max > 0 {
		ratio = float64(current) / float64(max)
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colornames.Black, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*ratio), float32(h), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colornames.White, false)
}

func (gs *GameScene) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, withAlpha(colornames.Black, 0.5), false)
	drawText(screen, gs.face, "PAUSED", config.GameWindowWidth/2, config.GameWindowHeight/2-40,
		textOptions{scale: 3, align: text.AlignCenter, alpha: 1})
	drawText(screen, gs.face, "ESC / P to resume", config.GameWindowWidth/2, config.GameWindowHeight/2+10,
		textOptions{align: text.AlignCenter, alpha: 1, clr: colornames.Lightgray})
}

func drawJoystick(screen *ebiten.Image, j *utils.VirtualJoystick) {
	vector.StrokeCircle(screen, float32(j.CenterX), float32(j.CenterY), float32(j.Radius), 2, withAlpha(colornames.White, 0.5), true)
	vector.DrawFilledCircle(screen, float32(j.CenterX), float32(j.CenterY), float32(j.Radius*0.4), withAlpha(colornames.White, 0.25), true)
}
