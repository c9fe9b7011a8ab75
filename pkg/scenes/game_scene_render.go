package scenes

import (
	"image/color"
	"math"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// 视差层: 每层的滚动系数与装饰物间距
var parallaxLayers = []struct {
	factor  float64
	spacing float64
	radius  float32
	clr     color.RGBA
}{
	{factor: 0.2, spacing: 160, radius: 3, clr: colornames.Steelblue},
	{factor: 0.5, spacing: 110, radius: 2, clr: colornames.Lightsteelblue},
}

// enemyColors 各敌人原型的配色,未列出的使用默认色
var enemyColors = map[string]color.RGBA{
	"jellyfish": colornames.Violet,
	"swordfish": colornames.Silver,
	"angler":    colornames.Darkorange,
	"squid":     colornames.Plum,
	"sawshark":  colornames.Slategray,
	"fish":      colornames.Salmon,
	"fishbig":   colornames.Tomato,
	"fishdart":  colornames.Yellowgreen,
}

var powerupColors = map[types.PowerupKind]color.RGBA{
	types.PowerupFirepower: colornames.Orangered,
	types.PowerupSpeed:     colornames.Deepskyblue,
	types.PowerupShield:    colornames.Aqua,
	types.PowerupHealth:    colornames.Limegreen,
	types.PowerupFireball:  colornames.Orange,
	types.PowerupCompanion: colornames.Hotpink,
}

// withAlpha 按透明度缩放预乘颜色
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// parallaxOffset 装饰物在滚动距离 scroll 下的横向偏移,结果落在 [0, spacing)
func parallaxOffset(scroll, factor, spacing float64) float64 {
	off := math.Mod(scroll*factor, spacing)
	if off < 0 {
		off += spacing
	}
	return off
}

// drawBackground 深海渐变与两层气泡视差
func drawBackground(screen *ebiten.Image, scrollX float64) {
	screen.Fill(colornames.Midnightblue)
	const bands = 6
	bandH := float32(config.GameWindowHeight) / bands
	for i := 0; i < bands; i++ {
		shade := withAlpha(colornames.Navy, 0.15*float64(i))
		vector.DrawFilledRect(screen, 0, float32(i)*bandH, config.GameWindowWidth, bandH, shade, false)
	}

	for li, layer := range parallaxLayers {
		off := parallaxOffset(scrollX, layer.factor, layer.spacing)
		for x := -off; x < config.GameWindowWidth+layer.spacing; x += layer.spacing {
			for row := 0; row < 5; row++ {
				y := float64(row)*130 + 40 + float64(li)*55 + 20*math.Sin((x+scrollX*layer.factor)/90)
				vector.StrokeCircle(screen, float32(x), float32(y), layer.radius, 1, layer.clr, true)
			}
		}
	}
}

func radiusOf(em *ecs.EntityManager, id ecs.EntityID, fallback float64) float32 {
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok && col.Radius > 0 {
		return float32(col.Radius)
	}
	return float32(fallback)
}

func flashAlpha(em *ecs.EntityManager, id ecs.EntityID) float64 {
	if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](em, id); ok {
		return flash.CurrentAlpha()
	}
	return 1
}

// drawEntities 按从后到前的顺序绘制: 拾取物 → 水雷 → 敌人 → Boss → 弹药 → 玩家
func (gs *GameScene) drawEntities(screen *ebiten.Image, dx, dy float64) {
	em := gs.session.EntityManager()
	at := func(pos *components.PositionComponent) (float32, float32) {
		return float32(pos.X + dx), float32(pos.Y + dy)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.CollectibleComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y := at(pos)
		r := radiusOf(em, id, 15)
		vector.DrawFilledCircle(screen, x, y, r, colornames.Gold, true)
		vector.StrokeCircle(screen, x, y, r, 2, colornames.Goldenrod, true)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PowerupComponent, *components.PositionComponent](em) {
		pu, _ := ecs.GetComponent[*components.PowerupComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y := at(pos)
		r := radiusOf(em, id, 15)
		clr, ok := powerupColors[pu.Kind]
		if !ok {
			clr = colornames.White
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
		vector.StrokeCircle(screen, x, y, r+3, 2, colornames.White, true)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.MineComponent, *components.PositionComponent](em) {
		mine, _ := ecs.GetComponent[*components.MineComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y := at(pos)
		r := radiusOf(em, id, 20)
		vector.DrawFilledCircle(screen, x, y, r, colornames.Dimgray, true)
		for i := 0; i < 6; i++ {
			a := mine.Rotation + float64(i)*math.Pi/3
			sx, sy := float32(math.Cos(a)), float32(math.Sin(a))
			vector.StrokeLine(screen, x+sx*r, y+sy*r, x+sx*(r+8), y+sy*(r+8), 3, colornames.Darkgray, true)
		}
		vector.DrawFilledCircle(screen, x, y, r/3, colornames.Red, true)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y := at(pos)
		r := radiusOf(em, id, 20)
		clr, ok := enemyColors[enemy.Archetype]
		if !ok {
			clr = colornames.Coral
		}
		clr = withAlpha(clr, flashAlpha(em, id))
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
		// 朝左的眼睛
		vector.DrawFilledCircle(screen, x-r*0.5, y-r*0.25, r*0.15, colornames.Black, true)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BossComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y := at(pos)
		r := radiusOf(em, id, 100)
		alpha := flashAlpha(em, id)
		vector.DrawFilledCircle(screen, x, y, r, withAlpha(colornames.Darkslategray, alpha), true)
		vector.StrokeCircle(screen, x, y, r, 4, withAlpha(colornames.Crimson, alpha), true)
		vector.DrawFilledCircle(screen, x-r*0.55, y-r*0.3, r*0.1, colornames.Red, true)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BossProjectileComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y := at(pos)
		vector.DrawFilledCircle(screen, x, y, 7, colornames.Crimson, true)
		vector.DrawFilledCircle(screen, x, y, 3, colornames.Mistyrose, true)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y := at(pos)
		r := radiusOf(em, id, 5)
		switch proj.Kind {
		case components.ProjectileFireball:
			vector.DrawFilledCircle(screen, x, y, r, colornames.Orangered, true)
			vector.DrawFilledCircle(screen, x, y, r*0.6, colornames.Yellow, true)
		case components.ProjectileCompanion:
			vector.DrawFilledCircle(screen, x, y, r, colornames.Hotpink, true)
		default:
			vector.StrokeLine(screen, x-r*2, y, x+r, y, 3, colornames.Lightcyan, true)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.CompanionComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y := at(pos)
		vector.DrawFilledCircle(screen, x, y, 12, colornames.Pink, true)
	}

	gs.drawPlayer(screen, dx, dy)
}

func (gs *GameScene) drawPlayer(screen *ebiten.Image, dx, dy float64) {
	em := gs.session.EntityManager()
	id := gs.session.State().PlayerID
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		return
	}
	x, y := float32(pos.X+dx), float32(pos.Y+dy)
	r := radiusOf(em, id, 25)
	alpha := flashAlpha(em, id)

	vector.DrawFilledRect(screen, x-r, y-r*0.5, r*2, r, withAlpha(colornames.Gold, alpha), true)
	vector.DrawFilledCircle(screen, x+r*0.6, y-r*0.1, r*0.35, withAlpha(colornames.Lightblue, alpha), true)
	if player.FireballActive {
		vector.StrokeCircle(screen, x+r, y, 6, 2, colornames.Orange, true)
	}
	if player.ShieldActive {
		shield := float32(gs.session.Config().Player.BodyRadius) + 8
		vector.StrokeCircle(screen, x, y, shield, 3, withAlpha(colornames.Aqua, 0.7), true)
	}
}

// drawEffects 爆炸与闪光: 半径随进度扩大,颜色随进度淡出
func (gs *GameScene) drawEffects(screen *ebiten.Image, dx, dy float64) {
	for _, e := range gs.layer.effects {
		p := e.progress()
		x, y := float32(e.x+dx), float32(e.y+dy)
		switch e.kind {
		case types.EffectExplosion:
			r := float32(20 + 60*e.scale*p)
			vector.DrawFilledCircle(screen, x, y, r, withAlpha(colornames.Orange, 1-p), true)
			vector.DrawFilledCircle(screen, x, y, r*0.5, withAlpha(colornames.Yellow, 1-p), true)
		case types.EffectSparkle:
			r := float32(8 + 20*p)
			for i := 0; i < 4; i++ {
				a := float64(i)*math.Pi/2 + p*math.Pi
				sx, sy := float32(math.Cos(a)), float32(math.Sin(a))
				vector.StrokeLine(screen, x, y, x+sx*r, y+sy*r, 2, withAlpha(colornames.Lightyellow, 1-p), true)
			}
		default:
			vector.StrokeCircle(screen, x, y, float32(6+10*p), 2, withAlpha(colornames.White, 1-p), true)
		}
	}
}
