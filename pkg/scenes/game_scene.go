// Package scenes 提供 ebiten 前端的场景: 游戏场景与结算场景
package scenes

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/session"
	"github.com/decker502/deepdive/pkg/types"
	"github.com/decker502/deepdive/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Scene 与 game.Scene 相同
type Scene = game.Scene

// GameSceneOptions 创建游戏场景的依赖
type GameSceneOptions struct {
	Config       *config.GameplayConfig
	SceneManager *game.SceneManager
	Audio        *game.AudioManager    // 可为 nil(静音)
	Settings     *game.SettingsManager // 可为 nil(默认设置)
	Scores       game.ScoreStore

	// Seed 为 0 时按当前时间取种
	Seed    int64
	GodMode bool
}

// GameScene 游戏场景
//
// 持有一局 session.Session,把每帧输入交给它,并实现 game.Presenter 接收表现层调用。
type GameScene struct {
	session      *session.Session
	sceneManager *game.SceneManager
	audio        *game.AudioManager
	settings     *game.SettingsManager

	layer    effectLayer
	face     *text.GoXFace
	joystick *utils.VirtualJoystick

	// pendingResult 本局已结束,下一次 Update 切换到结算场景
	pendingResult *game.RunResult
}

// NewGameScene 创建游戏场景并开始新的一局
//
// 参数:
//   - opts: 配置、场景管理器、音效与存储
//
// 返回:
//   - *GameScene: 已开始计时的游戏场景
//   - error: 配置无效时返回错误
func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gs := &GameScene{
		sceneManager: opts.SceneManager,
		audio:        opts.Audio,
		settings:     opts.Settings,
		face:         text.NewGoXFace(basicfont.Face7x13),
	}
	if utils.IsMobile() {
		gs.joystick = &utils.VirtualJoystick{CenterX: 110, CenterY: config.GameWindowHeight - 110, Radius: 60}
	}

	sess, err := session.New(session.Options{
		Config:     opts.Config,
		Presenter:  gs,
		Transition: game.SceneTransitionFunc(gs.onRunEnded),
		Scores:     opts.Scores,
		Seed:       seed,
		GodMode:    opts.GodMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start run: %w", err)
	}
	gs.session = sess
	log.Printf("[GameScene] Run started (seed=%d)", seed)
	return gs, nil
}

// onRunEnded 在 session 派发事件期间被调用,切换推迟到下一帧
func (gs *GameScene) onRunEnded(result game.RunResult) {
	gs.pendingResult = &result
}

// Update 实现 game.Scene
func (gs *GameScene) Update(deltaTime float64) {
	if gs.pendingResult != nil {
		result := *gs.pendingResult
		gs.pendingResult = nil
		if gs.sceneManager != nil {
			gs.sceneManager.Load(game.SceneResult, result)
		}
		return
	}

	gs.session.Update(deltaTime, utils.ReadInput(gs.joystick))
	if !gs.session.State().Paused {
		gs.layer.update(deltaTime)
	}
}

// Draw 实现 game.Scene
func (gs *GameScene) Draw(screen *ebiten.Image) {
	state := gs.session.State()
	shakeX, shakeY := gs.layer.shake.offset(config.GameWindowWidth)
	if gs.settings != nil && !gs.settings.GetSettings().ScreenShake {
		shakeX, shakeY = 0, 0
	}

	drawBackground(screen, state.ScrollX)
	gs.drawEntities(screen, shakeX, shakeY)
	gs.drawEffects(screen, shakeX, shakeY)
	gs.drawHUD(screen)
	gs.drawTexts(screen)
	if gs.joystick != nil {
		drawJoystick(screen, gs.joystick)
	}
	if state.Paused {
		gs.drawPauseOverlay(screen)
	}
}

// Close 实现 game.Closer: 丢弃本局所有未触发事件
func (gs *GameScene) Close() {
	gs.session.Close()
	gs.layer.clear()
	log.Printf("[GameScene] Closed")
}

// Session 当前局
func (gs *GameScene) Session() *session.Session {
	return gs.session
}

// SpawnEffect 实现 game.Presenter
func (gs *GameScene) SpawnEffect(kind types.EffectKind, x, y, scale float64) {
	gs.layer.spawnEffect(kind, x, y, scale)
}

// PlaySound 实现 game.Presenter
func (gs *GameScene) PlaySound(id types.SoundID) {
	if gs.audio != nil {
		gs.audio.PlaySound(id)
	}
}

// ShakeCamera 实现 game.Presenter
func (gs *GameScene) ShakeCamera(duration, intensity float64) {
	gs.layer.shake.start(duration, intensity)
}

// ShowText 实现 game.Presenter
func (gs *GameScene) ShowText(x, y float64, content string, style types.TextStyle) {
	gs.layer.showText(x, y, content, style)
}
