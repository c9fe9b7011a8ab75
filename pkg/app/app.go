// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName gdata 存储使用的应用名
const AppName = "deepdive"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Gameplay 玩法配置，nil 时使用内嵌默认配置
	Gameplay *config.GameplayConfig
	// GodMode 调试无敌
	GodMode bool
	// Seed 固定随机种子，0 表示每局按时间取种
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameplay := cfg.Gameplay
	if gameplay == nil {
		loaded, err := config.LoadEmbeddedGameplayConfig()
		if err != nil {
			return nil, fmt.Errorf("玩法配置加载失败: %w", err)
		}
		gameplay = loaded
	}

	// 持久化: 打开失败时进入内存降级模式
	storage := game.OpenStorage(AppName)
	settings := game.NewSettingsManager(storage)
	scores := game.NewGdataScoreStore(storage)

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext, settings)
	log.Printf("[App] AudioManager initialized")

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(id game.SceneID, result game.RunResult) game.Scene {
		switch id {
		case game.SceneResult:
			return scenes.NewResultScene(sceneManager, result)
		case game.SceneGameplay:
			scene, err := scenes.NewGameScene(scenes.GameSceneOptions{
				Config:       gameplay,
				SceneManager: sceneManager,
				Audio:        audioManager,
				Settings:     settings,
				Scores:       scores,
				Seed:         cfg.Seed,
				GodMode:      cfg.GodMode,
			})
			if err != nil {
				log.Printf("[App] Failed to create game scene: %v", err)
				return nil
			}
			return scene
		}
		return nil
	})

	first, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Config:       gameplay,
		SceneManager: sceneManager,
		Audio:        audioManager,
		Settings:     settings,
		Scores:       scores,
		Seed:         cfg.Seed,
		GodMode:      cfg.GodMode,
	})
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}
	sceneManager.SwitchTo(first)

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	// M 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.settings.ToggleSound()
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
		log.Printf("[App] Sound enabled: %v", enabled)
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 退出全屏后窗口管理器需要几帧才能接受新尺寸
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 退出前关闭当前场景,丢弃未触发的定时事件
func (a *App) Close() {
	if closer, ok := a.sceneManager.GetCurrentScene().(game.Closer); ok {
		closer.Close()
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
