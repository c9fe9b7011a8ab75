// deepdive-term 终端版前端: tcell 绘制与按键输入,beep 播放音效
//
// 模拟核心与 ebiten 版完全相同,只替换表现层和输入采集。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/session"
	"github.com/gdamore/tcell/v2"
)

// frameDuration 固定步长
const frameDuration = time.Second / 60

// terminal 终端版游戏
type terminal struct {
	screen   tcell.Screen
	env      config.RuntimeEnv
	gameplay *config.GameplayConfig
	scores   game.ScoreStore

	presenter *termPresenter
	latch     keyLatch
	session   *session.Session
	result    *game.RunResult
}

func newTerminal(env config.RuntimeEnv, gameplay *config.GameplayConfig) (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	sound, err := newSoundPlayer()
	if err != nil {
		// 没有声卡也可以玩
		log.Printf("[Term] Audio disabled: %v", err)
	}

	t := &terminal{
		screen:    screen,
		env:       env,
		gameplay:  gameplay,
		scores:    game.NewGdataScoreStore(game.OpenStorage("deepdive")),
		presenter: &termPresenter{sound: sound},
	}
	if err := t.startRun(); err != nil {
		screen.Fini()
		return nil, err
	}
	return t, nil
}

// startRun 开始新的一局
func (t *terminal) startRun() error {
	if t.session != nil {
		t.session.Close()
	}
	seed := t.env.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	t.presenter.reset()
	t.result = nil
	onEnd := func(r game.RunResult) {
		t.result = &r
	}
	sess, err := session.New(session.Options{
		Config:     t.gameplay,
		Presenter:  t.presenter,
		Transition: game.SceneTransitionFunc(onEnd),
		Scores:     t.scores,
		Seed:       seed,
		GodMode:    t.env.GodMode,
	})
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}
	t.session = sess
	return nil
}

func (t *terminal) viewport() viewport {
	cols, rows := t.screen.Size()
	field := t.gameplay.Field
	return newViewport(cols, rows, field.Width, field.Height)
}

// handleEvent 返回 false 表示退出
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch t.latch.handleKey(ev) {
		case cmdQuit:
			return false
		case cmdRestart:
			if t.result != nil {
				if err := t.startRun(); err != nil {
					log.Printf("[Term] %v", err)
					return false
				}
			}
		}
	case *tcell.EventMouse:
		t.latch.handleMouse(ev, t.viewport())
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *terminal) step(dt float64) {
	v := t.viewport()
	if t.result != nil {
		drawResult(t.screen, v, *t.result)
		return
	}
	t.session.Update(dt, t.latch.snapshot())
	t.latch.tick(dt)
	if !t.session.State().Paused {
		t.presenter.update(dt)
	}
	if t.result != nil {
		drawResult(t.screen, v, *t.result)
		return
	}
	drawFrame(t.screen, v, t.session, t.presenter)
}

// run 主循环: 事件在独立 goroutine 中读取并通过 channel 交给主循环,模拟只在主循环中推进
func (t *terminal) run() {
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	dt := frameDuration.Seconds()
	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.step(dt)
		}
	}
}

func (t *terminal) close() {
	if t.session != nil {
		t.session.Close()
	}
	if t.presenter.sound != nil {
		t.presenter.sound.close()
	}
	t.screen.Fini()
}

func main() {
	verbose := flag.Bool("verbose", false, "把日志写入 deepdive-term.log")
	godMode := flag.Bool("god", false, "调试无敌模式")
	configPath := flag.String("config", "", "玩法配置文件路径(默认使用内置配置)")
	seed := flag.Int64("seed", 0, "固定随机种子")
	flag.Parse()

	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read .env: %v\n", err)
		os.Exit(1)
	}
	env.Verbose = env.Verbose || *verbose
	env.GodMode = env.GodMode || *godMode
	if *configPath != "" {
		env.ConfigPath = *configPath
	}
	if *seed != 0 {
		env.Seed = *seed
	}

	// 终端被 tcell 占用,日志只能写文件
	log.SetOutput(io.Discard)
	if env.Verbose {
		f, err := os.Create("deepdive-term.log")
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	gameplay, err := config.LoadGameplayForEnv(env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load gameplay config: %v\n", err)
		os.Exit(1)
	}

	t, err := newTerminal(env, gameplay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer t.close()

	t.run()
}
