package main

import (
	"flag"
	"log"

	"github.com/decker502/deepdive/pkg/app"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "输出详细日志")
	godMode := flag.Bool("god", false, "调试无敌模式")
	configPath := flag.String("config", "", "玩法配置文件路径(默认使用内嵌配置)")
	seed := flag.Int64("seed", 0, "固定随机种子(0 表示按时间取种)")
	envFile := flag.String("env", ".env", "环境变量文件")
	flag.Parse()

	env, err := config.LoadEnv(*envFile)
	if err != nil {
		log.Fatalf("读取 %s 失败: %v", *envFile, err)
	}
	// 命令行参数优先于环境变量
	env.Verbose = env.Verbose || *verbose
	env.GodMode = env.GodMode || *godMode
	if *configPath != "" {
		env.ConfigPath = *configPath
	}
	if *seed != 0 {
		env.Seed = *seed
	}

	embedded.Init(dataFS)
	gameplay, err := config.LoadGameplayForEnv(env)
	if err != nil {
		log.Fatalf("玩法配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:  env.Verbose,
		Gameplay: gameplay,
		GodMode:  env.GodMode,
		Seed:     env.Seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Deep Dive")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
