// verify_gameplay 无界面地跑完若干局,打印每局的进度与结果
//
// 用于调参后快速检查: 关卡推进、Boss 顺序、生命值范围、同种子可复现。
//
//	go run ./cmd/verify_gameplay --runs 5 --seconds 300 --god
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/session"
	"github.com/decker502/deepdive/pkg/types"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	runs       = flag.Int("runs", 3, "模拟局数")
	seconds    = flag.Float64("seconds", 240, "每局最长游戏时间(秒)")
	godMode    = flag.Bool("god", false, "无敌模式")
	seed       = flag.Int64("seed", 1, "第一局的随机种子,之后每局 +1")
	configPath = flag.String("config", "", "玩法配置文件路径")
)

const frame = 1.0 / 60

// report 一局的统计
type report struct {
	seed       int64
	elapsed    float64
	score      int
	level      int
	victory    bool
	ended      bool
	bossFrames [types.BossSlotCount]int // 各 Boss 进入 Entering 的帧号,-1 表示未出现
	violations []string
}

// autopilot 追踪最近敌人(交战中则追踪 Boss)的纵坐标并一直开火
func autopilot(sess *session.Session) game.InputState {
	em := sess.EntityManager()
	state := sess.State()
	in := game.InputState{Fire: true}

	player, ok := ecs.GetComponent[*components.PositionComponent](em, state.PlayerID)
	if !ok {
		return in
	}
	bestDist := -1.0
	targetY := player.Y
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X < player.X {
			continue
		}
		if d := pos.X - player.X; bestDist < 0 || d < bestDist {
			bestDist = d
			targetY = pos.Y
		}
	}
	for _, slot := range state.Bosses {
		if slot.Phase != types.BossEngaged {
			continue
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, slot.Entity); ok {
			targetY = pos.Y
		}
	}
	switch {
	case targetY < player.Y-5:
		in.Up = true
	case targetY > player.Y+5:
		in.Down = true
	}
	return in
}

func simulate(cfg *config.GameplayConfig, runSeed int64) (report, error) {
	r := report{seed: runSeed}
	for i := range r.bossFrames {
		r.bossFrames[i] = -1
	}
	sess, err := session.New(session.Options{Config: cfg, Seed: runSeed, GodMode: *godMode})
	if err != nil {
		return r, err
	}
	defer sess.Close()

	state := sess.State()
	maxFrames := int(*seconds * 60)
	for i := 0; i < maxFrames && !state.Ended; i++ {
		sess.Update(frame, autopilot(sess))

		for slot := range state.Bosses {
			phase := state.Bosses[slot].Phase
			if r.bossFrames[slot] >= 0 || phase < types.BossEntering || phase == types.BossConcluded {
				continue
			}
			r.bossFrames[slot] = i
			if slot > 0 && state.Bosses[slot-1].Phase != types.BossConcluded {
				r.violations = append(r.violations,
					fmt.Sprintf("frame %d: boss slot %d entered before slot %d concluded", i, slot, slot-1))
			}
		}
		if h, ok := ecs.GetComponent[*components.HealthComponent](sess.EntityManager(), state.PlayerID); ok {
			if h.CurrentHealth < 0 || h.CurrentHealth > h.MaxHealth {
				r.violations = append(r.violations,
					fmt.Sprintf("frame %d: player health %d outside [0, %d]", i, h.CurrentHealth, h.MaxHealth))
			}
		}
	}

	r.elapsed = sess.Now()
	r.score = state.Score
	r.level = state.Level
	r.ended = state.Ended
	r.victory = state.Victory
	return r, nil
}

func outcome(r report) string {
	switch {
	case !r.ended:
		return "timeout"
	case r.victory:
		return "victory"
	default:
		return "game over"
	}
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameplayConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameplayConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	failed := false
	for i := 0; i < *runs; i++ {
		runSeed := *seed + int64(i)
		r, err := simulate(cfg, runSeed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed %d: %v\n", runSeed, err)
			os.Exit(1)
		}
		fmt.Printf("seed=%d time=%.1fs score=%d level=%d boss-frames=%v outcome=%s\n",
			r.seed, r.elapsed, r.score, r.level, r.bossFrames, outcome(r))

		// 同种子必须得到完全相同的一局
		again, err := simulate(cfg, runSeed)
		if err == nil && (again.score != r.score || again.elapsed != r.elapsed) {
			r.violations = append(r.violations, fmt.Sprintf("replay diverged: score %d vs %d", r.score, again.score))
		}
		for _, v := range r.violations {
			failed = true
			fmt.Printf("  VIOLATION %s\n", v)
		}
	}
	if failed {
		os.Exit(1)
	}
}
