package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/deepdive/pkg/config"
	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	// countUpDuration 分数滚动到最终值所需时间(秒)
	countUpDuration = 1.5

	// restartDelay 进入结算后多久才接受重新开始的输入,防止误触
	restartDelay = 0.5
)

// ResultScene 结算场景: 显示本局得分、最高分,点击或按键重新开始
type ResultScene struct {
	sceneManager *game.SceneManager
	result       game.RunResult
	face         *text.GoXFace
	elapsed      float64
}

// NewResultScene 创建结算场景
func NewResultScene(sm *game.SceneManager, result game.RunResult) *ResultScene {
	log.Printf("[ResultScene] score=%d victory=%v best=%d newBest=%v", result.Score, result.Victory, result.BestScore, result.NewBest)
	return &ResultScene{
		sceneManager: sm,
		result:       result,
		face:         text.NewGoXFace(basicfont.Face7x13),
	}
}

// displayedScore 滚动中的分数
func (rs *ResultScene) displayedScore() int {
	if rs.elapsed >= countUpDuration {
		return rs.result.Score
	}
	return int(float64(rs.result.Score) * utils.EaseOutCubic(rs.elapsed/countUpDuration))
}

// canRestart 是否已经过了防误触时间
func (rs *ResultScene) canRestart() bool {
	return rs.elapsed >= restartDelay
}

// Update 实现 game.Scene
func (rs *ResultScene) Update(deltaTime float64) {
	rs.elapsed += deltaTime
	if !rs.canRestart() || rs.sceneManager == nil {
		return
	}
	clicked, _, _ := utils.IsJustTouchedOrClicked()
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		log.Printf("[ResultScene] Restart")
		rs.sceneManager.Load(game.SceneGameplay, game.RunResult{})
	}
}

// Draw 实现 game.Scene
func (rs *ResultScene) Draw(screen *ebiten.Image) {
	drawBackground(screen, rs.elapsed*60)

	title, titleColor := "GAME OVER", colornames.Crimson
	if rs.result.Victory {
		title, titleColor = "VICTORY!", colornames.Gold
	}
	cx := float64(config.GameWindowWidth) / 2
	drawText(screen, rs.face, title, cx, 150, textOptions{scale: 4, align: text.AlignCenter, clr: titleColor, alpha: 1})
	drawText(screen, rs.face, fmt.Sprintf("SCORE: %d", rs.displayedScore()), cx, 260,
		textOptions{scale: 2, align: text.AlignCenter, alpha: 1})

	bestColor := colornames.Lightskyblue
	best := fmt.Sprintf("BEST: %d", rs.result.BestScore)
	if rs.result.NewBest {
		best = "NEW BEST! " + best
		bestColor = colornames.Gold
	}
	drawText(screen, rs.face, best, cx, 310, textOptions{scale: 1.5, align: text.AlignCenter, clr: bestColor, alpha: 1})

	if rs.canRestart() {
		drawText(screen, rs.face, "Click or press SPACE to dive again", cx, 420,
			textOptions{align: text.AlignCenter, clr: colornames.Lightgray, alpha: 1})
	}
}
