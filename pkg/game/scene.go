package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen (gameplay, result screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景被切走时调用
// 游戏场景借此丢弃未触发的定时事件并保存最高分
type Closer interface {
	Close()
}
