package main

import (
	"github.com/decker502/deepdive/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// 终端只有按下事件没有松开事件:
// 按键在最后一次按下(含自动重复)后保持 holdDuration 秒视为按住
const (
	holdDuration     = 0.15
	fireHoldDuration = 0.3
)

type intent int

const (
	intentUp intent = iota
	intentDown
	intentLeft
	intentRight
	intentFire
	intentCount
)

// keyLatch 把离散的按键事件转换成"按住"状态
type keyLatch struct {
	remaining [intentCount]float64

	autoFire    bool
	togglePause bool

	pointerActive bool
	pointerX      float64
	pointerY      float64
}

func (k *keyLatch) press(i intent) {
	d := holdDuration
	if i == intentFire {
		d = fireHoldDuration
	}
	k.remaining[i] = d
}

func (k *keyLatch) held(i intent) bool {
	return k.remaining[i] > 0
}

// tick 推进按住计时
func (k *keyLatch) tick(dt float64) {
	for i := range k.remaining {
		if k.remaining[i] > 0 {
			k.remaining[i] -= dt
		}
	}
}

// snapshot 生成本帧输入并清除边沿触发的标记
func (k *keyLatch) snapshot() game.InputState {
	in := game.InputState{
		Up:            k.held(intentUp),
		Down:          k.held(intentDown),
		Left:          k.held(intentLeft),
		Right:         k.held(intentRight),
		Fire:          k.held(intentFire) || k.autoFire,
		TogglePause:   k.togglePause,
		PointerActive: k.pointerActive,
		PointerX:      k.pointerX,
		PointerY:      k.pointerY,
	}
	k.togglePause = false
	return in
}

// command 非游戏内输入
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdRestart
)

// handleKey 处理一个按键事件
func (k *keyLatch) handleKey(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyUp:
		k.press(intentUp)
	case tcell.KeyDown:
		k.press(intentDown)
	case tcell.KeyLeft:
		k.press(intentLeft)
	case tcell.KeyRight:
		k.press(intentRight)
	case tcell.KeyEscape:
		k.togglePause = true
	case tcell.KeyEnter:
		return cmdRestart
	case tcell.KeyRune:
		return k.handleRune(ev.Rune())
	}
	return cmdNone
}

func (k *keyLatch) handleRune(r rune) command {
	switch r {
	case 'w', 'W':
		k.press(intentUp)
	case 's', 'S':
		k.press(intentDown)
	case 'a', 'A':
		k.press(intentLeft)
	case 'd', 'D':
		k.press(intentRight)
	case ' ', 'j', 'J':
		k.press(intentFire)
	case 'f', 'F':
		k.autoFire = !k.autoFire
	case 'p', 'P':
		k.togglePause = true
	case 'q', 'Q':
		return cmdQuit
	case 'r', 'R':
		return cmdRestart
	}
	return cmdNone
}

// handleMouse 左键按住时把格子坐标换算成场地坐标作为拖拽目标
func (k *keyLatch) handleMouse(ev *tcell.EventMouse, v viewport) {
	if ev.Buttons()&tcell.Button1 == 0 {
		k.pointerActive = false
		return
	}
	col, row := ev.Position()
	k.pointerActive = true
	k.pointerX, k.pointerY = v.toField(col, row)
}
