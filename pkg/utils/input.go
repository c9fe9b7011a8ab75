// Package utils 提供通用工具函数
package utils

import (
	"math"

	"github.com/decker502/deepdive/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 键位映射
var (
	upKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	downKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ, ebiten.KeyJ}
	pauseKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}
)

// VirtualJoystick 屏幕左下角的虚拟摇杆(触摸设备)
type VirtualJoystick struct {
	CenterX, CenterY float64
	Radius           float64
}

// Contains 触点是否落在摇杆的响应区域(两倍半径)内
func (j VirtualJoystick) Contains(x, y float64) bool {
	return math.Hypot(x-j.CenterX, y-j.CenterY) <= j.Radius*2
}

// Vector 触点对应的摇杆向量,长度不超过 1
func (j VirtualJoystick) Vector(x, y float64) (float64, float64) {
	if j.Radius <= 0 {
		return 0, 0
	}
	dx := (x - j.CenterX) / j.Radius
	dy := (y - j.CenterY) / j.Radius
	if l := math.Hypot(dx, dy); l > 1 {
		dx /= l
		dy /= l
	}
	return dx, dy
}

// anyPressed 任一按键按住
func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// ReadInput 采集本帧的逻辑输入
//
// 参数:
//   - joystick: 虚拟摇杆,为 nil 时不处理摇杆区域的触摸
//
// 返回:
//   - game.InputState: 按键、开火、拖拽目标、摇杆向量、暂停
func ReadInput(joystick *VirtualJoystick) game.InputState {
	in := game.InputState{
		Up:          anyPressed(upKeys),
		Down:        anyPressed(downKeys),
		Left:        anyPressed(leftKeys),
		Right:       anyPressed(rightKeys),
		Fire:        anyPressed(fireKeys),
		TogglePause: anyJustPressed(pauseKeys),
	}

	// 物理手柄左摇杆
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		in.JoystickX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		in.JoystickY = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			in.Fire = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			in.TogglePause = true
		}
		break
	}

	// 触摸: 摇杆区域内的触点驱动摇杆,其余触点作为拖拽目标
	for _, tid := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(tid)
		fx, fy := float64(x), float64(y)
		if joystick != nil && joystick.Contains(fx, fy) {
			in.JoystickX, in.JoystickY = joystick.Vector(fx, fy)
			in.Fire = true
			continue
		}
		in.PointerActive = true
		in.PointerX, in.PointerY = fx, fy
	}

	// 鼠标左键拖拽
	if !in.PointerActive {
		pressed, x, y := GetPointerState()
		if pressed {
			in.PointerActive = true
			in.PointerX, in.PointerY = float64(x), float64(y)
		}
	}
	return in
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}
