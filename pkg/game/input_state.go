package game

// InputState 每帧轮询一次的逻辑输入
//
// 设备相关的采集由前端完成(ebiten 见 utils.ReadInput,终端版见 cmd/deepdive-term)。
type InputState struct {
	Up, Down, Left, Right bool

	// Fire 开火键按住
	Fire bool

	// PointerActive 指针/触摸拖拽中,PointerX/Y 为拖拽目标
	PointerActive bool
	PointerX      float64
	PointerY      float64

	// JoystickX/Y 虚拟摇杆向量,分量范围 [-1, 1]
	JoystickX float64
	JoystickY float64

	// TogglePause 本帧按下了暂停键(边沿触发)
	TogglePause bool
}

// WantsFire 按住开火键或正在拖拽都视为开火意图
func (in InputState) WantsFire() bool {
	return in.Fire || in.PointerActive
}
