package components

import "github.com/decker502/deepdive/pkg/types"

// MotionComponent 按运动模型推进的漂移实体(敌人、水雷、拾取物)
//
// 所有"每帧"常量都以 60fps 为基准,由 MovementSystem 按 dt*60 缩放。
type MotionComponent struct {
	Model types.MotionModel

	// Speed 向左漂移速度(像素/帧),乘以全局难度倍率
	Speed float64

	// BaseY 生成时的纵坐标(摆动和波形的基准线)
	BaseY float64

	// Elapsed 自生成起经过的游戏时间(秒)
	Elapsed float64

	// 摆动: y = BaseY + BobDelta*(1-cos(π·t/BobHalfPeriod))/2
	BobDelta      float64
	BobHalfPeriod float64

	// 折线: 每 ZigzagInterval 秒换向一次,每帧移动 ZigzagStep
	ZigzagDir      float64
	ZigzagTimer    float64
	ZigzagInterval float64
	ZigzagStep     float64

	// 波形: 每帧相位增加 WavePhaseStep, y = BaseY + WaveAmplitude*sin(phase)
	WavePhase     float64
	WavePhaseStep float64
	WaveAmplitude float64

	// FormationIndex 队内序号,生成时已折算进 BaseY 和摆动周期
	FormationIndex int

	// RotationPeriod 旋转一周所需秒数,0 表示不旋转
	RotationPeriod float64
}
