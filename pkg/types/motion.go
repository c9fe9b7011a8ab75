// Package types 定义共享的基础类型
package types

// MotionModel 敌人的运动模型标签
type MotionModel string

const (
	MotionStraight  MotionModel = "straight"  // 水平匀速漂移
	MotionBob       MotionModel = "bob"       // 上下正弦摆动
	MotionZigzag    MotionModel = "zigzag"    // 周期性换向的折线
	MotionWave      MotionModel = "wave"      // 相位累加的正弦波
	MotionFormation MotionModel = "formation" // 队形锚点 + 固定偏移
)

// Valid 是否为已知运动模型
func (m MotionModel) Valid() bool {
	switch m {
	case MotionStraight, MotionBob, MotionZigzag, MotionWave, MotionFormation:
		return true
	}
	return false
}

// SpawnPattern 敌人生成图案
type SpawnPattern string

const (
	PatternSingle    SpawnPattern = "single"    // 单个
	PatternLine      SpawnPattern = "line"      // 随机数量沿 x 排成一列
	PatternFormation SpawnPattern = "formation" // 固定偏移列表
)

// Valid 是否为已知生成图案
func (p SpawnPattern) Valid() bool {
	switch p {
	case PatternSingle, PatternLine, PatternFormation:
		return true
	}
	return false
}
