package game

import "github.com/decker502/deepdive/pkg/types"

// Presenter 表现层协作者
// 模拟核心只发出"即发即忘"的调用,不读取任何返回值
type Presenter interface {
	// SpawnEffect 在 (x, y) 播放一次特效
	SpawnEffect(kind types.EffectKind, x, y, scale float64)

	// PlaySound 播放音效
	PlaySound(id types.SoundID)

	// ShakeCamera 镜头震动,duration 单位秒
	ShakeCamera(duration, intensity float64)

	// ShowText 在 (x, y) 显示一段短暂文字
	ShowText(x, y float64, content string, style types.TextStyle)
}

// NopPresenter 什么都不做的表现层,用于无头运行和测试
type NopPresenter struct{}

func (NopPresenter) SpawnEffect(types.EffectKind, float64, float64, float64) {}
func (NopPresenter) PlaySound(types.SoundID) {}
func (NopPresenter) ShakeCamera(float64, float64) {}
func (NopPresenter) ShowText(float64, float64, string, types.TextStyle) {}

// RunResult 一局结束时交给下一个场景的结果
type RunResult struct {
	Score     int
	Victory   bool
	BestScore int
	NewBest   bool
}

// SceneTransition 结束本局并切换场景,调用后本局不再更新
type SceneTransition interface {
	EndRun(result RunResult)
}

// SceneTransitionFunc 函数适配器
type SceneTransitionFunc func(result RunResult)

// EndRun 实现 SceneTransition
func (f SceneTransitionFunc) EndRun(result RunResult) {
	f(result)
}
