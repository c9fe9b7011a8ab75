package components

// FlashEffectComponent 受击闪烁效果组件
// 纯表现用途,不影响任何玩法判定
type FlashEffectComponent struct {
	// Duration 闪烁持续时间（秒）
	Duration float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// Alpha 闪烁期间的透明度(敌人/Boss 0.3~0.5,玩家 0.2)
	Alpha float64

	// IsActive 是否激活
	IsActive bool
}

// CurrentAlpha 返回当前帧应使用的透明度
// 闪烁以 yoyo 方式在前半段淡出、后半段恢复
func (f *FlashEffectComponent) CurrentAlpha() float64 {
	if !f.IsActive || f.Duration <= 0 {
		return 1
	}
	half := f.Duration / 2
	t := f.Elapsed
	if t > half {
		t = f.Duration - t
	}
	if t < 0 {
		t = 0
	}
	return 1 - (1-f.Alpha)*(t/half)
}
