package utils

import "math"

// 缓动函数,输入 t 期望在 [0, 1],超出部分被夹紧

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseOutCubic 三次缓出: 开始快,结束慢
// Boss 入场与结算分数滚动使用
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	p := 1 - t
	return 1 - p*p*p
}

// EaseInOutSine 正弦缓入缓出
func EaseInOutSine(t float64) float64 {
	t = clamp01(t)
	return (1 - math.Cos(math.Pi*t)) / 2
}

// SineYoyo 以 halfPeriod 为半周期在 0 和 1 之间往返的正弦缓动
// elapsed=0 时为 0,elapsed=halfPeriod 时为 1,之后返回 0,如此循环
func SineYoyo(elapsed, halfPeriod float64) float64 {
	if halfPeriod <= 0 {
		return 0
	}
	return (1 - math.Cos(math.Pi*elapsed/halfPeriod)) / 2
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
