package game

// GameClock 虚拟游戏时钟
//
// 所有定时事件和每帧运动都以它为准。暂停时 Advance 不推进时间,
// 恢复后调度器看到的时间是连续的,不会出现补发或漏发。
type GameClock struct {
	now    float64
	paused bool
}

// Now 当前游戏时间(秒)
func (c *GameClock) Now() float64 {
	return c.now
}

// Advance 推进 dt 秒并返回实际推进量(暂停时为 0)
func (c *GameClock) Advance(dt float64) float64 {
	if c.paused || dt <= 0 {
		return 0
	}
	c.now += dt
	return dt
}

// Pause 暂停时钟
func (c *GameClock) Pause() {
	c.paused = true
}

// Resume 恢复时钟
func (c *GameClock) Resume() {
	c.paused = false
}

// IsPaused 是否暂停
func (c *GameClock) IsPaused() bool {
	return c.paused
}
