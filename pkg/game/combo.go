package game

// ComboState 连击状态
//
// 窗口内每次击杀递增计数并把窗口重置为满;窗口耗尽时计数归 0、倍率回到 1。
// 倍率 = min(max, 1 + count/2),在窗口内单调不减。
type ComboState struct {
	Count      int
	Multiplier int
	Remaining  float64 // 窗口剩余时间(秒)

	window        float64
	maxMultiplier int
}

// NewComboState 创建连击状态
func NewComboState(window float64, maxMultiplier int) ComboState {
	if maxMultiplier < 1 {
		maxMultiplier = 1
	}
	return ComboState{
		Multiplier:    1,
		window:        window,
		maxMultiplier: maxMultiplier,
	}
}

// RegisterKill 记录一次击杀并返回本次击杀应使用的倍率
func (c *ComboState) RegisterKill() int {
	c.Count++
	c.Remaining = c.window
	c.Multiplier = 1 + c.Count/2
	if c.Multiplier > c.maxMultiplier {
		c.Multiplier = c.maxMultiplier
	}
	return c.Multiplier
}

// Tick 推进窗口计时,只应在未暂停的帧里调用
func (c *ComboState) Tick(dt float64) {
	if c.Count == 0 {
		return
	}
	c.Remaining -= dt
	if c.Remaining <= 0 {
		c.Reset()
	}
}

// Reset 清空连击
func (c *ComboState) Reset() {
	c.Count = 0
	c.Multiplier = 1
	c.Remaining = 0
}

// Active 是否处于连击中(计数 >= 2 才有加成)
func (c *ComboState) Active() bool {
	return c.Count >= 2
}
