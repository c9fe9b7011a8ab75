package components

import "github.com/decker502/deepdive/pkg/types"

// BossComponent Boss 实体
//
// 阶段本身记录在 GameState 的槽位上,实体只在 Entering..Defeating 之间存在。
type BossComponent struct {
	Slot types.BossSlot
	Name string

	// AttackTimer 距下一次齐射的剩余时间(秒)
	AttackTimer float64

	// JustHit 身体接触伤害的防抖标记,由调度器在防抖窗口后清除
	JustHit bool

	// 入场动画
	EntryFromX    float64
	EntryToX      float64
	EntryElapsed  float64
	EntryDuration float64

	// TrackY 追踪玩家得到的纵坐标,实际位置 = TrackY + 浮动偏移
	TrackY float64

	// BobElapsed 交战期间的上下浮动计时(秒)
	BobElapsed float64
}
