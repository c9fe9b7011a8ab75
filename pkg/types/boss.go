package types

// BossSlot Boss 槽位,整局游戏按顺序各出现一次
type BossSlot int

const (
	BossPrimary   BossSlot = iota // 第一关 Boss
	BossSecondary                 // 第二关 Boss
)

// BossSlotCount 槽位数量
const BossSlotCount = 2

// String 返回槽位名称
func (s BossSlot) String() string {
	switch s {
	case BossPrimary:
		return "primary"
	case BossSecondary:
		return "secondary"
	}
	return "unknown"
}

// BossPhase Boss 遭遇阶段
type BossPhase int

const (
	BossDormant   BossPhase = iota // 未触发
	BossWarning                    // 警告中,尚无威胁
	BossEntering                   // 入场动画
	BossEngaged                    // 交战
	BossDefeating                  // 击破演出
	BossConcluded                  // 终态,本局不再触发
)

// String 返回阶段名称
func (p BossPhase) String() string {
	switch p {
	case BossDormant:
		return "Dormant"
	case BossWarning:
		return "Warning"
	case BossEntering:
		return "Entering"
	case BossEngaged:
		return "Engaged"
	case BossDefeating:
		return "Defeating"
	case BossConcluded:
		return "Concluded"
	}
	return "Unknown"
}

// Active 该阶段是否算作"有 Boss 在场"(会抑制常规生成)
func (p BossPhase) Active() bool {
	return p >= BossWarning && p <= BossDefeating
}
