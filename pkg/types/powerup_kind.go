package types

// PowerupKind 道具种类
//
// 各关卡实际掉落哪些种类由配置决定,这里只是全部已实现效果的集合。
type PowerupKind string

const (
	PowerupFirepower PowerupKind = "firepower" // 三路弹道
	PowerupSpeed     PowerupKind = "speed"     // 移动加速
	PowerupShield    PowerupKind = "shield"    // 抵挡一次伤害
	PowerupHealth    PowerupKind = "health"    // 立即回复 1 点生命
	PowerupFireball  PowerupKind = "fireball"  // 主武器切换为穿透火球
	PowerupCompanion PowerupKind = "companion" // 召唤自动射击的僚机
)

// AllPowerupKinds 返回全部道具种类(固定顺序)
func AllPowerupKinds() []PowerupKind {
	return []PowerupKind{
		PowerupFirepower,
		PowerupSpeed,
		PowerupShield,
		PowerupHealth,
		PowerupFireball,
		PowerupCompanion,
	}
}

// Valid 是否为已知道具种类
func (k PowerupKind) Valid() bool {
	for _, known := range AllPowerupKinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Timed 该道具是否带有到期时间
func (k PowerupKind) Timed() bool {
	return k != PowerupHealth
}
