package components

// HealthComponent 存储实体的生命值信息
// 用于敌人、Boss 和玩家
type HealthComponent struct {
	CurrentHealth int // 当前生命值,存储值不会小于 0
	MaxHealth     int // 最大生命值
}

// Damage 扣除生命值并返回是否已归零
// 存储值被夹在 0,返回值就是击杀判定
func (h *HealthComponent) Damage(amount int) bool {
	h.CurrentHealth -= amount
	if h.CurrentHealth <= 0 {
		h.CurrentHealth = 0
		return true
	}
	return false
}

// Heal 回复生命值,不超过上限
func (h *HealthComponent) Heal(amount int) {
	h.CurrentHealth += amount
	if h.CurrentHealth > h.MaxHealth {
		h.CurrentHealth = h.MaxHealth
	}
}
