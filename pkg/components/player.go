package components

import "github.com/decker502/deepdive/pkg/ecs"

// PlayerComponent 玩家潜水员
//
// 每种限时增益都带一个代次号: 重复拾取会递增代次并重新排定到期事件,
// 旧的到期事件因代次不匹配而被忽略,从而"刷新而不叠加"。
type PlayerComponent struct {
	BaseSpeed    float64
	Speed        float64
	ShieldActive bool

	FireballActive bool
	Firepower      int // 弹道层级 1..3

	Companion ecs.EntityID // 僚机实体,0 表示没有

	// LastFired 上次开火的游戏时间(秒)
	LastFired float64
	HasFired  bool

	BuffGeneration map[string]uint64
}

// NextBuffGeneration 为某个增益分配新的代次号
func (p *PlayerComponent) NextBuffGeneration(buff string) uint64 {
	if p.BuffGeneration == nil {
		p.BuffGeneration = make(map[string]uint64)
	}
	p.BuffGeneration[buff]++
	return p.BuffGeneration[buff]
}

// IsCurrentBuff 代次号是否仍是该增益的最新一次
func (p *PlayerComponent) IsCurrentBuff(buff string, generation uint64) bool {
	return p.BuffGeneration[buff] == generation
}

// CompanionComponent 跟随玩家并自动射击的僚机
type CompanionComponent struct {
	Owner     ecs.EntityID
	OffsetX   float64
	OffsetY   float64
	FireTimer float64 // 距下一次射击的剩余时间(秒)
}
