package game

import (
	"container/heap"

	"github.com/decker502/deepdive/pkg/ecs"
	"github.com/decker502/deepdive/pkg/types"
)

// EventTag 定时事件类型
type EventTag int

const (
	EventSpawnCollectible EventTag = iota
	EventSpawnEnemy
	EventSpawnMine
	EventSpawnPowerup
	EventDifficultyRamp
	EventBuffExpire
	EventBossWarningEnd
	EventBossDebounceReset
	EventBossExplosion
	EventBossSweepShot
	EventBossDefeatComplete
	EventMineFieldDrop
	EventEndRun
)

var eventTagNames = map[EventTag]string{
	EventSpawnCollectible:   "SpawnCollectible",
	EventSpawnEnemy:         "SpawnEnemy",
	EventSpawnMine:          "SpawnMine",
	EventSpawnPowerup:       "SpawnPowerup",
	EventDifficultyRamp:     "DifficultyRamp",
	EventBuffExpire:         "BuffExpire",
	EventBossWarningEnd:     "BossWarningEnd",
	EventBossDebounceReset:  "BossDebounceReset",
	EventBossExplosion:      "BossExplosion",
	EventBossSweepShot:      "BossSweepShot",
	EventBossDefeatComplete: "BossDefeatComplete",
	EventMineFieldDrop:      "MineFieldDrop",
	EventEndRun:             "EndRun",
}

// String 返回事件名称
func (t EventTag) String() string {
	if name, ok := eventTagNames[t]; ok {
		return name
	}
	return "Unknown"
}

// EventPayload 事件负载,各事件只使用其中相关字段
type EventPayload struct {
	Slot       types.BossSlot
	Entity     ecs.EntityID
	Buff       types.PowerupKind
	Generation uint64
	Index      int
	X, Y       float64
	Victory    bool
}

// ScheduledEvent 一条定时事件
type ScheduledEvent struct {
	FireAt  float64
	Tag     EventTag
	Payload EventPayload
	seq     uint64
}

// eventQueue 按 (FireAt, seq) 排序的最小堆
type eventQueue []ScheduledEvent

func (q eventQueue) Len() int { return len(q) }
func (q eventQueue) Less(i, j int) bool {
	if q[i].FireAt != q[j].FireAt {
		return q[i].FireAt < q[j].FireAt
	}
	return q[i].seq < q[j].seq
}
func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x any) { *q = append(*q, x.(ScheduledEvent)) }
func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Scheduler 基于虚拟时钟的定时事件队列
//
// 每个模拟步调用一次 Drain,按触发时间和登记顺序依次派发到期事件。
// 处理函数中新登记且已到期的事件会在同一次 Drain 中派发。
type Scheduler struct {
	queue eventQueue
	seq   uint64
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{queue: make(eventQueue, 0, 32)}
}

// Schedule 在绝对时间 at 登记事件
func (s *Scheduler) Schedule(at float64, tag EventTag, payload EventPayload) {
	s.seq++
	heap.Push(&s.queue, ScheduledEvent{FireAt: at, Tag: tag, Payload: payload, seq: s.seq})
}

// Drain 派发所有 FireAt <= now 的事件,返回派发数量
func (s *Scheduler) Drain(now float64, handle func(ScheduledEvent)) int {
	fired := 0
	for len(s.queue) > 0 && s.queue[0].FireAt <= now {
		ev := heap.Pop(&s.queue).(ScheduledEvent)
		fired++
		handle(ev)
	}
	return fired
}

// Clear 丢弃全部未触发事件(场景退出)
func (s *Scheduler) Clear() {
	s.queue = s.queue[:0]
}

// Len 未触发事件数量
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Pending 统计某类未触发事件数量
func (s *Scheduler) Pending(tag EventTag) int {
	n := 0
	for _, ev := range s.queue {
		if ev.Tag == tag {
			n++
		}
	}
	return n
}
