package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ScoreStore 最高分持久化
type ScoreStore interface {
	// BestScore 当前最高分
	BestScore() int

	// SubmitScore 提交一局得分,高于最高分时保存并返回 true
	SubmitScore(score int) (bool, error)
}

// 存储路径常量
const (
	highScoreObject   = "highscore"
	highScoreProperty = "best"
)

type scoreRecord struct {
	Best int `yaml:"best"`
}

// GdataScoreStore 基于 gdata 的最高分存储
type GdataScoreStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	best         int
}

// NewGdataScoreStore 创建最高分存储并读取已保存的值
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil
//
// 返回：
//   - *GdataScoreStore: 存储实例（读取失败时最高分为 0）
func NewGdataScoreStore(gdataManager *gdata.Manager) *GdataScoreStore {
	s := &GdataScoreStore{gdataManager: gdataManager}
	if err := s.load(); err != nil {
		log.Printf("[ScoreStore] Warning: Failed to load best score: %v (starting from 0)", err)
	}
	return s
}

func (s *GdataScoreStore) load() error {
	if s.gdataManager == nil {
		return nil
	}
	if !s.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return nil
	}
	data, err := s.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load best score: %w", err)
	}
	var rec scoreRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal best score: %w", err)
	}
	if rec.Best > 0 {
		s.best = rec.Best
	}
	return nil
}

// BestScore 实现 ScoreStore
func (s *GdataScoreStore) BestScore() int {
	return s.best
}

// SubmitScore 实现 ScoreStore
func (s *GdataScoreStore) SubmitScore(score int) (bool, error) {
	if score <= s.best {
		return false, nil
	}
	s.best = score

	// 降级模式：无法持久化，但不报错
	if s.gdataManager == nil {
		return true, nil
	}

	data, err := yaml.Marshal(scoreRecord{Best: score})
	if err != nil {
		return true, fmt.Errorf("failed to marshal best score: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return true, fmt.Errorf("failed to save best score: %w", err)
	}
	log.Printf("[ScoreStore] New best score saved: %d", score)
	return true, nil
}

// MemoryScoreStore 仅内存的最高分存储
type MemoryScoreStore struct {
	Best int
}

// BestScore 实现 ScoreStore
func (m *MemoryScoreStore) BestScore() int {
	return m.Best
}

// SubmitScore 实现 ScoreStore
func (m *MemoryScoreStore) SubmitScore(score int) (bool, error) {
	if score <= m.Best {
		return false, nil
	}
	m.Best = score
	return true, nil
}
