package storage

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// ScoreRecord 持久化的分数记录
type ScoreRecord struct {
	Best   int `yaml:"best"`   // 历史最高分
	Played int `yaml:"played"` // 已完成的局数
}

// ScoreKeeper 最高分管理器
// gdata 不可用时只在内存中记录。
type ScoreKeeper struct {
	store  recordStore
	record ScoreRecord
}

// NewScoreKeeper 创建最高分管理器并加载已保存的记录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil
//
// 加载失败不是致命错误，只记录日志并从 0 开始。
func NewScoreKeeper(gdataManager *gdata.Manager) *ScoreKeeper {
	sk := &ScoreKeeper{store: recordStore{manager: gdataManager, object: "scores", prop: "best"}}
	if err := sk.Load(); err != nil {
		log.Printf("[ScoreKeeper] Warning: %v (starting from 0)", err)
	}
	return sk
}

// Load 重新读取分数记录
func (sk *ScoreKeeper) Load() error {
	var record ScoreRecord
	if _, err := sk.store.load(&record); err != nil {
		sk.record = ScoreRecord{}
		return err
	}
	sk.record = record
	return nil
}

// Submit 提交一局的最终得分并立即保存
//
// 返回：
//   - bool: 是否刷新了最高分
func (sk *ScoreKeeper) Submit(score int) bool {
	sk.record.Played++
	newRecord := score > sk.record.Best
	if newRecord {
		sk.record.Best = score
		log.Printf("[ScoreKeeper] New best score: %d", score)
	}

	if err := sk.store.save(&sk.record); err != nil {
		log.Printf("[ScoreKeeper] Warning: %v", err)
	}
	return newRecord
}

// Best 返回历史最高分
func (sk *ScoreKeeper) Best() int {
	return sk.record.Best
}
