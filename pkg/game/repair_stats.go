package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ProgressTracker 进度追踪协作者接口
// 会话完成时由 RepairSessionController 恰好调用一次
type ProgressTracker interface {
	// RecordRepairCompleted 记录一次完整的修理会话
	//
	// 参数：
	//   - elapsed: 会话耗时
	//   - fixedComponentIDs: 本次修复的故障ID列表
	RecordRepairCompleted(elapsed time.Duration, fixedComponentIDs []string) error
}

// RepairStats 累计修理统计数据
type RepairStats struct {
	TotalSessions   int            `yaml:"totalSessions"`   // 完成的会话总数
	TotalFixed      int            `yaml:"totalFixed"`      // 修复的故障总数
	TotalPlayTimeMs int64          `yaml:"totalPlayTimeMs"` // 累计游玩时长(毫秒)
	BestTimeMs      int64          `yaml:"bestTimeMs"`      // 最快会话耗时(毫秒)，0 表示尚无记录
	FixedByProblem  map[string]int `yaml:"fixedByProblem"`  // 故障ID -> 修复次数
}

// RepairStatsManager 修理统计管理器
// ProgressTracker 的 gdata 持久化实现
//
// 架构说明：
//   - 数据以 YAML 序列化后写入 gdata（与设置存储保持一致）
//   - gdataManager 为 nil 时进入降级模式：统计只保留在内存中
type RepairStatsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
	stats        *RepairStats
}

// 存储路径常量
const (
	statsObject   = "progress"
	statsProperty = "repair_stats"
)

// NewRepairStatsManager 创建修理统计管理器并加载已有数据
func NewRepairStatsManager(gdataManager *gdata.Manager) *RepairStatsManager {
	m := &RepairStatsManager{
		gdataManager: gdataManager,
		stats:        &RepairStats{FixedByProblem: make(map[string]int)},
	}
	if err := m.Load(); err != nil {
		log.Printf("[RepairStats] Warning: Failed to load stats: %v (starting fresh)", err)
	}
	return m
}

// Load 从 gdata 加载统计数据
func (m *RepairStatsManager) Load() error {
	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load repair stats: %w", err)
	}

	var loaded RepairStats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal repair stats: %w", err)
	}
	if loaded.FixedByProblem == nil {
		loaded.FixedByProblem = make(map[string]int)
	}

	m.stats = &loaded
	log.Printf("[RepairStats] Loaded stats: %d sessions, %d problems fixed",
		m.stats.TotalSessions, m.stats.TotalFixed)
	return nil
}

// Save 保存统计数据到 gdata
func (m *RepairStatsManager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.stats)
	if err != nil {
		return fmt.Errorf("failed to marshal repair stats: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save repair stats: %w", err)
	}
	return nil
}

// RecordRepairCompleted 实现 ProgressTracker
func (m *RepairStatsManager) RecordRepairCompleted(elapsed time.Duration, fixedComponentIDs []string) error {
	elapsedMs := elapsed.Milliseconds()

	m.stats.TotalSessions++
	m.stats.TotalFixed += len(fixedComponentIDs)
	m.stats.TotalPlayTimeMs += elapsedMs
	if m.stats.BestTimeMs == 0 || elapsedMs < m.stats.BestTimeMs {
		m.stats.BestTimeMs = elapsedMs
	}
	for _, id := range fixedComponentIDs {
		m.stats.FixedByProblem[id]++
	}

	log.Printf("[RepairStats] Session complete: %d fixed in %v", len(fixedComponentIDs), elapsed)

	if err := m.Save(); err != nil {
		return fmt.Errorf("record repair completed: %w", err)
	}
	return nil
}

// GetStats 返回当前统计数据（只读使用）
func (m *RepairStatsManager) GetStats() *RepairStats {
	return m.stats
}
