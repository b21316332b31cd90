package game

import "github.com/decker502/robopet/pkg/types"

// SessionProgress 一次修理会话的进度汇总
//
// FixedProblems 每帧由注册表扫描重算（权威值），不在这里增量维护。
// IsComplete 是单向标志：一旦置位就不再改变，
// 用它保证完成上报恰好发生一次
type SessionProgress struct {
	TotalProblems          int            // 故障总数
	FixedProblems          int            // 已修复数（每帧重算）
	SelectedTool           types.ToolType // 当前选中工具（ToolUnknown 表示未选）
	Attempts               int            // 总点击尝试次数
	CorrectToolUsages      int            // 工具正确的尝试次数
	IncorrectToolUsages    int            // 工具错误的尝试次数
	CleaningStagesComplete int            // 完成的清洁子玩法次数
	ElapsedTime            float64        // 会话已进行时间(秒)
	IsComplete             bool           // 单向完成标志
}

// Reset 重置为新会话的初始状态
func (p *SessionProgress) Reset(totalProblems int) {
	p.TotalProblems = totalProblems
	p.FixedProblems = 0
	p.SelectedTool = types.ToolUnknown
	p.Attempts = 0
	p.CorrectToolUsages = 0
	p.IncorrectToolUsages = 0
	p.CleaningStagesComplete = 0
	p.ElapsedTime = 0
	p.IsComplete = false
}
