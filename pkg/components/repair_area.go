package components

import (
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/types"
)

// RepairState 修理区域的状态机状态
// NotStarted -> InProgress -> Fixed，单向推进
type RepairState int

const (
	// RepairNotStarted 尚未开始修理
	RepairNotStarted RepairState = iota
	// RepairInProgress 正在修理中（StartTime 已记录）
	RepairInProgress
	// RepairFixed 已修复（终态）
	RepairFixed
)

// String 返回修理状态的字符串表示
func (s RepairState) String() string {
	switch s {
	case RepairInProgress:
		return "InProgress"
	case RepairFixed:
		return "Fixed"
	default:
		return "NotStarted"
	}
}

// RepairAreaComponent 每个故障对应一个修理区域
// 记录修理进度和高亮状态；空间范围由 PositionComponent + ClickableComponent 给出
//
// 不变量：State == RepairFixed 时 Progress == 100
//
// 修理进度不使用独立定时器驱动，而是记录开始时刻 StartTime，
// 每帧与会话时钟比较计算进度。这样多个区域同时修理也保持一致，
// 且会话退出时没有需要取消的回调
type RepairAreaComponent struct {
	ProblemID     string         // 关联的故障ID（1:1）
	RequiredTool  types.ToolType // 镜像 Problem.RequiredTool，点击判定时无需回查故障
	State         RepairState    // 当前状态
	StartTime     float64        // 进入 InProgress 时的会话时钟（秒），仅 InProgress 有效
	Duration      float64        // 修理总时长（秒），由严重度计算
	Progress      float64        // 修理进度 0~100
	IsHighlighted bool           // 当前选中工具是否匹配本区域
	ActiveEffects []ecs.EntityID // 本区域触发的、仍然存活的特效实体ID
}
