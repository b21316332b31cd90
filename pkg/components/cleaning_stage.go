package components

import (
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/types"
)

// CleaningState 清洁子玩法的状态机状态
type CleaningState int

const (
	// CleaningIdle 空闲（未开始）
	CleaningIdle CleaningState = iota
	// CleaningActive 清洁进行中
	CleaningActive
	// CleaningComplete 清洁完成（终态）
	CleaningComplete
)

// String 返回清洁状态的字符串表示
func (s CleaningState) String() string {
	switch s {
	case CleaningActive:
		return "Active"
	case CleaningComplete:
		return "Complete"
	default:
		return "Idle"
	}
}

// CleaningStageComponent DIRTY 故障的连续清洁子玩法
// 整个会话同一时刻最多只有一个实例处于 Active 状态（由 CleaningSystem 保证）
//
// DirtLevel 和 CleaningProgress 是两条独立的数值轨道：
// 进度只增不减，脏污只减不增，两者都不会越出 [0, 100]
type CleaningStageComponent struct {
	State        CleaningState        // 当前状态
	AreaID       ecs.EntityID         // 目标修理区域实体
	CleaningTool string               // "spray"（油壶）或 "brush"（其他工具）
	Texture      string               // 污渍贴图类型，由部件类型决定
	DirtLevel    float64              // 初始脏污程度 0~100，激活期间单调不增
	Progress     float64              // 清洁进度 0~100，激活期间单调不减
	Component    types.RobotComponent // 被清洁的部件（用于音效和贴图）
}

// RemainingDirt 返回当前剩余脏污量，用于缩放清洁音效强度
func (c *CleaningStageComponent) RemainingDirt() float64 {
	remaining := c.DirtLevel * (1 - c.Progress/100)
	if remaining < 0 {
		return 0
	}
	return remaining
}
