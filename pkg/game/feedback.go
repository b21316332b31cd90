package game

import (
	"log"

	"github.com/decker502/robopet/pkg/types"
)

// FeedbackCoordinator 把模拟事件翻译成对音效/触觉协作者的调用
//
// 纯边界层：每个模拟事件恰好对应一次协作者调用，强度参数由模拟状态推导。
// 协作者可能 panic（音频设备错误等），在这里统一捕获并记录日志，
// 反馈失败绝不允许中断或回滚模拟状态
type FeedbackCoordinator struct {
	audio AudioHaptics // 可为 nil（完全静默模式）
}

// NewFeedbackCoordinator 创建反馈协调器
//
// 参数：
//   - audio: 音效/触觉协作者，可为 nil
func NewFeedbackCoordinator(audio AudioHaptics) *FeedbackCoordinator {
	return &FeedbackCoordinator{audio: audio}
}

// safeCall 执行一次协作者调用并隔离 panic
func (fc *FeedbackCoordinator) safeCall(event string, call func()) {
	if fc.audio == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Feedback] 协作者调用失败 (%s): %v", event, r)
		}
	}()
	call()
}

// ToolSelected 工具被选中
func (fc *FeedbackCoordinator) ToolSelected(tool types.ToolType) {
	fc.safeCall("tool_selected", func() {
		fc.audio.PlayToolSelect(1.0)
	})
}

// RepairStarted 一个区域开始修理
func (fc *FeedbackCoordinator) RepairStarted(severity int) {
	fc.safeCall("repair_started", func() {
		fc.audio.PlayRepairAction(float64(severity) / 3.0)
	})
}

// RepairProgress 修理进度推进（每次火花特效伴随一次渐强反馈）
// progress 为当前进度 0~100
func (fc *FeedbackCoordinator) RepairProgress(progress float64) {
	fc.safeCall("repair_progress", func() {
		fc.audio.PlayProgressiveRepairFeedback(progress, 0.8)
	})
}

// IncorrectTool 使用了错误的工具
func (fc *FeedbackCoordinator) IncorrectTool() {
	fc.safeCall("incorrect_tool", func() {
		fc.audio.PlaySound("error_buzz", 0.6)
	})
}

// AreaFixed 一个区域修复完成
func (fc *FeedbackCoordinator) AreaFixed() {
	fc.safeCall("area_fixed", func() {
		fc.audio.PlayRepairSuccess(1.0)
	})
}

// CleaningTick 清洁进行中
// remainingDirt 为剩余脏污 0~100，脏污越多音效越强
func (fc *FeedbackCoordinator) CleaningTick(tool string, remainingDirt float64) {
	fc.safeCall("cleaning_tick", func() {
		fc.audio.PlayCleaningAudio(tool, remainingDirt/100)
	})
}

// SessionComplete 全部故障修复，会话完成
func (fc *FeedbackCoordinator) SessionComplete() {
	fc.safeCall("session_complete", func() {
		fc.audio.PlaySound("celebration", 1.0)
	})
}
