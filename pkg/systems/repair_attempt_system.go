package systems

import (
	"log"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/game"
	"github.com/decker502/robopet/pkg/types"
)

// 提示手势的显示时长（秒）
const hintGestureDuration = 2.5

// RepairAttemptSystem 判定一次区域点击是否使用了正确的工具
//
// 用错工具是预期中的玩法结果，不是错误：
// 只计数、播放错误特效/音效，在同一区域连续用错达到阈值后
// 通过引导手势提示正确的工具，绝不弹出阻断式错误对话框
type RepairAttemptSystem struct {
	entityManager *ecs.EntityManager
	progress      *game.SessionProgress
	effects       *EffectsSystem
	feedback      *game.FeedbackCoordinator
	repairSystem  *RepairProgressSystem
	cleaning      *CleaningSystem
	overlay       game.GuidanceOverlay

	hintThreshold int
	// 每个区域的连续错误次数，正确一次即清零
	wrongStreak map[ecs.EntityID]int
}

// NewRepairAttemptSystem 创建修理尝试判定系统
// overlay 可为 nil（无提示模式，如无头验证）
func NewRepairAttemptSystem(
	em *ecs.EntityManager,
	progress *game.SessionProgress,
	effects *EffectsSystem,
	feedback *game.FeedbackCoordinator,
	repairSystem *RepairProgressSystem,
	cleaning *CleaningSystem,
	overlay game.GuidanceOverlay,
	hintThreshold int,
) *RepairAttemptSystem {
	return &RepairAttemptSystem{
		entityManager: em,
		progress:      progress,
		effects:       effects,
		feedback:      feedback,
		repairSystem:  repairSystem,
		cleaning:      cleaning,
		overlay:       overlay,
		hintThreshold: hintThreshold,
		wrongStreak:   make(map[ecs.EntityID]int),
	}
}

// AttemptRepair 处理对修理区域的一次点击
//
// 未选中工具或区域已修复：无操作。
// 其余情况总是计入尝试次数，然后按工具是否匹配分支：
//   - 匹配：开始标准修理，DIRTY 故障则启动清洁子玩法
//   - 不匹配：错误特效 + 反馈，连续错误达到阈值后显示提示手势
func (s *RepairAttemptSystem) AttemptRepair(areaID ecs.EntityID) {
	selected := s.progress.SelectedTool
	if selected == types.ToolUnknown {
		return
	}

	area, ok := ecs.GetComponent[*components.RepairAreaComponent](s.entityManager, areaID)
	if !ok {
		return
	}
	if area.State == components.RepairFixed {
		// 已修复区域上的重复点击是无操作（幂等）
		return
	}

	s.progress.Attempts++

	if selected == area.RequiredTool {
		s.progress.CorrectToolUsages++
		s.wrongStreak[areaID] = 0

		problem, ok := ecs.GetComponent[*components.ProblemComponent](s.entityManager, areaID)
		if ok && problem.Type == types.ProblemDirty {
			s.cleaning.StartCleaning(areaID, selected)
		} else {
			s.repairSystem.StartRepair(areaID)
			if ok {
				s.feedback.RepairStarted(problem.Severity)
			}
		}
		return
	}

	// 工具不匹配：只影响计数器和特效，绝不改变修理进度
	s.progress.IncorrectToolUsages++
	s.wrongStreak[areaID]++
	log.Printf("[RepairAttempt] 工具不匹配: 选中 %s, 需要 %s (连续 %d 次)",
		selected, area.RequiredTool, s.wrongStreak[areaID])

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, areaID); ok {
		effectID := s.effects.Spawn(components.EffectError, pos.X, pos.Y, 0.6)
		area.ActiveEffects = append(area.ActiveEffects, effectID)
	}
	s.feedback.IncorrectTool()

	if s.wrongStreak[areaID] >= s.hintThreshold {
		s.showToolHint(area.RequiredTool)
		s.wrongStreak[areaID] = 0
	}
}

// showToolHint 在正确工具的槽位上显示点击手势
func (s *RepairAttemptSystem) showToolHint(tool types.ToolType) {
	if s.overlay == nil {
		return
	}

	toolEntities := ecs.GetEntitiesWith2[
		*components.ToolComponent,
		*components.PositionComponent,
	](s.entityManager)
	for _, id := range toolEntities {
		toolComp, ok := ecs.GetComponent[*components.ToolComponent](s.entityManager, id)
		if !ok || toolComp.Type != tool {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		s.overlay.ShowTapGesture(pos.X, pos.Y, hintGestureDuration)
		log.Printf("[RepairAttempt] 显示工具提示: %s", tool)
		return
	}
}

// ResetStreaks 清空全部连续错误计数（会话重置时调用）
func (s *RepairAttemptSystem) ResetStreaks() {
	s.wrongStreak = make(map[ecs.EntityID]int)
}
