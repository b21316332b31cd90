package systems

import (
	"log"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/game"
	"github.com/decker502/robopet/pkg/types"
)

// ToolSelectSystem 管理工具的选中状态和修理区域的高亮
//
// 选中规则：
//   - 未知或未解锁的工具：无操作（静默忽略，不是错误）
//   - 其他情况：取消全部工具的选中，选中目标工具，
//     并把每个未修复区域的高亮设置为"所需工具 == 选中工具"
//
// 操作是确定性的，对同一工具重复调用幂等
type ToolSelectSystem struct {
	entityManager *ecs.EntityManager
	progress      *game.SessionProgress
	feedback      *game.FeedbackCoordinator
}

// NewToolSelectSystem 创建工具选择系统
func NewToolSelectSystem(em *ecs.EntityManager, progress *game.SessionProgress, feedback *game.FeedbackCoordinator) *ToolSelectSystem {
	return &ToolSelectSystem{
		entityManager: em,
		progress:      progress,
		feedback:      feedback,
	}
}

// SelectTool 选中指定类型的工具
// 返回是否发生了选中（未知/未解锁时返回 false）
func (s *ToolSelectSystem) SelectTool(toolType types.ToolType) bool {
	if toolType == types.ToolUnknown {
		return false
	}

	// 找到目标工具并确认已解锁
	toolEntities := ecs.GetEntitiesWith1[*components.ToolComponent](s.entityManager)
	var target *components.ToolComponent
	for _, id := range toolEntities {
		tool, ok := ecs.GetComponent[*components.ToolComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if tool.Type == toolType {
			target = tool
			break
		}
	}
	if target == nil {
		return false
	}
	if !target.IsUnlocked {
		log.Printf("[ToolSelect] 工具 %s 未解锁，忽略", toolType)
		return false
	}

	// 互斥选中：先取消所有工具
	for _, id := range toolEntities {
		tool, ok := ecs.GetComponent[*components.ToolComponent](s.entityManager, id)
		if !ok {
			continue
		}
		tool.IsSelected = false
	}
	target.IsSelected = true
	s.progress.SelectedTool = toolType

	// 高亮规则：恰好是"未修复且所需工具匹配"的区域，其余全部清除
	s.refreshHighlights(toolType)

	s.feedback.ToolSelected(toolType)
	log.Printf("[ToolSelect] 选中工具: %s", toolType)
	return true
}

// refreshHighlights 根据选中工具刷新全部区域的高亮状态
func (s *ToolSelectSystem) refreshHighlights(selected types.ToolType) {
	areaEntities := ecs.GetEntitiesWith1[*components.RepairAreaComponent](s.entityManager)
	for _, id := range areaEntities {
		area, ok := ecs.GetComponent[*components.RepairAreaComponent](s.entityManager, id)
		if !ok {
			continue
		}
		area.IsHighlighted = area.State != components.RepairFixed && area.RequiredTool == selected
	}
}

// SelectedTool 返回当前选中的工具类型（未选中时为 ToolUnknown）
func (s *ToolSelectSystem) SelectedTool() types.ToolType {
	return s.progress.SelectedTool
}

// ToolBySlot 返回指定槽位的工具类型（槽位越界时为 ToolUnknown）
// 数字快捷键 1~5 通过它映射到工具
func (s *ToolSelectSystem) ToolBySlot(slot int) types.ToolType {
	toolEntities := ecs.GetEntitiesWith1[*components.ToolComponent](s.entityManager)
	for _, id := range toolEntities {
		tool, ok := ecs.GetComponent[*components.ToolComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if tool.SlotIndex == slot {
			return tool.Type
		}
	}
	return types.ToolUnknown
}
