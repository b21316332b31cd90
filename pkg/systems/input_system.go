package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/types"
)

// InputSystem 处理所有用户输入，包括指针点击和键盘快捷键
//
// 快捷键：
//   - 1~5: 按槽位选中工具
//   - H:   在第一个未修复区域所需工具上显示提示
//   - S:   跳过（辅助功能逃生通道，强制完成全部区域）
//   - Tab: 在工具面板槽位间循环选择
type InputSystem struct {
	entityManager *ecs.EntityManager
	controller    *RepairSessionController
	focusedSlot   int // Tab 循环选择的当前槽位
}

// 工具槽位快捷键，槽位 0~4 对应数字键 1~5
var toolHotkeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, controller *RepairSessionController) *InputSystem {
	return &InputSystem{
		entityManager: em,
		controller:    controller,
		focusedSlot:   -1,
	}
}

// Update 处理本帧的输入事件
func (s *InputSystem) Update(deltaTime float64) {
	s.handleHotkeys()

	// 指针按下：先判工具面板，再判修理区域
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mouseX, mouseY := ebiten.CursorPosition()
		s.handlePointerDown(float64(mouseX), float64(mouseY))
	}
	for _, touchID := range inpututil.AppendJustPressedTouchIDs(nil) {
		touchX, touchY := ebiten.TouchPosition(touchID)
		s.handlePointerDown(float64(touchX), float64(touchY))
	}
}

// handleHotkeys 处理键盘快捷键
func (s *InputSystem) handleHotkeys() {
	// 数字键 1~5 按槽位选中工具
	for i, key := range toolHotkeys {
		if inpututil.IsKeyJustPressed(key) {
			toolType := s.controller.ToolSelect().ToolBySlot(i)
			if toolType != types.ToolUnknown {
				s.controller.ToolSelect().SelectTool(toolType)
				s.focusedSlot = i
			}
			return
		}
	}

	// H 键显示提示
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.controller.ShowHint()
		return
	}

	// S 键跳过（强制完成全部区域，走正常完成路径）
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.controller.SkipAll()
		return
	}

	// Tab 键循环选择工具槽位
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.focusedSlot = (s.focusedSlot + 1) % len(toolHotkeys)
		toolType := s.controller.ToolSelect().ToolBySlot(s.focusedSlot)
		if toolType != types.ToolUnknown {
			s.controller.ToolSelect().SelectTool(toolType)
		}
	}
}

// handlePointerDown 处理一次指针按下
// 命中工具槽位时选中工具，命中修理区域时发起修理尝试
func (s *InputSystem) handlePointerDown(x, y float64) {
	// 工具面板优先：避免面板和区域重叠时双重响应
	toolEntities := ecs.GetEntitiesWith3[
		*components.ToolComponent,
		*components.PositionComponent,
		*components.ClickableComponent,
	](s.entityManager)
	for _, id := range toolEntities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !ok || !clickable.Contains(pos.X, pos.Y, x, y) {
			continue
		}
		tool, ok := ecs.GetComponent[*components.ToolComponent](s.entityManager, id)
		if !ok {
			continue
		}
		s.controller.ToolSelect().SelectTool(tool.Type)
		s.focusedSlot = tool.SlotIndex
		return
	}

	// 修理区域
	areaEntities := ecs.GetEntitiesWith3[
		*components.RepairAreaComponent,
		*components.PositionComponent,
		*components.ClickableComponent,
	](s.entityManager)
	for _, id := range areaEntities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !ok || !clickable.Contains(pos.X, pos.Y, x, y) {
			continue
		}
		log.Printf("[Input] 点击修理区域 (%.0f, %.0f)", x, y)
		s.controller.Attempt().AttemptRepair(id)
		return
	}
}
