package systems

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/config"
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/game"
	"github.com/decker502/robopet/pkg/types"
)

// 初始引导手势的显示时长（秒）
const introGestureDuration = 3.0

// SessionState 修理会话的状态机状态
type SessionState int

const (
	// SessionInitializing 尚未初始化或初始化失败
	SessionInitializing SessionState = iota
	// SessionInProgress 修理进行中
	SessionInProgress
	// SessionCompleting 完成处理中（庆祝特效 + 上报，单帧内的过渡态）
	SessionCompleting
	// SessionComplete 会话完成（终态）
	SessionComplete
)

// String 返回会话状态的字符串表示
func (s SessionState) String() string {
	switch s {
	case SessionInProgress:
		return "InProgress"
	case SessionCompleting:
		return "Completing"
	case SessionComplete:
		return "Complete"
	default:
		return "Initializing"
	}
}

// RepairSessionController 修理会话的总控制器
//
// 负责初始化（构建注册表和工具集）、每帧推进各子系统、
// 重算聚合进度并检测完成。完成上报由单向的 IsComplete 标志守护，
// 整个会话生命周期内恰好发生一次，之后的帧对上报而言是无操作。
//
// 所有权：EntityManager、注册表、工具集和特效集在会话期间
// 由控制器独占；协作者（渲染等）只读快照
type RepairSessionController struct {
	entityManager *ecs.EntityManager
	cfg           *config.RepairConfig
	registry      *game.RepairAreaRegistry
	progress      *game.SessionProgress
	feedback      *game.FeedbackCoordinator
	tracker       game.ProgressTracker

	effects      *EffectsSystem
	toolSelect   *ToolSelectSystem
	repairSystem *RepairProgressSystem
	cleaning     *CleaningSystem
	attempt      *RepairAttemptSystem
	hands        *GuidingHandSystem

	state SessionState
}

// NewRepairSessionController 创建会话控制器及其全部子系统
//
// 参数：
//   - em: 实体管理器（会话期间由控制器独占）
//   - cfg: 修理调参
//   - audio: 音效/触觉协作者，可为 nil
//   - tracker: 进度追踪协作者，可为 nil（不上报）
func NewRepairSessionController(
	em *ecs.EntityManager,
	cfg *config.RepairConfig,
	audio game.AudioHaptics,
	tracker game.ProgressTracker,
) *RepairSessionController {
	progress := &game.SessionProgress{}
	feedback := game.NewFeedbackCoordinator(audio)
	effects := NewEffectsSystem(em)
	repairSystem := NewRepairProgressSystem(em, cfg, progress, effects, feedback)
	cleaning := NewCleaningSystem(em, cfg, progress, effects, feedback, repairSystem)
	hands := NewGuidingHandSystem(em)
	toolSelect := NewToolSelectSystem(em, progress, feedback)
	attempt := NewRepairAttemptSystem(em, progress, effects, feedback, repairSystem, cleaning, hands, cfg.HintThreshold)

	return &RepairSessionController{
		entityManager: em,
		cfg:           cfg,
		registry:      game.NewRepairAreaRegistry(em),
		progress:      progress,
		feedback:      feedback,
		tracker:       tracker,
		effects:       effects,
		toolSelect:    toolSelect,
		repairSystem:  repairSystem,
		cleaning:      cleaning,
		attempt:       attempt,
		hands:         hands,
		state:         SessionInitializing,
	}
}

// InitializeRepair 初始化一次修理会话
//
// 为每个故障建立 1:1 的修理区域，创建工具集，重置进度。
// pet 缺失或故障列表为空是致命错误：会话不会进入 InProgress
func (c *RepairSessionController) InitializeRepair(
	pet game.ComponentLocator,
	problems []config.ProblemSpec,
	age types.AgeGroup,
) error {
	if pet == nil {
		return fmt.Errorf("初始化修理会话失败: 缺少宠物")
	}
	if len(problems) == 0 {
		return fmt.Errorf("初始化修理会话失败: 故障列表为空")
	}
	for i := range problems {
		if err := problems[i].Validate(); err != nil {
			return fmt.Errorf("初始化修理会话失败: %w", err)
		}
	}

	// 清空上一会话的全部状态（同步，没有需要取消的定时器）
	c.cleaning.Reset()
	c.entityManager.Clear()
	c.registry.Clear()
	c.attempt.ResetStreaks()
	c.progress.Reset(len(problems))
	c.cleaning.SetAgeGroup(age)

	// 工具集：五种工具各占一个面板槽位，全部解锁
	for i, toolType := range types.AllTools() {
		x, y := config.ToolSlotPosition(i)
		id := c.entityManager.CreateEntity()
		c.entityManager.AddComponent(id, &components.ToolComponent{
			Type:       toolType,
			Name:       toolType.String(),
			SlotIndex:  i,
			IsUnlocked: true,
		})
		c.entityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
		c.entityManager.AddComponent(id, &components.ClickableComponent{
			Width:     config.ToolSlotWidth,
			Height:    config.ToolSlotHeight,
			IsEnabled: true,
		})
	}

	// 修理区域：每个故障一个实体，空间范围来自宠物的部件锚点
	for i := range problems {
		spec := &problems[i]
		comp := types.ParseRobotComponent(spec.Component)
		x, y, ok := pet.ComponentPosition(comp)
		if !ok {
			// 宠物没有该部件的锚点时退到屏幕中心，保持会话可玩
			x, y = config.ScreenWidth/2, config.ScreenHeight/2
			log.Printf("[Session] 宠物缺少部件 %s 的锚点，使用屏幕中心", comp)
		}

		id := c.entityManager.CreateEntity()
		c.entityManager.AddComponent(id, &components.ProblemComponent{
			ID:           spec.ID,
			Component:    comp,
			Type:         types.ParseProblemType(spec.Type),
			Severity:     spec.Severity,
			RequiredTool: types.ParseToolType(spec.RequiredTool),
		})
		c.entityManager.AddComponent(id, &components.RepairAreaComponent{
			ProblemID:    spec.ID,
			RequiredTool: types.ParseToolType(spec.RequiredTool),
			State:        components.RepairNotStarted,
			Duration:     c.cfg.RepairDuration(spec.Severity),
		})
		c.entityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
		c.entityManager.AddComponent(id, &components.ClickableComponent{
			Width:     config.RepairAreaWidth,
			Height:    config.RepairAreaHeight,
			IsEnabled: true,
		})
		c.registry.Register(spec.ID, id)
	}

	// 初始引导：在第一个故障区域上显示点击手势
	if firstID, ok := c.registry.AreaByProblem(problems[0].ID); ok {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](c.entityManager, firstID); ok {
			c.hands.ShowTapGesture(pos.X, pos.Y, introGestureDuration)
		}
	}

	c.state = SessionInProgress
	log.Printf("[Session] 初始化完成: %d 个故障, 年龄段 %s", len(problems), age)
	return nil
}

// Update 推进会话一帧
// 帧内顺序：修理进度 -> 清洁 -> 特效 -> 引导手势 -> 完成检测。
// 特效先于完成检测更新，保证刚完成区域的成功特效从产生的那一帧起就可见
func (c *RepairSessionController) Update(dt float64) {
	if c.state == SessionInitializing {
		return
	}

	c.progress.ElapsedTime += dt

	c.repairSystem.Update(dt)
	c.cleaning.Update(dt)
	c.effects.Update(dt)
	c.hands.Update(dt)

	// 本帧标记销毁的实体（过期特效/手势）在完成检测前清掉
	c.entityManager.RemoveMarkedEntities()
	c.pruneDeadEffects()

	// 已修复数量的权威值：每帧扫描注册表重算
	c.progress.FixedProblems = c.registry.CountFixed()

	if !c.progress.IsComplete &&
		c.progress.TotalProblems > 0 &&
		c.progress.FixedProblems == c.progress.TotalProblems {
		c.completeSession()
	}
}

// completeSession 会话完成的一次性处理
// IsComplete 是单向标志：置位后本方法不会再被进入
func (c *RepairSessionController) completeSession() {
	c.state = SessionCompleting
	c.progress.IsComplete = true

	c.effects.Spawn(components.EffectCelebration, config.ScreenWidth/2, config.ScreenHeight/2, 1.0)
	c.feedback.SessionComplete()
	c.hands.HideAllGuidingHands()

	if c.tracker != nil {
		elapsed := time.Duration(c.progress.ElapsedTime * float64(time.Second))
		if err := c.tracker.RecordRepairCompleted(elapsed, c.registry.FixedProblemIDs()); err != nil {
			// 上报失败只记录日志，不回滚会话状态
			log.Printf("[Session] Warning: 完成上报失败: %v", err)
		}
	}

	c.state = SessionComplete
	log.Printf("[Session] 会话完成: %d/%d, 耗时 %.1f 秒, 尝试 %d 次 (正确 %d / 错误 %d)",
		c.progress.FixedProblems, c.progress.TotalProblems, c.progress.ElapsedTime,
		c.progress.Attempts, c.progress.CorrectToolUsages, c.progress.IncorrectToolUsages)
}

// pruneDeadEffects 从各区域的特效列表中移除已销毁的特效ID
func (c *RepairSessionController) pruneDeadEffects() {
	for _, id := range c.registry.AreaIDs() {
		area, ok := ecs.GetComponent[*components.RepairAreaComponent](c.entityManager, id)
		if !ok || len(area.ActiveEffects) == 0 {
			continue
		}
		alive := area.ActiveEffects[:0]
		for _, effectID := range area.ActiveEffects {
			if c.entityManager.HasEntity(effectID) {
				alive = append(alive, effectID)
			}
		}
		area.ActiveEffects = alive
	}
}

// SkipAll 辅助功能逃生通道：把所有未修复区域走正常完成路径标记为已修复
// 完成检测和恰好一次的上报保障在随后的 Update 中照常生效
func (c *RepairSessionController) SkipAll() {
	if c.state != SessionInProgress {
		return
	}
	log.Printf("[Session] 跳过: 强制完成全部剩余区域")

	// 清洁子玩法的目标区域也会被强制完成，活动实例直接清除
	c.cleaning.Reset()

	for _, id := range c.registry.AreaIDs() {
		area, ok := ecs.GetComponent[*components.RepairAreaComponent](c.entityManager, id)
		if !ok || area.State == components.RepairFixed {
			continue
		}
		c.repairSystem.CompleteArea(id)
	}
}

// ShowHint 在第一个未修复区域所需工具的槽位上显示提示手势（H 快捷键）
func (c *RepairSessionController) ShowHint() {
	for _, id := range c.registry.AreaIDs() {
		area, ok := ecs.GetComponent[*components.RepairAreaComponent](c.entityManager, id)
		if !ok || area.State == components.RepairFixed {
			continue
		}
		c.attempt.showToolHint(area.RequiredTool)
		return
	}
}

// Teardown 会话退出时的同步清理
// 清空全部区域、活动的清洁子玩法和全部特效；
// 模拟中不存在定时器，因此没有异步回调会在清理后触发
func (c *RepairSessionController) Teardown() {
	c.cleaning.Reset()
	c.registry.Clear()
	c.attempt.ResetStreaks()
	c.entityManager.Clear()
	c.state = SessionInitializing
}

// State 返回会话状态
func (c *RepairSessionController) State() SessionState {
	return c.state
}

// Progress 返回会话进度（渲染方只读）
func (c *RepairSessionController) Progress() *game.SessionProgress {
	return c.progress
}

// Registry 返回修理区域注册表（渲染方只读）
func (c *RepairSessionController) Registry() *game.RepairAreaRegistry {
	return c.registry
}

// ToolSelect 返回工具选择子系统
func (c *RepairSessionController) ToolSelect() *ToolSelectSystem {
	return c.toolSelect
}

// Attempt 返回修理尝试判定子系统
func (c *RepairSessionController) Attempt() *RepairAttemptSystem {
	return c.attempt
}

// Effects 返回特效子系统
func (c *RepairSessionController) Effects() *EffectsSystem {
	return c.effects
}

// Cleaning 返回清洁子系统
func (c *RepairSessionController) Cleaning() *CleaningSystem {
	return c.cleaning
}

// Hands 返回引导手势子系统
func (c *RepairSessionController) Hands() *GuidingHandSystem {
	return c.hands
}
