package systems

import (
	"log"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/config"
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/game"
	"github.com/decker502/robopet/pkg/types"
)

// 泡泡特效和清洁音效的节流间隔（秒）
// 每帧都触发会刷屏/刷音效，按固定间隔触发
const bubbleInterval = 0.4

// CleaningSystem DIRTY 故障的连续清洁子玩法
//
// 状态机：Idle -> Active -> Complete。
// 整个会话同一时刻最多一个清洁子玩法处于 Active：
// 已有活动实例时再次启动是非法转换，直接忽略（单线程，不需要锁）。
//
// DirtLevel 和 Progress 是独立数值轨道：
// 进度按年龄段速度每帧累加，剩余脏污 = DirtLevel * (1 - Progress/100)
// 只用于缩放音效强度；两者都不会为负或超过 100
type CleaningSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.RepairConfig
	progress      *game.SessionProgress
	effects       *EffectsSystem
	feedback      *game.FeedbackCoordinator
	repairSystem  *RepairProgressSystem

	ageGroup    types.AgeGroup
	activeStage ecs.EntityID // 0 表示没有活动的清洁子玩法
	bubbleTimer float64      // 距下次泡泡特效的累计时间
}

// NewCleaningSystem 创建清洁系统
func NewCleaningSystem(
	em *ecs.EntityManager,
	cfg *config.RepairConfig,
	progress *game.SessionProgress,
	effects *EffectsSystem,
	feedback *game.FeedbackCoordinator,
	repairSystem *RepairProgressSystem,
) *CleaningSystem {
	return &CleaningSystem{
		entityManager: em,
		cfg:           cfg,
		progress:      progress,
		effects:       effects,
		feedback:      feedback,
		repairSystem:  repairSystem,
		ageGroup:      types.AgeGroupMiddle,
	}
}

// SetAgeGroup 设置年龄段（决定清洁速度）
func (s *CleaningSystem) SetAgeGroup(age types.AgeGroup) {
	s.ageGroup = age
}

// StartCleaning 为 DIRTY 故障启动清洁子玩法
// selectedTool 决定清洁方式：油壶 -> "spray"，其他 -> "brush"
// 已有活动实例时是非法转换，忽略并返回 false
func (s *CleaningSystem) StartCleaning(areaID ecs.EntityID, selectedTool types.ToolType) bool {
	if s.activeStage != 0 {
		log.Printf("[Cleaning] 已有活动的清洁子玩法，忽略新的启动请求")
		return false
	}

	area, ok := ecs.GetComponent[*components.RepairAreaComponent](s.entityManager, areaID)
	if !ok || area.State == components.RepairFixed {
		return false
	}
	problem, ok := ecs.GetComponent[*components.ProblemComponent](s.entityManager, areaID)
	if !ok {
		return false
	}

	cleaningTool := "brush"
	if selectedTool == types.ToolOilCan {
		cleaningTool = "spray"
	}

	stage := &components.CleaningStageComponent{
		State:        components.CleaningActive,
		AreaID:       areaID,
		CleaningTool: cleaningTool,
		Texture:      problem.Component.CleaningTexture(),
		DirtLevel:    s.cfg.InitialDirtLevel(problem.Severity),
		Progress:     0,
		Component:    problem.Component,
	}

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, stage)
	s.activeStage = id
	s.bubbleTimer = 0

	// 区域进入修理中状态（进度由清洁进度镜像）
	if area.State == components.RepairNotStarted {
		area.State = components.RepairInProgress
		area.StartTime = s.progress.ElapsedTime
	}

	log.Printf("[Cleaning] 开始清洁 %s: 脏污 %.0f, 工具 %s, 贴图 %s",
		problem.ID, stage.DirtLevel, cleaningTool, stage.Texture)
	return true
}

// ActiveStage 返回当前活动的清洁子玩法组件（没有时返回 nil）
func (s *CleaningSystem) ActiveStage() *components.CleaningStageComponent {
	if s.activeStage == 0 {
		return nil
	}
	stage, ok := ecs.GetComponent[*components.CleaningStageComponent](s.entityManager, s.activeStage)
	if !ok {
		return nil
	}
	return stage
}

// Update 推进活动清洁子玩法一帧
func (s *CleaningSystem) Update(dt float64) {
	stage := s.ActiveStage()
	if stage == nil || stage.State != components.CleaningActive {
		return
	}

	// 进度按年龄段速度累加，单调不减，封顶 100
	speed := s.cfg.CleaningSpeed(s.ageGroup)
	stage.Progress += speed * dt
	if stage.Progress > 100 {
		stage.Progress = 100
	}

	// 区域进度镜像清洁进度，保持不变量 0 <= Progress <= 100
	if area, ok := ecs.GetComponent[*components.RepairAreaComponent](s.entityManager, stage.AreaID); ok {
		if stage.Progress > area.Progress {
			area.Progress = stage.Progress
		}
	}

	// 按固定间隔产生泡泡特效和清洁音效（强度随剩余脏污缩放）
	s.bubbleTimer += dt
	if s.bubbleTimer >= bubbleInterval {
		s.bubbleTimer -= bubbleInterval
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, stage.AreaID); ok {
			effectID := s.effects.Spawn(components.EffectCleaningBubbles, pos.X, pos.Y, stage.Progress/100)
			if area, ok := ecs.GetComponent[*components.RepairAreaComponent](s.entityManager, stage.AreaID); ok {
				area.ActiveEffects = append(area.ActiveEffects, effectID)
			}
		}
		s.feedback.CleaningTick(stage.CleaningTool, stage.RemainingDirt())
	}

	// 清洁完成：走与标准修理相同的区域完成路径
	if stage.Progress >= 100 {
		stage.State = components.CleaningComplete
		s.progress.CleaningStagesComplete++
		s.repairSystem.CompleteArea(stage.AreaID)
		s.entityManager.DestroyEntity(s.activeStage)
		s.activeStage = 0
		log.Printf("[Cleaning] 清洁完成 (累计 %d 次)", s.progress.CleaningStagesComplete)
	}
}

// Reset 清除活动的清洁子玩法（会话退出时调用）
func (s *CleaningSystem) Reset() {
	if s.activeStage != 0 {
		s.entityManager.DestroyEntity(s.activeStage)
		s.activeStage = 0
	}
	s.bubbleTimer = 0
}
