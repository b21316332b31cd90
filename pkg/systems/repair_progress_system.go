package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/config"
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/game"
	"github.com/decker502/robopet/pkg/types"
)

// RepairProgressSystem 推进标准（非清洁）修理
//
// 每个区域是一个 NotStarted -> InProgress -> Fixed 的状态机。
// 进度不用独立定时器驱动：进入 InProgress 时记录会话时钟，
// 每帧用 "已流逝时间 / 总时长" 重算进度。
// 这样 N 个区域同时修理也保持一致，会话退出时没有孤儿回调需要取消
type RepairProgressSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.RepairConfig
	progress      *game.SessionProgress
	effects       *EffectsSystem
	feedback      *game.FeedbackCoordinator
}

// NewRepairProgressSystem 创建修理进度系统
func NewRepairProgressSystem(
	em *ecs.EntityManager,
	cfg *config.RepairConfig,
	progress *game.SessionProgress,
	effects *EffectsSystem,
	feedback *game.FeedbackCoordinator,
) *RepairProgressSystem {
	return &RepairProgressSystem{
		entityManager: em,
		cfg:           cfg,
		progress:      progress,
		effects:       effects,
		feedback:      feedback,
	}
}

// StartRepair 让区域进入 InProgress 状态
// 已在修理中或已修复的区域：无操作
func (s *RepairProgressSystem) StartRepair(areaID ecs.EntityID) {
	area, ok := ecs.GetComponent[*components.RepairAreaComponent](s.entityManager, areaID)
	if !ok {
		return
	}
	if area.State != components.RepairNotStarted {
		return
	}

	area.State = components.RepairInProgress
	area.StartTime = s.progress.ElapsedTime
	log.Printf("[RepairProgress] 开始修理 %s (时长 %.1f 秒)", area.ProblemID, area.Duration)
}

// Update 推进所有 InProgress 区域的修理进度
func (s *RepairProgressSystem) Update(dt float64) {
	areaEntities := ecs.GetEntitiesWith2[
		*components.RepairAreaComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range areaEntities {
		area, ok := ecs.GetComponent[*components.RepairAreaComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if area.State != components.RepairInProgress {
			continue
		}

		// DIRTY 区域的进度由清洁子玩法驱动，完成条件是清洁进度到 100，
		// 不走这里的"已流逝时间 / 总时长"路径
		if problem, ok := ecs.GetComponent[*components.ProblemComponent](s.entityManager, id); ok &&
			problem.Type == types.ProblemDirty {
			continue
		}

		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 进度 = 已流逝时间占总时长的比例，封顶 100
		elapsed := s.progress.ElapsedTime - area.StartTime
		p := 100 * elapsed / area.Duration
		if p > 100 {
			p = 100
		}
		if p < area.Progress {
			// 进度只增不减
			p = area.Progress
		}
		area.Progress = p

		if area.Progress >= 100 {
			s.CompleteArea(id)
			continue
		}

		// 修理中概率性产生火花，并驱动随进度渐强的反馈
		if rand.Float64() < s.cfg.SparkChancePerSecond*dt {
			effectID := s.effects.Spawn(components.EffectSparks, pos.X, pos.Y, area.Progress/100)
			area.ActiveEffects = append(area.ActiveEffects, effectID)
			s.feedback.RepairProgress(area.Progress)
		}
	}
}

// CompleteArea 区域完成的统一路径
// 标准修理、清洁子玩法和跳过快捷键都走这里，
// 保证"修复即进度100、成功特效、成功音效"对所有来源一致
func (s *RepairProgressSystem) CompleteArea(areaID ecs.EntityID) {
	area, ok := ecs.GetComponent[*components.RepairAreaComponent](s.entityManager, areaID)
	if !ok {
		return
	}
	if area.State == components.RepairFixed {
		return
	}

	area.State = components.RepairFixed
	area.Progress = 100
	area.IsHighlighted = false

	// 同步故障本体的修复标记
	if problem, ok := ecs.GetComponent[*components.ProblemComponent](s.entityManager, areaID); ok {
		problem.IsFixed = true
	}

	// 已修复的区域不再接受点击
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, areaID); ok {
		clickable.IsEnabled = false
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, areaID); ok {
		effectID := s.effects.Spawn(components.EffectSuccessBurst, pos.X, pos.Y, 1.0)
		area.ActiveEffects = append(area.ActiveEffects, effectID)
	}

	s.feedback.AreaFixed()
	log.Printf("[RepairProgress] 区域 %s 修复完成", area.ProblemID)
}
