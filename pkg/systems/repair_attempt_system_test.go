package systems

import (
	"testing"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/config"
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/game"
	"github.com/decker502/robopet/pkg/types"
)

// TestAttemptWithoutToolIsNoop 测试未选中工具时点击区域是无操作
func TestAttemptWithoutToolIsNoop(t *testing.T) {
	c, _, err := newTestController(singleProblem("p1", "power_core", "broken", 1, "wrench"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("p1")
	c.Attempt().AttemptRepair(areaID)

	if c.Progress().Attempts != 0 {
		t.Errorf("未选工具的点击不应计入尝试, got %d", c.Progress().Attempts)
	}
	if areaComponent(t, c, "p1").State != components.RepairNotStarted {
		t.Error("未选工具的点击不应改变区域状态")
	}
}

// TestWrongToolCountsButNeverProgresses 测试错误工具只计数，绝不推进进度
func TestWrongToolCountsButNeverProgresses(t *testing.T) {
	c, _, err := newTestController(singleProblem("p1", "power_core", "broken", 2, "wrench"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("p1")
	c.ToolSelect().SelectTool(types.ToolBrush)
	c.Attempt().AttemptRepair(areaID)

	p := c.Progress()
	if p.Attempts != 1 || p.IncorrectToolUsages != 1 || p.CorrectToolUsages != 0 {
		t.Errorf("计数错误: attempts %d, incorrect %d, correct %d",
			p.Attempts, p.IncorrectToolUsages, p.CorrectToolUsages)
	}

	area := areaComponent(t, c, "p1")
	if area.State != components.RepairNotStarted {
		t.Error("错误工具不应启动修理")
	}
	if area.Progress != 0 {
		t.Errorf("错误工具不应产生进度, got %.1f", area.Progress)
	}

	// 错误特效（8 个粒子）已生成并挂到区域上
	if len(area.ActiveEffects) != 1 {
		t.Fatalf("应有 1 个错误特效, got %d", len(area.ActiveEffects))
	}
	effect, ok := ecs.GetComponent[*components.EffectComponent](c.entityManager, area.ActiveEffects[0])
	if !ok || effect.Kind != components.EffectError {
		t.Error("挂在区域上的应是错误特效")
	}
}

// TestCorrectToolStartsRepair 测试正确工具启动标准修理
func TestCorrectToolStartsRepair(t *testing.T) {
	c, _, err := newTestController(singleProblem("p1", "power_core", "broken", 2, "wrench"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("p1")
	c.ToolSelect().SelectTool(types.ToolWrench)
	c.Attempt().AttemptRepair(areaID)

	p := c.Progress()
	if p.Attempts != 1 || p.CorrectToolUsages != 1 {
		t.Errorf("计数错误: attempts %d, correct %d", p.Attempts, p.CorrectToolUsages)
	}

	area := areaComponent(t, c, "p1")
	if area.State != components.RepairInProgress {
		t.Errorf("区域应进入修理中, got %v", area.State)
	}
	// 严重度 2 -> 2.0 + 2*0.5 = 3.0 秒
	if area.Duration != 3.0 {
		t.Errorf("严重度2的修理时长应为 3.0 秒, got %.1f", area.Duration)
	}
}

// TestCorrectToolOnDirtyStartsCleaning 测试 DIRTY 故障用正确工具走清洁子玩法
func TestCorrectToolOnDirtyStartsCleaning(t *testing.T) {
	c, _, err := newTestController(singleProblem("d1", "motor_system", "dirty", 2, "brush"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("d1")
	c.ToolSelect().SelectTool(types.ToolBrush)
	c.Attempt().AttemptRepair(areaID)

	stage := c.Cleaning().ActiveStage()
	if stage == nil {
		t.Fatal("DIRTY 故障应启动清洁子玩法而不是标准修理")
	}
	if stage.CleaningTool != "brush" {
		t.Errorf("刷子应映射到 brush, got %s", stage.CleaningTool)
	}
	// 严重度 2 -> 2*30+10 = 70
	if stage.DirtLevel != 70 {
		t.Errorf("严重度2的初始脏污应为 70, got %.0f", stage.DirtLevel)
	}
}

// TestFixedAreaClickIsNoop 测试已修复区域上的点击幂等
func TestFixedAreaClickIsNoop(t *testing.T) {
	c, _, err := newTestController(singleProblem("p1", "power_core", "broken", 1, "wrench"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("p1")
	c.repairSystem.CompleteArea(areaID)

	c.ToolSelect().SelectTool(types.ToolWrench)
	c.Attempt().AttemptRepair(areaID)
	c.Attempt().AttemptRepair(areaID)

	if c.Progress().Attempts != 0 {
		t.Errorf("已修复区域上的点击不应计入尝试, got %d", c.Progress().Attempts)
	}
}

// TestHintAfterConsecutiveWrongAttempts 测试同一区域连续用错 2 次后显示工具提示
func TestHintAfterConsecutiveWrongAttempts(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultRepairConfig()
	progress := &game.SessionProgress{}
	progress.Reset(1)
	feedback := game.NewFeedbackCoordinator(nil)
	effects := NewEffectsSystem(em)
	repairSystem := NewRepairProgressSystem(em, cfg, progress, effects, feedback)
	cleaning := NewCleaningSystem(em, cfg, progress, effects, feedback, repairSystem)
	overlay := &countingOverlay{}
	attempt := NewRepairAttemptSystem(em, progress, effects, feedback, repairSystem, cleaning, overlay, cfg.HintThreshold)

	// 手工搭建一个区域和正确工具的实体
	areaID := em.CreateEntity()
	em.AddComponent(areaID, &components.ProblemComponent{
		ID: "p1", Type: types.ProblemBroken, Severity: 1, RequiredTool: types.ToolWrench,
	})
	em.AddComponent(areaID, &components.RepairAreaComponent{
		ProblemID: "p1", RequiredTool: types.ToolWrench,
		State: components.RepairNotStarted, Duration: 2.5,
	})
	em.AddComponent(areaID, &components.PositionComponent{X: 100, Y: 100})

	toolID := em.CreateEntity()
	em.AddComponent(toolID, &components.ToolComponent{Type: types.ToolWrench, IsUnlocked: true})
	em.AddComponent(toolID, &components.PositionComponent{X: 60, Y: 540})

	progress.SelectedTool = types.ToolBrush

	// 第一次错误：还不到阈值
	attempt.AttemptRepair(areaID)
	if overlay.shown != 0 {
		t.Errorf("1 次错误后不应显示提示, got %d", overlay.shown)
	}

	// 第二次连续错误：达到阈值，显示提示
	attempt.AttemptRepair(areaID)
	if overlay.shown != 1 {
		t.Errorf("连续 2 次错误后应显示 1 次提示, got %d", overlay.shown)
	}

	// 阈值触发后计数清零：再错一次不会立即再提示
	attempt.AttemptRepair(areaID)
	if overlay.shown != 1 {
		t.Errorf("计数清零后第 1 次错误不应提示, got %d", overlay.shown)
	}
	attempt.AttemptRepair(areaID)
	if overlay.shown != 2 {
		t.Errorf("再次连续 2 次错误后应第 2 次提示, got %d", overlay.shown)
	}
}

// TestCorrectAttemptResetsWrongStreak 测试正确使用清零连续错误计数
func TestCorrectAttemptResetsWrongStreak(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultRepairConfig()
	progress := &game.SessionProgress{}
	progress.Reset(1)
	feedback := game.NewFeedbackCoordinator(nil)
	effects := NewEffectsSystem(em)
	repairSystem := NewRepairProgressSystem(em, cfg, progress, effects, feedback)
	cleaning := NewCleaningSystem(em, cfg, progress, effects, feedback, repairSystem)
	overlay := &countingOverlay{}
	attempt := NewRepairAttemptSystem(em, progress, effects, feedback, repairSystem, cleaning, overlay, cfg.HintThreshold)

	areaID := em.CreateEntity()
	em.AddComponent(areaID, &components.ProblemComponent{
		ID: "p1", Type: types.ProblemBroken, Severity: 1, RequiredTool: types.ToolWrench,
	})
	em.AddComponent(areaID, &components.RepairAreaComponent{
		ProblemID: "p1", RequiredTool: types.ToolWrench,
		State: components.RepairNotStarted, Duration: 2.5,
	})
	em.AddComponent(areaID, &components.PositionComponent{X: 100, Y: 100})

	// 错一次，然后用对一次，再错一次：从未连续达到 2 次
	progress.SelectedTool = types.ToolBrush
	attempt.AttemptRepair(areaID)

	progress.SelectedTool = types.ToolWrench
	attempt.AttemptRepair(areaID)

	progress.SelectedTool = types.ToolBrush
	attempt.AttemptRepair(areaID)

	if overlay.shown != 0 {
		t.Errorf("连续错误从未达到阈值，不应显示提示, got %d", overlay.shown)
	}
}
