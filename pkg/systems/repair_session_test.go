package systems

import (
	"testing"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/config"
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/types"
)

// TestInitializeRequiresPet 测试缺少宠物时初始化失败
func TestInitializeRequiresPet(t *testing.T) {
	em := ecs.NewEntityManager()
	c := NewRepairSessionController(em, config.DefaultRepairConfig(), nil, nil)

	err := c.InitializeRepair(nil, singleProblem("p1", "power_core", "broken", 1, "wrench"), types.AgeGroupMiddle)
	if err == nil {
		t.Fatal("缺少宠物时应返回错误")
	}
	if c.State() != SessionInitializing {
		t.Errorf("初始化失败后状态应保持 Initializing, got %v", c.State())
	}
}

// TestInitializeRequiresProblems 测试空故障列表时初始化失败
func TestInitializeRequiresProblems(t *testing.T) {
	em := ecs.NewEntityManager()
	c := NewRepairSessionController(em, config.DefaultRepairConfig(), nil, nil)

	err := c.InitializeRepair(centerPet{}, nil, types.AgeGroupMiddle)
	if err == nil {
		t.Fatal("空故障列表应返回错误")
	}

	// 未初始化的会话推进是无操作
	c.Update(testDT)
	if c.Progress().ElapsedTime != 0 {
		t.Error("未初始化的会话不应累计时间")
	}
}

// TestInitializeRejectsInvalidSpec 测试非法故障定义被校验拦截
func TestInitializeRejectsInvalidSpec(t *testing.T) {
	em := ecs.NewEntityManager()
	c := NewRepairSessionController(em, config.DefaultRepairConfig(), nil, nil)

	bad := []config.ProblemSpec{
		{ID: "", Component: "power_core", Type: "broken", Severity: 1, RequiredTool: "wrench"},
	}
	if err := c.InitializeRepair(centerPet{}, bad, types.AgeGroupMiddle); err == nil {
		t.Error("空 ID 的故障定义应校验失败")
	}
}

// TestInitializeCreatesToolsAndAreas 测试初始化建立完整的工具集和区域注册表
func TestInitializeCreatesToolsAndAreas(t *testing.T) {
	def := config.DefaultPetDefinition()
	c, _, err := newTestController(def.Problems)
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	if c.State() != SessionInProgress {
		t.Errorf("初始化后状态应为 InProgress, got %v", c.State())
	}

	tools := ecs.GetEntitiesWith1[*components.ToolComponent](c.entityManager)
	if len(tools) != len(types.AllTools()) {
		t.Errorf("工具实体数量 got %d, want %d", len(tools), len(types.AllTools()))
	}

	if c.Registry().Count() != len(def.Problems) {
		t.Errorf("区域数量 got %d, want %d", c.Registry().Count(), len(def.Problems))
	}
	if c.Progress().TotalProblems != len(def.Problems) {
		t.Errorf("故障总数 got %d, want %d", c.Progress().TotalProblems, len(def.Problems))
	}

	// 初始引导手势显示在第一个故障上
	hands := ecs.GetEntitiesWith1[*components.GuidingHandComponent](c.entityManager)
	if len(hands) != 1 {
		t.Errorf("初始化后应有 1 个引导手势, got %d", len(hands))
	}
}

// TestSessionCompletionReportedExactlyOnce 测试完成上报在整个会话生命周期恰好一次
func TestSessionCompletionReportedExactlyOnce(t *testing.T) {
	c, tracker, err := newTestController(singleProblem("p1", "power_core", "low_power", 2, "circuit_board"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("p1")
	c.ToolSelect().SelectTool(types.ToolCircuitBoard)
	c.Attempt().AttemptRepair(areaID)

	stepSeconds(c, 3.2)

	if !c.Progress().IsComplete {
		t.Fatal("全部修复后会话应完成")
	}
	if c.State() != SessionComplete {
		t.Errorf("状态应为 Complete, got %v", c.State())
	}
	if tracker.calls != 1 {
		t.Fatalf("完成上报应恰好 1 次, got %d", tracker.calls)
	}
	if tracker.elapsed <= 0 {
		t.Errorf("上报的耗时应为正值, got %v", tracker.elapsed)
	}
	if len(tracker.fixedID) != 1 || tracker.fixedID[0] != "p1" {
		t.Errorf("上报的修复列表错误: %v", tracker.fixedID)
	}

	// 完成后的帧对上报而言是无操作
	stepSeconds(c, 2.0)
	if tracker.calls != 1 {
		t.Errorf("完成后继续推进不应再上报, got %d 次", tracker.calls)
	}
}

// TestSkipAllCompletesEverything 测试跳过快捷通道一帧内完成全部区域
func TestSkipAllCompletesEverything(t *testing.T) {
	def := config.DefaultPetDefinition()
	c, tracker, err := newTestController(def.Problems)
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	// 先把一个清洁子玩法跑起来，确认跳过也能清掉它
	dirtyID, _ := c.Registry().AreaByProblem("p2")
	c.ToolSelect().SelectTool(types.ToolOilCan)
	c.Attempt().AttemptRepair(dirtyID)

	c.SkipAll()
	c.Update(testDT)

	if c.Progress().FixedProblems != c.Progress().TotalProblems {
		t.Errorf("跳过后应全部修复: %d/%d",
			c.Progress().FixedProblems, c.Progress().TotalProblems)
	}
	if c.Cleaning().ActiveStage() != nil {
		t.Error("跳过后不应残留活动的清洁子玩法")
	}
	if tracker.calls != 1 {
		t.Errorf("跳过路径的完成上报也应恰好 1 次, got %d", tracker.calls)
	}

	// 完成后的再次跳过是无操作
	c.SkipAll()
	c.Update(testDT)
	if tracker.calls != 1 {
		t.Errorf("完成后的跳过不应再上报, got %d", tracker.calls)
	}
}

// TestCompletionSpawnsCelebration 测试会话完成触发庆祝特效
func TestCompletionSpawnsCelebration(t *testing.T) {
	c, _, err := newTestController(singleProblem("p1", "power_core", "broken", 1, "wrench"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	c.SkipAll()
	c.Update(testDT)

	found := false
	for _, id := range ecs.GetEntitiesWith1[*components.EffectComponent](c.entityManager) {
		effect, _ := ecs.GetComponent[*components.EffectComponent](c.entityManager, id)
		if effect.Kind == components.EffectCelebration {
			found = true
		}
	}
	if !found {
		t.Error("会话完成后应有庆祝特效")
	}
}

// TestDeadEffectsPrunedFromAreas 测试过期特效的ID会从区域列表中清除
func TestDeadEffectsPrunedFromAreas(t *testing.T) {
	c, _, err := newTestController(singleProblem("p1", "power_core", "broken", 1, "wrench"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("p1")
	c.ToolSelect().SelectTool(types.ToolBrush)
	c.Attempt().AttemptRepair(areaID) // 错误工具 -> 错误特效（最长 1.2 秒）

	area := areaComponent(t, c, "p1")
	if len(area.ActiveEffects) != 1 {
		t.Fatalf("应有 1 个挂载特效, got %d", len(area.ActiveEffects))
	}

	stepSeconds(c, 1.5)
	if len(area.ActiveEffects) != 0 {
		t.Errorf("过期特效的ID应被清除, got %d", len(area.ActiveEffects))
	}
}

// TestPanickingAudioDoesNotBreakSession 测试音效协作者 panic 不影响模拟
func TestPanickingAudioDoesNotBreakSession(t *testing.T) {
	em := ecs.NewEntityManager()
	tracker := &fakeTracker{}
	audio := &recordingAudio{panicOn: "repair_success"}
	c := NewRepairSessionController(em, config.DefaultRepairConfig(), audio, tracker)
	if err := c.InitializeRepair(centerPet{}, singleProblem("p1", "power_core", "broken", 1, "wrench"), types.AgeGroupMiddle); err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("p1")
	c.ToolSelect().SelectTool(types.ToolWrench)
	c.Attempt().AttemptRepair(areaID)
	stepSeconds(c, 3.0)

	// PlayRepairSuccess panic 被隔离，完成流程照常走完
	if !c.Progress().IsComplete {
		t.Error("音效 panic 不应阻止会话完成")
	}
	if tracker.calls != 1 {
		t.Errorf("音效 panic 不应影响完成上报, got %d 次", tracker.calls)
	}
	if len(audio.calls) == 0 {
		t.Error("音效协作者应收到过调用")
	}
}

// TestTeardownClearsEverything 测试退出清理不留任何实体
func TestTeardownClearsEverything(t *testing.T) {
	def := config.DefaultPetDefinition()
	c, _, err := newTestController(def.Problems)
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	// 制造一些中途状态：清洁进行中 + 特效存活
	dirtyID, _ := c.Registry().AreaByProblem("p2")
	c.ToolSelect().SelectTool(types.ToolOilCan)
	c.Attempt().AttemptRepair(dirtyID)
	stepSeconds(c, 1.0)

	c.Teardown()

	if c.State() != SessionInitializing {
		t.Errorf("清理后状态应回到 Initializing, got %v", c.State())
	}
	if c.Registry().Count() != 0 {
		t.Errorf("清理后注册表应为空, got %d", c.Registry().Count())
	}
	if c.Effects().ActiveEffectCount() != 0 {
		t.Errorf("清理后不应有活动特效, got %d", c.Effects().ActiveEffectCount())
	}
	if c.Cleaning().ActiveStage() != nil {
		t.Error("清理后不应有活动的清洁子玩法")
	}

	// 同一控制器可以重新初始化开始新会话
	if err := c.InitializeRepair(centerPet{}, def.Problems, types.AgeGroupYoung); err != nil {
		t.Fatalf("清理后重新初始化失败: %v", err)
	}
	if c.State() != SessionInProgress {
		t.Errorf("重新初始化后状态应为 InProgress, got %v", c.State())
	}
	if c.Progress().ElapsedTime != 0 {
		t.Error("重新初始化后会话时钟应归零")
	}
}

// TestShowHintTargetsFirstUnfixedArea 测试提示快捷键指向第一个未修复区域的工具
func TestShowHintTargetsFirstUnfixedArea(t *testing.T) {
	def := config.DefaultPetDefinition()
	c, _, err := newTestController(def.Problems)
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	// 让初始引导手势先过期
	stepSeconds(c, 3.5)
	before := len(ecs.GetEntitiesWith1[*components.GuidingHandComponent](c.entityManager))
	if before != 0 {
		t.Fatalf("初始手势应已过期, got %d", before)
	}

	c.ShowHint()
	hands := ecs.GetEntitiesWith1[*components.GuidingHandComponent](c.entityManager)
	if len(hands) != 1 {
		t.Errorf("提示应显示 1 个手势, got %d", len(hands))
	}
}
