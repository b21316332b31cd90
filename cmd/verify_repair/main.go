// verify_repair 无头验证工具
// 不开窗口，直接驱动会话控制器跑三个脚本化场景并打印结果：
//  1. 错误工具 -> 正确工具 -> 定时修复 -> 完成上报
//  2. DIRTY 故障的清洁子玩法
//  3. 跳过快捷通道（一帧内全部完成，上报恰好一次）
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/decker502/robopet/pkg/config"
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/systems"
	"github.com/decker502/robopet/pkg/types"
)

// countingTracker 记录上报次数的进度追踪器
type countingTracker struct {
	calls   int
	fixedID []string
}

func (t *countingTracker) RecordRepairCompleted(elapsed time.Duration, fixedComponentIDs []string) error {
	t.calls++
	t.fixedID = fixedComponentIDs
	return nil
}

// demoPet 全部部件都在屏幕中部的简单宠物
type demoPet struct{}

func (demoPet) ComponentPosition(c types.RobotComponent) (float64, float64, bool) {
	return 400, 300, true
}

func newSession(problems []config.ProblemSpec, age types.AgeGroup) (*systems.RepairSessionController, *countingTracker, error) {
	em := ecs.NewEntityManager()
	tracker := &countingTracker{}
	controller := systems.NewRepairSessionController(em, config.DefaultRepairConfig(), nil, tracker)
	err := controller.InitializeRepair(demoPet{}, problems, age)
	return controller, tracker, err
}

// tick 以 16ms 步长推进会话指定时长
func tick(c *systems.RepairSessionController, seconds float64) {
	const dt = 0.016
	for t := 0.0; t < seconds; t += dt {
		c.Update(dt)
	}
}

func scenarioStandardRepair() error {
	problems := []config.ProblemSpec{
		{ID: "p1", Component: "power_core", Type: "low_power", Severity: 2, RequiredTool: "circuit_board"},
	}
	c, tracker, err := newSession(problems, types.AgeGroupMiddle)
	if err != nil {
		return err
	}

	areaID, _ := c.Registry().AreaByProblem("p1")

	// 错误工具
	c.ToolSelect().SelectTool(types.ToolWrench)
	c.Attempt().AttemptRepair(areaID)
	if c.Progress().IncorrectToolUsages != 1 {
		return fmt.Errorf("期望 1 次错误使用，实际 %d", c.Progress().IncorrectToolUsages)
	}

	// 正确工具：严重度2 -> 3.0 秒
	c.ToolSelect().SelectTool(types.ToolCircuitBoard)
	c.Attempt().AttemptRepair(areaID)
	tick(c, 3.2)

	if !c.Progress().IsComplete {
		return fmt.Errorf("会话应该已完成")
	}
	if tracker.calls != 1 {
		return fmt.Errorf("完成上报应该恰好 1 次，实际 %d", tracker.calls)
	}

	// 完成后继续推进，上报不再发生
	tick(c, 1.0)
	if tracker.calls != 1 {
		return fmt.Errorf("完成后的帧不应再次上报，实际 %d 次", tracker.calls)
	}
	return nil
}

func scenarioCleaning() error {
	problems := []config.ProblemSpec{
		{ID: "d1", Component: "motor_system", Type: "dirty", Severity: 3, RequiredTool: "oil_can"},
	}
	c, tracker, err := newSession(problems, types.AgeGroupMiddle)
	if err != nil {
		return err
	}

	areaID, _ := c.Registry().AreaByProblem("d1")
	c.ToolSelect().SelectTool(types.ToolOilCan)
	c.Attempt().AttemptRepair(areaID)

	stage := c.Cleaning().ActiveStage()
	if stage == nil {
		return fmt.Errorf("清洁子玩法应该已激活")
	}
	if stage.DirtLevel != 100 {
		return fmt.Errorf("严重度3的初始脏污应为 100，实际 %.0f", stage.DirtLevel)
	}
	if stage.CleaningTool != "spray" {
		return fmt.Errorf("油壶应该映射到 spray，实际 %s", stage.CleaningTool)
	}

	// 速度 30/s -> 约 3.34 秒完成
	tick(c, 4.0)
	if c.Progress().CleaningStagesComplete != 1 {
		return fmt.Errorf("清洁子玩法应完成 1 次，实际 %d", c.Progress().CleaningStagesComplete)
	}
	if tracker.calls != 1 {
		return fmt.Errorf("完成上报应该恰好 1 次，实际 %d", tracker.calls)
	}
	return nil
}

func scenarioSkip() error {
	def := config.DefaultPetDefinition()
	c, tracker, err := newSession(def.Problems, types.AgeGroupYoung)
	if err != nil {
		return err
	}

	c.SkipAll()
	c.Update(0.016)

	if c.Progress().FixedProblems != c.Progress().TotalProblems {
		return fmt.Errorf("跳过后应全部修复: %d/%d",
			c.Progress().FixedProblems, c.Progress().TotalProblems)
	}
	if tracker.calls != 1 {
		return fmt.Errorf("完成上报应该恰好 1 次，实际 %d", tracker.calls)
	}
	return nil
}

func main() {
	log.SetOutput(os.Stderr)

	scenarios := []struct {
		name string
		run  func() error
	}{
		{"标准修理", scenarioStandardRepair},
		{"清洁子玩法", scenarioCleaning},
		{"跳过快捷通道", scenarioSkip},
	}

	failed := 0
	for _, sc := range scenarios {
		if err := sc.run(); err != nil {
			fmt.Printf("FAIL %s: %v\n", sc.name, err)
			failed++
		} else {
			fmt.Printf("PASS %s\n", sc.name)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
	fmt.Println("全部场景通过")
}
