package systems

import (
	"testing"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/types"
)

// TestRepairProgressTimeBased 测试进度由会话时钟推导而不是独立定时器
func TestRepairProgressTimeBased(t *testing.T) {
	// 严重度 2 -> 3.0 秒
	c, _, err := newTestController(singleProblem("p1", "power_core", "low_power", 2, "circuit_board"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("p1")
	c.ToolSelect().SelectTool(types.ToolCircuitBoard)
	c.Attempt().AttemptRepair(areaID)

	// 推进一半时长，进度应在 50% 附近（步长离散导致少量超出）
	stepSeconds(c, 1.5)
	area := areaComponent(t, c, "p1")
	if area.Progress < 45 || area.Progress > 55 {
		t.Errorf("1.5 秒后进度应约 50%%, got %.1f", area.Progress)
	}

	// 推进到超过总时长，区域完成
	stepSeconds(c, 1.8)
	if area.State != components.RepairFixed {
		t.Errorf("超过修理时长后区域应已修复, got %v", area.State)
	}
	if area.Progress != 100 {
		t.Errorf("已修复区域进度必须为 100, got %.1f", area.Progress)
	}
}

// TestRepairProgressMonotonic 测试进度单调不减且不超过 100
func TestRepairProgressMonotonic(t *testing.T) {
	c, _, err := newTestController(singleProblem("p1", "power_core", "broken", 3, "wrench"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("p1")
	c.ToolSelect().SelectTool(types.ToolWrench)
	c.Attempt().AttemptRepair(areaID)

	area := areaComponent(t, c, "p1")
	last := area.Progress
	for i := 0; i < 300; i++ {
		c.Update(testDT)
		if area.Progress < last {
			t.Fatalf("第 %d 帧进度回退: %.2f -> %.2f", i, last, area.Progress)
		}
		if area.Progress > 100 {
			t.Fatalf("第 %d 帧进度越界: %.2f", i, area.Progress)
		}
		last = area.Progress
	}
}

// TestStartRepairIdempotent 测试修理中的区域重复启动不重置起点
func TestStartRepairIdempotent(t *testing.T) {
	c, _, err := newTestController(singleProblem("p1", "power_core", "broken", 2, "wrench"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("p1")
	c.ToolSelect().SelectTool(types.ToolWrench)
	c.Attempt().AttemptRepair(areaID)

	area := areaComponent(t, c, "p1")
	stepSeconds(c, 1.0)
	before := area.Progress

	// 修理中再次点击（重复启动）
	c.Attempt().AttemptRepair(areaID)
	c.Update(testDT)

	if area.Progress < before {
		t.Errorf("重复启动不应重置进度: %.1f -> %.1f", before, area.Progress)
	}
	if area.StartTime != 0 {
		t.Errorf("StartTime 不应被重复启动改写, got %.3f", area.StartTime)
	}
}

// TestCompleteAreaUnifiedPath 测试完成路径的全部副作用
func TestCompleteAreaUnifiedPath(t *testing.T) {
	c, _, err := newTestController(singleProblem("p1", "power_core", "broken", 1, "wrench"))
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	areaID, _ := c.Registry().AreaByProblem("p1")
	c.repairSystem.CompleteArea(areaID)

	area := areaComponent(t, c, "p1")
	if area.State != components.RepairFixed {
		t.Error("区域状态应为已修复")
	}
	if area.Progress != 100 {
		t.Errorf("进度应为 100, got %.1f", area.Progress)
	}
	if area.IsHighlighted {
		t.Error("已修复区域的高亮应被清除")
	}

	problem, _ := getProblem(c, "p1")
	if !problem.IsFixed {
		t.Error("故障本体的修复标记应同步置位")
	}

	clickable, ok := getClickable(c, areaID)
	if !ok || clickable.IsEnabled {
		t.Error("已修复区域不应再接受点击")
	}

	// 成功爆发特效已挂载
	if len(area.ActiveEffects) != 1 {
		t.Fatalf("应有 1 个成功特效, got %d", len(area.ActiveEffects))
	}

	// 二次完成是无操作：不叠加特效
	c.repairSystem.CompleteArea(areaID)
	if len(area.ActiveEffects) != 1 {
		t.Errorf("重复完成不应叠加特效, got %d", len(area.ActiveEffects))
	}
}

// TestParallelRepairs 测试多个区域同时修理互不干扰
func TestParallelRepairs(t *testing.T) {
	problems := append(
		singleProblem("fast", "power_core", "broken", 1, "wrench"),      // 2.5 秒
		singleProblem("slow", "sensor_array", "broken", 3, "wrench")..., // 3.5 秒
	)
	c, _, err := newTestController(problems)
	if err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	fastID, _ := c.Registry().AreaByProblem("fast")
	slowID, _ := c.Registry().AreaByProblem("slow")
	c.ToolSelect().SelectTool(types.ToolWrench)
	c.Attempt().AttemptRepair(fastID)
	c.Attempt().AttemptRepair(slowID)

	// 3 秒后：快的完成，慢的还在修
	stepSeconds(c, 3.0)
	if areaComponent(t, c, "fast").State != components.RepairFixed {
		t.Error("快区域应已修复")
	}
	slow := areaComponent(t, c, "slow")
	if slow.State != components.RepairInProgress {
		t.Errorf("慢区域应仍在修理中, got %v", slow.State)
	}

	stepSeconds(c, 1.5)
	if slow.State != components.RepairFixed {
		t.Error("慢区域最终也应修复")
	}
}
