package systems

import (
	"time"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/config"
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/types"
)

// 测试用的固定步长（16ms，接近 60fps）
const testDT = 0.016

// centerPet 所有部件都在同一位置的测试宠物
type centerPet struct{}

func (centerPet) ComponentPosition(c types.RobotComponent) (float64, float64, bool) {
	return 400, 300, true
}

// fakeTracker 记录完成上报的进度追踪器
type fakeTracker struct {
	calls   int
	elapsed time.Duration
	fixedID []string
}

func (t *fakeTracker) RecordRepairCompleted(elapsed time.Duration, fixedComponentIDs []string) error {
	t.calls++
	t.elapsed = elapsed
	t.fixedID = fixedComponentIDs
	return nil
}

// recordingAudio 记录所有调用的音效协作者，panicOn 非空时对应调用会 panic
type recordingAudio struct {
	calls   []string
	panicOn string
}

func (a *recordingAudio) record(name string) {
	a.calls = append(a.calls, name)
	if a.panicOn == name {
		panic("audio device error")
	}
}

func (a *recordingAudio) PlaySound(soundID string, volume float64) { a.record("sound:" + soundID) }
func (a *recordingAudio) PlayToolSelect(intensity float64)         { a.record("tool_select") }
func (a *recordingAudio) PlayRepairAction(intensity float64)       { a.record("repair_action") }
func (a *recordingAudio) PlayRepairSuccess(intensity float64)      { a.record("repair_success") }
func (a *recordingAudio) PlayCleaningAudio(tool string, intensity float64) {
	a.record("cleaning:" + tool)
}
func (a *recordingAudio) PlayProgressiveRepairFeedback(percent, maxIntensity float64) {
	a.record("progressive")
}

// countingOverlay 记录手势显示次数的引导覆盖层
type countingOverlay struct {
	shown int
}

func (o *countingOverlay) ShowTapGesture(x, y float64, duration float64) ecs.EntityID {
	o.shown++
	return ecs.EntityID(o.shown)
}
func (o *countingOverlay) HideGuidingHand(id ecs.EntityID) {}
func (o *countingOverlay) HideAllGuidingHands()            {}

// newTestController 创建一个已初始化的测试会话
func newTestController(problems []config.ProblemSpec) (*RepairSessionController, *fakeTracker, error) {
	em := ecs.NewEntityManager()
	tracker := &fakeTracker{}
	c := NewRepairSessionController(em, config.DefaultRepairConfig(), nil, tracker)
	err := c.InitializeRepair(centerPet{}, problems, types.AgeGroupMiddle)
	return c, tracker, err
}

// stepSeconds 以 testDT 步长推进会话指定时长
func stepSeconds(c *RepairSessionController, seconds float64) {
	for t := 0.0; t < seconds; t += testDT {
		c.Update(testDT)
	}
}

// getProblem 按故障ID取故障组件
func getProblem(c *RepairSessionController, problemID string) (*components.ProblemComponent, bool) {
	id, ok := c.Registry().AreaByProblem(problemID)
	if !ok {
		return nil, false
	}
	return ecs.GetComponent[*components.ProblemComponent](c.entityManager, id)
}

// getClickable 取实体的可点击组件
func getClickable(c *RepairSessionController, id ecs.EntityID) (*components.ClickableComponent, bool) {
	return ecs.GetComponent[*components.ClickableComponent](c.entityManager, id)
}

// singleProblem 返回只有一个故障的列表
func singleProblem(id, component, problemType string, severity int, tool string) []config.ProblemSpec {
	return []config.ProblemSpec{
		{ID: id, Component: component, Type: problemType, Severity: severity, RequiredTool: tool},
	}
}
