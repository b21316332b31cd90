package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., repair session, future menu screens).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Teardown 是一个可选接口，用于支持场景在退出时同步清理状态
//
// 实现此接口的场景会在切换走或程序退出时被调用 TeardownOnExit()。
// 修理场景用它清空所有区域、清洁子玩法和特效；
// 因为模拟中不存在定时器，清理是同步的，不会有回调在清理后触发
type Teardown interface {
	// TeardownOnExit 在场景退出时清理状态
	TeardownOnExit()
}
