package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/robopet/pkg/config"
	"github.com/decker502/robopet/pkg/ecs"
	"github.com/decker502/robopet/pkg/game"
	"github.com/decker502/robopet/pkg/systems"
)

// RepairScene 修理会话场景
// 持有实体管理器和会话控制器，把输入和渲染接到 ebiten 的帧循环上
type RepairScene struct {
	entityManager *ecs.EntityManager
	controller    *systems.RepairSessionController
	inputSystem   *systems.InputSystem
	renderSystem  *systems.RenderSystem
	pet           *game.RoboPet
}

// NewRepairScene 创建修理场景并初始化会话
//
// 参数：
//   - petDef: 宠物定义（部件锚点 + 故障列表）
//   - cfg: 修理调参
//   - audio: 音效协作者，可为 nil
//   - tracker: 进度追踪协作者，可为 nil
//   - settings: 设置管理器（读取年龄段）
//
// 返回：
//   - *RepairScene: 场景实例
//   - error: 宠物缺失或故障列表为空时初始化失败
func NewRepairScene(
	petDef *config.PetDefinition,
	cfg *config.RepairConfig,
	audio game.AudioHaptics,
	tracker game.ProgressTracker,
	settings *game.SettingsManager,
) (*RepairScene, error) {
	if petDef == nil {
		return nil, fmt.Errorf("创建修理场景失败: 缺少宠物定义")
	}

	em := ecs.NewEntityManager()
	controller := systems.NewRepairSessionController(em, cfg, audio, tracker)
	pet := game.NewRoboPet(petDef)

	age := settings.GetAgeGroup()
	if err := controller.InitializeRepair(pet, petDef.Problems, age); err != nil {
		return nil, fmt.Errorf("创建修理场景失败: %w", err)
	}

	scene := &RepairScene{
		entityManager: em,
		controller:    controller,
		inputSystem:   systems.NewInputSystem(em, controller),
		renderSystem:  systems.NewRenderSystem(em, controller),
		pet:           pet,
	}

	log.Printf("[RepairScene] 宠物 %s 的修理会话就绪", pet.Name())
	return scene, nil
}

// Update 推进场景一帧
func (s *RepairScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.controller.Update(deltaTime)
}

// Draw 渲染场景
func (s *RepairScene) Draw(screen *ebiten.Image) {
	// 车间背景色
	screen.Fill(color.RGBA{R: 38, G: 42, B: 54, A: 255})
	s.renderSystem.Draw(screen)
}

// TeardownOnExit 场景退出时的同步清理（实现 game.Teardown）
func (s *RepairScene) TeardownOnExit() {
	s.controller.Teardown()
}

// Controller 返回会话控制器（调试/验证工具使用）
func (s *RepairScene) Controller() *systems.RepairSessionController {
	return s.controller
}
