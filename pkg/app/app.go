// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，方便无头验证工具复用同一套装配
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/robopet/pkg/config"
	"github.com/decker502/robopet/pkg/game"
	"github.com/decker502/robopet/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// PetConfigPath 宠物定义文件路径，为空则使用内置演示宠物
	PetConfigPath string
	// RepairConfigPath 修理调参文件路径，为空则使用默认值
	RepairConfigPath string
	// AgeGroup 覆盖设置中的年龄段（"young"/"middle"/"older"），为空则不覆盖
	AgeGroup string
	// Silent 禁用音频（无声模式，CI 和无音频设备环境使用）
	Silent bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// gdata 跨平台存储：打开失败进入降级模式（仅内存），不阻止游戏启动
	gdataManager, err := gdata.Open(gdata.Config{AppName: "robopet"})
	if err != nil {
		log.Printf("[App] Warning: gdata 不可用: %v (设置与统计仅保留在内存)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: 设置加载失败: %v", err)
	}
	if cfg.AgeGroup != "" {
		settingsManager.GetSettings().AgeGroup = cfg.AgeGroup
	}

	// 音频：无声模式下不创建上下文，AudioManager 自动降级
	var audioContext *audio.Context
	if !cfg.Silent {
		audioContext = audio.NewContext(48000)
	}
	audioManager := game.NewAudioManager(audioContext, settingsManager, "data/sounds")

	// 进度追踪：gdata 持久化的修理统计
	statsManager := game.NewRepairStatsManager(gdataManager)

	// 加载配置
	repairPath := cfg.RepairConfigPath
	if repairPath == "" {
		repairPath = "data/config/repair.yaml"
	}
	repairCfg, err := config.LoadRepairConfig(repairPath)
	if err != nil {
		return nil, fmt.Errorf("修理配置加载失败: %w", err)
	}

	petPath := cfg.PetConfigPath
	if petPath == "" {
		petPath = "data/config/pets/robo_dog.yaml"
	}
	petDef, err := config.LoadPetDefinition(petPath)
	if err != nil {
		return nil, fmt.Errorf("宠物配置加载失败: %w", err)
	}

	// 创建场景管理器并进入修理场景
	sceneManager := game.NewSceneManager()
	repairScene, err := scenes.NewRepairScene(petDef, repairCfg, audioManager, statsManager, settingsManager)
	if err != nil {
		return nil, fmt.Errorf("修理场景创建失败: %w", err)
	}
	sceneManager.SwitchTo(repairScene)

	log.Printf("[App] 初始化完成")
	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸，与实际窗口尺寸无关
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(config.ScreenWidth), int(config.ScreenHeight)
}

// Shutdown 程序退出前的清理：触发当前场景的同步清理
func (a *App) Shutdown() {
	if scene := a.sceneManager.GetCurrentScene(); scene != nil {
		if td, ok := scene.(game.Teardown); ok {
			td.TeardownOnExit()
		}
	}
}
