package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/robopet/pkg/types"
)

// ProblemSpec 外部故障生成器输出的单个故障描述
// 在 InitializeRepair 时一次性消费
type ProblemSpec struct {
	ID           string `yaml:"id"`           // 故障唯一标识
	Component    string `yaml:"component"`    // 部件，如 "power_core"
	Type         string `yaml:"type"`         // 故障类型，如 "broken"
	Severity     int    `yaml:"severity"`     // 严重程度 1~3
	RequiredTool string `yaml:"requiredTool"` // 所需工具，如 "wrench"
}

// PetDefinition 一只机器宠物的静态定义
// Anchors 给出每个部件在宠物贴图上的位置，用于计算修理区域的空间范围
type PetDefinition struct {
	Name     string             `yaml:"name"`     // 宠物名称
	Anchors  map[string]Anchor  `yaml:"anchors"`  // 部件名 -> 位置
	Problems []ProblemSpec      `yaml:"problems"` // 本次会话的故障列表
}

// Anchor 部件在屏幕上的锚点位置
type Anchor struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DefaultPetDefinition 返回内置的演示宠物
// 没有外部配置文件时用它保证游戏可以直接运行
func DefaultPetDefinition() *PetDefinition {
	return &PetDefinition{
		Name: "RoboDog",
		Anchors: map[string]Anchor{
			"power_core":      {X: 400, Y: 260},
			"motor_system":    {X: 260, Y: 330},
			"sensor_array":    {X: 400, Y: 120},
			"chassis_plating": {X: 540, Y: 330},
			"processing_unit": {X: 400, Y: 190},
		},
		Problems: []ProblemSpec{
			{ID: "p1", Component: "power_core", Type: "low_power", Severity: 2, RequiredTool: "circuit_board"},
			{ID: "p2", Component: "motor_system", Type: "dirty", Severity: 3, RequiredTool: "oil_can"},
			{ID: "p3", Component: "sensor_array", Type: "disconnected", Severity: 1, RequiredTool: "screwdriver"},
		},
	}
}

// LoadPetDefinition 从 YAML 文件加载宠物定义
// 文件不存在时回退到内置演示宠物
func LoadPetDefinition(path string) (*PetDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[Config] 宠物配置文件不存在: %s (使用内置演示宠物)", path)
			return DefaultPetDefinition(), nil
		}
		return nil, fmt.Errorf("读取宠物配置失败: %w", err)
	}

	var def PetDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("解析宠物配置失败: %w", err)
	}

	log.Printf("[Config] 加载宠物 %s: %d 个故障", def.Name, len(def.Problems))
	return &def, nil
}

// Validate 校验故障描述的字段合法性
// 严重度越界、部件或工具无法识别都视为配置错误
func (p *ProblemSpec) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("故障缺少 id")
	}
	if p.Severity < 1 || p.Severity > 3 {
		return fmt.Errorf("故障 %s 的严重度 %d 超出范围 [1,3]", p.ID, p.Severity)
	}
	if types.ParseRobotComponent(p.Component) == types.ComponentUnknown {
		return fmt.Errorf("故障 %s 的部件无法识别: %q", p.ID, p.Component)
	}
	if types.ParseProblemType(p.Type) == types.ProblemUnknown {
		return fmt.Errorf("故障 %s 的类型无法识别: %q", p.ID, p.Type)
	}
	if types.ParseToolType(p.RequiredTool) == types.ToolUnknown {
		return fmt.Errorf("故障 %s 的所需工具无法识别: %q", p.ID, p.RequiredTool)
	}
	return nil
}
