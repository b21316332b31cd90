package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/robopet/pkg/types"
)

// RepairConfig 修理玩法的调参数据
//
// 这些数值来自原版的手动调优，没有文档化的推导过程，
// 因此保留为具名配置项而不是在代码中重新推导
type RepairConfig struct {
	// BaseRepairDuration 标准修理的基础时长（秒）
	// 实际时长 = BaseRepairDuration + Severity * SeverityIncrement
	BaseRepairDuration float64 `yaml:"baseRepairDuration"`

	// SeverityIncrement 每级严重度增加的修理时长（秒）
	SeverityIncrement float64 `yaml:"severityIncrement"`

	// HintThreshold 同一区域连续用错工具多少次后显示提示手势
	HintThreshold int `yaml:"hintThreshold"`

	// SparkChancePerSecond 修理进行中每秒产生火花特效的概率
	SparkChancePerSecond float64 `yaml:"sparkChancePerSecond"`

	// 清洁速度（进度/秒），按年龄段区分
	// 年龄越小速度越快，降低低龄玩家的挫败感
	CleaningSpeedYoung  float64 `yaml:"cleaningSpeedYoung"`
	CleaningSpeedMiddle float64 `yaml:"cleaningSpeedMiddle"`
	CleaningSpeedOlder  float64 `yaml:"cleaningSpeedOlder"`

	// 脏污程度计算：clamp(Severity*DirtPerSeverity + DirtBase, DirtMin, DirtMax)
	DirtPerSeverity float64 `yaml:"dirtPerSeverity"`
	DirtBase        float64 `yaml:"dirtBase"`
	DirtMin         float64 `yaml:"dirtMin"`
	DirtMax         float64 `yaml:"dirtMax"`
}

// DefaultRepairConfig 返回内置默认调参
// 二进制在没有任何外部配置文件时也必须可以运行
func DefaultRepairConfig() *RepairConfig {
	return &RepairConfig{
		BaseRepairDuration:   2.0,
		SeverityIncrement:    0.5,
		HintThreshold:        2,
		SparkChancePerSecond: 3.0,
		CleaningSpeedYoung:   40.0,
		CleaningSpeedMiddle:  30.0,
		CleaningSpeedOlder:   24.0,
		DirtPerSeverity:      30.0,
		DirtBase:             10.0,
		DirtMin:              40.0,
		DirtMax:              100.0,
	}
}

// LoadRepairConfig 从 YAML 文件加载调参
// 文件不存在或解析失败时回退到默认值（加载失败不是致命错误）
//
// 参数：
//   - path: 配置文件路径（如 "data/config/repair.yaml"）
//
// 返回：
//   - *RepairConfig: 配置实例（永不为 nil）
//   - error: 文件存在但无法解析时返回错误
func LoadRepairConfig(path string) (*RepairConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[Config] 修理配置文件不存在: %s (使用默认值)", path)
			return DefaultRepairConfig(), nil
		}
		return DefaultRepairConfig(), fmt.Errorf("读取修理配置失败: %w", err)
	}

	cfg := DefaultRepairConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultRepairConfig(), fmt.Errorf("解析修理配置失败: %w", err)
	}

	log.Printf("[Config] 加载修理配置: %s", path)
	return cfg, nil
}

// RepairDuration 根据严重度计算标准修理时长（秒）
func (c *RepairConfig) RepairDuration(severity int) float64 {
	return c.BaseRepairDuration + float64(severity)*c.SeverityIncrement
}

// CleaningSpeed 返回指定年龄段的清洁速度（进度/秒）
func (c *RepairConfig) CleaningSpeed(age types.AgeGroup) float64 {
	switch age {
	case types.AgeGroupYoung:
		return c.CleaningSpeedYoung
	case types.AgeGroupOlder:
		return c.CleaningSpeedOlder
	default:
		return c.CleaningSpeedMiddle
	}
}

// InitialDirtLevel 根据严重度计算初始脏污程度
func (c *RepairConfig) InitialDirtLevel(severity int) float64 {
	dirt := float64(severity)*c.DirtPerSeverity + c.DirtBase
	if dirt < c.DirtMin {
		dirt = c.DirtMin
	}
	if dirt > c.DirtMax {
		dirt = c.DirtMax
	}
	return dirt
}
