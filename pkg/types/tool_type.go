// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// ToolType 定义修理工具的类型
type ToolType int

const (
	// ToolUnknown 未知工具类型
	ToolUnknown ToolType = iota
	// ToolWrench 扳手（修理松动的机械部件）
	ToolWrench
	// ToolScrewdriver 螺丝刀（重新连接断开的部件）
	ToolScrewdriver
	// ToolOilCan 油壶（清洁和润滑脏污部件）
	ToolOilCan
	// ToolCircuitBoard 电路板（更换损坏的电子部件）
	ToolCircuitBoard
	// ToolBrush 刷子（清扫外壳上的灰尘）
	ToolBrush
)

// String 返回工具类型的字符串表示
func (t ToolType) String() string {
	switch t {
	case ToolWrench:
		return "Wrench"
	case ToolScrewdriver:
		return "Screwdriver"
	case ToolOilCan:
		return "OilCan"
	case ToolCircuitBoard:
		return "CircuitBoard"
	case ToolBrush:
		return "Brush"
	default:
		return "Unknown"
	}
}

// ParseToolType 从配置字符串解析工具类型
// 无法识别的字符串返回 ToolUnknown
func ParseToolType(s string) ToolType {
	switch s {
	case "wrench", "Wrench", "WRENCH":
		return ToolWrench
	case "screwdriver", "Screwdriver", "SCREWDRIVER":
		return ToolScrewdriver
	case "oil_can", "OilCan", "OIL_CAN":
		return ToolOilCan
	case "circuit_board", "CircuitBoard", "CIRCUIT_BOARD":
		return ToolCircuitBoard
	case "brush", "Brush", "BRUSH":
		return ToolBrush
	default:
		return ToolUnknown
	}
}

// AllTools 返回全部五种工具，顺序与工具面板槽位一致
// 数字快捷键 1~5 按此顺序映射
func AllTools() []ToolType {
	return []ToolType{ToolWrench, ToolScrewdriver, ToolOilCan, ToolCircuitBoard, ToolBrush}
}
