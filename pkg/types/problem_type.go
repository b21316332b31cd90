package types

// ProblemType 定义故障的种类
// DIRTY 类型的故障会进入清洁子玩法，其余类型走标准修理流程
type ProblemType int

const (
	// ProblemUnknown 未知故障类型
	ProblemUnknown ProblemType = iota
	// ProblemBroken 部件损坏
	ProblemBroken
	// ProblemDirty 部件脏污（触发清洁子玩法）
	ProblemDirty
	// ProblemDisconnected 部件断开连接
	ProblemDisconnected
	// ProblemLowPower 电量不足
	ProblemLowPower
)

// String 返回故障类型的字符串表示
func (p ProblemType) String() string {
	switch p {
	case ProblemBroken:
		return "Broken"
	case ProblemDirty:
		return "Dirty"
	case ProblemDisconnected:
		return "Disconnected"
	case ProblemLowPower:
		return "LowPower"
	default:
		return "Unknown"
	}
}

// ParseProblemType 从配置字符串解析故障类型
func ParseProblemType(s string) ProblemType {
	switch s {
	case "broken", "Broken", "BROKEN":
		return ProblemBroken
	case "dirty", "Dirty", "DIRTY":
		return ProblemDirty
	case "disconnected", "Disconnected", "DISCONNECTED":
		return ProblemDisconnected
	case "low_power", "LowPower", "LOW_POWER":
		return ProblemLowPower
	default:
		return ProblemUnknown
	}
}
