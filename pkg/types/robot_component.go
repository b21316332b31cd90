package types

// RobotComponent 定义机器宠物的身体部件类型
// 每个故障（Problem）都绑定到一个具体部件
type RobotComponent int

const (
	// ComponentUnknown 未知部件
	ComponentUnknown RobotComponent = iota
	// ComponentPowerCore 能量核心
	ComponentPowerCore
	// ComponentMotorSystem 马达系统
	ComponentMotorSystem
	// ComponentSensorArray 传感器阵列
	ComponentSensorArray
	// ComponentChassisPlating 底盘装甲
	ComponentChassisPlating
	// ComponentProcessingUnit 处理单元
	ComponentProcessingUnit
)

// String 返回部件类型的字符串表示
func (c RobotComponent) String() string {
	switch c {
	case ComponentPowerCore:
		return "PowerCore"
	case ComponentMotorSystem:
		return "MotorSystem"
	case ComponentSensorArray:
		return "SensorArray"
	case ComponentChassisPlating:
		return "ChassisPlating"
	case ComponentProcessingUnit:
		return "ProcessingUnit"
	default:
		return "Unknown"
	}
}

// ParseRobotComponent 从配置字符串解析部件类型
func ParseRobotComponent(s string) RobotComponent {
	switch s {
	case "power_core", "PowerCore", "POWER_CORE":
		return ComponentPowerCore
	case "motor_system", "MotorSystem", "MOTOR_SYSTEM":
		return ComponentMotorSystem
	case "sensor_array", "SensorArray", "SENSOR_ARRAY":
		return ComponentSensorArray
	case "chassis_plating", "ChassisPlating", "CHASSIS_PLATING":
		return ComponentChassisPlating
	case "processing_unit", "ProcessingUnit", "PROCESSING_UNIT":
		return ComponentProcessingUnit
	default:
		return ComponentUnknown
	}
}

// CleaningTexture 返回清洁小游戏中该部件对应的污渍贴图类型
// 金属部件显示油渍，电子部件显示灰尘
func (c RobotComponent) CleaningTexture() string {
	switch c {
	case ComponentPowerCore, ComponentProcessingUnit, ComponentSensorArray:
		return "dust"
	case ComponentMotorSystem:
		return "grease"
	case ComponentChassisPlating:
		return "grime"
	default:
		return "dust"
	}
}
