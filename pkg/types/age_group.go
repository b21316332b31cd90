package types

// AgeGroup 玩家年龄段
// 作为难度调节参数：年龄越小，清洁速度越快，以降低挫败感
type AgeGroup int

const (
	// AgeGroupYoung 低龄组（4-6岁）
	AgeGroupYoung AgeGroup = iota
	// AgeGroupMiddle 中龄组（7-9岁）
	AgeGroupMiddle
	// AgeGroupOlder 高龄组（10-12岁）
	AgeGroupOlder
)

// String 返回年龄段的字符串表示
func (a AgeGroup) String() string {
	switch a {
	case AgeGroupYoung:
		return "Young"
	case AgeGroupMiddle:
		return "Middle"
	case AgeGroupOlder:
		return "Older"
	default:
		return "Middle"
	}
}

// ParseAgeGroup 从配置字符串解析年龄段，无法识别时返回中龄组
func ParseAgeGroup(s string) AgeGroup {
	switch s {
	case "young", "Young", "YOUNG":
		return AgeGroupYoung
	case "older", "Older", "OLDER":
		return AgeGroupOlder
	default:
		return AgeGroupMiddle
	}
}
