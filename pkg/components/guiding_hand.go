package components

// GuidingHandComponent 引导手势覆盖层
// 用于初始引导和连续用错工具后的提示：在目标位置显示点击手势
type GuidingHandComponent struct {
	TargetX  float64 // 手势指向的世界坐标X
	TargetY  float64 // 手势指向的世界坐标Y
	Age      float64 // 已显示时间(秒)
	Duration float64 // 显示时长(秒)，0 表示一直显示直到被隐藏
}
