package config

// 布局配置常量
// 本文件定义修理场景的布局参数：逻辑屏幕尺寸、工具面板槽位、修理区域尺寸
// 所有坐标使用逻辑屏幕坐标（Layout 返回的固定尺寸，不随窗口缩放变化）

const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 800.0

	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 600.0

	// ToolPanelY 工具面板中心的Y坐标（屏幕底部）
	ToolPanelY = 540.0

	// ToolSlotWidth 单个工具槽位的宽度（像素）
	ToolSlotWidth = 96.0

	// ToolSlotHeight 单个工具槽位的高度（像素）
	ToolSlotHeight = 96.0

	// ToolSlotSpacing 相邻槽位中心的间距（像素）
	ToolSlotSpacing = 120.0

	// ToolSlotCount 工具面板的槽位数量
	ToolSlotCount = 5

	// RepairAreaWidth 修理区域的可点击宽度（像素）
	RepairAreaWidth = 110.0

	// RepairAreaHeight 修理区域的可点击高度（像素）
	RepairAreaHeight = 110.0
)

// ToolSlotPosition 返回第 index 个工具槽位的中心屏幕坐标
// 槽位横向居中排列在屏幕底部
func ToolSlotPosition(index int) (x, y float64) {
	totalWidth := float64(ToolSlotCount-1) * ToolSlotSpacing
	startX := (ScreenWidth - totalWidth) / 2
	return startX + float64(index)*ToolSlotSpacing, ToolPanelY
}
