package components

import "github.com/decker502/robopet/pkg/types"

// ToolComponent 修理工具
// 全局最多只有一个工具的 IsSelected 为 true（由 ToolSelectSystem 保证）
type ToolComponent struct {
	Type       types.ToolType // 工具类型
	Name       string         // 显示名称
	SlotIndex  int            // 工具面板中的槽位（0~4），对应数字快捷键 1~5
	IsSelected bool           // 是否为当前选中工具
	IsUnlocked bool           // 是否已解锁（未解锁的工具无法选中）
}
