package game

import "github.com/decker502/robopet/pkg/ecs"

// GuidanceOverlay 引导手势覆盖层协作者接口
// 用于初始引导和连续用错工具后的提示
type GuidanceOverlay interface {
	// ShowTapGesture 在指定位置显示点击手势
	// duration 为显示时长(秒)，0 表示一直显示直到被隐藏
	// 返回手势的实体ID，可用于单独隐藏
	ShowTapGesture(x, y float64, duration float64) ecs.EntityID

	// HideGuidingHand 隐藏指定的手势
	HideGuidingHand(id ecs.EntityID)

	// HideAllGuidingHands 隐藏全部手势
	HideAllGuidingHands()
}
