package components

// ClickableComponent 标记实体可以被指针点击
// 定义了以实体位置为中心的可点击区域尺寸
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素)
	Height    float64 // 可点击区域的高度(像素)
	IsEnabled bool    // 是否可以被点击(用于禁用已修复的区域)
}

// Contains 判断点 (x, y) 是否落在以 (cx, cy) 为中心的可点击区域内
func (c *ClickableComponent) Contains(cx, cy, x, y float64) bool {
	if !c.IsEnabled {
		return false
	}
	halfW := c.Width / 2
	halfH := c.Height / 2
	return x >= cx-halfW && x <= cx+halfW && y >= cy-halfH && y <= cy+halfH
}
