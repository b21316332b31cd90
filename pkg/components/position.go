// Package components 定义所有 ECS 组件
// 组件是纯数据结构，不包含任何行为逻辑（逻辑在 systems 包中）
package components

// PositionComponent 存储实体的世界坐标
type PositionComponent struct {
	X float64 // 世界坐标X(像素)
	Y float64 // 世界坐标Y(像素)
}
