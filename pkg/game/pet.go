package game

import (
	"github.com/decker502/robopet/pkg/config"
	"github.com/decker502/robopet/pkg/types"
)

// ComponentLocator 宠物协作者的能力接口
// 修理引擎只需要查询部件的摆放位置来计算修理区域的空间范围，
// 因此按能力抽象，而不是对具体宠物类型做运行时类型判断
type ComponentLocator interface {
	// ComponentPosition 返回指定部件在屏幕上的锚点位置
	// 部件不存在时 ok 为 false
	ComponentPosition(c types.RobotComponent) (x, y float64, ok bool)
}

// RoboPet 基于配置定义的机器宠物
// 只读：修理引擎不会修改宠物本身
type RoboPet struct {
	name    string
	anchors map[types.RobotComponent]config.Anchor
}

// NewRoboPet 从宠物定义构建 RoboPet
func NewRoboPet(def *config.PetDefinition) *RoboPet {
	anchors := make(map[types.RobotComponent]config.Anchor, len(def.Anchors))
	for name, anchor := range def.Anchors {
		comp := types.ParseRobotComponent(name)
		if comp == types.ComponentUnknown {
			continue
		}
		anchors[comp] = anchor
	}
	return &RoboPet{
		name:    def.Name,
		anchors: anchors,
	}
}

// Name 返回宠物名称
func (p *RoboPet) Name() string {
	return p.name
}

// ComponentPosition 实现 ComponentLocator
func (p *RoboPet) ComponentPosition(c types.RobotComponent) (float64, float64, bool) {
	anchor, ok := p.anchors[c]
	if !ok {
		return 0, 0, false
	}
	return anchor.X, anchor.Y, true
}
