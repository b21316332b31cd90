package systems

import (
	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/ecs"
)

// GuidingHandSystem 引导手势覆盖层
// game.GuidanceOverlay 接口的 ECS 实现：
// 手势是带 GuidingHandComponent 的实体，到时自动消失
type GuidingHandSystem struct {
	entityManager *ecs.EntityManager
}

// NewGuidingHandSystem 创建引导手势系统
func NewGuidingHandSystem(em *ecs.EntityManager) *GuidingHandSystem {
	return &GuidingHandSystem{entityManager: em}
}

// ShowTapGesture 在指定位置显示点击手势
// duration 为 0 表示一直显示直到被隐藏
func (s *GuidingHandSystem) ShowTapGesture(x, y float64, duration float64) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.GuidingHandComponent{
		TargetX:  x,
		TargetY:  y,
		Duration: duration,
	})
	s.entityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	return id
}

// HideGuidingHand 隐藏指定的手势
func (s *GuidingHandSystem) HideGuidingHand(id ecs.EntityID) {
	if ecs.HasComponent[*components.GuidingHandComponent](s.entityManager, id) {
		s.entityManager.DestroyEntity(id)
	}
}

// HideAllGuidingHands 隐藏全部手势
func (s *GuidingHandSystem) HideAllGuidingHands() {
	for _, id := range ecs.GetEntitiesWith1[*components.GuidingHandComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
}

// Update 推进手势寿命，到时的手势自动消失
func (s *GuidingHandSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.GuidingHandComponent](s.entityManager) {
		hand, ok := ecs.GetComponent[*components.GuidingHandComponent](s.entityManager, id)
		if !ok {
			continue
		}
		hand.Age += dt
		if hand.Duration > 0 && hand.Age >= hand.Duration {
			s.entityManager.DestroyEntity(id)
		}
	}
}
