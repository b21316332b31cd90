package ecs

import (
	"reflect"
	"testing"
)

type testPosition struct {
	X, Y float64
}

type testMarker struct {
	Tag string
}

func TestCreateEntityUniqueIDs(t *testing.T) {
	em := NewEntityManager()

	// 创建多个实体，ID 应该唯一且单调递增
	a := em.CreateEntity()
	b := em.CreateEntity()
	c := em.CreateEntity()

	if a == b || b == c || a == c {
		t.Errorf("实体ID应该唯一: %d, %d, %d", a, b, c)
	}
	if !(a < b && b < c) {
		t.Errorf("实体ID应该单调递增: %d, %d, %d", a, b, c)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPosition{X: 10, Y: 20})

	comp, ok := em.GetComponent(id, reflect.TypeOf(&testPosition{}))
	if !ok {
		t.Fatal("应该能获取到已添加的组件")
	}
	pos := comp.(*testPosition)
	if pos.X != 10 || pos.Y != 20 {
		t.Errorf("组件数据不匹配: got (%f, %f)", pos.X, pos.Y)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{X: 1, Y: 2})

	pos, ok := GetComponent[*testPosition](em, id)
	if !ok {
		t.Fatal("泛型 GetComponent 应该找到组件")
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("组件数据不匹配: got (%f, %f)", pos.X, pos.Y)
	}

	// 未添加的组件类型应该返回 false
	if _, ok := GetComponent[*testMarker](em, id); ok {
		t.Error("未添加的组件类型不应该被找到")
	}
}

func TestGetEntitiesWithCombination(t *testing.T) {
	em := NewEntityManager()

	// 实体1: 只有位置
	e1 := em.CreateEntity()
	em.AddComponent(e1, &testPosition{})

	// 实体2: 位置 + 标记
	e2 := em.CreateEntity()
	em.AddComponent(e2, &testPosition{})
	em.AddComponent(e2, &testMarker{Tag: "both"})

	withPos := GetEntitiesWith1[*testPosition](em)
	if len(withPos) != 2 {
		t.Errorf("期望 2 个拥有位置组件的实体，实际 %d 个", len(withPos))
	}

	withBoth := GetEntitiesWith2[*testPosition, *testMarker](em)
	if len(withBoth) != 1 {
		t.Fatalf("期望 1 个同时拥有两种组件的实体，实际 %d 个", len(withBoth))
	}
	if withBoth[0] != e2 {
		t.Errorf("期望实体 %d，实际 %d", e2, withBoth[0])
	}
}

func TestDeferredDestroy(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testMarker{})

	// 标记删除后，实体在本帧内仍然可见
	em.DestroyEntity(id)
	if !em.HasEntity(id) {
		t.Error("标记删除的实体在 RemoveMarkedEntities 之前应该仍然存在")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.HasEntity(id) {
		t.Error("清理后实体应该被删除")
	}
}

func TestClearRemovesEverything(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testMarker{})
	}

	em.Clear()

	if got := len(GetEntitiesWith1[*testMarker](em)); got != 0 {
		t.Errorf("Clear 后不应该有任何实体，实际 %d 个", got)
	}

	// Clear 后仍然可以继续创建实体
	id := em.CreateEntity()
	if !em.HasEntity(id) {
		t.Error("Clear 后应该可以继续创建实体")
	}
}
