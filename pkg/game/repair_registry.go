package game

import (
	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/ecs"
)

// RepairAreaRegistry 修理区域注册表
// 每个故障对应一个修理区域实体，1:1，会话期间不增不减。
// 注册表只提供数据访问，不包含任何模拟逻辑；
// 它归 RepairSessionController 独占所有，渲染方只读快照
type RepairAreaRegistry struct {
	entityManager *ecs.EntityManager
	areaIDs       []ecs.EntityID          // 按创建顺序排列的区域实体
	byProblem     map[string]ecs.EntityID // 故障ID -> 区域实体
}

// NewRepairAreaRegistry 创建空注册表
func NewRepairAreaRegistry(em *ecs.EntityManager) *RepairAreaRegistry {
	return &RepairAreaRegistry{
		entityManager: em,
		areaIDs:       make([]ecs.EntityID, 0),
		byProblem:     make(map[string]ecs.EntityID),
	}
}

// Register 登记一个修理区域实体
func (r *RepairAreaRegistry) Register(problemID string, areaID ecs.EntityID) {
	r.areaIDs = append(r.areaIDs, areaID)
	r.byProblem[problemID] = areaID
}

// AreaIDs 返回全部区域实体，按创建顺序
func (r *RepairAreaRegistry) AreaIDs() []ecs.EntityID {
	return r.areaIDs
}

// AreaByProblem 按故障ID查找区域实体
func (r *RepairAreaRegistry) AreaByProblem(problemID string) (ecs.EntityID, bool) {
	id, ok := r.byProblem[problemID]
	return id, ok
}

// Count 返回区域总数（等于故障总数）
func (r *RepairAreaRegistry) Count() int {
	return len(r.areaIDs)
}

// CountFixed 扫描全部区域统计已修复数量
// 这是已修复数量的唯一权威来源：每帧重新扫描而不是维护增量计数器，
// 避免完成路径和扫描路径双重计数导致的漂移
func (r *RepairAreaRegistry) CountFixed() int {
	fixed := 0
	for _, id := range r.areaIDs {
		area, ok := ecs.GetComponent[*components.RepairAreaComponent](r.entityManager, id)
		if !ok {
			continue
		}
		if area.State == components.RepairFixed {
			fixed++
		}
	}
	return fixed
}

// FixedProblemIDs 返回已修复区域的故障ID列表，按创建顺序
func (r *RepairAreaRegistry) FixedProblemIDs() []string {
	ids := make([]string, 0, len(r.areaIDs))
	for _, id := range r.areaIDs {
		area, ok := ecs.GetComponent[*components.RepairAreaComponent](r.entityManager, id)
		if !ok {
			continue
		}
		if area.State == components.RepairFixed {
			ids = append(ids, area.ProblemID)
		}
	}
	return ids
}

// Clear 清空注册表（会话退出时调用）
func (r *RepairAreaRegistry) Clear() {
	r.areaIDs = r.areaIDs[:0]
	r.byProblem = make(map[string]ecs.EntityID)
}
