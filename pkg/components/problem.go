package components

import "github.com/decker502/robopet/pkg/types"

// ProblemComponent 描述机器宠物的一个故障
// 由外部故障生成器在会话初始化时一次性创建，
// 会话期间唯一的可变状态是 IsFixed，故障不会被删除
type ProblemComponent struct {
	ID           string               // 故障唯一标识
	Component    types.RobotComponent // 故障所在的身体部件
	Type         types.ProblemType    // 故障种类
	Severity     int                  // 严重程度 1~3
	RequiredTool types.ToolType       // 修复该故障需要的工具
	IsFixed      bool                 // 是否已修复
}
