package components

// EffectKind 视觉特效的种类
// 每种特效的粒子数量和分布模式是固定契约，定义在 systems.EffectsSystem 中
type EffectKind int

const (
	// EffectSparks 修理过程中的火花
	EffectSparks EffectKind = iota
	// EffectCleaningBubbles 清洁时的泡泡
	EffectCleaningBubbles
	// EffectSuccessBurst 修复成功的爆发
	EffectSuccessBurst
	// EffectError 工具错误提示
	EffectError
	// EffectCelebration 会话完成庆祝（全屏多点爆发）
	EffectCelebration
)

// String 返回特效种类的字符串表示
func (k EffectKind) String() string {
	switch k {
	case EffectSparks:
		return "sparks"
	case EffectCleaningBubbles:
		return "cleaning_bubbles"
	case EffectSuccessBurst:
		return "success_burst"
	case EffectError:
		return "error"
	case EffectCelebration:
		return "celebration"
	default:
		return "unknown"
	}
}

// Particle 单个粒子的运动学状态
// 粒子由所属特效持有（而不是每个粒子一个实体），
// 每帧就地更新整个切片，对缓存更友好
type Particle struct {
	X, Y                 float64 // 世界坐标
	VelocityX, VelocityY float64 // 速度(像素/秒)
	Life                 float64 // 剩余生命(秒)，递减
	MaxLife              float64 // 初始生命(秒)
	Size                 float64 // 半径(像素)
	Red, Green, Blue     float64 // 颜色通道 0~1
}

// Alpha 返回粒子的当前透明度（剩余生命占比）
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	a := p.Life / p.MaxLife
	if a < 0 {
		return 0
	}
	return a
}

// EffectComponent 一次性视觉特效
// 特效在 Age >= Duration 或粒子列表为空时被销毁，以先到者为准；
// 特效不会比自己的粒子活得更久
type EffectComponent struct {
	Kind      EffectKind // 特效种类
	Age       float64    // 已存在时间(秒)
	Duration  float64    // 最大持续时间(秒)
	Intensity float64    // 强度 0~1，影响渲染尺寸
	Particles []Particle // 持有的粒子，死亡粒子被就地移除
}
