package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/config"
	"github.com/decker502/robopet/pkg/ecs"
)

// EffectsSystem manages all visual effects and their particles.
// It spawns kind-specific particle patterns and updates them each frame
// (position integration, lifetime aging, alpha fade), destroying an effect
// when its duration elapses or its particle list becomes empty.
//
// 每种特效的粒子数量和分布模式是固定契约（视觉设计基于这些数值调校），
// 不允许近似替代
type EffectsSystem struct {
	entityManager *ecs.EntityManager
}

// 庆祝特效的固定调色板
var celebrationPalette = [][3]float64{
	{1.00, 0.84, 0.00}, // 金黄
	{1.00, 0.41, 0.38}, // 珊瑚红
	{0.40, 0.80, 1.00}, // 天蓝
	{0.56, 0.93, 0.56}, // 浅绿
	{0.93, 0.51, 0.93}, // 紫罗兰
}

// NewEffectsSystem creates a new EffectsSystem instance.
func NewEffectsSystem(em *ecs.EntityManager) *EffectsSystem {
	return &EffectsSystem{entityManager: em}
}

// randRange 返回 [min, max) 内的随机值
func randRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// Spawn 在 (x, y) 生成一个指定种类的特效
// intensity 0~1 影响渲染尺寸，不改变粒子数量和分布
// 返回特效的实体ID（单调递增，销毁后不复用）
func (s *EffectsSystem) Spawn(kind components.EffectKind, x, y, intensity float64) ecs.EntityID {
	effect := &components.EffectComponent{
		Kind:      kind,
		Intensity: intensity,
	}

	switch kind {
	case components.EffectSparks:
		s.spawnSparks(effect, x, y)
	case components.EffectCleaningBubbles:
		s.spawnCleaningBubbles(effect, x, y)
	case components.EffectSuccessBurst:
		s.spawnSuccessBurst(effect, x, y)
	case components.EffectError:
		s.spawnError(effect, x, y)
	case components.EffectCelebration:
		s.spawnCelebration(effect)
	}

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, effect)
	s.entityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	return id
}

// spawnSparks 火花：6 个粒子，随机径向方向，速度 30~70，生命 0.5~0.8 秒
func (s *EffectsSystem) spawnSparks(effect *components.EffectComponent, x, y float64) {
	effect.Duration = 0.8
	effect.Particles = make([]components.Particle, 0, 6)
	for i := 0; i < 6; i++ {
		angle := randRange(0, 2*math.Pi)
		speed := randRange(30, 70)
		life := randRange(0.5, 0.8)
		effect.Particles = append(effect.Particles, components.Particle{
			X:         x,
			Y:         y,
			VelocityX: math.Cos(angle) * speed,
			VelocityY: math.Sin(angle) * speed,
			Life:      life,
			MaxLife:   life,
			Size:      2.5,
			Red:       1.0, Green: 0.85, Blue: 0.3, // 火花橙黄色
		})
	}
}

// spawnCleaningBubbles 清洁泡泡：12 个粒子，每 30° 一个，
// 距中心 20~35 处生成，速度带向上偏置，生命 2~3 秒
func (s *EffectsSystem) spawnCleaningBubbles(effect *components.EffectComponent, x, y float64) {
	effect.Duration = 3.0
	effect.Particles = make([]components.Particle, 0, 12)
	for i := 0; i < 12; i++ {
		angle := float64(i) * 30 * math.Pi / 180
		dist := randRange(20, 35)
		life := randRange(2.0, 3.0)
		effect.Particles = append(effect.Particles, components.Particle{
			X:         x + math.Cos(angle)*dist,
			Y:         y + math.Sin(angle)*dist,
			VelocityX: math.Cos(angle) * 10,
			VelocityY: math.Sin(angle)*10 - 25, // 泡泡向上飘
			Life:      life,
			MaxLife:   life,
			Size:      4,
			Red:       0.7, Green: 0.9, Blue: 1.0, // 泡泡浅蓝色
		})
	}
}

// spawnSuccessBurst 成功爆发：16 个粒子，每 22.5° 一个，
// 速度 50~80，生命 1.5~2 秒
func (s *EffectsSystem) spawnSuccessBurst(effect *components.EffectComponent, x, y float64) {
	effect.Duration = 2.0
	effect.Particles = make([]components.Particle, 0, 16)
	for i := 0; i < 16; i++ {
		angle := float64(i) * 22.5 * math.Pi / 180
		speed := randRange(50, 80)
		life := randRange(1.5, 2.0)
		effect.Particles = append(effect.Particles, components.Particle{
			X:         x,
			Y:         y,
			VelocityX: math.Cos(angle) * speed,
			VelocityY: math.Sin(angle) * speed,
			Life:      life,
			MaxLife:   life,
			Size:      3.5,
			Red:       0.4, Green: 1.0, Blue: 0.4, // 成功绿色
		})
	}
}

// spawnError 错误提示：8 个粒子，每 45° 一个，速度 25~45，生命 0.8~1.2 秒
func (s *EffectsSystem) spawnError(effect *components.EffectComponent, x, y float64) {
	effect.Duration = 1.2
	effect.Particles = make([]components.Particle, 0, 8)
	for i := 0; i < 8; i++ {
		angle := float64(i) * 45 * math.Pi / 180
		speed := randRange(25, 45)
		life := randRange(0.8, 1.2)
		effect.Particles = append(effect.Particles, components.Particle{
			X:         x,
			Y:         y,
			VelocityX: math.Cos(angle) * speed,
			VelocityY: math.Sin(angle) * speed,
			Life:      life,
			MaxLife:   life,
			Size:      3,
			Red:       1.0, Green: 0.3, Blue: 0.3, // 错误红色
		})
	}
}

// spawnCelebration 庆祝：5 个独立爆发点，每点 20 个粒子，
// 位置在屏幕上随机，颜色来自固定调色板，速度带轻微向上偏置，生命 2~3 秒
// 只在会话完成时使用一次
func (s *EffectsSystem) spawnCelebration(effect *components.EffectComponent) {
	effect.Duration = 3.0
	effect.Particles = make([]components.Particle, 0, 5*20)
	for burst := 0; burst < 5; burst++ {
		bx := randRange(0.15, 0.85) * config.ScreenWidth
		by := randRange(0.15, 0.6) * config.ScreenHeight
		color := celebrationPalette[rand.Intn(len(celebrationPalette))]
		for i := 0; i < 20; i++ {
			angle := randRange(0, 2*math.Pi)
			speed := randRange(40, 90)
			life := randRange(2.0, 3.0)
			effect.Particles = append(effect.Particles, components.Particle{
				X:         bx,
				Y:         by,
				VelocityX: math.Cos(angle) * speed,
				VelocityY: math.Sin(angle)*speed - 20, // 轻微向上偏置
				Life:      life,
				MaxLife:   life,
				Size:      3.5,
				Red:       color[0], Green: color[1], Blue: color[2],
			})
		}
	}
}

// Update 推进所有特效一帧
// 对每个特效：粒子老化（life -= dt）、按速度积分位置、移除死亡粒子；
// 当特效超过持续时间或粒子列表为空时销毁特效，以先到者为准
func (s *EffectsSystem) Update(dt float64) {
	effectEntities := ecs.GetEntitiesWith1[*components.EffectComponent](s.entityManager)

	for _, id := range effectEntities {
		effect, ok := ecs.GetComponent[*components.EffectComponent](s.entityManager, id)
		if !ok {
			continue
		}

		effect.Age += dt

		// 就地更新粒子并压缩掉死亡的
		alive := effect.Particles[:0]
		for i := range effect.Particles {
			p := &effect.Particles[i]
			p.Life -= dt
			if p.Life <= 0 {
				continue
			}
			p.X += p.VelocityX * dt
			p.Y += p.VelocityY * dt
			alive = append(alive, *p)
		}
		effect.Particles = alive

		// 特效不会比自己的粒子活得更久
		if effect.Age >= effect.Duration || len(effect.Particles) == 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// ActiveEffectCount 返回当前存活的特效数量（测试和调试用）
func (s *EffectsSystem) ActiveEffectCount() int {
	return len(ecs.GetEntitiesWith1[*components.EffectComponent](s.entityManager))
}
