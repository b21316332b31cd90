package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/robopet/pkg/components"
	"github.com/decker502/robopet/pkg/ecs"
)

// RenderSystem 渲染修理场景
//
// 渲染方只读：每帧消费修理区域、清洁子玩法和特效的状态快照，
// 绝不修改任何模拟状态。占位渲染使用矢量图形，不依赖外部贴图资源
type RenderSystem struct {
	entityManager *ecs.EntityManager
	controller    *RepairSessionController
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, controller *RepairSessionController) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		controller:    controller,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawRepairAreas(screen)
	s.drawTools(screen)
	s.drawEffects(screen)
	s.drawGuidingHands(screen)
	s.drawHUD(screen)
}

// drawRepairAreas 绘制修理区域：外框、高亮、进度条、脏污遮罩
func (s *RenderSystem) drawRepairAreas(screen *ebiten.Image) {
	stage := s.controller.Cleaning().ActiveStage()

	for _, id := range s.controller.Registry().AreaIDs() {
		area, ok := ecs.GetComponent[*components.RepairAreaComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !ok {
			continue
		}

		x := float32(pos.X - clickable.Width/2)
		y := float32(pos.Y - clickable.Height/2)
		w := float32(clickable.Width)
		h := float32(clickable.Height)

		// 区域底色：已修复绿色，高亮黄色，普通灰色
		fill := color.RGBA{R: 90, G: 90, B: 100, A: 160}
		switch {
		case area.State == components.RepairFixed:
			fill = color.RGBA{R: 60, G: 160, B: 80, A: 160}
		case area.IsHighlighted:
			fill = color.RGBA{R: 220, G: 190, B: 60, A: 160}
		}
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)

		// 清洁中的区域叠加脏污遮罩，透明度随剩余脏污变化
		if stage != nil && stage.AreaID == id {
			dirtAlpha := uint8(stage.RemainingDirt() / 100 * 180)
			vector.DrawFilledRect(screen, x, y, w, h,
				color.RGBA{R: 70, G: 50, B: 30, A: dirtAlpha}, false)
		}

		// 进度条
		if area.State == components.RepairInProgress {
			barW := w * float32(area.Progress/100)
			vector.DrawFilledRect(screen, x, y+h+4, w, 6,
				color.RGBA{R: 40, G: 40, B: 40, A: 200}, false)
			vector.DrawFilledRect(screen, x, y+h+4, barW, 6,
				color.RGBA{R: 80, G: 200, B: 120, A: 255}, false)
		}
	}
}

// drawTools 绘制工具面板
func (s *RenderSystem) drawTools(screen *ebiten.Image) {
	toolEntities := ecs.GetEntitiesWith2[
		*components.ToolComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range toolEntities {
		tool, ok := ecs.GetComponent[*components.ToolComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !ok {
			continue
		}

		x := float32(pos.X - clickable.Width/2)
		y := float32(pos.Y - clickable.Height/2)
		w := float32(clickable.Width)
		h := float32(clickable.Height)

		fill := color.RGBA{R: 70, G: 80, B: 110, A: 220}
		if tool.IsSelected {
			fill = color.RGBA{R: 120, G: 150, B: 220, A: 255}
		}
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		ebitenutil.DebugPrintAt(screen, tool.Name, int(pos.X)-len(tool.Name)*3, int(pos.Y)-8)
	}
}

// drawEffects 绘制全部粒子，透明度为粒子剩余生命占比
func (s *RenderSystem) drawEffects(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.EffectComponent](s.entityManager) {
		effect, ok := ecs.GetComponent[*components.EffectComponent](s.entityManager, id)
		if !ok {
			continue
		}
		for i := range effect.Particles {
			p := &effect.Particles[i]
			alpha := p.Alpha()
			c := color.RGBA{
				R: uint8(p.Red * 255 * alpha),
				G: uint8(p.Green * 255 * alpha),
				B: uint8(p.Blue * 255 * alpha),
				A: uint8(255 * alpha),
			}
			size := p.Size * (0.6 + 0.4*effect.Intensity)
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(size), c, false)
		}
	}
}

// drawGuidingHands 绘制引导手势（脉动圆环）
func (s *RenderSystem) drawGuidingHands(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.GuidingHandComponent](s.entityManager) {
		hand, ok := ecs.GetComponent[*components.GuidingHandComponent](s.entityManager, id)
		if !ok {
			continue
		}
		// 半径随时间脉动
		radius := 18 + 6*math.Sin(hand.Age*6)
		vector.StrokeCircle(screen, float32(hand.TargetX), float32(hand.TargetY),
			float32(radius), 3, color.RGBA{R: 255, G: 255, B: 255, A: 220}, false)
	}
}

// drawHUD 绘制进度汇总
func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	p := s.controller.Progress()
	msg := fmt.Sprintf("修复 %d/%d  尝试 %d  用时 %.0fs",
		p.FixedProblems, p.TotalProblems, p.Attempts, p.ElapsedTime)
	if p.IsComplete {
		msg += "  修理完成!"
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
