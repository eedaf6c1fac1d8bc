package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/padhop/sim"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 16

// HUD prints frame rate and actor diagnostics in the top-left corner.
type HUD struct {
	face ebtext.Face
}

func NewHUD() *HUD {
	return &HUD{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, s *sim.Simulation) {
	actor := s.Actor()
	lines := []string{
		fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("tick: %d  dt: %.4f", s.Ticks(), s.DT()),
		fmt.Sprintf("pos: (%.2f, %.2f)  vel: (%.2f, %.2f)", actor.X, actor.Y, actor.VX, actor.VY),
		fmt.Sprintf("grounded: %v", actor.Grounded),
	}
	if s.GoalReached() {
		lines = append(lines, "goal reached!")
	}

	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*hudLineHeight))
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, line, h.face, op)
	}
}
