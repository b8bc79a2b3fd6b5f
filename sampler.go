package main

import (
	"gohue/pick"

	"github.com/hajimehoshi/ebiten/v2"
)

// frameSampler backs the pipette with the application's own rendered frame.
// Draw keeps frame pointed at the most recent offscreen render.
type frameSampler struct {
	frame *ebiten.Image
}

func (s *frameSampler) PointerPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (s *frameSampler) PixelAt(x, y int) (pick.Color, bool) {
	if s.frame == nil {
		return pick.Color{}, false
	}
	b := s.frame.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return pick.Color{}, false
	}
	r, g, bl, _ := s.frame.At(x, y).RGBA()
	// The frame is opaque; sampled colors carry full alpha.
	return pick.NewColor(uint8(r>>8), uint8(g>>8), uint8(bl>>8), 255), true
}
