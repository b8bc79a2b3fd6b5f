package main

import (
	"image/color"

	"gohue/pick"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const buttonRowH = 40

type button struct {
	x, y, w, h float32
	label      string
}

func (b *button) contains(px, py int) bool {
	fx, fy := float32(px), float32(py)
	return fx >= b.x && fx < b.x+b.w && fy >= b.y && fy < b.y+b.h
}

// Game hosts the picker widget plus the Choose and Cancel buttons.
type Game struct {
	picker  *pick.Picker
	handler *pick.EventHandler
	sampler *frameSampler

	choose button
	cancel button

	w, h int

	chosen    *pick.Color
	cancelled bool
}

func (g *Game) Layout(outW, outH int) (int, int) {
	if outW != g.w || outH != g.h {
		g.w, g.h = outW, outH
		g.picker.Layout(0, 0, float32(outW), float32(outH-buttonRowH))
		bw, bh := float32(90), float32(buttonRowH-12)
		by := float32(outH-buttonRowH) + 6
		g.choose = button{x: float32(outW)/2 - bw - 8, y: by, w: bw, h: bh, label: "Choose"}
		g.cancel = button{x: float32(outW)/2 + 8, y: by, w: bw, h: bh, label: "Cancel"}
	}
	return outW, outH
}

func (g *Game) Update() error {
	g.picker.Update()
	if !ebiten.IsFocused() {
		g.picker.FocusLost()
	}
	g.picker.HandleInput()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.picker.PipetteActive() {
		mx, my := ebiten.CursorPosition()
		switch {
		case g.choose.contains(mx, my):
			c := g.picker.Confirm()
			g.chosen = &c
			return ebiten.Termination
		case g.cancel.contains(mx, my):
			g.picker.Cancel()
			g.cancelled = true
			return ebiten.Termination
		}
	}
	return nil
}

// Draw renders into an offscreen frame first so the pipette can sample the
// exact pixels on screen.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.sampler.frame == nil || g.sampler.frame.Bounds().Dx() != w || g.sampler.frame.Bounds().Dy() != h {
		g.sampler.frame = ebiten.NewImage(w, h)
	}
	frame := g.sampler.frame
	frame.Fill(color.RGBA{R: 40, G: 40, B: 40, A: 255})

	g.picker.Draw(frame)
	g.drawButton(frame, &g.choose)
	g.drawButton(frame, &g.cancel)

	screen.DrawImage(frame, nil)
}

func (g *Game) drawButton(dst *ebiten.Image, b *button) {
	vector.DrawFilledRect(dst, b.x, b.y, b.w, b.h, color.RGBA{R: 70, G: 70, B: 70, A: 255}, false)
	vector.StrokeRect(dst, b.x, b.y, b.w, b.h, 1, color.RGBA{R: 160, G: 160, B: 160, A: 255}, false)

	if mainFont == nil {
		return
	}
	tw, th := text.Measure(b.label, mainFont, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.x)+(float64(b.w)-tw)/2, float64(b.y)+(float64(b.h)-th)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, b.label, mainFont, op)
}
