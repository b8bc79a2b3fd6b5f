package pick

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// wheelCache keeps the uploaded GPU copy of the raster. It lives here so the
// state files never touch GPU types.
type wheelCache struct {
	img *ebiten.Image
}

const fieldFontSize = 14

var (
	colorWhite = NewColor(255, 255, 255, 255)
	colorBlack = NewColor(0, 0, 0, 255)
	colorGray  = NewColor(150, 150, 150, 255)
	colorFocus = NewColor(80, 140, 255, 255)
	knobColor  = NewColor(153, 51, 0, 255)
)

// wheelImage returns the cached GPU image of the wheel, regenerating the
// raster when the size or brightness moved since the last draw.
func (p *Picker) wheelImage() *ebiten.Image {
	size := int(p.wheelRect.width())
	if size <= 0 {
		return nil
	}
	if p.raster == nil || p.raster.width != size || p.raster.brightness != p.brightness {
		p.raster = newWheelRaster(size, size, p.brightness)
		p.wheel.img = ebiten.NewImageFromImage(p.raster.image())
	}
	if p.wheel.img == nil {
		p.wheel.img = ebiten.NewImageFromImage(p.raster.image())
	}
	return p.wheel.img
}

// Draw paints the whole picker into screen using the geometry from Layout.
func (p *Picker) Draw(screen *ebiten.Image) {
	b := p.bounds
	bg := p.caps.Background
	if bg == (Color{}) {
		bg = NewColor(40, 40, 40, 255)
	}
	drawFilledRect(screen, b.X0, b.Y0, b.width(), b.height(), bg)

	p.drawPreview(screen)
	if p.pip.available() {
		p.drawPipetteButton(screen)
	}
	p.drawField(screen, &p.red, p.redRect, "R:")
	p.drawField(screen, &p.green, p.greenRect, "G:")
	p.drawField(screen, &p.blue, p.blueRect, "B:")
	p.drawField(screen, &p.hexField, p.hexRect, "#:")
	p.drawWheel(screen)
	p.drawBrightness(screen)
	if p.withOpacity {
		p.drawOpacity(screen)
	}
	p.drawRecent(screen)
	p.dirty = false
}

func (p *Picker) drawPreview(screen *ebiten.Image) {
	r := p.previewRect
	// White underlay so translucent colors read correctly.
	drawFilledRect(screen, r.X0, r.Y0, r.width(), r.height(), colorWhite)
	drawFilledRect(screen, r.X0, r.Y0, r.width(), r.height(), p.color)
	strokeRect(screen, r.X0, r.Y0, r.width(), r.height(), 1, colorBlack)
	strokeRect(screen, r.X0+1, r.Y0+1, r.width()-2, r.height()-2, 1, colorWhite)
}

func (p *Picker) drawPipetteButton(screen *ebiten.Image) {
	r := p.pipetteRect
	bg := colorGray
	if p.pip.sampling() {
		bg = colorFocus
	}
	drawFilledRect(screen, r.X0, r.Y0, r.width(), r.height(), bg)
	strokeRect(screen, r.X0, r.Y0, r.width(), r.height(), 1, colorBlack)
	// Eyedropper glyph: a diagonal stem with a round tip.
	cx := (r.X0 + r.X1) / 2
	cy := (r.Y0 + r.Y1) / 2
	strokeLine(screen, cx-7, cy+7, cx+5, cy-5, 3, colorBlack)
	vector.FillCircle(screen, cx+6, cy-6, 4, colorBlack.ToRGBA(), true)
}

func (p *Picker) drawField(screen *ebiten.Image, f *numberField, r rect, label string) {
	face := textFace(fieldFontSize)
	if face != nil {
		lop := &text.DrawOptions{}
		lop.GeoM.Translate(float64(r.X0-labelW), float64(r.Y0+3))
		lop.ColorScale.ScaleWithColor(colorWhite.ToRGBA())
		text.Draw(screen, label, face, lop)
	}

	drawFilledRect(screen, r.X0, r.Y0, r.width(), r.height(), colorWhite)
	border := colorGray
	if p.focus == f {
		border = colorFocus
	}
	strokeRect(screen, r.X0, r.Y0, r.width(), r.height(), 1, border)

	if face == nil {
		return
	}
	top := &text.DrawOptions{}
	top.GeoM.Translate(float64(r.X0+3), float64(r.Y0+3))
	top.ColorScale.ScaleWithColor(colorBlack.ToRGBA())
	text.Draw(screen, f.text, face, top)

	if p.focus == f {
		w, _ := text.Measure(string([]rune(f.text)[:f.cursor]), face, 0)
		cx := r.X0 + 3 + float32(w)
		strokeLine(screen, cx, r.Y0+3, cx, r.Y1-3, 1, colorBlack)
	}
}

func (p *Picker) drawWheel(screen *ebiten.Image) {
	img := p.wheelImage()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest, DisableMipmaps: true}
	op.GeoM.Translate(float64(p.wheelRect.X0), float64(p.wheelRect.Y0))
	// The wheel itself previews the current opacity.
	op.ColorScale.ScaleAlpha(float32(p.opac.value) / 100)
	screen.DrawImage(img, op)

	mx, my := p.markerPoint()
	vector.FillCircle(screen, float32(mx), float32(my), 4, colorBlack.ToRGBA(), true)
	vector.FillCircle(screen, float32(mx), float32(my), 2, colorWhite.ToRGBA(), true)
}

func (p *Picker) drawBrightness(screen *ebiten.Image) {
	r := p.brightRect
	// White-to-black groove, top to bottom.
	steps := int(r.height()) - 2*slideOffset
	for i := 0; i < steps; i++ {
		v := uint8(255 - i*255/steps)
		drawFilledRect(screen, r.X0+7, r.Y0+float32(slideOffset+i), 12, 1, NewColor(v, v, v, 255))
	}
	strokeRect(screen, r.X0+7, r.Y0+slideOffset, 12, float32(steps), 1, colorGray)

	ky := r.Y0 + float32(p.bright.pointerForValue(p.bright.value))
	drawKnob(screen, r.X0+2, ky, true)
}

func (p *Picker) drawOpacity(screen *ebiten.Image) {
	r := p.opacRect
	steps := int(r.width()) - 2*slideOffset
	base := p.color
	for i := 0; i < steps; i++ {
		a := uint8(i * 255 / steps)
		drawFilledRect(screen, r.X0+float32(slideOffset+i), r.Y0+7, 1, 12, NewColor(base.R, base.G, base.B, a))
	}
	strokeRect(screen, r.X0+slideOffset, r.Y0+7, float32(steps), 12, 1, colorGray)

	kx := r.X0 + float32(p.opac.pointerForValue(p.opac.value))
	drawKnob(screen, kx, r.Y0+2, false)
}

// drawKnob paints the slider arrow pointing into the groove.
func drawKnob(screen *ebiten.Image, x, y float32, vertical bool) {
	var path vector.Path
	if vertical {
		path.MoveTo(x, y-6)
		path.LineTo(x+10, y)
		path.LineTo(x, y+6)
	} else {
		path.MoveTo(x-6, y)
		path.LineTo(x+6, y)
		path.LineTo(x, y+10)
	}
	path.Close()
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(knobColor.ToRGBA())
	vector.FillPath(screen, &path, nil, op)
}

func (p *Picker) drawRecent(screen *ebiten.Image) {
	r := p.recentRect
	drawFilledRect(screen, r.X0, r.Y0, r.width(), r.height(), colorWhite)
	strokeRect(screen, r.X0+1, r.Y0+1, r.width()-3, r.height()-3, 1, colorGray)
	strokeLine(screen, r.X0+1, r.Y0+r.height()/2, r.X1-3, r.Y0+r.height()/2, 1, colorGray)
	for k := 1; k < recentCols; k++ {
		x := r.X0 + 1 + float32(k*(recentCell+1))
		strokeLine(screen, x, r.Y0+1, x, r.Y1-3, 1, colorGray)
	}
	for i, c := range p.recent.colors {
		row := i / recentCols
		col := i % recentCols
		x := r.X0 + 2 + float32(col*(recentCell+1)) + 1
		y := r.Y0 + 2 + float32(row*(recentCell+1)) + 1
		drawFilledRect(screen, x, y, recentCell-2, recentCell-2, c)
	}
}

func drawFilledRect(dst *ebiten.Image, x, y, w, h float32, col Color) {
	x = float32(math.Round(float64(x)))
	y = float32(math.Round(float64(y)))
	vector.DrawFilledRect(dst, x, y, w, h, col.ToRGBA(), true)
}

func strokeRect(dst *ebiten.Image, x, y, w, h, width float32, col Color) {
	vector.StrokeRect(dst, x, y, w, h, width, col.ToRGBA(), true)
}

func strokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float32, col Color) {
	vector.StrokeLine(dst, x0, y0, x1, y1, width, col.ToRGBA(), true)
}
