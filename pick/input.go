package pick

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	clipboard "golang.design/x/clipboard"
)

// HandleInput processes one tick of pointer and keyboard input. Call from the
// host's Update after Picker.Update.
func (p *Picker) HandleInput() {
	if p.pip.sampling() {
		p.handlePipetteInput()
		return
	}

	x, y := ebiten.CursorPosition()
	mpos := point{X: float32(x), Y: float32(y)}
	click := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if click {
		p.handlePress(mpos)
	} else if held {
		p.handleDrag(mpos)
	} else {
		p.wheelDragging = false
		p.brightDragging = false
		p.opacDragging = false
	}

	if p.focus != nil {
		p.handleFieldKeys()
	}
}

func (p *Picker) handlePipetteInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.cancelPipette()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.commitPipette()
	}
}

// FocusLost cancels a sampling pipette when the host window loses focus.
func (p *Picker) FocusLost() {
	if p.pip.sampling() {
		p.cancelPipette()
	}
}

func (p *Picker) handlePress(mpos point) {
	switch {
	case p.pip.available() && p.pipetteRect.containsPoint(mpos):
		p.focusField(nil)
		p.StartPipette()
	case p.wheelRect.containsPoint(mpos):
		p.focusField(nil)
		if p.wheelPress(float64(mpos.X), float64(mpos.Y)) {
			p.wheelDragging = true
		}
	case p.brightRect.containsPoint(mpos):
		p.focusField(nil)
		p.brightDragging = true
		p.setBrightnessValue(p.bright.valueForPointer(int(mpos.Y - p.brightRect.Y0)))
	case p.withOpacity && p.opacRect.containsPoint(mpos):
		p.focusField(nil)
		p.opacDragging = true
		p.setOpacityValue(p.opac.valueForPointer(int(mpos.X - p.opacRect.X0)))
	case p.redRect.containsPoint(mpos):
		p.focusField(&p.red)
		p.red.cursor = p.cursorIndexAt(&p.red, p.redRect, mpos)
	case p.greenRect.containsPoint(mpos):
		p.focusField(&p.green)
		p.green.cursor = p.cursorIndexAt(&p.green, p.greenRect, mpos)
	case p.blueRect.containsPoint(mpos):
		p.focusField(&p.blue)
		p.blue.cursor = p.cursorIndexAt(&p.blue, p.blueRect, mpos)
	case p.hexRect.containsPoint(mpos):
		p.focusField(&p.hexField)
		p.hexField.cursor = p.cursorIndexAt(&p.hexField, p.hexRect, mpos)
	default:
		if i, ok := p.recentIndexAt(mpos); ok {
			p.focusField(nil)
			p.pickRecent(i)
		} else if p.bounds.containsPoint(mpos) {
			p.focusField(nil)
		}
	}
}

func (p *Picker) handleDrag(mpos point) {
	if p.wheelDragging {
		p.wheelDrag(float64(mpos.X), float64(mpos.Y))
	}
	if p.brightDragging {
		p.setBrightnessValue(p.bright.valueForPointer(int(mpos.Y - p.brightRect.Y0)))
	}
	if p.opacDragging {
		p.setOpacityValue(p.opac.valueForPointer(int(mpos.X - p.opacRect.X0)))
	}
}

// focusField moves keyboard focus. A pending debounced commit for the old
// field keeps running; focus only affects where keys go.
func (p *Picker) focusField(f *numberField) {
	if p.focus != f {
		p.focus = f
		p.dirty = true
	}
}

func (p *Picker) cursorIndexAt(f *numberField, r rect, mpos point) int {
	runes := []rune(f.text)
	face := textFace(fieldFontSize)
	if face == nil {
		return len(runes)
	}
	x := mpos.X - r.X0 - 3
	if x < 0 {
		return 0
	}
	advance := float32(0)
	for i, ch := range runes {
		w, _ := text.Measure(string(ch), face, 0)
		if x < advance+float32(w)/2 {
			return i
		}
		advance += float32(w)
	}
	return len(runes)
}

func (p *Picker) handleFieldKeys() {
	f := p.focus

	for _, r := range ebiten.AppendInputChars(nil) {
		if r < 32 || r == 127 {
			continue
		}
		if f.insert(string(r)) {
			p.dirty = true
			p.fieldEdited(f)
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if txt := clipboard.Read(clipboard.FmtText); len(txt) > 0 {
			if f.insert(string(txt)) {
				p.dirty = true
				p.fieldEdited(f)
			}
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		clipboard.Write(clipboard.FmtText, []byte(f.text))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if f.backspace() {
			p.dirty = true
			p.fieldEdited(f)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		f.moveCursor(-1)
		p.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		f.moveCursor(1)
		p.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.focusField(nil)
	}
}
