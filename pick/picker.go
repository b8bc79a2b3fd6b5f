package pick

import (
	"strconv"
	"time"
)

// Capabilities are the host-provided platform hooks. Everything is optional;
// a zero value yields a silent picker without a pipette.
type Capabilities struct {
	// Beep is the input-rejection signal, played when a keystroke is
	// filtered out of a text field.
	Beep func()
	// Sampler backs the screen pipette. Nil hides the pipette control.
	Sampler ScreenSampler
	// Background fills the panel behind the wheel.
	Background Color
}

// sourceKind identifies which control drove a color update. The direct source
// is the one representation that is not rewritten afterwards, so in-progress
// keystrokes are never clobbered.
type sourceKind int

const (
	srcCaller sourceKind = iota
	srcWheel
	srcBrightness
	srcOpacity
	srcRGBField
	srcHexField
	srcRecent
	srcPipette
)

type point struct {
	X, Y float32
}

type rect struct {
	X0, Y0, X1, Y1 float32
}

func (r rect) containsPoint(p point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

func (r rect) width() float32  { return r.X1 - r.X0 }
func (r rect) height() float32 { return r.Y1 - r.Y0 }

// Picker owns the authoritative color and every control that can change it:
// wheel pointer interaction, brightness and opacity sliders, hex and RGB text
// entry, recent-color selection and the screen pipette. All mutation funnels
// through setColor on the host's event thread.
type Picker struct {
	caps    Capabilities
	handler *EventHandler

	color      Color
	hue        float64
	sat        float64
	brightness float64

	bright      slider
	opac        slider
	withOpacity bool

	red, green, blue numberField
	hexField         numberField
	focus            *numberField
	commitAlarm      alarm

	recent recentColors
	pip    pipette

	raster *wheelRaster
	wheel  wheelCache

	// Geometry, widget-local pixels. Valid after Layout.
	bounds      rect
	previewRect rect
	pipetteRect rect
	redRect     rect
	greenRect   rect
	blueRect    rect
	hexRect     rect
	wheelRect   rect
	brightRect  rect
	opacRect    rect
	recentRect  rect

	wheelDragging  bool
	brightDragging bool
	opacDragging   bool

	// pending holds closures queued from timer goroutines; Update drains
	// them so all state changes happen on the event thread.
	pending chan func()

	dirty bool
}

// New creates a picker. When initial is nil the most recent persisted color
// is used, falling back to white. The returned handler delivers picker
// events.
func New(initial *Color, enableOpacity bool, caps Capabilities, persisted string) (*Picker, *EventHandler) {
	p := &Picker{
		caps:        caps,
		handler:     newHandler(),
		withOpacity: enableOpacity,
		pending:     make(chan func(), 8),
	}
	p.bright.vertical = true
	p.hexField.hex = true
	reject := func() {
		if p.caps.Beep != nil {
			p.caps.Beep()
		}
		p.handler.Emit(Event{Type: EventInputRejected})
	}
	p.red.onReject = reject
	p.green.onReject = reject
	p.blue.onReject = reject
	p.hexField.onReject = reject

	p.pip.sampler = caps.Sampler
	p.pip.onHover = func(c Color) {
		p.post(func() { p.setColor(c, srcPipette) })
	}

	p.recent.colors = parseRecentColors(persisted)

	c := NewColor(255, 255, 255, 255)
	if initial != nil {
		c = *initial
	} else if mr, ok := p.recent.mostRecent(); ok {
		c = mr
	}
	if !enableOpacity {
		c.A = 255
	}
	p.setColor(c, srcCaller)
	return p, p.handler
}

// post queues fn for the next Update so timers never touch picker state
// directly.
func (p *Picker) post(fn func()) {
	select {
	case p.pending <- fn:
	default:
	}
}

// Update drains queued work and advances the pipette. Call once per host
// update tick.
func (p *Picker) Update() {
	for {
		select {
		case fn := <-p.pending:
			fn()
		default:
			if p.pip.sampling() {
				p.pip.poll(time.Now())
			}
			return
		}
	}
}

// Color returns the authoritative color.
func (p *Picker) Color() Color { return p.color }

// SetColor replaces the color programmatically. Every representation is
// repainted.
func (p *Picker) SetColor(c Color) { p.setColor(c, srcCaller) }

// setColor is the single update path. The HSB mirror, sliders and text fields
// are all recomputed from c, except the representation named by src.
func (p *Picker) setColor(c Color, src sourceKind) {
	if !p.withOpacity {
		c.A = 255
	}
	prevBrightness := p.brightness
	p.color = c
	p.hue, p.sat, p.brightness = c.HSB()

	if src != srcBrightness {
		p.bright.setValue(100 - int(p.brightness*100))
	}
	if src != srcOpacity {
		p.opac.setValue(c.Opacity())
	}
	if src != srcRGBField {
		p.red.setText(strconv.Itoa(int(c.R)))
		p.green.setText(strconv.Itoa(int(c.G)))
		p.blue.setText(strconv.Itoa(int(c.B)))
	}
	if src != srcHexField {
		p.hexField.setText(FormatHex(c))
	}

	// The raster depends only on size and brightness; invalidate it when
	// brightness moved.
	if p.raster != nil && p.brightness != prevBrightness {
		p.raster = nil
	}
	p.dirty = true
	p.handler.Emit(Event{Type: EventColorChanged, Color: c})
}

func (p *Picker) setHSB(h, s, b float64, src sourceKind) {
	alpha := uint8(255 * float64(p.opac.value) / 100)
	if !p.withOpacity {
		alpha = 255
	}
	p.setColor(colorFromHSB(h, s, b, alpha), src)
}

// wheelPress maps a press inside the wheel bounds. Presses outside the disc
// are rejected.
func (p *Picker) wheelPress(x, y float64) bool {
	h, s := p.pointerToWheel(x, y)
	if s > 1 {
		return false
	}
	p.setHSB(h, s, p.brightness, srcWheel)
	return true
}

// wheelDrag maps a drag. Dragging outside the disc is a normal gesture, so
// saturation clamps instead of rejecting.
func (p *Picker) wheelDrag(x, y float64) {
	h, s := p.pointerToWheel(x, y)
	if s > 1 {
		s = 1
	}
	p.setHSB(h, s, p.brightness, srcWheel)
}

func (p *Picker) pointerToWheel(x, y float64) (hue, sat float64) {
	mx := float64(p.wheelRect.X0+p.wheelRect.X1) / 2
	my := float64(p.wheelRect.Y0+p.wheelRect.Y1) / 2
	return pointerHueSat(x, y, mx, my, float64(p.wheelRect.width()))
}

// markerPoint is where the marker for the current color sits inside the wheel
// bounds.
func (p *Picker) markerPoint() (x, y float64) {
	mx := float64(p.wheelRect.X0+p.wheelRect.X1) / 2
	my := float64(p.wheelRect.Y0+p.wheelRect.Y1) / 2
	return markerPosition(p.hue, p.sat, mx, my,
		float64(p.wheelRect.width()), float64(p.wheelRect.height()))
}

// setBrightnessValue applies a 0-100 slider value; 0 is full brightness.
func (p *Picker) setBrightnessValue(v int) {
	p.bright.setValue(v)
	p.setHSB(p.hue, p.sat, 1-float64(p.bright.value)/100, srcBrightness)
	p.handler.Emit(Event{Type: EventSliderChanged, Value: p.bright.value})
}

// setOpacityValue applies a 0-100 opacity percentage.
func (p *Picker) setOpacityValue(v int) {
	p.opac.setValue(v)
	c := p.color
	c.A = uint8(255 * float64(p.opac.value) / 100)
	p.setColor(c, srcOpacity)
	p.handler.Emit(Event{Type: EventSliderChanged, Value: p.opac.value})
}

// fieldEdited reschedules the debounced commit after any text change. A new
// edit replaces the pending one, so a burst of keystrokes commits once with
// the final text.
func (p *Picker) fieldEdited(f *numberField) {
	src := srcRGBField
	if f == &p.hexField {
		src = srcHexField
	}
	p.commitAlarm.schedule(commitDelay, func() {
		p.post(func() { p.commitFields(src) })
	})
}

// commitFields validates the edited text and, when well formed, pushes the
// result through the single update path. Malformed text simply does not
// propagate.
func (p *Picker) commitFields(src sourceKind) {
	if src == srcHexField {
		c, ok := ParseHex(p.hexField.text)
		if !ok {
			return
		}
		c.A = uint8(255 * float64(p.opac.value) / 100)
		if !p.withOpacity {
			c.A = 255
		}
		if c != p.color {
			p.setColor(c, srcHexField)
		}
		return
	}
	r, okR := p.red.channelValue()
	g, okG := p.green.channelValue()
	b, okB := p.blue.channelValue()
	if !okR || !okG || !okB {
		return
	}
	c := NewColor(r, g, b, p.color.A)
	if c != p.color {
		p.setColor(c, srcRGBField)
	}
}

// pickRecent applies the stored color at grid index i, if any.
func (p *Picker) pickRecent(i int) bool {
	c, ok := p.recent.at(i)
	if !ok {
		return false
	}
	p.setColor(c, srcRecent)
	return true
}

// StartPipette enters screen-sampling mode. Reports false when the sampler
// capability is missing.
func (p *Picker) StartPipette() bool {
	if !p.pip.start(p.color) {
		return false
	}
	p.handler.Emit(Event{Type: EventPipetteStarted})
	return true
}

// PipetteActive reports whether the pipette is sampling.
func (p *Picker) PipetteActive() bool { return p.pip.sampling() }

// commitPipette applies the pixel under the pointer and leaves sampling mode.
func (p *Picker) commitPipette() {
	if c, ok := p.pip.commit(); ok {
		p.setColor(c, srcPipette)
		p.handler.Emit(Event{Type: EventPipetteFinished, Color: c})
	}
}

// cancelPipette leaves sampling mode and restores the color that was current
// when sampling started.
func (p *Picker) cancelPipette() {
	if c, ok := p.pip.cancel(); ok {
		p.setColor(c, srcPipette)
		p.handler.Emit(Event{Type: EventPipetteFinished, Color: c})
	}
}

// Confirm records the chosen color in the recent list and reports it.
func (p *Picker) Confirm() Color {
	p.recent.append(p.color)
	p.handler.Emit(Event{Type: EventConfirmed, Color: p.color})
	return p.color
}

// Cancel abandons the interaction; the recent list is left untouched.
func (p *Picker) Cancel() {
	p.commitAlarm.cancel()
	if p.pip.sampling() {
		p.cancelPipette()
	}
	p.handler.Emit(Event{Type: EventCancelled})
}

// RecentColorsString serializes the recent list for persistence.
func (p *Picker) RecentColorsString() string { return p.recent.serialize() }

// PipetteAvailable reports whether the host supplied a screen sampler.
func (p *Picker) PipetteAvailable() bool { return p.pip.available() }
