package pick

import "time"

// ScreenSampler reads the pointer position and the display pixel under it,
// independent of the picker's own drawing. It is an injected capability; when
// the host cannot provide one the pipette control is hidden and the picker
// works through the wheel, sliders and fields alone.
type ScreenSampler interface {
	PointerPosition() (x, y int)
	PixelAt(x, y int) (Color, bool)
}

type pipetteState int

const (
	pipetteIdle pipetteState = iota
	pipetteSampling
)

// samplePollInterval is how often the pointer pixel is re-read while the
// pipette is active.
const samplePollInterval = 5 * time.Millisecond

// pipette samples a screen pixel under the pointer. While sampling it polls
// on a short interval and debounces hover notifications; it exits on commit
// (apply the sampled color) or cancel (restore the prior color).
type pipette struct {
	sampler ScreenSampler

	state    pipetteState
	oldColor Color

	lastPoll  time.Time
	lastX     int
	lastY     int
	lastColor Color
	sampled   bool

	notify alarm

	// onHover receives debounced hover-color previews.
	onHover func(Color)
}

func (p *pipette) available() bool { return p.sampler != nil }

func (p *pipette) sampling() bool { return p.state == pipetteSampling }

// start enters sampling mode, remembering the color to restore on cancel.
func (p *pipette) start(current Color) bool {
	if p.sampler == nil || p.state == pipetteSampling {
		return false
	}
	p.oldColor = current
	p.sampled = false
	p.lastPoll = time.Time{}
	p.state = pipetteSampling
	return true
}

// poll re-reads the pixel under the pointer. A changed color or position
// rearms the debounced hover notification with the latest sample.
func (p *pipette) poll(now time.Time) {
	if p.state != pipetteSampling {
		return
	}
	if !p.lastPoll.IsZero() && now.Sub(p.lastPoll) < samplePollInterval {
		return
	}
	p.lastPoll = now

	x, y := p.sampler.PointerPosition()
	c, ok := p.sampler.PixelAt(x, y)
	if !ok {
		return
	}
	if p.sampled && c == p.lastColor && x == p.lastX && y == p.lastY {
		return
	}
	p.lastColor = c
	p.lastX, p.lastY = x, y
	p.sampled = true
	if p.onHover != nil {
		p.notify.schedule(commitDelay, func() { p.onHover(c) })
	}
}

// commit leaves sampling mode and returns the pixel currently under the
// pointer.
func (p *pipette) commit() (Color, bool) {
	if p.state != pipetteSampling {
		return Color{}, false
	}
	p.state = pipetteIdle
	p.notify.cancel()
	x, y := p.sampler.PointerPosition()
	if c, ok := p.sampler.PixelAt(x, y); ok {
		p.oldColor = c
		return c, true
	}
	if p.sampled {
		p.oldColor = p.lastColor
		return p.lastColor, true
	}
	return Color{}, false
}

// cancel leaves sampling mode and returns the color that was in effect before
// sampling started, so the caller can put it back.
func (p *pipette) cancel() (Color, bool) {
	if p.state != pipetteSampling {
		return Color{}, false
	}
	p.state = pipetteIdle
	p.notify.cancel()
	return p.oldColor, true
}
