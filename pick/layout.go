package pick

// Fixed layout metrics, in unscaled pixels.
const (
	panelPad     = 5
	previewH     = 32
	fieldRowH    = 24
	fieldGap     = 5
	channelW     = 34
	hexW         = 70
	labelW       = 14
	sliderW      = 22
	recentCols   = 10
	recentRows   = 2
	recentCell   = 30
	recentW      = recentCols*recentCell + 13
	recentH      = recentRows*recentCell + 5
	wheelPadding = 5
)

// MinSize returns the smallest widget size the layout supports.
func (p *Picker) MinSize() (w, h float32) {
	w = recentW + 2*panelPad
	h = previewH + fieldRowH + 300 + recentH + 6*panelPad
	if p.withOpacity {
		h += sliderW
	}
	return w, h
}

// Layout positions every sub-control inside the given widget rectangle. Call
// whenever the widget moves or resizes; the wheel raster is rebuilt lazily
// when its size changed.
func (p *Picker) Layout(x, y, w, h float32) {
	p.bounds = rect{X0: x, Y0: y, X1: x + w, Y1: y + h}

	top := y + panelPad
	left := x + panelPad
	right := x + w - panelPad

	// Preview bar, with the pipette button at its left when available.
	pw := float32(0)
	if p.pip.available() {
		pw = previewH
		p.pipetteRect = rect{X0: left, Y0: top, X1: left + pw, Y1: top + previewH}
	} else {
		p.pipetteRect = rect{}
	}
	p.previewRect = rect{X0: left + pw + 2, Y0: top, X1: right, Y1: top + previewH}
	top += previewH + panelPad

	// R/G/B fields on the left, hex on the right. Label space precedes each.
	fx := left
	p.redRect = rect{X0: fx + labelW, Y0: top, X1: fx + labelW + channelW, Y1: top + fieldRowH}
	fx = p.redRect.X1 + fieldGap
	p.greenRect = rect{X0: fx + labelW, Y0: top, X1: fx + labelW + channelW, Y1: top + fieldRowH}
	fx = p.greenRect.X1 + fieldGap
	p.blueRect = rect{X0: fx + labelW, Y0: top, X1: fx + labelW + channelW, Y1: top + fieldRowH}
	p.hexRect = rect{X0: right - hexW, Y0: top, X1: right, Y1: top + fieldRowH}
	top += fieldRowH + panelPad

	// Square wheel with the brightness slider on its right edge; optional
	// opacity slider below; recent swatches at the bottom.
	bottom := y + h - panelPad - recentH - panelPad
	wheelAvailH := bottom - top
	if p.withOpacity {
		wheelAvailH -= sliderW
	}
	wheelAvailW := right - left - sliderW - 4
	wheelSize := wheelAvailW
	if wheelAvailH < wheelSize {
		wheelSize = wheelAvailH
	}
	if wheelSize < 0 {
		wheelSize = 0
	}
	wx := left + (wheelAvailW-wheelSize)/2
	p.wheelRect = rect{
		X0: wx + wheelPadding, Y0: top + wheelPadding,
		X1: wx + wheelSize - wheelPadding, Y1: top + wheelSize - wheelPadding,
	}
	p.brightRect = rect{X0: right - sliderW, Y0: top, X1: right, Y1: top + wheelSize}
	p.bright.length = int(wheelSize)
	if p.withOpacity {
		p.opacRect = rect{X0: left, Y0: top + wheelSize, X1: right - sliderW - 4, Y1: top + wheelSize + sliderW}
		p.opac.length = int(p.opacRect.width())
	} else {
		p.opacRect = rect{}
	}

	rx := x + (w-recentW)/2
	p.recentRect = rect{X0: rx, Y0: bottom + panelPad, X1: rx + recentW, Y1: bottom + panelPad + recentH}

	p.dirty = true
}

// recentIndexAt maps a point inside the recent-swatch grid to a list index.
func (p *Picker) recentIndexAt(pt point) (int, bool) {
	if !p.recentRect.containsPoint(pt) {
		return 0, false
	}
	col := int(pt.X-p.recentRect.X0-2) / (recentCell + 1)
	if col > recentCols-1 {
		col = recentCols - 1
	}
	row := int(pt.Y-p.recentRect.Y0-2) / (recentCell + 1)
	if row > recentRows-1 {
		row = recentRows - 1
	}
	if col < 0 || row < 0 {
		return 0, false
	}
	return row*recentCols + col, true
}
