package pick

// Sliders map a pixel offset along their axis to an integer 0-100 value. The
// track is inset slideOffset pixels at each end to match the drawn groove.
const slideOffset = 11

// slider is the shared state of the brightness and opacity slide controls.
type slider struct {
	vertical bool
	value    int // 0 - 100
	length   int // pixel extent along the slide axis
}

// clampPointer keeps a raw pointer offset on the drawn track.
func (s *slider) clampPointer(p int) int {
	if p < slideOffset {
		p = slideOffset
	}
	if p > s.length-slideOffset-1 {
		p = s.length - slideOffset - 1
	}
	return p
}

// valueForPointer converts a pixel offset along the slide axis to 0-100.
// Nearest-integer rounding keeps the two directions mutually inverse.
func (s *slider) valueForPointer(p int) int {
	p = s.clampPointer(p) - slideOffset
	proportion := float64(s.length-2*slideOffset-1) / 100
	v := int(float64(p)/proportion + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return v
}

// pointerForValue is the inverse of valueForPointer.
func (s *slider) pointerForValue(v int) int {
	proportion := float64(s.length-2*slideOffset-1) / 100
	return slideOffset + int(float64(v)*proportion+0.5)
}

func (s *slider) setValue(v int) {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	s.value = v
}
