package pick

import (
	"testing"
	"time"
)

func newTestPicker(t *testing.T) (*Picker, *EventHandler) {
	t.Helper()
	p, h := New(nil, true, Capabilities{}, "")
	return p, h
}

func TestNewDefaultsToWhite(t *testing.T) {
	p, _ := newTestPicker(t)
	if p.Color() != NewColor(255, 255, 255, 255) {
		t.Fatalf("initial %+v", p.Color())
	}
	if p.red.text != "255" || p.green.text != "255" || p.blue.text != "255" {
		t.Fatalf("fields %q %q %q", p.red.text, p.green.text, p.blue.text)
	}
	if p.hexField.text != "FFFFFF" {
		t.Fatalf("hex %q", p.hexField.text)
	}
}

func TestNewUsesMostRecentPersisted(t *testing.T) {
	p, _ := New(nil, true, Capabilities{}, "1-2-3-255,,,9-8-7-255")
	if p.Color() != NewColor(9, 8, 7, 255) {
		t.Fatalf("initial %+v", p.Color())
	}
}

func TestHexCommitUpdatesEverythingButHex(t *testing.T) {
	p, _ := newTestPicker(t)
	p.hexField.setText("")
	p.hexField.cursor = 0
	if !p.hexField.insert("ff0000") {
		t.Fatalf("insert failed")
	}
	p.commitFields(srcHexField)

	if p.Color() != NewColor(255, 0, 0, 255) {
		t.Fatalf("color %+v", p.Color())
	}
	// The hex field is the direct source and keeps its text as typed
	// (uppercased by the filter); the RGB fields are repainted.
	if p.hexField.text != "FF0000" {
		t.Fatalf("hex %q", p.hexField.text)
	}
	if p.red.text != "255" || p.green.text != "0" || p.blue.text != "0" {
		t.Fatalf("fields %q %q %q", p.red.text, p.green.text, p.blue.text)
	}
}

func TestMalformedHexDoesNotPropagate(t *testing.T) {
	p, h := newTestPicker(t)
	before := p.Color()
	changes := 0
	h.Subscribe(func(ev Event) {
		if ev.Type == EventColorChanged {
			changes++
		}
	})
	p.hexField.setText("FF00")
	p.commitFields(srcHexField)
	if p.Color() != before || changes != 0 {
		t.Fatalf("color %+v changes %d", p.Color(), changes)
	}
}

func TestRGBCommitKeepsTypedFieldText(t *testing.T) {
	p, _ := newTestPicker(t)
	// Leading zero survives only if the source fields are not repainted.
	p.red.setText("012")
	p.green.setText("34")
	p.blue.setText("56")
	p.commitFields(srcRGBField)

	if p.Color() != NewColor(12, 34, 56, 255) {
		t.Fatalf("color %+v", p.Color())
	}
	if p.red.text != "012" {
		t.Fatalf("red field repainted to %q", p.red.text)
	}
	if p.hexField.text != FormatHex(p.Color()) {
		t.Fatalf("hex %q", p.hexField.text)
	}
}

func TestIncompleteRGBDoesNotPropagate(t *testing.T) {
	p, _ := newTestPicker(t)
	before := p.Color()
	p.red.setText("")
	p.commitFields(srcRGBField)
	if p.Color() != before {
		t.Fatalf("color %+v", p.Color())
	}
}

func TestWheelPressOutsideDiscRejected(t *testing.T) {
	p, _ := newTestPicker(t)
	p.wheelRect = rect{X0: 0, Y0: 0, X1: 100, Y1: 100}
	before := p.Color()
	if p.wheelPress(99, 99) {
		t.Fatalf("corner press accepted")
	}
	if p.Color() != before {
		t.Fatalf("color changed on rejected press")
	}
}

func TestWheelPressAndDrag(t *testing.T) {
	p, _ := newTestPicker(t)
	p.wheelRect = rect{X0: 0, Y0: 0, X1: 100, Y1: 100}

	// Halfway to the east rim: hue 0, saturation 0.5 at full brightness.
	if !p.wheelPress(75, 50) {
		t.Fatalf("press rejected")
	}
	if p.Color() != NewColor(255, 128, 128, 255) {
		t.Fatalf("color %+v", p.Color())
	}

	// Dragging past the rim clamps saturation instead of rejecting.
	p.wheelDrag(200, 50)
	if p.Color() != NewColor(255, 0, 0, 255) {
		t.Fatalf("color after drag %+v", p.Color())
	}
}

func TestBrightnessSliderPushesColor(t *testing.T) {
	p, _ := newTestPicker(t)
	p.SetColor(NewColor(255, 0, 0, 255))
	p.setBrightnessValue(50)
	r, g, b := HSBToRGB(0, 1, 0.5)
	if p.Color() != NewColor(r, g, b, 255) {
		t.Fatalf("color %+v", p.Color())
	}
	if p.bright.value != 50 {
		t.Fatalf("slider repainted to %d", p.bright.value)
	}
}

func TestOpacitySliderLeavesHexAlone(t *testing.T) {
	p, _ := newTestPicker(t)
	p.SetColor(NewColor(255, 0, 0, 255))
	p.setOpacityValue(50)
	if p.Color().A != 127 {
		t.Fatalf("alpha %d", p.Color().A)
	}
	if p.hexField.text != "FF0000" {
		t.Fatalf("hex %q", p.hexField.text)
	}
}

func TestOpacityDisabledForcesOpaque(t *testing.T) {
	c := NewColor(1, 2, 3, 10)
	p, _ := New(&c, false, Capabilities{}, "")
	if p.Color().A != 255 {
		t.Fatalf("alpha %d", p.Color().A)
	}
}

func TestConfirmAppendsRecentOnce(t *testing.T) {
	p, _ := newTestPicker(t)
	p.SetColor(NewColor(7, 7, 7, 255))
	p.Confirm()
	p.Confirm()
	if got := p.RecentColorsString(); got != "7-7-7-255" {
		t.Fatalf("recent %q", got)
	}
}

func TestFieldDebounceCommitsOnceWithLastValue(t *testing.T) {
	p, h := newTestPicker(t)
	changes := 0
	h.Subscribe(func(ev Event) {
		if ev.Type == EventColorChanged {
			changes++
		}
	})

	p.red.setText("")
	p.red.cursor = 0
	for _, ch := range []string{"1", "2", "8"} {
		if !p.red.insert(ch) {
			t.Fatalf("insert %q failed", ch)
		}
		p.fieldEdited(&p.red)
		time.Sleep(20 * time.Millisecond)
	}
	time.Sleep(2 * commitDelay)
	p.Update()

	if changes != 1 {
		t.Fatalf("committed %d times", changes)
	}
	if p.Color() != NewColor(128, 255, 255, 255) {
		t.Fatalf("color %+v", p.Color())
	}
}

func TestPickerPipetteCommitAndCancel(t *testing.T) {
	want := NewColor(10, 20, 30, 255)
	s := &stubSampler{x: 3, y: 4, px: map[[2]int]Color{{3, 4}: want}}
	p, _ := New(nil, true, Capabilities{Sampler: s}, "")

	if !p.StartPipette() {
		t.Fatalf("start failed")
	}
	p.commitPipette()
	if p.Color() != want {
		t.Fatalf("color %+v", p.Color())
	}

	p.SetColor(NewColor(1, 1, 1, 255))
	p.StartPipette()
	p.cancelPipette()
	if p.Color() != NewColor(1, 1, 1, 255) {
		t.Fatalf("cancel did not restore: %+v", p.Color())
	}
}

func TestPickerPipetteHoverPreview(t *testing.T) {
	want := NewColor(44, 55, 66, 255)
	s := &stubSampler{x: 1, y: 2, px: map[[2]int]Color{{1, 2}: want}}
	p, _ := New(nil, true, Capabilities{Sampler: s}, "")

	p.StartPipette()
	p.Update() // polls once
	time.Sleep(2 * commitDelay)
	p.Update() // drains the posted hover color
	if p.Color() != want {
		t.Fatalf("hover preview %+v", p.Color())
	}
}

func TestRejectionSignalsBeep(t *testing.T) {
	beeps := 0
	p, h := New(nil, true, Capabilities{Beep: func() { beeps++ }}, "")
	rejected := 0
	h.Subscribe(func(ev Event) {
		if ev.Type == EventInputRejected {
			rejected++
		}
	})
	p.hexField.insert("z")
	if beeps != 1 || rejected != 1 {
		t.Fatalf("beeps %d rejected %d", beeps, rejected)
	}
}

func TestRecentIndexAt(t *testing.T) {
	p, _ := newTestPicker(t)
	p.recentRect = rect{X0: 0, Y0: 0, X1: recentW, Y1: recentH}
	if i, ok := p.recentIndexAt(point{X: 5, Y: 5}); !ok || i != 0 {
		t.Fatalf("i=%d ok=%v", i, ok)
	}
	if i, ok := p.recentIndexAt(point{X: 5 + (recentCell + 1), Y: 5 + (recentCell + 1)}); !ok || i != recentCols+1 {
		t.Fatalf("i=%d ok=%v", i, ok)
	}
	if _, ok := p.recentIndexAt(point{X: -1, Y: 5}); ok {
		t.Fatalf("outside grid mapped")
	}
}
