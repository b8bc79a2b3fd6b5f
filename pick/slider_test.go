package pick

import "testing"

func TestSliderValuePointerRoundTrip(t *testing.T) {
	s := slider{length: 290}
	for v := 0; v <= 100; v++ {
		p := s.pointerForValue(v)
		if p < slideOffset || p > s.length-slideOffset-1 {
			t.Fatalf("value %d maps to pointer %d outside the track", v, p)
		}
		if got := s.valueForPointer(p); got != v {
			t.Fatalf("value %d -> pointer %d -> value %d", v, p, got)
		}
	}
}

func TestSliderPointerClamped(t *testing.T) {
	s := slider{length: 200}
	if got := s.valueForPointer(-50); got != 0 {
		t.Fatalf("below track: %d", got)
	}
	if got := s.valueForPointer(5000); got != 100 {
		t.Fatalf("beyond track: %d", got)
	}
	if got := s.valueForPointer(slideOffset); got != 0 {
		t.Fatalf("track start: %d", got)
	}
	if got := s.valueForPointer(s.length - slideOffset - 1); got != 100 {
		t.Fatalf("track end: %d", got)
	}
}

func TestSliderSetValueClamps(t *testing.T) {
	var s slider
	s.setValue(-5)
	if s.value != 0 {
		t.Fatalf("%d", s.value)
	}
	s.setValue(250)
	if s.value != 100 {
		t.Fatalf("%d", s.value)
	}
}
