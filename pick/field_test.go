package pick

import "testing"

func TestHexFieldFiltersCharacters(t *testing.T) {
	rejects := 0
	f := numberField{hex: true, onReject: func() { rejects++ }}

	if !f.insert("fF00aB") {
		t.Fatalf("valid hex rejected")
	}
	if f.text != "FF00AB" {
		t.Fatalf("text %q, want uppercase", f.text)
	}
	if rejects != 0 {
		t.Fatalf("unexpected rejects: %d", rejects)
	}

	f = numberField{hex: true, onReject: func() { rejects++ }}
	rejects = 0
	if f.insert("zz") {
		t.Fatalf("invalid chars changed text")
	}
	if f.text != "" {
		t.Fatalf("text %q after rejected insert", f.text)
	}
	if rejects != 2 {
		t.Fatalf("want one reject per filtered char, got %d", rejects)
	}
}

func TestHexFieldLengthLimit(t *testing.T) {
	rejects := 0
	f := numberField{hex: true, onReject: func() { rejects++ }}
	f.insert("AABBCC")
	if f.insert("D") {
		t.Fatalf("seventh digit accepted")
	}
	if f.text != "AABBCC" || rejects != 1 {
		t.Fatalf("text %q rejects %d", f.text, rejects)
	}
}

func TestDecimalFieldRange(t *testing.T) {
	rejects := 0
	f := numberField{onReject: func() { rejects++ }}
	f.insert("25")
	// "255" is fine, "256" must be rejected outright, never clamped.
	if !f.insert("5") {
		t.Fatalf("255 rejected")
	}
	f = numberField{onReject: func() { rejects++ }}
	rejects = 0
	f.insert("25")
	if f.insert("6") {
		t.Fatalf("256 accepted")
	}
	if f.text != "25" || rejects != 1 {
		t.Fatalf("text %q rejects %d", f.text, rejects)
	}
}

func TestDecimalFieldRejectsNonDigits(t *testing.T) {
	rejects := 0
	f := numberField{onReject: func() { rejects++ }}
	if f.insert("a-") {
		t.Fatalf("non-digits changed text")
	}
	if rejects != 2 {
		t.Fatalf("rejects %d", rejects)
	}
}

func TestFieldCursorSplice(t *testing.T) {
	f := numberField{hex: true}
	f.insert("AACC")
	f.cursor = 2
	f.insert("BB")
	if f.text != "AABBCC" {
		t.Fatalf("text %q", f.text)
	}
	if f.cursor != 4 {
		t.Fatalf("cursor %d", f.cursor)
	}
	if !f.backspace() || f.text != "AABCC" || f.cursor != 3 {
		t.Fatalf("backspace: %q cursor %d", f.text, f.cursor)
	}
	f.cursor = 0
	if f.backspace() {
		t.Fatalf("backspace at origin changed text")
	}
}

func TestChannelValue(t *testing.T) {
	f := numberField{}
	f.setText("128")
	if v, ok := f.channelValue(); !ok || v != 128 {
		t.Fatalf("v=%d ok=%v", v, ok)
	}
	f.setText("")
	if _, ok := f.channelValue(); ok {
		t.Fatalf("empty parsed")
	}
}
