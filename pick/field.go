package pick

import (
	"strconv"
	"unicode"
)

// numberField is a fixed-length numeric entry: three decimal digits for an
// RGB channel or six hex digits for the hex form. Input is validated per
// character as it is typed; rejected characters leave the text untouched and
// signal the caller so the host can beep.
type numberField struct {
	hex    bool
	text   string
	cursor int

	// onReject is invoked once per rejected insertion.
	onReject func()
}

func (f *numberField) maxLen() int {
	if f.hex {
		return 6
	}
	return 3
}

func (f *numberField) reject() {
	if f.onReject != nil {
		f.onReject()
	}
}

// insert filters s character by character and splices the surviving runes at
// the cursor. Hex fields accept [0-9a-fA-F] and store uppercase; decimal
// fields accept digits only and reject any result above 255. Exceeding the
// fixed length rejects the whole insertion. Reports whether the text changed.
func (f *numberField) insert(s string) bool {
	kept := make([]rune, 0, len(s))
	for _, r := range s {
		if f.hex {
			if isHexDigit(r) {
				kept = append(kept, unicode.ToUpper(r))
			} else {
				f.reject()
			}
		} else {
			if unicode.IsDigit(r) {
				kept = append(kept, r)
			} else {
				f.reject()
			}
		}
	}
	if len(kept) == 0 {
		return false
	}
	if len(f.text)+len(kept) > f.maxLen() {
		f.reject()
		return false
	}
	runes := []rune(f.text)
	out := string(runes[:f.cursor]) + string(kept) + string(runes[f.cursor:])
	if !f.hex {
		// Out of range input is rejected outright, never clamped.
		if v, err := strconv.Atoi(out); err == nil && v > 255 {
			f.reject()
			return false
		}
	}
	f.text = out
	f.cursor += len(kept)
	return true
}

// backspace removes the rune before the cursor. Reports whether the text
// changed.
func (f *numberField) backspace() bool {
	if f.cursor == 0 || len(f.text) == 0 {
		return false
	}
	runes := []rune(f.text)
	f.text = string(runes[:f.cursor-1]) + string(runes[f.cursor:])
	f.cursor--
	return true
}

// setText replaces the content programmatically, bypassing validation. Used
// when the authoritative color repaints the non-source fields.
func (f *numberField) setText(s string) {
	f.text = s
	if f.cursor > len([]rune(s)) {
		f.cursor = len([]rune(s))
	}
}

func (f *numberField) moveCursor(delta int) {
	f.cursor += delta
	if f.cursor < 0 {
		f.cursor = 0
	}
	if n := len([]rune(f.text)); f.cursor > n {
		f.cursor = n
	}
}

// channelValue parses a decimal field. Reports false when empty or malformed.
func (f *numberField) channelValue() (uint8, bool) {
	v, err := strconv.Atoi(f.text)
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	return uint8(v), true
}
