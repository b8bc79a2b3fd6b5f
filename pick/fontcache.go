package pick

import (
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var faceSource *text.GoTextFaceSource
var faceCache = map[float64]*text.GoTextFace{}

// SetFontSource sets the face source used for field text and labels.
func SetFontSource(src *text.GoTextFaceSource) {
	faceSource = src
	faceCache = map[float64]*text.GoTextFace{}
}

// textFace returns a cached face, or nil before SetFontSource is called.
func textFace(size float32) *text.GoTextFace {
	if faceSource == nil {
		return nil
	}
	s := float64(size)
	if f, ok := faceCache[s]; ok {
		return f
	}
	f := &text.GoTextFace{Source: faceSource, Size: s}
	faceCache[s] = f
	return f
}
