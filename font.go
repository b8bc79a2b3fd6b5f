package main

import (
	"bytes"
	"log"

	"gohue/pick"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var mainFont text.Face

func initFont() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
	pick.SetFontSource(regular)
	mainFont = &text.GoTextFace{
		Source: regular,
		Size:   gs.FontSize,
	}
}
