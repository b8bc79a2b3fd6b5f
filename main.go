package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gohue/pick"

	"github.com/hajimehoshi/ebiten/v2"
	clipboard "golang.design/x/clipboard"
)

func main() {
	initialHex := flag.String("color", "", "initial color as RRGGBB hex")
	noOpacity := flag.Bool("noOpacity", false, "hide the opacity slider")
	debug := flag.Bool("debug", false, "verbose/debug logging")
	flag.Parse()

	loadSettings()
	setupLogging(*debug || gs.DebugLogging)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
	}

	initFont()

	var initial *pick.Color
	if *initialHex != "" {
		c, ok := pick.ParseHex(strings.TrimPrefix(*initialHex, "#"))
		if !ok {
			log.Fatalf("bad -color value %q; want RRGGBB", *initialHex)
		}
		initial = &c
	}

	sampler := &frameSampler{}
	caps := pick.Capabilities{
		Beep:       rejectBeep,
		Sampler:    sampler,
		Background: pick.NewColor(40, 40, 40, 255),
	}
	picker, handler := pick.New(initial, gs.EnableOpacity && !*noOpacity, caps, gs.RecentColors)
	handler.Subscribe(func(ev pick.Event) {
		switch ev.Type {
		case pick.EventColorChanged:
			logDebug("color %s alpha=%d", pick.FormatHex(ev.Color), ev.Color.A)
		case pick.EventInputRejected:
			logDebug("input rejected")
		case pick.EventPipetteStarted:
			logDebug("pipette started")
		case pick.EventPipetteFinished:
			logDebug("pipette finished with %s", pick.FormatHex(ev.Color))
		}
	})

	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowTitle("gohue")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &Game{picker: picker, handler: handler, sampler: sampler}
	if err := ebiten.RunGame(g); err != nil {
		logError("run: %v", err)
		os.Exit(1)
	}

	gs.RecentColors = picker.RecentColorsString()
	if ww, wh := ebiten.WindowSize(); ww > 0 && wh > 0 {
		gs.WindowWidth, gs.WindowHeight = ww, wh
	}
	saveSettings()

	if g.chosen == nil {
		os.Exit(1)
	}
	fmt.Printf("#%s alpha=%d\n", pick.FormatHex(*g.chosen), g.chosen.A)
}
