package main

import (
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
)

// rejectBeep plays the input-rejection tone, best-effort and non-fatal.
func rejectBeep() {
	// Skip on headless Linux without DISPLAY; beeep would error.
	if runtime.GOOS == "linux" && (os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "") {
		return
	}
	go func() {
		_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
	}()
}
