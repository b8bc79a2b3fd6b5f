package main

import (
	"encoding/json"
	"os"
)

const SETTINGS_VERSION = 1

var settingsPath = "gohue-settings.json"

var gs settings = gsdef

// settingsLoaded reports whether settings were successfully loaded from disk.
var settingsLoaded bool

var gsdef settings = settings{
	Version: SETTINGS_VERSION,

	WindowWidth:   360,
	WindowHeight:  560,
	EnableOpacity: true,
	FontSize:      13,
}

type settings struct {
	Version int

	WindowWidth   int
	WindowHeight  int
	EnableOpacity bool
	FontSize      float64

	// RecentColors is the picker's recent list in its serialized form.
	RecentColors string

	DebugLogging bool
}

func loadSettings() bool {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		gs = gsdef
		settingsLoaded = false
		return false
	}

	tmp := gsdef
	if err := json.Unmarshal(data, &tmp); err != nil {
		gs = gsdef
		settingsLoaded = false
		return false
	}
	if tmp.Version != SETTINGS_VERSION {
		gs = gsdef
		settingsLoaded = false
		return false
	}
	gs = tmp

	if gs.WindowWidth < 320 {
		gs.WindowWidth = gsdef.WindowWidth
	}
	if gs.WindowHeight < 400 {
		gs.WindowHeight = gsdef.WindowHeight
	}
	if gs.FontSize <= 0 {
		gs.FontSize = gsdef.FontSize
	}

	settingsLoaded = true
	return true
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.WriteFile(settingsPath+".tmp", data, 0644); err != nil {
		logError("save settings: %v", err)
		return
	}
	os.Rename(settingsPath+".tmp", settingsPath)
}
