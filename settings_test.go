package main

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempSettings(t *testing.T) {
	t.Helper()
	old := settingsPath
	settingsPath = filepath.Join(t.TempDir(), "gohue-settings.json")
	t.Cleanup(func() {
		settingsPath = old
		gs = gsdef
	})
}

func TestSettingsRoundTrip(t *testing.T) {
	withTempSettings(t)

	gs = gsdef
	gs.RecentColors = "255-0-0-255,,,1-2-3-128"
	gs.WindowWidth = 400
	saveSettings()

	gs = settings{}
	if !loadSettings() {
		t.Fatalf("loadSettings failed")
	}
	if gs.RecentColors != "255-0-0-255,,,1-2-3-128" {
		t.Fatalf("recent %q", gs.RecentColors)
	}
	if gs.WindowWidth != 400 {
		t.Fatalf("width %d", gs.WindowWidth)
	}
}

func TestSettingsMissingFileUsesDefaults(t *testing.T) {
	withTempSettings(t)

	if loadSettings() {
		t.Fatalf("loaded settings from a missing file")
	}
	if gs != gsdef {
		t.Fatalf("defaults not applied: %+v", gs)
	}
}

func TestSettingsVersionMismatchUsesDefaults(t *testing.T) {
	withTempSettings(t)

	if err := os.WriteFile(settingsPath, []byte(`{"Version":999,"WindowWidth":1}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if loadSettings() {
		t.Fatalf("loaded settings with a mismatched version")
	}
	if gs != gsdef {
		t.Fatalf("defaults not applied: %+v", gs)
	}
}

func TestSettingsMalformedJSONUsesDefaults(t *testing.T) {
	withTempSettings(t)

	if err := os.WriteFile(settingsPath, []byte("{nope"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if loadSettings() {
		t.Fatalf("loaded malformed settings")
	}
	if gs != gsdef {
		t.Fatalf("defaults not applied: %+v", gs)
	}
}

func TestSettingsClampsTinyWindow(t *testing.T) {
	withTempSettings(t)

	if err := os.WriteFile(settingsPath, []byte(`{"Version":1,"WindowWidth":10,"WindowHeight":10,"FontSize":13,"EnableOpacity":true}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !loadSettings() {
		t.Fatalf("loadSettings failed")
	}
	if gs.WindowWidth != gsdef.WindowWidth || gs.WindowHeight != gsdef.WindowHeight {
		t.Fatalf("window not clamped: %dx%d", gs.WindowWidth, gs.WindowHeight)
	}
}
