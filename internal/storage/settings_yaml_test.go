package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"pomodoro/internal/ui/preferences"
)

const testAppName = "PomodoroTest"

func setupConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	switch runtime.GOOS {
	case "windows":
		t.Setenv("AppData", dir)
	case "darwin":
		t.Setenv("HOME", dir)
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	setupConfigDir(t)

	settings, err := LoadSettings(testAppName)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	setupConfigDir(t)

	saved := preferences.Settings{
		WorkMinutes:             50,
		ShortBreakMinutes:       10,
		LongBreakMinutes:        30,
		SessionsBeforeLongBreak: 2,
		SoundEnabled:            false,
		Fullscreen:              true,
		Autostart:               true,
	}
	if err := SaveSettings(testAppName, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadSettings(testAppName)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != saved {
		t.Errorf("loaded = %+v, want %+v", loaded, saved)
	}
}

func TestLoadIgnoresInvalidDurations(t *testing.T) {
	setupConfigDir(t)

	configDir, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("config dir: %v", err)
	}
	path := filepath.Join(configDir, testAppName, "settings.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	contents := "work_minutes: -5\nshort_break_minutes: 0\nlong_break_minutes: 20\nsessions_before_long_break: 3\nsound_enabled: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, err := LoadSettings(testAppName)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defaults := preferences.DefaultSettings()
	if settings.WorkMinutes != defaults.WorkMinutes {
		t.Errorf("work minutes = %d, want default %d", settings.WorkMinutes, defaults.WorkMinutes)
	}
	if settings.ShortBreakMinutes != defaults.ShortBreakMinutes {
		t.Errorf("short break = %d, want default %d", settings.ShortBreakMinutes, defaults.ShortBreakMinutes)
	}
	if settings.LongBreakMinutes != 20 {
		t.Errorf("long break = %d, want 20", settings.LongBreakMinutes)
	}
	if settings.SessionsBeforeLongBreak != 3 {
		t.Errorf("threshold = %d, want 3", settings.SessionsBeforeLongBreak)
	}
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	setupConfigDir(t)

	configDir, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("config dir: %v", err)
	}
	path := filepath.Join(configDir, testAppName, "settings.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, err := LoadSettings(testAppName)
	if err == nil {
		t.Fatal("load accepted malformed yaml")
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("settings = %+v on error, want defaults", settings)
	}
}
