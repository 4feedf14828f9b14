package preferences

import (
	"testing"
	"time"
)

func TestDefaultSettingsMatchClassicCadence(t *testing.T) {
	settings := DefaultSettings()
	if err := settings.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}

	config := settings.EngineConfig()
	if config.WorkDuration != 25*time.Minute {
		t.Errorf("work duration = %v, want 25m", config.WorkDuration)
	}
	if config.ShortBreakDuration != 5*time.Minute {
		t.Errorf("short break = %v, want 5m", config.ShortBreakDuration)
	}
	if config.LongBreakDuration != 15*time.Minute {
		t.Errorf("long break = %v, want 15m", config.LongBreakDuration)
	}
	if config.SessionsBeforeLongBreak != 4 {
		t.Errorf("threshold = %d, want 4", config.SessionsBeforeLongBreak)
	}
}

func TestValidateRejectsZeroWork(t *testing.T) {
	settings := DefaultSettings()
	settings.WorkMinutes = 0
	if err := settings.Validate(); err == nil {
		t.Error("validate accepted zero work minutes")
	}
}
