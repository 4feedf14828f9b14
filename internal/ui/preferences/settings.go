package preferences

import (
	"time"

	"pomodoro/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes             int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	SessionsBeforeLongBreak int

	SoundEnabled bool
	Fullscreen   bool
	Autostart    bool
}

// DefaultSettings returns the classic Pomodoro defaults.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:             25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
		SoundEnabled:            true,
		Fullscreen:              false,
		Autostart:               false,
	}
}

// EngineConfig converts settings to the engine cadence configuration.
func (settings Settings) EngineConfig() model.Config {
	return model.Config{
		WorkDuration:            time.Duration(settings.WorkMinutes) * time.Minute,
		ShortBreakDuration:      time.Duration(settings.ShortBreakMinutes) * time.Minute,
		LongBreakDuration:       time.Duration(settings.LongBreakMinutes) * time.Minute,
		SessionsBeforeLongBreak: settings.SessionsBeforeLongBreak,
	}
}

// Validate checks the settings through the engine configuration rules.
func (settings Settings) Validate() error {
	return settings.EngineConfig().Validate()
}
