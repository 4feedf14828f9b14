package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomodoro/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes             int  `yaml:"work_minutes"`
	ShortBreakMinutes       int  `yaml:"short_break_minutes"`
	LongBreakMinutes        int  `yaml:"long_break_minutes"`
	SessionsBeforeLongBreak int  `yaml:"sessions_before_long_break"`
	SoundEnabled            bool `yaml:"sound_enabled"`
	Fullscreen              bool `yaml:"fullscreen"`
	Autostart               bool `yaml:"autostart"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:             settings.WorkMinutes,
		ShortBreakMinutes:       settings.ShortBreakMinutes,
		LongBreakMinutes:        settings.LongBreakMinutes,
		SessionsBeforeLongBreak: settings.SessionsBeforeLongBreak,
		SoundEnabled:            settings.SoundEnabled,
		Fullscreen:              settings.Fullscreen,
		Autostart:               settings.Autostart,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// applyYamlSettings copies valid values onto the defaults; out-of-range
// fields keep their default.
func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkMinutes = fileData.WorkMinutes
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if fileData.SessionsBeforeLongBreak > 0 {
		settings.SessionsBeforeLongBreak = fileData.SessionsBeforeLongBreak
	}

	settings.SoundEnabled = fileData.SoundEnabled
	settings.Fullscreen = fileData.Fullscreen
	settings.Autostart = fileData.Autostart
}
