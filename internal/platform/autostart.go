package platform

import (
	"fmt"
	"os"
)

// Autostart toggles launching the timer at login.
type Autostart interface {
	Enable(appName, execPath string) error
	Disable(appName string) error
}

// NewAutostart returns the platform-specific implementation.
func NewAutostart() Autostart {
	return autostartService{}
}

type autostartService struct{}

// configDir returns the OS-standard configuration directory with a
// home-relative fallback.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err == nil && dir != "" {
		return dir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}
	return fallbackConfigDir(homeDir), nil
}
