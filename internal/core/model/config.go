package model

import (
	"fmt"
	"time"
)

// Defaults for the classic Pomodoro cadence.
const (
	DefaultWorkDuration       = 25 * time.Minute
	DefaultShortBreakDuration = 5 * time.Minute
	DefaultLongBreakDuration  = 15 * time.Minute
	DefaultSessionsBeforeLong = 4
)

// Config contains the timer cadence. It is fixed at engine start.
type Config struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration

	// SessionsBeforeLongBreak is the modulo threshold selecting a long
	// break after a completed work session.
	SessionsBeforeLongBreak int
}

// DefaultConfig returns the classic 25/5/15 cadence with a long break
// every fourth work session.
func DefaultConfig() Config {
	return Config{
		WorkDuration:            DefaultWorkDuration,
		ShortBreakDuration:      DefaultShortBreakDuration,
		LongBreakDuration:       DefaultLongBreakDuration,
		SessionsBeforeLongBreak: DefaultSessionsBeforeLong,
	}
}

// Validate rejects non-positive durations and thresholds.
func (config Config) Validate() error {
	if config.WorkDuration <= 0 {
		return fmt.Errorf("invalid configuration: work duration %v must be positive", config.WorkDuration)
	}
	if config.ShortBreakDuration <= 0 {
		return fmt.Errorf("invalid configuration: short break duration %v must be positive", config.ShortBreakDuration)
	}
	if config.LongBreakDuration <= 0 {
		return fmt.Errorf("invalid configuration: long break duration %v must be positive", config.LongBreakDuration)
	}
	if config.SessionsBeforeLongBreak < 1 {
		return fmt.Errorf("invalid configuration: sessions before long break %d must be at least 1", config.SessionsBeforeLongBreak)
	}
	return nil
}
