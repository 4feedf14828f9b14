// Package notify delivers desktop notifications at phase transitions.
// Notification is advisory: dispatch is fire-and-forget and failures
// are logged, never propagated into the timer.
package notify

import (
	"errors"
	"fmt"
	"log"

	"pomodoro/internal/core/engine"
)

// Title used for every notification.
const Title = "Pomodoro Timer"

// ErrUnavailable indicates no notification mechanism exists on this
// system.
var ErrUnavailable = errors.New("notifications unavailable")

// Notifier sends a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// New returns the platform-specific notifier.
func New() Notifier {
	return newNotifier()
}

// Dispatcher sends notifications without blocking the caller.
type Dispatcher struct {
	notifier Notifier
}

// NewDispatcher wraps a notifier for asynchronous delivery.
func NewDispatcher(notifier Notifier) *Dispatcher {
	return &Dispatcher{notifier: notifier}
}

// Dispatch delivers the notification on a separate goroutine. Errors
// are logged as warnings and otherwise swallowed.
func (dispatcher *Dispatcher) Dispatch(title, message string) {
	if dispatcher == nil || dispatcher.notifier == nil {
		return
	}
	go func() {
		if err := dispatcher.notifier.Notify(title, message); err != nil {
			log.Printf("warning: notification failed: %v", err)
		}
	}()
}

// DispatchEvent builds and delivers the notification for an engine
// event, if the event warrants one.
func (dispatcher *Dispatcher) DispatchEvent(event engine.Event) {
	title, message, ok := Message(event)
	if !ok {
		return
	}
	dispatcher.Dispatch(title, message)
}

// Message maps an engine event to its notification payload. The third
// return is false for events that carry no notification.
func Message(event engine.Event) (title, message string, ok bool) {
	switch event.Type {
	case engine.EventStarted:
		return Title, "Work session started. Stay focused!", true
	case engine.EventTransition:
		switch event.Phase {
		case engine.PhaseShortBreak:
			return Title, fmt.Sprintf("Work session complete! Sessions completed: %d. Time for a short break.", event.CompletedWork), true
		case engine.PhaseLongBreak:
			return Title, fmt.Sprintf("Work session complete! Sessions completed: %d. Time for a long break.", event.CompletedWork), true
		case engine.PhaseWork:
			return Title, "Break time over! Time to get back to work.", true
		}
	}
	return "", "", false
}
