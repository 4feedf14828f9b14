//go:build linux

package notify

import (
	"fmt"
	"os/exec"
)

type linuxNotifier struct {
	notifySendPath string
}

type unavailableNotifier struct{}

func newNotifier() Notifier {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return unavailableNotifier{}
	}
	return &linuxNotifier{notifySendPath: path}
}

func (notifier *linuxNotifier) Notify(title, message string) error {
	if err := exec.Command(notifier.notifySendPath, title, message).Run(); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}

func (unavailableNotifier) Notify(title, message string) error {
	return ErrUnavailable
}
