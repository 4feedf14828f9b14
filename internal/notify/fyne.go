package notify

import "fyne.io/fyne/v2"

// FyneNotifier delivers notifications through a running fyne app.
type FyneNotifier struct {
	app fyne.App
}

// NewFyne wraps a fyne application as a Notifier.
func NewFyne(app fyne.App) *FyneNotifier {
	return &FyneNotifier{app: app}
}

func (notifier *FyneNotifier) Notify(title, message string) error {
	if notifier.app == nil {
		return ErrUnavailable
	}
	notifier.app.SendNotification(fyne.NewNotification(title, message))
	return nil
}
