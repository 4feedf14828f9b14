package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	onCancel   func()
	workDur    *widget.Entry
	shortDur   *widget.Entry
	longDur    *widget.Entry
	threshold  *widget.Entry
	soundCheck *widget.Check
	fullscreen *widget.Check
	autostart  *widget.Check
	errorLabel *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	workDur := widget.NewEntry()
	shortDur := widget.NewEntry()
	longDur := widget.NewEntry()
	threshold := widget.NewEntry()

	workDur.SetText(fmt.Sprintf("%d", settings.WorkMinutes))
	shortDur.SetText(fmt.Sprintf("%d", settings.ShortBreakMinutes))
	longDur.SetText(fmt.Sprintf("%d", settings.LongBreakMinutes))
	threshold.SetText(fmt.Sprintf("%d", settings.SessionsBeforeLongBreak))

	soundCheck := widget.NewCheck("Play sound at phase transitions", nil)
	soundCheck.SetChecked(settings.SoundEnabled)

	fullscreen := widget.NewCheck("Fullscreen timer while running", nil)
	fullscreen.SetChecked(settings.Fullscreen)

	autostart := widget.NewCheck("Launch at login", nil)
	autostart.SetChecked(settings.Autostart)

	errorLabel := widget.NewLabel("")
	errorLabel.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work session"), workDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), shortDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Sessions before long break"), threshold),
		soundCheck,
		fullscreen,
		autostart,
		errorLabel,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(400, 380))

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		workDur:    workDur,
		shortDur:   shortDur,
		longDur:    longDur,
		threshold:  threshold,
		soundCheck: soundCheck,
		fullscreen: fullscreen,
		autostart:  autostart,
		errorLabel: errorLabel,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workDur.SetText(fmt.Sprintf("%d", settings.WorkMinutes))
	prefs.shortDur.SetText(fmt.Sprintf("%d", settings.ShortBreakMinutes))
	prefs.longDur.SetText(fmt.Sprintf("%d", settings.LongBreakMinutes))
	prefs.threshold.SetText(fmt.Sprintf("%d", settings.SessionsBeforeLongBreak))
	prefs.soundCheck.SetChecked(settings.SoundEnabled)
	prefs.fullscreen.SetChecked(settings.Fullscreen)
	prefs.autostart.SetChecked(settings.Autostart)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workDur.Text); ok {
		settings.WorkMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.shortDur.Text); ok {
		settings.ShortBreakMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.longDur.Text); ok {
		settings.LongBreakMinutes = minutes
	}
	if count, ok := parsePositiveInt(prefs.threshold.Text); ok {
		settings.SessionsBeforeLongBreak = count
	}

	settings.SoundEnabled = prefs.soundCheck.Checked
	settings.Fullscreen = prefs.fullscreen.Checked
	settings.Autostart = prefs.autostart.Checked

	if err := settings.Validate(); err != nil {
		prefs.errorLabel.SetText(err.Error())
		prefs.errorLabel.Show()
		return
	}
	prefs.errorLabel.Hide()

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
