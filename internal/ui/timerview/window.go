package timerview

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/engine"
	"pomodoro/internal/tasks"
)

// Callbacks defines timer window action handlers.
type Callbacks struct {
	OnStart       func()
	OnTogglePause func()
	OnReset       func()
	OnSelectPhase func(engine.Phase)
}

// Window is the main timer view: large countdown, progress bar,
// session counter and the task pane below.
type Window struct {
	window       fyne.Window
	callbacks    Callbacks
	taskList     *tasks.List
	fullscreen   bool
	running      bool
	paused       bool
	timeLabel    *canvas.Text
	sessionLabel *widget.Label
	countLabel   *widget.Label
	progress     *widget.ProgressBar
	startButton  *widget.Button
	taskWidget   *widget.List
	selectedTask int
}

// New creates the timer window. Closing it hides to the tray instead
// of quitting, matching the tray-resident behavior.
func New(app fyne.App, taskList *tasks.List, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomodoro Timer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	view := &Window{
		window:       window,
		callbacks:    callbacks,
		taskList:     taskList,
		selectedTask: -1,
	}

	view.timeLabel = canvas.NewText("25:00", color.NRGBA{R: 231, G: 76, B: 60, A: 255})
	view.timeLabel.Alignment = fyne.TextAlignCenter
	view.timeLabel.TextStyle = fyne.TextStyle{Bold: true}
	view.timeLabel.TextSize = 64

	view.sessionLabel = widget.NewLabelWithStyle("Work Session", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.countLabel = widget.NewLabelWithStyle("Sessions completed: 0 🍅", fyne.TextAlignCenter, fyne.TextStyle{})

	view.progress = widget.NewProgressBar()
	view.progress.TextFormatter = func() string { return "" }

	view.startButton = widget.NewButton("Start", func() {
		view.handlePrimary()
	})
	resetButton := widget.NewButton("Reset", func() {
		if view.callbacks.OnReset != nil {
			view.callbacks.OnReset()
		}
	})

	sessionRow := container.NewGridWithColumns(3,
		widget.NewButton("Work", func() { view.selectPhase(engine.PhaseWork) }),
		widget.NewButton("Short Break", func() { view.selectPhase(engine.PhaseShortBreak) }),
		widget.NewButton("Long Break", func() { view.selectPhase(engine.PhaseLongBreak) }),
	)

	timerPane := container.NewVBox(
		widget.NewLabelWithStyle("Pomodoro Timer", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		view.sessionLabel,
		container.NewPadded(view.timeLabel),
		view.progress,
		view.countLabel,
		container.NewGridWithColumns(2, view.startButton, resetButton),
		sessionRow,
	)

	view.taskWidget = widget.NewList(
		func() int { return taskList.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, object fyne.CanvasObject) {
			items := taskList.Items()
			if id < len(items) {
				object.(*widget.Label).SetText(items[id])
			}
		},
	)
	view.taskWidget.OnSelected = func(id widget.ListItemID) {
		view.selectedTask = id
	}
	view.taskWidget.OnUnselected = func(widget.ListItemID) {
		view.selectedTask = -1
	}

	taskButtons := container.NewGridWithColumns(3,
		widget.NewButton("Add Task", view.addTask),
		widget.NewButton("Edit Task", view.editTask),
		widget.NewButton("Delete Task", view.deleteTask),
	)
	taskPane := container.NewBorder(
		widget.NewLabelWithStyle("Tasks", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		taskButtons, nil, nil,
		view.taskWidget,
	)

	window.SetContent(container.NewBorder(timerPane, nil, nil, nil, taskPane))
	window.Resize(fyne.NewSize(420, 560))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return view
}

// Show brings the timer window to the front.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Hide hides the timer window.
func (view *Window) Hide() {
	view.window.Hide()
}

// SetFullscreen controls whether the window goes fullscreen while the
// timer runs.
func (view *Window) SetFullscreen(enabled bool) {
	view.fullscreen = enabled
	if !enabled {
		view.window.SetFullScreen(false)
	}
}

// SetSnapshot renders the engine state. Safe to call from any
// goroutine.
func (view *Window) SetSnapshot(snapshot engine.Snapshot) {
	fyne.Do(func() {
		view.applySnapshot(snapshot)
	})
}

// SetRunning updates the primary button and the window mode.
func (view *Window) SetRunning(running bool) {
	fyne.Do(func() {
		view.running = running
		view.paused = false
		view.refreshPrimary()
		if view.fullscreen {
			view.window.SetFullScreen(running)
		}
	})
}

// SetPaused updates the primary button label.
func (view *Window) SetPaused(paused bool) {
	fyne.Do(func() {
		view.paused = paused
		view.refreshPrimary()
	})
}

func (view *Window) applySnapshot(snapshot engine.Snapshot) {
	view.timeLabel.Text = FormatSeconds(snapshot.Remaining)
	view.timeLabel.Refresh()
	view.sessionLabel.SetText(snapshot.Phase.Label() + " Session")
	view.countLabel.SetText(fmt.Sprintf("Sessions completed: %d 🍅", snapshot.CompletedWork))
	if snapshot.Duration > 0 {
		view.progress.SetValue(float64(snapshot.Duration-snapshot.Remaining) / float64(snapshot.Duration))
	} else {
		view.progress.SetValue(0)
	}
}

func (view *Window) refreshPrimary() {
	switch {
	case !view.running:
		view.startButton.SetText("Start")
	case view.paused:
		view.startButton.SetText("Resume")
	default:
		view.startButton.SetText("Pause")
	}
}

func (view *Window) handlePrimary() {
	if !view.running {
		if view.callbacks.OnStart != nil {
			view.callbacks.OnStart()
		}
		return
	}
	if view.callbacks.OnTogglePause != nil {
		view.callbacks.OnTogglePause()
	}
}

func (view *Window) selectPhase(phase engine.Phase) {
	if view.running {
		return
	}
	if view.callbacks.OnSelectPhase != nil {
		view.callbacks.OnSelectPhase(phase)
	}
}

func (view *Window) addTask() {
	dialog.NewEntryDialog("Add Task", "Enter task:", func(text string) {
		if err := view.taskList.Add(text); err != nil {
			return
		}
		view.taskWidget.Refresh()
	}, view.window).Show()
}

func (view *Window) editTask() {
	index := view.selectedTask
	items := view.taskList.Items()
	if index < 0 || index >= len(items) {
		return
	}

	entry := widget.NewEntry()
	entry.SetText(items[index])
	dialog.ShowCustomConfirm("Edit Task", "Save", "Cancel", entry, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := view.taskList.Edit(index, entry.Text); err != nil {
			return
		}
		view.taskWidget.Refresh()
	}, view.window)
}

func (view *Window) deleteTask() {
	index := view.selectedTask
	if err := view.taskList.Remove(index); err != nil {
		return
	}
	view.selectedTask = -1
	view.taskWidget.UnselectAll()
	view.taskWidget.Refresh()
}

// FormatSeconds renders a remaining-seconds count as MM:SS.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
