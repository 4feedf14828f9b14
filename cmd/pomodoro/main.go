package main

import (
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodoro/internal/core/engine"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/sound"
	"pomodoro/internal/storage"
	"pomodoro/internal/tasks"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timerview"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

const appName = "Pomodoro"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomodoro.app")
	fyneApp.SetIcon(resources.MustLogo("pomodoro.png"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("warning: load settings: %v", err)
	}

	player, err := sound.NewPlayer()
	if err != nil {
		log.Printf("warning: sound unavailable: %v", err)
	}
	player.SetEnabled(settings.SoundEnabled)

	dispatcher := notify.NewDispatcher(notify.NewFyne(fyneApp))
	autostart := platform.NewAutostart()
	taskList := tasks.NewList()

	var (
		driver       *engine.Driver
		trayManager  *tray.Manager
		timerWindow  *timerview.Window
		previewPhase = engine.PhaseWork
		isPaused     bool
	)

	// idleSnapshot previews the selected phase's configured duration
	// before the timer runs.
	idleSnapshot := func() engine.Snapshot {
		config := settings.EngineConfig()
		var duration time.Duration
		switch previewPhase {
		case engine.PhaseShortBreak:
			duration = config.ShortBreakDuration
		case engine.PhaseLongBreak:
			duration = config.LongBreakDuration
		default:
			duration = config.WorkDuration
		}
		seconds := int(duration / time.Second)
		completed := 0
		if driver != nil {
			completed = driver.Snapshot().CompletedWork
		}
		return engine.Snapshot{
			Phase:         previewPhase,
			RunState:      engine.StateIdle,
			Remaining:     seconds,
			Duration:      seconds,
			CompletedWork: completed,
		}
	}

	showIdle := func() {
		timerWindow.SetRunning(false)
		timerWindow.SetSnapshot(idleSnapshot())
		trayManager.SetRunning(false)
		trayManager.SetStatus("ready")
		isPaused = false
	}

	stopTimer := func() {
		if driver != nil {
			driver.Stop()
			driver = nil
		}
	}

	startTimer := func() {
		stopTimer()
		driver = engine.NewDriver(settings.EngineConfig(), engine.DriverConfig{TickInterval: time.Second})
		events := driver.Subscribe(8)
		current := driver

		go func() {
			for event := range events {
				handleEvent(event, current, timerWindow, trayManager, dispatcher, player, &isPaused)
			}
		}()

		if err := current.Start(); err != nil {
			log.Printf("start timer: %v", err)
			stopTimer()
			return
		}
		previewPhase = engine.PhaseWork
		trayManager.SetRunning(true)
		timerWindow.SetRunning(true)
	}

	togglePause := func() {
		if driver == nil {
			return
		}
		if isPaused {
			driver.Resume()
		} else {
			driver.Pause()
		}
	}

	timerWindow = timerview.New(fyneApp, taskList, timerview.Callbacks{
		OnStart:       func() { startTimer() },
		OnTogglePause: func() { togglePause() },
		OnReset: func() {
			stopTimer()
			showIdle()
		},
		OnSelectPhase: func(phase engine.Phase) {
			previewPhase = phase
			timerWindow.SetSnapshot(idleSnapshot())
		},
	})
	timerWindow.SetFullscreen(settings.Fullscreen)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("warning: save settings: %v", err)
		}
		player.SetEnabled(settings.SoundEnabled)
		timerWindow.SetFullscreen(settings.Fullscreen)
		applyAutostart(autostart, settings.Autostart)
		if driver == nil {
			timerWindow.SetSnapshot(idleSnapshot())
		}
	})

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnShow:        func() { timerWindow.Show() },
		OnStart:       func() { startTimer() },
		OnTogglePause: func() { togglePause() },
		OnPreferences: func() { prefsWindow.Show() },
		OnQuit: func() {
			stopTimer()
			fyneApp.Quit()
		},
	})
	desktopApp.SetSystemTrayIcon(resources.MustLogo("pomodoro.png"))

	showIdle()
	timerWindow.Show()
	fyneApp.Run()
}

func handleEvent(event engine.Event, driver *engine.Driver, timerWindow *timerview.Window, trayManager *tray.Manager, dispatcher *notify.Dispatcher, player *sound.Player, isPaused *bool) {
	switch event.Type {
	case engine.EventStarted:
		dispatcher.DispatchEvent(event)
		timerWindow.SetSnapshot(driver.Snapshot())
		trayManager.SetStatus(statusLine(event))
	case engine.EventTick:
		timerWindow.SetSnapshot(driver.Snapshot())
		trayManager.SetStatus(statusLine(event))
	case engine.EventTransition:
		dispatcher.DispatchEvent(event)
		if event.PrevPhase == engine.PhaseWork {
			player.Play(sound.WorkComplete)
		} else {
			player.Play(sound.BreakComplete)
		}
		timerWindow.SetSnapshot(driver.Snapshot())
		trayManager.SetStatus(statusLine(event))
	case engine.EventStateChange:
		paused := event.RunState == engine.StatePaused
		*isPaused = paused
		timerWindow.SetPaused(paused)
		trayManager.SetPaused(paused)
	}
}

func statusLine(event engine.Event) string {
	return event.Phase.Label() + " " + timerview.FormatSeconds(event.Remaining)
}

func applyAutostart(autostart platform.Autostart, enabled bool) {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("warning: autostart: resolve executable: %v", err)
		return
	}
	if enabled {
		err = autostart.Enable(appName, execPath)
	} else {
		err = autostart.Disable(appName)
	}
	if err != nil {
		log.Printf("warning: autostart: %v", err)
	}
}
