// Command pomodoro-term is the terminal form of the Pomodoro timer.
// It drives the same engine as the desktop app and renders a live
// countdown with a progress bar.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/engine"
	"pomodoro/internal/core/model"
	"pomodoro/internal/notify"
	"pomodoro/internal/sound"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e74c3c")).
			Bold(true)

	phaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))
)

func main() {
	work := flag.Int("work", 25, "work session length in minutes")
	short := flag.Int("short", 5, "short break length in minutes")
	long := flag.Int("long", 15, "long break length in minutes")
	sessions := flag.Int("sessions", 4, "work sessions before a long break")
	quiet := flag.Bool("quiet", false, "disable desktop notifications and sound")
	flag.Parse()

	config := model.Config{
		WorkDuration:            time.Duration(*work) * time.Minute,
		ShortBreakDuration:      time.Duration(*short) * time.Minute,
		LongBreakDuration:       time.Duration(*long) * time.Minute,
		SessionsBeforeLongBreak: *sessions,
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var dispatcher *notify.Dispatcher
	var player *sound.Player
	if !*quiet {
		dispatcher = notify.NewDispatcher(notify.New())
		var err error
		player, err = sound.NewPlayer()
		if err != nil {
			log.Printf("warning: sound unavailable: %v", err)
		}
	}

	program := tea.NewProgram(newTimerModel(config, dispatcher, player))
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// engineEventMsg wraps an engine event for the update loop.
type engineEventMsg engine.Event

// eventsClosedMsg signals the driver shut down.
type eventsClosedMsg struct{}

type timerModel struct {
	config     model.Config
	dispatcher *notify.Dispatcher
	player     *sound.Player
	driver     *engine.Driver
	events     <-chan engine.Event
	snapshot   engine.Snapshot
	progress   progress.Model
	paused     bool
	quitting   bool
}

func newTimerModel(config model.Config, dispatcher *notify.Dispatcher, player *sound.Player) timerModel {
	seconds := int(config.WorkDuration / time.Second)
	return timerModel{
		config:     config,
		dispatcher: dispatcher,
		player:     player,
		progress:   progress.New(progress.WithDefaultGradient()),
		snapshot: engine.Snapshot{
			Phase:     engine.PhaseWork,
			RunState:  engine.StateIdle,
			Remaining: seconds,
			Duration:  seconds,
		},
	}
}

func (m timerModel) Init() tea.Cmd {
	return nil
}

// waitForEvent reads the next engine event as a tea command.
func waitForEvent(events <-chan engine.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return engineEventMsg(event)
	}
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case engineEventMsg:
		return m.handleEvent(engine.Event(msg))
	case eventsClosedMsg:
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.progress.Width = width
		}
		return m, nil
	}
	return m, nil
}

func (m timerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		if m.driver != nil {
			m.driver.Stop()
			return m, nil // wait for the channel to close
		}
		return m, tea.Quit
	case "s":
		if m.driver == nil {
			return m.startTimer()
		}
	case "p", " ":
		if m.driver == nil {
			return m, nil
		}
		if m.paused {
			m.driver.Resume()
		} else {
			m.driver.Pause()
		}
	case "r":
		if m.driver != nil {
			m.driver.Stop()
			m.driver = nil
			m.events = nil
		}
		reset := newTimerModel(m.config, m.dispatcher, m.player)
		reset.progress.Width = m.progress.Width
		return reset, nil
	}
	return m, nil
}

func (m timerModel) startTimer() (tea.Model, tea.Cmd) {
	m.driver = engine.NewDriver(m.config, engine.DriverConfig{TickInterval: time.Second})
	m.events = m.driver.Subscribe(8)
	if err := m.driver.Start(); err != nil {
		// Config was validated in main; this is unreachable in practice.
		m.driver = nil
		m.events = nil
		return m, nil
	}
	m.paused = false
	m.snapshot = m.driver.Snapshot()
	return m, waitForEvent(m.events)
}

func (m timerModel) handleEvent(event engine.Event) (tea.Model, tea.Cmd) {
	if m.driver == nil {
		return m, nil
	}

	switch event.Type {
	case engine.EventStarted, engine.EventTransition:
		if m.dispatcher != nil {
			m.dispatcher.DispatchEvent(event)
		}
		if event.Type == engine.EventTransition {
			if event.PrevPhase == engine.PhaseWork {
				m.player.Play(sound.WorkComplete)
			} else {
				m.player.Play(sound.BreakComplete)
			}
		}
	case engine.EventStateChange:
		m.paused = event.RunState == engine.StatePaused
	}

	m.snapshot = m.driver.Snapshot()
	return m, waitForEvent(m.events)
}

func (m timerModel) View() string {
	if m.quitting {
		return countStyle.Render(fmt.Sprintf("Sessions completed: %d 🍅", m.snapshot.CompletedWork)) + "\n"
	}

	header := titleStyle.Render("Pomodoro Timer")
	phase := phaseStyle.Render(m.snapshot.Phase.Label() + " Session")
	clock := timeStyle.Render(formatSeconds(m.snapshot.Remaining))
	if m.paused {
		clock += pausedStyle.Render("  (paused)")
	}

	percent := 0.0
	if m.snapshot.Duration > 0 {
		percent = float64(m.snapshot.Duration-m.snapshot.Remaining) / float64(m.snapshot.Duration)
	}

	count := countStyle.Render(fmt.Sprintf("Sessions completed: %d 🍅", m.snapshot.CompletedWork))

	help := helpStyle.Render("s start · p pause/resume · r reset · q quit")
	if m.driver != nil {
		help = helpStyle.Render("p pause/resume · r reset · q quit")
	}

	return fmt.Sprintf("\n  %s\n\n  %s\n  %s\n\n  %s\n\n  %s\n\n  %s\n",
		header, phase, clock, m.progress.ViewAs(percent), count, help)
}

func formatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
