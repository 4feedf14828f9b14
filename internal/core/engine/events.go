package engine

import "time"

// Phase identifies the purpose of the current countdown.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Label returns a human readable phase name.
func (phase Phase) Label() string {
	switch phase {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return string(phase)
	}
}

// RunState identifies whether the engine is counting down.
type RunState string

const (
	StateIdle    RunState = "idle"
	StateRunning RunState = "running"
	StatePaused  RunState = "paused"
	StateStopped RunState = "stopped"
)

// EventType defines the type of engine event.
type EventType string

const (
	// EventNone is returned by Tick when the engine is not running.
	EventNone EventType = "none"
	// EventTick carries the decremented remaining time.
	EventTick EventType = "tick"
	// EventTransition marks a session reaching zero and being replaced.
	EventTransition EventType = "transition"
	// EventStarted marks the first work session of a run.
	EventStarted EventType = "started"
	// EventStateChange marks a pause, resume or stop.
	EventStateChange EventType = "state_change"
)

// Event represents an engine update for observers.
type Event struct {
	Type          EventType
	Phase         Phase
	PrevPhase     Phase
	RunState      RunState
	Remaining     int
	CompletedWork int
	At            time.Time
}

// Snapshot is the per-tick render payload.
type Snapshot struct {
	Phase         Phase
	RunState      RunState
	Remaining     int
	Duration      int
	CompletedWork int
}
