package engine

import (
	"time"

	"pomodoro/internal/core/model"
)

// Session is one timer run of a given phase.
type Session struct {
	Phase     Phase
	Duration  int
	Remaining int
}

// Engine is the Pomodoro countdown state machine. It holds no
// synchronization primitives and assumes a single writer; callers on
// concurrent event loops must serialize access (see Driver).
type Engine struct {
	config        model.Config
	state         RunState
	session       Session
	completedWork int
}

// New creates an engine in the idle state. The configuration is
// validated on Start.
func New(config model.Config) *Engine {
	return &Engine{
		config: config,
		state:  StateIdle,
	}
}

// Start validates the configuration, resets all counters and begins
// the first work session. Calling Start on a running engine resets it.
func (engine *Engine) Start() error {
	if err := engine.config.Validate(); err != nil {
		return err
	}
	engine.completedWork = 0
	engine.session = engine.newSession(PhaseWork)
	engine.state = StateRunning
	return nil
}

// Tick advances the countdown by one second. It never blocks.
//
// When the session reaches zero the completed session is replaced per
// the cadence rule and a transition event is returned carrying the old
// phase, the new phase and the updated work counter. Otherwise a tick
// event with the decremented remaining time is returned. Outside the
// running state Tick is a no-op.
func (engine *Engine) Tick() Event {
	if engine.state != StateRunning {
		return Event{Type: EventNone, RunState: engine.state, At: time.Now()}
	}

	engine.session.Remaining--
	if engine.session.Remaining > 0 {
		return Event{
			Type:          EventTick,
			Phase:         engine.session.Phase,
			RunState:      engine.state,
			Remaining:     engine.session.Remaining,
			CompletedWork: engine.completedWork,
			At:            time.Now(),
		}
	}

	completed := engine.session.Phase
	engine.session = engine.newSession(engine.nextPhase(completed))

	return Event{
		Type:          EventTransition,
		PrevPhase:     completed,
		Phase:         engine.session.Phase,
		RunState:      engine.state,
		Remaining:     engine.session.Remaining,
		CompletedWork: engine.completedWork,
		At:            time.Now(),
	}
}

// Pause freezes the countdown. No-op unless running.
func (engine *Engine) Pause() {
	if engine.state != StateRunning {
		return
	}
	engine.state = StatePaused
}

// Resume unfreezes the countdown. No-op unless paused.
func (engine *Engine) Resume() {
	if engine.state != StatePaused {
		return
	}
	engine.state = StateRunning
}

// Stop terminates the run. Stopped is terminal; the current session is
// discarded and no further operation has effect.
func (engine *Engine) Stop() {
	engine.state = StateStopped
	engine.session = Session{}
}

// State returns the current run state.
func (engine *Engine) State() RunState {
	return engine.state
}

// CompletedWork returns the number of completed work sessions.
func (engine *Engine) CompletedWork() int {
	return engine.completedWork
}

// Snapshot returns the render payload for the current session.
func (engine *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:         engine.session.Phase,
		RunState:      engine.state,
		Remaining:     engine.session.Remaining,
		Duration:      engine.session.Duration,
		CompletedWork: engine.completedWork,
	}
}

// nextPhase applies the cadence rule and updates the work counter.
func (engine *Engine) nextPhase(completed Phase) Phase {
	if completed != PhaseWork {
		return PhaseWork
	}
	engine.completedWork++
	if engine.completedWork%engine.config.SessionsBeforeLongBreak == 0 {
		return PhaseLongBreak
	}
	return PhaseShortBreak
}

func (engine *Engine) newSession(phase Phase) Session {
	var duration time.Duration
	switch phase {
	case PhaseWork:
		duration = engine.config.WorkDuration
	case PhaseShortBreak:
		duration = engine.config.ShortBreakDuration
	case PhaseLongBreak:
		duration = engine.config.LongBreakDuration
	}
	seconds := int(duration / time.Second)
	return Session{Phase: phase, Duration: seconds, Remaining: seconds}
}
