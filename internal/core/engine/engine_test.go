package engine

import (
	"testing"
	"time"

	"pomodoro/internal/core/model"
)

func testConfig() model.Config {
	return model.Config{
		WorkDuration:            25 * time.Minute,
		ShortBreakDuration:      5 * time.Minute,
		LongBreakDuration:       15 * time.Minute,
		SessionsBeforeLongBreak: 4,
	}
}

// shortConfig keeps sessions tiny so tests can elapse them tick by tick.
func shortConfig() model.Config {
	return model.Config{
		WorkDuration:            3 * time.Second,
		ShortBreakDuration:      2 * time.Second,
		LongBreakDuration:       4 * time.Second,
		SessionsBeforeLongBreak: 4,
	}
}

// drain ticks the engine until the current session transitions and
// returns the transition event.
func drain(t *testing.T, eng *Engine) Event {
	t.Helper()
	for i := 0; i < 10000; i++ {
		event := eng.Tick()
		if event.Type == EventTransition {
			return event
		}
		if event.Type != EventTick {
			t.Fatalf("unexpected event type %q while draining", event.Type)
		}
	}
	t.Fatal("session never transitioned")
	return Event{}
}

func TestStartCreatesWorkSession(t *testing.T) {
	eng := New(testConfig())
	if err := eng.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	snapshot := eng.Snapshot()
	if snapshot.Phase != PhaseWork {
		t.Errorf("phase = %q, want %q", snapshot.Phase, PhaseWork)
	}
	if snapshot.Remaining != 25*60 {
		t.Errorf("remaining = %d, want %d", snapshot.Remaining, 25*60)
	}
	if snapshot.RunState != StateRunning {
		t.Errorf("run state = %q, want %q", snapshot.RunState, StateRunning)
	}
	if snapshot.CompletedWork != 0 {
		t.Errorf("completed work = %d, want 0", snapshot.CompletedWork)
	}
}

func TestStartRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Config)
	}{
		{"zero work", func(c *model.Config) { c.WorkDuration = 0 }},
		{"negative short break", func(c *model.Config) { c.ShortBreakDuration = -time.Minute }},
		{"zero long break", func(c *model.Config) { c.LongBreakDuration = 0 }},
		{"zero threshold", func(c *model.Config) { c.SessionsBeforeLongBreak = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := testConfig()
			tc.mutate(&config)
			eng := New(config)
			if err := eng.Start(); err == nil {
				t.Fatal("start accepted invalid config")
			}
			if eng.State() != StateIdle {
				t.Errorf("run state = %q after failed start, want %q", eng.State(), StateIdle)
			}
			if eng.Snapshot().Duration != 0 {
				t.Error("a session was created despite invalid config")
			}
		})
	}
}

func TestTickCountsDownExactly(t *testing.T) {
	eng := New(shortConfig())
	if err := eng.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	duration := eng.Snapshot().Duration
	previous := duration
	ticks := 0
	transitions := 0
	for i := 0; i < duration; i++ {
		event := eng.Tick()
		switch event.Type {
		case EventTick:
			ticks++
			if event.Remaining >= previous {
				t.Errorf("remaining %d did not decrease from %d", event.Remaining, previous)
			}
			previous = event.Remaining
		case EventTransition:
			transitions++
		default:
			t.Fatalf("unexpected event type %q", event.Type)
		}
	}

	if transitions != 1 {
		t.Errorf("transitions = %d, want 1", transitions)
	}
	if ticks != duration-1 {
		t.Errorf("tick events = %d, want %d", ticks, duration-1)
	}
}

func TestCadenceSelectsLongBreakEveryFourth(t *testing.T) {
	eng := New(shortConfig())
	if err := eng.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Expected sequence over four full work sessions with their breaks:
	// Work->Short, Short->Work, Work->Short, ..., Work->Long.
	wantNext := []Phase{
		PhaseShortBreak, PhaseWork,
		PhaseShortBreak, PhaseWork,
		PhaseShortBreak, PhaseWork,
		PhaseLongBreak, PhaseWork,
	}
	wantCompleted := []int{1, 1, 2, 2, 3, 3, 4, 4}

	for i, next := range wantNext {
		event := drain(t, eng)
		if event.Phase != next {
			t.Fatalf("transition %d: next phase = %q, want %q", i, event.Phase, next)
		}
		if event.CompletedWork != wantCompleted[i] {
			t.Errorf("transition %d: completed work = %d, want %d", i, event.CompletedWork, wantCompleted[i])
		}
	}
}

func TestCadenceAcrossManyWorkSessions(t *testing.T) {
	config := shortConfig()
	config.SessionsBeforeLongBreak = 3
	eng := New(config)
	if err := eng.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	for n := 1; n <= 9; n++ {
		event := drain(t, eng)
		if event.PrevPhase != PhaseWork {
			t.Fatalf("work session %d: completed phase = %q, want %q", n, event.PrevPhase, PhaseWork)
		}
		if event.CompletedWork != n {
			t.Errorf("work session %d: completed work = %d", n, event.CompletedWork)
		}
		want := PhaseShortBreak
		if n%3 == 0 {
			want = PhaseLongBreak
		}
		if event.Phase != want {
			t.Errorf("work session %d: next phase = %q, want %q", n, event.Phase, want)
		}
		// Elapse the break back to work.
		if event := drain(t, eng); event.Phase != PhaseWork {
			t.Fatalf("break after session %d did not return to work", n)
		}
	}
}

func TestPauseSuspendsCountdown(t *testing.T) {
	eng := New(testConfig())
	if err := eng.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	for eng.Snapshot().Remaining > 600 {
		eng.Tick()
	}
	eng.Pause()
	if eng.State() != StatePaused {
		t.Fatalf("run state = %q, want %q", eng.State(), StatePaused)
	}

	for i := 0; i < 50; i++ {
		if event := eng.Tick(); event.Type != EventNone {
			t.Fatalf("tick while paused produced %q event", event.Type)
		}
	}
	if remaining := eng.Snapshot().Remaining; remaining != 600 {
		t.Errorf("remaining = %d after paused ticks, want 600", remaining)
	}

	eng.Resume()
	if remaining := eng.Snapshot().Remaining; remaining != 600 {
		t.Errorf("remaining = %d immediately after resume, want 600", remaining)
	}
	if eng.State() != StateRunning {
		t.Errorf("run state = %q after resume, want %q", eng.State(), StateRunning)
	}
}

func TestRedundantControlSignalsAreNoOps(t *testing.T) {
	eng := New(testConfig())

	// Pre-start: everything is a no-op.
	eng.Pause()
	eng.Resume()
	if event := eng.Tick(); event.Type != EventNone {
		t.Errorf("tick before start produced %q event", event.Type)
	}
	if eng.State() != StateIdle {
		t.Errorf("run state = %q before start, want %q", eng.State(), StateIdle)
	}

	if err := eng.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	eng.Resume()
	if eng.State() != StateRunning {
		t.Errorf("resume while running changed state to %q", eng.State())
	}
	eng.Pause()
	eng.Pause()
	if eng.State() != StatePaused {
		t.Errorf("double pause changed state to %q", eng.State())
	}
}

func TestStopIsTerminal(t *testing.T) {
	eng := New(testConfig())
	if err := eng.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	eng.Stop()
	if eng.State() != StateStopped {
		t.Fatalf("run state = %q, want %q", eng.State(), StateStopped)
	}

	eng.Pause()
	eng.Resume()
	for i := 0; i < 10; i++ {
		if event := eng.Tick(); event.Type != EventNone {
			t.Fatalf("tick after stop produced %q event", event.Type)
		}
	}
	if eng.State() != StateStopped {
		t.Errorf("run state = %q after control signals, want %q", eng.State(), StateStopped)
	}
}

func TestStartResetsPreviousRun(t *testing.T) {
	eng := New(shortConfig())
	if err := eng.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	drain(t, eng) // complete one work session
	if eng.CompletedWork() != 1 {
		t.Fatalf("completed work = %d, want 1", eng.CompletedWork())
	}

	if err := eng.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	snapshot := eng.Snapshot()
	if snapshot.CompletedWork != 0 {
		t.Errorf("completed work = %d after restart, want 0", snapshot.CompletedWork)
	}
	if snapshot.Phase != PhaseWork || snapshot.Remaining != snapshot.Duration {
		t.Errorf("restart did not produce a fresh work session: %+v", snapshot)
	}
}
