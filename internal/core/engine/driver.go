package engine

import (
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// DriverConfig contains runtime options for Driver.
type DriverConfig struct {
	TickInterval time.Duration
}

// Driver owns the ticking goroutine around an Engine and serializes
// all engine mutation behind one mutex, so the engine only ever sees a
// single logical writer. Observers receive events through Subscribe.
type Driver struct {
	mu      sync.Mutex
	engine  *Engine
	options DriverConfig
	events  []chan Event
	stopCh  chan struct{}
	running bool
}

// NewDriver creates a driver for the provided cadence configuration.
func NewDriver(config model.Config, options DriverConfig) *Driver {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Driver{
		engine:  New(config),
		options: options,
		stopCh:  make(chan struct{}),
	}
}

// Subscribe registers a new observer channel.
func (driver *Driver) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	driver.mu.Lock()
	driver.events = append(driver.events, ch)
	driver.mu.Unlock()
	return ch
}

// Start begins the countdown and launches the ticking loop. The
// configuration is validated before any session is created.
func (driver *Driver) Start() error {
	driver.mu.Lock()
	if err := driver.engine.Start(); err != nil {
		driver.mu.Unlock()
		return err
	}
	snapshot := driver.engine.Snapshot()
	launch := !driver.running
	if launch {
		driver.stopCh = make(chan struct{})
	}
	stopCh := driver.stopCh
	driver.running = true
	driver.mu.Unlock()

	driver.emit(Event{
		Type:      EventStarted,
		Phase:     snapshot.Phase,
		RunState:  StateRunning,
		Remaining: snapshot.Remaining,
		At:        time.Now(),
	})

	if launch {
		go driver.run(stopCh)
	}
	return nil
}

// Pause freezes the countdown.
func (driver *Driver) Pause() {
	driver.mu.Lock()
	before := driver.engine.State()
	driver.engine.Pause()
	changed := driver.engine.State() != before
	snapshot := driver.engine.Snapshot()
	driver.mu.Unlock()

	if changed {
		driver.emitStateChange(snapshot)
	}
}

// Resume unfreezes the countdown.
func (driver *Driver) Resume() {
	driver.mu.Lock()
	before := driver.engine.State()
	driver.engine.Resume()
	changed := driver.engine.State() != before
	snapshot := driver.engine.Snapshot()
	driver.mu.Unlock()

	if changed {
		driver.emitStateChange(snapshot)
	}
}

// Stop terminates the run, stops the ticking loop and closes all
// observer channels. Stop is terminal.
func (driver *Driver) Stop() {
	driver.mu.Lock()
	driver.engine.Stop()
	if !driver.running {
		driver.mu.Unlock()
		return
	}
	close(driver.stopCh)
	driver.running = false
	events := driver.events
	driver.events = nil
	driver.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns the current render payload.
func (driver *Driver) Snapshot() Snapshot {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.engine.Snapshot()
}

func (driver *Driver) run(stopCh <-chan struct{}) {
	ticker := time.NewTicker(driver.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			driver.mu.Lock()
			event := driver.engine.Tick()
			driver.mu.Unlock()
			if event.Type != EventNone {
				driver.emit(event)
			}
		}
	}
}

func (driver *Driver) emitStateChange(snapshot Snapshot) {
	driver.emit(Event{
		Type:          EventStateChange,
		Phase:         snapshot.Phase,
		RunState:      snapshot.RunState,
		Remaining:     snapshot.Remaining,
		CompletedWork: snapshot.CompletedWork,
		At:            time.Now(),
	})
}

// emit delivers to subscribers under the mutex so a concurrent Stop
// cannot close a channel mid-send. Sends never block; a slow observer
// loses events rather than stalling the ticker.
func (driver *Driver) emit(event Event) {
	driver.mu.Lock()
	defer driver.mu.Unlock()

	for _, ch := range driver.events {
		select {
		case ch <- event:
		default:
		}
	}
}
