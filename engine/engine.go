package engine

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/strider-engine/strider-go/engine/profiler"
	"github.com/strider-engine/strider-go/engine/stage"
	"github.com/strider-engine/strider-go/engine/window"
)

// engine implements the Engine interface.
// Coordinates the simulation tick loop and the window message loop.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	stageMu sync.RWMutex
	stages  map[int]stage.Stage
}

// Engine is the main entry point for the character controller host.
// It orchestrates the simulation tick loop and window management: each tick it
// advances every active stage, which drains input and steps every registered
// locomotion controller. Rendering is the embedding application's concern and
// is not part of the loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the simulation tick rate in ticks per second.
	// Stages are advanced and the tick callback fired at this rate.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called after the stages have been
	// advanced each tick. Use this for app logic layered on the simulation,
	// such as reading back character transforms for display.
	//
	// Parameters:
	//   - callback: function to call each tick, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddStage registers a stage at the given key.
	// Stages are advanced in ascending key order during the tick loop.
	//
	// Parameters:
	//   - key: the ordering key (lower advances first)
	//   - s: the Stage to register
	AddStage(key int, s stage.Stage)

	// RemoveStage removes the stage at the given key.
	//
	// Parameters:
	//   - key: the key of the stage to remove
	RemoveStage(key int)

	// Stage retrieves the stage registered at the given key.
	// Returns nil if no stage exists at that key.
	//
	// Parameters:
	//   - key: the key of the stage to retrieve
	//
	// Returns:
	//   - stage.Stage: the stage at the key, or nil if not found
	Stage(key int) stage.Stage

	// Stages returns a copy of all registered stages keyed by order.
	//
	// Returns:
	//   - map[int]stage.Stage: a copy of the stages map
	Stages() map[int]stage.Stage

	// Run starts the main engine loop (blocks until window closes).
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Initializes the tick channel and profiler with sensible defaults.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		stages:           make(map[int]stage.Stage),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.handle()
	e.window.ProcessMessages()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the tick and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.running = true
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate simulation tick loop in its own goroutine.
// Advances all active stages in ascending key order, fires the tick callback,
// and listens for dynamic rate changes via tickRateChannel. Recovers from
// panics to avoid crashing the process and signals quit on recovery.
// Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	// Recover from panics inside the tick goroutine to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tick goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			// Snapshot the active stages in ascending key order under the
			// read lock, then advance outside it so stage registration from
			// other goroutines never blocks on a long frame.
			e.stageMu.RLock()
			keys := make([]int, 0, len(e.stages))
			for k := range e.stages {
				keys = append(keys, k)
			}
			sort.Ints(keys)

			active := make([]stage.Stage, 0, len(keys))
			for _, k := range keys {
				if s := e.stages[k]; s.Active() {
					active = append(active, s)
				}
			}
			e.stageMu.RUnlock()

			for _, s := range active {
				s.Advance(dt)
			}

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the simulation tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Send to channel for immediate update in running engine loop
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Channel has a pending update, drain and send new value
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		// Engine not running, just update the field
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) AddStage(key int, s stage.Stage) {
	e.stageMu.Lock()
	defer e.stageMu.Unlock()
	e.stages[key] = s
}

func (e *engine) RemoveStage(key int) {
	e.stageMu.Lock()
	defer e.stageMu.Unlock()
	delete(e.stages, key)
}

func (e *engine) Stage(key int) stage.Stage {
	e.stageMu.RLock()
	defer e.stageMu.RUnlock()
	return e.stages[key]
}

func (e *engine) Stages() map[int]stage.Stage {
	e.stageMu.RLock()
	defer e.stageMu.RUnlock()

	cp := make(map[int]stage.Stage, len(e.stages))
	for k, v := range e.stages {
		cp[k] = v
	}
	return cp
}
