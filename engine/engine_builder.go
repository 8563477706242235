package engine

import (
	"time"

	"github.com/strider-engine/strider-go/engine/stage"
	"github.com/strider-engine/strider-go/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the simulation tick rate in ticks per second.
// Stages are advanced and the tick callback fired at this rate.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithStage registers a stage at the given ordering key during engine construction.
// Stages are advanced in ascending key order during the tick loop.
//
// Parameters:
//   - key: the ordering key (lower advances first)
//   - s: the Stage to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStage(key int, s stage.Stage) EngineBuilderOption {
	return func(e *engine) {
		e.stages[key] = s
	}
}
