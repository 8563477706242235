package input

import (
	"math"
	"sync"
)

// Intent is the discrete movement intent derived from the current key state.
type Intent uint8

const (
	// IntentStationary means no directional key is held.
	IntentStationary Intent = iota

	// IntentWalk means at least one directional key is held.
	IntentWalk

	// IntentRun means a directional key and the run modifier are held.
	IntentRun
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case IntentWalk:
		return "Walk"
	case IntentRun:
		return "Run"
	default:
		return "Stationary"
	}
}

// KeyEvent is a raw key transition delivered by the platform input layer.
type KeyEvent struct {
	// Code is the virtual key code.
	Code uint32

	// Down is true for a press, false for a release.
	Down bool
}

// interpreter is the single implementation of Interpreter.
// Raw events land on a buffered queue and are applied by Drain at a fixed
// point before each simulation step, so per-frame reads always observe a
// consistent key state regardless of which thread delivers events.
type interpreter struct {
	mu *sync.Mutex

	bindings Bindings

	// held tracks bound movement and run keys only; unrecognized key codes
	// never populate it.
	held map[uint32]bool

	additiveEnabled bool

	queue chan KeyEvent
}

// Interpreter converts raw key transitions into a camera-relative movement
// intent. It owns the key state; everything it reports is a pure function of
// the keys currently held plus the additive-pose toggle.
type Interpreter interface {
	// OnKeyDown records a key press. Safe to call from the platform input
	// callback; the event is queued, not applied, until Drain runs.
	//
	// Parameters:
	//   - code: the virtual key code
	OnKeyDown(code uint32)

	// OnKeyUp records a key release. Queued like OnKeyDown.
	//
	// Parameters:
	//   - code: the virtual key code
	OnKeyUp(code uint32)

	// Drain applies all queued key events to the key state.
	// Call once per frame, before the locomotion controllers advance.
	//
	// Returns:
	//   - int: the number of events applied
	Drain() int

	// Intent derives the current movement intent from the held keys.
	//
	// Returns:
	//   - Intent: IntentRun if a direction and the run modifier are held,
	//     IntentWalk if only a direction is held, IntentStationary otherwise
	Intent() Intent

	// HeadingOffset maps the held directional keys to one of nine fixed
	// camera-relative angles. Forward takes precedence over backward, and
	// backward over the lateral keys, so conflicting combinations resolve by
	// that order rather than cancelling out.
	//
	// Returns:
	//   - float32: the heading offset in radians, one of
	//     {0, ±π/4, ±π/2, π, ±3π/4}
	HeadingOffset() float32

	// AnyDirectionHeld reports whether at least one directional key is held.
	//
	// Returns:
	//   - bool: true if a directional key is held
	AnyDirectionHeld() bool

	// RunHeld reports whether the run modifier is held.
	//
	// Returns:
	//   - bool: true if a bound run key is held
	RunHeld() bool

	// AdditiveEnabled reports the additive-pose toggle.
	// The flag flips on key-down of the bound toggle key only; releases have
	// no effect and the toggle never enters the key state.
	//
	// Returns:
	//   - bool: true if the additive pose layer is enabled
	AdditiveEnabled() bool
}

var _ Interpreter = &interpreter{}

// NewInterpreter creates an Interpreter with default bindings
// (WASD + arrows, shift to run, T for the additive pose toggle).
//
// Parameters:
//   - options: functional options to configure the interpreter
//
// Returns:
//   - Interpreter: the newly created interpreter
func NewInterpreter(options ...InterpreterOption) Interpreter {
	it := &interpreter{
		mu:       &sync.Mutex{},
		bindings: DefaultBindings(),
		held:     make(map[uint32]bool),
		queue:    make(chan KeyEvent, defaultQueueSize),
	}
	for _, opt := range options {
		opt(it)
	}
	return it
}

func (it *interpreter) OnKeyDown(code uint32) {
	it.enqueue(KeyEvent{Code: code, Down: true})
}

func (it *interpreter) OnKeyUp(code uint32) {
	it.enqueue(KeyEvent{Code: code, Down: false})
}

// enqueue pushes an event without blocking the input thread.
// If the queue is full the oldest pending event is discarded; a frame's worth
// of backlog that deep means the simulation has stalled anyway.
func (it *interpreter) enqueue(ev KeyEvent) {
	select {
	case it.queue <- ev:
	default:
		select {
		case <-it.queue:
		default:
		}
		it.queue <- ev
	}
}

func (it *interpreter) Drain() int {
	it.mu.Lock()
	defer it.mu.Unlock()

	applied := 0
	for {
		select {
		case ev := <-it.queue:
			it.apply(ev)
			applied++
		default:
			return applied
		}
	}
}

// apply folds one event into the key state. Caller must hold the mutex.
func (it *interpreter) apply(ev KeyEvent) {
	if ev.Code == it.bindings.AdditiveToggle {
		if ev.Down {
			it.additiveEnabled = !it.additiveEnabled
		}
		return
	}
	if !it.bindings.recognized(ev.Code) {
		return
	}
	if ev.Down {
		it.held[ev.Code] = true
	} else {
		delete(it.held, ev.Code)
	}
}

func (it *interpreter) Intent() Intent {
	it.mu.Lock()
	defer it.mu.Unlock()

	if !it.anyHeld(it.bindings.Forward) && !it.anyHeld(it.bindings.Backward) &&
		!it.anyHeld(it.bindings.Left) && !it.anyHeld(it.bindings.Right) {
		return IntentStationary
	}
	if it.anyHeld(it.bindings.Run) {
		return IntentRun
	}
	return IntentWalk
}

func (it *interpreter) HeadingOffset() float32 {
	it.mu.Lock()
	defer it.mu.Unlock()

	forward := it.anyHeld(it.bindings.Forward)
	backward := it.anyHeld(it.bindings.Backward)
	left := it.anyHeld(it.bindings.Left)
	right := it.anyHeld(it.bindings.Right)

	// Exhaustive decision table; the branch order is the tie-break.
	switch {
	case forward && left:
		return math.Pi / 4
	case forward && right:
		return -math.Pi / 4
	case forward:
		return 0
	case backward && left:
		return 3 * math.Pi / 4
	case backward && right:
		return -3 * math.Pi / 4
	case backward:
		return math.Pi
	case left:
		return math.Pi / 2
	case right:
		return -math.Pi / 2
	default:
		return 0
	}
}

func (it *interpreter) AnyDirectionHeld() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.anyHeld(it.bindings.Forward) || it.anyHeld(it.bindings.Backward) ||
		it.anyHeld(it.bindings.Left) || it.anyHeld(it.bindings.Right)
}

func (it *interpreter) RunHeld() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.anyHeld(it.bindings.Run)
}

func (it *interpreter) AdditiveEnabled() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.additiveEnabled
}

// anyHeld reports whether any of the codes is currently held.
// Caller must hold the mutex.
func (it *interpreter) anyHeld(codes []uint32) bool {
	for _, c := range codes {
		if it.held[c] {
			return true
		}
	}
	return false
}
