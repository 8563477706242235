package input

import "github.com/strider-engine/strider-go/common"

// defaultQueueSize is the event queue capacity.
// 64 transitions comfortably exceeds what a keyboard produces in one frame.
const defaultQueueSize = 64

// Bindings maps virtual key codes to movement roles.
// Each directional role may be served by several keys (WASD plus arrows).
type Bindings struct {
	// Forward keys move toward the camera's look direction.
	Forward []uint32

	// Backward keys move away from the camera's look direction.
	Backward []uint32

	// Left keys strafe left.
	Left []uint32

	// Right keys strafe right.
	Right []uint32

	// Run keys act as the held run modifier.
	Run []uint32

	// AdditiveToggle flips the additive pose layer on key-down.
	AdditiveToggle uint32
}

// DefaultBindings returns the standard WASD + arrow-key layout with shift as
// the run modifier and T as the additive pose toggle.
//
// Returns:
//   - Bindings: the default key bindings
func DefaultBindings() Bindings {
	return Bindings{
		Forward:        []uint32{common.KeyW, common.KeyUp},
		Backward:       []uint32{common.KeyS, common.KeyDown},
		Left:           []uint32{common.KeyA, common.KeyLeft},
		Right:          []uint32{common.KeyD, common.KeyRight},
		Run:            []uint32{common.KeyLeftShift, common.KeyRightShift},
		AdditiveToggle: common.KeyT,
	}
}

// recognized reports whether a key code is bound to a movement or run role.
func (b Bindings) recognized(code uint32) bool {
	for _, group := range [][]uint32{b.Forward, b.Backward, b.Left, b.Right, b.Run} {
		for _, c := range group {
			if c == code {
				return true
			}
		}
	}
	return false
}

// InterpreterOption is a functional option for configuring an Interpreter.
type InterpreterOption func(*interpreter)

// WithBindings replaces the default key bindings.
//
// Parameters:
//   - b: the bindings to use
//
// Returns:
//   - InterpreterOption: functional option to set the bindings
func WithBindings(b Bindings) InterpreterOption {
	return func(it *interpreter) {
		it.bindings = b
	}
}

// WithQueueSize sets the event queue capacity.
// Values below 1 keep the default.
//
// Parameters:
//   - size: the queue capacity in events
//
// Returns:
//   - InterpreterOption: functional option to set the queue size
func WithQueueSize(size int) InterpreterOption {
	return func(it *interpreter) {
		if size < 1 {
			return
		}
		it.queue = make(chan KeyEvent, size)
	}
}
