package locomotion

import "github.com/strider-engine/strider-go/engine/input"

// Gait is the primary locomotion state. Exactly one gait's clip is active
// (playing with full blend-in) at any time.
type Gait uint8

const (
	// GaitIdle is the stationary gait.
	GaitIdle Gait = iota

	// GaitWalk is the walking gait.
	GaitWalk

	// GaitRun is the running gait.
	GaitRun
)

// Default clip names the controller resolves against its mixer.
// The asset source must provide all four before per-frame calls begin.
const (
	ClipIdle         = "Idle"
	ClipWalk         = "Walk"
	ClipRun          = "Run"
	ClipAdditivePose = "AdditivePose"
)

// String returns the gait name, which matches its default clip name.
func (g Gait) String() string {
	switch g {
	case GaitWalk:
		return ClipWalk
	case GaitRun:
		return ClipRun
	default:
		return ClipIdle
	}
}

// gaitFor maps a movement intent to its gait.
func gaitFor(intent input.Intent) Gait {
	switch intent {
	case input.IntentRun:
		return GaitRun
	case input.IntentWalk:
		return GaitWalk
	default:
		return GaitIdle
	}
}
