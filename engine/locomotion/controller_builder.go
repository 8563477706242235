package locomotion

import (
	"github.com/strider-engine/strider-go/common"
	"github.com/strider-engine/strider-go/engine/animation"
	"github.com/strider-engine/strider-go/engine/config"
)

// clipNames holds the clip names the controller resolves against its mixer.
type clipNames struct {
	idle     string
	walk     string
	run      string
	additive string
}

// defaultClipNames returns the standard clip name set.
func defaultClipNames() clipNames {
	return clipNames{
		idle:     ClipIdle,
		walk:     ClipWalk,
		run:      ClipRun,
		additive: ClipAdditivePose,
	}
}

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithMixer resolves the controller's actions from a mixer and lets the
// controller advance the mixer's clocks each frame.
//
// Parameters:
//   - m: the mixer holding the named clip actions
//
// Returns:
//   - ControllerOption: functional option to set the mixer
func WithMixer(m animation.Mixer) ControllerOption {
	return func(c *controllerImpl) {
		c.mixer = m
	}
}

// WithActions injects the four actions directly, bypassing mixer resolution.
//
// Parameters:
//   - idle: the idle gait action
//   - walk: the walk gait action
//   - run: the run gait action
//   - additive: the additive pose action
//
// Returns:
//   - ControllerOption: functional option to set the actions
func WithActions(idle, walk, run, additive animation.Action) ControllerOption {
	return func(c *controllerImpl) {
		c.idle = idle
		c.walk = walk
		c.run = run
		c.additive = additive
	}
}

// WithClipNames overrides the clip names resolved from the mixer.
// Empty names keep their defaults.
//
// Parameters:
//   - idle: name of the idle clip
//   - walk: name of the walk clip
//   - run: name of the run clip
//   - additive: name of the additive pose clip
//
// Returns:
//   - ControllerOption: functional option to set the clip names
func WithClipNames(idle, walk, run, additive string) ControllerOption {
	return func(c *controllerImpl) {
		if idle != "" {
			c.clipNames.idle = idle
		}
		if walk != "" {
			c.clipNames.walk = walk
		}
		if run != "" {
			c.clipNames.run = run
		}
		if additive != "" {
			c.clipNames.additive = additive
		}
	}
}

// WithWalkSpeed sets the walking speed in world units per second.
//
// Parameters:
//   - speed: the walk speed
//
// Returns:
//   - ControllerOption: functional option to set the walk speed
func WithWalkSpeed(speed float32) ControllerOption {
	return func(c *controllerImpl) {
		c.walkSpeed = speed
	}
}

// WithRunSpeed sets the running speed in world units per second.
//
// Parameters:
//   - speed: the run speed
//
// Returns:
//   - ControllerOption: functional option to set the run speed
func WithRunSpeed(speed float32) ControllerOption {
	return func(c *controllerImpl) {
		c.runSpeed = speed
	}
}

// WithFadeDuration sets the gait crossfade length in seconds.
//
// Parameters:
//   - duration: the fade duration
//
// Returns:
//   - ControllerOption: functional option to set the fade duration
func WithFadeDuration(duration float32) ControllerOption {
	return func(c *controllerImpl) {
		c.fadeDuration = duration
	}
}

// WithAdditiveStep sets the per-frame additive pose weight step.
//
// Parameters:
//   - step: the weight change per frame
//
// Returns:
//   - ControllerOption: functional option to set the additive step
func WithAdditiveStep(step float32) ControllerOption {
	return func(c *controllerImpl) {
		c.additiveStep = step
	}
}

// WithTurnFactor sets the per-frame slerp factor for damped turning.
//
// Parameters:
//   - factor: the slerp factor in (0, 1]
//
// Returns:
//   - ControllerOption: functional option to set the turn factor
func WithTurnFactor(factor float32) ControllerOption {
	return func(c *controllerImpl) {
		c.turnFactor = factor
	}
}

// WithConfig applies the tuning values from a loaded config file.
// Zero fields keep the controller's built-in defaults.
//
// Parameters:
//   - cfg: the tuning config
//
// Returns:
//   - ControllerOption: functional option to apply the config
func WithConfig(cfg *config.Config) ControllerOption {
	return func(c *controllerImpl) {
		if cfg == nil {
			return
		}
		c.walkSpeed = common.Coalesce(cfg.WalkSpeed, c.walkSpeed)
		c.runSpeed = common.Coalesce(cfg.RunSpeed, c.runSpeed)
		c.fadeDuration = common.Coalesce(cfg.FadeDuration, c.fadeDuration)
		c.additiveStep = common.Coalesce(cfg.AdditiveStep, c.additiveStep)
		c.turnFactor = common.Coalesce(cfg.TurnFactor, c.turnFactor)
	}
}
