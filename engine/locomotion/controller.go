package locomotion

import (
	"fmt"
	"sync"

	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/strider-engine/strider-go/common"
	"github.com/strider-engine/strider-go/engine/animation"
	"github.com/strider-engine/strider-go/engine/camera"
	"github.com/strider-engine/strider-go/engine/character"
	"github.com/strider-engine/strider-go/engine/input"
)

// controllerImpl is the single implementation of Controller.
// All state is per-instance: any number of controllers can coexist, each
// owning its own gait, additive weight, character, and camera rig.
type controllerImpl struct {
	mu *sync.Mutex

	interp input.Interpreter
	char   character.Character
	cam    camera.CameraController

	mixer animation.Mixer

	idle     animation.Action
	walk     animation.Action
	run      animation.Action
	additive animation.Action

	clipNames clipNames

	gait           Gait
	additiveWeight float32

	walkSpeed    float32
	runSpeed     float32
	fadeDuration float32
	additiveStep float32
	turnFactor   float32
}

// Controller is the per-frame locomotion driver for one character. Each
// Advance it derives the movement intent from its interpreter, cross-fades the
// primary gait clips, ramps the additive pose layer, and moves the character
// and camera rig together through the world.
type Controller interface {
	// Advance runs one simulation step.
	// Must be called from a single goroutine; input events are expected to
	// have been drained onto the interpreter's key state beforehand.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Advance(deltaTime float32)

	// Gait returns the currently active gait.
	//
	// Returns:
	//   - Gait: the active gait
	Gait() Gait

	// AdditiveWeight returns the additive pose layer's current blend weight.
	//
	// Returns:
	//   - float32: the weight in [0, 1]
	AdditiveWeight() float32

	// Interpreter returns the input interpreter supplying movement intent.
	//
	// Returns:
	//   - input.Interpreter: the interpreter
	Interpreter() input.Interpreter

	// Character returns the character this controller drives.
	//
	// Returns:
	//   - character.Character: the controlled character
	Character() character.Character

	// Camera returns the camera rig this controller writes through.
	//
	// Returns:
	//   - camera.CameraController: the camera rig
	Camera() camera.CameraController
}

var _ Controller = &controllerImpl{}

// NewController creates a locomotion controller for one character.
// The idle action starts playing immediately so exactly one primary clip is
// active from the first frame. All four named actions must resolve at
// construction: a missing clip is a contract violation by the asset source
// and fails here rather than mid-frame.
//
// Parameters:
//   - interp: the input interpreter supplying movement intent
//   - char: the character to drive
//   - cam: the camera rig to move with the character
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
//   - error: an error if a collaborator is nil or a required action is missing
func NewController(interp input.Interpreter, char character.Character, cam camera.CameraController, options ...ControllerOption) (Controller, error) {
	if interp == nil {
		return nil, fmt.Errorf("locomotion: nil interpreter")
	}
	if char == nil {
		return nil, fmt.Errorf("locomotion: nil character")
	}
	if cam == nil {
		return nil, fmt.Errorf("locomotion: nil camera rig")
	}

	c := &controllerImpl{
		mu:     &sync.Mutex{},
		interp: interp,
		char:   char,
		cam:    cam,

		clipNames: defaultClipNames(),

		gait: GaitIdle,

		walkSpeed:    2.0,
		runSpeed:     5.0,
		fadeDuration: 0.2,
		additiveStep: 0.02,
		turnFactor:   0.2,
	}
	for _, opt := range options {
		opt(c)
	}

	if c.mixer != nil {
		c.idle = c.mixer.Action(c.clipNames.idle)
		c.walk = c.mixer.Action(c.clipNames.walk)
		c.run = c.mixer.Action(c.clipNames.run)
		c.additive = c.mixer.Action(c.clipNames.additive)
	}
	for name, a := range map[string]animation.Action{
		c.clipNames.idle:     c.idle,
		c.clipNames.walk:     c.walk,
		c.clipNames.run:      c.run,
		c.clipNames.additive: c.additive,
	} {
		if a == nil {
			return nil, fmt.Errorf("locomotion: missing action for clip %q", name)
		}
	}

	// The camera rig follows the character from the start; after this the
	// target tracks the character's position exactly.
	c.cam.SetTarget(c.char.Position())

	c.idle.Play()
	c.additive.Play()
	c.additive.SetEffectiveWeight(0)

	return c, nil
}

func (c *controllerImpl) Advance(deltaTime float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Heading is recomputed from the key state every frame, never accumulated.
	offset := c.interp.HeadingOffset()
	target := gaitFor(c.interp.Intent())

	// One-shot crossfade on gait change; overlapping fades are resolved by
	// the animation layer, nothing is queued here.
	if target != c.gait {
		from := c.actionFor(c.gait)
		to := c.actionFor(target)
		from.FadeOut(c.fadeDuration)
		to.Reset()
		to.FadeIn(c.fadeDuration)
		to.Play()
		c.gait = target
	}

	if deltaTime > 0 {
		// Fixed per-frame ramp, not a time-based rate. Applied every frame,
		// including at weight 0, so the additive layer's influence always
		// reflects the controller's value.
		rampTarget := float32(0)
		if c.interp.AdditiveEnabled() {
			rampTarget = 1
		}
		c.additiveWeight = common.Clamp01(common.StepToward(c.additiveWeight, rampTarget, c.additiveStep))
	}
	c.additive.SetEffectiveWeight(c.additiveWeight)

	if c.mixer != nil {
		c.mixer.Advance(deltaTime)
	}

	if deltaTime > 0 && (c.gait == GaitWalk || c.gait == GaitRun) {
		c.move(deltaTime, offset)
	}
}

// actionFor returns the primary action for a gait. Caller must hold the mutex.
func (c *controllerImpl) actionFor(g Gait) animation.Action {
	switch g {
	case GaitWalk:
		return c.walk
	case GaitRun:
		return c.run
	default:
		return c.idle
	}
}

// move turns the character toward its camera-relative heading and translates
// character and camera rig by the same displacement. Caller must hold the mutex.
func (c *controllerImpl) move(deltaTime, offset float32) {
	pos := c.char.Position()
	camPos := c.cam.Position()

	// Damped turn: slerp toward the camera yaw plus the heading offset by a
	// fixed factor each frame rather than snapping.
	yaw := common.Yaw(camPos, pos)
	facing := common.YawQuat(yaw + offset)
	c.char.SetOrientation(mgl.QuatSlerp(c.char.Orientation(), facing, c.turnFactor))

	// Movement direction: camera forward flattened onto the ground plane,
	// then rotated by the heading offset about the vertical axis.
	dir, ok := common.HorizontalDirection(camPos, c.cam.Target())
	if !ok {
		return
	}
	dir = common.RotateAboutY(dir, offset)

	speed := c.walkSpeed
	if c.gait == GaitRun {
		speed = c.runSpeed
	}

	disp := dir.Mul(speed * deltaTime)
	c.char.SetPosition(pos.Add(disp))

	// The rig translates rigidly with the character: position and look-at
	// target both advance by the displacement, so the target stays on the
	// character and the camera does not orbit during movement.
	c.cam.Translate(disp)
}

func (c *controllerImpl) Gait() Gait {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gait
}

func (c *controllerImpl) AdditiveWeight() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.additiveWeight
}

func (c *controllerImpl) Interpreter() input.Interpreter {
	return c.interp
}

func (c *controllerImpl) Character() character.Character {
	return c.char
}

func (c *controllerImpl) Camera() camera.CameraController {
	return c.cam
}
