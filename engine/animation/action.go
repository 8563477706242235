package animation

import (
	"math"
	"sync"

	"github.com/strider-engine/strider-go/common"
)

// clipAction is the single implementation of Action.
// Playback time and fade state are CPU-side and advanced once per frame by the
// owning Mixer; callers only schedule fades and read weights.
type clipAction struct {
	mu *sync.Mutex

	clip *Clip

	playing bool
	loop    bool
	time    float32
	speed   float32

	weight float32

	fading       bool
	fadeFrom     float32
	fadeTo       float32
	fadeDuration float32
	fadeElapsed  float32
}

// Action is a playable instance of a single animation clip.
//
// The fade methods are fire-and-forget: scheduling a new fade while one is in
// flight replaces it, there is no fade queue. A fade-out that reaches zero
// weight stops the action.
type Action interface {
	// Clip returns the clip this action plays.
	//
	// Returns:
	//   - *Clip: the underlying clip
	Clip() *Clip

	// Play starts (or resumes) playback at the current time and weight.
	Play()

	// Stop halts playback and cancels any in-flight fade.
	Stop()

	// Reset rewinds playback time to zero.
	Reset()

	// Playing returns whether the action is currently playing.
	//
	// Returns:
	//   - bool: true if playing
	Playing() bool

	// Time returns the current playback position in seconds.
	//
	// Returns:
	//   - float32: the playback time
	Time() float32

	// SetSpeed sets the playback speed multiplier.
	//
	// Parameters:
	//   - speed: the speed multiplier (1.0 = normal)
	SetSpeed(speed float32)

	// FadeIn schedules a linear blend of the action's weight from 0 to 1.
	//
	// Parameters:
	//   - duration: the fade time in seconds
	FadeIn(duration float32)

	// FadeOut schedules a linear blend of the action's weight from its current
	// value to 0. The action stops once the fade completes.
	//
	// Parameters:
	//   - duration: the fade time in seconds
	FadeOut(duration float32)

	// SetEffectiveWeight sets the blend weight directly, cancelling any
	// in-flight fade. The value is clamped to [0, 1].
	//
	// Parameters:
	//   - w: the blend weight
	SetEffectiveWeight(w float32)

	// EffectiveWeight returns the action's current blend weight.
	//
	// Returns:
	//   - float32: the weight in [0, 1]
	EffectiveWeight() float32
}

var _ Action = &clipAction{}

// newClipAction creates an action for a clip with playback stopped, looping
// enabled, and full weight, matching the state Play alone would expose.
func newClipAction(clip *Clip) *clipAction {
	return &clipAction{
		mu:     &sync.Mutex{},
		clip:   clip,
		loop:   true,
		speed:  1.0,
		weight: 1.0,
	}
}

func (a *clipAction) Clip() *Clip {
	return a.clip
}

func (a *clipAction) Play() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.playing = true
}

func (a *clipAction) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.playing = false
	a.fading = false
	a.fadeElapsed = 0
}

func (a *clipAction) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.time = 0
}

func (a *clipAction) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing
}

func (a *clipAction) Time() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.time
}

func (a *clipAction) SetSpeed(speed float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.speed = speed
}

func (a *clipAction) FadeIn(duration float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scheduleFade(0, 1, duration)
}

func (a *clipAction) FadeOut(duration float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scheduleFade(a.weight, 0, duration)
}

// scheduleFade replaces any in-flight fade with a new linear ramp.
// A non-positive duration applies the target weight immediately.
// Caller must hold the mutex.
func (a *clipAction) scheduleFade(from, to, duration float32) {
	if duration <= 0 {
		a.weight = to
		a.fading = false
		a.fadeElapsed = 0
		if to == 0 {
			a.playing = false
		}
		return
	}
	a.fading = true
	a.fadeFrom = from
	a.fadeTo = to
	a.fadeDuration = duration
	a.fadeElapsed = 0
	a.weight = from
}

func (a *clipAction) SetEffectiveWeight(w float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.weight = common.Clamp01(w)
	a.fading = false
	a.fadeElapsed = 0
}

func (a *clipAction) EffectiveWeight() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.weight
}

// advance moves the playback clock and resolves any in-flight fade.
// Called once per frame by the owning Mixer.
func (a *clipAction) advance(deltaTime float32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.playing {
		a.time += deltaTime * a.speed
		if a.loop && a.clip != nil && a.clip.Duration > 0 && a.time > a.clip.Duration {
			a.time = float32(math.Mod(float64(a.time), float64(a.clip.Duration)))
		}
	}

	if a.fading {
		a.fadeElapsed += deltaTime
		progress := a.fadeElapsed / a.fadeDuration
		if progress >= 1.0 {
			a.weight = a.fadeTo
			a.fading = false
			a.fadeElapsed = 0
			if a.weight == 0 {
				a.playing = false
			}
			return
		}
		a.weight = a.fadeFrom + (a.fadeTo-a.fadeFrom)*progress
	}
}
