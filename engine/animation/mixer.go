package animation

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// mixer is the single implementation of Mixer.
type mixer struct {
	mu *sync.Mutex

	actions map[string]*clipAction
}

// Mixer owns one Action per named clip and advances all playback clocks and
// fades once per frame. Required-clip validation happens at construction, so a
// Mixer that exists is guaranteed to resolve every name its callers depend on.
type Mixer interface {
	// Action returns the action for a named clip, or nil if the clip is unknown.
	//
	// Parameters:
	//   - name: the clip name
	//
	// Returns:
	//   - Action: the action for the clip, or nil
	Action(name string) Action

	// ClipNames returns the names of all registered clips in sorted order.
	//
	// Returns:
	//   - []string: the sorted clip names
	ClipNames() []string

	// Advance moves every action's playback clock and fade state forward.
	// Call once per frame before reading weights.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Advance(deltaTime float32)
}

var _ Mixer = &mixer{}

// NewMixer creates a Mixer over a set of clips.
// Clips with empty or duplicate names are rejected, as is the absence of any
// clip named by WithRequiredClips. A missing named clip is a contract
// violation by the asset source and must surface before per-frame calls begin.
//
// Parameters:
//   - clips: the clips to register, keyed by their Name field
//   - options: functional options to configure the mixer
//
// Returns:
//   - Mixer: the newly created mixer
//   - error: an error if a clip is unnamed, duplicated, or required but absent
func NewMixer(clips []*Clip, options ...MixerOption) (Mixer, error) {
	m := &mixer{
		mu:      &sync.Mutex{},
		actions: make(map[string]*clipAction, len(clips)),
	}

	for _, clip := range clips {
		if clip == nil || clip.Name == "" {
			return nil, fmt.Errorf("animation: clip with empty name")
		}
		if _, ok := m.actions[clip.Name]; ok {
			return nil, fmt.Errorf("animation: duplicate clip %q", clip.Name)
		}
		m.actions[clip.Name] = newClipAction(clip)
	}

	cfg := &mixerConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	var missing []string
	for _, name := range cfg.required {
		if _, ok := m.actions[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("animation: missing required clips: %s", strings.Join(missing, ", "))
	}

	return m, nil
}

func (m *mixer) Action(name string) Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.actions[name]
	if !ok {
		return nil
	}
	return a
}

func (m *mixer) ClipNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.actions))
	for name := range m.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *mixer) Advance(deltaTime float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.actions {
		a.advance(deltaTime)
	}
}
