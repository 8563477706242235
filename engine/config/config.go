package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strider-engine/strider-go/common"
	"github.com/strider-engine/strider-go/engine/input"
)

// Config is the locomotion tuning file.
//
// Every field has a default matching the controller's built-in constants, so
// a partial file only overrides what it names.
//
// Example file:
//
//	walkSpeed: 2.0
//	runSpeed: 5.0
//	fadeDuration: 0.2
//	additiveStep: 0.02
//	turnFactor: 0.2
//	bindings:
//	  forward: [w, up]
//	  run: [left-shift, right-shift]
//	  additiveToggle: t
type Config struct {
	// WalkSpeed is the walking speed in world units per second.
	WalkSpeed float32 `yaml:"walkSpeed"`

	// RunSpeed is the running speed in world units per second.
	RunSpeed float32 `yaml:"runSpeed"`

	// FadeDuration is the gait crossfade length in seconds.
	FadeDuration float32 `yaml:"fadeDuration"`

	// AdditiveStep is the per-frame additive pose weight step.
	AdditiveStep float32 `yaml:"additiveStep"`

	// TurnFactor is the per-frame slerp factor for damped turning.
	TurnFactor float32 `yaml:"turnFactor"`

	// Bindings maps key names to movement roles.
	Bindings BindingConfig `yaml:"bindings"`
}

// BindingConfig is the key-binding section of the tuning file.
// Key names are lowercase ("w", "up", "left-shift"); each movement role
// accepts several keys.
type BindingConfig struct {
	Forward        []string `yaml:"forward"`
	Backward       []string `yaml:"backward"`
	Left           []string `yaml:"left"`
	Right          []string `yaml:"right"`
	Run            []string `yaml:"run"`
	AdditiveToggle string   `yaml:"additiveToggle"`
}

// keyCodes maps binding file key names to virtual key codes.
var keyCodes = map[string]uint32{
	"w":           common.KeyW,
	"a":           common.KeyA,
	"s":           common.KeyS,
	"d":           common.KeyD,
	"q":           common.KeyQ,
	"e":           common.KeyE,
	"t":           common.KeyT,
	"space":       common.KeySpace,
	"esc":         common.KeyEsc,
	"left-shift":  common.KeyLeftShift,
	"right-shift": common.KeyRightShift,
	"up":          common.KeyUp,
	"down":        common.KeyDown,
	"left":        common.KeyLeft,
	"right":       common.KeyRight,
}

// Default returns the tuning values the controller ships with.
//
// Returns:
//   - *Config: a fresh config with default values
func Default() *Config {
	return &Config{
		WalkSpeed:    2.0,
		RunSpeed:     5.0,
		FadeDuration: 0.2,
		AdditiveStep: 0.02,
		TurnFactor:   0.2,
		Bindings: BindingConfig{
			Forward:        []string{"w", "up"},
			Backward:       []string{"s", "down"},
			Left:           []string{"a", "left"},
			Right:          []string{"d", "right"},
			Run:            []string{"left-shift", "right-shift"},
			AdditiveToggle: "t",
		},
	}
}

// Load reads a YAML tuning file over the defaults.
// Fields absent from the file keep their default values.
//
// Parameters:
//   - path: the tuning file path
//
// Returns:
//   - *Config: the loaded config
//   - error: an error if the file cannot be read or parsed
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveBindings converts the named key bindings into input bindings.
//
// Returns:
//   - input.Bindings: the resolved bindings
//   - error: an error naming the first unknown key
func (c *Config) ResolveBindings() (input.Bindings, error) {
	b := input.Bindings{}

	resolve := func(names []string, dst *[]uint32) error {
		for _, name := range names {
			code, ok := keyCodes[name]
			if !ok {
				return fmt.Errorf("config: unknown key name %q", name)
			}
			*dst = append(*dst, code)
		}
		return nil
	}

	if err := resolve(c.Bindings.Forward, &b.Forward); err != nil {
		return input.Bindings{}, err
	}
	if err := resolve(c.Bindings.Backward, &b.Backward); err != nil {
		return input.Bindings{}, err
	}
	if err := resolve(c.Bindings.Left, &b.Left); err != nil {
		return input.Bindings{}, err
	}
	if err := resolve(c.Bindings.Right, &b.Right); err != nil {
		return input.Bindings{}, err
	}
	if err := resolve(c.Bindings.Run, &b.Run); err != nil {
		return input.Bindings{}, err
	}

	if c.Bindings.AdditiveToggle != "" {
		code, ok := keyCodes[c.Bindings.AdditiveToggle]
		if !ok {
			return input.Bindings{}, fmt.Errorf("config: unknown key name %q", c.Bindings.AdditiveToggle)
		}
		b.AdditiveToggle = code
	}

	return b, nil
}
