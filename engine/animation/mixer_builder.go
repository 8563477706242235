package animation

// mixerConfig collects construction-time settings for a Mixer.
type mixerConfig struct {
	required []string
}

// MixerOption is a functional option for configuring a Mixer.
type MixerOption func(*mixerConfig)

// WithRequiredClips names clips that must be present at construction.
// NewMixer fails if any of them is absent.
//
// Parameters:
//   - names: the required clip names
//
// Returns:
//   - MixerOption: functional option to set the required clip names
func WithRequiredClips(names ...string) MixerOption {
	return func(cfg *mixerConfig) {
		cfg.required = append(cfg.required, names...)
	}
}
