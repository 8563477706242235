package animation

// VectorKeyframe is a single keyed vector value (translation or scale).
type VectorKeyframe struct {
	// Time is the keyframe time in seconds.
	Time float32

	// Value is the keyed vector.
	Value [3]float32
}

// QuaternionKeyframe is a single keyed rotation.
type QuaternionKeyframe struct {
	// Time is the keyframe time in seconds.
	Time float32

	// Value is the keyed rotation quaternion as (x, y, z, w).
	Value [4]float32
}

// Channel contains the keyframe tracks targeting a single node of the rig.
type Channel struct {
	// NodeIndex is the index of the targeted node in the source document.
	NodeIndex int32

	// PositionKeys are keyframes for translation.
	PositionKeys []VectorKeyframe

	// RotationKeys are keyframes for rotation (quaternion).
	RotationKeys []QuaternionKeyframe

	// ScaleKeys are keyframes for scale.
	ScaleKeys []VectorKeyframe
}

// Clip represents a single named animation (idle, walk, run, etc.).
type Clip struct {
	// Name identifies the clip; lookups by the mixer are by this name.
	Name string

	// Duration is the total clip length in seconds.
	Duration float32

	// Channels holds the per-node keyframe tracks.
	Channels []Channel
}

// KeyCount returns the total number of keyframes across all channels.
//
// Returns:
//   - int: the total keyframe count
func (c *Clip) KeyCount() int {
	n := 0
	for _, ch := range c.Channels {
		n += len(ch.PositionKeys) + len(ch.RotationKeys) + len(ch.ScaleKeys)
	}
	return n
}
