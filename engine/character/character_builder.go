package character

import (
	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/strider-engine/strider-go/common"
)

// CharacterOption is a functional option for configuring a Character.
type CharacterOption func(*characterImpl)

// WithName sets the character's display name.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - CharacterOption: functional option to set the name
func WithName(name string) CharacterOption {
	return func(c *characterImpl) {
		c.name = name
	}
}

// WithPosition sets the character's initial world position.
//
// Parameters:
//   - p: the initial position
//
// Returns:
//   - CharacterOption: functional option to set the position
func WithPosition(p mgl.Vec3) CharacterOption {
	return func(c *characterImpl) {
		c.position = p
	}
}

// WithYaw sets the character's initial facing as a rotation about the
// vertical axis.
//
// Parameters:
//   - angle: the yaw angle in radians
//
// Returns:
//   - CharacterOption: functional option to set the orientation
func WithYaw(angle float32) CharacterOption {
	return func(c *characterImpl) {
		c.orientation = common.YawQuat(angle)
	}
}
