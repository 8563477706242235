package character

import (
	"sync"
	"sync/atomic"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// nextID hands out unique character identifiers.
var nextID atomic.Uint64

// characterImpl is the single implementation of Character.
type characterImpl struct {
	mu *sync.Mutex

	id   uint64
	name string

	position    mgl.Vec3
	orientation mgl.Quat
}

// Character is a single controllable entity: a world position plus a yaw
// orientation about the vertical axis. Each instance owns its own transform,
// so any number of characters can be advanced independently.
type Character interface {
	// ID returns the character's unique identifier.
	//
	// Returns:
	//   - uint64: the character ID
	ID() uint64

	// Name returns the character's display name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Position returns the character's world position.
	//
	// Returns:
	//   - mgl.Vec3: the position
	Position() mgl.Vec3

	// SetPosition sets the character's world position.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl.Vec3)

	// Orientation returns the character's orientation quaternion.
	//
	// Returns:
	//   - mgl.Quat: the orientation
	Orientation() mgl.Quat

	// SetOrientation sets the character's orientation quaternion.
	//
	// Parameters:
	//   - q: the new orientation
	SetOrientation(q mgl.Quat)
}

var _ Character = &characterImpl{}

// NewCharacter creates a Character at the origin facing +Z.
//
// Parameters:
//   - options: functional options to configure the character
//
// Returns:
//   - Character: the newly created character
func NewCharacter(options ...CharacterOption) Character {
	c := &characterImpl{
		mu:          &sync.Mutex{},
		id:          nextID.Add(1),
		orientation: mgl.QuatIdent(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *characterImpl) ID() uint64 {
	return c.id
}

func (c *characterImpl) Name() string {
	return c.name
}

func (c *characterImpl) Position() mgl.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *characterImpl) SetPosition(p mgl.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *characterImpl) Orientation() mgl.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orientation
}

func (c *characterImpl) SetOrientation(q mgl.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orientation = q
}
