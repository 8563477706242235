package character

import (
	"math"
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
)

func TestNewCharacterDefaults(t *testing.T) {
	c := NewCharacter()

	if pos := c.Position(); pos != (mgl.Vec3{}) {
		t.Errorf("Position() = %v, want origin", pos)
	}
	if q := c.Orientation(); q != mgl.QuatIdent() {
		t.Errorf("Orientation() = %v, want identity", q)
	}
	if c.Name() != "" {
		t.Errorf("Name() = %q, want empty", c.Name())
	}
}

func TestCharacterIDsUnique(t *testing.T) {
	a := NewCharacter()
	b := NewCharacter()

	if a.ID() == b.ID() {
		t.Errorf("two characters share ID %d", a.ID())
	}
}

func TestCharacterOptions(t *testing.T) {
	c := NewCharacter(
		WithName("walker"),
		WithPosition(mgl.Vec3{1, 0, 2}),
	)

	if c.Name() != "walker" {
		t.Errorf("Name() = %q, want %q", c.Name(), "walker")
	}
	if pos := c.Position(); pos != (mgl.Vec3{1, 0, 2}) {
		t.Errorf("Position() = %v, want {1 0 2}", pos)
	}
}

func TestWithYaw(t *testing.T) {
	c := NewCharacter(WithYaw(math.Pi / 2))

	// A quarter turn about Y maps +Z onto +X.
	facing := c.Orientation().Rotate(mgl.Vec3{0, 0, 1})
	if math.Abs(float64(facing.X()-1)) > 1e-5 || math.Abs(float64(facing.Z())) > 1e-5 {
		t.Errorf("facing = %v, want {1 0 0}", facing)
	}
}

func TestSetters(t *testing.T) {
	c := NewCharacter()

	c.SetPosition(mgl.Vec3{3, 1, -2})
	if pos := c.Position(); pos != (mgl.Vec3{3, 1, -2}) {
		t.Errorf("Position() = %v after set, want {3 1 -2}", pos)
	}

	q := mgl.QuatRotate(1.0, mgl.Vec3{0, 1, 0})
	c.SetOrientation(q)
	if got := c.Orientation(); got != q {
		t.Errorf("Orientation() = %v after set, want %v", got, q)
	}
}
