package camera

import (
	"sync"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// CameraController is an orbit-style camera rig: the camera position is
// derived from a mutable look-at target plus spherical coordinates, so moving
// the target translates the camera rigidly while orbit inputs only change the
// angles. This is the rig contract the locomotion controller writes through.
type CameraController interface {
	// Position returns the camera position in world space.
	//
	// Returns:
	//   - mgl.Vec3: the camera position
	Position() mgl.Vec3

	// SetPosition overrides the camera position directly.
	// Orbit inputs after this call recompute the position from the target and
	// spherical coordinates again.
	//
	// Parameters:
	//   - p: the new camera position
	SetPosition(p mgl.Vec3)

	// Target returns the look-at target in world space.
	//
	// Returns:
	//   - mgl.Vec3: the look-at target
	Target() mgl.Vec3

	// SetTarget moves the look-at target and recomputes the camera position
	// from the spherical coordinates, preserving the orbit relationship.
	//
	// Parameters:
	//   - t: the new look-at target
	SetTarget(t mgl.Vec3)

	// Translate moves the camera position and the look-at target by the same
	// world-space delta.
	//
	// Parameters:
	//   - delta: the world-space offset to apply
	Translate(delta mgl.Vec3)

	// Azimuth returns the horizontal orbit angle around the Y axis.
	//
	// Returns:
	//   - float32: the azimuth in radians
	Azimuth() float32

	// SetAzimuth sets the horizontal orbit angle and recomputes the position.
	//
	// Parameters:
	//   - azimuth: the angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the vertical orbit angle from the horizontal plane.
	//
	// Returns:
	//   - float32: the elevation in radians
	Elevation() float32

	// SetElevation sets the vertical orbit angle, clamped to the configured
	// bounds, and recomputes the position.
	//
	// Parameters:
	//   - elevation: the angle in radians
	SetElevation(elevation float32)

	// Radius returns the orbit distance from the target.
	//
	// Returns:
	//   - float32: the orbit radius
	Radius() float32

	// Zoom moves the orbit radius by a scaled scroll delta, clamped to the
	// configured bounds.
	//
	// Parameters:
	//   - delta: scroll input (positive = zoom in)
	Zoom(delta float32)

	// MouseSensitivity returns the multiplier applied to mouse-drag orbiting.
	//
	// Returns:
	//   - float32: the mouse sensitivity
	MouseSensitivity() float32
}

// NewCameraController creates a camera rig with sensible defaults for a
// third-person follow camera.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - CameraController: the newly created rig
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},

		radius:    6.0,
		azimuth:   0.0,
		elevation: 0.3,

		minRadius:    1.0,
		maxRadius:    100.0,
		minElevation: 0.05,
		maxElevation: 1.45,

		mouseSensitivity: 0.005,
		zoomSpeed:        0.5,
	}

	for _, option := range options {
		option(cc)
	}

	cc.updatePosition()
	return cc
}
