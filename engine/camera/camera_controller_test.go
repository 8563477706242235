package camera

import (
	"math"
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func vecAlmostEqual(a, b mgl.Vec3) bool {
	return almostEqual(a.X(), b.X()) && almostEqual(a.Y(), b.Y()) && almostEqual(a.Z(), b.Z())
}

func TestPositionFromSphericalCoords(t *testing.T) {
	cc := NewCameraController(
		WithRadius(10),
		WithAzimuth(0),
		WithElevation(0.05),
		WithTarget(mgl.Vec3{0, 0, 0}),
	)

	pos := cc.Position()
	// Azimuth 0 places the camera along +Z from the target.
	expected := mgl.Vec3{
		0,
		10 * float32(math.Sin(0.05)),
		10 * float32(math.Cos(0.05)),
	}
	if !vecAlmostEqual(pos, expected) {
		t.Errorf("Position() = %v, want %v", pos, expected)
	}
}

func TestSetTargetPreservesOrbitOffset(t *testing.T) {
	cc := NewCameraController(
		WithRadius(6),
		WithElevation(0.3),
	)

	offsetBefore := cc.Position().Sub(cc.Target())
	cc.SetTarget(mgl.Vec3{10, 0, -4})
	offsetAfter := cc.Position().Sub(cc.Target())

	if !vecAlmostEqual(offsetBefore, offsetAfter) {
		t.Errorf("orbit offset changed on SetTarget: before %v, after %v", offsetBefore, offsetAfter)
	}
	if !vecAlmostEqual(cc.Target(), mgl.Vec3{10, 0, -4}) {
		t.Errorf("Target() = %v, want {10 0 -4}", cc.Target())
	}
}

func TestTranslateMovesPositionAndTarget(t *testing.T) {
	cc := NewCameraController()

	posBefore := cc.Position()
	targetBefore := cc.Target()
	delta := mgl.Vec3{1, 0, 2.5}

	cc.Translate(delta)

	if !vecAlmostEqual(cc.Position(), posBefore.Add(delta)) {
		t.Errorf("Position() = %v, want %v", cc.Position(), posBefore.Add(delta))
	}
	if !vecAlmostEqual(cc.Target(), targetBefore.Add(delta)) {
		t.Errorf("Target() = %v, want %v", cc.Target(), targetBefore.Add(delta))
	}
}

func TestElevationClamped(t *testing.T) {
	cc := NewCameraController(WithElevationBounds(0.1, 1.0))

	cc.SetElevation(2.0)
	if e := cc.Elevation(); !almostEqual(e, 1.0) {
		t.Errorf("Elevation() = %v after over-set, want 1.0", e)
	}

	cc.SetElevation(-0.5)
	if e := cc.Elevation(); !almostEqual(e, 0.1) {
		t.Errorf("Elevation() = %v after under-set, want 0.1", e)
	}
}

func TestZoomClampedToRadiusBounds(t *testing.T) {
	cc := NewCameraController(
		WithRadius(5),
		WithRadiusBounds(2, 8),
		WithZoomSpeed(1),
	)

	cc.Zoom(10)
	if r := cc.Radius(); !almostEqual(r, 2) {
		t.Errorf("Radius() = %v after zoom in, want clamp at 2", r)
	}

	cc.Zoom(-20)
	if r := cc.Radius(); !almostEqual(r, 8) {
		t.Errorf("Radius() = %v after zoom out, want clamp at 8", r)
	}
}

func TestOrbitKeepsDistance(t *testing.T) {
	cc := NewCameraController(WithRadius(6))

	for _, azimuth := range []float32{0, 0.5, 1.2, math.Pi} {
		cc.SetAzimuth(azimuth)
		d := cc.Position().Sub(cc.Target()).Len()
		if !almostEqual(d, 6) {
			t.Errorf("azimuth %v: camera distance = %v, want 6", azimuth, d)
		}
	}
}
