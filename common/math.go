package common

import (
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// worldUp is the vertical axis all yaw rotations are taken around.
var worldUp = mgl.Vec3{0, 1, 0}

// Yaw returns the horizontal-plane angle from one world point toward another,
// measured about the Y axis with +Z as the zero direction.
//
// Parameters:
//   - from: origin point in world space
//   - to: destination point in world space
//
// Returns:
//   - float32: the yaw angle in radians, in (-π, π]
func Yaw(from, to mgl.Vec3) float32 {
	return float32(math.Atan2(float64(to.X()-from.X()), float64(to.Z()-from.Z())))
}

// YawQuat builds a quaternion representing a rotation about the vertical axis.
//
// Parameters:
//   - angle: rotation angle in radians
//
// Returns:
//   - mgl.Quat: the rotation about +Y
func YawQuat(angle float32) mgl.Quat {
	return mgl.QuatRotate(angle, worldUp)
}

// RotateAboutY rotates a vector about the vertical axis.
//
// Parameters:
//   - v: the vector to rotate
//   - angle: rotation angle in radians
//
// Returns:
//   - mgl.Vec3: the rotated vector
func RotateAboutY(v mgl.Vec3, angle float32) mgl.Vec3 {
	sin := float32(math.Sin(float64(angle)))
	cos := float32(math.Cos(float64(angle)))
	return mgl.Vec3{
		v.X()*cos + v.Z()*sin,
		v.Y(),
		-v.X()*sin + v.Z()*cos,
	}
}

// HorizontalDirection projects the offset between two points onto the ground
// plane and normalizes it. Degenerate offsets (points vertically aligned or
// coincident) report ok = false and a zero vector.
//
// Parameters:
//   - from: origin point in world space
//   - to: destination point in world space
//
// Returns:
//   - mgl.Vec3: unit direction with a zero Y component
//   - bool: false if the horizontal offset is too small to normalize
func HorizontalDirection(from, to mgl.Vec3) (mgl.Vec3, bool) {
	d := mgl.Vec3{to.X() - from.X(), 0, to.Z() - from.Z()}
	lenSq := d.X()*d.X() + d.Z()*d.Z()
	if lenSq < 1e-12 {
		return mgl.Vec3{}, false
	}
	return d.Mul(1 / float32(math.Sqrt(float64(lenSq)))), true
}

// stepSlack widens the final-step check in StepToward just enough to absorb
// float32 accumulation error. A repeated step of 0.02 loses a fraction of an
// ulp per addition, so after many steps the remaining distance can sit a hair
// above the step value even though the ramp should finish this call.
const stepSlack = 1.001

// StepToward moves a value toward a target by at most a fixed step.
// The result never overshoots the target, and a ramp whose step evenly
// divides the distance lands exactly on the target on its final step.
//
// Parameters:
//   - current: the current value
//   - target: the value to move toward
//   - step: the maximum change per call (must be >= 0)
//
// Returns:
//   - float32: the stepped value
func StepToward(current, target, step float32) float32 {
	switch {
	case current < target:
		if target-current <= step*stepSlack {
			return target
		}
		return current + step
	case current > target:
		if current-target <= step*stepSlack {
			return target
		}
		return current - step
	default:
		return current
	}
}

// Clamp01 clamps a value to the [0, 1] range.
//
// Parameters:
//   - v: the value to clamp
//
// Returns:
//   - float32: v limited to [0, 1]
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
