package common

import (
	"math"
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func vecAlmostEqual(a, b mgl.Vec3) bool {
	return almostEqual(a.X(), b.X()) && almostEqual(a.Y(), b.Y()) && almostEqual(a.Z(), b.Z())
}

func TestYaw(t *testing.T) {
	tests := []struct {
		name     string
		from     mgl.Vec3
		to       mgl.Vec3
		expected float32
	}{
		{"along +Z", mgl.Vec3{0, 0, 0}, mgl.Vec3{0, 0, 1}, 0},
		{"along +X", mgl.Vec3{0, 0, 0}, mgl.Vec3{1, 0, 0}, math.Pi / 2},
		{"along -X", mgl.Vec3{0, 0, 0}, mgl.Vec3{-1, 0, 0}, -math.Pi / 2},
		{"along -Z", mgl.Vec3{0, 0, 0}, mgl.Vec3{0, 0, -1}, math.Pi},
		{"diagonal", mgl.Vec3{0, 0, 0}, mgl.Vec3{1, 0, 1}, math.Pi / 4},
		{"offset origin", mgl.Vec3{2, 5, 3}, mgl.Vec3{2, 1, 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Yaw(tt.from, tt.to)
			if !almostEqual(result, tt.expected) {
				t.Errorf("Yaw(%v, %v) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestRotateAboutY(t *testing.T) {
	tests := []struct {
		name     string
		v        mgl.Vec3
		angle    float32
		expected mgl.Vec3
	}{
		{"zero angle", mgl.Vec3{0, 0, 1}, 0, mgl.Vec3{0, 0, 1}},
		{"quarter turn", mgl.Vec3{0, 0, 1}, math.Pi / 2, mgl.Vec3{1, 0, 0}},
		{"half turn", mgl.Vec3{0, 0, 1}, math.Pi, mgl.Vec3{0, 0, -1}},
		{"negative quarter", mgl.Vec3{0, 0, 1}, -math.Pi / 2, mgl.Vec3{-1, 0, 0}},
		{"preserves y", mgl.Vec3{0, 3, 1}, math.Pi / 2, mgl.Vec3{1, 3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RotateAboutY(tt.v, tt.angle)
			if !vecAlmostEqual(result, tt.expected) {
				t.Errorf("RotateAboutY(%v, %v) = %v, want %v", tt.v, tt.angle, result, tt.expected)
			}
		})
	}
}

func TestYawQuatMatchesRotateAboutY(t *testing.T) {
	angles := []float32{0, math.Pi / 4, math.Pi / 2, -math.Pi / 3, math.Pi}
	v := mgl.Vec3{0, 0, 1}

	for _, angle := range angles {
		byQuat := YawQuat(angle).Rotate(v)
		byMatrix := RotateAboutY(v, angle)
		if !vecAlmostEqual(byQuat, byMatrix) {
			t.Errorf("angle %v: quat rotation %v != direct rotation %v", angle, byQuat, byMatrix)
		}
	}
}

func TestHorizontalDirection(t *testing.T) {
	tests := []struct {
		name     string
		from     mgl.Vec3
		to       mgl.Vec3
		expected mgl.Vec3
		ok       bool
	}{
		{"flat offset", mgl.Vec3{0, 0, 0}, mgl.Vec3{3, 0, 4}, mgl.Vec3{0.6, 0, 0.8}, true},
		{"vertical component dropped", mgl.Vec3{0, 0, 0}, mgl.Vec3{3, 5, 4}, mgl.Vec3{0.6, 0, 0.8}, true},
		{"coincident points", mgl.Vec3{1, 2, 3}, mgl.Vec3{1, 2, 3}, mgl.Vec3{}, false},
		{"vertically aligned", mgl.Vec3{1, 0, 1}, mgl.Vec3{1, 9, 1}, mgl.Vec3{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := HorizontalDirection(tt.from, tt.to)
			if ok != tt.ok {
				t.Fatalf("HorizontalDirection(%v, %v) ok = %v, want %v", tt.from, tt.to, ok, tt.ok)
			}
			if !vecAlmostEqual(result, tt.expected) {
				t.Errorf("HorizontalDirection(%v, %v) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestStepToward(t *testing.T) {
	tests := []struct {
		name     string
		current  float32
		target   float32
		step     float32
		expected float32
	}{
		{"step up", 0.5, 1, 0.02, 0.52},
		{"step down", 0.5, 0, 0.02, 0.48},
		{"clamp at target up", 0.99, 1, 0.02, 1},
		{"clamp at target down", 0.01, 0, 0.02, 0},
		{"already there", 1, 1, 0.02, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StepToward(tt.current, tt.target, tt.step)
			if !almostEqual(result, tt.expected) {
				t.Errorf("StepToward(%v, %v, %v) = %v, want %v", tt.current, tt.target, tt.step, result, tt.expected)
			}
		})
	}
}

func TestStepTowardExactArrival(t *testing.T) {
	// Fifty accumulated float32 steps of 0.02 drift fractionally short of 1;
	// the fiftieth step must still land exactly on the target, not one ulp shy.
	w := float32(0)
	for i := 0; i < 50; i++ {
		w = StepToward(w, 1, 0.02)
	}
	if w != 1 {
		t.Errorf("value after 50 upward steps = %v, want exactly 1", w)
	}

	for i := 0; i < 50; i++ {
		w = StepToward(w, 0, 0.02)
	}
	if w != 0 {
		t.Errorf("value after 50 downward steps = %v, want exactly 0", w)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		name     string
		v        float32
		expected float32
	}{
		{"below range", -0.5, 0},
		{"in range", 0.42, 0.42},
		{"above range", 1.5, 1},
		{"at zero", 0, 0},
		{"at one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Clamp01(tt.v); result != tt.expected {
				t.Errorf("Clamp01(%v) = %v, want %v", tt.v, result, tt.expected)
			}
		})
	}
}

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name     string
		values   []float32
		expected float32
	}{
		{"first non-zero", []float32{0, 0, 3, 5}, 3},
		{"all zero", []float32{0, 0}, 0},
		{"leading non-zero", []float32{2, 7}, 2},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Coalesce(tt.values...); result != tt.expected {
				t.Errorf("Coalesce(%v) = %v, want %v", tt.values, result, tt.expected)
			}
		})
	}
}
