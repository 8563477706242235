package stage

import (
	"math"
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/strider-engine/strider-go/common"
	"github.com/strider-engine/strider-go/engine/animation"
	"github.com/strider-engine/strider-go/engine/camera"
	"github.com/strider-engine/strider-go/engine/character"
	"github.com/strider-engine/strider-go/engine/input"
	"github.com/strider-engine/strider-go/engine/locomotion"
)

func newTestController(t *testing.T) (locomotion.Controller, input.Interpreter, character.Character) {
	t.Helper()

	clips := []*animation.Clip{
		{Name: locomotion.ClipIdle, Duration: 1},
		{Name: locomotion.ClipWalk, Duration: 1},
		{Name: locomotion.ClipRun, Duration: 1},
		{Name: locomotion.ClipAdditivePose, Duration: 1},
	}
	m, err := animation.NewMixer(clips)
	if err != nil {
		t.Fatalf("NewMixer() error = %v", err)
	}

	interp := input.NewInterpreter()
	char := character.NewCharacter()
	ctrl, err := locomotion.NewController(interp, char, camera.NewCameraController(),
		locomotion.WithMixer(m),
	)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return ctrl, interp, char
}

func vecAlmostEqual(a, b mgl.Vec3) bool {
	d := a.Sub(b)
	return math.Abs(float64(d.X())) < 1e-5 && math.Abs(float64(d.Y())) < 1e-5 && math.Abs(float64(d.Z())) < 1e-5
}

func TestStageAdd(t *testing.T) {
	s := NewStage("test")

	if err := s.Add(nil); err == nil {
		t.Error("Add(nil) returned nil error")
	}
	if s.Count() != 0 {
		t.Errorf("Count() = %d after rejected add, want 0", s.Count())
	}

	ctrl, _, _ := newTestController(t)
	if err := s.Add(ctrl); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}

func TestStageNameAndActive(t *testing.T) {
	s := NewStage("arena", WithActive(false))

	if s.Name() != "arena" {
		t.Errorf("Name() = %q, want %q", s.Name(), "arena")
	}
	if s.Active() {
		t.Error("Active() = true, want false from WithActive")
	}

	s.SetActive(true)
	if !s.Active() {
		t.Error("Active() = false after SetActive(true)")
	}

	s.SetName("arena 2")
	if s.Name() != "arena 2" {
		t.Errorf("Name() = %q after SetName, want %q", s.Name(), "arena 2")
	}
}

func TestStageCamera(t *testing.T) {
	s := NewStage("test")

	if s.Camera() != nil {
		t.Error("Camera() != nil for empty stage")
	}

	ctrl, _, _ := newTestController(t)
	if err := s.Add(ctrl); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if s.Camera() != ctrl.Camera() {
		t.Error("Camera() did not return the first controller's rig")
	}
}

func TestStageAdvanceDrainsInput(t *testing.T) {
	s := NewStage("test")
	ctrl, interp, char := newTestController(t)
	if err := s.Add(ctrl); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Events queue on the interpreter; the stage drains them at the frame
	// boundary before advancing.
	interp.OnKeyDown(common.KeyW)
	s.Advance(0.1)

	if g := ctrl.Gait(); g != locomotion.GaitWalk {
		t.Errorf("Gait() = %v after stage advance, want GaitWalk", g)
	}
	if pos := char.Position(); vecAlmostEqual(pos, mgl.Vec3{}) {
		t.Error("character did not move after stage advance")
	}
}

func TestStageAdvancesControllersIndependently(t *testing.T) {
	s := NewStage("test", WithAdvanceWorkers(2))

	walker, walkerInput, walkerChar := newTestController(t)
	idler, _, idlerChar := newTestController(t)
	if err := s.Add(walker); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add(idler); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	walkerInput.OnKeyDown(common.KeyW)
	for i := 0; i < 10; i++ {
		s.Advance(1.0 / 60.0)
	}

	if vecAlmostEqual(walkerChar.Position(), mgl.Vec3{}) {
		t.Error("walking character did not move")
	}
	if !vecAlmostEqual(idlerChar.Position(), mgl.Vec3{}) {
		t.Errorf("idle character moved: %v", idlerChar.Position())
	}
	if walker.Gait() != locomotion.GaitWalk {
		t.Errorf("walker Gait() = %v, want GaitWalk", walker.Gait())
	}
	if idler.Gait() != locomotion.GaitIdle {
		t.Errorf("idler Gait() = %v, want GaitIdle", idler.Gait())
	}
}
