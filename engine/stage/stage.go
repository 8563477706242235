package stage

import (
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/strider-engine/strider-go/engine/camera"
	"github.com/strider-engine/strider-go/engine/locomotion"
)

// stageImpl is the single implementation of Stage.
type stageImpl struct {
	mu *sync.RWMutex

	name   string
	active bool

	controllers []locomotion.Controller

	advanceWorkers int
	advancePool    worker.DynamicWorkerPool
}

// Stage groups the characters advanced together each frame. Every tick it
// drains each controller's input queue first, then advances all controllers
// through a shared worker pool behind a frame barrier. Input application and
// simulation never interleave, so each frame observes one consistent key
// state. Stages can be hot-swapped via the Active flag.
type Stage interface {
	// Name returns the stage's identifier.
	//
	// Returns:
	//   - string: the name
	Name() string

	// SetName sets the stage's identifier.
	//
	// Parameters:
	//   - name: the new name
	SetName(name string)

	// Active returns whether this stage is advanced by the frame host.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive sets whether this stage is advanced by the frame host.
	//
	// Parameters:
	//   - active: true to activate
	SetActive(active bool)

	// Add registers a controller with the stage.
	//
	// Parameters:
	//   - ctrl: the controller to register
	//
	// Returns:
	//   - error: an error if the controller is nil
	Add(ctrl locomotion.Controller) error

	// Count returns the number of registered controllers.
	//
	// Returns:
	//   - int: the controller count
	Count() int

	// Camera returns the primary camera rig, meaning the rig of the first
	// controller added, or nil if the stage is empty.
	//
	// Returns:
	//   - camera.CameraController: the primary rig or nil
	Camera() camera.CameraController

	// Advance runs one frame for every registered controller.
	// Phase 1 drains all input queues serially; phase 2 advances the
	// controllers in parallel and blocks until all have finished.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Advance(deltaTime float32)
}

var _ Stage = &stageImpl{}

// NewStage creates a Stage with the provided options.
//
// Parameters:
//   - name: the stage identifier
//   - options: functional options to configure the stage
//
// Returns:
//   - Stage: the newly created stage
func NewStage(name string, options ...StageOption) Stage {
	s := &stageImpl{
		mu:             &sync.RWMutex{},
		name:           name,
		active:         true,
		advanceWorkers: defaultAdvanceWorkers,
	}
	for _, opt := range options {
		opt(s)
	}

	// Initialize the pool after options so WithAdvanceWorkers can override
	// the default. Queue size of 64 accommodates typical character counts
	// with headroom.
	s.advancePool = worker.NewDynamicWorkerPool(s.advanceWorkers, 64, 1*time.Second)

	return s
}

func (s *stageImpl) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *stageImpl) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *stageImpl) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *stageImpl) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *stageImpl) Add(ctrl locomotion.Controller) error {
	if ctrl == nil {
		return fmt.Errorf("stage: nil controller")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controllers = append(s.controllers, ctrl)
	return nil
}

func (s *stageImpl) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.controllers)
}

func (s *stageImpl) Camera() camera.CameraController {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.controllers) == 0 {
		return nil
	}
	return s.controllers[0].Camera()
}

func (s *stageImpl) Advance(deltaTime float32) {
	s.mu.RLock()
	controllers := make([]locomotion.Controller, len(s.controllers))
	copy(controllers, s.controllers)
	s.mu.RUnlock()

	// Phase 1: apply all queued input serially so every controller's advance
	// observes the key state as of this frame boundary.
	for _, ctrl := range controllers {
		ctrl.Interpreter().Drain()
	}

	// Phase 2: parallel advance. Each controller owns its own state, so
	// they are independent. Workers are reused across frames (no goroutine
	// spawn overhead). A WaitGroup provides per-frame barrier sync since
	// pool.Wait() blocks until workers idle-exit, which is unsuitable for
	// frame-rate workloads.
	var wg sync.WaitGroup
	for i, ctrl := range controllers {
		wg.Add(1)
		ctrlCap := ctrl // capture for closure
		s.advancePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				ctrlCap.Advance(deltaTime)
				return nil, nil
			},
		})
	}
	wg.Wait()
}
