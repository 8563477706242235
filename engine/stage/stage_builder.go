package stage

// defaultAdvanceWorkers is the worker pool size for parallel controller
// advancement. Character counts are small; four workers cover the common
// case without oversubscribing.
const defaultAdvanceWorkers = 4

// StageOption is a functional option for configuring a Stage.
type StageOption func(*stageImpl)

// WithActive sets the stage's initial active flag.
//
// Parameters:
//   - active: true to start active
//
// Returns:
//   - StageOption: functional option to set the active flag
func WithActive(active bool) StageOption {
	return func(s *stageImpl) {
		s.active = active
	}
}

// WithAdvanceWorkers sets the worker pool size used to advance controllers.
// Values below 1 keep the default.
//
// Parameters:
//   - workers: the number of pool workers
//
// Returns:
//   - StageOption: functional option to set the worker count
func WithAdvanceWorkers(workers int) StageOption {
	return func(s *stageImpl) {
		if workers < 1 {
			return
		}
		s.advanceWorkers = workers
	}
}
