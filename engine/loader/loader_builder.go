package loader

// defaultExtractWorkers is the worker pool size for parallel clip
// extraction. Source files rarely carry more than a handful of animations.
const defaultExtractWorkers = 4

// LoaderBuilderOption is a functional option for configuring a Loader.
type LoaderBuilderOption func(*loader)

// WithExtractWorkers sets the worker pool size used for clip extraction.
// Values below 1 keep the default.
//
// Parameters:
//   - workers: the number of pool workers
//
// Returns:
//   - LoaderBuilderOption: functional option to set the worker count
func WithExtractWorkers(workers int) LoaderBuilderOption {
	return func(l *loader) {
		if workers < 1 {
			return
		}
		l.extractWorkers = workers
	}
}
