package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/qmuntal/gltf"

	"github.com/strider-engine/strider-go/engine/animation"
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	clipCache map[string][]*animation.Clip

	extractWorkers int
	extractPool    worker.DynamicWorkerPool
}

// Loader defines the public-facing interface for loading and caching
// animation clip sets from glTF/GLB files. Mesh, material, and texture data
// in the document are ignored; only the animation definitions are read.
type Loader interface {
	// Load imports the animation clips from a glTF or GLB file and caches
	// the result. If the clip set is already cached (by file path), the
	// cached version is returned.
	//
	// Parameters:
	//   - path: the file path to the glTF or GLB file
	//
	// Returns:
	//   - []*animation.Clip: the loaded and cached clips
	//   - error: error if loading fails
	Load(path string) ([]*animation.Clip, error)

	// LoadReader imports animation clips from a reader stream and caches
	// them by the given name. The reader must provide glTF JSON or GLB
	// binary data; the decoder detects the format.
	//
	// Parameters:
	//   - name: the cache key for the loaded clip set
	//   - r: the reader providing glTF data
	//
	// Returns:
	//   - []*animation.Clip: the loaded clips
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader) ([]*animation.Clip, error)

	// Get retrieves a cached clip set by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - []*animation.Clip: the cached clips or nil
	Get(name string) []*animation.Clip

	// ClipSets returns the full clip cache.
	//
	// Returns:
	//   - map[string][]*animation.Clip: all cached clip sets keyed by name
	ClipSets() map[string][]*animation.Clip
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the provided options applied.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided options
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:             sync.RWMutex{},
		clipCache:      make(map[string][]*animation.Clip),
		extractWorkers: defaultExtractWorkers,
	}

	for _, option := range options {
		option(l)
	}

	l.extractPool = worker.NewDynamicWorkerPool(l.extractWorkers, 64, 1*time.Second)

	return l
}

func (l *loader) Load(path string) ([]*animation.Clip, error) {
	l.mu.RLock()
	if cached, ok := l.clipCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
	default:
		return nil, fmt.Errorf("unsupported animation source format: %s", ext)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	clips, err := l.extractClips(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract clips from %s: %w", path, err)
	}

	l.mu.Lock()
	l.clipCache[path] = clips
	l.mu.Unlock()

	return clips, nil
}

func (l *loader) LoadReader(name string, r io.Reader) ([]*animation.Clip, error) {
	l.mu.RLock()
	if cached, ok := l.clipCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	clips, err := l.extractClips(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract clips from reader %q: %w", name, err)
	}

	l.mu.Lock()
	l.clipCache[name] = clips
	l.mu.Unlock()

	return clips, nil
}

func (l *loader) Get(name string) []*animation.Clip {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.clipCache[name]
}

func (l *loader) ClipSets() map[string][]*animation.Clip {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string][]*animation.Clip, len(l.clipCache))
	for k, v := range l.clipCache {
		result[k] = v
	}
	return result
}

// extractClips converts every animation in a parsed document into a Clip.
// Animations are independent of one another, so extraction fans out across
// the worker pool; a WaitGroup provides the completion barrier. The first
// extraction error wins, but all tasks run to completion before returning.
func (l *loader) extractClips(doc *gltf.Document) ([]*animation.Clip, error) {
	clips := make([]*animation.Clip, len(doc.Animations))
	errs := make([]error, len(doc.Animations))

	var wg sync.WaitGroup
	for i := range doc.Animations {
		wg.Add(1)
		idx := i // capture for closure
		l.extractPool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				clip, err := extractClip(doc, idx)
				clips[idx] = clip
				errs[idx] = err
				return nil, nil
			},
		})
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}
	}

	return clips, nil
}
