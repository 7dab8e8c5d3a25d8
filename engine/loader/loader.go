package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/lumen-go/engine/model"
	"github.com/Carmen-Shannon/lumen-go/engine/renderer"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeOBJ selects the Wavefront OBJ/MTL loader backend.
	BackendTypeOBJ LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	renderer renderer.Renderer

	modelCache map[string]model.Model

	backend loaderBackend

	loadWorkers int
	loadPool    worker.DynamicWorkerPool
}

// Loader defines the public-facing interface for loading and caching models.
// It abstracts the file format behind a generic backend and manages a cache
// of previously loaded models.
type Loader interface {
	// Load imports a model file and caches the result.
	// If the model is already cached (by file path), the cached version is
	// returned. The backend is selected based on the file extension
	// (.obj → OBJ backend). When the Loader was built with a Renderer, the
	// model's mesh buffers are uploaded to the GPU before it is returned.
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - model.Model: the loaded and cached model
	//   - error: error if loading fails
	Load(path string) (model.Model, error)

	// LoadReader imports a model from a reader stream and caches it by the
	// given name. Material library references are resolved against the
	// provided directory.
	//
	// Parameters:
	//   - name: the cache key for the loaded model
	//   - r: the reader providing model data
	//   - directory: the directory material references resolve against
	//
	// Returns:
	//   - model.Model: the loaded model
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader, directory string) (model.Model, error)

	// Preload imports several model files concurrently and caches the
	// results. Parsing fans out across the load worker pool; GPU upload,
	// when a Renderer is configured, stays serialized behind the cache lock.
	// Any individual failure fails the whole call.
	//
	// Parameters:
	//   - paths: the model files to load
	//
	// Returns:
	//   - error: the joined errors of every failed load, or nil
	Preload(paths ...string) error

	// Get retrieves a cached model by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - model.Model: the cached model or nil
	Get(name string) model.Model

	// Models returns the full model cache.
	//
	// Returns:
	//   - map[string]model.Model: all cached models keyed by name
	Models() map[string]model.Model
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeOBJ)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:          sync.RWMutex{},
		modelCache:  make(map[string]model.Model),
		loadWorkers: max(runtime.NumCPU()-1, 1),
	}

	switch backendType {
	case BackendTypeOBJ:
		l.backend = newOBJLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}

	// Initialize the load pool after options so WithLoadWorkers can override
	// the default. Queue size of 256 accommodates typical asset manifests
	// with headroom.
	l.loadPool = worker.NewDynamicWorkerPool(l.loadWorkers, 256, 1*time.Second)

	return l
}

func (l *loader) Load(path string) (model.Model, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	imported, err := backend.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return l.cacheImported(path, imported)
}

func (l *loader) LoadReader(name string, r io.Reader, directory string) (model.Model, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	imported, err := l.backend.LoadReader(r, directory, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	return l.cacheImported(name, imported)
}

func (l *loader) Preload(paths ...string) error {
	var wg sync.WaitGroup
	var errMu sync.Mutex
	var errs []error

	for i, path := range paths {
		wg.Add(1)
		p := path // capture for closure
		l.loadPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if _, err := l.Load(p); err != nil {
					errMu.Lock()
					errs = append(errs, err)
					errMu.Unlock()
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (l *loader) Get(name string) model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.modelCache[name]
}

func (l *loader) Models() map[string]model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]model.Model, len(l.modelCache))
	for k, v := range l.modelCache {
		result[k] = v
	}
	return result
}

// resolveBackend selects an appropriate loader backend based on the file extension.
// Currently only OBJ is supported.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".obj":
		return l.backend, nil
	default:
		return nil, fmt.Errorf("unsupported model format: %s", ext)
	}
}

// cacheImported converts an ImportedModel (CPU data) into a Model, uploads
// its mesh buffers to the GPU when a Renderer is available, and stores it in
// the cache. A concurrent load of the same key keeps the first entry.
func (l *loader) cacheImported(key string, imported *model.ImportedModel) (model.Model, error) {
	m := model.NewModel(
		model.WithName(imported.Name),
		model.WithVertices(imported.Vertices),
		model.WithMaterial(imported.Material),
	)

	if l.renderer != nil {
		if err := l.renderer.InitMeshBuffers(m); err != nil {
			return nil, fmt.Errorf("failed to init mesh buffers for %q: %w", imported.Name, err)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if cached, ok := l.modelCache[key]; ok {
		return cached, nil
	}
	l.modelCache[key] = m
	return m, nil
}
