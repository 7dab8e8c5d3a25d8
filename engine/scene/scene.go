package scene

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/Carmen-Shannon/lumen-go/engine/model"
	"github.com/Carmen-Shannon/lumen-go/engine/renderer"
)

// Default projection parameters. Perspective entities share a single vertical
// field of view and depth range; orthographic entities project in pixel space
// using the current window dimensions.
const (
	defaultFovY      = 0.45
	defaultNearPlane = 0.1
	defaultFarPlane  = 100.0
	orthoFarPlane    = 100.0
)

// ErrSingularCameraTransform is returned when an entity's camera transform
// cannot be inverted to produce a view matrix, e.g. a zero scale component.
var ErrSingularCameraTransform = errors.New("camera transform is not invertible")

// Scene owns an ordered collection of entities and turns them into renderer
// draw calls each frame.
//
// Update recomputes every visible entity's matrices unconditionally: transforms
// are cheap relative to the GPU work they feed, and skipping "unchanged"
// entities would require change tracking across the edit queue.
type Scene interface {
	// Name returns the name of the scene.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Add registers an entity, assigns it an ID, and appends it to the draw
	// order.
	//
	// Parameters:
	//   - e: the entity to add
	//
	// Returns:
	//   - uint64: the assigned entity ID
	Add(e Entity) uint64

	// Get returns the entity with the given ID, or nil if not present.
	//
	// Parameters:
	//   - id: the entity ID
	//
	// Returns:
	//   - Entity: the entity or nil
	Get(id uint64) Entity

	// Remove deletes the entity with the given ID from the scene.
	//
	// Parameters:
	//   - id: the entity ID
	Remove(id uint64)

	// Count returns the number of entities in the scene.
	//
	// Returns:
	//   - int: the entity count
	Count() int

	// Clear removes all entities from the scene.
	Clear()

	// Light returns the scene-wide directional light.
	//
	// Returns:
	//   - light.Light: the scene light
	Light() light.Light

	// SetLight replaces the scene-wide directional light.
	//
	// Parameters:
	//   - l: the new light (ignored if nil)
	SetLight(l light.Light)

	// SubmitEdit queues a mutation to run at the start of the next Update,
	// before matrices are recomputed. This is the safe way to mutate entities
	// from input callbacks while a frame may be in flight.
	//
	// Parameters:
	//   - edit: the mutation to apply
	SubmitEdit(edit func())

	// Update drains the edit queue and recomputes the draw call list for the
	// current window dimensions.
	//
	// Parameters:
	//   - width: window width in pixels
	//   - height: window height in pixels
	//
	// Returns:
	//   - error: joined errors for entities whose matrices could not be built
	Update(width, height int) error

	// DrawCalls returns the draw calls produced by the last Update, in draw
	// order. The slice is reused across frames; callers must not retain it.
	//
	// Returns:
	//   - []renderer.DrawCall: draw calls for visible entities
	DrawCalls() []renderer.DrawCall
}

type scene struct {
	mu *sync.RWMutex

	name string

	order    []Entity
	registry map[uint64]Entity
	nextID   uint64

	sceneLight light.Light

	edits []func()

	// drawCalls is reused each frame to avoid per-frame allocations.
	drawCalls []renderer.DrawCall

	// computePool manages a bounded set of reusable goroutines for the
	// parallel matrix build phase of Update. Workers persist across frames,
	// avoiding per-frame goroutine spawn/teardown overhead.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
}

var _ Scene = &scene{}

// NewScene creates a new Scene with a default white directional light.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		registry:       make(map[uint64]Entity),
		nextID:         1,
		sceneLight:     light.NewLight(),
		computeWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the compute pool after options so WithComputeWorkers can
	// override the default. Queue size of 256 accommodates typical entity
	// counts with headroom.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Add(e Entity) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	e.SetID(id)
	s.registry[id] = e
	s.order = append(s.order, e)
	return id
}

func (s *scene) Get(id uint64) Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registry[id]; !ok {
		return
	}
	delete(s.registry, id)
	for i, e := range s.order {
		if e.ID() == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = s.order[:0]
	clear(s.registry)
}

func (s *scene) Light() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sceneLight
}

func (s *scene) SetLight(l light.Light) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sceneLight = l
}

func (s *scene) SubmitEdit(edit func()) {
	if edit == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edits = append(s.edits, edit)
}

func (s *scene) Update(width, height int) error {
	// Drain the edit queue outside the lock so edits can touch the scene.
	s.mu.Lock()
	pending := s.edits
	s.edits = nil
	s.mu.Unlock()
	for _, edit := range pending {
		edit()
	}

	s.mu.RLock()
	snapshot := make([]Entity, len(s.order))
	copy(snapshot, s.order)
	sceneLight := s.sceneLight
	s.mu.RUnlock()

	// Parallel matrix build with one slot per entity keeps draw order stable
	// regardless of task completion order. A WaitGroup provides per-frame
	// barrier sync since pool.Wait() blocks until workers idle-exit, which
	// is unsuitable for frame-rate workloads. Matrices are rebuilt for every
	// entity that has a model; visibility gates submission only, so a hidden
	// entity still surfaces its build errors.
	calls := make([]*renderer.DrawCall, len(snapshot))
	visible := make([]bool, len(snapshot))
	var errMu sync.Mutex
	var buildErrs []error

	var wg sync.WaitGroup
	for i, e := range snapshot {
		if e.Model() == nil {
			continue
		}
		visible[i] = e.Visible()
		wg.Add(1)
		idx, ent := i, e
		s.computePool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				call, err := buildDrawCall(ent, width, height, sceneLight)
				if err != nil {
					errMu.Lock()
					buildErrs = append(buildErrs, err)
					errMu.Unlock()
					return nil, err
				}
				calls[idx] = &call
				return nil, nil
			},
		})
	}
	wg.Wait()

	s.mu.Lock()
	s.drawCalls = s.drawCalls[:0]
	for i, call := range calls {
		if call != nil && visible[i] {
			s.drawCalls = append(s.drawCalls, *call)
		}
	}
	s.mu.Unlock()

	return errors.Join(buildErrs...)
}

func (s *scene) DrawCalls() []renderer.DrawCall {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drawCalls
}

// buildDrawCall computes the full uniform state for one entity: world and
// world-view-projection matrices, material with UV transform, light, and
// camera position.
func buildDrawCall(e Entity, width, height int, sceneLight light.Light) (renderer.DrawCall, error) {
	t := e.Transform()
	camT := e.CameraTransform()

	var world, camWorld, view, projection [16]float32
	common.MakeAffine(world[:], t.Scale, t.Rotate, t.Translate)
	common.MakeAffine(camWorld[:], camT.Scale, camT.Rotate, camT.Translate)
	if !common.Invert4(view[:], camWorld[:]) {
		return renderer.DrawCall{}, fmt.Errorf("%w: entity %d", ErrSingularCameraTransform, e.ID())
	}

	switch e.Projection() {
	case ProjectionOrthographic:
		common.Orthographic(projection[:], 0, 0, float32(width), float32(height), 0, orthoFarPlane)
	default:
		aspect := float32(width) / float32(height)
		common.PerspectiveFov(projection[:], defaultFovY, aspect, defaultNearPlane, defaultFarPlane)
	}

	var transform model.TransformationMatrix
	transform.World = world
	common.WorldViewProjection(transform.WVP[:], world[:], view[:], projection[:])

	uvT := e.UVTransform()
	material := model.GPUMaterial{
		Color:     e.Color(),
		Shininess: e.Shininess(),
	}
	if e.LightingEnabled() {
		material.EnableLighting = 1
	}
	common.MakeUVMatrix(material.UVTransform[:], uvT.Scale, uvT.Rotate[2], uvT.Translate)

	entityLight := e.Light()
	if entityLight == nil {
		entityLight = sceneLight
	}

	return renderer.DrawCall{
		ID:          e.ID(),
		Model:       e.Model(),
		TexturePath: e.TexturePath(),
		Transform:   transform,
		Material:    material,
		Light:       entityLight.GPU(),
		Camera:      model.GPUCamera{WorldPosition: camT.Translate},
	}, nil
}
