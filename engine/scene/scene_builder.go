package scene

import (
	"github.com/Carmen-Shannon/lumen-go/engine/light"
)

// SceneBuilderOption is a functional option for configuring a scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithSceneLight sets the scene-wide directional light.
//
// Parameters:
//   - l: the light (ignored if nil)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSceneLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		if l != nil {
			s.sceneLight = l
		}
	}
}

// WithComputeWorkers overrides the number of goroutines used for the
// parallel matrix build phase of Update. Values below 1 are ignored.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(workers int) SceneBuilderOption {
	return func(s *scene) {
		if workers >= 1 {
			s.computeWorkers = workers
		}
	}
}
