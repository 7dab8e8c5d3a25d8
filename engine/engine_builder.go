package engine

import (
	"github.com/Carmen-Shannon/lumen-go/engine/audio"
	"github.com/Carmen-Shannon/lumen-go/engine/loader"
	"github.com/Carmen-Shannon/lumen-go/engine/renderer"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/Carmen-Shannon/lumen-go/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets a custom configured window for the engine to use rather
// than allowing the engine to create a default one.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRendererOptions forwards options to the renderer the engine creates,
// such as MSAA level or present mode. Ignored when WithRenderer supplies a
// pre-built renderer.
//
// Parameters:
//   - options: renderer options to forward
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRendererOptions(options ...renderer.RendererBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.rendererOptions = append(e.rendererOptions, options...)
	}
}

// WithRenderer sets a pre-built renderer rather than letting the engine
// create one from the window surface.
//
// Parameters:
//   - r: a pre-configured Renderer instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithLoader sets a pre-built asset loader.
//
// Parameters:
//   - l: a pre-configured Loader instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLoader(l loader.Loader) EngineBuilderOption {
	return func(e *engine) {
		e.ldr = l
	}
}

// WithAudioEngine sets a pre-built audio engine.
//
// Parameters:
//   - a: a pre-configured AudioEngine instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAudioEngine(a audio.AudioEngine) EngineBuilderOption {
	return func(e *engine) {
		e.aud = a
	}
}

// WithScene registers a scene at the given z-index key during engine
// construction. Scenes are drawn in ascending key order.
//
// Parameters:
//   - key: the z-index determining draw order (lower draws first)
//   - s: the Scene to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scenes[key] = s
	}
}
