package engine

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/lumen-go/engine/audio"
	"github.com/Carmen-Shannon/lumen-go/engine/input"
	"github.com/Carmen-Shannon/lumen-go/engine/loader"
	"github.com/Carmen-Shannon/lumen-go/engine/profiler"
	"github.com/Carmen-Shannon/lumen-go/engine/renderer"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/Carmen-Shannon/lumen-go/engine/window"
)

// engine implements the Engine interface.
// Owns the window, renderer, asset loader, input tracker, and audio engine,
// and drives the per-frame lifecycle from the window message loop.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	ldr      loader.Loader
	in       input.Input
	aud      audio.AudioEngine

	scenes map[int]scene.Scene

	updateCallback func(deltaTime float32)

	profiler         *profiler.Profiler
	profilingEnabled bool

	rendererOptions []renderer.RendererBuilderOption

	// loadedTextures records texture paths already decoded and uploaded, or
	// that failed to decode, so each path is attempted exactly once.
	loadedTextures map[string]bool

	quitOnce sync.Once
	lastTime time.Time
}

// Engine is the main entry point for the engine. It wires the window,
// renderer, scenes, input, audio, and asset loading together and runs the
// frame loop.
//
// GPU work happens on the thread that created the window, which GLFW locks
// to the OS thread. The engine therefore drives the whole frame (input
// latch, update callback, scene matrix rebuild, and draw submission) from
// the window's message loop rather than a separate render goroutine.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer driving the window surface.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// Loader returns the asset loader wired to the renderer.
	//
	// Returns:
	//   - loader.Loader: the loader instance
	Loader() loader.Loader

	// Input returns the keyboard state tracker bound to the window.
	//
	// Returns:
	//   - input.Input: the input tracker
	Input() input.Input

	// Audio returns the audio playback engine.
	//
	// Returns:
	//   - audio.AudioEngine: the audio engine
	Audio() audio.AudioEngine

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetUpdateCallback registers the function called once per frame, after
	// input state is latched and before scenes rebuild their matrices.
	// Use this for game logic and input handling.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetUpdateCallback(callback func(deltaTime float32))

	// AddScene registers a scene at the given z-index key.
	// Scenes are drawn in ascending key order each frame.
	//
	// Parameters:
	//   - key: the z-index determining draw order (lower draws first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Run starts the frame loop and blocks until the window closes.
	Run()

	// Quit closes the window and releases engine resources.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine with the provided options. A default window
// and renderer are created unless supplied via options; the input tracker is
// bound to the window and the loader is wired to the renderer so meshes land
// on the GPU as models are parsed.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		scenes:         make(map[int]scene.Scene),
		profiler:       profiler.NewProfiler(),
		loadedTextures: make(map[string]bool),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		e.window = window.NewWindow()
	}
	if e.renderer == nil {
		e.renderer = renderer.NewRenderer(renderer.BackendTypeWGPU, e.window, e.rendererOptions...)
	}
	if e.in == nil {
		e.in = input.NewInput()
	}
	e.in.Bind(e.window)
	if e.aud == nil {
		e.aud = audio.NewAudioEngine()
	}
	if e.ldr == nil {
		e.ldr = loader.NewLoader(loader.BackendTypeOBJ, loader.WithRenderer(e.renderer))
	}

	e.window.SetResizeCallback(func(width, height int) {
		e.renderer.Resize(width, height)
	})

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Loader() loader.Loader {
	return e.ldr
}

func (e *engine) Input() input.Input {
	return e.in
}

func (e *engine) Audio() audio.AudioEngine {
	return e.aud
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetUpdateCallback(callback func(deltaTime float32)) {
	e.updateCallback = callback
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	return e.scenes[key]
}

func (e *engine) Run() {
	e.lastTime = time.Now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
	e.Quit()
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if err := e.aud.Close(); err != nil {
			log.Printf("engine: failed to close audio: %v", err)
		}
		if err := e.window.Close(); err != nil {
			log.Printf("engine: failed to close window: %v", err)
		}
	})
}

// frame runs one full frame: latch input, fire the update callback, rebuild
// scene matrices, and submit draw calls in scene z-order.
func (e *engine) frame() {
	now := time.Now()
	dt := float32(now.Sub(e.lastTime).Seconds())
	e.lastTime = now

	e.in.NewFrame()

	if e.updateCallback != nil {
		e.updateCallback(dt)
	}

	width, height := e.window.Width(), e.window.Height()
	if width == 0 || height == 0 {
		// Minimized window; skip the frame rather than dividing by zero.
		return
	}

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	drawCount := 0
	for _, k := range keys {
		if err := e.scenes[k].Update(width, height); err != nil {
			log.Printf("engine: scene %q update: %v", e.scenes[k].Name(), err)
		}
	}

	if err := e.renderer.BeginFrame(); err != nil {
		log.Printf("engine: begin frame: %v", err)
		return
	}
	for _, k := range keys {
		for _, call := range e.scenes[k].DrawCalls() {
			e.ensureTexture(call.TexturePath)
			if err := e.renderer.Draw(call); err != nil {
				log.Printf("engine: draw: %v", err)
				continue
			}
			drawCount++
		}
	}
	e.renderer.EndFrame()
	e.renderer.Present()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(drawCount)
	}
}

// ensureTexture decodes and uploads a texture file the first time a draw
// call references its path. Paths that fail to decode are recorded so a bad
// file logs once instead of every frame; the renderer draws those entities
// with its white fallback texture.
func (e *engine) ensureTexture(path string) {
	if path == "" || e.loadedTextures[path] {
		return
	}
	e.loadedTextures[path] = true

	staging, err := texture.Load(path)
	if err != nil {
		log.Printf("engine: load texture %s: %v", path, err)
		return
	}
	if err := e.renderer.InitTexture(path, staging); err != nil {
		log.Printf("engine: init texture %s: %v", path, err)
	}
}
