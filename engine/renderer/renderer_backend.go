package renderer

import (
	"github.com/Carmen-Shannon/lumen-go/engine/model"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// Only specific power-of-two values are valid for GPU hardware. WebGPU guarantees support for
// 1 (off) and 4; higher values (8, 16) are adapter-dependent and may not be available.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4

	// MSAA8x enables 8× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA8x MSAASampleCount = 8

	// MSAA16x enables 16× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA16x MSAASampleCount = 16
)

// DrawCall carries everything the backend needs to draw one object: the mesh,
// the texture to sample, and the uniform payloads already converted to their
// GPU layouts. The caller (the scene) recomputes the uniform payloads every
// frame; the backend just uploads and draws.
type DrawCall struct {
	// ID identifies the object the call belongs to. Per-object uniform
	// buffers and bind groups are cached by this ID, so objects sharing a
	// model still draw with their own uniforms.
	ID uint64

	// Model identifies the mesh to draw. Its buffers are uploaded on first
	// use and cached by model name.
	Model model.Model

	// TexturePath names the diffuse texture registered via InitTexture.
	// Empty or unregistered paths fall back to a 1x1 white texture.
	TexturePath string

	// Transform is the per-object transform uniform.
	Transform model.TransformationMatrix

	// Material is the per-object material uniform.
	Material model.GPUMaterial

	// Light is the directional light uniform.
	Light model.GPUDirectionalLight

	// Camera is the camera uniform.
	Camera model.GPUCamera
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
