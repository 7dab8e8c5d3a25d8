package scene

import (
	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/Carmen-Shannon/lumen-go/engine/model"
)

// EntityBuilderOption is a functional option for configuring an entity.
// Use the With* functions to create options.
type EntityBuilderOption func(e *entity)

// WithModel assigns a Model to the entity.
//
// Parameters:
//   - m: the Model to associate
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithModel(m model.Model) EntityBuilderOption {
	return func(e *entity) {
		e.mdl = m
	}
}

// WithTexturePath sets the diffuse texture path.
//
// Parameters:
//   - path: the texture path
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithTexturePath(path string) EntityBuilderOption {
	return func(e *entity) {
		e.texturePath = path
	}
}

// WithTransform sets the entity's world transform.
//
// Parameters:
//   - t: the transform
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithTransform(t common.Transform) EntityBuilderOption {
	return func(e *entity) {
		e.transform = t
	}
}

// WithCameraTransform sets the transform of the camera observing the entity.
//
// Parameters:
//   - t: the camera transform
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithCameraTransform(t common.Transform) EntityBuilderOption {
	return func(e *entity) {
		e.cameraTransform = t
	}
}

// WithUVTransform sets the texture coordinate transform.
//
// Parameters:
//   - t: the UV transform
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithUVTransform(t common.Transform) EntityBuilderOption {
	return func(e *entity) {
		e.uvTransform = t
	}
}

// WithColor sets the entity's base material color.
//
// Parameters:
//   - r, g, b, a: color components
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithColor(r, g, b, a float32) EntityBuilderOption {
	return func(e *entity) {
		e.color = [4]float32{r, g, b, a}
	}
}

// WithLightingEnabled toggles directional lighting for the entity.
//
// Parameters:
//   - enabled: true to light the entity
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithLightingEnabled(enabled bool) EntityBuilderOption {
	return func(e *entity) {
		e.lightingEnabled = enabled
	}
}

// WithShininess sets the specular exponent.
//
// Parameters:
//   - shininess: the specular exponent (0 to disable)
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithShininess(shininess float32) EntityBuilderOption {
	return func(e *entity) {
		e.shininess = shininess
	}
}

// WithProjection sets the projection kind.
//
// Parameters:
//   - kind: perspective or orthographic
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithProjection(kind ProjectionKind) EntityBuilderOption {
	return func(e *entity) {
		e.projection = kind
	}
}

// WithLight attaches a per-entity light override.
//
// Parameters:
//   - l: the Light to attach
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithLight(l light.Light) EntityBuilderOption {
	return func(e *entity) {
		e.attachedLight = l
	}
}

// WithVisible sets the entity's initial visibility.
//
// Parameters:
//   - visible: true to draw the entity
//
// Returns:
//   - EntityBuilderOption: option function to apply
func WithVisible(visible bool) EntityBuilderOption {
	return func(e *entity) {
		e.visible.Store(visible)
	}
}
