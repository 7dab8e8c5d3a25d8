package scene

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/Carmen-Shannon/lumen-go/engine/model"
)

// ProjectionKind selects how an entity's camera-space geometry is projected
// to clip space.
type ProjectionKind int

const (
	// ProjectionPerspective applies a left-handed perspective projection.
	// Used for world-space 3D entities.
	ProjectionPerspective ProjectionKind = iota

	// ProjectionOrthographic applies a pixel-space orthographic projection
	// with the origin at the top-left of the window. Used for screen-space
	// sprites and UI quads.
	ProjectionOrthographic
)

type entity struct {
	id      uint64
	visible atomic.Bool
	mdl     model.Model

	texturePath string

	transform       common.Transform
	cameraTransform common.Transform
	uvTransform     common.Transform

	color           [4]float32
	lightingEnabled bool
	shininess       float32

	projection    ProjectionKind
	attachedLight light.Light
}

// Entity defines a renderable scene element: a model plus the transform,
// material, and camera state needed to draw it.
//
// After an entity is added to a Scene, mutate it through Scene.SubmitEdit so
// changes land between frames rather than mid-draw.
type Entity interface {
	// ID returns the entity's unique identifier, assigned by the scene.
	//
	// Returns:
	//   - uint64: the entity ID (0 before the entity is added to a scene)
	ID() uint64

	// SetID sets the entity's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Visible returns whether the entity is drawn.
	//
	// Returns:
	//   - bool: true if visible
	Visible() bool

	// SetVisible shows or hides the entity. Hidden entities keep their state
	// but produce no draw call.
	//
	// Parameters:
	//   - visible: true to draw the entity
	SetVisible(visible bool)

	// Model returns the Model associated with this entity, or nil if not set.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// SetModel assigns a Model to this entity.
	//
	// Parameters:
	//   - m: the Model to associate
	SetModel(m model.Model)

	// TexturePath returns the diffuse texture path, or empty for the
	// renderer's white fallback texture.
	//
	// Returns:
	//   - string: the texture path
	TexturePath() string

	// SetTexturePath sets the diffuse texture path.
	//
	// Parameters:
	//   - path: the texture path, or empty for the fallback texture
	SetTexturePath(path string)

	// Transform returns the entity's world transform.
	//
	// Returns:
	//   - common.Transform: scale, rotation, and translation
	Transform() common.Transform

	// SetTransform replaces the entity's world transform.
	//
	// Parameters:
	//   - t: the new transform
	SetTransform(t common.Transform)

	// CameraTransform returns the transform of the camera observing this
	// entity. The view matrix is its inverse.
	//
	// Returns:
	//   - common.Transform: the camera transform
	CameraTransform() common.Transform

	// SetCameraTransform replaces the camera transform.
	//
	// Parameters:
	//   - t: the new camera transform
	SetCameraTransform(t common.Transform)

	// UVTransform returns the texture coordinate transform. Scale and
	// translate apply on the UV plane; only the z rotation component is used.
	//
	// Returns:
	//   - common.Transform: the UV transform
	UVTransform() common.Transform

	// SetUVTransform replaces the texture coordinate transform.
	//
	// Parameters:
	//   - t: the new UV transform
	SetUVTransform(t common.Transform)

	// Color returns the entity's base material color.
	//
	// Returns:
	//   - [4]float32: color as (r, g, b, a)
	Color() [4]float32

	// SetColor sets the entity's base material color.
	//
	// Parameters:
	//   - r, g, b, a: color components
	SetColor(r, g, b, a float32)

	// LightingEnabled returns whether directional lighting is applied to
	// this entity's material.
	//
	// Returns:
	//   - bool: true if lit
	LightingEnabled() bool

	// SetLightingEnabled toggles directional lighting for this entity.
	//
	// Parameters:
	//   - enabled: true to light the entity
	SetLightingEnabled(enabled bool)

	// Shininess returns the specular exponent. Zero disables the specular
	// term entirely.
	//
	// Returns:
	//   - float32: the specular exponent
	Shininess() float32

	// SetShininess sets the specular exponent.
	//
	// Parameters:
	//   - shininess: the specular exponent (0 to disable)
	SetShininess(shininess float32)

	// Projection returns the projection kind used for this entity.
	//
	// Returns:
	//   - ProjectionKind: perspective or orthographic
	Projection() ProjectionKind

	// SetProjection sets the projection kind.
	//
	// Parameters:
	//   - kind: perspective or orthographic
	SetProjection(kind ProjectionKind)

	// Light returns the light overriding the scene light for this entity,
	// or nil to use the scene light.
	//
	// Returns:
	//   - light.Light: the attached light or nil
	Light() light.Light

	// SetLight attaches a per-entity light override. Pass nil to fall back
	// to the scene light.
	//
	// Parameters:
	//   - l: the Light to attach, or nil to detach
	SetLight(l light.Light)
}

var _ Entity = &entity{}

// NewEntity creates a new Entity configured with the given options.
// Defaults are a unit transform, white color, lighting enabled, perspective
// projection, and visible.
//
// Parameters:
//   - options: functional options to configure the entity
//
// Returns:
//   - Entity: the newly created entity
func NewEntity(options ...EntityBuilderOption) Entity {
	e := &entity{
		transform:       common.DefaultTransform(),
		cameraTransform: common.DefaultTransform(),
		uvTransform:     common.DefaultTransform(),
		color:           [4]float32{1, 1, 1, 1},
		lightingEnabled: true,
		projection:      ProjectionPerspective,
	}
	e.visible.Store(true)
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *entity) ID() uint64 {
	return e.id
}

func (e *entity) SetID(id uint64) {
	e.id = id
}

func (e *entity) Visible() bool {
	return e.visible.Load()
}

func (e *entity) SetVisible(visible bool) {
	e.visible.Store(visible)
}

func (e *entity) Model() model.Model {
	return e.mdl
}

func (e *entity) SetModel(m model.Model) {
	e.mdl = m
}

func (e *entity) TexturePath() string {
	return e.texturePath
}

func (e *entity) SetTexturePath(path string) {
	e.texturePath = path
}

func (e *entity) Transform() common.Transform {
	return e.transform
}

func (e *entity) SetTransform(t common.Transform) {
	e.transform = t
}

func (e *entity) CameraTransform() common.Transform {
	return e.cameraTransform
}

func (e *entity) SetCameraTransform(t common.Transform) {
	e.cameraTransform = t
}

func (e *entity) UVTransform() common.Transform {
	return e.uvTransform
}

func (e *entity) SetUVTransform(t common.Transform) {
	e.uvTransform = t
}

func (e *entity) Color() [4]float32 {
	return e.color
}

func (e *entity) SetColor(r, g, b, a float32) {
	e.color = [4]float32{r, g, b, a}
}

func (e *entity) LightingEnabled() bool {
	return e.lightingEnabled
}

func (e *entity) SetLightingEnabled(enabled bool) {
	e.lightingEnabled = enabled
}

func (e *entity) Shininess() float32 {
	return e.shininess
}

func (e *entity) SetShininess(shininess float32) {
	e.shininess = shininess
}

func (e *entity) Projection() ProjectionKind {
	return e.projection
}

func (e *entity) SetProjection(kind ProjectionKind) {
	e.projection = kind
}

func (e *entity) Light() light.Light {
	return e.attachedLight
}

func (e *entity) SetLight(l light.Light) {
	e.attachedLight = l
}
