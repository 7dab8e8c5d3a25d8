package model

// GPU-facing uniform structs. Field order, types and explicit padding define
// the byte layout the shaders read; reordering any field is a breaking change.
// Matrices are stored as flat 16-element arrays in row-major order.

// TransformationMatrix is the per-object transform uniform: the combined
// world-view-projection matrix plus the world matrix on its own for
// world-space lighting math.
type TransformationMatrix struct {
	WVP   [16]float32
	World [16]float32
}

// GPUMaterial is the per-object material uniform.
type GPUMaterial struct {
	// Color is the base color multiplier (RGBA).
	Color [4]float32

	// EnableLighting selects lit (non-zero) or unlit shading.
	EnableLighting int32
	_              [3]int32

	// UVTransform remaps texture coordinates before sampling, used for
	// sprite texture scrolling.
	UVTransform [16]float32

	// Shininess is the specular exponent for lit shading.
	Shininess float32
	_         [3]float32
}

// GPUDirectionalLight is the scene light uniform.
type GPUDirectionalLight struct {
	// Color is the light color (RGBA).
	Color [4]float32

	// Direction is the direction the light travels, in world space.
	Direction [3]float32

	// Intensity scales the light contribution.
	Intensity float32
}

// GPUCamera is the camera uniform consumed by specular lighting.
type GPUCamera struct {
	// WorldPosition is the camera position in world space.
	WorldPosition [3]float32
	_             float32
}
