// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Transform holds the decomposed affine parameters of a scene object. It is
// the source of truth the per-frame matrix rebuild reads from; the matrices
// derived from it are never stored back.
type Transform struct {
	// Scale is the scale factor along each axis.
	Scale [3]float32

	// Rotate is the Euler rotation in radians around each axis.
	Rotate [3]float32

	// Translate is the position offset.
	Translate [3]float32
}

// DefaultTransform returns a Transform with unit scale and zero rotation and
// translation.
//
// Returns:
//   - Transform: the identity-equivalent transform
func DefaultTransform() Transform {
	return Transform{Scale: [3]float32{1, 1, 1}}
}

// Vertex is a single mesh vertex in the layout the vertex shader consumes:
// homogeneous position, texture coordinate, normal. The field order and types
// define the GPU vertex buffer layout, do not reorder.
type Vertex struct {
	// Position is the homogeneous position (x, y, z, w).
	Position [4]float32

	// Texcoord is the texture coordinate (u, v).
	Texcoord [2]float32

	// Normal is the surface normal (x, y, z).
	Normal [3]float32
}

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
type TextureStagingData struct {
	// Pixels is the raw pixel data in RGBA format, 4 bytes per pixel, row-major.
	Pixels []byte

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32
}
