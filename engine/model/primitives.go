package model

import (
	"math"

	"github.com/Carmen-Shannon/lumen-go/common"
)

// DefaultSphereSubdivision is the latitude/longitude band count used by
// NewSphere when no override is given.
const DefaultSphereSubdivision = 16

// NewTriangle creates a unit triangle in the XY plane, facing the camera,
// with texture coordinates covering the full texture.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - Model: the triangle model
func NewTriangle(name string) Model {
	vertices := []common.Vertex{
		{Position: [4]float32{-0.5, -0.5, 0, 1}, Texcoord: [2]float32{0, 1}, Normal: [3]float32{0, 0, -1}},
		{Position: [4]float32{0, 0.5, 0, 1}, Texcoord: [2]float32{0.5, 0}, Normal: [3]float32{0, 0, -1}},
		{Position: [4]float32{0.5, -0.5, 0, 1}, Texcoord: [2]float32{1, 1}, Normal: [3]float32{0, 0, -1}},
	}
	return NewModel(
		WithName(name),
		WithVertices(vertices),
		WithIndices([]uint32{0, 1, 2}),
	)
}

// NewSphere creates a unit UV sphere centered on the origin. Vertices are laid
// out in latitude-major order across subdivision+1 rings of subdivision+1
// points each; normals point radially outward.
//
// Parameters:
//   - name: the model identifier
//   - subdivision: the number of latitude and longitude bands; values < 1
//     fall back to DefaultSphereSubdivision
//
// Returns:
//   - Model: the sphere model
func NewSphere(name string, subdivision int) Model {
	if subdivision < 1 {
		subdivision = DefaultSphereSubdivision
	}
	n := uint32(subdivision)

	lonEvery := 2 * math.Pi / float64(n)
	latEvery := math.Pi / float64(n)

	vertices := make([]common.Vertex, (n+1)*(n+1))
	for lat := uint32(0); lat <= n; lat++ {
		latAngle := -math.Pi/2 + float64(lat)*latEvery
		for lon := uint32(0); lon <= n; lon++ {
			lonAngle := float64(lon) * lonEvery

			x := float32(math.Cos(latAngle) * math.Cos(lonAngle))
			y := float32(math.Sin(latAngle))
			z := float32(math.Cos(latAngle) * math.Sin(lonAngle))

			vertices[lat*(n+1)+lon] = common.Vertex{
				Position: [4]float32{x, y, z, 1},
				Texcoord: [2]float32{float32(lon) / float32(n), 1 - float32(lat)/float32(n)},
				Normal:   [3]float32{x, y, z},
			}
		}
	}

	indices := make([]uint32, 0, n*n*6)
	for lat := uint32(0); lat < n; lat++ {
		for lon := uint32(0); lon < n; lon++ {
			a := lat*(n+1) + lon
			b := (lat+1)*(n+1) + lon
			c := lat*(n+1) + (lon + 1)
			d := (lat+1)*(n+1) + (lon + 1)
			indices = append(indices, a, b, c, c, b, d)
		}
	}

	return NewModel(
		WithName(name),
		WithVertices(vertices),
		WithIndices(indices),
	)
}

// NewSprite creates a screen-space quad anchored at the origin with its top
// left corner at (0, 0) and extending width pixels right and height pixels
// down, for drawing under an orthographic pixel projection.
//
// Parameters:
//   - name: the model identifier
//   - width: the quad width in pixels
//   - height: the quad height in pixels
//
// Returns:
//   - Model: the sprite model
func NewSprite(name string, width, height float32) Model {
	vertices := []common.Vertex{
		{Position: [4]float32{0, height, 0, 1}, Texcoord: [2]float32{0, 1}, Normal: [3]float32{0, 0, -1}},
		{Position: [4]float32{0, 0, 0, 1}, Texcoord: [2]float32{0, 0}, Normal: [3]float32{0, 0, -1}},
		{Position: [4]float32{width, height, 0, 1}, Texcoord: [2]float32{1, 1}, Normal: [3]float32{0, 0, -1}},
		{Position: [4]float32{width, 0, 0, 1}, Texcoord: [2]float32{1, 0}, Normal: [3]float32{0, 0, -1}},
	}
	return NewModel(
		WithName(name),
		WithVertices(vertices),
		WithIndices([]uint32{0, 1, 2, 1, 3, 2}),
	)
}
