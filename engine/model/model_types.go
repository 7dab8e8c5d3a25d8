package model

import (
	"github.com/Carmen-Shannon/lumen-go/common"
)

// Material holds the CPU-side material properties parsed from a material
// library file.
type Material struct {
	// DiffuseTexturePath is the resolved path to the diffuse texture, or
	// empty when the model declares no material.
	DiffuseTexturePath string
}

// ImportedModel is the CPU-side result of a model file import, before any
// GPU resources exist. The loader produces it; NewModel consumes it.
type ImportedModel struct {
	// Name is the model identifier, usually derived from the file name.
	Name string

	// Vertices is the flat triangle list. Its length is always a multiple
	// of three; each consecutive triple is one triangle.
	Vertices []common.Vertex

	// Material holds the parsed material properties.
	Material Material
}
