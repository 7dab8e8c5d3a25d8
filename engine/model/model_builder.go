package model

import (
	"github.com/Carmen-Shannon/lumen-go/common"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the vertex list of the Model.
//
// Parameters:
//   - vertices: the vertex list to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []common.Vertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the index list of the Model.
//
// Parameters:
//   - indices: the index list to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}

// WithMaterial is an option builder that sets the material properties of the Model.
//
// Parameters:
//   - material: the material properties to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the material option to a model
func WithMaterial(material Material) ModelBuilderOption {
	return func(m *model) {
		m.material = material
	}
}
