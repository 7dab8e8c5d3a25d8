package model

import (
	"github.com/Carmen-Shannon/lumen-go/common"
)

// model is the implementation of the Model interface.
type model struct {
	name     string
	vertices []common.Vertex
	indices  []uint32
	material Material
}

// Model defines the interface for a renderable mesh.
// A Model is an immutable container holding vertex data (and optionally index
// data), plus the material properties parsed alongside it. It is produced by
// the Loader for file-based assets and by the primitive constructors for
// hand-built geometry.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices retrieves the vertex list. For non-indexed models each
	// consecutive triple of vertices is one triangle.
	//
	// Returns:
	//   - []common.Vertex: the vertex list
	Vertices() []common.Vertex

	// Indices retrieves the index list, or nil for non-indexed models.
	//
	// Returns:
	//   - []uint32: the index list or nil
	Indices() []uint32

	// Indexed reports whether this model draws through an index buffer.
	//
	// Returns:
	//   - bool: true if the model has index data
	Indexed() bool

	// Material retrieves the material properties for this model.
	//
	// Returns:
	//   - Material: the material properties
	Material() Material

	// VertexData returns the raw vertex bytes in GPU vertex buffer layout.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index bytes, or nil for non-indexed models.
	//
	// Returns:
	//   - []byte: the index data or nil
	IndexData() []byte

	// VertexCount returns the number of vertices.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// IndexCount returns the number of indices, 0 for non-indexed models.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []common.Vertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) Indexed() bool {
	return len(m.indices) > 0
}

func (m *model) Material() Material {
	return m.material
}

func (m *model) VertexData() []byte {
	return common.SliceToBytes(m.vertices)
}

func (m *model) IndexData() []byte {
	return common.SliceToBytes(m.indices)
}

func (m *model) VertexCount() int {
	return len(m.vertices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}
