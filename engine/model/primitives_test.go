package model

import (
	"math"
	"testing"
)

func TestNewTriangle(t *testing.T) {
	m := NewTriangle("tri")
	if m.VertexCount() != 3 || m.IndexCount() != 3 {
		t.Fatalf("got %d vertices, %d indices", m.VertexCount(), m.IndexCount())
	}
	if !m.Indexed() {
		t.Fatal("triangle should be indexed")
	}
	for _, v := range m.Vertices() {
		if v.Normal != [3]float32{0, 0, -1} {
			t.Fatalf("unexpected normal: %v", v.Normal)
		}
	}
}

func TestNewSphere(t *testing.T) {
	const n = 16
	m := NewSphere("sphere", n)

	wantVertices := (n + 1) * (n + 1)
	wantIndices := n * n * 6
	if m.VertexCount() != wantVertices {
		t.Fatalf("got %d vertices, want %d", m.VertexCount(), wantVertices)
	}
	if m.IndexCount() != wantIndices {
		t.Fatalf("got %d indices, want %d", m.IndexCount(), wantIndices)
	}

	for i, v := range m.Vertices() {
		r := math.Sqrt(float64(v.Position[0]*v.Position[0] + v.Position[1]*v.Position[1] + v.Position[2]*v.Position[2]))
		if math.Abs(r-1) > 1e-5 {
			t.Fatalf("vertex %d not on unit sphere: radius %v", i, r)
		}
		if v.Normal != [3]float32{v.Position[0], v.Position[1], v.Position[2]} {
			t.Fatalf("vertex %d normal not radial: %v", i, v.Normal)
		}
	}

	for i, idx := range m.Indices() {
		if int(idx) >= wantVertices {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}
}

func TestNewSphereDefaultSubdivision(t *testing.T) {
	m := NewSphere("sphere", 0)
	want := (DefaultSphereSubdivision + 1) * (DefaultSphereSubdivision + 1)
	if m.VertexCount() != want {
		t.Fatalf("got %d vertices, want %d", m.VertexCount(), want)
	}
}

func TestNewSprite(t *testing.T) {
	m := NewSprite("sprite", 640, 360)
	if m.VertexCount() != 4 || m.IndexCount() != 6 {
		t.Fatalf("got %d vertices, %d indices", m.VertexCount(), m.IndexCount())
	}
	verts := m.Vertices()
	if verts[0].Position != [4]float32{0, 360, 0, 1} || verts[3].Position != [4]float32{640, 0, 0, 1} {
		t.Fatalf("unexpected corner positions: %v, %v", verts[0].Position, verts[3].Position)
	}
	want := []uint32{0, 1, 2, 1, 3, 2}
	for i, idx := range m.Indices() {
		if idx != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, idx, want[i])
		}
	}
}

func TestVertexData(t *testing.T) {
	m := NewTriangle("tri")
	// 4 position + 2 texcoord + 3 normal floats per vertex.
	wantLen := m.VertexCount() * 9 * 4
	if got := len(m.VertexData()); got != wantLen {
		t.Fatalf("vertex data length %d, want %d", got, wantLen)
	}
	if got := len(m.IndexData()); got != m.IndexCount()*4 {
		t.Fatalf("index data length %d, want %d", got, m.IndexCount()*4)
	}
}
