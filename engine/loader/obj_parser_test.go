package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const triangleOBJ = `v 1.0 2.0 3.0
v 4.0 5.0 6.0
v 7.0 8.0 9.0
vt 0.0 0.0
vt 0.5 1.0
vt 1.0 0.0
vn 0.0 0.0 1.0
vn 0.0 1.0 0.0
vn 1.0 0.0 0.0
f 1/1/1 2/2/2 3/3/3
`

func TestParseModelReader(t *testing.T) {
	m, err := ParseModelReader(strings.NewReader(triangleOBJ), ".", "triangle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Vertices) != 3 {
		t.Fatalf("got %d vertices, want 3", len(m.Vertices))
	}

	// Face vertices are emitted reversed: third, second, first.
	if m.Vertices[2].Position != [4]float32{-1, 2, 3, 1} {
		t.Fatalf("vertex A position: got %v, want (-1, 2, 3, 1)", m.Vertices[2].Position)
	}
	if m.Vertices[0].Position != [4]float32{-7, 8, 9, 1} {
		t.Fatalf("vertex C position: got %v, want (-7, 8, 9, 1)", m.Vertices[0].Position)
	}
	if m.Vertices[2].Normal != [3]float32{0, 0, 1} {
		t.Fatalf("vertex A normal: got %v", m.Vertices[2].Normal)
	}
	if m.Vertices[0].Normal != [3]float32{-1, 0, 0} {
		t.Fatalf("vertex C normal: got %v, want x negated", m.Vertices[0].Normal)
	}
	if m.Material.DiffuseTexturePath != "" {
		t.Fatalf("expected empty material, got %q", m.Material.DiffuseTexturePath)
	}
}

func TestParseModelTexcoordFlip(t *testing.T) {
	data := `v 0 0 0
vt 0.2 0.8
vn 0 0 1
f 1/1/1 1/1/1 1/1/1
`
	m, err := ParseModelReader(strings.NewReader(data), ".", "flip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Vertices[0].Texcoord != [2]float32{0.2, 0.2} {
		t.Fatalf("got texcoord %v, want (0.2, 0.2)", m.Vertices[0].Texcoord)
	}
}

func TestParseModelIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "index zero",
			data: "v 0 0 0\nvt 0 0\nvn 0 0 1\nf 0/1/1 1/1/1 1/1/1\n",
		},
		{
			name: "index beyond array",
			data: "v 0 0 0\nvt 0 0\nvn 0 0 1\nf 2/1/1 1/1/1 1/1/1\n",
		},
		{
			name: "forward reference",
			data: "v 0 0 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 1/1/1 2/1/1\nv 1 1 1\n",
		},
		{
			name: "texcoord out of range",
			data: "v 0 0 0\nvt 0 0\nvn 0 0 1\nf 1/2/1 1/1/1 1/1/1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseModelReader(strings.NewReader(tt.data), ".", "bad"); !errors.Is(err, ErrIndexOutOfRange) {
				t.Fatalf("got %v, want ErrIndexOutOfRange", err)
			}
		})
	}
}

func TestParseModelUnknownDirectivesTolerated(t *testing.T) {
	data := `# exported by hand
o triangle
s off
usemtl whatever
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
g group1
f 1/1/1 2/1/1 3/1/1
`
	m, err := ParseModelReader(strings.NewReader(data), ".", "tolerant")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Vertices) != 3 {
		t.Fatalf("got %d vertices, want 3", len(m.Vertices))
	}
}

func TestParseModelMalformedFace(t *testing.T) {
	data := "v 0 0 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 1/1/1\n"
	if _, err := ParseModelReader(strings.NewReader(data), ".", "bad"); !errors.Is(err, ErrMalformedFace) {
		t.Fatalf("got %v, want ErrMalformedFace", err)
	}

	data = "v 0 0 0\nvt 0 0\nvn 0 0 1\nf 1/1 1/1 1/1\n"
	if _, err := ParseModelReader(strings.NewReader(data), ".", "bad"); !errors.Is(err, ErrMalformedFace) {
		t.Fatalf("got %v, want ErrMalformedFace", err)
	}
}

func TestParseModelNotFound(t *testing.T) {
	if _, err := ParseModel(t.TempDir(), "missing.obj"); !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("got %v, want ErrAssetNotFound", err)
	}
}

func TestParseModelWithMaterial(t *testing.T) {
	dir := t.TempDir()
	mtl := "newmtl surface\nKd 1.0 1.0 1.0\nmap_Kd checker.png\n"
	if err := os.WriteFile(filepath.Join(dir, "cube.mtl"), []byte(mtl), 0o644); err != nil {
		t.Fatal(err)
	}
	obj := "mtllib cube.mtl\nv 0 0 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 1/1/1 1/1/1\n"
	if err := os.WriteFile(filepath.Join(dir, "cube.obj"), []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := ParseModel(dir, "cube.obj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(dir, "checker.png")
	if m.Material.DiffuseTexturePath != want {
		t.Fatalf("got %q, want %q", m.Material.DiffuseTexturePath, want)
	}
}

func TestParseModelLastMaterialWins(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.mtl"), []byte("map_Kd a.png\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.mtl"), []byte("map_Kd b.png\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	obj := "mtllib a.mtl\nmtllib b.mtl\nv 0 0 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 1/1/1 1/1/1\n"

	m, err := ParseModelReader(strings.NewReader(obj), dir, "multi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(dir, "b.png"); m.Material.DiffuseTexturePath != want {
		t.Fatalf("got %q, want %q", m.Material.DiffuseTexturePath, want)
	}
}

func TestParseModelMissingMaterialLibrary(t *testing.T) {
	obj := "mtllib nope.mtl\nv 0 0 0\n"
	if _, err := ParseModelReader(strings.NewReader(obj), t.TempDir(), "broken"); !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("got %v, want ErrAssetNotFound", err)
	}
}

func TestParseMaterialReaderIgnoresOtherDirectives(t *testing.T) {
	mtl := "newmtl surface\nKa 0 0 0\nKd 1 1 1\nKs 0.5 0.5 0.5\nNs 96\nillum 2\n"
	mat, err := ParseMaterialReader(strings.NewReader(mtl), "assets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mat.DiffuseTexturePath != "" {
		t.Fatalf("got %q, want empty", mat.DiffuseTexturePath)
	}
}
