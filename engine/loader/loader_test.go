package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTriangleOBJ(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.obj")
	if err := os.WriteFile(path, []byte(triangleOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderLoadAndCache(t *testing.T) {
	path := writeTriangleOBJ(t)
	l := NewLoader(BackendTypeOBJ)

	m, err := l.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name() != "tri" {
		t.Fatalf("got name %q, want %q", m.Name(), "tri")
	}
	if m.VertexCount() != 3 {
		t.Fatalf("got %d vertices, want 3", m.VertexCount())
	}

	again, err := l.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != m {
		t.Fatal("second load did not return the cached model")
	}
	if l.Get(path) != m {
		t.Fatal("Get did not return the cached model")
	}
}

func TestLoaderUnsupportedFormat(t *testing.T) {
	l := NewLoader(BackendTypeOBJ)
	if _, err := l.Load("model.fbx"); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestLoaderLoadReader(t *testing.T) {
	l := NewLoader(BackendTypeOBJ)
	m, err := l.LoadReader("stream", strings.NewReader(triangleOBJ), ".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.VertexCount() != 3 {
		t.Fatalf("got %d vertices, want 3", m.VertexCount())
	}
	if l.Get("stream") != m {
		t.Fatal("reader-loaded model not cached under its name")
	}
}

func TestLoaderPreload(t *testing.T) {
	paths := make([]string, 0, 4)
	for range 4 {
		paths = append(paths, writeTriangleOBJ(t))
	}

	l := NewLoader(BackendTypeOBJ, WithLoadWorkers(2))
	if err := l.Preload(paths...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(l.Models()); got != len(paths) {
		t.Fatalf("cached %d models, want %d", got, len(paths))
	}
}

func TestLoaderPreloadPropagatesFailures(t *testing.T) {
	good := writeTriangleOBJ(t)
	bad := filepath.Join(t.TempDir(), "missing.obj")

	l := NewLoader(BackendTypeOBJ)
	if err := l.Preload(good, bad); err == nil {
		t.Fatal("expected an error for the missing file")
	}
	if l.Get(good) == nil {
		t.Fatal("successful load should still be cached")
	}
}
