package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestLoadReader(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	staging, err := LoadReader(bytes.NewReader(encodePNG(t, img)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if staging.Width != 2 || staging.Height != 2 {
		t.Fatalf("expected 2x2, got %dx%d", staging.Width, staging.Height)
	}
	if len(staging.Pixels) != 2*2*4 {
		t.Fatalf("expected 16 pixel bytes, got %d", len(staging.Pixels))
	}
	if staging.Pixels[0] != 255 || staging.Pixels[3] != 255 {
		t.Fatal("expected red pixel at origin")
	}
}

func TestLoadReaderPalettedConvertsToRGBA(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 4, 1), color.Palette{
		color.RGBA{A: 255},
		color.RGBA{G: 255, A: 255},
	})
	img.SetColorIndex(2, 0, 1)

	staging, err := LoadReader(bytes.NewReader(encodePNG(t, img)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(staging.Pixels) != 4*1*4 {
		t.Fatalf("expected 16 pixel bytes, got %d", len(staging.Pixels))
	}
	if staging.Pixels[2*4+1] != 255 {
		t.Fatal("expected green pixel at x=2")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "white.png")
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	if err := os.WriteFile(path, encodePNG(t, img), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	staging, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if staging.Width != 1 || staging.Height != 1 {
		t.Fatalf("expected 1x1, got %dx%d", staging.Width, staging.Height)
	}
}

func TestLoadTGAByExtension(t *testing.T) {
	// Uncompressed true-color 2x1 TGA, top-left origin: red then green.
	// TGA has no magic bytes, so this must route through the extension check
	// rather than the sniffer.
	raw := []byte{
		0, 0, 2,
		0, 0, 0, 0, 0,
		0, 0, 0, 0,
		2, 0, 1, 0,
		24, 0x20,
		0, 0, 255,
		0, 255, 0,
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "decal.tga")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	staging, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if staging.Width != 2 || staging.Height != 1 {
		t.Fatalf("expected 2x1, got %dx%d", staging.Width, staging.Height)
	}
	if staging.Pixels[0] != 255 || staging.Pixels[1] != 0 {
		t.Fatal("expected red pixel at origin")
	}
	if staging.Pixels[4] != 0 || staging.Pixels[5] != 255 {
		t.Fatal("expected green pixel at x=1")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrTextureNotFound) {
		t.Fatalf("expected ErrTextureNotFound, got %v", err)
	}
}

func TestLoadReaderRejectsGarbage(t *testing.T) {
	if _, err := LoadReader(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatal("expected decode error")
	}
}
