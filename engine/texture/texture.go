package texture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/ftrvxmtrx/tga"

	// Register sniffable decoders for the image formats the asset pipeline
	// produces. TGA carries no magic bytes and cannot be sniffed, so it is
	// decoded by file extension in Load instead of registered here; putting
	// it in the sniffer would shadow every other format.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrTextureNotFound is returned when the texture file does not exist or cannot be opened.
var ErrTextureNotFound = errors.New("texture not found")

// Load reads and decodes an image file into RGBA staging data ready for GPU upload.
// The format is detected from the file contents, except for .tga files which
// are decoded by extension because the format has no magic bytes.
// Reference: https://pkg.go.dev/image
//
// Parameters:
//   - path: path to the image file
//
// Returns:
//   - common.TextureStagingData: decoded RGBA pixels with dimensions
//   - error: error if the file cannot be opened or decoded
func Load(path string) (common.TextureStagingData, error) {
	file, err := os.Open(path)
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("%w: %s", ErrTextureNotFound, path)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err := tga.Decode(file)
		if err != nil {
			return common.TextureStagingData{}, fmt.Errorf("failed to decode texture file %s: %w", path, err)
		}
		return toStaging(img), nil
	}

	staging, err := LoadReader(file)
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("failed to decode texture file %s: %w", path, err)
	}
	return staging, nil
}

// LoadReader decodes an image stream into RGBA staging data. The format is
// sniffed from the stream's magic bytes; TGA streams must go through Load.
//
// Parameters:
//   - r: reader positioned at the start of the image data
//
// Returns:
//   - common.TextureStagingData: decoded RGBA pixels with dimensions
//   - error: error if decoding fails
func LoadReader(r io.Reader) (common.TextureStagingData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("failed to decode image: %w", err)
	}
	return toStaging(img), nil
}

// toStaging converts any decoded image to tightly packed RGBA pixels.
func toStaging(img image.Image) common.TextureStagingData {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	return common.TextureStagingData{
		Pixels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}
}
