package loader

import (
	"io"
	"path/filepath"

	"github.com/Carmen-Shannon/lumen-go/engine/model"
)

// objLoaderBackendImpl is the implementation of objLoaderBackend.
type objLoaderBackendImpl struct{}

// objLoaderBackend is a loaderBackend implementation for Wavefront OBJ/MTL files.
// It delegates to the OBJ parser for parsing and index resolution.
type objLoaderBackend interface {
	loaderBackend
}

var _ objLoaderBackend = &objLoaderBackendImpl{}

// newOBJLoaderBackend creates a new OBJ loader backend.
//
// Returns:
//   - objLoaderBackend: the loader backend for OBJ/MTL files
func newOBJLoaderBackend() objLoaderBackend {
	return &objLoaderBackendImpl{}
}

func (b *objLoaderBackendImpl) Load(path string) (*model.ImportedModel, error) {
	return ParseModel(filepath.Dir(path), filepath.Base(path))
}

func (b *objLoaderBackendImpl) LoadReader(r io.Reader, directory, name string) (*model.ImportedModel, error) {
	return ParseModelReader(r, directory, name)
}
