package loader

import (
	"io"

	"github.com/Carmen-Shannon/lumen-go/engine/model"
)

// loaderBackend defines the generic interface for loading models from files or streams.
// Concrete implementations (e.g., objLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Load performs a full model import from the given file path, including
	// any material library the model references.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *model.ImportedModel: the imported model data
	//   - error: error if loading fails
	Load(path string) (*model.ImportedModel, error)

	// LoadReader imports a model from a reader stream. Material library
	// references are resolved against the given directory.
	//
	// Parameters:
	//   - r: the reader providing model data
	//   - directory: the directory material references resolve against
	//   - name: the identifier to give the resulting model
	//
	// Returns:
	//   - *model.ImportedModel: the imported model data
	//   - error: error if loading fails
	LoadReader(r io.Reader, directory, name string) (*model.ImportedModel, error)
}
