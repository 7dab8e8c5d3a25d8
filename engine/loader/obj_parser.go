package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/model"
)

var (
	ErrAssetNotFound   = errors.New("asset file could not be opened")
	ErrIndexOutOfRange = errors.New("face index out of range")
	ErrMalformedFace   = errors.New("malformed face directive")
	ErrMalformedNumber = errors.New("malformed numeric token")
)

// ParseModel parses a Wavefront OBJ file into an ImportedModel.
//
// Only the v, vt, vn, f and mtllib directives are interpreted; any other
// directive is skipped without error. Faces must be triangles with full
// a/b/c index triples. The parse applies the engine's coordinate convention:
// position and normal x components are negated, texcoord v is flipped, and
// each face's vertices are emitted in reverse declaration order to flip the
// winding to match.
//
// Parameters:
//   - directory: the directory containing the file, also used to resolve
//     mtllib references
//   - filename: the file name within directory
//
// Returns:
//   - *model.ImportedModel: the parsed model
//   - error: ErrAssetNotFound if the file cannot be opened, or a parse error
func ParseModel(directory, filename string) (*model.ImportedModel, error) {
	path := filepath.Join(directory, filename)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
	}
	defer f.Close()

	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	return ParseModelReader(f, directory, name)
}

// ParseModelReader parses Wavefront OBJ data from a reader. Relative mtllib
// references are resolved against directory.
//
// Parameters:
//   - r: the reader providing OBJ text
//   - directory: the directory mtllib references resolve against
//   - name: the identifier to give the resulting model
//
// Returns:
//   - *model.ImportedModel: the parsed model
//   - error: a parse error annotated with the offending line number
func ParseModelReader(r io.Reader, directory, name string) (*model.ImportedModel, error) {
	imported := &model.ImportedModel{Name: name}

	var positions [][4]float32
	var texcoords [][2]float32
	var normals [][3]float32

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, [4]float32{-p[0], p[1], p[2], 1})
		case "vt":
			t, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			texcoords = append(texcoords, [2]float32{t[0], 1 - t[1]})
		case "vn":
			n, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			normals = append(normals, [3]float32{-n[0], n[1], n[2]})
		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: %w: want 3 vertex references, got %d", lineNo, ErrMalformedFace, len(fields)-1)
			}
			var triangle [3]common.Vertex
			for i, ref := range fields[1:4] {
				v, err := resolveFaceReference(ref, positions, texcoords, normals)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				triangle[i] = v
			}
			// Reversed emission flips the winding order to match the
			// negated-x coordinate convention.
			imported.Vertices = append(imported.Vertices, triangle[2], triangle[1], triangle[0])
		case "mtllib":
			if len(fields) < 2 {
				continue
			}
			mat, err := ParseMaterial(directory, fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			imported.Material = *mat
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read model data: %w", err)
	}

	return imported, nil
}

// ParseMaterial parses a Wavefront MTL file into a Material.
//
// Only the map_Kd directive is interpreted; its argument is resolved relative
// to the material file's directory. Every other directive is skipped.
//
// Parameters:
//   - directory: the directory containing the file
//   - filename: the file name within directory
//
// Returns:
//   - *model.Material: the parsed material
//   - error: ErrAssetNotFound if the file cannot be opened
func ParseMaterial(directory, filename string) (*model.Material, error) {
	path := filepath.Join(directory, filename)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
	}
	defer f.Close()

	return ParseMaterialReader(f, directory)
}

// ParseMaterialReader parses Wavefront MTL data from a reader. Texture
// references are resolved against directory.
//
// Parameters:
//   - r: the reader providing MTL text
//   - directory: the directory texture references resolve against
//
// Returns:
//   - *model.Material: the parsed material
//   - error: a read error if the stream fails
func ParseMaterialReader(r io.Reader, directory string) (*model.Material, error) {
	mat := &model.Material{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		if fields[0] == "map_Kd" {
			mat.DiffuseTexturePath = filepath.Join(directory, fields[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read material data: %w", err)
	}

	return mat, nil
}

// resolveFaceReference decomposes a 1-based a/b/c face reference and looks up
// the referenced position, texcoord and normal. Indices must refer to
// attributes declared on earlier lines; anything else is out of range.
func resolveFaceReference(ref string, positions [][4]float32, texcoords [][2]float32, normals [][3]float32) (common.Vertex, error) {
	parts := strings.Split(ref, "/")
	if len(parts) != 3 {
		return common.Vertex{}, fmt.Errorf("%w: reference %q", ErrMalformedFace, ref)
	}

	indices := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return common.Vertex{}, fmt.Errorf("%w: reference %q", ErrMalformedFace, ref)
		}
		indices[i] = n - 1
	}

	if indices[0] < 0 || indices[0] >= len(positions) {
		return common.Vertex{}, fmt.Errorf("%w: position index %d of %d", ErrIndexOutOfRange, indices[0]+1, len(positions))
	}
	if indices[1] < 0 || indices[1] >= len(texcoords) {
		return common.Vertex{}, fmt.Errorf("%w: texcoord index %d of %d", ErrIndexOutOfRange, indices[1]+1, len(texcoords))
	}
	if indices[2] < 0 || indices[2] >= len(normals) {
		return common.Vertex{}, fmt.Errorf("%w: normal index %d of %d", ErrIndexOutOfRange, indices[2]+1, len(normals))
	}

	return common.Vertex{
		Position: positions[indices[0]],
		Texcoord: texcoords[indices[1]],
		Normal:   normals[indices[2]],
	}, nil
}

// parseFloats parses exactly count float tokens.
func parseFloats(fields []string, count int) ([]float32, error) {
	if len(fields) < count {
		return nil, fmt.Errorf("%w: want %d values, got %d", ErrMalformedNumber, count, len(fields))
	}
	out := make([]float32, count)
	for i := range count {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNumber, fields[i])
		}
		out[i] = float32(v)
	}
	return out, nil
}
