package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gobox3d/pkg/openscad"
	"github.com/philipparndt/gobox3d/pkg/stl"
)

// ErrUnsupportedFormat is returned for files that are neither STL nor OpenSCAD
var ErrUnsupportedFormat = errors.New("unsupported file type (expected .stl or .scad)")

// Load reads a model from an STL file, or renders an OpenSCAD file to a
// temporary STL first
func Load(ctx context.Context, path string) (*stl.Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		return model, nil

	case ".scad":
		return loadSCAD(ctx, path)

	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func loadSCAD(ctx context.Context, path string) (*stl.Model, error) {
	tmp, err := os.CreateTemp("", "gobox_*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary STL: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	renderer := openscad.NewRenderer(filepath.Dir(path))
	if err := renderer.RenderToSTL(ctx, filepath.Base(path), tmp.Name()); err != nil {
		return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
	}

	model, err := stl.Parse(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}
	if model.Name == "" {
		model.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return model, nil
}

// WatchList returns the files whose changes affect the model at path:
// the file itself, plus use/include dependencies for OpenSCAD sources
func WatchList(path string) ([]string, error) {
	if strings.ToLower(filepath.Ext(path)) != ".scad" {
		return []string{path}, nil
	}
	deps, err := openscad.NewRenderer(filepath.Dir(path)).ResolveDependencies(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	return deps, nil
}
