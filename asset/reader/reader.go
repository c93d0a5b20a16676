package reader

import (
	"errors"
	"fmt"
	"sort"

	"github.com/achilleasa/meshkit/asset"
	"github.com/achilleasa/meshkit/asset/model"
	"github.com/achilleasa/meshkit/config"
)

// The Importer interface is implemented by all model readers. Each importer
// instance parses exactly one source.
type Importer interface {
	// Load a model from a resource.
	Load(*asset.Resource) (*model.Model, error)
}

var (
	// ErrMissingExtension is returned for model paths without a file extension.
	ErrMissingExtension = errors.New("unknown 3D file format; file extension is missing")

	// ErrUnsupportedFormat is returned when no importer handles an extension.
	ErrUnsupportedFormat = errors.New("unsupported 3D file format")
)

type importerFactory func(config.Options) Importer

// Importers keyed by lower-case file extension.
var importers = map[string]importerFactory{
	"obj": func(opts config.Options) Importer { return newWavefrontReader(opts) },
	"zip": func(config.Options) Importer { return newZipModelReader() },
}

// Return the sorted list of supported file extensions.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(importers))
	for ext := range importers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Select an importer for a model path based on its file extension.
func importerFor(pathToModel string, opts config.Options) (Importer, error) {
	ext := asset.Ext(pathToModel)
	if ext == "" {
		return nil, fmt.Errorf("readModel: %q: %w", pathToModel, ErrMissingExtension)
	}

	factory, exists := importers[ext]
	if !exists {
		return nil, fmt.Errorf("readModel: [%s]: %w", ext, ErrUnsupportedFormat)
	}
	return factory(opts), nil
}

// Read model from a local file or http(s) URL.
func ReadModel(pathToModel string, opts config.Options) (*model.Model, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	importer, err := importerFor(pathToModel, opts)
	if err != nil {
		return nil, err
	}

	res, err := asset.NewResource(pathToModel, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return importer.Load(res)
}

// Read model from an already opened resource. The importer is selected
// using the resource path. The caller remains responsible for closing res.
func Read(res *asset.Resource, opts config.Options) (*model.Model, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	importer, err := importerFor(res.Path(), opts)
	if err != nil {
		return nil, err
	}
	return importer.Load(res)
}
