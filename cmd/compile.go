package cmd

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/achilleasa/meshkit/asset"
	"github.com/achilleasa/meshkit/asset/reader"
	"github.com/achilleasa/meshkit/asset/writer"
	"github.com/urfave/cli"
)

// Compile models to binary format.
func CompileModel(ctx *cli.Context) error {
	opts, closer, err := prepare(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()

	if ctx.NArg() == 0 {
		return errors.New("missing model file")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		modelFile := ctx.Args().Get(idx)
		if asset.Ext(modelFile) != "obj" {
			logger.Warningf("skipping unsupported file %s", modelFile)
			continue
		}

		logger.Noticef("parsing and compiling model: %s", modelFile)
		m, err := reader.ReadModel(modelFile, opts)
		if err != nil {
			return err
		}

		// Display compiled model info
		logger.Noticef("model information:\n%s", m.Stats())

		if err = writer.WriteModel(m, compiledPath(modelFile)); err != nil {
			return err
		}
	}

	return nil
}

// Get the output file for a compiled model.
func compiledPath(modelFile string) string {
	return strings.TrimSuffix(modelFile, filepath.Ext(modelFile)) + ".zip"
}
