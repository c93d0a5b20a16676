package cmd

import (
	"errors"

	"github.com/achilleasa/meshkit/asset/reader"
	"github.com/urfave/cli"
)

// Import one or more models and display their contents.
func ImportModel(ctx *cli.Context) error {
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
		m, err := reader.ReadModel(modelFile, opts)
		if err != nil {
			return err
		}

		logger.Noticef("model information:\n%s", m.Stats())
	}

	return nil
}
