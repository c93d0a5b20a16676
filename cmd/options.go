package cmd

import (
	"io"

	"github.com/achilleasa/meshkit/config"
	"github.com/urfave/cli"
)

// Flags shared by all commands that import models.
var ImportFlags = []cli.Flag{
	cli.Float64Flag{
		Name:  "scale, s",
		Value: 1.0,
		Usage: "uniform scale applied to all vertex positions",
	},
	cli.BoolFlag{
		Name:  "flat-xz",
		Usage: "derive texture coordinates from the X/Z vertex coordinates",
	},
	cli.BoolFlag{
		Name:  "poly",
		Usage: "preserve polygonal faces instead of triangulating them",
	},
	cli.BoolFlag{
		Name:  "debug",
		Usage: "log parse progress and per-mesh statistics",
	},
}

// Load the config file passed via the global config flag or fall back to
// the defaults.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfgFile := ctx.GlobalString("config")
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

// Merge command flags into the import options loaded from the config file.
func importOptions(ctx *cli.Context, cfg *config.Config) config.Options {
	opts := cfg.Import
	if ctx.IsSet("scale") {
		opts.Scale = float32(ctx.Float64("scale"))
	}
	if ctx.Bool("flat-xz") {
		opts.FlatXZ = true
	}
	if ctx.Bool("poly") {
		opts.Polygon = true
	}
	if ctx.Bool("debug") {
		opts.Debug = true
	}
	return opts
}

// Load config, set up logging and build the import options for a command.
func prepare(ctx *cli.Context) (config.Options, io.Closer, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return config.Options{}, nil, err
	}

	closer, err := setupLogging(ctx, cfg)
	if err != nil {
		return config.Options{}, nil, err
	}

	opts := importOptions(ctx, cfg)
	if err = opts.Validate(); err != nil {
		closer.Close()
		return config.Options{}, nil, err
	}
	return opts, closer, nil
}
