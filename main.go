package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/meshkit/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "meshkit"
	app.Usage = "import wavefront models into compact indexed meshes"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load settings from a yaml config file",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "also write logs to a rotated log file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "import",
			Usage: "import models and display their contents",
			Description: `
Parse one or more model files and print a summary of the generated meshes,
their attribute counts and bound materials.

Wavefront obj files and compiled zip files are supported.`,
			ArgsUsage: "model1.obj model2.zip ...",
			Flags:     cmd.ImportFlags,
			Action:    cmd.ImportModel,
		},
		{
			Name:  "compile",
			Usage: "compile wavefront models into a binary compressed format",
			Description: `
Parse a model from a wavefront obj file and its material libraries and write
the resulting meshes and materials to a zip archive next to the source file.

The compiled model can be supplied as an argument to the import command.`,
			ArgsUsage: "model1.obj model2.obj ...",
			Flags:     cmd.ImportFlags,
			Action:    cmd.CompileModel,
		},
		{
			Name:  "watch",
			Usage: "re-import a model whenever it changes",
			Description: `
Import a wavefront model and keep watching its folder. The model is imported
again each time it or a material library next to it is modified.`,
			ArgsUsage: "model.obj",
			Flags:     cmd.ImportFlags,
			Action:    cmd.WatchModel,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
