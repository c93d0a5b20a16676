package cmd

import (
	"io"

	"github.com/achilleasa/meshkit/config"
	"github.com/achilleasa/meshkit/log"
	"github.com/urfave/cli"
)

var logger = log.New("meshkit")

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Configure log verbosity and output. Command line flags take precedence
// over the config file. The returned closer flushes the log file, if any.
func setupLogging(ctx *cli.Context, cfg *config.Config) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	if ctx.GlobalBool("v") {
		level = log.Info
	}

	if ctx.GlobalBool("vv") {
		level = log.Debug
	}
	log.SetLevel(level)

	logFile := cfg.Logging.LogFile
	if ctx.GlobalIsSet("log-file") {
		logFile = ctx.GlobalString("log-file")
	}
	if logFile == "" {
		return nopCloser{}, nil
	}

	return log.SetFileSink(log.DefaultFileSinkConfig(logFile)), nil
}
