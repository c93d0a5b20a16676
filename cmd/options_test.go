package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/achilleasa/meshkit/config"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range ImportFlags {
		f.Apply(set)
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestImportOptionsDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Import.Scale = 3
	cfg.Import.FlatXZ = true

	opts := importOptions(newContext(t), cfg)
	assert.Equal(t, float32(3), opts.Scale)
	assert.True(t, opts.FlatXZ)
	assert.False(t, opts.Polygon)
}

func TestImportOptionsFlagsOverrideConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Import.Scale = 3

	opts := importOptions(newContext(t, "--scale", "0.5", "--poly", "--debug"), cfg)
	assert.Equal(t, float32(0.5), opts.Scale)
	assert.True(t, opts.Polygon)
	assert.True(t, opts.Debug)
	assert.False(t, opts.FlatXZ)
}

func TestCompiledPath(t *testing.T) {
	assert.Equal(t, "models/cube.zip", compiledPath("models/cube.obj"))
	assert.Equal(t, "cube.zip", compiledPath("cube.OBJ"))
}

func TestTriggersReload(t *testing.T) {
	dir := t.TempDir()
	modelFile := filepath.Join(dir, "scene.obj")

	specs := []struct {
		event fsnotify.Event
		exp   bool
	}{
		{fsnotify.Event{Name: modelFile, Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: modelFile, Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: modelFile, Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: filepath.Join(dir, "scene.mtl"), Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: filepath.Join(dir, "other.obj"), Op: fsnotify.Write}, false},
		{fsnotify.Event{Name: filepath.Join(dir, "scene.obj") + string(os.PathSeparator), Op: fsnotify.Write}, true},
	}

	for specIndex, spec := range specs {
		assert.Equal(t, spec.exp, triggersReload(spec.event, modelFile), "spec %d", specIndex)
	}
}
