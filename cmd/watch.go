package cmd

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/achilleasa/meshkit/asset"
	"github.com/achilleasa/meshkit/asset/reader"
	"github.com/achilleasa/meshkit/config"
	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli"
)

// Editors often save a file with several write calls; events arriving within
// this window trigger a single reload.
const reloadDelay = 250 * time.Millisecond

// Re-import a model every time it or one of its material libraries changes.
func WatchModel(ctx *cli.Context) error {
	opts, closer, err := prepare(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()

	if ctx.NArg() != 1 {
		return errors.New("watch expects exactly one model file")
	}

	modelFile, err := filepath.Abs(ctx.Args().First())
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the parent dir so we can survive editors that replace files.
	if err = watcher.Add(filepath.Dir(modelFile)); err != nil {
		return err
	}

	reload(modelFile, opts)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	var reloadCh <-chan time.Time
	for {
		select {
		case <-sigCh:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !triggersReload(event, modelFile) {
				continue
			}
			logger.Debugf("detected change: %s", event)
			reloadCh = time.After(reloadDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warningf("watcher error: %s", err.Error())
		case <-reloadCh:
			reloadCh = nil
			reload(modelFile, opts)
		}
	}
}

// Check whether a file system event affects the watched model. Any change
// to a material library next to the model triggers a reload.
func triggersReload(event fsnotify.Event, modelFile string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}

	if filepath.Clean(event.Name) == modelFile {
		return true
	}
	return asset.Ext(event.Name) == "mtl"
}

func reload(modelFile string, opts config.Options) {
	m, err := reader.ReadModel(modelFile, opts)
	if err != nil {
		logger.Errorf("import failed: %s", err.Error())
		return
	}
	logger.Noticef("model information:\n%s", m.Stats())
}
