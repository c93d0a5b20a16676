package writer

import (
	"archive/zip"
	"encoding/gob"
	"io"
	"os"
	"time"

	"github.com/achilleasa/meshkit/asset/model"
	"github.com/achilleasa/meshkit/log"
)

// Name of the zip entry holding the encoded model. It must match the name
// expected by the zip model reader.
const dataFile = "model.bin"

type zipModelWriter struct {
	logger    log.Logger
	modelFile string
}

// Create a new zip model writer
func newZipModelWriter(modelFile string) *zipModelWriter {
	return &zipModelWriter{
		logger:    log.New("zip writer"),
		modelFile: modelFile,
	}
}

// Write model definition to zip file.
func (w *zipModelWriter) Write(m *model.Model) error {
	w.logger.Noticef("writing compiled model to %s", w.modelFile)
	start := time.Now()

	zipFile, err := os.Create(w.modelFile)
	if err != nil {
		return err
	}

	if err = encodeZip(m, zipFile); err != nil {
		zipFile.Close()
		return err
	}
	if err = zipFile.Close(); err != nil {
		return err
	}

	w.logger.Noticef("compiled model in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}

func encodeZip(m *model.Model, out io.Writer) error {
	zw := zip.NewWriter(out)

	cw, err := zw.Create(dataFile)
	if err != nil {
		zw.Close()
		return err
	}
	if err = gob.NewEncoder(cw).Encode(m); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
