package reader

import (
	"archive/zip"
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"time"

	"github.com/achilleasa/meshkit/asset"
	"github.com/achilleasa/meshkit/asset/model"
	"github.com/achilleasa/meshkit/log"
)

// Name of the zip entry holding the encoded model.
const modelDataFile = "model.bin"

type zipModelReader struct {
	logger log.Logger
}

// Create a new reader for compiled models.
func newZipModelReader() *zipModelReader {
	return &zipModelReader{
		logger: log.New("zip reader"),
	}
}

// Load a compiled model from a zip archive.
func (p *zipModelReader) Load(res *asset.Resource) (*model.Model, error) {
	p.logger.Noticef(`loading compiled model from "%s"`, res.Path())
	start := time.Now()

	// zip package requires a reader implementing ReaderAt. To work around
	// this requirement we read the entire zip file into memory and create
	// a reader from the bytes package that implements ReaderAt
	data, err := io.ReadAll(res)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("zipModelReader: %s: %w", res.Path(), err)
	}

	var m *model.Model
	for _, f := range zr.File {
		if f.Name != modelDataFile {
			p.logger.Warningf("unknown file %s in model zip file; skipping", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		m = &model.Model{}
		err = gob.NewDecoder(rc).Decode(m)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("zipModelReader: failed to load %s: %w", f.Name, err)
		}
	}

	if m == nil {
		return nil, fmt.Errorf("zipModelReader: %s: missing %s", res.Path(), modelDataFile)
	}
	if m.Materials == nil {
		m.Materials = make(map[string]*model.Material)
	}

	p.logger.Noticef("loaded model in %d ms", time.Since(start).Nanoseconds()/1e6)
	return m, nil
}
