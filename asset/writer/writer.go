// Package writer serializes imported models into a compiled format that can
// be loaded back without re-parsing the source.
package writer

import (
	"io"

	"github.com/achilleasa/meshkit/asset/model"
)

// The Writer interface is implemented by all model writers.
type Writer interface {
	// Write model definition
	Write(*model.Model) error
}

// Write model to a zip file.
func WriteModel(m *model.Model, filename string) error {
	return newZipModelWriter(filename).Write(m)
}

// Write model as a zip archive to an arbitrary stream.
func WriteModelTo(m *model.Model, w io.Writer) error {
	return encodeZip(m, w)
}
