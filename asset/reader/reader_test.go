package reader

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/meshkit/asset"
	"github.com/achilleasa/meshkit/asset/writer"
	"github.com/achilleasa/meshkit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{"obj", "zip"}, SupportedExtensions())
}

func TestReadModelFormatErrors(t *testing.T) {
	_, err := ReadModel("/models/model", config.DefaultOptions())
	assert.True(t, errors.Is(err, ErrMissingExtension), "got %v", err)

	_, err = ReadModel("/models/model.fbx", config.DefaultOptions())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat), "got %v", err)
	assert.Contains(t, err.Error(), "[fbx]")

	_, err = ReadModel("/models/.obj", config.DefaultOptions())
	assert.True(t, errors.Is(err, ErrMissingExtension), "got %v", err)
}

func TestReadModelMissingFile(t *testing.T) {
	modelFile := filepath.Join(t.TempDir(), "nope.obj")

	m, err := ReadModel(modelFile, config.DefaultOptions())
	require.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), modelFile)
}

func TestReadRejectsInvalidOptions(t *testing.T) {
	opts := config.DefaultOptions()
	opts.Scale = 0

	res := asset.NewResourceFromStream("model.obj", strings.NewReader(triangleObj))
	_, err := Read(res, opts)
	assert.Error(t, err)
}

func TestReadSelectsImporterByExtension(t *testing.T) {
	res := asset.NewResourceFromStream("MODEL.OBJ", strings.NewReader(triangleObj))
	m, err := Read(res, config.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, m.Meshes, 1)
	assert.Equal(t, "MODEL.OBJ", m.Source)
}

func TestCompiledModelRoundTrip(t *testing.T) {
	dir := t.TempDir()
	objFile := writeFile(t, dir, "scene.obj", `
mtllib scene.mtl
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 1
vn 0 0 1
g floor
usemtl red
f 1/1/1 2/2/1 3/1/1 4/2/1
g wall
s 2
f 1 2 3
`)
	writeFile(t, dir, "scene.mtl", "newmtl red\nKd 1 0 0\nmap_Kd red.png\n")

	m, err := ReadModel(objFile, config.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, m.Meshes, 2)
	require.True(t, m.Meshes[0].HasNormals())
	require.False(t, m.Meshes[1].HasNormals())

	zipFile := filepath.Join(dir, "scene.zip")
	require.NoError(t, writer.WriteModel(m, zipFile))

	loaded, err := ReadModel(zipFile, config.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestReadInvalidZip(t *testing.T) {
	res := asset.NewResourceFromStream("broken.zip", strings.NewReader("not a zip file"))
	_, err := Read(res, config.DefaultOptions())
	assert.Error(t, err)
}
