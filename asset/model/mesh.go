package model

import (
	"github.com/achilleasa/meshkit/types"
)

// The MeshKind specifies how the faces of a mesh are organized.
type MeshKind uint8

// The supported mesh kinds.
const (
	// Every face is a triangle.
	TriangleMesh MeshKind = iota

	// Faces keep the corner count they were defined with.
	PolygonMesh
)

func (k MeshKind) String() string {
	switch k {
	case TriangleMesh:
		return "triangle"
	case PolygonMesh:
		return "polygon"
	}
	return "unknown"
}

// A Face references the compact buffers of its mesh. Points and TexCoords
// always have the same length; Normals is either nil or of the same length.
type Face struct {
	Points    []int32
	TexCoords []int32
	Normals   []int32
}

// A Mesh is a compact, locally indexed piece of geometry.
type Mesh struct {
	// Unique name within the imported model.
	Name string

	Kind MeshKind

	Points    []types.Vec3
	TexCoords []types.Vec2

	// Explicit normals. This is nil when at least one face corner of the
	// mesh did not reference a valid normal.
	Normals []types.Vec3

	Faces []Face

	// Smoothing group bitmask for each face.
	SmoothingGroups []int32

	// Key of the bound material in the model material map.
	MaterialName string
}

// Returns true if the mesh carries explicit normals.
func (m *Mesh) HasNormals() bool {
	return m.Normals != nil
}

// Count the distinct non-zero smoothing groups used by the mesh faces.
func (m *Mesh) NumSmoothingGroups() int {
	seen := make(map[int32]struct{})
	for _, group := range m.SmoothingGroups {
		if group != 0 {
			seen[group] = struct{}{}
		}
	}
	return len(seen)
}

// Get mesh bounding box.
func (m *Mesh) BBox() [2]types.Vec3 {
	if len(m.Points) == 0 {
		return [2]types.Vec3{}
	}

	bbox := [2]types.Vec3{m.Points[0], m.Points[0]}
	for _, p := range m.Points[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < bbox[0][axis] {
				bbox[0][axis] = p[axis]
			}
			if p[axis] > bbox[1][axis] {
				bbox[1][axis] = p[axis]
			}
		}
	}
	return bbox
}
