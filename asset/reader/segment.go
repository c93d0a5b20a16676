package reader

import (
	"fmt"

	"github.com/achilleasa/meshkit/asset/model"
	"github.com/achilleasa/meshkit/asset/smoothing"
	"github.com/achilleasa/meshkit/types"
)

// Convert the pending faces into a mesh, register it under a unique name and
// reset the pending segment. Nothing is emitted when no faces are pending.
func (r *wavefrontReader) emitSegment() error {
	if len(r.pending) == 0 {
		return nil
	}

	mesh, err := buildSegmentMesh(r.mode.meshKind(), r.pending, &r.attrs)
	if err != nil {
		return fmt.Errorf("could not build mesh %q: %w", r.key, err)
	}
	r.pending = nil

	mesh.Name = r.uniqueMeshName(r.key)
	mat := r.activeMaterial()
	r.model.AddMesh(mesh, mat)

	r.debugf(
		"added mesh '%s' of %d vertices, %d uvs, %d faces, %d smoothing groups (material: %s, explicit normals: %t)",
		mesh.Name, len(mesh.Points), len(mesh.TexCoords), len(mesh.Faces), mesh.NumSmoothingGroups(), mat.Name, mesh.HasNormals(),
	)
	return nil
}

// Get a mesh name that is not already in use by appending " (2)", " (3)"...
// to the key.
func (r *wavefrontReader) uniqueMeshName(key string) string {
	name := key
	for index := 2; r.meshNames[name]; index++ {
		name = fmt.Sprintf("%s (%d)", key, index)
	}
	r.meshNames[name] = true
	return name
}

// Build a compact mesh from faces that reference the global attribute store.
// Only referenced coordinates are copied and each distinct global index is
// mapped to a local index in order of first use.
//
// If any corner lacks a valid normal the mesh gets no normals and keeps the
// smoothing groups that were active when its faces were parsed. Otherwise
// smoothing groups are derived from the normals.
func buildSegmentMesh(kind model.MeshKind, faces []pendingFace, attrs *attributeStore) (*model.Mesh, error) {
	mesh := &model.Mesh{
		Kind:      kind,
		Points:    make([]types.Vec3, 0),
		TexCoords: make([]types.Vec2, 0),
		Faces:     make([]model.Face, len(faces)),
	}

	vertexMap := make(map[int]int32)
	uvMap := make(map[int]int32)
	normalMap := make(map[int]int32)
	normals := make([]types.Vec3, 0)
	faceNormals := make([][]int32, len(faces))
	useNormals := true

	for faceIndex, face := range faces {
		numCorners := len(face.corners)
		out := model.Face{
			Points:    make([]int32, numCorners),
			TexCoords: make([]int32, numCorners),
		}
		faceNormals[faceIndex] = make([]int32, numCorners)

		for cornerIndex, c := range face.corners {
			local, seen := vertexMap[c.v]
			if !seen {
				if c.v < 0 || c.v >= len(attrs.positions) {
					return nil, fmt.Errorf("face %d references undefined vertex %d; %d vertices defined", faceIndex, c.v+1, len(attrs.positions))
				}
				local = int32(len(mesh.Points))
				vertexMap[c.v] = local
				mesh.Points = append(mesh.Points, attrs.positions[c.v])
			}
			out.Points[cornerIndex] = local

			// All missing uvs share a single zero placeholder.
			uvKey := c.t
			if uvKey < 0 {
				uvKey = -1
			}
			local, seen = uvMap[uvKey]
			if !seen {
				uv := types.Vec2{}
				if uvKey >= 0 {
					if uvKey >= len(attrs.texCoords) {
						return nil, fmt.Errorf("face %d references undefined tex coord %d; %d tex coords defined", faceIndex, c.t+1, len(attrs.texCoords))
					}
					uv = attrs.texCoords[uvKey]
				}
				local = int32(len(mesh.TexCoords))
				uvMap[uvKey] = local
				mesh.TexCoords = append(mesh.TexCoords, uv)
			}
			out.TexCoords[cornerIndex] = local

			if !useNormals {
				continue
			}
			local, seen = normalMap[c.n]
			if !seen {
				if c.n < 0 || c.n >= len(attrs.normals) {
					useNormals = false
					continue
				}
				local = int32(len(normals))
				normalMap[c.n] = local
				normals = append(normals, attrs.normals[c.n])
			}
			faceNormals[faceIndex][cornerIndex] = local
		}

		mesh.Faces[faceIndex] = out
	}

	if !useNormals {
		mesh.SmoothingGroups = make([]int32, len(faces))
		for faceIndex, face := range faces {
			mesh.SmoothingGroups[faceIndex] = face.smoothGroup
		}
		return mesh, nil
	}

	facePoints := make([][]int32, len(faces))
	for faceIndex := range mesh.Faces {
		mesh.Faces[faceIndex].Normals = faceNormals[faceIndex]
		facePoints[faceIndex] = mesh.Faces[faceIndex].Points
	}
	mesh.Normals = normals
	mesh.SmoothingGroups = smoothing.CalcSmoothGroups(facePoints, faceNormals, normals)
	return mesh, nil
}
