package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/achilleasa/meshkit/asset/model"
)

// A corner holds the zero-based global vertex, texture coordinate and normal
// indices of one face point. A negative texture coordinate or normal index
// means the attribute was not provided.
type corner struct {
	v, t, n int
}

// A pendingFace is a face waiting for the next segment emission.
type pendingFace struct {
	corners     []corner
	smoothGroup int32
}

// The faceMode selects how parsed faces are stored in the pending segment.
type faceMode uint8

const (
	// Split faces into a fan of triangles around their first corner.
	triangulateFan faceMode = iota

	// Keep faces with all their corners.
	preservePolygon
)

// Get the kind of mesh produced by this mode.
func (m faceMode) meshKind() model.MeshKind {
	if m == preservePolygon {
		return model.PolygonMesh
	}
	return model.TriangleMesh
}

// Split the corners of a parsed face into the faces stored for it. Fan
// triangulation of an n corner face yields n-2 triangles.
func (m faceMode) split(corners []corner) [][]corner {
	if m == preservePolygon {
		return [][]corner{corners}
	}

	faces := make([][]corner, 0, len(corners)-2)
	for i := 1; i < len(corners)-1; i++ {
		faces = append(faces, []corner{corners[0], corners[i], corners[i+1]})
	}
	return faces
}

// Parse face definition. Each face definition consists of 3 or more
// arguments, one for each corner. Each corner argument is comprised of
// 1, 2 or 3 indices separated by a slash character. The following formats are
// supported:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
//
// Indices start from 1 and may be negative to indicate an offset off the end
// of the coordinate lists as they stand when the face is parsed. If any
// corner omits the uv or normal index then the attribute is dropped for the
// entire face.
func (r *wavefrontReader) parseFace(args string) error {
	tokens := strings.Fields(args)
	if len(tokens) < 3 {
		return argCountError(directiveFace.String(), "at least 3 arguments", len(tokens))
	}

	corners := make([]corner, len(tokens))
	uvProvided, normalProvided := true, true
	for arg, token := range tokens {
		indexTokens := strings.Split(token, "/")
		if len(indexTokens) > 3 {
			return fmt.Errorf("face argument %d contains %d indices; expected at most 3", arg, len(indexTokens))
		}

		// Faces must at least define a vertex coord
		if indexTokens[0] == "" {
			return fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		index, err := parseFaceIndex(indexTokens[0])
		if err != nil {
			return fmt.Errorf("could not parse vertex coord for face argument %d: %w", arg, err)
		}
		corners[arg].v = resolveFaceIndex(index, len(r.attrs.positions))

		corners[arg].t = -1
		if len(indexTokens) > 1 && indexTokens[1] != "" {
			index, err = parseFaceIndex(indexTokens[1])
			if err != nil {
				return fmt.Errorf("could not parse tex coord for face argument %d: %w", arg, err)
			}
			corners[arg].t = resolveFaceIndex(index, len(r.attrs.texCoords))
		}
		if corners[arg].t < 0 {
			uvProvided = false
		}

		corners[arg].n = -1
		if len(indexTokens) > 2 && indexTokens[2] != "" {
			index, err = parseFaceIndex(indexTokens[2])
			if err != nil {
				return fmt.Errorf("could not parse normal coord for face argument %d: %w", arg, err)
			}
			corners[arg].n = resolveFaceIndex(index, len(r.attrs.normals))
		}
		if corners[arg].n < 0 {
			normalProvided = false
		}
	}

	for arg := range corners {
		switch {
		case r.opts.FlatXZ:
			// Texture coordinates were generated in lockstep with the vertices.
			corners[arg].t = corners[arg].v
		case !uvProvided:
			corners[arg].t = -1
		}

		if !normalProvided {
			corners[arg].n = -1
		}
	}

	for _, face := range r.mode.split(corners) {
		r.pending = append(r.pending, pendingFace{
			corners:     face,
			smoothGroup: r.smoothGroup,
		})
	}
	return nil
}

// Parse a single face index token.
func parseFaceIndex(token string) (int, error) {
	index, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(index), nil
}

// Convert a face index to a zero-based offset into a coordinate list with
// listLen entries. Positive indices are 1-based; negative indices count
// back from the end of the list. The result is not range checked.
func resolveFaceIndex(index int, listLen int) int {
	if index < 0 {
		return listLen + index
	}
	return index - 1
}
