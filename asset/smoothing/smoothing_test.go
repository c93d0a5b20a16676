package smoothing

import (
	"testing"

	"github.com/achilleasa/meshkit/types"
	"github.com/stretchr/testify/assert"
)

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, CalcSmoothGroups(nil, nil, nil))
}

func TestSharedNormalIndicesAreSmooth(t *testing.T) {
	faces := [][]int32{{0, 1, 2}, {0, 2, 3}}
	faceNormals := [][]int32{{0, 0, 0}, {0, 0, 0}}
	normals := []types.Vec3{{0, 0, 1}}

	assert.Equal(t, []int32{1, 1}, CalcSmoothGroups(faces, faceNormals, normals))
}

func TestEqualNormalVectorsAreSmooth(t *testing.T) {
	faces := [][]int32{{0, 1, 2}, {0, 2, 3}}
	faceNormals := [][]int32{{0, 1, 2}, {3, 4, 5}}
	normals := []types.Vec3{
		{0, 0, 1}, {0, 0, 1}, {0, 0, 2},
		{0, 0, 1}, {0, 0, 1}, {0, 0, 1},
	}

	assert.Equal(t, []int32{1, 1}, CalcSmoothGroups(faces, faceNormals, normals))
}

func TestDifferentNormalsAreHard(t *testing.T) {
	faces := [][]int32{{0, 1, 2}, {0, 2, 3}}
	faceNormals := [][]int32{{0, 0, 0}, {1, 1, 1}}
	normals := []types.Vec3{{0, 0, 1}, {1, 0, 0}}

	assert.Equal(t, []int32{0, 0}, CalcSmoothGroups(faces, faceNormals, normals))
}

func TestAdjacentComponentsGetDistinctGroups(t *testing.T) {
	// Two smooth quads meeting at a hard edge (2, 3).
	faces := [][]int32{
		{0, 1, 2}, {0, 2, 3},
		{3, 2, 4}, {3, 4, 5},
	}
	faceNormals := [][]int32{
		{0, 0, 0}, {0, 0, 0},
		{1, 1, 1}, {1, 1, 1},
	}
	normals := []types.Vec3{{0, 0, 1}, {0, 1, 0}}

	assert.Equal(t, []int32{1, 1, 2, 2}, CalcSmoothGroups(faces, faceNormals, normals))
}

func TestDisjointComponentsReuseGroups(t *testing.T) {
	faces := [][]int32{
		{0, 1, 2}, {0, 2, 3},
		{10, 11, 12}, {10, 12, 13},
	}
	faceNormals := [][]int32{
		{0, 0, 0}, {0, 0, 0},
		{1, 1, 1}, {1, 1, 1},
	}
	normals := []types.Vec3{{0, 0, 1}, {0, 1, 0}}

	assert.Equal(t, []int32{1, 1, 1, 1}, CalcSmoothGroups(faces, faceNormals, normals))
}

func TestPolygonFaces(t *testing.T) {
	// A quad and a pentagon sharing edge (1, 2) with matching normals plus
	// a detached triangle.
	faces := [][]int32{
		{0, 1, 2, 3},
		{1, 4, 5, 6, 2},
		{7, 8, 9},
	}
	faceNormals := [][]int32{
		{0, 1, 2, 0},
		{1, 0, 0, 0, 2},
		{0, 0, 0},
	}
	normals := []types.Vec3{{0, 0, 1}, {0, 0.1, 1}, {0.1, 0, 1}}

	assert.Equal(t, []int32{1, 1, 0}, CalcSmoothGroups(faces, faceNormals, normals))
}
