// Package smoothing derives per-face smoothing groups from explicit vertex
// normals.
//
// Two faces that share an edge are considered smooth neighbours when they use
// the same normal at both edge endpoints. Faces connected through smooth
// edges form a component; each component receives a smoothing group bit that
// is not shared by any component it touches through a hard edge. Faces that
// have no smooth neighbour get group 0 (flat shaded).
package smoothing

import (
	"github.com/achilleasa/meshkit/types"
)

// Max number of distinct smoothing group bits.
const maxGroupBits = 32

// Normals closer than this (per component, after normalization) are
// treated as equal.
const normalEpsilon float32 = 1e-4

type edgeKey struct {
	a, b int32
}

type edgeUse struct {
	face   int
	na, nb int32
}

// CalcSmoothGroups returns a smoothing group bitmask for each face. For every
// face, faceNormals must contain one index into normals per face point.
func CalcSmoothGroups(faces [][]int32, faceNormals [][]int32, normals []types.Vec3) []int32 {
	groups := make([]int32, len(faces))
	if len(faces) == 0 {
		return groups
	}

	unitNormals := make([]types.Vec3, len(normals))
	for i, n := range normals {
		unitNormals[i] = n.Normalize()
	}
	sameNormal := func(n1, n2 int32) bool {
		if n1 == n2 {
			return true
		}
		return types.ApproxEqual(unitNormals[n1], unitNormals[n2], normalEpsilon)
	}

	// Collect the faces sharing each edge, keeping track of edge
	// definition order so results are deterministic.
	edgeUses := make(map[edgeKey][]edgeUse)
	edgeOrder := make([]edgeKey, 0)
	for faceIndex, face := range faces {
		numPoints := len(face)
		for i := 0; i < numPoints; i++ {
			j := (i + 1) % numPoints
			pa, pb := face[i], face[j]
			na, nb := faceNormals[faceIndex][i], faceNormals[faceIndex][j]
			if pa == pb {
				continue
			}
			if pa > pb {
				pa, pb = pb, pa
				na, nb = nb, na
			}

			key := edgeKey{pa, pb}
			if _, exists := edgeUses[key]; !exists {
				edgeOrder = append(edgeOrder, key)
			}
			edgeUses[key] = append(edgeUses[key], edgeUse{face: faceIndex, na: na, nb: nb})
		}
	}

	uf := newUnionFind(len(faces))
	hasSmoothEdge := make([]bool, len(faces))
	hardPairs := make([][2]int, 0)
	for _, key := range edgeOrder {
		uses := edgeUses[key]
		for i := 0; i < len(uses); i++ {
			for j := i + 1; j < len(uses); j++ {
				fi, fj := uses[i].face, uses[j].face
				if fi == fj {
					continue
				}

				if sameNormal(uses[i].na, uses[j].na) && sameNormal(uses[i].nb, uses[j].nb) {
					uf.union(fi, fj)
					hasSmoothEdge[fi] = true
					hasSmoothEdge[fj] = true
				} else {
					hardPairs = append(hardPairs, [2]int{fi, fj})
				}
			}
		}
	}

	// Number the smooth components in order of their first face.
	compIndex := make(map[int]int)
	faceComp := make([]int, len(faces))
	for faceIndex := range faces {
		faceComp[faceIndex] = -1
		if !hasSmoothEdge[faceIndex] {
			continue
		}
		root := uf.find(faceIndex)
		comp, exists := compIndex[root]
		if !exists {
			comp = len(compIndex)
			compIndex[root] = comp
		}
		faceComp[faceIndex] = comp
	}

	// Components meeting at a hard edge must not share a group bit.
	neighbors := make([]map[int]struct{}, len(compIndex))
	for comp := range neighbors {
		neighbors[comp] = make(map[int]struct{})
	}
	for _, pair := range hardPairs {
		ci, cj := faceComp[pair[0]], faceComp[pair[1]]
		if ci < 0 || cj < 0 || ci == cj {
			continue
		}
		neighbors[ci][cj] = struct{}{}
		neighbors[cj][ci] = struct{}{}
	}

	compGroups := make([]int32, len(compIndex))
	for comp := range compGroups {
		var usedBits uint32
		for neighbor := range neighbors[comp] {
			if neighbor < comp {
				usedBits |= uint32(compGroups[neighbor])
			}
		}

		// If we run out of bits fall back to the first one. Faces that end
		// up sharing a bit across a hard edge will be smoothed together.
		bit := 0
		for ; bit < maxGroupBits; bit++ {
			if usedBits&(1<<uint(bit)) == 0 {
				break
			}
		}
		if bit == maxGroupBits {
			bit = 0
		}
		compGroups[comp] = int32(uint32(1) << uint(bit))
	}

	for faceIndex, comp := range faceComp {
		if comp >= 0 {
			groups[faceIndex] = compGroups[comp]
		}
	}
	return groups
}

type unionFind struct {
	parent []int
	rank   []uint8
}

func newUnionFind(size int) *unionFind {
	uf := &unionFind{
		parent: make([]int, size),
		rank:   make([]uint8, size),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(x, y int) {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return
	}
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
}
