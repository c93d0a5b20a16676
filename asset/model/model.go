// Package model defines the imported geometry and material collection that is
// handed to scene consumers.
package model

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// A Model is the result of importing a single source file.
type Model struct {
	// Location of the source the model was imported from.
	Source string

	// Meshes in the order they were emitted.
	Meshes []*Mesh

	// Materials bound to at least one mesh. Keys are material names,
	// disambiguated when two distinct materials share a name.
	Materials map[string]*Material
}

// A MeshView pairs a mesh with its material. It is what viewers attach to
// their scene graph.
type MeshView struct {
	// Stable identifier; equal to the mesh name.
	ID string

	Mesh     *Mesh
	Material *Material
}

// Create an empty model.
func New(source string) *Model {
	return &Model{
		Source:    source,
		Meshes:    make([]*Mesh, 0),
		Materials: make(map[string]*Material),
	}
}

// Append a mesh and register the material it is bound to. A different
// material that shares the name of an already registered one is stored
// under "name (2)", "name (3)"... and the mesh references that key.
func (m *Model) AddMesh(mesh *Mesh, mat *Material) {
	m.Meshes = append(m.Meshes, mesh)
	if mat == nil {
		return
	}

	key := mat.Name
	for index := 2; ; index++ {
		bound, exists := m.Materials[key]
		if !exists {
			m.Materials[key] = mat
			break
		}
		if bound == mat {
			break
		}
		key = fmt.Sprintf("%s (%d)", mat.Name, index)
	}
	mesh.MaterialName = key
}

// Lookup a mesh by name.
func (m *Model) Mesh(name string) *Mesh {
	for _, mesh := range m.Meshes {
		if mesh.Name == name {
			return mesh
		}
	}
	return nil
}

// Build the ordered list of mesh views. Meshes whose material is missing
// from the model are bound to the stock default material.
func (m *Model) MeshViews() []MeshView {
	views := make([]MeshView, 0, len(m.Meshes))
	var fallback *Material
	for _, mesh := range m.Meshes {
		mat := m.Materials[mesh.MaterialName]
		if mat == nil {
			if fallback == nil {
				fallback = NewDefaultMaterial()
			}
			mat = fallback
		}
		views = append(views, MeshView{
			ID:       mesh.Name,
			Mesh:     mesh,
			Material: mat,
		})
	}
	return views
}

// Build a tabular representation of model statistics.
func (m *Model) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Mesh", "Kind", "Points", "UVs", "Normals", "Faces", "Smoothing groups", "Material"})

	var totalPoints, totalUVs, totalNormals, totalFaces int
	for _, mesh := range m.Meshes {
		table.Append([]string{
			mesh.Name,
			mesh.Kind.String(),
			fmt.Sprintf("%d", len(mesh.Points)),
			fmt.Sprintf("%d", len(mesh.TexCoords)),
			fmt.Sprintf("%d", len(mesh.Normals)),
			fmt.Sprintf("%d", len(mesh.Faces)),
			fmt.Sprintf("%d", mesh.NumSmoothingGroups()),
			mesh.MaterialName,
		})
		totalPoints += len(mesh.Points)
		totalUVs += len(mesh.TexCoords)
		totalNormals += len(mesh.Normals)
		totalFaces += len(mesh.Faces)
	}
	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d meshes", len(m.Meshes)),
		fmt.Sprintf("%d", totalPoints),
		fmt.Sprintf("%d", totalUVs),
		fmt.Sprintf("%d", totalNormals),
		fmt.Sprintf("%d", totalFaces),
		" ",
		fmt.Sprintf("%d materials", len(m.Materials)),
	})

	table.Render()
	return buf.String()
}
