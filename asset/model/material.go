package model

import "github.com/achilleasa/meshkit/types"

// DefaultMaterialName is bound to meshes that never selected a material.
const DefaultMaterialName = "default"

// Default specular exponent for newly defined materials.
const DefaultSpecularPower float32 = 32

// A Material holds phong shading parameters. Texture maps are stored as
// resolved paths; they are never decoded.
type Material struct {
	Name string

	DiffuseColor  types.Vec3
	SpecularColor types.Vec3
	SpecularPower float32

	DiffuseMap  string
	SpecularMap string
	BumpMap     string
}

// Create a material with a white diffuse color and no specular highlights.
func NewMaterial(name string) *Material {
	return &Material{
		Name:          name,
		DiffuseColor:  types.Vec3{1, 1, 1},
		SpecularPower: DefaultSpecularPower,
	}
}

// Create the stock material used for surfaces without a material binding.
func NewDefaultMaterial() *Material {
	return NewMaterial(DefaultMaterialName)
}
