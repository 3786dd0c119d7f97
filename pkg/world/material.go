package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material describes how a mesh is shaded
type Material struct {
	Name    string
	Diffuse mgl32.Vec4
}

// DefaultMaterial is used by meshes created without one
var DefaultMaterial = Material{Name: "default", Diffuse: mgl32.Vec4{0.8, 0.8, 0.8, 1}}
