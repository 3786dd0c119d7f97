package level

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Talha991s/Babylon-Game/pkg/world"
)

// BlockType represents the different kinds of level blocks
type BlockType uint8

const (
	Air BlockType = iota
	Ground
	Grass
	Stone
	Platform
)

// String returns the block type's name
func (b BlockType) String() string {
	switch b {
	case Air:
		return "air"
	case Ground:
		return "ground"
	case Grass:
		return "grass"
	case Stone:
		return "stone"
	case Platform:
		return "platform"
	default:
		return "unknown"
	}
}

// BlockProperties contains physical and visual properties of a block
type BlockProperties struct {
	Solid    bool
	Material world.Material
}

// Default block properties
var blockProperties = map[BlockType]BlockProperties{
	Air:      {Solid: false},
	Ground:   {Solid: true, Material: world.Material{Name: "ground", Diffuse: mgl32.Vec4{0.36, 0.27, 0.19, 1}}},
	Grass:    {Solid: true, Material: world.Material{Name: "grass", Diffuse: mgl32.Vec4{0.30, 0.55, 0.25, 1}}},
	Stone:    {Solid: true, Material: world.Material{Name: "stone", Diffuse: mgl32.Vec4{0.50, 0.50, 0.55, 1}}},
	Platform: {Solid: true, Material: world.Material{Name: "platform", Diffuse: mgl32.Vec4{0.85, 0.70, 0.35, 1}}},
}

// GetBlockProperties returns properties for a specific block type
func GetBlockProperties(blockType BlockType) BlockProperties {
	props, exists := blockProperties[blockType]
	if !exists {
		return BlockProperties{Solid: true, Material: world.DefaultMaterial}
	}
	return props
}

// IsSolid returns whether the block type is solid
func (b BlockType) IsSolid() bool {
	return GetBlockProperties(b).Solid
}

// Material returns the block's material
func (b BlockType) Material() world.Material {
	return GetBlockProperties(b).Material
}

// Materials lists the materials of every solid block type
func Materials() []world.Material {
	out := make([]world.Material, 0, len(blockProperties))
	for _, t := range []BlockType{Ground, Grass, Stone, Platform} {
		out = append(out, t.Material())
	}
	return out
}
