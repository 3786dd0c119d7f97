package level

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid is a box of blocks anchored in the world at Origin, the min corner of
// block (0,0,0)
type Grid struct {
	SizeX, SizeY, SizeZ int
	Origin              mgl32.Vec3
	BlockSize           float32
	Blocks              []BlockType
}

// NewGrid creates an empty grid
func NewGrid(sizeX, sizeY, sizeZ int, origin mgl32.Vec3, blockSize float32) *Grid {
	return &Grid{
		SizeX:     sizeX,
		SizeY:     sizeY,
		SizeZ:     sizeZ,
		Origin:    origin,
		BlockSize: blockSize,
		Blocks:    make([]BlockType, sizeX*sizeY*sizeZ),
	}
}

// isValidCoordinate checks if the given coordinates are within the grid
func (g *Grid) isValidCoordinate(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < g.SizeX && y < g.SizeY && z < g.SizeZ
}

// index converts 3D coordinates to a 1D array index
func (g *Grid) index(x, y, z int) int {
	return x*g.SizeY*g.SizeZ + y*g.SizeZ + z
}

// coords converts a flat index back into block coordinates
func (g *Grid) coords(index int) (x, y, z int) {
	x = index / (g.SizeY * g.SizeZ)
	remainder := index % (g.SizeY * g.SizeZ)
	y = remainder / g.SizeZ
	z = remainder % g.SizeZ
	return
}

// Get returns the block at the given coordinates, Air when out of bounds
func (g *Grid) Get(x, y, z int) BlockType {
	if !g.isValidCoordinate(x, y, z) {
		return Air
	}
	return g.Blocks[g.index(x, y, z)]
}

// Set sets the block at the given coordinates, ignoring out-of-bounds writes
func (g *Grid) Set(x, y, z int, blockType BlockType) {
	if !g.isValidCoordinate(x, y, z) {
		return
	}
	g.Blocks[g.index(x, y, z)] = blockType
}

// Fill sets every block in the half-open range [min, max) clipped to the grid
func (g *Grid) Fill(min, max [3]int, blockType BlockType) {
	for x := min[0]; x < max[0]; x++ {
		for y := min[1]; y < max[1]; y++ {
			for z := min[2]; z < max[2]; z++ {
				g.Set(x, y, z, blockType)
			}
		}
	}
}

// BlockToWorld returns the world position of a block's min corner
func (g *Grid) BlockToWorld(x, y, z int) mgl32.Vec3 {
	return g.Origin.Add(mgl32.Vec3{float32(x), float32(y), float32(z)}.Mul(g.BlockSize))
}

// WorldToBlock returns the coordinates of the block containing p
func (g *Grid) WorldToBlock(p mgl32.Vec3) (x, y, z int) {
	local := p.Sub(g.Origin).Mul(1 / g.BlockSize)
	return int(math.Floor(float64(local[0]))), int(math.Floor(float64(local[1]))), int(math.Floor(float64(local[2])))
}

// SurfaceHeight returns the world height of the top of the highest solid
// block in column (x, z), or Origin.Y when the column is empty
func (g *Grid) SurfaceHeight(x, z int) float32 {
	for y := g.SizeY - 1; y >= 0; y-- {
		if g.Get(x, y, z).IsSolid() {
			return g.BlockToWorld(x, y+1, z).Y()
		}
	}
	return g.Origin.Y()
}
