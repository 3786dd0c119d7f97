package level

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Config controls the generated gameplay level
type Config struct {
	Width     int           `env:"WIDTH"      envDefault:"32"`
	Depth     int           `env:"DEPTH"      envDefault:"32"`
	Height    int           `env:"HEIGHT"     envDefault:"8"`
	BlockSize float32       `env:"BLOCK_SIZE" envDefault:"2"`
	Latency   time.Duration `env:"LATENCY"    envDefault:"0s"` // artificial asset latency
}

// DefaultConfig returns the configuration used when the environment is empty
func DefaultConfig() Config {
	return Config{Width: 32, Depth: 32, Height: 8, BlockSize: 2}
}

// DefaultLayout builds the gameplay level: a grass-topped ground slab centred
// on the origin with its surface at y=0, a stone staircase east of the centre
// and a raised platform level with the top step. Each step rises one block, so
// a body whose step offset is at least BlockSize can walk up to the platform.
func DefaultLayout(cfg Config) *Grid {
	width := max(cfg.Width, 8)
	depth := max(cfg.Depth, 8)
	height := max(cfg.Height, 6)
	size := cfg.BlockSize
	if size <= 0 {
		size = 1
	}

	origin := mgl32.Vec3{-float32(width/2) * size, -2 * size, -float32(depth/2) * size}
	g := NewGrid(width, height, depth, origin, size)

	// Ground: two layers below y=0
	g.Fill([3]int{0, 0, 0}, [3]int{width, 1, depth}, Ground)
	g.Fill([3]int{0, 1, 0}, [3]int{width, 2, depth}, Grass)

	// Staircase: three steps climbing along +X
	cx, cz := width/2, depth/2
	for step := 1; step <= 3; step++ {
		x := cx + 2 + step
		g.Fill([3]int{x, 2, cz - 1}, [3]int{x + 1, 2 + step, cz + 2}, Stone)
	}

	// Platform level with the top step
	g.Fill([3]int{cx + 6, 4, cz - 2}, [3]int{cx + 10, 5, cz + 3}, Platform)

	return g
}
