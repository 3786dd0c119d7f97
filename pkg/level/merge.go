package level

import (
	"github.com/Talha991s/Babylon-Game/pkg/world"
)

// Span is a box of identical solid blocks, half-open in block coordinates
type Span struct {
	Min, Max [3]int
	Type     BlockType
}

// Volume returns the number of blocks in the span
func (s Span) Volume() int {
	return (s.Max[0] - s.Min[0]) * (s.Max[1] - s.Min[1]) * (s.Max[2] - s.Min[2])
}

// Box returns the span's world-space bounds
func (s Span) Box(g *Grid) world.Box {
	return world.NewBox(
		g.BlockToWorld(s.Min[0], s.Min[1], s.Min[2]),
		g.BlockToWorld(s.Max[0], s.Max[1], s.Max[2]),
	)
}

// MergeBoxes greedily merges runs of identical solid blocks into spans,
// growing each span along X, then Z, then Y. Every solid block ends up in
// exactly one span, so the spans can serve directly as colliders.
func MergeBoxes(g *Grid) []Span {
	visited := make([]bool, len(g.Blocks))
	var spans []Span

	// claimable reports whether block (x,y,z) can join a span of type t
	claimable := func(x, y, z int, t BlockType) bool {
		return g.isValidCoordinate(x, y, z) && !visited[g.index(x, y, z)] && g.Get(x, y, z) == t
	}

	for y := 0; y < g.SizeY; y++ {
		for z := 0; z < g.SizeZ; z++ {
			for x := 0; x < g.SizeX; x++ {
				t := g.Get(x, y, z)
				if !t.IsSolid() || visited[g.index(x, y, z)] {
					continue
				}

				// Grow along X
				x1 := x + 1
				for claimable(x1, y, z, t) {
					x1++
				}

				// Grow along Z while the whole row matches
				z1 := z + 1
			growZ:
				for z1 < g.SizeZ {
					for xi := x; xi < x1; xi++ {
						if !claimable(xi, y, z1, t) {
							break growZ
						}
					}
					z1++
				}

				// Grow along Y while the whole slab matches
				y1 := y + 1
			growY:
				for y1 < g.SizeY {
					for zi := z; zi < z1; zi++ {
						for xi := x; xi < x1; xi++ {
							if !claimable(xi, y1, zi, t) {
								break growY
							}
						}
					}
					y1++
				}

				for yi := y; yi < y1; yi++ {
					for zi := z; zi < z1; zi++ {
						for xi := x; xi < x1; xi++ {
							visited[g.index(xi, yi, zi)] = true
						}
					}
				}

				spans = append(spans, Span{Min: [3]int{x, y, z}, Max: [3]int{x1, y1, z1}, Type: t})
			}
		}
	}

	return spans
}
