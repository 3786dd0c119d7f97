package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// contactEpsilon keeps touching boxes from counting as overlapping, so a body
// resting on the ground can still slide along it.
const contactEpsilon = 1e-4

// Box is an axis-aligned bounding box
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBox builds a box from any two opposite corners
func NewBox(a, b mgl32.Vec3) Box {
	return Box{
		Min: mgl32.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])},
		Max: mgl32.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])},
	}
}

// Translate returns the box moved by offset
func (b Box) Translate(offset mgl32.Vec3) Box {
	return Box{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Size returns the box extents
func (b Box) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint
func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Overlaps reports whether the interiors of two boxes intersect
func (b Box) Overlaps(o Box) bool {
	for i := 0; i < 3; i++ {
		if b.Min[i] >= o.Max[i]-contactEpsilon || b.Max[i] <= o.Min[i]+contactEpsilon {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside or on the box
func (b Box) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// intersectRay returns the entry distance of a ray into the box using the
// slab method. Rays starting inside the box hit at distance zero.
func (b Box) intersectRay(origin, dir mgl32.Vec3) (float32, bool) {
	tNear := float32(0)
	tFar := float32(mgl32.InfPos)

	for i := 0; i < 3; i++ {
		if mgl32.Abs(dir[i]) < 1e-8 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}

		inv := 1 / dir[i]
		t1 := (b.Min[i] - origin[i]) * inv
		t2 := (b.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tNear = max(tNear, t1)
		tFar = min(tFar, t2)
		if tNear > tFar {
			return 0, false
		}
	}

	return tNear, true
}
