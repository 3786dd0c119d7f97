// Package world is the collision and picking layer: box-shaped meshes, ray
// queries against them and collision-aware movement. All queries are
// synchronous so they can run inside a per-frame callback.
package world

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a finite ray. Direction does not need to be normalized.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
	Length    float32
}

// Hit is the result of a successful pick
type Hit struct {
	Mesh     *Mesh
	Point    mgl32.Vec3
	Distance float32
}

// Predicate filters the meshes a ray may hit
type Predicate func(*Mesh) bool

// PickableAndEnabled accepts meshes marked pickable that are enabled
func PickableAndEnabled(m *Mesh) bool {
	return m.IsPickable() && m.IsEnabled()
}

// Drawable is a snapshot of a mesh for rendering
type Drawable struct {
	Name     string
	Bounds   Box
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Material Material
}

// World holds the meshes of one scene
type World struct {
	mu     sync.RWMutex
	meshes []*Mesh
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// NewMesh adds a pickable, colliding mesh with the default material
func (w *World) NewMesh(name string, bounds Box, position mgl32.Vec3) *Mesh {
	m := &Mesh{
		name:            name,
		bounds:          bounds,
		material:        DefaultMaterial,
		position:        position,
		rotation:        mgl32.QuatIdent(),
		pickable:        true,
		enabled:         true,
		checkCollisions: true,
		world:           w,
	}

	w.mu.Lock()
	w.meshes = append(w.meshes, m)
	w.mu.Unlock()

	return m
}

// RemoveMesh takes m out of the world. Removing an absent mesh is a no-op.
func (w *World) RemoveMesh(m *Mesh) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, candidate := range w.meshes {
		if candidate == m {
			w.meshes = append(w.meshes[:i], w.meshes[i+1:]...)
			return
		}
	}
}

// Clear removes every mesh
func (w *World) Clear() {
	w.mu.Lock()
	w.meshes = nil
	w.mu.Unlock()
}

// Meshes returns the meshes currently in the world
func (w *World) Meshes() []*Mesh {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]*Mesh, len(w.meshes))
	copy(out, w.meshes)
	return out
}

// Find returns the first mesh with the given name
func (w *World) Find(name string) (*Mesh, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, m := range w.meshes {
		if m.name == name {
			return m, true
		}
	}
	return nil, false
}

// Drawables snapshots the enabled meshes
func (w *World) Drawables() []Drawable {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]Drawable, 0, len(w.meshes))
	for _, m := range w.meshes {
		if !m.enabled {
			continue
		}
		out = append(out, Drawable{
			Name:     m.name,
			Bounds:   m.bounds,
			Position: m.position,
			Rotation: m.rotation,
			Material: m.material,
		})
	}
	return out
}

// PickWithRay returns the nearest mesh accepted by pred that the ray reaches
// within its length. A nil predicate accepts every mesh.
func (w *World) PickWithRay(ray Ray, pred Predicate) (Hit, bool) {
	type candidate struct {
		mesh   *Mesh
		bounds Box
	}

	w.mu.RLock()
	candidates := make([]candidate, len(w.meshes))
	for i, m := range w.meshes {
		candidates[i] = candidate{mesh: m, bounds: m.bounds.Translate(m.position)}
	}
	w.mu.RUnlock()

	dirLen := ray.Direction.Len()
	if dirLen == 0 {
		return Hit{}, false
	}
	dir := ray.Direction.Mul(1 / dirLen)

	var best Hit
	found := false
	for _, c := range candidates {
		// predicates may lock the world, so they run outside the read lock
		if pred != nil && !pred(c.mesh) {
			continue
		}

		dist, ok := c.bounds.intersectRay(ray.Origin, dir)
		if !ok || dist > ray.Length {
			continue
		}
		if !found || dist < best.Distance {
			best = Hit{Mesh: c.mesh, Point: ray.Origin.Add(dir.Mul(dist)), Distance: dist}
			found = true
		}
	}

	return best, found
}

// MoveWithCollisions moves m by displacement one axis at a time (Y, X, Z).
// Along each axis the move stops where the body touches an enabled colliding
// mesh, so blocked motion on one axis still slides along the others. A body
// with a step offset walking into a ledge no taller than the offset is lifted
// onto it instead of stopping.
func (w *World) MoveWithCollisions(m *Mesh, displacement mgl32.Vec3) {
	w.mu.Lock()
	defer w.mu.Unlock()

	obstacles := make([]Box, 0, len(w.meshes))
	for _, other := range w.meshes {
		if other == m || !other.enabled || !other.checkCollisions {
			continue
		}
		obstacles = append(obstacles, other.bounds.Translate(other.position))
	}

	for _, axis := range [3]int{1, 0, 2} {
		delta := displacement[axis]
		if delta == 0 {
			continue
		}

		box := m.bounds.Translate(m.position)
		allowed := sweepAxis(box, axis, delta, obstacles)
		if allowed != delta && axis != 1 && m.stepOffset > 0 {
			if lift, ok := stepUp(box, axis, delta, m.stepOffset, obstacles); ok {
				m.position[1] += lift
				allowed = delta
			}
		}
		m.position[axis] += allowed
	}
}

// stepUp returns how far box must rise to walk delta along axis on top of the
// ledge blocking it. It fails when the ledge is taller than maxStep or the
// raised box would still be blocked.
func stepUp(box Box, axis int, delta, maxStep float32, obstacles []Box) (float32, bool) {
	swept := box
	if delta > 0 {
		swept.Max[axis] += delta
	} else {
		swept.Min[axis] += delta
	}

	top := box.Min[1]
	for _, ob := range obstacles {
		if swept.Overlaps(ob) && !box.Overlaps(ob) {
			top = max(top, ob.Max[1])
		}
	}

	lift := top - box.Min[1]
	if lift <= 0 || lift > maxStep+contactEpsilon {
		return 0, false
	}

	raised := box.Translate(mgl32.Vec3{0, lift, 0})
	for _, ob := range obstacles {
		if raised.Overlaps(ob) {
			return 0, false
		}
	}
	if sweepAxis(raised, axis, delta, obstacles) != delta {
		return 0, false
	}

	return lift, true
}

// sweepAxis clamps delta so that box moved along axis does not enter any obstacle
func sweepAxis(box Box, axis int, delta float32, obstacles []Box) float32 {
	swept := box
	if delta > 0 {
		swept.Max[axis] += delta
	} else {
		swept.Min[axis] += delta
	}

	for _, ob := range obstacles {
		// already interpenetrating: let the body move out
		if !swept.Overlaps(ob) || box.Overlaps(ob) {
			continue
		}

		if delta > 0 {
			allowed := max(ob.Min[axis]-box.Max[axis], 0)
			delta = min(delta, allowed)
		} else {
			allowed := min(ob.Max[axis]-box.Min[axis], 0)
			delta = max(delta, allowed)
		}
	}

	return delta
}
