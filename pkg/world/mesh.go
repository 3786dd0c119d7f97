package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a box-shaped body living in a World. Its position is the origin of
// Bounds, so a player whose bounds start at y=0 stands with its feet on its
// position.
type Mesh struct {
	name     string
	bounds   Box
	material Material

	position mgl32.Vec3
	rotation mgl32.Quat

	pickable        bool
	enabled         bool
	checkCollisions bool
	stepOffset      float32

	world *World
}

// Name returns the mesh name
func (m *Mesh) Name() string {
	return m.name
}

// Bounds returns the local bounding box
func (m *Mesh) Bounds() Box {
	return m.bounds
}

// Material returns the mesh material
func (m *Mesh) Material() Material {
	m.world.mu.RLock()
	defer m.world.mu.RUnlock()
	return m.material
}

// SetMaterial replaces the mesh material
func (m *Mesh) SetMaterial(mat Material) {
	m.world.mu.Lock()
	m.material = mat
	m.world.mu.Unlock()
}

// Position returns the world position
func (m *Mesh) Position() mgl32.Vec3 {
	m.world.mu.RLock()
	defer m.world.mu.RUnlock()
	return m.position
}

// SetPosition teleports the mesh, ignoring collisions
func (m *Mesh) SetPosition(pos mgl32.Vec3) {
	m.world.mu.Lock()
	m.position = pos
	m.world.mu.Unlock()
}

// Rotation returns the orientation. Collision bounds ignore it.
func (m *Mesh) Rotation() mgl32.Quat {
	m.world.mu.RLock()
	defer m.world.mu.RUnlock()
	return m.rotation
}

// SetRotation sets the orientation
func (m *Mesh) SetRotation(q mgl32.Quat) {
	m.world.mu.Lock()
	m.rotation = q
	m.world.mu.Unlock()
}

// IsPickable reports whether rays may hit the mesh
func (m *Mesh) IsPickable() bool {
	m.world.mu.RLock()
	defer m.world.mu.RUnlock()
	return m.pickable
}

// SetPickable toggles ray picking
func (m *Mesh) SetPickable(pickable bool) {
	m.world.mu.Lock()
	m.pickable = pickable
	m.world.mu.Unlock()
}

// IsEnabled reports whether the mesh takes part in the scene
func (m *Mesh) IsEnabled() bool {
	m.world.mu.RLock()
	defer m.world.mu.RUnlock()
	return m.enabled
}

// SetEnabled toggles the mesh
func (m *Mesh) SetEnabled(enabled bool) {
	m.world.mu.Lock()
	m.enabled = enabled
	m.world.mu.Unlock()
}

// CheckCollisions reports whether moving bodies are blocked by the mesh
func (m *Mesh) CheckCollisions() bool {
	m.world.mu.RLock()
	defer m.world.mu.RUnlock()
	return m.checkCollisions
}

// SetCheckCollisions toggles the mesh as an obstacle
func (m *Mesh) SetCheckCollisions(check bool) {
	m.world.mu.Lock()
	m.checkCollisions = check
	m.world.mu.Unlock()
}

// StepOffset returns the tallest ledge the mesh climbs when walking into it
func (m *Mesh) StepOffset() float32 {
	m.world.mu.RLock()
	defer m.world.mu.RUnlock()
	return m.stepOffset
}

// SetStepOffset sets the tallest ledge the mesh climbs. Zero disables
// climbing.
func (m *Mesh) SetStepOffset(offset float32) {
	m.world.mu.Lock()
	m.stepOffset = max(offset, 0)
	m.world.mu.Unlock()
}

// MoveWithCollisions moves the mesh by displacement, stopping at obstacles
func (m *Mesh) MoveWithCollisions(displacement mgl32.Vec3) {
	m.world.MoveWithCollisions(m, displacement)
}
