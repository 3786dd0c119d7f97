// Package player implements the third-person character: camera-relative
// movement, turning toward the input direction, ground detection with
// gravity, and a camera rig that trails the body.
package player

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Talha991s/Babylon-Game/pkg/camera"
	"github.com/Talha991s/Babylon-Game/pkg/input"
	"github.com/Talha991s/Babylon-Game/pkg/world"
)

// Host is the scene a controller runs in
type Host interface {
	RegisterBeforeRender(fn func(dt float32)) (unregister func())
	SetActiveCamera(c camera.Camera)
}

// Controller drives one player body. Update runs on the render thread; the
// accessors may be called from anywhere.
type Controller struct {
	cfg   Config
	world *world.World
	mesh  *world.Mesh
	rig   *camera.Rig
	input input.Source

	mu            sync.Mutex
	move          mgl32.Vec3
	gravity       mgl32.Vec3
	grounded      bool
	lastGroundPos mgl32.Vec3
	unregister    func()
}

// Spawn adds the player's body to w at tpl.Spawn and builds its camera rig.
// The controller does nothing until it is activated.
func Spawn(w *world.World, tpl Template, src input.Source, cfg Config) *Controller {
	mesh := w.NewMesh(MeshName, tpl.Bounds, tpl.Spawn)
	mesh.SetMaterial(tpl.Material)
	// the ground probe must never hit the player's own body
	mesh.SetPickable(false)
	mesh.SetStepOffset(cfg.StepOffset)

	rig := camera.NewRig(cfg.CameraYaw, cfg.CameraTilt, cfg.CameraBoom, cfg.CameraFOV)
	rig.Root = tpl.Spawn.Add(mgl32.Vec3{0, cfg.CameraHeight, 0})

	return &Controller{
		cfg:   cfg,
		world: w,
		mesh:  mesh,
		rig:   rig,
		input: src,
	}
}

// Activate hooks the controller into host's frame loop and makes the rig the
// active camera. Activating twice is a no-op.
func (c *Controller) Activate(host Host) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unregister != nil {
		return
	}
	c.unregister = host.RegisterBeforeRender(func(dt float32) {
		c.Update(dt, c.input.Snapshot())
	})
	host.SetActiveCamera(c.rig)
}

// Dispose stops the per-frame updates and removes the body from the world
func (c *Controller) Dispose() {
	c.mu.Lock()
	unregister := c.unregister
	c.unregister = nil
	c.mu.Unlock()

	if unregister != nil {
		unregister()
	}
	c.world.RemoveMesh(c.mesh)
}

// Update advances the player by one frame of dt seconds
func (c *Controller) Update(dt float32, in input.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.updateFromControls(dt, in)
	c.updateGroundDetection(dt)

	// camera root trails a point above the body
	target := c.mesh.Position().Add(mgl32.Vec3{0, c.cfg.CameraHeight, 0})
	c.rig.Follow(target, c.cfg.CameraFollow)
}

// updateFromControls computes this frame's horizontal move and turns the body
func (c *Controller) updateFromControls(dt float32, in input.Snapshot) {
	move := c.rig.Right().Mul(in.Horizontal).Add(c.rig.Forward().Mul(in.Vertical))
	move[1] = 0

	dir := mgl32.Vec3{}
	if l := move.Len(); l > 0 {
		dir = move.Mul(1 / l)
	}

	// diagonal input is no faster than straight input
	amount := mgl32.Clamp(abs(in.Horizontal)+abs(in.Vertical), 0, 1)
	c.move = dir.Mul(amount * c.cfg.Speed * dt)

	if in.IsZero() {
		return
	}

	angle := float32(math.Atan2(float64(in.HorizontalAxis), float64(in.VerticalAxis))) + c.rig.Yaw()
	target := camera.YawRotation(angle)
	t := mgl32.Clamp(c.cfg.TurnRate*dt, 0, 1)
	c.mesh.SetRotation(mgl32.QuatSlerp(c.mesh.Rotation(), target, t))
}

// updateGroundDetection applies gravity and moves the body
func (c *Controller) updateGroundDetection(dt float32) {
	if !c.isGrounded() {
		c.gravity = c.gravity.Add(camera.WorldUp.Mul(c.cfg.Gravity * dt))
	}
	c.grounded = false

	if c.gravity[1] < -c.cfg.JumpForce {
		c.gravity[1] = -c.cfg.JumpForce
	}

	c.mesh.MoveWithCollisions(c.move.Add(c.gravity))

	if c.isGrounded() {
		c.gravity[1] = 0
		c.grounded = true
		c.lastGroundPos = c.mesh.Position()
	}
}

// floorRaycast probes straight down from just above the feet
func (c *Controller) floorRaycast(offsetX, offsetZ, length float32) (world.Hit, bool) {
	pos := c.mesh.Position()
	origin := mgl32.Vec3{pos[0] + offsetX, pos[1] + c.cfg.ProbeLift, pos[2] + offsetZ}

	return c.world.PickWithRay(world.Ray{
		Origin:    origin,
		Direction: camera.WorldUp.Mul(-1),
		Length:    length,
	}, world.PickableAndEnabled)
}

func (c *Controller) isGrounded() bool {
	_, hit := c.floorRaycast(0, 0, c.cfg.GroundProbe)
	return hit
}

// Position returns the player's feet position
func (c *Controller) Position() mgl32.Vec3 {
	return c.mesh.Position()
}

// Rotation returns the body's orientation
func (c *Controller) Rotation() mgl32.Quat {
	return c.mesh.Rotation()
}

// Grounded reports whether the last update ended on the ground
func (c *Controller) Grounded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grounded
}

// VerticalVelocity returns the accumulated gravity, in units per frame
func (c *Controller) VerticalVelocity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gravity[1]
}

// LastGroundPosition returns where the player last stood on the ground
func (c *Controller) LastGroundPosition() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastGroundPos
}

// Rig returns the follow camera
func (c *Controller) Rig() *camera.Rig {
	return c.rig
}

// Mesh returns the player's body
func (c *Controller) Mesh() *world.Mesh {
	return c.mesh
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
