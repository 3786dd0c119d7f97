package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Free camera constants, in degrees
const (
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0
	DefaultFOV   = 45.0
	MaxPitch     = 89.0
	MinPitch     = -89.0
)

// Free is a static camera placed by position and orientation. Menu scenes
// use it; nothing animates it per frame.
type Free struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles
	yaw   float32
	pitch float32

	fov float32
}

// NewFree creates a camera at position facing -Z
func NewFree(position mgl32.Vec3) *Free {
	c := &Free{
		position: position,
		worldUp:  WorldUp,
		front:    mgl32.Vec3{0, 0, -1},
		yaw:      DefaultYaw,
		pitch:    DefaultPitch,
		fov:      DefaultFOV,
	}
	c.updateVectors()
	return c
}

// updateVectors recalculates the basis from the Euler angles
func (c *Free) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()

	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// ViewMatrix returns the current view matrix
func (c *Free) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns a perspective projection for the given aspect ratio
func (c *Free) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// Position returns the camera position
func (c *Free) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the camera without changing where it faces
func (c *Free) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// SetRotation sets yaw and pitch in degrees, clamping pitch
func (c *Free) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = mgl32.Clamp(pitch, MinPitch, MaxPitch)
	c.updateVectors()
}

// SetTarget turns the camera toward target. A target equal to the camera
// position leaves the orientation alone.
func (c *Free) SetTarget(target mgl32.Vec3) {
	direction := target.Sub(c.position)
	if direction.Len() < 1e-6 {
		return
	}
	direction = direction.Normalize()

	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.pitch = mgl32.Clamp(mgl32.RadToDeg(float32(math.Asin(float64(direction.Y())))), MinPitch, MaxPitch)
	c.updateVectors()
}
