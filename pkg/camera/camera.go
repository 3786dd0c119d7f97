// Package camera holds the cameras a scene can render from: a static free
// camera for menu screens and the follow rig used during gameplay.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is anything a scene can be rendered from
type Camera interface {
	ViewMatrix() mgl32.Mat4
	ProjectionMatrix(aspect float32) mgl32.Mat4
}

// Local axes. The world is right-handed with Y up; a heading of zero looks
// along +Z, which puts the viewer's right on -X.
var (
	WorldUp      = mgl32.Vec3{0, 1, 0}
	LocalForward = mgl32.Vec3{0, 0, 1}
	LocalRight   = mgl32.Vec3{-1, 0, 0}
)

// Clip planes
const (
	NearPlane = 0.1
	FarPlane  = 1000.0
)

// YawRotation returns the heading rotation for yaw radians, turning clockwise
// when seen from above so that heading+π/2 is the viewer's right.
func YawRotation(yaw float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, WorldUp.Mul(-1))
}
