package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Rig is a trailing third-person camera. Only Root moves; the heading, tilt,
// boom length and field of view are fixed when the rig is built, so the view
// is fully determined by Root.
type Rig struct {
	Root mgl32.Vec3

	yaw  float32
	tilt float32
	boom float32
	fov  float32
}

// NewRig creates a rig at the origin. yaw is the heading the rig looks along,
// tilt pitches the boom down toward Root, and boom is the camera's offset along
// the tilted view axis (negative values sit behind Root). fov is in radians.
func NewRig(yaw, tilt, boom, fov float32) *Rig {
	return &Rig{
		yaw:  yaw,
		tilt: tilt,
		boom: boom,
		fov:  fov,
	}
}

// Yaw returns the rig heading in radians
func (r *Rig) Yaw() float32 {
	return r.yaw
}

// Tilt returns the fixed pitch in radians
func (r *Rig) Tilt() float32 {
	return r.tilt
}

// Boom returns the camera offset along the view axis
func (r *Rig) Boom() float32 {
	return r.boom
}

// FOV returns the vertical field of view in radians
func (r *Rig) FOV() float32 {
	return r.fov
}

// Forward returns the planar direction the rig faces
func (r *Rig) Forward() mgl32.Vec3 {
	return YawRotation(r.yaw).Rotate(LocalForward)
}

// Right returns the planar direction to the viewer's right
func (r *Rig) Right() mgl32.Vec3 {
	return YawRotation(r.yaw).Rotate(LocalRight)
}

// Eye returns the world position of the camera
func (r *Rig) Eye() mgl32.Vec3 {
	sin, cos := math.Sincos(float64(r.tilt))

	// view axis pitched down by tilt, then pushed out along it by boom
	local := mgl32.Vec3{0, -float32(sin), float32(cos)}.Mul(r.boom)

	return r.Root.Add(YawRotation(r.yaw).Rotate(local))
}

// Follow moves Root a fraction t of the way toward target
func (r *Rig) Follow(target mgl32.Vec3, t float32) {
	r.Root = r.Root.Add(target.Sub(r.Root).Mul(t))
}

// ViewMatrix looks from Eye at Root
func (r *Rig) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(r.Eye(), r.Root, WorldUp)
}

// ProjectionMatrix returns a perspective projection for the given aspect ratio
func (r *Rig) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(r.fov, aspect, NearPlane, FarPlane)
}
