package player

import "math"

// Movement defaults
const (
	DefaultSpeed       = 0.45
	DefaultGravity     = -2.8
	DefaultJumpForce   = 0.80 // also the cap on falling speed
	DefaultTurnRate    = 10.0
	DefaultGroundProbe = 0.6
	DefaultProbeLift   = 0.5
	DefaultStepOffset  = 2.0 // one level block
)

// Camera defaults
const (
	DefaultCameraHeight = 2.0
	DefaultCameraFollow = 0.4
	DefaultCameraTilt   = 0.5934119456780721
	DefaultCameraFOV    = 0.47350045992678597
	DefaultCameraBoom   = -50.0
	DefaultCameraYaw    = math.Pi
)

// MeshName is the name of the player's collision box
const MeshName = "outer"
