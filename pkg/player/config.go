package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Talha991s/Babylon-Game/pkg/world"
)

// Config tunes movement and the follow camera. Angles are in radians.
type Config struct {
	Speed       float32 `env:"SPEED"        envDefault:"0.45"`
	Gravity     float32 `env:"GRAVITY"      envDefault:"-2.8"`
	JumpForce   float32 `env:"JUMP_FORCE"   envDefault:"0.8"`
	TurnRate    float32 `env:"TURN_RATE"    envDefault:"10"`
	GroundProbe float32 `env:"GROUND_PROBE" envDefault:"0.6"`
	ProbeLift   float32 `env:"PROBE_LIFT"   envDefault:"0.5"`
	StepOffset  float32 `env:"STEP_OFFSET"  envDefault:"2"`

	CameraHeight float32 `env:"CAMERA_HEIGHT" envDefault:"2"`
	CameraFollow float32 `env:"CAMERA_FOLLOW" envDefault:"0.4"`
	CameraTilt   float32 `env:"CAMERA_TILT"   envDefault:"0.5934119456780721"`
	CameraFOV    float32 `env:"CAMERA_FOV"    envDefault:"0.47350045992678597"`
	CameraBoom   float32 `env:"CAMERA_BOOM"   envDefault:"-50"`
	CameraYaw    float32 `env:"CAMERA_YAW"    envDefault:"3.141592653589793"`
}

// DefaultConfig returns the same values as the environment defaults
func DefaultConfig() Config {
	return Config{
		Speed:        DefaultSpeed,
		Gravity:      DefaultGravity,
		JumpForce:    DefaultJumpForce,
		TurnRate:     DefaultTurnRate,
		GroundProbe:  DefaultGroundProbe,
		ProbeLift:    DefaultProbeLift,
		StepOffset:   DefaultStepOffset,
		CameraHeight: DefaultCameraHeight,
		CameraFollow: DefaultCameraFollow,
		CameraTilt:   DefaultCameraTilt,
		CameraFOV:    DefaultCameraFOV,
		CameraBoom:   DefaultCameraBoom,
		CameraYaw:    DefaultCameraYaw,
	}
}

// Template describes the body a player is spawned with
type Template struct {
	Bounds   world.Box // local bounds, feet at y=0
	Material world.Material
	Spawn    mgl32.Vec3
}

// DefaultTemplate is a 2x3x2 box standing at spawn
func DefaultTemplate(spawn mgl32.Vec3) Template {
	return Template{
		Bounds:   world.NewBox(mgl32.Vec3{-1, 0, -1}, mgl32.Vec3{1, 3, 1}),
		Material: world.Material{Name: "player", Diffuse: mgl32.Vec4{0.9, 0.45, 0.2, 1}},
		Spawn:    spawn,
	}
}
