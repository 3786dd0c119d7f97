package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Key constants for keyboard input
const (
	KeyEscape = glfw.KeyEscape
	KeyEnter  = glfw.KeyEnter
	KeySpace  = glfw.KeySpace
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// Button layout, in fractions of the screen
const (
	ButtonWidth   = 0.2
	ButtonHeight  = 40.0 / 720.0
	ButtonBottom  = 14.0 / 720.0
	ButtonSpacing = 8.0 / 720.0
)

// Overlay colours
var (
	ButtonColor      = mgl32.Vec4{0.15, 0.15, 0.2, 0.85}
	ButtonHoverColor = mgl32.Vec4{0.3, 0.3, 0.45, 0.95}
	LoadingColor     = mgl32.Vec4{0, 0, 0, 0.75}
	LoadingBarColor  = mgl32.Vec4{0.9, 0.9, 0.9, 1}
)

// Lighting
var (
	LightDirection = mgl32.Vec3{1, 1, 0}
	AmbientLight   = float32(0.35)
)

// MaxFrameTime caps the delta passed to frame callbacks after a stall
const MaxFrameTime = float32(0.1)
