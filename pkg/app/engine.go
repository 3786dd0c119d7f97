package app

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Talha991s/Babylon-Game/pkg/camera"
	"github.com/Talha991s/Babylon-Game/pkg/player"
	"github.com/Talha991s/Babylon-Game/pkg/world"
)

// Engine owns the window and decides which scene is drawn
type Engine interface {
	CreateScene(name string) (Scene, error)
	SetActiveScene(s Scene)
	DisplayLoadingUI()
	HideLoadingUI()
}

// Scene is one drawable world with its camera, overlays and frame callbacks.
// Scenes are created with control detached.
type Scene interface {
	Name() string
	World() *world.World

	AttachControl()
	DetachControl()
	ControlAttached() bool

	// WhenReady blocks until the scene can be drawn
	WhenReady(ctx context.Context) error
	Dispose()

	SetClearColor(c mgl32.Vec4)
	SetActiveCamera(c camera.Camera)
	CreateFullscreenOverlay(name string) Overlay
	RegisterBeforeRender(fn func(dt float32)) (unregister func())
}

// Overlay is a screen-space layer of buttons
type Overlay interface {
	AddButton(name, label string) Button
}

// Button is a clickable overlay control
type Button interface {
	Name() string
	Label() string
	// OnActivate registers fn to run when the button is pressed. Handlers
	// run on the render thread and must not block.
	OnActivate(fn func())
}

// Assets is what a gameplay scene needs once its level is loaded
type Assets struct {
	Player    player.Template
	Materials []world.Material
}

// AssetLoader fills a scene's world and returns the loaded assets
type AssetLoader interface {
	LoadSceneAssets(ctx context.Context, scene Scene) (*Assets, error)
}
