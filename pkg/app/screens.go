package app

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Talha991s/Babylon-Game/pkg/camera"
)

// setUpMenu gives a menu scene a black background, a static camera looking
// at the origin and one button that runs next
func (a *App) setUpMenu(scene Scene, button, label string, next func(context.Context) error) {
	scene.SetClearColor(menuClearColor)

	cam := camera.NewFree(mgl32.Vec3{0, 0, 2})
	cam.SetTarget(mgl32.Vec3{})
	scene.SetActiveCamera(cam)

	overlay := scene.CreateFullscreenOverlay(overlayName)
	a.bindButton(scene, overlay.AddButton(button, label), next)
}

func (a *App) setUpStart(scene Scene) {
	a.setUpMenu(scene, StartButton, "PLAY", a.GoToCutscene)
}

func (a *App) setUpCutscene(scene Scene) {
	a.setUpMenu(scene, NextButton, "NEXT", a.GoToGame)
}

func (a *App) setUpLose(scene Scene) {
	a.setUpMenu(scene, MainMenuButton, "MAIN MENU", a.GoToStart)
}
