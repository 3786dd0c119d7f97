package app

import "github.com/go-gl/mathgl/mgl32"

// Scene names
const (
	bootSceneName     = "boot"
	startSceneName    = "start"
	cutsceneSceneName = "cutscene"
	gameSceneName     = "gameplay"
	loseSceneName     = "lose"
)

// Overlay and button identifiers
const (
	overlayName = "UI"

	StartButton    = "start"
	NextButton     = "next"
	LoseButton     = "lose"
	MainMenuButton = "mainmenu"
)

// Clear colours
var (
	menuClearColor     = mgl32.Vec4{0, 0, 0, 1}
	gameplayClearColor = mgl32.Vec4{0.01568627450980392, 0.01568627450980392, 0.20392156862745098, 1}
)

// singleflight key for the gameplay build
const gameplayBuildKey = "gameplay"
