// Package app is the scene and state orchestrator. It owns the active scene,
// runs transitions between the Start, Cutscene, Gameplay and Lose screens
// one at a time, and keeps the gameplay scene alive between visits.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Talha991s/Babylon-Game/pkg/camera"
	"github.com/Talha991s/Babylon-Game/pkg/input"
	"github.com/Talha991s/Babylon-Game/pkg/player"
	"github.com/Talha991s/Babylon-Game/pkg/state"
)

var (
	// ErrTransitionInProgress is returned when a transition is requested
	// while another one is still running
	ErrTransitionInProgress = errors.New("transition in progress")
	// ErrClosed is returned by transitions requested after Close
	ErrClosed = errors.New("app closed")
)

// App orchestrates scenes and the application state
type App struct {
	engine    Engine
	loader    AssetLoader
	input     input.Source
	playerCfg player.Config
	log       *zap.Logger

	// held for the whole of a transition
	transition sync.Mutex
	loseAdded  bool

	mu     sync.RWMutex
	state  state.State
	scene  Scene
	kind   state.SceneKind
	player *player.Controller

	builds     singleflight.Group
	gameMu     sync.Mutex
	gameScene  Scene
	gameAssets *Assets

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	lifeMu sync.Mutex
	closed bool
}

// New creates an app showing an empty boot scene in the Start state.
// Call GoToStart to show the menu.
func New(engine Engine, loader AssetLoader, src input.Source, cfg player.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	boot, err := engine.CreateScene(bootSceneName)
	if err != nil {
		return nil, fmt.Errorf("failed to create boot scene: %w", err)
	}
	boot.SetClearColor(menuClearColor)
	boot.SetActiveCamera(camera.NewFree(mgl32.Vec3{0, 0, 2}))
	engine.SetActiveScene(boot)
	boot.AttachControl()

	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		engine:    engine,
		loader:    loader,
		input:     src,
		playerCfg: cfg,
		log:       log,
		state:     state.Start,
		scene:     boot,
		kind:      state.SceneFresh,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// State returns the current application state
func (a *App) State() state.State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// ActiveScene returns the scene currently attached
func (a *App) ActiveScene() Scene {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.scene
}

// Player returns the active player, or nil outside Gameplay
func (a *App) Player() *player.Controller {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.player
}

// Go runs fn on a tracked goroutine with the app's lifetime context.
// Button handlers use it so that the render thread never blocks on a
// transition.
func (a *App) Go(fn func(ctx context.Context) error) {
	a.lifeMu.Lock()
	defer a.lifeMu.Unlock()

	if a.closed {
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := fn(a.ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Warn("background transition failed", zap.Error(err))
		}
	}()
}

// Close cancels in-flight work and waits for background goroutines
func (a *App) Close() {
	a.lifeMu.Lock()
	a.closed = true
	a.lifeMu.Unlock()

	a.cancel()
	a.wg.Wait()
}

func (a *App) isClosed() bool {
	a.lifeMu.Lock()
	defer a.lifeMu.Unlock()
	return a.closed
}

// GoToStart shows the main menu
func (a *App) GoToStart(ctx context.Context) error {
	return a.execute(ctx, state.ShowMenu, startSceneName, a.setUpStart)
}

// GoToCutscene shows the cutscene and starts building the gameplay scene in
// the background
func (a *App) GoToCutscene(ctx context.Context) error {
	return a.execute(ctx, state.Play, cutsceneSceneName, a.setUpCutscene)
}

// GoToGame switches to the gameplay scene and spawns the player. If the
// gameplay scene is still being built it waits for the build to finish.
func (a *App) GoToGame(ctx context.Context) error {
	return a.execute(ctx, state.Advance, gameSceneName, nil)
}

// GoToLose shows the lose screen
func (a *App) GoToLose(ctx context.Context) error {
	return a.execute(ctx, state.Defeat, loseSceneName, a.setUpLose)
}

// SetUpGameplayScene returns the gameplay scene, building it on first use.
// Concurrent callers share one build; a failed build is not cached.
func (a *App) SetUpGameplayScene(ctx context.Context) (Scene, error) {
	if scene := a.cachedGameplay(); scene != nil {
		return scene, nil
	}

	// the build runs on the app's context, not the caller's
	ch := a.builds.DoChan(gameplayBuildKey, func() (any, error) {
		if scene := a.cachedGameplay(); scene != nil {
			return scene, nil
		}
		return a.buildGameplay(a.ctx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Scene), nil
	}
}

func (a *App) cachedGameplay() Scene {
	a.gameMu.Lock()
	defer a.gameMu.Unlock()
	return a.gameScene
}

func (a *App) buildGameplay(ctx context.Context) (Scene, error) {
	scene, err := a.engine.CreateScene(gameSceneName)
	if err != nil {
		return nil, fmt.Errorf("failed to create gameplay scene: %w", err)
	}

	scene.SetClearColor(gameplayClearColor)
	overview := camera.NewFree(mgl32.Vec3{0, 10, -30})
	overview.SetTarget(mgl32.Vec3{})
	scene.SetActiveCamera(overview)

	assets, err := a.loader.LoadSceneAssets(ctx, scene)
	if err != nil {
		scene.Dispose()
		return nil, fmt.Errorf("failed to load gameplay assets: %w", err)
	}

	a.gameMu.Lock()
	a.gameScene = scene
	a.gameAssets = assets
	a.gameMu.Unlock()

	a.log.Info("gameplay scene built",
		zap.Int("meshes", len(scene.World().Meshes())),
		zap.Int("materials", len(assets.Materials)),
	)

	return scene, nil
}

// startGameplayBuild kicks off the gameplay build without waiting for it
func (a *App) startGameplayBuild() {
	a.Go(func(ctx context.Context) error {
		_, err := a.SetUpGameplayScene(ctx)
		return err
	})
}
