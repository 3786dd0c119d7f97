package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Talha991s/Babylon-Game/pkg/camera"
	"github.com/Talha991s/Babylon-Game/pkg/input"
	"github.com/Talha991s/Babylon-Game/pkg/player"
	"github.com/Talha991s/Babylon-Game/pkg/state"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

func idle() input.Source {
	return input.SourceFunc(func() input.Snapshot { return input.Snapshot{} })
}

func newTestAppWithInput(t *testing.T, src input.Source) (*App, *fakeEngine, *fakeLoader) {
	t.Helper()

	engine := newFakeEngine()
	loader := &fakeLoader{}
	a, err := New(engine, loader, src, player.DefaultConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	return a, engine, loader
}

func newTestApp(t *testing.T) (*App, *fakeEngine, *fakeLoader) {
	t.Helper()
	return newTestAppWithInput(t, idle())
}

// enterGameplay walks from the menu to gameplay and returns the gameplay scene
func enterGameplay(t *testing.T, a *App, engine *fakeEngine) *fakeScene {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, a.GoToStart(ctx))
	require.NoError(t, a.GoToCutscene(ctx))
	require.NoError(t, a.GoToGame(ctx))

	game := engine.activeScene()
	require.Equal(t, gameSceneName, game.Name())
	return game
}

func countPlayers(s *fakeScene) int {
	n := 0
	for _, m := range s.World().Meshes() {
		if m.Name() == player.MeshName {
			n++
		}
	}
	return n
}

func TestNewStartsOnBootScene(t *testing.T) {
	a, engine, _ := newTestApp(t)

	boot := engine.activeScene()
	require.NotNil(t, boot)
	assert.Equal(t, bootSceneName, boot.Name())
	assert.Same(t, boot, a.ActiveScene())
	assert.True(t, boot.ControlAttached())
	assert.Equal(t, state.Start, a.State())
	assert.Nil(t, a.Player())
}

func TestNewFailsWithoutBootScene(t *testing.T) {
	engine := newFakeEngine()
	createErr := errors.New("no context")
	engine.failCreate[bootSceneName] = createErr

	_, err := New(engine, &fakeLoader{}, idle(), player.DefaultConfig(), zaptest.NewLogger(t))
	assert.ErrorIs(t, err, createErr)
}

func TestGoToStartReplacesBootScene(t *testing.T) {
	a, engine, _ := newTestApp(t)

	require.NoError(t, a.GoToStart(context.Background()))

	start := engine.activeScene()
	assert.Equal(t, startSceneName, start.Name())
	assert.Equal(t, state.Start, a.State())
	assert.True(t, start.ControlAttached())
	assert.True(t, engine.created(bootSceneName)[0].isDisposed())
	assert.Equal(t, 1, engine.attached())
	assert.True(t, engine.loadingBalanced())
	assert.Equal(t, menuClearColor, start.clear)
	assert.IsType(t, &camera.Free{}, start.activeCamera())

	buttons := start.buttons(StartButton)
	require.Len(t, buttons, 1)
	assert.Equal(t, "PLAY", buttons[0].Label())
}

func TestFullCycle(t *testing.T) {
	a, engine, _ := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.GoToStart(ctx))
	start := engine.activeScene()

	require.NoError(t, a.GoToCutscene(ctx))
	cut := engine.activeScene()
	assert.Equal(t, state.Cutscene, a.State())
	assert.Equal(t, cutsceneSceneName, cut.Name())
	assert.True(t, start.isDisposed())
	require.Len(t, cut.buttons(NextButton), 1)
	assert.Equal(t, "NEXT", cut.buttons(NextButton)[0].Label())

	require.NoError(t, a.GoToGame(ctx))
	game := engine.activeScene()
	assert.Equal(t, state.Gameplay, a.State())
	assert.Equal(t, gameSceneName, game.Name())
	assert.True(t, cut.isDisposed())
	assert.Equal(t, gameplayClearColor, game.clear)
	assert.Equal(t, 1, game.callbackCount())
	assert.Equal(t, 1, engine.attached())

	p := a.Player()
	require.NotNil(t, p)
	assert.Same(t, p.Rig(), game.activeCamera())
	require.Len(t, game.buttons(LoseButton), 1)
	assert.Equal(t, "LOSE", game.buttons(LoseButton)[0].Label())

	require.NoError(t, a.GoToLose(ctx))
	lose := engine.activeScene()
	assert.Equal(t, state.Lose, a.State())
	assert.Equal(t, loseSceneName, lose.Name())
	assert.Nil(t, a.Player())
	assert.False(t, game.isDisposed())
	assert.False(t, game.ControlAttached())
	assert.Equal(t, 0, game.callbackCount())
	assert.Equal(t, 0, countPlayers(game))
	require.Len(t, lose.buttons(MainMenuButton), 1)
	assert.Equal(t, "MAIN MENU", lose.buttons(MainMenuButton)[0].Label())

	require.NoError(t, a.GoToStart(ctx))
	assert.Equal(t, state.Start, a.State())
	assert.True(t, lose.isDisposed())
	assert.Equal(t, 1, engine.attached())
	assert.True(t, engine.loadingBalanced())
}

func TestGameplaySceneIsBuiltOnce(t *testing.T) {
	a, engine, loader := newTestApp(t)

	var first *fakeScene
	for i := 0; i < 3; i++ {
		game := enterGameplay(t, a, engine)
		if first == nil {
			first = game
		}
		assert.Same(t, first, game)
		assert.Equal(t, 1, countPlayers(game))
		assert.Equal(t, 1, game.callbackCount())

		require.NoError(t, a.GoToLose(context.Background()))
	}

	assert.Len(t, engine.created(gameSceneName), 1)
	assert.Equal(t, 1, loader.callCount())
	assert.False(t, first.isDisposed())
	assert.Len(t, first.buttons(LoseButton), 1)
}

func TestGameplayWaitsForBackgroundBuild(t *testing.T) {
	a, engine, loader := newTestApp(t)
	loader.gate = make(chan struct{})

	require.NoError(t, a.GoToStart(context.Background()))
	start := engine.activeScene()

	start.buttons(StartButton)[0].press()
	assert.False(t, start.ControlAttached())

	require.Eventually(t, func() bool { return a.State() == state.Cutscene }, waitFor, tick)
	require.Eventually(t, func() bool { return loader.callCount() == 1 }, waitFor, tick)

	cut := engine.activeScene()
	cut.buttons(NextButton)[0].press()

	assert.Never(t, func() bool { return a.State() == state.Gameplay }, 50*time.Millisecond, tick)
	assert.Same(t, cut, a.ActiveScene())

	close(loader.gate)

	require.Eventually(t, func() bool { return a.Player() != nil && engine.loadingBalanced() }, waitFor, tick)
	assert.Equal(t, state.Gameplay, a.State())
	assert.Equal(t, 1, loader.callCount())
}

func TestStartButtonIgnoresDoublePress(t *testing.T) {
	a, engine, _ := newTestApp(t)
	require.NoError(t, a.GoToStart(context.Background()))

	play := engine.activeScene().buttons(StartButton)[0]
	play.press()
	play.press()

	require.Eventually(t, func() bool { return a.State() == state.Cutscene }, waitFor, tick)
	a.Close()

	assert.Len(t, engine.created(cutsceneSceneName), 1)
	assert.Equal(t, 1, engine.attached())
}

func TestFailedBuildKeepsCutsceneActive(t *testing.T) {
	a, engine, loader := newTestApp(t)
	ctx := context.Background()
	loadErr := errors.New("missing level")
	loader.setErr(loadErr)

	require.NoError(t, a.GoToStart(ctx))
	require.NoError(t, a.GoToCutscene(ctx))
	cut := engine.activeScene()

	err := a.GoToGame(ctx)
	require.ErrorIs(t, err, loadErr)

	assert.Equal(t, state.Cutscene, a.State())
	assert.Same(t, cut, a.ActiveScene())
	assert.True(t, cut.ControlAttached())
	assert.False(t, cut.isDisposed())
	assert.Equal(t, 1, engine.attached())
	assert.True(t, engine.loadingBalanced())
	for _, s := range engine.created(gameSceneName) {
		assert.True(t, s.isDisposed())
	}

	// the failure is not cached
	loader.setErr(nil)
	require.NoError(t, a.GoToGame(ctx))
	assert.Equal(t, state.Gameplay, a.State())
}

func TestReadyFailureKeepsPreviousScene(t *testing.T) {
	a, engine, _ := newTestApp(t)
	readyErr := errors.New("shader compile failed")
	engine.failReady[loseSceneName] = readyErr

	game := enterGameplay(t, a, engine)

	err := a.GoToLose(context.Background())
	require.ErrorIs(t, err, readyErr)

	assert.Equal(t, state.Gameplay, a.State())
	assert.Same(t, game, a.ActiveScene())
	assert.True(t, game.ControlAttached())
	assert.NotNil(t, a.Player())
	assert.True(t, engine.created(loseSceneName)[0].isDisposed())
	assert.Equal(t, 1, engine.attached())
	assert.True(t, engine.loadingBalanced())
}

func TestCreateFailureKeepsBootScene(t *testing.T) {
	engine := newFakeEngine()
	createErr := errors.New("out of memory")
	engine.failCreate[startSceneName] = createErr

	a, err := New(engine, &fakeLoader{}, idle(), player.DefaultConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(a.Close)
	boot := engine.activeScene()

	err = a.GoToStart(context.Background())
	require.ErrorIs(t, err, createErr)

	assert.Same(t, boot, a.ActiveScene())
	assert.True(t, boot.ControlAttached())
	assert.False(t, boot.isDisposed())
	assert.True(t, engine.loadingBalanced())
}

func TestRejectsOverlappingTransitions(t *testing.T) {
	a, engine, _ := newTestApp(t)
	gate := make(chan struct{})
	engine.readyGate[cutsceneSceneName] = gate
	ctx := context.Background()

	require.NoError(t, a.GoToStart(ctx))

	done := make(chan error, 1)
	go func() { done <- a.GoToCutscene(ctx) }()
	require.Eventually(t, func() bool { return len(engine.created(cutsceneSceneName)) == 1 }, waitFor, tick)

	assert.ErrorIs(t, a.GoToStart(ctx), ErrTransitionInProgress)

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, state.Cutscene, a.State())
	assert.Len(t, engine.created(startSceneName), 1)
}

func TestRejectsOutOfOrderTransitions(t *testing.T) {
	a, engine, _ := newTestApp(t)
	ctx := context.Background()

	assert.ErrorIs(t, a.GoToGame(ctx), state.ErrInvalidTransition)
	assert.ErrorIs(t, a.GoToLose(ctx), state.ErrInvalidTransition)

	assert.Equal(t, state.Start, a.State())
	assert.True(t, engine.activeScene().ControlAttached())
	assert.Empty(t, engine.created(startSceneName))
	assert.True(t, engine.loadingBalanced())
}

func TestCancelledWaitLeavesCutsceneActive(t *testing.T) {
	a, engine, loader := newTestApp(t)
	loader.gate = make(chan struct{})

	require.NoError(t, a.GoToStart(context.Background()))
	require.NoError(t, a.GoToCutscene(context.Background()))
	cut := engine.activeScene()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := a.GoToGame(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, state.Cutscene, a.State())
	assert.True(t, cut.ControlAttached())

	close(loader.gate)
	require.NoError(t, a.GoToGame(context.Background()))
	assert.Equal(t, state.Gameplay, a.State())
	assert.Equal(t, 1, loader.callCount())
}

func TestSetUpGameplaySceneSharesBuild(t *testing.T) {
	a, engine, loader := newTestApp(t)
	loader.gate = make(chan struct{})

	var wg sync.WaitGroup
	results := make([]Scene, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := a.SetUpGameplayScene(context.Background())
			assert.NoError(t, err)
			results[i] = s
		}(i)
	}

	require.Eventually(t, func() bool { return loader.callCount() == 1 }, waitFor, tick)
	close(loader.gate)
	wg.Wait()

	for _, s := range results {
		assert.Same(t, results[0], s)
	}
	assert.Equal(t, 1, loader.callCount())
	assert.Len(t, engine.created(gameSceneName), 1)
}

func TestClosedAppRejectsTransitions(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.Close()

	assert.ErrorIs(t, a.GoToStart(context.Background()), ErrClosed)
}

func TestPlayerMovesOnlyWhileAttached(t *testing.T) {
	forward := input.SourceFunc(func() input.Snapshot {
		return input.Snapshot{Vertical: 1, VerticalAxis: 1}
	})
	a, engine, _ := newTestAppWithInput(t, forward)
	game := enterGameplay(t, a, engine)
	p := a.Player()

	game.frame(1.0 / 60.0)
	assert.Less(t, p.Position().Z(), float32(0))

	game.DetachControl()
	before := p.Position()
	game.frame(1.0 / 60.0)
	assert.Equal(t, before, p.Position())
}
