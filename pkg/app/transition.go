package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Talha991s/Babylon-Game/pkg/input"
	"github.com/Talha991s/Babylon-Game/pkg/player"
	"github.com/Talha991s/Babylon-Game/pkg/state"
)

// transition is the working set of one planned transition
type transition struct {
	plan     state.Plan
	name     string
	setup    func(Scene)
	prev     Scene
	prevKind state.SceneKind
	next     Scene
	loading  bool
}

// execute plans ev against the current state and runs the plan's effects in
// order. On failure the incoming scene is dropped and the previous scene is
// left active and attached.
func (a *App) execute(ctx context.Context, ev state.Event, name string, setup func(Scene)) error {
	if a.isClosed() {
		return ErrClosed
	}
	if !a.transition.TryLock() {
		a.log.Debug("transition rejected", zap.Stringer("event", ev), zap.Error(ErrTransitionInProgress))
		return ErrTransitionInProgress
	}
	defer a.transition.Unlock()

	a.mu.RLock()
	current, prev, prevKind := a.state, a.scene, a.kind
	a.mu.RUnlock()

	plan, err := state.Next(current, ev)
	if err != nil {
		a.log.Debug("transition rejected", zap.Stringer("state", current), zap.Stringer("event", ev), zap.Error(err))
		return err
	}

	t := &transition{
		plan:     plan,
		name:     name,
		setup:    setup,
		prev:     prev,
		prevKind: prevKind,
	}

	for _, effect := range plan.Effects {
		if err := a.apply(ctx, t, effect); err != nil {
			a.rollback(t)
			a.log.Error("transition failed",
				zap.Stringer("from", plan.From),
				zap.Stringer("to", plan.To),
				zap.Stringer("effect", effect),
				zap.Error(err),
			)
			return fmt.Errorf("failed to enter %s: %w", plan.To, err)
		}
	}

	a.log.Info("state changed",
		zap.Stringer("from", plan.From),
		zap.Stringer("state", plan.To),
		zap.String("scene", t.next.Name()),
	)
	return nil
}

// apply runs a single effect
func (a *App) apply(ctx context.Context, t *transition, effect state.Effect) error {
	switch effect {
	case state.ShowLoading:
		a.engine.DisplayLoadingUI()
		t.loading = true

	case state.StartGameplayBuild:
		a.startGameplayBuild()

	case state.DetachInput:
		t.prev.DetachControl()

	case state.BuildScene:
		scene, err := a.engine.CreateScene(t.name)
		if err != nil {
			return fmt.Errorf("failed to create %s scene: %w", t.name, err)
		}
		t.next = scene
		if t.setup != nil {
			t.setup(scene)
		}

	case state.AwaitGameplay:
		scene, err := a.SetUpGameplayScene(ctx)
		if err != nil {
			return err
		}
		t.next = scene

	case state.AwaitReady:
		if err := t.next.WhenReady(ctx); err != nil {
			return fmt.Errorf("%s scene not ready: %w", t.next.Name(), err)
		}

	case state.HideLoading:
		a.engine.HideLoadingUI()
		t.loading = false

	case state.ReleasePrevious:
		a.release(t.prev, t.prevKind)

	case state.Activate:
		a.engine.SetActiveScene(t.next)
		t.next.AttachControl()

		a.mu.Lock()
		a.state = t.plan.To
		a.scene = t.next
		a.kind = t.plan.Scene
		a.mu.Unlock()

	case state.SpawnPlayer:
		a.spawnPlayer(t.next)

	default:
		return fmt.Errorf("unknown effect %s", effect)
	}

	return nil
}

// rollback undoes a transition that failed before the previous scene was
// released
func (a *App) rollback(t *transition) {
	if t.next != nil && t.plan.Scene == state.SceneFresh {
		t.next.Dispose()
	}
	t.prev.AttachControl()
	if t.loading {
		a.engine.HideLoadingUI()
	}
}

// release lets go of the outgoing scene. Fresh scenes are disposed; the
// gameplay scene is kept for the next visit with the player removed.
func (a *App) release(prev Scene, kind state.SceneKind) {
	if kind == state.SceneGameplay {
		a.despawnPlayer()
		prev.DetachControl()
		return
	}
	prev.Dispose()
}

func (a *App) spawnPlayer(scene Scene) {
	a.gameMu.Lock()
	assets := a.gameAssets
	a.gameMu.Unlock()

	src := input.Gated(a.input, scene.ControlAttached)
	p := player.Spawn(scene.World(), assets.Player, src, a.playerCfg)
	p.Activate(scene)

	if !a.loseAdded {
		overlay := scene.CreateFullscreenOverlay(overlayName)
		a.bindButton(scene, overlay.AddButton(LoseButton, "LOSE"), a.GoToLose)
		a.loseAdded = true
	}

	a.mu.Lock()
	a.player = p
	a.mu.Unlock()

	rig := p.Rig()
	a.log.Debug("player spawned",
		zap.Any("position", p.Position()),
		zap.Float32("camera_yaw", rig.Yaw()),
		zap.Float32("camera_tilt", rig.Tilt()),
		zap.Float32("camera_boom", rig.Boom()),
		zap.Float32("camera_fov", rig.FOV()),
	)
}

func (a *App) despawnPlayer() {
	a.mu.Lock()
	p := a.player
	a.player = nil
	a.mu.Unlock()

	if p != nil {
		p.Dispose()
	}
}

// bindButton makes btn detach its scene and run next in the background.
// Detaching first means a second press is ignored until control returns.
func (a *App) bindButton(scene Scene, btn Button, next func(context.Context) error) {
	btn.OnActivate(func() {
		scene.DetachControl()
		a.Go(func(ctx context.Context) error {
			err := next(ctx)
			if errors.Is(err, ErrTransitionInProgress) {
				// the running transition decides which scene gets control
				return nil
			}
			if err != nil && a.ActiveScene() == scene {
				scene.AttachControl()
			}
			return err
		})
	})
}
