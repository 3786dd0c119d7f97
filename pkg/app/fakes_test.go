package app

import (
	"context"
	"errors"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Talha991s/Babylon-Game/pkg/camera"
	"github.com/Talha991s/Babylon-Game/pkg/player"
	"github.com/Talha991s/Babylon-Game/pkg/world"
)

var errFakeDisposed = errors.New("scene disposed")

// fakeEngine records scenes and loading UI calls
type fakeEngine struct {
	mu            sync.Mutex
	scenes        []*fakeScene
	active        *fakeScene
	loadingShown  int
	loadingHidden int

	failCreate map[string]error
	failReady  map[string]error
	readyGate  map[string]chan struct{}
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		failCreate: map[string]error{},
		failReady:  map[string]error{},
		readyGate:  map[string]chan struct{}{},
	}
}

func (e *fakeEngine) CreateScene(name string) (Scene, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.failCreate[name]; err != nil {
		return nil, err
	}

	s := &fakeScene{
		name:     name,
		world:    world.NewWorld(),
		readyErr: e.failReady[name],
		gate:     e.readyGate[name],
	}
	e.scenes = append(e.scenes, s)
	return s, nil
}

func (e *fakeEngine) SetActiveScene(s Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = s.(*fakeScene)
}

func (e *fakeEngine) DisplayLoadingUI() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadingShown++
}

func (e *fakeEngine) HideLoadingUI() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loadingHidden++
}

func (e *fakeEngine) activeScene() *fakeScene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// created returns every scene built with the given name
func (e *fakeEngine) created(name string) []*fakeScene {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []*fakeScene
	for _, s := range e.scenes {
		if s.name == name {
			out = append(out, s)
		}
	}
	return out
}

// attached counts scenes with control attached
func (e *fakeEngine) attached() int {
	e.mu.Lock()
	scenes := append([]*fakeScene(nil), e.scenes...)
	e.mu.Unlock()

	n := 0
	for _, s := range scenes {
		if s.ControlAttached() {
			n++
		}
	}
	return n
}

func (e *fakeEngine) loadingBalanced() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadingShown == e.loadingHidden
}

// fakeScene is an in-memory scene
type fakeScene struct {
	name     string
	world    *world.World
	readyErr error
	gate     chan struct{}

	mu        sync.Mutex
	attached  bool
	disposed  bool
	clear     mgl32.Vec4
	camera    camera.Camera
	overlays  []*fakeOverlay
	callbacks map[int]func(dt float32)
	nextID    int
}

func (s *fakeScene) Name() string        { return s.name }
func (s *fakeScene) World() *world.World { return s.world }

func (s *fakeScene) AttachControl() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = true
}

func (s *fakeScene) DetachControl() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = false
}

func (s *fakeScene) ControlAttached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}

func (s *fakeScene) WhenReady(ctx context.Context) error {
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return errFakeDisposed
	}
	return s.readyErr
}

func (s *fakeScene) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	s.attached = false
}

func (s *fakeScene) isDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

func (s *fakeScene) SetClearColor(c mgl32.Vec4) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear = c
}

func (s *fakeScene) SetActiveCamera(c camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = c
}

func (s *fakeScene) activeCamera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}

func (s *fakeScene) CreateFullscreenOverlay(name string) Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := &fakeOverlay{name: name, scene: s}
	s.overlays = append(s.overlays, o)
	return o
}

func (s *fakeScene) RegisterBeforeRender(fn func(dt float32)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.callbacks == nil {
		s.callbacks = map[int]func(dt float32){}
	}
	id := s.nextID
	s.nextID++
	s.callbacks[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.callbacks, id)
	}
}

// frame runs the before-render callbacks once
func (s *fakeScene) frame(dt float32) {
	s.mu.Lock()
	callbacks := make([]func(dt float32), 0, len(s.callbacks))
	for _, fn := range s.callbacks {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(dt)
	}
}

func (s *fakeScene) callbackCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.callbacks)
}

// buttons returns every button with the given name across the overlays
func (s *fakeScene) buttons(name string) []*fakeButton {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*fakeButton
	for _, o := range s.overlays {
		for _, b := range o.buttons {
			if b.name == name {
				out = append(out, b)
			}
		}
	}
	return out
}

type fakeOverlay struct {
	name    string
	scene   *fakeScene
	buttons []*fakeButton
}

func (o *fakeOverlay) AddButton(name, label string) Button {
	o.scene.mu.Lock()
	defer o.scene.mu.Unlock()

	b := &fakeButton{name: name, label: label}
	o.buttons = append(o.buttons, b)
	return b
}

type fakeButton struct {
	name     string
	label    string
	mu       sync.Mutex
	handlers []func()
}

func (b *fakeButton) Name() string  { return b.name }
func (b *fakeButton) Label() string { return b.label }

func (b *fakeButton) OnActivate(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, fn)
}

func (b *fakeButton) press() {
	b.mu.Lock()
	handlers := append([]func(){}, b.handlers...)
	b.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

// fakeLoader fills the gameplay world with a ground slab
type fakeLoader struct {
	mu    sync.Mutex
	calls int
	err   error
	gate  chan struct{}
}

func (l *fakeLoader) LoadSceneAssets(ctx context.Context, scene Scene) (*Assets, error) {
	l.mu.Lock()
	l.calls++
	err, gate := l.err, l.gate
	l.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	scene.World().NewMesh("ground", world.NewBox(mgl32.Vec3{-50, -1, -50}, mgl32.Vec3{50, 0, 50}), mgl32.Vec3{})

	return &Assets{
		Player:    player.DefaultTemplate(mgl32.Vec3{}),
		Materials: []world.Material{world.DefaultMaterial},
	}, nil
}

func (l *fakeLoader) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func (l *fakeLoader) setErr(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}
