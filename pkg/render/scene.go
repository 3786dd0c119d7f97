package render

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Talha991s/Babylon-Game/pkg/app"
	"github.com/Talha991s/Babylon-Game/pkg/camera"
	"github.com/Talha991s/Babylon-Game/pkg/world"
)

var _ app.Scene = (*Scene)(nil)

// ErrSceneDisposed is returned when waiting on a scene that was disposed
var ErrSceneDisposed = errors.New("scene disposed")

// beforeRender is a registered per-frame callback
type beforeRender struct {
	id int
	fn func(dt float32)
}

// Scene is a world plus everything needed to draw it. It is safe to build
// a scene from any goroutine; only the renderer draws it.
type Scene struct {
	name  string
	world *world.World

	ready       chan struct{}
	readyOnce   sync.Once
	disposed    chan struct{}
	disposeOnce sync.Once

	mu         sync.RWMutex
	attached   bool
	clearColor mgl32.Vec4
	camera     camera.Camera
	overlays   []*Overlay
	callbacks  []beforeRender
	nextID     int
}

// NewScene creates an empty scene with control detached
func NewScene(name string) *Scene {
	return &Scene{
		name:       name,
		world:      world.NewWorld(),
		ready:      make(chan struct{}),
		disposed:   make(chan struct{}),
		clearColor: mgl32.Vec4{0, 0, 0, 1},
	}
}

// Name returns the scene's name
func (s *Scene) Name() string {
	return s.name
}

// World returns the scene's meshes
func (s *Scene) World() *world.World {
	return s.world
}

// AttachControl lets the scene receive input
func (s *Scene) AttachControl() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isDisposed() {
		s.attached = true
	}
}

// DetachControl stops the scene receiving input
func (s *Scene) DetachControl() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = false
}

// ControlAttached reports whether the scene receives input
func (s *Scene) ControlAttached() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attached
}

// markReady is called by the renderer once the scene can be drawn
func (s *Scene) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// WhenReady blocks until the renderer has picked the scene up
func (s *Scene) WhenReady(ctx context.Context) error {
	select {
	case <-s.ready:
		if s.isDisposed() {
			return ErrSceneDisposed
		}
		return nil
	case <-s.disposed:
		return ErrSceneDisposed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispose releases the scene's meshes, overlays and callbacks
func (s *Scene) Dispose() {
	s.disposeOnce.Do(func() {
		close(s.disposed)

		s.mu.Lock()
		s.attached = false
		s.camera = nil
		s.overlays = nil
		s.callbacks = nil
		s.mu.Unlock()

		s.world.Clear()
	})
}

// IsDisposed reports whether Dispose has been called
func (s *Scene) IsDisposed() bool {
	return s.isDisposed()
}

func (s *Scene) isDisposed() bool {
	select {
	case <-s.disposed:
		return true
	default:
		return false
	}
}

// SetClearColor sets the background colour
func (s *Scene) SetClearColor(c mgl32.Vec4) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearColor = c
}

// ClearColor returns the background colour
func (s *Scene) ClearColor() mgl32.Vec4 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clearColor
}

// SetActiveCamera sets the camera the scene is drawn from
func (s *Scene) SetActiveCamera(c camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = c
}

// Camera returns the active camera, or nil
func (s *Scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.camera
}

// CreateFullscreenOverlay adds an overlay drawn over the world
func (s *Scene) CreateFullscreenOverlay(name string) app.Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := newOverlay(name)
	s.overlays = append(s.overlays, o)
	return o
}

// Overlays returns the scene's overlays in creation order
func (s *Scene) Overlays() []*Overlay {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Overlay, len(s.overlays))
	copy(out, s.overlays)
	return out
}

// RegisterBeforeRender adds a callback run every frame before drawing
func (s *Scene) RegisterBeforeRender(fn func(dt float32)) (unregister func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.callbacks = append(s.callbacks, beforeRender{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, cb := range s.callbacks {
			if cb.id == id {
				s.callbacks = append(s.callbacks[:i], s.callbacks[i+1:]...)
				return
			}
		}
	}
}

// runBeforeRender calls the registered callbacks in registration order
func (s *Scene) runBeforeRender(dt float32) {
	s.mu.RLock()
	callbacks := make([]beforeRender, len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.RUnlock()

	for _, cb := range callbacks {
		cb.fn(dt)
	}
}

// buttons returns every button, topmost overlay first
func (s *Scene) buttons() []*Button {
	overlays := s.Overlays()

	var out []*Button
	for i := len(overlays) - 1; i >= 0; i-- {
		out = append(out, overlays[i].Buttons()...)
	}
	return out
}

// buttonAt returns the button under (x, y), or nil
func (s *Scene) buttonAt(x, y float32) *Button {
	for _, b := range s.buttons() {
		if b.Rect().Contains(x, y) {
			return b
		}
	}
	return nil
}

// hover marks the button under (x, y) as hovered
func (s *Scene) hover(x, y float32) {
	for _, b := range s.buttons() {
		b.setHovered(b.Rect().Contains(x, y))
	}
}

// Title describes the scene and its buttons for the window title
func (s *Scene) Title() string {
	buttons := s.buttons()
	if len(buttons) == 0 {
		return s.name
	}

	labels := make([]string, len(buttons))
	for i, b := range buttons {
		labels[i] = b.Label()
	}
	return s.name + " [" + strings.Join(labels, " | ") + "]"
}
