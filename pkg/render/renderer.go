package render

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Talha991s/Babylon-Game/internal/openglhelper"
	"github.com/Talha991s/Babylon-Game/pkg/app"
	"github.com/Talha991s/Babylon-Game/pkg/config"
	"github.com/Talha991s/Babylon-Game/pkg/world"
)

// Renderer owns the window and draws the active scene every frame
type Renderer struct {
	window *openglhelper.Window
	log    *zap.Logger

	sceneShader   *openglhelper.Shader
	overlayShader *openglhelper.Shader
	cube          *openglhelper.Mesh
	quad          *openglhelper.Mesh

	// Shared with transition goroutines
	mu      sync.Mutex
	active  *Scene
	pending []*Scene
	loading bool

	// Timing
	lastFrameTime float64
	deltaTime     float32
	totalTime     float32

	title    string
	isClosed bool
}

var _ app.Engine = (*Renderer)(nil)

// NewRenderer opens the window and uploads the shared GPU resources. It must
// be called from the main thread.
func NewRenderer(cfg config.WindowConfig, log *zap.Logger) (*Renderer, error) {
	window, err := openglhelper.NewWindow(cfg.Width, cfg.Height, cfg.Title, cfg.VSync, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer := &Renderer{
		window: window,
		log:    log,
	}

	sceneShader, err := openglhelper.NewShader(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load scene shader: %w", err)
	}
	renderer.sceneShader = sceneShader

	overlayShader, err := openglhelper.NewShader(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		sceneShader.Delete()
		window.Close()
		return nil, fmt.Errorf("failed to load overlay shader: %w", err)
	}
	renderer.overlayShader = overlayShader

	renderer.cube = openglhelper.NewCube()
	renderer.quad = openglhelper.NewQuad()

	// Set up callbacks
	window.GLFWWindow().SetKeyCallback(renderer.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(renderer.cursorPosCallback)
	window.GLFWWindow().SetMouseButtonCallback(renderer.mouseButtonCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(renderer.framebufferSizeCallback)

	return renderer, nil
}

// Window exposes the window for keyboard polling
func (r *Renderer) Window() *openglhelper.Window {
	return r.window
}

// CreateScene creates a scene that becomes ready on the next frame
func (r *Renderer) CreateScene(name string) (app.Scene, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isClosed {
		return nil, fmt.Errorf("failed to create scene %q: renderer closed", name)
	}

	s := NewScene(name)
	r.pending = append(r.pending, s)
	return s, nil
}

// SetActiveScene makes s the scene drawn from the next frame on
func (r *Renderer) SetActiveScene(s app.Scene) {
	scene, ok := s.(*Scene)
	if !ok {
		r.log.Error("scene not created by this renderer", zap.String("scene", s.Name()))
		return
	}

	r.mu.Lock()
	r.active = scene
	r.mu.Unlock()
}

// DisplayLoadingUI draws the loading screen over the active scene
func (r *Renderer) DisplayLoadingUI() {
	r.mu.Lock()
	r.loading = true
	r.mu.Unlock()
}

// HideLoadingUI removes the loading screen
func (r *Renderer) HideLoadingUI() {
	r.mu.Lock()
	r.loading = false
	r.mu.Unlock()
}

// Run drives the frame loop until the window closes or ctx is done
func (r *Renderer) Run(ctx context.Context) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)

	r.lastFrameTime = glfw.GetTime()

	for !r.window.ShouldClose() && ctx.Err() == nil {
		// Calculate delta time
		currentTime := glfw.GetTime()
		r.deltaTime = min(float32(currentTime-r.lastFrameTime), MaxFrameTime)
		r.lastFrameTime = currentTime
		r.totalTime += r.deltaTime

		r.window.PollEvents()
		r.resolvePending()

		scene, loading := r.frameState()
		if scene == nil || scene.IsDisposed() {
			// keep the last frame on screen until a live scene is active
			glfw.WaitEventsTimeout(0.01)
			continue
		}

		r.updateTitle(scene)
		scene.runBeforeRender(r.deltaTime)

		r.render(scene, loading)
		r.window.SwapBuffers()
	}
}

// resolvePending marks every scene created since the last frame as ready
func (r *Renderer) resolvePending() {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()

	for _, s := range pending {
		s.markReady()
	}
}

func (r *Renderer) frameState() (*Scene, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active, r.loading
}

func (r *Renderer) activeScene() *Scene {
	scene, _ := r.frameState()
	return scene
}

// render draws the world, then the overlays, then the loading screen
func (r *Renderer) render(s *Scene, loading bool) {
	r.window.Clear(s.ClearColor())

	width, height := r.window.Size()
	if cam := s.Camera(); cam != nil && width > 0 && height > 0 {
		aspect := float32(width) / float32(height)

		gl.Enable(gl.DEPTH_TEST)
		gl.Enable(gl.CULL_FACE)
		gl.Disable(gl.BLEND)

		r.sceneShader.Use()
		r.sceneShader.SetMat4("view", cam.ViewMatrix())
		r.sceneShader.SetMat4("projection", cam.ProjectionMatrix(aspect))
		r.sceneShader.SetVec3("lightDir", LightDirection)
		r.sceneShader.SetFloat("ambient", AmbientLight)

		for _, d := range s.World().Drawables() {
			r.sceneShader.SetMat4("model", modelMatrix(d))
			r.sceneShader.SetVec4("diffuse", d.Material.Diffuse)
			r.cube.Draw()
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.overlayShader.Use()
	for _, o := range s.Overlays() {
		for _, b := range o.Buttons() {
			color := ButtonColor
			if b.Hovered() {
				color = ButtonHoverColor
			}
			r.drawRect(b.Rect(), color)
		}
	}

	if loading {
		r.drawRect(Rect{X: 0, Y: 0, W: 1, H: 1}, LoadingColor)
		r.drawRect(loadingBar(r.totalTime), LoadingBarColor)
	}
}

func (r *Renderer) drawRect(rect Rect, color mgl32.Vec4) {
	r.overlayShader.SetVec4("rect", rect.Vec4())
	r.overlayShader.SetVec4("color", color)
	r.quad.Draw()
}

// modelMatrix maps the unit cube onto a mesh's world box
func modelMatrix(d world.Drawable) mgl32.Mat4 {
	center := d.Bounds.Center()
	size := d.Bounds.Size()

	return mgl32.Translate3D(d.Position.X(), d.Position.Y(), d.Position.Z()).
		Mul4(d.Rotation.Mat4()).
		Mul4(mgl32.Translate3D(center.X(), center.Y(), center.Z())).
		Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z()))
}

// loadingBar returns the pulsing bar drawn in the middle of the loading screen
func loadingBar(t float32) Rect {
	width := 0.1 + 0.3*(0.5+0.5*float32(math.Sin(float64(t)*3)))
	return Rect{X: (1 - width) / 2, Y: 0.48, W: width, H: 0.04}
}

// updateTitle shows the scene and its buttons in the title bar
func (r *Renderer) updateTitle(s *Scene) {
	title := r.window.Title() + " - " + s.Title()
	if title == r.title {
		return
	}
	r.title = title
	r.window.SetTitle(title)
}

// Cleanup releases GPU resources and closes the window
func (r *Renderer) Cleanup() {
	r.mu.Lock()
	if r.isClosed {
		r.mu.Unlock()
		return
	}
	r.isClosed = true
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()

	// scenes nobody will draw can never become ready
	for _, s := range pending {
		s.Dispose()
	}

	r.cube.Delete()
	r.quad.Delete()
	r.sceneShader.Delete()
	r.overlayShader.Delete()

	r.window.Close()
}

func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != Press {
		return
	}

	switch key {
	case KeyEscape:
		r.window.SetShouldClose(true)
	case KeyEnter, KeySpace:
		s := r.activeScene()
		if s == nil || !s.ControlAttached() {
			return
		}
		if buttons := s.buttons(); len(buttons) > 0 {
			buttons[0].activate()
		}
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, _, _ float64) {
	s := r.activeScene()
	if s == nil {
		return
	}
	s.hover(r.window.CursorPosition())
}

func (r *Renderer) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != Press {
		return
	}

	s := r.activeScene()
	if s == nil || !s.ControlAttached() {
		return
	}
	if b := s.buttonAt(r.window.CursorPosition()); b != nil {
		b.activate()
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
}
