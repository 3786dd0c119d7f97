package render

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Talha991s/Babylon-Game/pkg/app"
)

// Rect is a screen rectangle in normalized coordinates, origin bottom left
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside the rectangle
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Vec4 packs the rectangle for the overlay shader
func (r Rect) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{r.X, r.Y, r.W, r.H}
}

// Button is a clickable rectangle on an overlay
type Button struct {
	name  string
	label string

	mu       sync.Mutex
	rect     Rect
	hovered  bool
	handlers []func()
}

// Name returns the button's identifier
func (b *Button) Name() string {
	return b.name
}

// Label returns the button's caption
func (b *Button) Label() string {
	return b.label
}

// OnActivate registers fn to run when the button is pressed
func (b *Button) OnActivate(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, fn)
}

// Rect returns the button's screen rectangle
func (b *Button) Rect() Rect {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rect
}

// Hovered reports whether the cursor is over the button
func (b *Button) Hovered() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hovered
}

func (b *Button) setHovered(hovered bool) {
	b.mu.Lock()
	b.hovered = hovered
	b.mu.Unlock()
}

// activate runs the handlers outside the lock so they may touch the button
func (b *Button) activate() {
	b.mu.Lock()
	handlers := make([]func(), len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

// Overlay is a fullscreen layer of buttons stacked at the bottom centre
type Overlay struct {
	name string

	mu      sync.Mutex
	buttons []*Button
}

func newOverlay(name string) *Overlay {
	return &Overlay{name: name}
}

// Name returns the overlay's identifier
func (o *Overlay) Name() string {
	return o.name
}

// AddButton adds a button above the existing ones
func (o *Overlay) AddButton(name, label string) app.Button {
	o.mu.Lock()
	defer o.mu.Unlock()

	b := &Button{name: name, label: label}
	b.rect = buttonRect(len(o.buttons))
	o.buttons = append(o.buttons, b)

	return b
}

// Buttons returns the overlay's buttons, bottom first
func (o *Overlay) Buttons() []*Button {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]*Button, len(o.buttons))
	copy(out, o.buttons)
	return out
}

// buttonRect returns the rectangle of the i-th button from the bottom
func buttonRect(i int) Rect {
	return Rect{
		X: (1 - ButtonWidth) / 2,
		Y: ButtonBottom + float32(i)*(ButtonHeight+ButtonSpacing),
		W: ButtonWidth,
		H: ButtonHeight,
	}
}
