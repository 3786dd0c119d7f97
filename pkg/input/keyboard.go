package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Smoothing is the fraction of the way the movement values travel toward the
// pressed axis each poll
const Smoothing = 0.2

// KeyReader reports the state of a keyboard key
type KeyReader interface {
	GetKeyState(key glfw.Key) glfw.Action
}

// Bindings maps directions to keys; any key in a list triggers the direction
type Bindings struct {
	Forward  []glfw.Key
	Backward []glfw.Key
	Left     []glfw.Key
	Right    []glfw.Key
}

// DefaultBindings uses WASD and the arrow keys
func DefaultBindings() Bindings {
	return Bindings{
		Forward:  []glfw.Key{glfw.KeyW, glfw.KeyUp},
		Backward: []glfw.Key{glfw.KeyS, glfw.KeyDown},
		Left:     []glfw.Key{glfw.KeyA, glfw.KeyLeft},
		Right:    []glfw.Key{glfw.KeyD, glfw.KeyRight},
	}
}

// Keyboard is a Source reading a GLFW keyboard. Each Snapshot call polls the
// keys once, so it should be called once per frame.
type Keyboard struct {
	keys     KeyReader
	bindings Bindings

	mu      sync.Mutex
	current Snapshot
}

// NewKeyboard creates a keyboard source with the default bindings
func NewKeyboard(keys KeyReader) *Keyboard {
	return NewKeyboardWithBindings(keys, DefaultBindings())
}

// NewKeyboardWithBindings creates a keyboard source with custom bindings
func NewKeyboardWithBindings(keys KeyReader, bindings Bindings) *Keyboard {
	return &Keyboard{keys: keys, bindings: bindings}
}

// Snapshot polls the keyboard and returns the updated movement values
func (k *Keyboard) Snapshot() Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.current.VerticalAxis = k.axis(k.bindings.Forward, k.bindings.Backward)
	k.current.Vertical = smooth(k.current.Vertical, k.current.VerticalAxis)

	k.current.HorizontalAxis = k.axis(k.bindings.Right, k.bindings.Left)
	k.current.Horizontal = smooth(k.current.Horizontal, k.current.HorizontalAxis)

	return k.current
}

// axis returns 1 when a positive key is down, -1 for a negative key, else 0
func (k *Keyboard) axis(positive, negative []glfw.Key) float32 {
	switch {
	case k.anyPressed(positive):
		return 1
	case k.anyPressed(negative):
		return -1
	default:
		return 0
	}
}

func (k *Keyboard) anyPressed(keys []glfw.Key) bool {
	for _, key := range keys {
		if state := k.keys.GetKeyState(key); state == glfw.Press || state == glfw.Repeat {
			return true
		}
	}
	return false
}

// smooth eases value toward a pressed axis and drops it to zero on release
func smooth(value, axis float32) float32 {
	if axis == 0 {
		return 0
	}
	return value + (axis-value)*Smoothing
}
