// Package input turns device state into the per-frame movement snapshot the
// player controller consumes.
package input

// Snapshot is one frame of movement input. Horizontal and Vertical are the
// smoothed movement values in [-1, 1]; the Axis fields are the raw direction
// the player is pressing.
type Snapshot struct {
	Horizontal     float32
	Vertical       float32
	HorizontalAxis float32
	VerticalAxis   float32
}

// IsZero reports whether no direction is pressed
func (s Snapshot) IsZero() bool {
	return s.HorizontalAxis == 0 && s.VerticalAxis == 0
}

// Source supplies a snapshot once per frame
type Source interface {
	Snapshot() Snapshot
}

// SourceFunc adapts a function to Source
type SourceFunc func() Snapshot

// Snapshot calls f
func (f SourceFunc) Snapshot() Snapshot {
	return f()
}

// Gated wraps src so that it reads as idle while enabled returns false. The
// wrapped source is not polled while gated.
func Gated(src Source, enabled func() bool) Source {
	return SourceFunc(func() Snapshot {
		if !enabled() {
			return Snapshot{}
		}
		return src.Snapshot()
	})
}
