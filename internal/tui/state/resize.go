package state

import "time"

// Panel geometry. Heights count the bottom panel's content rows.
const (
	// MinPanelHeight keeps the panel tall enough to show a few diff rows.
	MinPanelHeight = 3
	// DefaultPanelHeight is the height used on first run and after a reset.
	DefaultPanelHeight = 10
	// MaxPanelRatio caps the panel at this share of the terminal height so
	// the editors always keep room.
	MaxPanelRatio = 0.6
	// DoubleTapWindow is how close together two divider activations must be
	// to count as a reset to the default height.
	DoubleTapWindow = 400 * time.Millisecond
)

// MaxPanelHeight returns the clamp ceiling for a terminal of the given
// height, never below MinPanelHeight so degenerate terminals still clamp
// consistently.
func MaxPanelHeight(viewport int) int {
	max := int(float64(viewport) * MaxPanelRatio)
	if max < MinPanelHeight {
		return MinPanelHeight
	}
	return max
}

// ClampPanelHeight snaps h to the nearest bound of
// [MinPanelHeight, MaxPanelHeight(viewport)].
func ClampPanelHeight(h, viewport int) int {
	if max := MaxPanelHeight(viewport); h > max {
		return max
	}
	if h < MinPanelHeight {
		return MinPanelHeight
	}
	return h
}

// PanelSizer is the drag state machine for the bottom panel divider. It is
// at rest until a drag begins and returns to rest when the drag ends. Every
// method that can change Height reports a commit so the caller can persist
// the new value.
type PanelSizer struct {
	Height   int
	Viewport int
	dragging bool
	lastTap  time.Time
}

func NewPanelSizer(height, viewport int) PanelSizer {
	return PanelSizer{Height: ClampPanelHeight(height, viewport), Viewport: viewport}
}

func (p PanelSizer) Dragging() bool { return p.dragging }

// SetViewport reclamps the height against a new terminal size.
func (p PanelSizer) SetViewport(viewport int) (PanelSizer, bool) {
	p.Viewport = viewport
	h := ClampPanelHeight(p.Height, viewport)
	commit := h != p.Height
	p.Height = h
	return p, commit
}

// StartDrag enters the dragging state. The height is untouched until the
// pointer moves.
func (p PanelSizer) StartDrag() PanelSizer {
	p.dragging = true
	return p
}

// DragTo applies the raw height the pointer implies, clamped. Motion outside
// a drag is ignored.
func (p PanelSizer) DragTo(candidate int) (PanelSizer, bool) {
	if !p.dragging {
		return p, false
	}
	h := ClampPanelHeight(candidate, p.Viewport)
	if h == p.Height {
		return p, false
	}
	p.Height = h
	return p, true
}

// EndDrag returns the sizer to rest.
func (p PanelSizer) EndDrag() PanelSizer {
	p.dragging = false
	return p
}

// Nudge moves the divider by delta rows outside a drag, for keyboard
// resizing.
func (p PanelSizer) Nudge(delta int) (PanelSizer, bool) {
	h := ClampPanelHeight(p.Height+delta, p.Viewport)
	if h == p.Height {
		return p, false
	}
	p.Height = h
	return p, true
}

// Tap records a divider activation at now. A second activation within
// DoubleTapWindow resets the panel to its default height, abandoning any
// drag in progress; the reset always commits so the default is persisted.
func (p PanelSizer) Tap(now time.Time) (_ PanelSizer, reset, commit bool) {
	if !p.lastTap.IsZero() && now.Sub(p.lastTap) <= DoubleTapWindow {
		p.lastTap = time.Time{}
		p.dragging = false
		p.Height = ClampPanelHeight(DefaultPanelHeight, p.Viewport)
		return p, true, true
	}
	p.lastTap = now
	return p, false, false
}
