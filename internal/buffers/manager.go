// Package buffers implements the two named scratch buffers and their
// lifecycle: lazy per-name singletons, change notification with exactly one
// event per real change, an atomic swap, and a fresh start after release.
package buffers

import (
	"diffpad/internal/classify"
	"diffpad/internal/log"
)

// Name identifies one of the two buffers.
type Name string

const (
	Original Name = "original"
	Modified Name = "modified"
)

// Origin says what caused a buffer's content to change.
type Origin int

const (
	OriginEdit Origin = iota
	OriginSet
	OriginSwap
	OriginClear
	OriginLoad
)

// Change is one content change notification. Seq is a monotonic ordering
// token across both buffers, so the two halves of a swap are adjacent.
type Change struct {
	Name   Name
	Origin Origin
	Seq    uint64
}

// Listener receives change notifications, synchronously and on the event
// loop goroutine. State is fully settled before listeners run.
type Listener func(Change)

// Manager owns the buffer pair. Buffers are created on first acquire and
// live until Release; a released manager starts over with fresh state on the
// next acquire.
type Manager struct {
	bufs      map[Name]*Buffer
	listeners []Listener
	language  string
	seq       uint64
}

func NewManager() *Manager {
	return &Manager{
		bufs:     make(map[Name]*Buffer),
		language: classify.TagPlainText,
	}
}

// OnChange registers a listener for content changes.
func (m *Manager) OnChange(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Acquire returns the buffer for name, creating it on first use. Repeated
// acquires return the same instance until Release.
func (m *Manager) Acquire(name Name) *Buffer {
	if b, ok := m.bufs[name]; ok {
		return b
	}
	b := newBuffer(m, name)
	m.bufs[name] = b
	return b
}

// Language returns the highlight tag currently applied to the pair.
func (m *Manager) Language() string {
	return m.language
}

// SetLanguage applies a highlight tag to both buffers. Language changes are
// not content changes, so no event fires.
func (m *Manager) SetLanguage(tag string) {
	m.language = tag
}

// Swap exchanges the two texts. Both buffers are updated before either
// listener runs, so observers always see the settled pair; each buffer then
// reports exactly one change. Swapping identical texts is a no-op.
func (m *Manager) Swap() bool {
	o, mod := m.Acquire(Original), m.Acquire(Modified)
	ot, mt := o.Text(), mod.Text()
	if ot == mt {
		return false
	}
	o.setValueQuiet(mt)
	mod.setValueQuiet(ot)
	o.bump(OriginSwap)
	mod.bump(OriginSwap)
	return true
}

// Clear empties both buffers. Already empty buffers fire nothing.
func (m *Manager) Clear() {
	m.ClearOne(Original)
	m.ClearOne(Modified)
}

// ClearOne empties a single buffer.
func (m *Manager) ClearOne(name Name) bool {
	return m.Acquire(name).SetText("", OriginClear)
}

// Release tears down the pair. Outstanding handles become inert and the next
// Acquire builds brand-new buffers.
func (m *Manager) Release() {
	for _, b := range m.bufs {
		b.released = true
	}
	m.bufs = make(map[Name]*Buffer)
	m.language = classify.TagPlainText
	log.Debug(log.CatBuffers, "released")
}

func (m *Manager) notify(c Change) {
	for _, l := range m.listeners {
		l(c)
	}
}
