package buffers

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Buffer is one editable scratch text. It wraps a textarea for editing but
// owns the canonical value and the change accounting. A handle that survives
// a manager Release goes inert: reads still work, mutations are ignored.
type Buffer struct {
	mgr      *Manager
	name     Name
	ta       textarea.Model
	released bool
}

func newBuffer(m *Manager, name Name) *Buffer {
	ta := textarea.New()
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.ShowLineNumbers = true
	ta.Blur()
	return &Buffer{mgr: m, name: name, ta: ta}
}

func (b *Buffer) Name() Name { return b.name }

// Text returns the buffer's current content.
func (b *Buffer) Text() string { return b.ta.Value() }

// Language returns the highlight tag shared by the pair.
func (b *Buffer) Language() string { return b.mgr.language }

// SetText replaces the whole content. Setting the identical value is a
// complete no-op: no event fires and the cursor stays put.
func (b *Buffer) SetText(text string, origin Origin) bool {
	if b.released || b.ta.Value() == text {
		return false
	}
	b.ta.SetValue(text)
	b.bump(origin)
	return true
}

// Update feeds an input message to the underlying editor and reports a
// change when the text actually moved. Cursor motion alone fires nothing.
func (b *Buffer) Update(msg tea.Msg) tea.Cmd {
	if b.released {
		return nil
	}
	before := b.ta.Value()
	var cmd tea.Cmd
	b.ta, cmd = b.ta.Update(msg)
	if b.ta.Value() != before {
		b.bump(OriginEdit)
	}
	return cmd
}

func (b *Buffer) Focus() tea.Cmd {
	if b.released {
		return nil
	}
	return b.ta.Focus()
}

func (b *Buffer) Blur()         { b.ta.Blur() }
func (b *Buffer) Focused() bool { return b.ta.Focused() }

func (b *Buffer) View() string { return b.ta.View() }

func (b *Buffer) SetSize(width, height int) {
	b.ta.SetWidth(width)
	b.ta.SetHeight(height)
}

func (b *Buffer) SetPlaceholder(s string)   { b.ta.Placeholder = s }
func (b *Buffer) SetShowLineNumbers(v bool) { b.ta.ShowLineNumbers = v }

// setValueQuiet replaces the content without firing, for multi-buffer
// operations that settle everything first and notify after.
func (b *Buffer) setValueQuiet(text string) {
	b.ta.SetValue(text)
}

func (b *Buffer) bump(origin Origin) {
	b.mgr.seq++
	b.mgr.notify(Change{Name: b.name, Origin: origin, Seq: b.mgr.seq})
}
