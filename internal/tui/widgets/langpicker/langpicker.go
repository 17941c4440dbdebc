// Package langpicker implements the language selection overlay: a
// filterable view of the catalog with an Automatic entry pinned on top.
package langpicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"diffpad/internal/classify"
	"diffpad/internal/tui/util"
)

// maxVisible caps the list so the overlay never swallows the screen.
const maxVisible = 10

// Picker is the overlay state. Methods return the new state the way the
// state reducers do.
type Picker struct {
	Open   bool
	Filter string
	Cursor int
}

type entry struct {
	label string
	tag   string // SelectionAuto for the pinned head entry
}

func (p Picker) entries() []entry {
	es := []entry{{label: "Automatic", tag: classify.SelectionAuto}}
	f := strings.ToLower(strings.TrimSpace(p.Filter))
	for _, l := range classify.Catalog() {
		if f == "" || strings.Contains(strings.ToLower(l.Label), f) || strings.Contains(l.Tag, f) {
			es = append(es, entry{label: l.Label, tag: l.Tag})
		}
	}
	return es
}

// Opened resets the picker to a clean open state.
func (p Picker) Opened() Picker {
	p.Open = true
	p.Filter = ""
	p.Cursor = 0
	return p
}

func (p Picker) Closed() Picker {
	p.Open = false
	return p
}

func (p Picker) Down() Picker {
	if p.Cursor < len(p.entries())-1 {
		p.Cursor++
	}
	return p
}

func (p Picker) Up() Picker {
	if p.Cursor > 0 {
		p.Cursor--
	}
	return p
}

// Typed appends to the filter and rewinds the cursor, since the visible
// set changed under it.
func (p Picker) Typed(s string) Picker {
	p.Filter += s
	p.Cursor = 0
	return p
}

func (p Picker) Erased() Picker {
	r := []rune(p.Filter)
	if len(r) > 0 {
		p.Filter = string(r[:len(r)-1])
	}
	p.Cursor = 0
	return p
}

// Selected returns the tag under the cursor. ok is false when the filter
// matched nothing beyond an out-of-range cursor.
func (p Picker) Selected() (string, bool) {
	es := p.entries()
	if p.Cursor < 0 || p.Cursor >= len(es) {
		return "", false
	}
	return es[p.Cursor].tag, true
}

// View renders the overlay. selection is the stored choice, detected the
// current detection result; both get markers so the user can see where
// "Automatic" would land.
func (p Picker) View(pal util.Palette, selection, detected string, width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(pal.Primary)
	muted := lipgloss.NewStyle().Foreground(pal.Muted)
	active := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(title.Render("Language") + "\n")
	b.WriteString(muted.Render("filter: ") + p.Filter + "\n\n")

	es := p.entries()
	if len(es) == 0 {
		b.WriteString(muted.Render("no matches") + "\n")
		return b.String()
	}

	// Window the list around the cursor.
	start := 0
	if p.Cursor >= maxVisible {
		start = p.Cursor - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(es) {
		end = len(es)
	}

	for i := start; i < end; i++ {
		e := es[i]
		marker := "  "
		if i == p.Cursor {
			marker = "> "
		}
		line := e.label
		if e.tag == detected && e.tag != classify.SelectionAuto {
			line += "  (detected)"
		}
		if e.tag == selection {
			line += "  •"
		}
		line = util.HardTruncate(marker+line, width)
		if i == p.Cursor {
			line = active.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if end < len(es) {
		b.WriteString(muted.Render(fmt.Sprintf("… %d more", len(es)-end)) + "\n")
	}
	return b.String()
}
