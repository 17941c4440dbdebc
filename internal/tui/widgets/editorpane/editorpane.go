package editorpane

import (
	"github.com/charmbracelet/lipgloss"

	"diffpad/internal/tui/util"
)

type Pane struct{}

func NewPane() Pane { return Pane{} }

// View renders a title row above the editor body. The focused pane gets the
// accent color so the active side reads at a glance; a backing file path is
// appended when one is attached.
func (Pane) View(pal util.Palette, title, path, body string, focused bool, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(pal.Muted)
	if focused {
		style = style.Foreground(pal.Primary)
	}
	label := title
	if focused {
		label = "▸ " + label
	}
	if path != "" {
		label += "  " + path
	}
	head := style.Render(util.HardTruncate(label, width))
	return head + "\n" + body
}
