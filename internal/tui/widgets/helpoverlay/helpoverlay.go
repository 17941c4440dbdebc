package helpoverlay

import (
	"fmt"
	"strings"

	"diffpad/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current mode indicated.
func (HelpOverlay) View(s state.UIState) string {
	mode := "CMD"
	if s.Mode == state.INSERT {
		mode = "INSERT"
	}
	sections := []struct {
		title string
		keys  []string
	}{
		{"Buffers", []string{
			"i: INSERT mode", "Esc: CMD mode", "Tab: switch pane",
			"s: swap buffers", "x: clear focused", "X: clear both",
		}},
		{"Files", []string{
			"o: open file into focused", "r: reload from file",
			"y: copy focused", "Y: copy patch", "p: paste into focused",
		}},
		{"View", []string{
			"v: split/unified", "e: diff/preview", "w: wrap on/off",
			"#: line numbers", "b: change backgrounds", "t: char/line detail",
			"D: dark mode", "L: language picker",
		}},
		{"Panel", []string{
			"j/k or ↑/↓: scroll", "h/l or ←/→: scroll H (fast with shift)",
			"g: scroll to top", "+/-: resize", "0: default height",
			"drag divider: resize",
		}},
		{"Session", []string{
			"S: save session", "q or Ctrl+C: quit",
		}},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Mode: %s)\n", mode)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}
