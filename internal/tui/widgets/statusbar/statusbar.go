package statusbar

import (
	"fmt"
	"strings"

	"diffpad/internal/tui/state"
	"diffpad/internal/tui/util"
)

// noticeLimit keeps long notices (usually file paths) from eating the bar.
const noticeLimit = 48

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state. chipStrip is
// the pre-rendered chip row; it lands between the mode and the toggles.
func (StatusBar) View(s state.UIState, chipStrip string, panelHeight int) string {
	mode := "[CMD]"
	if s.Mode == state.INSERT {
		mode = "[INSERT]"
	}
	wrap := "Wrap: Off"
	if s.Wrap {
		wrap = "Wrap: On"
	}
	panel := "Diff"
	if s.Panel == state.PanelPreview {
		panel = "Preview"
	}
	height := fmt.Sprintf("Panel:%d", panelHeight)

	parts := []string{mode}
	if chipStrip != "" {
		parts = append(parts, chipStrip)
	}
	parts = append(parts, wrap, panel, height)
	if s.Notice != "" {
		parts = append(parts, util.HardTruncate(s.Notice, noticeLimit))
	}
	return strings.Join(parts, "  ")
}
