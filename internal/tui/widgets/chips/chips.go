// Package chips renders status chips in a stable order using colored badges
// when possible and ASCII fallbacks when color is disabled.
package chips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"diffpad/internal/tui/state"
	"diffpad/internal/tui/util"
)

// View renders the chip strip. The order is whatever util.ComputeChips
// produced; this layer only decides colors and labels.
func View(cs []state.Chip, pal util.Palette, noColor bool) string {
	if len(cs) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, renderChip(c, pal, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(c state.Chip, pal util.Palette, noColor bool) string {
	label := chipLabel(c)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(c, pal).Render(" " + label + " ")
}

func chipLabel(c state.Chip) string {
	switch c.Kind {
	case state.CHIP_LANG:
		return c.Text
	case state.CHIP_AUTO:
		return "Auto"
	case state.CHIP_LAYOUT:
		return c.Text
	case state.CHIP_ADDS:
		return fmt.Sprintf("+%d", c.Value)
	case state.CHIP_DELS:
		return fmt.Sprintf("-%d", c.Value)
	case state.CHIP_WATCH:
		return "Watch"
	default:
		return "Chip"
	}
}

func chipStyle(c state.Chip, pal util.Palette) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	white := lipgloss.Color("#FFFFFF")
	switch c.Kind {
	case state.CHIP_LANG:
		return base.Background(pal.Primary).Foreground(white)
	case state.CHIP_AUTO:
		return base.Background(pal.Success).Foreground(white)
	case state.CHIP_LAYOUT:
		return base.Background(pal.Muted).Foreground(white)
	case state.CHIP_ADDS:
		return base.Background(pal.AddBg).Foreground(pal.AddFg)
	case state.CHIP_DELS:
		return base.Background(pal.DelBg).Foreground(pal.DelFg)
	case state.CHIP_WATCH:
		return base.Background(pal.Warning).Foreground(lipgloss.Color("#111111"))
	default:
		return base
	}
}
