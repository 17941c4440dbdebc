package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines the small set of colors used across widgets.
type Palette struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Warning lipgloss.Color
	Muted   lipgloss.Color
	Divider lipgloss.Color

	// Diff colors. Fg pairs mark changed text, Bg pairs fill changed rows
	// when backgrounds are enabled.
	AddFg lipgloss.Color
	AddBg lipgloss.Color
	DelFg lipgloss.Color
	DelBg lipgloss.Color
}

// DarkPalette returns colors tuned for dark terminals.
func DarkPalette() Palette {
	return Palette{
		Primary: lipgloss.Color("#3D6DFF"),
		Success: lipgloss.Color("#2AA876"),
		Danger:  lipgloss.Color("#D9534F"),
		Warning: lipgloss.Color("#F0AD4E"),
		Muted:   lipgloss.Color("#5A5A5A"),
		Divider: lipgloss.Color("240"),
		AddFg:   lipgloss.Color("114"),
		AddBg:   lipgloss.Color("22"),
		DelFg:   lipgloss.Color("203"),
		DelBg:   lipgloss.Color("52"),
	}
}

// LightPalette returns colors tuned for light terminals.
func LightPalette() Palette {
	return Palette{
		Primary: lipgloss.Color("#3D6DFF"),
		Success: lipgloss.Color("#2AA876"),
		Danger:  lipgloss.Color("#D9534F"),
		Warning: lipgloss.Color("#F0AD4E"),
		Muted:   lipgloss.Color("#6C757D"),
		Divider: lipgloss.Color("250"),
		AddFg:   lipgloss.Color("28"),
		AddBg:   lipgloss.Color("157"),
		DelFg:   lipgloss.Color("160"),
		DelBg:   lipgloss.Color("217"),
	}
}

// PaletteFor selects the palette for the theme.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette()
	}
	return LightPalette()
}
