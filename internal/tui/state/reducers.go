package state

// ToggleMode switches between CMD and INSERT modes and sets a brief notice.
func ToggleMode(s UIState) UIState {
	if s.Mode == CMD {
		s.Mode = INSERT
		s.Notice = "[INSERT]"
	} else {
		s.Mode = CMD
		s.Notice = "[CMD]"
	}
	return s
}

// ToggleWrap flips line wrapping in the diff panel.
func ToggleWrap(s UIState) UIState {
	s.Wrap = !s.Wrap
	s.ScrollH = 0
	return s
}

// ToggleLayout switches between Split and Unified diff layouts.
func ToggleLayout(s UIState) UIState {
	if s.Layout == Split {
		s.Layout = Unified
	} else {
		s.Layout = Split
	}
	return s
}

// ToggleDetail switches intra-line marking between char and line granularity.
func ToggleDetail(s UIState) UIState {
	if s.Detail == DetailChar {
		s.Detail = DetailLine
	} else {
		s.Detail = DetailChar
	}
	return s
}

// TogglePanel switches the bottom panel between the diff and the highlighted
// preview.
func TogglePanel(s UIState) UIState {
	if s.Panel == PanelDiff {
		s.Panel = PanelPreview
	} else {
		s.Panel = PanelDiff
	}
	return s
}

// ToggleLineNumbers flips the gutter in editors and diff rows.
func ToggleLineNumbers(s UIState) UIState {
	s.LineNumbers = !s.LineNumbers
	return s
}

// ToggleBackgrounds flips fill backgrounds on changed diff rows.
func ToggleBackgrounds(s UIState) UIState {
	s.Backgrounds = !s.Backgrounds
	return s
}

// ToggleDark flips the color theme.
func ToggleDark(s UIState) UIState {
	s.Dark = !s.Dark
	return s
}

// SwapFocus moves focus to the other editor.
func SwapFocus(s UIState) UIState {
	if s.Focus == PaneOriginal {
		s.Focus = PaneModified
	} else {
		s.Focus = PaneOriginal
	}
	return s
}

// Resize records the new terminal size and notes when a split layout cannot
// fit. Threshold heuristic: two columns of readable width plus gutters.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	if s.Layout == Split && EffectiveLayout(s) == Unified {
		s.Notice = "Narrow width: using unified layout"
	}
	return s
}

// ScrollBy adjusts the diff panel's vertical scroll, never below zero. The
// upper bound is clamped at render time, where the row count is known.
func ScrollBy(s UIState, delta int) UIState {
	s.ScrollV += delta
	if s.ScrollV < 0 {
		s.ScrollV = 0
	}
	return s
}

// ScrollLeft moves the diff panel view left when wrapping is off.
func ScrollLeft(s UIState, fast bool) UIState {
	delta := 1
	if fast {
		delta = 8
	}
	if s.ScrollH >= delta {
		s.ScrollH -= delta
	} else {
		s.ScrollH = 0
	}
	return s
}

// ScrollRight moves the diff panel view right when wrapping is off.
func ScrollRight(s UIState, fast bool) UIState {
	delta := 1
	if fast {
		delta = 8
	}
	s.ScrollH += delta
	return s
}

// ResetScroll rewinds both scroll positions, for when the panel content is
// replaced wholesale.
func ResetScroll(s UIState) UIState {
	s.ScrollV = 0
	s.ScrollH = 0
	return s
}
