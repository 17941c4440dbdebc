package state

// EditorMode represents the app's current input mode.
type EditorMode int

const (
	CMD EditorMode = iota
	INSERT
)

// Layout controls how the diff panel arranges its rows.
type Layout int

const (
	Split Layout = iota
	Unified
)

// Detail controls the granularity of intra-line change marking.
type Detail int

const (
	DetailChar Detail = iota
	DetailLine
)

// PanelContent selects what the bottom panel shows.
type PanelContent int

const (
	PanelDiff PanelContent = iota
	PanelPreview
)

// Pane identifies one of the two editors.
type Pane int

const (
	PaneOriginal Pane = iota
	PaneModified
)

// SideBySideMinWidth is the narrowest terminal that fits two readable diff
// columns plus gutters.
const SideBySideMinWidth = 88

// UIState holds cross-widget UI state shared by the editors, the bottom
// panel, and the status bar.
type UIState struct {
	// Mode & visual toggles
	Mode        EditorMode
	Layout      Layout
	Detail      Detail
	Panel       PanelContent
	Wrap        bool
	LineNumbers bool
	Backgrounds bool
	Dark        bool

	// Focus & terminal geometry
	Focus  Pane
	Width  int
	Height int

	// Diff panel scrolling
	ScrollV int
	ScrollH int

	// Notices and ephemeral messages
	Notice string
}

// EffectiveLayout returns the layout actually rendered: Split degrades to
// Unified when the terminal is too narrow for two columns. The stored
// preference is left alone so the split comes back when the terminal grows.
func EffectiveLayout(s UIState) Layout {
	if s.Layout == Split && s.Width < SideBySideMinWidth {
		return Unified
	}
	return s.Layout
}
