package state

import "testing"

func TestToggleWrapResetsHorizontalScroll(t *testing.T) {
	s := UIState{Wrap: false, ScrollH: 12}
	s = ToggleWrap(s)
	if !s.Wrap {
		t.Fatalf("expected Wrap to be true")
	}
	if s.ScrollH != 0 {
		t.Fatalf("expected horizontal scroll to reset")
	}
}

func TestToggleModeSetsNotice(t *testing.T) {
	s := UIState{Mode: CMD}
	s = ToggleMode(s)
	if s.Mode != INSERT || s.Notice == "" {
		t.Fatalf("expected INSERT mode and notice")
	}
	s = ToggleMode(s)
	if s.Mode != CMD || s.Notice == "" {
		t.Fatalf("expected CMD mode and notice")
	}
}

func TestToggleLayout(t *testing.T) {
	s := UIState{Layout: Split}
	s = ToggleLayout(s)
	if s.Layout != Unified {
		t.Fatalf("expected Unified layout")
	}
	s = ToggleLayout(s)
	if s.Layout != Split {
		t.Fatalf("expected Split layout")
	}
}

func TestToggleDetail(t *testing.T) {
	s := UIState{Detail: DetailChar}
	s = ToggleDetail(s)
	if s.Detail != DetailLine {
		t.Fatalf("expected line detail")
	}
}

func TestTogglePanel(t *testing.T) {
	s := UIState{Panel: PanelDiff}
	s = TogglePanel(s)
	if s.Panel != PanelPreview {
		t.Fatalf("expected preview panel")
	}
}

func TestSwapFocus(t *testing.T) {
	s := UIState{Focus: PaneOriginal}
	s = SwapFocus(s)
	if s.Focus != PaneModified {
		t.Fatalf("expected focus on modified pane")
	}
	s = SwapFocus(s)
	if s.Focus != PaneOriginal {
		t.Fatalf("expected focus back on original pane")
	}
}

func TestResizeFallbackToUnified(t *testing.T) {
	s := UIState{Layout: Split}
	s = Resize(s, SideBySideMinWidth-1, 40)
	if EffectiveLayout(s) != Unified {
		t.Fatalf("expected unified rendering below the split threshold")
	}
	if s.Layout != Split {
		t.Fatalf("expected the stored layout to survive the fallback")
	}
	if s.Notice == "" {
		t.Fatalf("expected fallback notice to be set")
	}
	s = Resize(s, SideBySideMinWidth, 40)
	if EffectiveLayout(s) != Split {
		t.Fatalf("expected split rendering to come back")
	}
}

func TestScrolls(t *testing.T) {
	s := UIState{}
	s = ScrollRight(s, true)
	if s.ScrollH == 0 {
		t.Fatalf("expected horizontal scroll to increase")
	}
	s = ScrollLeft(s, true)
	if s.ScrollH != 0 {
		t.Fatalf("expected horizontal scroll to return to 0")
	}
	s = ScrollBy(s, -3)
	if s.ScrollV != 0 {
		t.Fatalf("expected vertical scroll to clamp at 0")
	}
	s = ScrollBy(s, 5)
	if s.ScrollV != 5 {
		t.Fatalf("expected vertical scroll of 5, got %d", s.ScrollV)
	}
}
