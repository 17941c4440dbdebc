package diffpanel

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"diffpad/internal/tui/state"
	"diffpad/internal/tui/util"
)

// Preview renders the focused buffer highlighted with the effective
// language. Highlighting failures degrade to the plain text, never an error.
func (Panel) Preview(s state.UIState, pal util.Palette, text, tag string, width, height int) string {
	st := stylesFor(pal, s.Backgrounds)
	if strings.TrimSpace(text) == "" {
		return frame([]string{st.ctx.Render("Nothing to preview")}, height)
	}

	numsW := 0
	if s.LineNumbers {
		numsW = 5
	}
	contentW := width - numsW
	if contentW < 1 {
		contentW = 1
	}
	clip := lipgloss.NewStyle().MaxWidth(contentW)

	lines := strings.Split(Highlight(text, tag, s.Dark), "\n")
	out := make([]string, 0, len(lines))
	for i, ln := range lines {
		prefix := ""
		if s.LineNumbers {
			prefix = st.gutter.Render(fmt.Sprintf("%4d ", i+1))
		}
		out = append(out, prefix+clip.Render(ln))
	}
	return frame(vslice(out, s.ScrollV, height), height)
}

// Highlight runs text through the terminal formatter for tag. Unknown tags
// and tokeniser failures return the input unchanged.
func Highlight(text, tag string, dark bool) string {
	lex := lexers.Get(tag)
	if lex == nil {
		return text
	}
	lex = chroma.Coalesce(lex)

	theme := "github"
	if dark {
		theme = "monokai"
	}
	sty := styles.Get(theme)
	fmtr := formatters.Get("terminal256")
	if fmtr == nil {
		fmtr = formatters.Fallback
	}

	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var buf strings.Builder
	if err := fmtr.Format(&buf, sty, it); err != nil {
		return text
	}
	return strings.TrimRight(buf.String(), "\n")
}
