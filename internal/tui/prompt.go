package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"diffpad/internal/tui/util"
)

// prompt is the file-open input shown in place of the bottom panel: a
// one-line path buffer with directory suggestions beneath it.
type prompt struct {
	active  bool
	buf     string
	suggest []string
}

func (pr prompt) opened() prompt {
	pr.active = true
	pr.buf = ""
	pr.suggest = nil
	return pr
}

func (pr prompt) closed() prompt {
	pr.active = false
	pr.buf = ""
	pr.suggest = nil
	return pr
}

func (pr prompt) typed(s string) prompt {
	pr.buf += s
	pr.suggest = pathSuggestions(pr.buf)
	return pr
}

func (pr prompt) erased() prompt {
	r := []rune(pr.buf)
	if len(r) > 0 {
		pr.buf = string(r[:len(r)-1])
	}
	pr.suggest = pathSuggestions(pr.buf)
	return pr
}

func (pr prompt) completed() prompt {
	if len(pr.suggest) > 0 {
		pr.buf = pr.suggest[0]
		pr.suggest = pathSuggestions(pr.buf)
	}
	return pr
}

// pathSuggestions lists directory entries matching the partial path, capped
// at eight. Candidates under the home directory are presented with ~.
func pathSuggestions(in string) []string {
	if strings.TrimSpace(in) == "" {
		return nil
	}
	expanded := in
	if strings.HasPrefix(in, "~") {
		expanded = expandPath(in)
	}
	dir := expanded
	base := ""
	if fi, err := os.Stat(expanded); err != nil || !fi.IsDir() {
		dir = filepath.Dir(expanded)
		base = filepath.Base(expanded)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if base != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(base)) {
			continue
		}
		cand := filepath.Join(dir, name)
		if h, _ := os.UserHomeDir(); h != "" && strings.HasPrefix(cand, h) {
			cand = "~" + strings.TrimPrefix(cand, h)
		}
		out = append(out, cand)
		if len(out) >= 8 {
			break
		}
	}
	return out
}

func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, p[2:])
		}
	}
	p = os.ExpandEnv(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}

// view renders the prompt into the bottom panel area, padded to height.
func (pr prompt) view(pal util.Palette, target string, width, height int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(pal.Primary)
	muted := lipgloss.NewStyle().Foreground(pal.Muted)

	lines := []string{
		title.Render("Open into "+target) + "  " + muted.Render("enter: load   tab: complete   esc: cancel"),
		"> " + pr.buf,
	}
	for _, s := range pr.suggest {
		lines = append(lines, muted.Render("  • ")+util.HardTruncate(s, width-4))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
