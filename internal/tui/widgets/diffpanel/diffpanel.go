// Package diffpanel renders the bottom panel: the computed comparison in the
// effective layout, or a highlighted preview of the focused buffer.
package diffpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"diffpad/internal/diff"
	"diffpad/internal/tui/state"
	"diffpad/internal/tui/util"
)

type Panel struct{}

func NewPanel() Panel { return Panel{} }

// View renders the comparison into a width x height cell. Split degrades to
// unified below the width threshold; wrapping and horizontal scroll are
// mutually exclusive, with wrap winning.
func (Panel) View(s state.UIState, pal util.Palette, res diff.Result, width, height int) string {
	st := stylesFor(pal, s.Backgrounds)
	if !res.Changed() {
		return frame([]string{st.ctx.Render("No changes")}, height)
	}
	var lines []string
	if state.EffectiveLayout(s) == state.Unified {
		lines = unifiedLines(res, s, st, width)
	} else {
		lines = splitLines(res, s, st, width)
	}
	return frame(vslice(lines, s.ScrollV, height), height)
}

const sep = " │ "

// styleSet carries the pre-built styles for one render pass.
type styleSet struct {
	ctx     lipgloss.Style
	del     lipgloss.Style
	add     lipgloss.Style
	delChar lipgloss.Style
	addChar lipgloss.Style
	gutter  lipgloss.Style
	sep     lipgloss.Style
}

func stylesFor(pal util.Palette, backgrounds bool) styleSet {
	del := lipgloss.NewStyle().Foreground(pal.DelFg)
	add := lipgloss.NewStyle().Foreground(pal.AddFg)
	if backgrounds {
		del = del.Background(pal.DelBg)
		add = add.Background(pal.AddBg)
	}
	return styleSet{
		ctx:     lipgloss.NewStyle().Faint(true),
		del:     del,
		add:     add,
		delChar: del.Underline(true),
		addChar: add.Underline(true),
		gutter:  lipgloss.NewStyle().Foreground(pal.Muted),
		sep:     lipgloss.NewStyle().Foreground(pal.Divider),
	}
}

// piece is a run of text under one style, kept unstyled until assembly so
// clipping and wrapping can count runes instead of escape codes.
type piece struct {
	text  string
	style lipgloss.Style
}

// displayRow is one renderable panel row before horizontal handling. The
// nums and marker prefixes are fixed; only pieces scroll and wrap.
type displayRow struct {
	nums   string
	marker string
	base   lipgloss.Style
	pieces []piece
}

// unifiedLines flattens the comparison into marker-prefixed rows. Replace
// rows expand into a delete/insert pair carrying intra-line spans.
func unifiedLines(res diff.Result, s state.UIState, st styleSet, width int) []string {
	var rows []displayRow
	for _, r := range res.Rows {
		switch r.Op {
		case diff.OpEqual:
			rows = append(rows, displayRow{
				nums:   nums2(r.OldNum, r.NewNum, s.LineNumbers),
				marker: "  ",
				base:   st.ctx,
				pieces: []piece{{text: r.OldText, style: st.ctx}},
			})
		case diff.OpDelete:
			rows = append(rows, displayRow{
				nums:   nums2(r.OldNum, 0, s.LineNumbers),
				marker: "- ",
				base:   st.del,
				pieces: []piece{{text: r.OldText, style: st.del}},
			})
		case diff.OpInsert:
			rows = append(rows, displayRow{
				nums:   nums2(0, r.NewNum, s.LineNumbers),
				marker: "+ ",
				base:   st.add,
				pieces: []piece{{text: r.NewText, style: st.add}},
			})
		case diff.OpReplace:
			rows = append(rows,
				displayRow{
					nums:   nums2(r.OldNum, 0, s.LineNumbers),
					marker: "- ",
					base:   st.del,
					pieces: oldPieces(r, s.Detail, st),
				},
				displayRow{
					nums:   nums2(0, r.NewNum, s.LineNumbers),
					marker: "+ ",
					base:   st.add,
					pieces: newPieces(r, s.Detail, st),
				})
		}
	}

	var out []string
	for _, row := range rows {
		out = append(out, renderRow(row, s, st, width)...)
	}
	return out
}

// splitLines renders one row per comparison row, two columns split by a
// divider. The missing side of a pure delete or insert stays blank.
func splitLines(res diff.Result, s state.UIState, st styleSet, width int) []string {
	numsW := 0
	if s.LineNumbers {
		numsW = 5
	}
	colW := (width-util.RuneLen(sep))/2 - numsW
	if colW < 10 {
		colW = 10
	}

	var out []string
	for _, r := range res.Rows {
		var (
			left, right  []piece
			lBase, rBase = st.ctx, st.ctx
			lNums, rNums string
		)
		switch r.Op {
		case diff.OpEqual:
			left = []piece{{text: r.OldText, style: st.ctx}}
			right = []piece{{text: r.NewText, style: st.ctx}}
		case diff.OpDelete:
			left = []piece{{text: r.OldText, style: st.del}}
			lBase = st.del
		case diff.OpInsert:
			right = []piece{{text: r.NewText, style: st.add}}
			rBase = st.add
		case diff.OpReplace:
			left = oldPieces(r, s.Detail, st)
			right = newPieces(r, s.Detail, st)
			lBase, rBase = st.del, st.add
		}
		if s.LineNumbers {
			lNums = num1(r.OldNum)
			rNums = num1(r.NewNum)
		}

		if s.Wrap {
			lRows := wrapPieces(left, colW)
			rRows := wrapPieces(right, colW)
			n := len(lRows)
			if len(rRows) > n {
				n = len(rRows)
			}
			for i := 0; i < n; i++ {
				var lp, rp []piece
				if i < len(lRows) {
					lp = lRows[i]
				}
				if i < len(rRows) {
					rp = rRows[i]
				}
				ln, rn := "", ""
				if s.LineNumbers {
					ln, rn = strings.Repeat(" ", numsW), strings.Repeat(" ", numsW)
					if i == 0 {
						ln, rn = lNums, rNums
					}
				}
				out = append(out, joinColumns(ln, lp, lBase, rn, rp, rBase, colW, st))
			}
			continue
		}

		lp := hclip(left, s.ScrollH, colW)
		rp := hclip(right, s.ScrollH, colW)
		out = append(out, joinColumns(lNums, lp, lBase, rNums, rp, rBase, colW, st))
	}
	return out
}

func joinColumns(lNums string, lp []piece, lBase lipgloss.Style, rNums string, rp []piece, rBase lipgloss.Style, colW int, st styleSet) string {
	left := st.gutter.Render(lNums) + renderPieces(padPieces(lp, colW, lBase))
	right := st.gutter.Render(rNums) + renderPieces(padPieces(rp, colW, rBase))
	return left + st.sep.Render(sep) + right
}

// renderRow turns one display row into final strings, applying wrap or
// horizontal scroll to the pieces while the prefix stays put.
func renderRow(row displayRow, s state.UIState, st styleSet, width int) []string {
	prefixW := util.RuneLen(row.nums) + util.RuneLen(row.marker)
	w := width - prefixW
	if w < 1 {
		w = 1
	}
	prefix := st.gutter.Render(row.nums) + row.base.Render(row.marker)

	if s.Wrap {
		var out []string
		for i, seg := range wrapPieces(row.pieces, w) {
			p := prefix
			if i > 0 {
				p = strings.Repeat(" ", prefixW)
			}
			out = append(out, p+renderPieces(padPieces(seg, w, row.base)))
		}
		return out
	}
	ps := hclip(row.pieces, s.ScrollH, w)
	return []string{prefix + renderPieces(padPieces(ps, w, row.base))}
}

// oldPieces renders the original side of a replace row. Char detail marks
// deleted runs; line detail colors the whole line.
func oldPieces(r diff.Row, detail state.Detail, st styleSet) []piece {
	if detail == state.DetailLine || len(r.Spans) == 0 {
		return []piece{{text: r.OldText, style: st.del}}
	}
	var ps []piece
	for _, sp := range r.Spans {
		switch sp.Op {
		case diff.OpEqual:
			ps = append(ps, piece{text: sp.Old, style: st.del})
		case diff.OpDelete:
			ps = append(ps, piece{text: sp.Old, style: st.delChar})
		}
	}
	return ps
}

func newPieces(r diff.Row, detail state.Detail, st styleSet) []piece {
	if detail == state.DetailLine || len(r.Spans) == 0 {
		return []piece{{text: r.NewText, style: st.add}}
	}
	var ps []piece
	for _, sp := range r.Spans {
		switch sp.Op {
		case diff.OpEqual:
			ps = append(ps, piece{text: sp.New, style: st.add})
		case diff.OpInsert:
			ps = append(ps, piece{text: sp.New, style: st.addChar})
		}
	}
	return ps
}

func nums2(oldNum, newNum int, on bool) string {
	if !on {
		return ""
	}
	return fmt.Sprintf("%4s %4s ", numOrBlank(oldNum), numOrBlank(newNum))
}

func num1(n int) string {
	return fmt.Sprintf("%4s ", numOrBlank(n))
}

func numOrBlank(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

func pieceWidth(ps []piece) int {
	n := 0
	for _, p := range ps {
		n += util.RuneLen(p.text)
	}
	return n
}

// hclip returns the rune window [start, start+width) of ps.
func hclip(ps []piece, start, width int) []piece {
	if width <= 0 {
		return nil
	}
	end := start + width
	var out []piece
	pos := 0
	for _, p := range ps {
		r := []rune(p.text)
		pstart, pend := pos, pos+len(r)
		pos = pend
		if pend <= start || pstart >= end {
			continue
		}
		lo, hi := 0, len(r)
		if pstart < start {
			lo = start - pstart
		}
		if pend > end {
			hi = end - pstart
		}
		if lo < hi {
			out = append(out, piece{text: string(r[lo:hi]), style: p.style})
		}
	}
	return out
}

// wrapPieces splits ps into rows of at most width runes. The zero pieces
// still yield one empty row so blank lines keep their height.
func wrapPieces(ps []piece, width int) [][]piece {
	if width <= 0 {
		return [][]piece{ps}
	}
	var rows [][]piece
	var row []piece
	used := 0
	for _, p := range ps {
		r := []rune(p.text)
		for len(r) > 0 {
			if used == width {
				rows = append(rows, row)
				row, used = nil, 0
			}
			take := len(r)
			if take > width-used {
				take = width - used
			}
			row = append(row, piece{text: string(r[:take]), style: p.style})
			used += take
			r = r[take:]
		}
	}
	rows = append(rows, row)
	return rows
}

func padPieces(ps []piece, width int, style lipgloss.Style) []piece {
	if w := pieceWidth(ps); w < width {
		ps = append(ps, piece{text: strings.Repeat(" ", width-w), style: style})
	}
	return ps
}

func renderPieces(ps []piece) string {
	var b strings.Builder
	for _, p := range ps {
		b.WriteString(p.style.Render(p.text))
	}
	return b.String()
}

// vslice windows lines by the vertical scroll, clamping at the bottom.
func vslice(lines []string, scroll, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) <= height {
		return lines
	}
	max := len(lines) - height
	if scroll > max {
		scroll = max
	}
	if scroll < 0 {
		scroll = 0
	}
	return lines[scroll : scroll+height]
}

// frame pads the visible lines to exactly height rows.
func frame(lines []string, height int) string {
	out := make([]string, 0, height)
	out = append(out, lines...)
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}
