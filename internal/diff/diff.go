// Package diff computes a line-oriented comparison of the two buffers with
// intra-line change spans, plus a unified patch rendering for export.
package diff

import (
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// Op classifies a row or a span.
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
	OpReplace
)

// Span marks a run within a changed line pair. Equal spans carry the run on
// both sides; delete and insert spans carry one side only.
type Span struct {
	Op  Op
	Old string
	New string
}

// Row is one display row of the comparison. Equal and Replace rows carry
// both sides; Delete and Insert rows leave the missing side's number zero.
// Line numbers are 1-based. Texts have no trailing newline.
type Row struct {
	Op      Op
	OldNum  int
	NewNum  int
	OldText string
	NewText string
	Spans   []Span // populated on Replace rows
}

// Result is a computed comparison.
type Result struct {
	Rows []Row
	Adds int
	Dels int
}

// Changed reports whether the two texts differ at all.
func (r Result) Changed() bool {
	return r.Adds > 0 || r.Dels > 0
}

// Compute diffs originalText against modifiedText. Lines are aligned first;
// runs of deleted and inserted lines are then paired up into replace rows
// with intra-line spans.
func Compute(originalText, modifiedText string) Result {
	d := dmp.New()
	rOld, rNew, lineArray := d.DiffLinesToRunes(originalText, modifiedText)
	lineDiffs := d.DiffMainRunes(rOld, rNew, false)
	lineDiffs = d.DiffCleanupMerge(lineDiffs)

	// Map the rune encoding back to the original lines, EOLs included.
	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			if idx := int(r); idx >= 0 && idx < len(lineArray) {
				out = append(out, lineArray[idx])
			}
		}
		return out
	}

	var (
		rows             []Row
		adds, dels       int
		oldNum, newNum   int
		pendDel, pendIns []string
	)

	flush := func() {
		n := len(pendDel)
		if len(pendIns) < n {
			n = len(pendIns)
		}
		for i := 0; i < n; i++ {
			oldLine := strings.TrimSuffix(pendDel[i], "\n")
			newLine := strings.TrimSuffix(pendIns[i], "\n")
			oldNum++
			newNum++
			rows = append(rows, Row{
				Op:      OpReplace,
				OldNum:  oldNum,
				NewNum:  newNum,
				OldText: oldLine,
				NewText: newLine,
				Spans:   intralineSpans(d, oldLine, newLine),
			})
			adds++
			dels++
		}
		for _, l := range pendDel[n:] {
			oldNum++
			rows = append(rows, Row{Op: OpDelete, OldNum: oldNum, OldText: strings.TrimSuffix(l, "\n")})
			dels++
		}
		for _, l := range pendIns[n:] {
			newNum++
			rows = append(rows, Row{Op: OpInsert, NewNum: newNum, NewText: strings.TrimSuffix(l, "\n")})
			adds++
		}
		pendDel, pendIns = nil, nil
	}

	for _, ld := range lineDiffs {
		switch ld.Type {
		case dmp.DiffEqual:
			flush()
			for _, l := range decode(ld.Text) {
				oldNum++
				newNum++
				text := strings.TrimSuffix(l, "\n")
				rows = append(rows, Row{Op: OpEqual, OldNum: oldNum, NewNum: newNum, OldText: text, NewText: text})
			}
		case dmp.DiffDelete:
			pendDel = append(pendDel, decode(ld.Text)...)
		case dmp.DiffInsert:
			pendIns = append(pendIns, decode(ld.Text)...)
		}
	}
	flush()

	return Result{Rows: rows, Adds: adds, Dels: dels}
}

// intralineSpans runs a char-level diff on a paired line with semantic
// cleanup, so edits read as words rather than scattered characters.
func intralineSpans(d *dmp.DiffMatchPatch, oldLine, newLine string) []Span {
	diffs := d.DiffMain(oldLine, newLine, false)
	diffs = d.DiffCleanupSemantic(diffs)
	spans := make([]Span, 0, len(diffs))
	for _, df := range diffs {
		if df.Text == "" {
			continue
		}
		switch df.Type {
		case dmp.DiffEqual:
			spans = append(spans, Span{Op: OpEqual, Old: df.Text, New: df.Text})
		case dmp.DiffDelete:
			spans = append(spans, Span{Op: OpDelete, Old: df.Text})
		case dmp.DiffInsert:
			spans = append(spans, Span{Op: OpInsert, New: df.Text})
		}
	}
	return spans
}
