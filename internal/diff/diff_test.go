package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func ops(r Result) []Op {
	out := make([]Op, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Op
	}
	return out
}

func TestIdenticalTextsUnchanged(t *testing.T) {
	r := Compute("a\nb\nc", "a\nb\nc")
	require.False(t, r.Changed())
	require.Zero(t, r.Adds)
	require.Zero(t, r.Dels)
	for _, row := range r.Rows {
		require.Equal(t, OpEqual, row.Op)
	}
}

func TestBothEmpty(t *testing.T) {
	r := Compute("", "")
	require.False(t, r.Changed())
	require.Empty(t, r.Rows)
}

func TestPureInsert(t *testing.T) {
	r := Compute("a\nb", "a\nx\nb")
	require.Equal(t, []Op{OpEqual, OpInsert, OpEqual}, ops(r))
	require.Equal(t, 1, r.Adds)
	require.Equal(t, 0, r.Dels)

	ins := r.Rows[1]
	require.Equal(t, 0, ins.OldNum)
	require.Equal(t, 2, ins.NewNum)
	require.Equal(t, "x", ins.NewText)
	require.Equal(t, "", ins.OldText)
}

func TestPureDelete(t *testing.T) {
	r := Compute("a\nx\nb", "a\nb")
	require.Equal(t, []Op{OpEqual, OpDelete, OpEqual}, ops(r))
	require.Equal(t, 0, r.Adds)
	require.Equal(t, 1, r.Dels)

	del := r.Rows[1]
	require.Equal(t, 2, del.OldNum)
	require.Equal(t, 0, del.NewNum)
	require.Equal(t, "x", del.OldText)
}

func TestReplaceCarriesSpans(t *testing.T) {
	r := Compute("hello world", "hello brave world")
	require.Equal(t, []Op{OpReplace}, ops(r))
	require.Equal(t, 1, r.Adds)
	require.Equal(t, 1, r.Dels)

	row := r.Rows[0]
	require.NotEmpty(t, row.Spans)

	// The spans must reassemble both sides exactly.
	var oldSide, newSide strings.Builder
	sawInsert := false
	for _, sp := range row.Spans {
		oldSide.WriteString(sp.Old)
		newSide.WriteString(sp.New)
		if sp.Op == OpInsert {
			sawInsert = true
		}
	}
	require.Equal(t, "hello world", oldSide.String())
	require.Equal(t, "hello brave world", newSide.String())
	require.True(t, sawInsert)
}

func TestUnevenRunPairsThenDeletes(t *testing.T) {
	r := Compute("one\ntwo\nthree\ntail", "uno\ntail")
	require.Equal(t, []Op{OpReplace, OpDelete, OpDelete, OpEqual}, ops(r))
	require.Equal(t, 1, r.Adds)
	require.Equal(t, 3, r.Dels)
}

func TestLineNumbersStayContinuous(t *testing.T) {
	r := Compute("a\nb\nc\nd", "a\nc\nd\ne")
	oldWant, newWant := 1, 1
	for _, row := range r.Rows {
		if row.OldNum > 0 {
			require.Equal(t, oldWant, row.OldNum)
			oldWant++
		}
		if row.NewNum > 0 {
			require.Equal(t, newWant, row.NewNum)
			newWant++
		}
	}
	require.Equal(t, 5, oldWant)
	require.Equal(t, 5, newWant)
}

func TestManyLinesReassembleBothSides(t *testing.T) {
	// Wide enough that the line table outgrows single-digit indices; the
	// decode must map every encoded rune back to its exact line.
	var oldLines []string
	for i := 0; i < 60; i++ {
		oldLines = append(oldLines, fmt.Sprintf("line %02d", i))
	}
	var newLines []string
	newLines = append(newLines, "inserted head")
	newLines = append(newLines, oldLines[:20]...)
	newLines = append(newLines, "replacement")
	newLines = append(newLines, oldLines[21:50]...)
	newLines = append(newLines, oldLines[51:]...)

	r := Compute(strings.Join(oldLines, "\n"), strings.Join(newLines, "\n"))
	require.True(t, r.Changed())

	var oldSide, newSide []string
	for _, row := range r.Rows {
		if row.OldNum > 0 {
			oldSide = append(oldSide, row.OldText)
		}
		if row.NewNum > 0 {
			newSide = append(newSide, row.NewText)
		}
	}
	require.Equal(t, oldLines, oldSide)
	require.Equal(t, newLines, newSide)
}

func TestPatchText(t *testing.T) {
	r := Compute("a\nb\nc", "a\nx\nc")
	patch := PatchText(r, "original", "modified")
	want := "--- original\n" +
		"+++ modified\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n" +
		"-b\n" +
		"+x\n" +
		" c\n"
	require.Equal(t, want, patch)
}

func TestPatchTextInsertAtStart(t *testing.T) {
	r := Compute("b", "a\nb")
	patch := PatchText(r, "original", "modified")
	want := "--- original\n" +
		"+++ modified\n" +
		"@@ -1,1 +1,2 @@\n" +
		"+a\n" +
		" b\n"
	require.Equal(t, want, patch)
}

func TestPatchTextEmptyWhenUnchanged(t *testing.T) {
	r := Compute("same", "same")
	require.Empty(t, PatchText(r, "original", "modified"))
}

func TestPatchTextSplitsDistantChanges(t *testing.T) {
	var oldLines []string
	for i := 1; i <= 20; i++ {
		oldLines = append(oldLines, fmt.Sprintf("line %02d", i))
	}
	newLines := append([]string(nil), oldLines...)
	newLines[0] = "first-change"
	newLines[19] = "last-change"

	r := Compute(strings.Join(oldLines, "\n"), strings.Join(newLines, "\n"))
	patch := PatchText(r, "original", "modified")
	require.Equal(t, 2, strings.Count(patch, "@@ -"))
}
