package diff

import (
	"fmt"
	"strings"
)

// patchContext is how many equal rows surround each change in a hunk.
const patchContext = 3

// PatchText renders the comparison as a unified patch, one hunk per change
// run, suitable for pasting into review tools. Unchanged comparisons render
// as the empty string.
func PatchText(r Result, oldName, newName string) string {
	if !r.Changed() {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", oldName, newName)

	n := len(r.Rows)
	i := 0
	for i < n {
		if r.Rows[i].Op == OpEqual {
			i++
			continue
		}
		start := i - patchContext
		if start < 0 {
			start = 0
		}
		// Extend past equal gaps short enough to share a hunk.
		last := i
		end := i
		for end < n {
			if r.Rows[end].Op != OpEqual {
				last = end
				end++
				continue
			}
			if end-last > 2*patchContext {
				break
			}
			end++
		}
		stop := last + patchContext + 1
		if stop > n {
			stop = n
		}

		hunk := r.Rows[start:stop]
		sb.WriteString(hunkHeader(hunk))
		for _, row := range hunk {
			switch row.Op {
			case OpEqual:
				sb.WriteString(" " + row.OldText + "\n")
			case OpDelete:
				sb.WriteString("-" + row.OldText + "\n")
			case OpInsert:
				sb.WriteString("+" + row.NewText + "\n")
			case OpReplace:
				sb.WriteString("-" + row.OldText + "\n")
				sb.WriteString("+" + row.NewText + "\n")
			}
		}
		i = stop
	}
	return sb.String()
}

func hunkHeader(rows []Row) string {
	oldStart, oldCount, newStart, newCount := 0, 0, 0, 0
	for _, row := range rows {
		if row.OldNum > 0 {
			if oldStart == 0 {
				oldStart = row.OldNum
			}
			oldCount++
		}
		if row.NewNum > 0 {
			if newStart == 0 {
				newStart = row.NewNum
			}
			newCount++
		}
	}
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
}
