package util

import (
	"diffpad/internal/tui/state"
)

// ComputeChips calculates the set of status chips for the status bar given
// the effective language label, whether detection is live, the layout label,
// the diff counters, and whether a file watch is active.
//
// The returned slice preserves a stable order:
//
//	Language, Auto, Layout, Adds, Dels, Watch
//
// Rules:
//   - Language is always included and carries the display label.
//   - Auto appears only while the language follows detection; an explicit
//     selection drops it.
//   - Adds and Dels are always included (counters), even at zero.
//   - Watch appears only while a file watch is feeding a buffer.
func ComputeChips(langLabel string, auto bool, layout string, adds, dels int, watching bool) []state.Chip {
	chips := make([]state.Chip, 0, 6)

	chips = append(chips, state.Chip{Kind: state.CHIP_LANG, Text: langLabel})

	if auto {
		chips = append(chips, state.Chip{Kind: state.CHIP_AUTO})
	}

	chips = append(chips, state.Chip{Kind: state.CHIP_LAYOUT, Text: layout})
	chips = append(chips, state.Chip{Kind: state.CHIP_ADDS, Value: adds})
	chips = append(chips, state.Chip{Kind: state.CHIP_DELS, Value: dels})

	if watching {
		chips = append(chips, state.Chip{Kind: state.CHIP_WATCH})
	}

	return chips
}
