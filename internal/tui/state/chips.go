package state

// ChipKind enumerates the types of status chips shown in the status bar.
type ChipKind int

const (
	// Stable ordering for display: Language, Auto, Layout, Adds, Dels, Watch
	CHIP_LANG ChipKind = iota
	CHIP_AUTO
	CHIP_LAYOUT
	CHIP_ADDS
	CHIP_DELS
	CHIP_WATCH
)

// Chip represents a single status chip. Text carries labels, Value carries
// numeric counters. Unused fields stay zero.
type Chip struct {
	Kind  ChipKind
	Text  string
	Value int
}
