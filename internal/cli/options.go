package cli

// Options is the fully-parsed configuration for a single invocation.
//
// It supports:
// - scratch mode: no arguments, two empty buffers
// - file mode: <ORIGINAL> [MODIFIED] positional paths
// - session mode: -session <path>
type Options struct {
	OriginalPath string
	ModifiedPath string

	SessionPath string
	StateDir    string
	LogPath     string

	Doctor bool
}
