package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

var ErrHelp = errors.New("help requested")
var ErrVersion = errors.New("version requested")

func Parse(args []string) (Options, error) {
	var opts Options
	var help bool
	var showVersion bool

	fs := flag.NewFlagSet("diffpad", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.SessionPath, "session", "", "Load this session file on start; S saves back to it")
	fs.StringVar(&opts.StateDir, "state-dir", "", "Directory for preference storage")
	fs.StringVar(&opts.LogPath, "log", "", "Append diagnostics to this file")
	fs.BoolVar(&help, "help", false, "Show help")
	fs.BoolVar(&help, "h", false, "Show help")
	fs.BoolVar(&showVersion, "version", false, "Show version")

	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("%w\n\n%s", err, Usage())
	}
	if help {
		return Options{}, ErrHelp
	}
	if showVersion {
		return Options{}, ErrVersion
	}

	rest := fs.Args()
	if len(rest) > 0 {
		switch rest[0] {
		case "doctor":
			if len(rest) > 1 {
				return Options{}, fmt.Errorf("doctor takes no arguments\n\n%s", Usage())
			}
			opts.Doctor = true
			return opts, nil
		case "version":
			return Options{}, ErrVersion
		case "help":
			return Options{}, ErrHelp
		}
	}

	switch len(rest) {
	case 0:
	case 1:
		opts.OriginalPath = rest[0]
	case 2:
		opts.OriginalPath = rest[0]
		opts.ModifiedPath = rest[1]
	default:
		return Options{}, fmt.Errorf("at most two files can be opened\n\n%s", Usage())
	}

	if opts.SessionPath != "" && (opts.OriginalPath != "" || opts.ModifiedPath != "") {
		return Options{}, fmt.Errorf("-session cannot be combined with file arguments\n\n%s", Usage())
	}

	return opts, nil
}

func Usage() string {
	return strings.TrimSpace(`Usage:
  diffpad
  diffpad <ORIGINAL> [MODIFIED]
  diffpad -session <path>
  diffpad doctor

Positional paths load files into the original and modified panes; with no
arguments both panes start empty.

Commands:
  doctor                 Report config-dir, store, clipboard and color health
  version                Show version

Options:
  -session <path>        Load a saved session; S writes back to the same path
  -state-dir <dir>       Preference storage directory (default: user config dir)
  -log <path>            Append diagnostics to this file
  -version               Show version
`)
}
