// Copyright
// SPDX-License-Identifier: MIT
// diffpad: terminal diff scratchpad with live language detection
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"

	"diffpad/internal/cli"
	"diffpad/internal/log"
	"diffpad/internal/prefs"
	"diffpad/internal/tui"
	"diffpad/internal/watch"
)

var version = "dev"

func main() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			fmt.Fprintln(os.Stdout, cli.Usage())
			os.Exit(0)
		}
		if errors.Is(err, cli.ErrVersion) {
			fmt.Fprintf(os.Stdout, "diffpad %s\n", versionString())
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(run(opts))
}

func run(opts cli.Options) int {
	dir := stateDir(opts.StateDir)
	if opts.Doctor {
		return doctor(dir)
	}

	if opts.LogPath != "" {
		cleanup, err := log.Init(opts.LogPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer cleanup()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create state dir %s: %v\n", dir, err)
		return 1
	}
	store := openStore(dir)
	defer store.Close()

	// A broken watcher only costs reload notices, so the editor starts anyway.
	watcher, err := watch.New(watch.DefaultQuiet)
	if err != nil {
		log.Warn(log.CatWatch, "file watching disabled", "err", err)
		watcher = nil
	} else {
		defer watcher.Stop()
	}

	err = tui.Run(tui.Options{
		Store:        store,
		Watcher:      watcher,
		SessionPath:  opts.SessionPath,
		OriginalPath: opts.OriginalPath,
		ModifiedPath: opts.ModifiedPath,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// stateDir resolves where preferences live: -state-dir if given, otherwise
// the user config dir (falling back to ~/.config) under "diffpad".
func stateDir(override string) string {
	if override != "" {
		return override
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ".diffpad"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "diffpad")
}

func openStore(dir string) *prefs.Store {
	medium, err := prefs.OpenSQLite(filepath.Join(dir, "prefs.db"))
	if err != nil {
		log.Warn(log.CatPrefs, "preference db unavailable, using in-memory prefs", "err", err)
		return prefs.Load(prefs.NewMemory())
	}
	return prefs.Load(medium)
}

/* ---------- doctor ---------- */

func doctor(dir string) int {
	fmt.Println("diffpad doctor:")
	ok := true

	if err := probeDir(dir); err != nil {
		fmt.Printf("  ✗ state dir not writable: %s (%v)\n", dir, err)
		ok = false
	} else {
		fmt.Printf("  ✓ state dir writable: %s\n", dir)
	}

	dbPath := filepath.Join(dir, "prefs.db")
	if err := probeStore(dbPath); err != nil {
		fmt.Printf("  ✗ preference store: %v\n", err)
		ok = false
	} else {
		fmt.Printf("  ✓ preference store: %s\n", dbPath)
	}

	if clipboard.Unsupported {
		fmt.Println("  ✗ clipboard: no helper found (install xclip, xsel, or wl-clipboard)")
		ok = false
	} else {
		fmt.Println("  ✓ clipboard: available")
	}

	fmt.Printf("  • color: %s\n", colorSupport())

	if ok {
		fmt.Println("All checks passed.")
		return 0
	}
	fmt.Println("Problems found. diffpad still runs; failing items fall back at startup.")
	return 1
}

func probeDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func probeStore(path string) error {
	medium, err := prefs.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer medium.Close()
	_, _, err = medium.Get("doctor.probe")
	return err
}

func colorSupport() string {
	switch termenv.EnvColorProfile() {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "none (NO_COLOR set or dumb terminal)"
	}
}

func versionString() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	if info.Main.Version == "" || info.Main.Version == "(devel)" {
		return version
	}
	return info.Main.Version
}
