package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestParseNoArgs(t *testing.T) {
	opts, err := Parse([]string{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if opts != (Options{}) {
		t.Fatalf("Parse() = %+v, want zero options", opts)
	}
}

func TestParseOneFile(t *testing.T) {
	opts, err := Parse([]string{"a.go"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if opts.OriginalPath != "a.go" || opts.ModifiedPath != "" {
		t.Fatalf("Parse() paths = %q, %q", opts.OriginalPath, opts.ModifiedPath)
	}
}

func TestParseTwoFiles(t *testing.T) {
	opts, err := Parse([]string{"a.go", "b.go"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if opts.OriginalPath != "a.go" || opts.ModifiedPath != "b.go" {
		t.Fatalf("Parse() paths = %q, %q", opts.OriginalPath, opts.ModifiedPath)
	}
}

func TestParseThreeFilesRejected(t *testing.T) {
	_, err := Parse([]string{"a", "b", "c"})
	if err == nil {
		t.Fatalf("Parse() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "Usage") {
		t.Fatalf("Parse() error = %v, want usage text", err)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := Parse([]string{"-log", "/tmp/d.log", "-state-dir", "/tmp/state"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if opts.LogPath != "/tmp/d.log" || opts.StateDir != "/tmp/state" {
		t.Fatalf("Parse() = %+v", opts)
	}
}

func TestParseSessionFlag(t *testing.T) {
	opts, err := Parse([]string{"-session", "pad.yaml"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if opts.SessionPath != "pad.yaml" {
		t.Fatalf("Parse() SessionPath = %q", opts.SessionPath)
	}
}

func TestParseSessionConflictsWithFiles(t *testing.T) {
	_, err := Parse([]string{"-session", "pad.yaml", "a.go"})
	if err == nil {
		t.Fatalf("Parse() error = nil, want conflict error")
	}
}

func TestParseDoctor(t *testing.T) {
	opts, err := Parse([]string{"doctor"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !opts.Doctor {
		t.Fatalf("Parse() Doctor = false, want true")
	}
}

func TestParseDoctorRejectsExtraArgs(t *testing.T) {
	if _, err := Parse([]string{"doctor", "x"}); err == nil {
		t.Fatalf("Parse() error = nil, want error")
	}
}

func TestParseHelpSentinel(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"-help"}, {"help"}} {
		if _, err := Parse(args); !errors.Is(err, ErrHelp) {
			t.Fatalf("Parse(%v) error = %v, want ErrHelp", args, err)
		}
	}
}

func TestParseVersionSentinel(t *testing.T) {
	for _, args := range [][]string{{"-version"}, {"version"}} {
		if _, err := Parse(args); !errors.Is(err, ErrVersion) {
			t.Fatalf("Parse(%v) error = %v, want ErrVersion", args, err)
		}
	}
}

func TestParseUnknownFlag(t *testing.T) {
	_, err := Parse([]string{"-bogus"})
	if err == nil {
		t.Fatalf("Parse() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "Usage") {
		t.Fatalf("Parse() error = %v, want usage text", err)
	}
}
