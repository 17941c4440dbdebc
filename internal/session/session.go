// Package session saves and restores an explicit scratchpad snapshot:
// both buffer texts, their file paths, and the language selection.
// Nothing here runs implicitly; the user asks for a save or a load.
package session

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Version written by this build. Older documents load; newer ones refuse.
const Version = 1

// Pane is one buffer's slice of the snapshot.
type Pane struct {
	Path string `yaml:"path,omitempty"`
	Text string `yaml:"text"`
}

type Session struct {
	Version  int       `yaml:"version"`
	Original Pane      `yaml:"original"`
	Modified Pane      `yaml:"modified"`
	Language string    `yaml:"language"`
	Saved    time.Time `yaml:"saved,omitempty"`
}

// Load parses a session document. The language field is passed through
// as stored; applying it goes over the regular selection path, which
// already rejects unknown tags.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse session YAML: %w", err)
	}
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Version > Version {
		return nil, fmt.Errorf("session version %d is newer than this build supports (%d)", s.Version, Version)
	}
	return &s, nil
}

// Save stamps the document and writes it. The value receiver keeps the
// caller's copy unstamped.
func Save(path string, s Session) error {
	s.Version = Version
	if s.Saved.IsZero() {
		s.Saved = time.Now().UTC()
	}
	data, err := yaml.Marshal(&s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
