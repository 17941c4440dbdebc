// Package prefs persists user preferences as a validated key-value table.
// Every key has a typed default and a validator; anything missing, invalid,
// or unreadable silently falls back to the default so a damaged store can
// never take the app down.
package prefs

import (
	"strconv"

	"diffpad/internal/classify"
	"diffpad/internal/log"
	"diffpad/internal/tui/state"
)

// Key names a preference. Keys are stable storage identifiers.
type Key string

const (
	KeyDarkMode             Key = "darkMode"
	KeyPanelHeight          Key = "panelHeight"
	KeyDiffLayout           Key = "diffLayout"
	KeyInlineDetail         Key = "inlineDetail"
	KeyShowLineNumbers      Key = "showLineNumbers"
	KeyHighlightBackgrounds Key = "highlightBackgrounds"
	KeyWrapLines            Key = "wrapLines"
	KeyLanguage             Key = "language"
)

// Stored values for the enum keys.
const (
	LayoutSplit   = "split"
	LayoutUnified = "unified"
	DetailChar    = "char"
	DetailLine    = "line"
)

// entry is one schema row: the serialized default and the validator applied
// to raw stored values.
type entry struct {
	def   string
	valid func(string) bool
}

var schema = map[Key]entry{
	KeyDarkMode:             {def: "false", valid: isBool},
	KeyPanelHeight:          {def: strconv.Itoa(state.DefaultPanelHeight), valid: isPanelHeight},
	KeyDiffLayout:           {def: LayoutSplit, valid: oneOf(LayoutSplit, LayoutUnified)},
	KeyInlineDetail:         {def: DetailChar, valid: oneOf(DetailChar, DetailLine)},
	KeyShowLineNumbers:      {def: "true", valid: isBool},
	KeyHighlightBackgrounds: {def: "true", valid: isBool},
	KeyWrapLines:            {def: "false", valid: isBool},
	KeyLanguage:             {def: classify.SelectionAuto, valid: classify.ValidSelection},
}

// loadOrder fixes the iteration order so fallback logs are deterministic.
var loadOrder = []Key{
	KeyDarkMode, KeyPanelHeight, KeyDiffLayout, KeyInlineDetail,
	KeyShowLineNumbers, KeyHighlightBackgrounds, KeyWrapLines, KeyLanguage,
}

func isBool(v string) bool {
	return v == "true" || v == "false"
}

func isPanelHeight(v string) bool {
	n, err := strconv.Atoi(v)
	return err == nil && n >= state.MinPanelHeight
}

func oneOf(options ...string) func(string) bool {
	return func(v string) bool {
		for _, o := range options {
			if v == o {
				return true
			}
		}
		return false
	}
}

// Store is the in-memory view of the preferences, loaded once at startup and
// written through one key at a time as values change.
type Store struct {
	medium Medium
	values map[Key]string
}

// Load reads every known key from medium, validating each value and falling
// back to the key's default on a miss, a read error, or a validation
// failure. It never fails; a broken medium just means defaults. Stored keys
// outside the schema are left alone.
func Load(medium Medium) *Store {
	s := &Store{medium: medium, values: make(map[Key]string, len(loadOrder))}
	for _, k := range loadOrder {
		e := schema[k]
		raw, ok, err := medium.Get(string(k))
		switch {
		case err != nil:
			log.Debug(log.CatPrefs, "read failed, using default", "key", k, "error", err)
			s.values[k] = e.def
		case !ok:
			s.values[k] = e.def
		case !e.valid(raw):
			log.Debug(log.CatPrefs, "invalid stored value, using default", "key", k, "value", raw)
			s.values[k] = e.def
		default:
			s.values[k] = raw
		}
	}
	return s
}

func (s *Store) Bool(k Key) bool {
	v, _ := strconv.ParseBool(s.values[k])
	return v
}

func (s *Store) Int(k Key) int {
	v, _ := strconv.Atoi(s.values[k])
	return v
}

func (s *Store) String(k Key) string {
	return s.values[k]
}

func (s *Store) SetBool(k Key, v bool)     { s.set(k, strconv.FormatBool(v)) }
func (s *Store) SetInt(k Key, v int)       { s.set(k, strconv.Itoa(v)) }
func (s *Store) SetString(k Key, v string) { s.set(k, v) }

// set validates, caches, and writes through a single key. Invalid values are
// dropped rather than stored, and a write error only costs persistence,
// never the in-memory value. Writes are not skipped for unchanged values:
// the stored copy may still hold garbage the load fell back from.
func (s *Store) set(k Key, v string) {
	e, known := schema[k]
	if !known {
		log.Debug(log.CatPrefs, "unknown key ignored", "key", k)
		return
	}
	if !e.valid(v) {
		log.Debug(log.CatPrefs, "refusing to store invalid value", "key", k, "value", v)
		return
	}
	s.values[k] = v
	if err := s.medium.Set(string(k), v); err != nil {
		log.Warn(log.CatPrefs, "write failed", "key", k, "error", err)
	}
}

// Close releases the medium.
func (s *Store) Close() error {
	return s.medium.Close()
}
