package prefs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"diffpad/internal/classify"
	"diffpad/internal/tui/state"
)

// faulty errors on every operation, standing in for a medium whose backing
// file is unreadable.
type faulty struct{}

func (faulty) Get(string) (string, bool, error) { return "", false, errors.New("io error") }
func (faulty) Set(string, string) error         { return errors.New("io error") }
func (faulty) Close() error                     { return nil }

func TestDefaultsWhenEmpty(t *testing.T) {
	s := Load(NewMemory())
	require.False(t, s.Bool(KeyDarkMode))
	require.Equal(t, state.DefaultPanelHeight, s.Int(KeyPanelHeight))
	require.Equal(t, LayoutSplit, s.String(KeyDiffLayout))
	require.Equal(t, DetailChar, s.String(KeyInlineDetail))
	require.True(t, s.Bool(KeyShowLineNumbers))
	require.True(t, s.Bool(KeyHighlightBackgrounds))
	require.False(t, s.Bool(KeyWrapLines))
	require.Equal(t, classify.SelectionAuto, s.String(KeyLanguage))
}

func TestCorruptedHeightFallsBackToDefault(t *testing.T) {
	for _, raw := range []string{"abc", "", "1", "-4", "10.5"} {
		m := NewMemory()
		require.NoError(t, m.Set(string(KeyPanelHeight), raw))
		s := Load(m)
		require.Equalf(t, state.DefaultPanelHeight, s.Int(KeyPanelHeight),
			"stored %q should load as the default", raw)
	}
}

func TestInvalidEnumsFallBack(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set(string(KeyDiffLayout), "diagonal"))
	require.NoError(t, m.Set(string(KeyInlineDetail), "word"))
	require.NoError(t, m.Set(string(KeyLanguage), "klingon"))
	require.NoError(t, m.Set(string(KeyDarkMode), "yes"))

	s := Load(m)
	require.Equal(t, LayoutSplit, s.String(KeyDiffLayout))
	require.Equal(t, DetailChar, s.String(KeyInlineDetail))
	require.Equal(t, classify.SelectionAuto, s.String(KeyLanguage))
	require.False(t, s.Bool(KeyDarkMode))
}

func TestValidStoredValuesSurvive(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set(string(KeyPanelHeight), "17"))
	require.NoError(t, m.Set(string(KeyDiffLayout), LayoutUnified))
	require.NoError(t, m.Set(string(KeyLanguage), "go"))

	s := Load(m)
	require.Equal(t, 17, s.Int(KeyPanelHeight))
	require.Equal(t, LayoutUnified, s.String(KeyDiffLayout))
	require.Equal(t, "go", s.String(KeyLanguage))
}

func TestWriteThroughAndReload(t *testing.T) {
	m := NewMemory()
	s := Load(m)
	s.SetBool(KeyDarkMode, true)
	s.SetInt(KeyPanelHeight, 14)
	s.SetString(KeyLanguage, "python")

	v, ok, err := m.Get(string(KeyDarkMode))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "true", v)

	reloaded := Load(m)
	require.True(t, reloaded.Bool(KeyDarkMode))
	require.Equal(t, 14, reloaded.Int(KeyPanelHeight))
	require.Equal(t, "python", reloaded.String(KeyLanguage))
}

func TestSetRefusesInvalidValues(t *testing.T) {
	m := NewMemory()
	s := Load(m)
	s.SetInt(KeyPanelHeight, state.MinPanelHeight-1)
	s.SetString(KeyLanguage, "klingon")

	require.Equal(t, state.DefaultPanelHeight, s.Int(KeyPanelHeight))
	require.Equal(t, classify.SelectionAuto, s.String(KeyLanguage))
	_, ok, _ := m.Get(string(KeyPanelHeight))
	require.False(t, ok, "invalid value must not reach the medium")
}

func TestSetOverwritesStoredGarbage(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set(string(KeyPanelHeight), "abc"))
	s := Load(m)
	require.Equal(t, state.DefaultPanelHeight, s.Int(KeyPanelHeight))

	// Committing the same in-memory value must still replace the garbage.
	s.SetInt(KeyPanelHeight, state.DefaultPanelHeight)
	v, ok, _ := m.Get(string(KeyPanelHeight))
	require.True(t, ok)
	require.Equal(t, "10", v)
}

func TestUnknownStoredKeysIgnored(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set("fontLigatures", "yes"))
	s := Load(m)
	require.Equal(t, state.DefaultPanelHeight, s.Int(KeyPanelHeight))

	v, ok, _ := m.Get("fontLigatures")
	require.True(t, ok)
	require.Equal(t, "yes", v)
}

func TestUnknownKeySetIgnored(t *testing.T) {
	s := Load(NewMemory())
	s.SetString(Key("bogus"), "value")
	require.Empty(t, s.String(Key("bogus")))
}

func TestFaultyMediumMeansDefaults(t *testing.T) {
	s := Load(faulty{})
	require.Equal(t, state.DefaultPanelHeight, s.Int(KeyPanelHeight))
	require.Equal(t, classify.SelectionAuto, s.String(KeyLanguage))

	// Writes fail quietly; the in-memory value still moves.
	s.SetBool(KeyDarkMode, true)
	require.True(t, s.Bool(KeyDarkMode))
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := t.TempDir() + "/prefs.db"
	m, err := OpenSQLite(path)
	require.NoError(t, err)

	s := Load(m)
	s.SetInt(KeyPanelHeight, 12)
	s.SetString(KeyDiffLayout, LayoutUnified)
	require.NoError(t, s.Close())

	m2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer m2.Close()
	s2 := Load(m2)
	require.Equal(t, 12, s2.Int(KeyPanelHeight))
	require.Equal(t, LayoutUnified, s2.String(KeyDiffLayout))
}
