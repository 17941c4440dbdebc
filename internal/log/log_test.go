package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffpad.log")
	cleanup, err := Init(path)
	require.NoError(t, err)

	Debug(CatClassify, "scheduled", "gen", 3)
	Info(CatPrefs, "loaded")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[DEBUG] [classify] scheduled gen=3")
	require.Contains(t, string(data), "[INFO] [prefs] loaded")
}

func TestNoopWithoutInit(t *testing.T) {
	// Must not panic or write anywhere.
	Debug(CatUI, "ignored")
	Error(CatWatch, "ignored too", "k", "v")
}

func TestLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffpad.log")
	cleanup, err := Init(path)
	require.NoError(t, err)
	defer cleanup()

	SetLevel(LevelWarn)
	defer SetLevel(LevelDebug)

	Debug(CatUI, "dropped")
	Warn(CatUI, "kept")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "dropped")
	require.Contains(t, string(data), "kept")
}

func TestOddKeyValuePairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffpad.log")
	cleanup, err := Init(path)
	require.NoError(t, err)
	defer cleanup()

	Debug(CatSession, "odd", "dangling")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "dangling=?")
}
