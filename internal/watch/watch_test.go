package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newWatcher(t *testing.T, quiet time.Duration) *Watcher {
	t.Helper()
	w, err := New(quiet)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	return w
}

func expectEvent(t *testing.T, w *Watcher, key string) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		require.Equal(t, key, ev.Key)
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("no notification for %q", key)
		return Event{}
	}
}

func expectQuiet(t *testing.T, w *Watcher, window time.Duration) {
	t.Helper()
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected notification: %+v", ev)
	case <-time.After(window):
	}
}

func TestCoalescesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("seed"), 0o644))

	w := newWatcher(t, 150*time.Millisecond)
	require.NoError(t, w.Watch("original", path))

	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("rev %d", i)), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	ev := expectEvent(t, w, "original")
	require.Equal(t, path, ev.Path)
	expectQuiet(t, w, 300*time.Millisecond)
}

func TestIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("b"), 0o644))

	w := newWatcher(t, 50*time.Millisecond)
	require.NoError(t, w.Watch("original", path))

	require.NoError(t, os.WriteFile(other, []byte("changed"), 0o644))
	expectQuiet(t, w, 300*time.Millisecond)
}

func TestSeesRenameStyleSaves(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	tmp := filepath.Join(dir, ".a.txt.tmp")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	w := newWatcher(t, 50*time.Millisecond)
	require.NoError(t, w.Watch("modified", path))

	require.NoError(t, os.WriteFile(tmp, []byte("new"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	expectEvent(t, w, "modified")
}

func TestRetargetDropsOldPath(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0o644))

	w := newWatcher(t, 50*time.Millisecond)
	require.NoError(t, w.Watch("original", a))
	require.NoError(t, w.Watch("original", b))

	require.NoError(t, os.WriteFile(a, []byte("changed"), 0o644))
	expectQuiet(t, w, 300*time.Millisecond)

	require.NoError(t, os.WriteFile(b, []byte("changed"), 0o644))
	ev := expectEvent(t, w, "original")
	require.Equal(t, b, ev.Path)
}

func TestForgetSilencesTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	w := newWatcher(t, 50*time.Millisecond)
	require.NoError(t, w.Watch("original", path))
	w.Forget("original")

	require.NoError(t, os.WriteFile(path, []byte("changed"), 0o644))
	expectQuiet(t, w, 300*time.Millisecond)
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := New(0)
	require.NoError(t, err)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
