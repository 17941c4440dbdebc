// Package log is a small file-backed logger for use inside the TUI, where
// writing to stdout or stderr would corrupt the alternate screen. It is a
// no-op until Init is called, so library code can log unconditionally.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level controls which records are written.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "?"
	}
}

// Category tags a record with the subsystem that produced it.
type Category string

const (
	CatUI       Category = "ui"
	CatPrefs    Category = "prefs"
	CatBuffers  Category = "buffers"
	CatClassify Category = "classify"
	CatSession  Category = "session"
	CatWatch    Category = "watch"
)

var (
	mu    sync.Mutex
	out   *os.File
	level = LevelDebug
)

// Init opens (or creates) the log file at path and returns a cleanup func
// that flushes and closes it. Calling Init twice closes the previous file.
func Init(path string) (func(), error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	mu.Lock()
	if out != nil {
		out.Close()
	}
	out = f
	mu.Unlock()
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if out == f {
			out = nil
		}
		f.Close()
	}, nil
}

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

// Enabled reports whether records at level l would be written.
func Enabled(l Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil && l >= level
}

func Debug(cat Category, msg string, kv ...any) { write(LevelDebug, cat, msg, kv...) }
func Info(cat Category, msg string, kv ...any)  { write(LevelInfo, cat, msg, kv...) }
func Warn(cat Category, msg string, kv ...any)  { write(LevelWarn, cat, msg, kv...) }
func Error(cat Category, msg string, kv ...any) { write(LevelError, cat, msg, kv...) }

func write(l Level, cat Category, msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil || l < level {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", time.Now().Format("2006-01-02 15:04:05.000"), l, cat, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	if len(kv)%2 == 1 {
		fmt.Fprintf(&b, " %v=?", kv[len(kv)-1])
	}
	b.WriteByte('\n')
	out.WriteString(b.String())
}
