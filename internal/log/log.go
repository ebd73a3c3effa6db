// ABOUTME: Diagnostic logging wrapper around slog levels for verbose mode output
// ABOUTME: Global level via SetLevel; output is redirectable so raw-mode frames stay clean

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log lines to w and returns the previous writer.
// While the terminal is in raw mode, stderr shares the screen, so
// sessions point this at a file or io.Discard.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()

	prev := out
	out = w
	return prev
}

func emit(tag, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	fmt.Fprintf(out, "%s [%s] "+format+"\n", append([]any{time.Now().Format(time.TimeOnly), tag}, args...)...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if slog.Level(level.Load()) > LevelDebug {
		return
	}
	emit("DEBUG", format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if slog.Level(level.Load()) > LevelInfo {
		return
	}
	emit("INFO", format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if slog.Level(level.Load()) > LevelWarn {
		return
	}
	emit("WARN", format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit("ERROR", format, args...)
}
