package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogFile = "nestedmenu.log"

// LevelTrace sits below debug so trace entries never depend on -log-level.
const LevelTrace = slog.Level(-8)

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	logLevel     = slog.LevelInfo
)

// ParseLevel converts a level name into a slog.Level. Unknown names are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLevel sets the minimum level for Info and Error entries.
func SetLevel(level slog.Level) {
	mu.Lock()
	logLevel = level
	mu.Unlock()
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the current log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Error writes err to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	write(slog.LevelError, "error", slog.String("error", err.Error()))
}

// Info writes a message with key/value attributes when the level allows it.
func Info(msg string, args ...any) {
	write(slog.LevelInfo, msg, args...)
}

// Trace appends a structured JSON entry to the shared log when tracing is
// enabled. The event name is the entry's message.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	if payload == nil {
		write(LevelTrace, event)
		return
	}
	write(LevelTrace, event, slog.Any("payload", payload))
}

func write(level slog.Level, msg string, args ...any) {
	mu.Lock()
	path := logPath
	threshold := logLevel
	if traceEnabled && level == LevelTrace {
		threshold = LevelTrace
	}
	mu.Unlock()
	if level < threshold {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:       threshold,
		ReplaceAttr: renameLevel,
	}))
	logger.Log(context.Background(), level, msg, args...)
}

func renameLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
		return slog.String(slog.LevelKey, "TRACE")
	}
	return a
}
