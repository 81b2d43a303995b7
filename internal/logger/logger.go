package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	logLevel      = new(slog.LevelVar)
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init configures the package logger from cfg. The returned closer
// releases the log file, if one was opened.
func Init(cfg Config) (io.Closer, error) {
	cfg.process()

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if path := cfg.LogFilePath; path != "" && path != "-" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log dir '%s': %w", dir, err)
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file '%s': %w", path, err)
		}
		out, closer = f, f
	}

	return closer, initHandlers(cfg, out)
}

// InitWriter configures the package logger to write to w. Used by tests
// and by the headless export path.
func InitWriter(cfg Config, w io.Writer) {
	cfg.process()
	_ = initHandlers(cfg, w)
}

func initHandlers(cfg Config, out io.Writer) error {
	logLevel.Set(cfg.level)

	opts := slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.SourceKey:
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			case slog.TimeKey:
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	handlers := []slog.Handler{slog.NewTextHandler(out, &opts)}

	var journalErr error
	if cfg.Journal {
		jh, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: logLevel,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
			ReplaceGroup: toJournalKey,
		})
		if err != nil {
			journalErr = fmt.Errorf("systemd journal unavailable: %w", err)
		} else {
			handlers = append(handlers, jh)
		}
	}

	processed := cfg
	logger := slog.New(newFilteringHandler(slogmulti.Fanout(handlers...), &processed))

	mu.Lock()
	defaultLogger = logger
	mu.Unlock()

	if journalErr != nil {
		Warnf("Logger: %v", journalErr)
	}
	logAtLevel(slog.LevelInfo, "Logger initialized (level %s)", cfg.level)
	return nil
}

// toJournalKey upper-cases keys and replaces characters the journal rejects.
func toJournalKey(key string) string {
	key = strings.ToUpper(key)
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, key)
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	logLevel.Set(level)
}

// logAtLevel builds a record with the caller of the exported wrapper as
// its source.
func logAtLevel(level slog.Level, format string, args ...any) {
	logWithAttrs(level, nil, format, args...)
}

func logWithAttrs(level slog.Level, attrs []slog.Attr, format string, args ...any) {
	l := Get()
	ctx := context.Background()
	if !l.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	// Skip runtime.Callers, logWithAttrs, the level helper and the wrapper.
	runtime.Callers(4, pcs[:])
	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}

func logTagged(level slog.Level, tag, format string, args ...any) {
	logWithAttrs(level, []slog.Attr{slog.String(tagKey, tag)}, format, args...)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...any) {
	logAtLevel(slog.LevelDebug, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...any) {
	logAtLevel(slog.LevelInfo, format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...any) {
	logAtLevel(slog.LevelWarn, format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...any) {
	logAtLevel(slog.LevelError, format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...any) {
	logAtLevel(slog.LevelError, format, args...)
	os.Exit(1)
}

// DebugTagf logs a debug message carrying a filter tag.
func DebugTagf(tag, format string, args ...any) {
	logTagged(slog.LevelDebug, tag, format, args...)
}

// InfoTagf logs an info message carrying a filter tag.
func InfoTagf(tag, format string, args ...any) {
	logTagged(slog.LevelInfo, tag, format, args...)
}

// Get returns the configured logger.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}
