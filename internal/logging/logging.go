// Package logging provides the application log: leveled records written to
// a file under the config directory and mirrored into a bounded in-memory
// ring. The TUI's log pane renders the ring; it never writes to it.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
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
		return "INFO"
	}
}

// ParseLevel parses a log level string; unknown values default to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Record is one formatted log line kept in the ring.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
}

// Logger writes leveled records to an optional writer and keeps the most
// recent records in a ring for the log pane.
type Logger struct {
	mu      sync.Mutex
	level   Level
	out     io.Writer
	closer  io.Closer
	ring    []Record
	ringCap int
}

// DefaultRingSize is how many records the log pane can look back on.
const DefaultRingSize = 200

// New creates a logger writing to out. A nil out keeps only the ring.
func New(level Level, out io.Writer) *Logger {
	return &Logger{
		level:   level,
		out:     out,
		ringCap: DefaultRingSize,
	}
}

// NewFile creates a logger appending to the file at path.
func NewFile(level Level, path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	l := New(level, f)
	l.closer = f
	return l, nil
}

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// SetLevel changes the minimum severity written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	rec := Record{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	}

	l.ring = append(l.ring, rec)
	if len(l.ring) > l.ringCap {
		l.ring = l.ring[len(l.ring)-l.ringCap:]
	}

	if l.out != nil {
		fmt.Fprintf(l.out, "%s %-5s %s\n",
			rec.Time.Format("2006-01-02 15:04:05.000"), rec.Level, rec.Message)
	}
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }

// Recent returns up to n of the most recent records, oldest first.
func (l *Logger) Recent(n int) []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 || n > len(l.ring) {
		n = len(l.ring)
	}
	out := make([]Record, n)
	copy(out, l.ring[len(l.ring)-n:])
	return out
}
