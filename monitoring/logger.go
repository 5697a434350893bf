// Package monitoring holds the in-process observability buffers: an
// application log ring and a request-timing ring. Both are fixed-capacity
// circular buffers that overwrite the oldest entry on overflow, and both are
// constructed in main and injected where needed.
package monitoring

import (
	"log"
	"sync"
	"time"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type LogEntry struct {
	Level   Level                  `json:"level"`
	Message string                 `json:"message"`
	Time    time.Time              `json:"time"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// Logger is a fixed-capacity log ring. Entries past the capacity overwrite
// the oldest ones.
type Logger struct {
	mu      sync.Mutex
	entries []LogEntry
	next    int
	size    int
	echo    bool
}

// NewLogger creates a ring of the given capacity. When echo is set, entries
// are also written to the process log.
func NewLogger(capacity int, echo bool) *Logger {
	if capacity <= 0 {
		capacity = 1000
	}
	return &Logger{entries: make([]LogEntry, capacity), echo: echo}
}

func (l *Logger) log(level Level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	l.entries[l.next] = LogEntry{Level: level, Message: msg, Time: time.Now(), Fields: fields}
	l.next = (l.next + 1) % len(l.entries)
	if l.size < len(l.entries) {
		l.size++
	}
	l.mu.Unlock()

	if l.echo {
		log.Printf("%s: %s %v", level, msg, fields)
	}
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) { l.log(LevelDebug, msg, fields) }
func (l *Logger) Info(msg string, fields map[string]interface{})  { l.log(LevelInfo, msg, fields) }
func (l *Logger) Warn(msg string, fields map[string]interface{})  { l.log(LevelWarn, msg, fields) }
func (l *Logger) Error(msg string, fields map[string]interface{}) { l.log(LevelError, msg, fields) }

// Entries returns the buffered entries, oldest first.
func (l *Logger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LogEntry, 0, l.size)
	start := l.next - l.size
	if start < 0 {
		start += len(l.entries)
	}
	for i := 0; i < l.size; i++ {
		out = append(out, l.entries[(start+i)%len(l.entries)])
	}
	return out
}
