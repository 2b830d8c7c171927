package logging

import (
	"encoding/json"
	"sync"
	"time"
)

// DefaultBufferSize is how many entries the in-memory log keeps when no
// capacity is configured.
const DefaultBufferSize = 100

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry is one recorded log line as served by the log endpoints.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Module    string         `json:"module,omitempty"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Buffer is a fixed-capacity ring of log entries. Once full, each new entry
// evicts the oldest one.
type Buffer struct {
	mu      sync.Mutex
	entries []Entry
	start   int
	size    int
}

func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultBufferSize
	}
	return &Buffer{entries: make([]Entry, capacity)}
}

func (b *Buffer) Add(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capacity := len(b.entries)
	if b.size < capacity {
		b.entries[(b.start+b.size)%capacity] = e
		b.size++
		return
	}
	b.entries[b.start] = e
	b.start = (b.start + 1) % capacity
}

// Entries returns the retained entries oldest first. An empty level returns
// every entry.
func (b *Buffer) Entries(level Level) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Entry, 0, b.size)
	for i := 0; i < b.size; i++ {
		e := b.entries[(b.start+i)%len(b.entries)]
		if level != "" && e.Level != level {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (b *Buffer) Errors() []Entry {
	return b.Entries(LevelError)
}

func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.entries)
	b.start = 0
	b.size = 0
}

// Export renders every retained entry as indented JSON.
func (b *Buffer) Export() ([]byte, error) {
	return json.MarshalIndent(b.Entries(""), "", "  ")
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

func (b *Buffer) Cap() int {
	return len(b.entries)
}
