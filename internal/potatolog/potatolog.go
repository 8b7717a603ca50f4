// Package potatolog keeps recent log entries in memory, so they can be shown
// inside the TUI.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// DefaultCapacity is the number of entries GlobalMemoryLogReaderWriter keeps.
const DefaultCapacity = 512

// LogEntry is a single (JSON-decoded) log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = NewMemoryLogReaderWriter(DefaultCapacity)

// MemoryLogReaderWriter is a simple in-memory log reader and writer, keeping
// at most a fixed number of the most recent entries.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	capacity int
	log      []LogEntry
}

// NewMemoryLogReaderWriter returns an empty log keeping up to capacity
// entries. A capacity < 1 means unbounded.
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{capacity: capacity}
}

// Write appends a log entry to the log.
// It expects a single JSON object per call, as written by zerolog.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (%w) (input:'%s')", err, string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.capacity > 0 && len(w.log) > w.capacity {
		w.log = w.log[len(w.log)-w.capacity:]
	}
	return len(p), nil
}

// Get returns a snapshot of the log, oldest entry first.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}

// Str returns the entry's value for the key as a string, or "" if absent.
func Str(entry LogEntry, key string) string {
	v, ok := entry[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
