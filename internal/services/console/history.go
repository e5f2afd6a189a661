package console

import (
	"sync"

	"github.com/craftdeck/craftdeck/internal/model"
)

// DefaultHistoryCapacity is the bound on retained command records
const DefaultHistoryCapacity = 100

// History is a mutex-guarded bounded sequence of command records. On
// overflow the oldest record is evicted. Best-effort operator convenience,
// distinct from the durable audit log.
type History struct {
	mu      sync.Mutex
	records []model.CommandRecord
	cap     int
}

// NewHistory creates a History with the given capacity. A non-positive
// capacity falls back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		records: make([]model.CommandRecord, 0, capacity),
		cap:     capacity,
	}
}

// Append adds a record, evicting the oldest when full. Append-and-trim is
// atomic under the mutex so concurrent executions cannot corrupt the bound.
func (h *History) Append(record model.CommandRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, record)
	if len(h.records) > h.cap {
		h.records = h.records[len(h.records)-h.cap:]
	}
}

// Recent returns the retained records, most recent first
func (h *History) Recent() []model.CommandRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]model.CommandRecord, len(h.records))
	for i, record := range h.records {
		out[len(h.records)-1-i] = record
	}
	return out
}

// Len returns the number of retained records
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}
