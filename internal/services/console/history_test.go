package console

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdeck/craftdeck/internal/model"
)

func record(i int) model.CommandRecord {
	return model.CommandRecord{
		Timestamp: time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC),
		Command:   fmt.Sprintf("say %d", i),
		Output:    "",
	}
}

func TestHistoryAppendAndRecent(t *testing.T) {
	h := NewHistory(10)

	h.Append(record(1))
	h.Append(record(2))
	h.Append(record(3))

	recent := h.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "say 3", recent[0].Command)
	assert.Equal(t, "say 2", recent[1].Command)
	assert.Equal(t, "say 1", recent[2].Command)
}

func TestHistoryEvictsOldestAtCapacity(t *testing.T) {
	h := NewHistory(100)

	for i := 0; i < 150; i++ {
		h.Append(record(i))
	}

	recent := h.Recent()
	require.Len(t, recent, 100)
	// Most recent first; the oldest 50 were evicted
	assert.Equal(t, "say 149", recent[0].Command)
	assert.Equal(t, "say 50", recent[99].Command)
}

func TestHistoryRecentReturnsCopy(t *testing.T) {
	h := NewHistory(10)
	h.Append(record(1))

	recent := h.Recent()
	recent[0].Command = "mutated"

	assert.Equal(t, "say 1", h.Recent()[0].Command)
}

func TestHistoryNonPositiveCapacityUsesDefault(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < DefaultHistoryCapacity+10; i++ {
		h.Append(record(i))
	}
	assert.Equal(t, DefaultHistoryCapacity, h.Len())
}

func TestHistoryConcurrentAppendsKeepBound(t *testing.T) {
	h := NewHistory(100)

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				h.Append(record(g*50 + i))
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 100, h.Len())
}
