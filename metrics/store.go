// store.go contains the thread-safe in-memory store that collects
// CardRecords during a run and aggregates them into RunStats.
package metrics

import (
	"sync"
	"time"
)

// Store is an in-memory collector for generation statistics.
//
// It keeps a circular buffer of the most recent card records plus
// running aggregates, so a long multi-deck run does not grow memory
// with the card count.
//
// Thread Safety: Store is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	history []CardRecord
	cap     int
	head    int
	size    int

	totalCards    int64
	totalSuccess  int64
	totalErrors   int64
	totalRetries  int64
	totalDuration time.Duration
}

// DefaultHistoryCapacity bounds the retained card records.
const DefaultHistoryCapacity = 100

// NewStore creates a store retaining up to capacity recent records.
// A capacity below 1 falls back to DefaultHistoryCapacity.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &Store{
		history: make([]CardRecord, capacity),
		cap:     capacity,
	}
}

// Record logs one completed card generation.
func (s *Store) Record(rec CardRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history[s.head] = rec
	s.head = (s.head + 1) % s.cap
	if s.size < s.cap {
		s.size++
	}

	s.totalCards++
	switch rec.Status {
	case CardStatusSuccess:
		s.totalSuccess++
	case CardStatusError:
		s.totalErrors++
	}
	if rec.Attempts > 1 {
		s.totalRetries += int64(rec.Attempts - 1)
	}
	s.totalDuration += rec.Duration
}

// Stats returns the aggregated statistics for the run so far.
func (s *Store) Stats() RunStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := RunStats{
		TotalCards:   s.totalCards,
		TotalSuccess: s.totalSuccess,
		TotalErrors:  s.totalErrors,
		TotalRetries: s.totalRetries,
	}
	if s.totalCards > 0 {
		stats.SuccessRate = float64(s.totalSuccess) / float64(s.totalCards) * 100
		stats.AvgDuration = s.totalDuration / time.Duration(s.totalCards)
	}
	return stats
}

// Recent returns up to limit of the most recent card records, newest
// first.
func (s *Store) Recent(limit int) []CardRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || s.size == 0 {
		return []CardRecord{}
	}
	if limit > s.size {
		limit = s.size
	}

	result := make([]CardRecord, limit)
	for i := 0; i < limit; i++ {
		idx := (s.head - 1 - i + s.cap) % s.cap
		result[i] = s.history[idx]
	}
	return result
}
