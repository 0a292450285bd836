package metrics

import (
	"sync"
	"time"
)

// Metrics tracks pipeline counters for the monitoring endpoints.
type Metrics struct {
	mu sync.RWMutex

	// Counters
	FeedsFetched       int64
	FeedsFailed        int64
	ItemsParsed        int64
	ItemsDropped       int64
	DuplicatesFiltered int64
	StoryGroupsFormed  int64
	CacheHits          int64
	CacheMisses        int64

	// Timings
	LastRefreshTime    time.Duration
	TotalRefreshTime   time.Duration
	AverageRefreshTime time.Duration
	RefreshCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementFeedsFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFetched++
}

func (m *Metrics) IncrementFeedsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFailed++
}

func (m *Metrics) AddItemsParsed(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsParsed += int64(n)
}

func (m *Metrics) IncrementItemsDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsDropped++
}

func (m *Metrics) AddDuplicatesFiltered(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered += int64(n)
}

func (m *Metrics) AddStoryGroupsFormed(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoryGroupsFormed += int64(n)
}

func (m *Metrics) IncrementCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *Metrics) IncrementCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *Metrics) RecordRefreshTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastRefreshTime = duration
	m.TotalRefreshTime += duration
	m.RefreshCount++

	if m.RefreshCount > 0 {
		m.AverageRefreshTime = m.TotalRefreshTime / time.Duration(m.RefreshCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"feeds_fetched":           m.FeedsFetched,
		"feeds_failed":            m.FeedsFailed,
		"items_parsed":            m.ItemsParsed,
		"items_dropped":           m.ItemsDropped,
		"duplicates_filtered":     m.DuplicatesFiltered,
		"story_groups_formed":     m.StoryGroupsFormed,
		"cache_hits":              m.CacheHits,
		"cache_misses":            m.CacheMisses,
		"last_refresh_time_ms":    m.LastRefreshTime.Milliseconds(),
		"average_refresh_time_ms": m.AverageRefreshTime.Milliseconds(),
		"last_run_time":           m.LastRunTime.Format(time.RFC3339),
		"last_error_time":         m.LastErrorTime.Format(time.RFC3339),
		"last_error":              m.LastError,
		"is_healthy":              m.IsHealthy,
	}
}
