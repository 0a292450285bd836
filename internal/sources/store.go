package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"newslens/internal/model"
)

// customRecord is the JSON shape of one user-added source on disk.
type customRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	FeedURL     string    `json:"feed_url"`
	Category    string    `json:"category"`
	Bias        string    `json:"bias"`
	Credibility int       `json:"credibility"`
	Factuality  float64   `json:"factuality"`
	Enabled     bool      `json:"enabled"`
	AddedAt     time.Time `json:"added_at"`
}

// Store keeps user-added custom sources in a JSON file. This is the
// administrative edit path: the pipeline itself only ever reads from it.
type Store struct {
	filePath string
	items    map[string]customRecord
	mu       sync.RWMutex
}

func NewStore(filePath string) *Store {
	return &Store{
		filePath: filePath,
		items:    make(map[string]customRecord),
	}
}

// Load reads existing custom sources from file. A missing file is an empty
// store, not an error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read custom sources file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var records []customRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to unmarshal custom sources: %w", err)
	}

	for _, rec := range records {
		s.items[rec.ID] = rec
	}
	return nil
}

// Save writes the current custom sources to file.
func (s *Store) Save() error {
	s.mu.RLock()
	records := make([]customRecord, 0, len(s.items))
	for _, rec := range s.items {
		records = append(records, rec)
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal custom sources: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write custom sources file: %w", err)
	}
	return nil
}

// Put inserts or replaces one custom source.
func (s *Store) Put(src model.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[src.ID] = customRecord{
		ID:          src.ID,
		Name:        src.Name,
		FeedURL:     src.FeedURL,
		Category:    string(src.Category),
		Bias:        src.Bias.String(),
		Credibility: src.Credibility,
		Factuality:  src.Factuality,
		Enabled:     src.Enabled,
		AddedAt:     time.Now(),
	}
}

// Remove deletes one custom source by id. It reports whether the id existed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	return true
}

// SetEnabled toggles one custom source. It reports whether the id existed.
func (s *Store) SetEnabled(id string, enabled bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.items[id]
	if !exists {
		return false
	}
	rec.Enabled = enabled
	s.items[id] = rec
	return true
}

// All returns every stored custom source as a model value.
func (s *Store) All() []model.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Source, 0, len(s.items))
	for _, rec := range s.items {
		out = append(out, model.Source{
			ID:          rec.ID,
			Name:        rec.Name,
			FeedURL:     rec.FeedURL,
			Category:    model.Category(rec.Category),
			Bias:        model.ParseBias(rec.Bias),
			Credibility: rec.Credibility,
			Factuality:  rec.Factuality,
			Custom:      true,
			Enabled:     rec.Enabled,
		})
	}
	return out
}
