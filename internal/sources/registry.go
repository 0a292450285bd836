// Package sources resolves the feed descriptors the orchestrator fans out
// over: a static built-in list from YAML config, plus user-added custom
// sources folded in at fetch time.
package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newslens/internal/model"
)

// sourceSpec is the YAML shape of one built-in source.
type sourceSpec struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	FeedURL     string  `yaml:"feed_url"`
	Category    string  `yaml:"category"`
	Bias        string  `yaml:"bias"`
	Credibility int     `yaml:"credibility"`
	Factuality  float64 `yaml:"factuality"`
}

// sourcesConfig is the YAML config structure
// sources:
//   - id: reuters
//     feed_url: https://...
type sourcesConfig struct {
	Sources []sourceSpec `yaml:"sources"`
}

// Registry is the source list the fetch orchestrator resolves categories
// against. Built-ins are immutable after load; custom sources go through
// the store's admin path.
type Registry struct {
	builtin []model.Source
	store   *Store
}

// Load reads the built-in source list from a YAML file and attaches the
// custom-source store.
func Load(path string, store *Store) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sources config: %w", err)
	}
	defer f.Close()

	var cfg sourcesConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding sources config: %w", err)
	}

	builtin := make([]model.Source, 0, len(cfg.Sources))
	for _, spec := range cfg.Sources {
		cat, err := model.ParseCategory(spec.Category)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", spec.ID, err)
		}
		if spec.ID == "" || spec.FeedURL == "" {
			return nil, fmt.Errorf("source %q: id and feed_url are required", spec.Name)
		}
		builtin = append(builtin, model.Source{
			ID:          spec.ID,
			Name:        spec.Name,
			FeedURL:     spec.FeedURL,
			Category:    cat,
			Bias:        model.ParseBias(spec.Bias),
			Credibility: spec.Credibility,
			Factuality:  spec.Factuality,
			Enabled:     true,
		})
	}

	return &Registry{builtin: builtin, store: store}, nil
}

// New builds a registry from an in-memory built-in list. Tests and embedders
// use this instead of a config file.
func New(builtin []model.Source, store *Store) *Registry {
	return &Registry{builtin: builtin, store: store}
}

// ForCategory returns the full source list for one category: built-ins plus
// enabled custom sources, resolved fresh on every call.
func (r *Registry) ForCategory(category model.Category) []model.Source {
	var out []model.Source
	for _, src := range r.builtin {
		if src.Category == category {
			out = append(out, src)
		}
	}
	if r.store != nil {
		for _, src := range r.store.All() {
			if src.Category == category && src.Enabled {
				out = append(out, src)
			}
		}
	}
	return out
}

// All returns every source, built-in and custom, regardless of enablement.
func (r *Registry) All() []model.Source {
	out := make([]model.Source, len(r.builtin))
	copy(out, r.builtin)
	if r.store != nil {
		out = append(out, r.store.All()...)
	}
	return out
}

// AddCustom registers a user-added source and persists it.
func (r *Registry) AddCustom(src model.Source) error {
	if r.store == nil {
		return fmt.Errorf("no custom source store configured")
	}
	if src.ID == "" || src.FeedURL == "" {
		return fmt.Errorf("custom source needs an id and a feed URL")
	}
	if !src.Category.Valid() {
		return fmt.Errorf("unknown category %q", src.Category)
	}
	for _, b := range r.builtin {
		if b.ID == src.ID {
			return fmt.Errorf("source id %q collides with a built-in source", src.ID)
		}
	}
	src.Custom = true
	r.store.Put(src)
	return r.store.Save()
}

// RemoveCustom deletes a user-added source and persists the change.
func (r *Registry) RemoveCustom(id string) error {
	if r.store == nil {
		return fmt.Errorf("no custom source store configured")
	}
	if !r.store.Remove(id) {
		return fmt.Errorf("no custom source with id %q", id)
	}
	return r.store.Save()
}

// SetCustomEnabled toggles whether a custom source is folded into fetches.
func (r *Registry) SetCustomEnabled(id string, enabled bool) error {
	if r.store == nil {
		return fmt.Errorf("no custom source store configured")
	}
	if !r.store.SetEnabled(id, enabled) {
		return fmt.Errorf("no custom source with id %q", id)
	}
	return r.store.Save()
}
