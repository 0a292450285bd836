// Package app wires the pipeline together: registry → concurrent per-source
// fetch → dedup → freshness cache → on-demand story clustering.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"newslens/internal/cache"
	"newslens/internal/config"
	"newslens/internal/feed"
	"newslens/internal/logger"
	"newslens/internal/metrics"
	"newslens/internal/model"
	"newslens/internal/news"
	"newslens/internal/sources"
)

// Service owns one freshness cache and orchestrates category refreshes.
// It is an explicit instance, not process-wide state: tests and embedders
// construct their own.
type Service struct {
	cfg      *config.Config
	registry *sources.Registry
	fetcher  *feed.Fetcher
	cache    *cache.Cache

	// Serializes refreshes per category so one routine at a time mutates a
	// category's cache entry. Distinct categories refresh independently.
	refreshMu map[model.Category]*sync.Mutex
}

func NewService(cfg *config.Config, registry *sources.Registry) *Service {
	s := &Service{
		cfg:       cfg,
		registry:  registry,
		fetcher:   feed.NewFetcher(cfg.FetchTimeout, cfg.MaxBodyBytes),
		cache:     cache.New(cfg.CacheTTL),
		refreshMu: make(map[model.Category]*sync.Mutex, len(model.Categories)),
	}
	for _, c := range model.Categories {
		s.refreshMu[c] = &sync.Mutex{}
	}
	return s
}

// Articles returns the category's deduplicated, capped article list, served
// from the cache when the entry is fresher than the TTL and refreshed over
// the network otherwise. An unrecognized category is a contract violation
// and returns an error.
func (s *Service) Articles(ctx context.Context, category model.Category) ([]model.Article, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	if articles, ok := s.cache.Get(category); ok {
		metrics.Global.IncrementCacheHits()
		return articles, nil
	}
	metrics.Global.IncrementCacheMisses()

	return s.refresh(ctx, category), nil
}

// Refresh forces a whole-category refetch regardless of cache freshness.
func (s *Service) Refresh(ctx context.Context, category model.Category) ([]model.Article, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	s.cache.Invalidate(category)
	return s.refresh(ctx, category), nil
}

// StoryGroups clusters the category's current article list into multi-source
// story groups. Groups are recomputed fresh on every call and never cached.
func (s *Service) StoryGroups(ctx context.Context, category model.Category) ([]model.StoryGroup, error) {
	articles, err := s.Articles(ctx, category)
	if err != nil {
		return nil, err
	}
	return news.GroupStories(articles, s.cfg.ClusterThreshold, s.cfg.ClusterWindow), nil
}

// Invalidate clears one category so its next access refetches.
func (s *Service) Invalidate(category model.Category) {
	s.cache.Invalidate(category)
}

// InvalidateAll clears every category.
func (s *Service) InvalidateAll() {
	s.cache.InvalidateAll()
}

// refresh runs the fetch → dedup → cap pipeline for one category and
// replaces its cache entry wholesale. The per-category lock means the entry
// is only ever mutated from within that category's own refresh routine;
// callers that queued behind a concurrent refresh reuse its result instead
// of refetching.
func (s *Service) refresh(ctx context.Context, category model.Category) []model.Article {
	mu := s.refreshMu[category]
	mu.Lock()
	defer mu.Unlock()

	if articles, ok := s.cache.Get(category); ok {
		return articles
	}

	start := time.Now()
	raw := s.fetchCategory(ctx, category)
	deduped := news.Dedupe(raw, s.cfg.DedupeThreshold, s.cfg.MaxArticles)
	s.cache.Set(category, deduped)

	metrics.Global.RecordRefreshTime(time.Since(start))
	metrics.Global.SetLastRun()
	logger.Info("category refreshed",
		"category", category,
		"raw", len(raw),
		"kept", len(deduped),
		"took", time.Since(start))
	return deduped
}

// fetchCategory fans out one fetch+parse unit per source and performs a
// full join: every unit runs to completion, success or empty-on-failure,
// before the union is returned. No unit's failure short-circuits the batch,
// no completion order is imposed, and a failed source contributes zero
// articles rather than an error.
func (s *Service) fetchCategory(ctx context.Context, category model.Category) []model.Article {
	srcs := s.registry.ForCategory(category)

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		all []model.Article
	)

	for _, src := range srcs {
		wg.Add(1)
		go func(src model.Source) {
			defer wg.Done()

			articles, err := s.fetcher.Fetch(ctx, src)
			if err != nil {
				logger.Warn("feed fetch failed", "source", src.ID, "error", err)
				metrics.Global.IncrementFeedsFailed()
				return
			}
			metrics.Global.IncrementFeedsFetched()
			metrics.Global.AddItemsParsed(len(articles))

			mu.Lock()
			all = append(all, articles...)
			mu.Unlock()
		}(src)
	}

	wg.Wait()
	return all
}
