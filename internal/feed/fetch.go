// Package feed turns one source's feed document into canonical Articles.
// Fetching and parsing are tolerant by contract: a dead host, a non-2xx
// status or an unparsable document costs that source its articles for the
// round and nothing more.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"newslens/internal/model"
)

const userAgent = "newslens/1.0 (+https://newslens.example)"

// Fetcher downloads and parses one feed per call. It holds no per-feed
// state, so a single Fetcher is safe to share across concurrent fetch units.
type Fetcher struct {
	client       *http.Client
	maxBodyBytes int64
}

// NewFetcher builds a fetcher with an explicit per-source timeout. The
// timeout bounds how long one hung source can delay a category refresh.
func NewFetcher(timeout time.Duration, maxBodyBytes int64) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		maxBodyBytes: maxBodyBytes,
	}
}

// Fetch downloads the source's feed and parses it. Any transport or HTTP
// failure is returned as an error for the orchestrator to absorb as zero
// articles; it never aborts other sources.
func (f *Fetcher) Fetch(ctx context.Context, src model.Source) ([]model.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", src.ID, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", src.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", src.ID, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src.ID, err)
	}

	return Parse(body, src)
}
