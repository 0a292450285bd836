package cache

import (
	"testing"
	"time"

	"newslens/internal/model"
)

func sampleArticles(n int) []model.Article {
	out := make([]model.Article, n)
	for i := range out {
		out[i] = model.Article{
			ID:        string(rune('a' + i)),
			Title:     "title",
			URL:       "http://example.com",
			Published: time.Now(),
			Category:  model.CategoryNews,
		}
	}
	return out
}

func TestCacheHitWithinTTL(t *testing.T) {
	c := New(time.Hour)
	c.Set(model.CategoryNews, sampleArticles(3))

	got, ok := c.Get(model.CategoryNews)
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if len(got) != 3 {
		t.Errorf("expected 3 articles, got %d", len(got))
	}
}

func TestCacheMissAfterTTL(t *testing.T) {
	c := New(30 * time.Millisecond)
	c.Set(model.CategoryNews, sampleArticles(1))

	time.Sleep(50 * time.Millisecond)
	if _, ok := c.Get(model.CategoryNews); ok {
		t.Fatal("expected a stale entry to miss")
	}
}

func TestCacheMissForUnknownCategory(t *testing.T) {
	c := New(time.Hour)
	if _, ok := c.Get(model.CategorySports); ok {
		t.Fatal("expected a miss for a category never set")
	}
}

func TestCacheCategoriesAreIndependent(t *testing.T) {
	c := New(time.Hour)
	c.Set(model.CategoryNews, sampleArticles(2))
	c.Set(model.CategorySports, sampleArticles(5))

	c.Invalidate(model.CategoryNews)

	if _, ok := c.Get(model.CategoryNews); ok {
		t.Fatal("expected invalidated category to miss")
	}
	got, ok := c.Get(model.CategorySports)
	if !ok || len(got) != 5 {
		t.Fatalf("other categories must be untouched, ok=%v len=%d", ok, len(got))
	}
}

func TestCacheInvalidateAll(t *testing.T) {
	c := New(time.Hour)
	c.Set(model.CategoryNews, sampleArticles(1))
	c.Set(model.CategoryWorld, sampleArticles(1))

	c.InvalidateAll()

	if _, ok := c.Get(model.CategoryNews); ok {
		t.Fatal("expected all entries cleared")
	}
	if _, ok := c.Get(model.CategoryWorld); ok {
		t.Fatal("expected all entries cleared")
	}
}

func TestCacheSetReplacesWholesale(t *testing.T) {
	c := New(time.Hour)
	c.Set(model.CategoryNews, sampleArticles(5))
	c.Set(model.CategoryNews, sampleArticles(2))

	got, ok := c.Get(model.CategoryNews)
	if !ok || len(got) != 2 {
		t.Fatalf("expected the replacement list, ok=%v len=%d", ok, len(got))
	}
}
