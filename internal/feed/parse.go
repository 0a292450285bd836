package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"newslens/internal/metrics"
	"newslens/internal/model"
)

// Parse converts one feed document into canonical Articles in document
// order. It handles RSS 2.0 and Atom, with or without media extensions.
// A malformed item drops only that item; an unparsable document returns an
// error, which the orchestrator treats the same as a transport failure.
//
// A fresh parser is created per call so no parser state is ever shared
// across concurrent fetch units.
func Parse(data []byte, src model.Source) ([]model.Article, error) {
	parser := gofeed.NewParser()
	parsed, err := parser.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", src.ID, err)
	}

	now := time.Now()
	articles := make([]model.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			// An item without a title or a link cannot become an Article.
			// Skip it; the rest of the document still parses.
			metrics.Global.IncrementItemsDropped()
			continue
		}

		// RSS pubDate vs Atom published/updated: gofeed already matched the
		// raw string against its ordered format list. When nothing matched,
		// the article still emits with the ingestion time.
		published := now
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		// RSS description vs Atom summary; Atom content as fallback.
		description := item.Description
		if description == "" {
			description = item.Content
		}

		articles = append(articles, model.Article{
			ID:          uuid.NewString(),
			Title:       title,
			Source:      src,
			URL:         link,
			Published:   published,
			Category:    src.Category,
			Description: Sanitize(description),
			ImageURL:    thumbnailURL(item),
		})
	}

	return articles, nil
}

// thumbnailURL picks the article image: first non-empty URL among
// enclosure, media:content, media:thumbnail, then the item image.
func thumbnailURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			return enc.URL
		}
	}
	if media, ok := item.Extensions["media"]; ok {
		for _, key := range []string{"content", "thumbnail"} {
			for _, e := range media[key] {
				if url := e.Attrs["url"]; url != "" {
					return url
				}
			}
		}
	}
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	return ""
}
