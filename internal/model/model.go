// Package model holds the canonical records the ingestion pipeline produces:
// sources, articles and derived story groups.
package model

import (
	"fmt"
	"time"
)

// Category is one of the nine fixed news sections a source belongs to.
type Category string

const (
	CategoryNews          Category = "news"
	CategoryWorld         Category = "world"
	CategoryPolitics      Category = "politics"
	CategoryBusiness      Category = "business"
	CategoryTechnology    Category = "technology"
	CategoryScience       Category = "science"
	CategoryHealth        Category = "health"
	CategorySports        Category = "sports"
	CategoryEntertainment Category = "entertainment"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryNews,
	CategoryWorld,
	CategoryPolitics,
	CategoryBusiness,
	CategoryTechnology,
	CategoryScience,
	CategoryHealth,
	CategorySports,
	CategoryEntertainment,
}

// Valid reports whether c is one of the nine known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory returns the category named by s, or an error for anything
// outside the fixed set. Unknown categories are a contract violation, not a
// recoverable feed condition.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Bias is a 7-point ordinal political lean rating for a source.
// The zero value means the source has no assigned rating and is excluded
// from aggregate bias statistics.
type Bias int

const (
	BiasUnrated Bias = iota
	BiasFarLeft
	BiasLeft
	BiasLeanLeft
	BiasCenter
	BiasLeanRight
	BiasRight
	BiasFarRight
)

var biasNames = map[Bias]string{
	BiasUnrated:   "unrated",
	BiasFarLeft:   "far-left",
	BiasLeft:      "left",
	BiasLeanLeft:  "lean-left",
	BiasCenter:    "center",
	BiasLeanRight: "lean-right",
	BiasRight:     "right",
	BiasFarRight:  "far-right",
}

var biasScores = map[Bias]float64{
	BiasFarLeft:   -2.0,
	BiasLeft:      -1.33,
	BiasLeanLeft:  -0.67,
	BiasCenter:    0.0,
	BiasLeanRight: 0.67,
	BiasRight:     1.33,
	BiasFarRight:  2.0,
}

func (b Bias) String() string {
	if name, ok := biasNames[b]; ok {
		return name
	}
	return "unrated"
}

// Rated reports whether the source carries an assigned bias rating.
func (b Bias) Rated() bool {
	_, ok := biasScores[b]
	return ok
}

// Score projects the ordinal rating onto [-2.0, +2.0]. Unrated returns 0,
// but callers must check Rated first: unrated sources are excluded from
// aggregates, never zero-filled into them.
func (b Bias) Score() float64 {
	return biasScores[b]
}

// ParseBias maps a rating name from config to its ordinal value. Unknown
// names fall back to unrated rather than failing the source.
func ParseBias(s string) Bias {
	for b, name := range biasNames {
		if name == s {
			return b
		}
	}
	return BiasUnrated
}

// Source describes one feed and its trust metadata. Immutable after load
// except through the registry's custom-source admin path.
type Source struct {
	ID          string
	Name        string
	FeedURL     string
	Category    Category
	Bias        Bias
	Credibility int     // 0..100
	Factuality  float64 // 0.0..1.0
	Custom      bool
	Enabled     bool
}

// Article is the canonical record derived from one feed item. The pipeline
// creates it at parse time and replaces whole per-category lists on refresh;
// the mutable flags belong to downstream collaborators after hand-off.
type Article struct {
	ID          string
	Title       string
	Source      Source
	URL         string
	Published   time.Time // never zero; ingestion time when the feed date is unparsable
	Category    Category
	Description string
	ImageURL    string

	// Owned by downstream consumers once the article leaves the pipeline.
	Read      bool
	Favorite  bool
	Important bool
}

// BiasSummary aggregates the numeric bias projections of a story group's
// rated members. Rated counts how many members contributed; when it is zero
// the Min/Max/Mean fields carry no information.
type BiasSummary struct {
	Min   float64
	Max   float64
	Mean  float64
	Rated int
}

// StoryGroup is a derived, ephemeral cluster of two or more articles from
// distinct sources covering the same event. It is recomputed on every
// clustering request and never cached or persisted.
type StoryGroup struct {
	Lead    Article
	Members []Article
	Bias    BiasSummary
}

// SourceCount returns the number of distinct sources among the members.
func (g StoryGroup) SourceCount() int {
	seen := make(map[string]struct{}, len(g.Members))
	for _, a := range g.Members {
		seen[a.Source.ID] = struct{}{}
	}
	return len(seen)
}
