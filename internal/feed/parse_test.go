package feed

import (
	"testing"
	"time"

	"newslens/internal/model"
)

var testSource = model.Source{
	ID:       "tester",
	Name:     "Test Wire",
	FeedURL:  "http://example.com/rss",
	Category: model.CategoryNews,
	Bias:     model.BiasCenter,
}

const rssDoc = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
  <title>Test Wire</title>
  <item>
    <title>First story</title>
    <link>http://example.com/1</link>
    <description><![CDATA[<b>Hello</b> &amp; goodbye]]></description>
    <pubDate>Mon, 02 Jan 2006 15:04:05 +0000</pubDate>
    <media:thumbnail url="http://example.com/thumb1.jpg"/>
  </item>
  <item>
    <title>Second story</title>
    <link>http://example.com/2</link>
    <description>plain text</description>
    <pubDate>not a real date</pubDate>
  </item>
  <item>
    <title></title>
    <link></link>
    <description>no title, no link</description>
  </item>
  <item>
    <title>Third story</title>
    <link>http://example.com/3</link>
    <enclosure url="http://example.com/enc3.jpg" type="image/jpeg" length="1"/>
    <media:content url="http://example.com/media3.jpg"/>
  </item>
</channel>
</rss>`

const atomDoc = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Wire</title>
  <entry>
    <title>Atom entry</title>
    <link href="http://example.com/a1"/>
    <summary>Atom summary text</summary>
    <published>2006-01-02T15:04:05Z</published>
  </entry>
</feed>`

func TestParseRSS(t *testing.T) {
	articles, err := Parse([]byte(rssDoc), testSource)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	// The empty item is dropped; the rest emit in document order.
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(articles))
	}
	if articles[0].Title != "First story" || articles[1].Title != "Second story" || articles[2].Title != "Third story" {
		t.Errorf("document order not preserved: %q, %q, %q",
			articles[0].Title, articles[1].Title, articles[2].Title)
	}

	first := articles[0]
	if first.Description != "Hello & goodbye" {
		t.Errorf("expected sanitized description, got %q", first.Description)
	}
	wantTime := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	if !first.Published.Equal(wantTime) {
		t.Errorf("expected published %v, got %v", wantTime, first.Published)
	}
	if first.ImageURL != "http://example.com/thumb1.jpg" {
		t.Errorf("expected media:thumbnail URL, got %q", first.ImageURL)
	}
	if first.Source.ID != "tester" || first.Category != model.CategoryNews {
		t.Errorf("source descriptor not carried onto article: %+v", first.Source)
	}
	if first.ID == "" || first.ID == articles[1].ID {
		t.Errorf("articles must get unique opaque ids, got %q and %q", first.ID, articles[1].ID)
	}
}

func TestParseUnparsableDateFallsBackToIngestionTime(t *testing.T) {
	before := time.Now()
	articles, err := Parse([]byte(rssDoc), testSource)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	after := time.Now()

	second := articles[1]
	if second.Published.IsZero() {
		t.Fatal("published must never be zero")
	}
	if second.Published.Before(before) || second.Published.After(after) {
		t.Errorf("expected ingestion-time fallback, got %v", second.Published)
	}
}

func TestParseThumbnailPrefersEnclosure(t *testing.T) {
	articles, err := Parse([]byte(rssDoc), testSource)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	third := articles[2]
	if third.ImageURL != "http://example.com/enc3.jpg" {
		t.Errorf("expected enclosure URL to win over media:content, got %q", third.ImageURL)
	}
}

func TestParseAtom(t *testing.T) {
	articles, err := Parse([]byte(atomDoc), testSource)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	a := articles[0]
	if a.Title != "Atom entry" {
		t.Errorf("unexpected title %q", a.Title)
	}
	if a.URL != "http://example.com/a1" {
		t.Errorf("unexpected link %q", a.URL)
	}
	if a.Description != "Atom summary text" {
		t.Errorf("unexpected description %q", a.Description)
	}
	want := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	if !a.Published.Equal(want) {
		t.Errorf("expected published %v, got %v", want, a.Published)
	}
}

func TestParseGarbageDocumentReturnsError(t *testing.T) {
	articles, err := Parse([]byte("this is not a feed at all"), testSource)
	if err == nil {
		t.Fatal("expected an error for an unparsable document")
	}
	if len(articles) != 0 {
		t.Errorf("expected zero articles, got %d", len(articles))
	}
}
