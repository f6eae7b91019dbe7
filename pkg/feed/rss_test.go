package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Feed</title>
    <item>
      <title>  Strike at plant  </title>
      <link></link>
      <description>Workers walked out this morning.</description>
    </item>
    <item>
      <title>Port congestion grows</title>
      <link></link>
      <description></description>
    </item>
  </channel>
</rss>`

func TestRSSFeed_ParsesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssFixture))
	}))
	defer srv.Close()

	f := NewRSSFeed(srv.URL, "example")

	articles, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}

	if articles[0].Title != "Strike at plant" {
		t.Fatalf("expected trimmed title, got %q", articles[0].Title)
	}
	if articles[0].Text != "Workers walked out this morning." {
		t.Fatalf("unexpected text %q", articles[0].Text)
	}
	if articles[0].Source != "example" {
		t.Fatalf("unexpected source %q", articles[0].Source)
	}

	// No description and no link: the body degrades to empty, never missing.
	if articles[1].Text != "" {
		t.Fatalf("expected empty text, got %q", articles[1].Text)
	}
}

func TestRSSFeed_MissingURL(t *testing.T) {
	f := NewRSSFeed("", "example")
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for missing feed url")
	}
}

func TestRSSFeed_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewRSSFeed(srv.URL, "example")
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
