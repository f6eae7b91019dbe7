package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewsAPIFeed_MissingKey(t *testing.T) {
	f := NewNewsAPIFeed("", "supply chain")
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestNewsAPIFeed_NormalizesArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apiKey") != "test-key" {
			t.Fatalf("missing apiKey in request: %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{
					"source": {"name": "Example News"},
					"title": "Strike at plant",
					"description": "Short description",
					"content": "Full content"
				},
				{
					"source": {"name": ""},
					"title": "Earthquake hits region",
					"description": "Fallback description",
					"content": ""
				}
			]
		}`))
	}))
	defer srv.Close()

	f := NewNewsAPIFeed("test-key", "supply chain")
	f.baseURL = srv.URL

	articles, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}

	if articles[0].Text != "Full content" {
		t.Fatalf("expected content as text, got %q", articles[0].Text)
	}
	if articles[0].Source != "Example News" {
		t.Fatalf("unexpected source %q", articles[0].Source)
	}

	// Empty content falls back to description, empty source to the feed name.
	if articles[1].Text != "Fallback description" {
		t.Fatalf("expected description fallback, got %q", articles[1].Text)
	}
	if articles[1].Source != "newsapi" {
		t.Fatalf("expected feed name as source, got %q", articles[1].Source)
	}
}

func TestNewsAPIFeed_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := NewNewsAPIFeed("test-key", "supply chain")
	f.baseURL = srv.URL

	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
