package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/chainsight/riskgraph/backend/pkg/common"
)

const gdeltBaseURL = "https://api.gdeltproject.org/api/v2/doc/doc"

// GDELTFeed fetches articles from the GDELT event-index API. The article
// list endpoint carries no body text, so Text falls back to the headline.
type GDELTFeed struct {
	client  *http.Client
	baseURL string
	query   string
	limit   int
}

// NewGDELTFeed creates the event-index feed for the given query.
func NewGDELTFeed(query string) *GDELTFeed {
	return &GDELTFeed{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: gdeltBaseURL,
		query:   query,
		limit:   20,
	}
}

// Name identifies the feed in logs.
func (f *GDELTFeed) Name() string {
	return "gdelt"
}

type gdeltResponse struct {
	Articles []struct {
		Title  string `json:"title"`
		Domain string `json:"domain"`
	} `json:"articles"`
}

// Fetch queries the event index and normalizes each hit.
func (f *GDELTFeed) Fetch(ctx context.Context) ([]common.Article, error) {
	if f.query == "" {
		return nil, fmt.Errorf("no query configured")
	}

	query := url.Values{}
	query.Set("query", f.query)
	query.Set("mode", "artlist")
	query.Set("format", "json")
	query.Set("maxrecords", strconv.Itoa(f.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("event index returned %s", resp.Status)
	}

	var body gdeltResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	articles := make([]common.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		source := a.Domain
		if source == "" {
			source = f.Name()
		}

		articles = append(articles, common.Article{
			Title:  a.Title,
			Text:   a.Title,
			Source: source,
		})
	}

	return articles, nil
}
