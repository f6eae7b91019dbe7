package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"context"

	"github.com/chainsight/riskgraph/backend/pkg/common"
)

const newsAPIBaseURL = "https://newsapi.org/v2/everything"

// NewsAPIFeed fetches articles from a keyword-search news API.
type NewsAPIFeed struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	query    string
	pageSize int
}

// NewNewsAPIFeed creates the keyword-search feed. An empty apiKey is allowed;
// the feed then degrades to zero articles at fetch time.
func NewNewsAPIFeed(apiKey string, query string) *NewsAPIFeed {
	return &NewsAPIFeed{
		client:   &http.Client{Timeout: 20 * time.Second},
		baseURL:  newsAPIBaseURL,
		apiKey:   apiKey,
		query:    query,
		pageSize: 20,
	}
}

// Name identifies the feed in logs.
func (f *NewsAPIFeed) Name() string {
	return "newsapi"
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
	} `json:"articles"`
}

// Fetch queries the API for the configured keywords and normalizes each hit.
// Body text falls back from content to description to empty, never missing.
func (f *NewsAPIFeed) Fetch(ctx context.Context) ([]common.Article, error) {
	if f.apiKey == "" {
		return nil, errors.New("missing API key")
	}

	query := url.Values{}
	query.Set("q", f.query)
	query.Set("pageSize", strconv.Itoa(f.pageSize))
	query.Set("apiKey", f.apiKey)

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
		return nil, fmt.Errorf("news API returned %s", resp.Status)
	}

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	articles := make([]common.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		text := a.Content
		if text == "" {
			text = a.Description
		}

		source := a.Source.Name
		if source == "" {
			source = f.Name()
		}

		articles = append(articles, common.Article{
			Title:  a.Title,
			Text:   text,
			Source: source,
		})
	}

	return articles, nil
}
