package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/chainsight/riskgraph/backend/pkg/common"
	"github.com/chainsight/riskgraph/backend/pkg/logger"

	"codeberg.org/readeck/go-readability/v2"
	"golang.org/x/sync/singleflight"
)

// RSSFeed aggregates articles from an RSS 2.0 endpoint. When an item carries
// no description, the feed resolves the item link and extracts the readable
// article body; resolution failures degrade to an empty body, never a
// missing one.
type RSSFeed struct {
	client  *http.Client
	feedURL string
	source  string
	limit   int

	cache   map[string]string
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewRSSFeed creates an RSS feed adapter. The source label is attached to
// every produced article.
func NewRSSFeed(feedURL string, source string) *RSSFeed {
	return &RSSFeed{
		client:  &http.Client{Timeout: 20 * time.Second},
		feedURL: feedURL,
		source:  source,
		limit:   20,
		cache:   make(map[string]string),
	}
}

// Name identifies the feed in logs.
func (f *RSSFeed) Name() string {
	return "rss:" + f.source
}

type rssDocument struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
}

// Fetch downloads and parses the feed, normalizing each item.
func (f *RSSFeed) Fetch(ctx context.Context) ([]common.Article, error) {
	if f.feedURL == "" {
		return nil, fmt.Errorf("no feed url configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %s", resp.Status)
	}

	var doc rssDocument
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := doc.Channel.Items
	if len(items) > f.limit {
		items = items[:f.limit]
	}

	articles := make([]common.Article, 0, len(items))
	for _, item := range items {
		text := strings.TrimSpace(item.Description)
		if text == "" && item.Link != "" {
			text = f.resolveArticleText(ctx, item.Link)
		}

		articles = append(articles, common.Article{
			Title:  strings.TrimSpace(item.Title),
			Text:   text,
			Source: f.source,
		})
	}

	return articles, nil
}

// resolveArticleText fetches an item link and extracts the readable article
// body. Lookups are cached and coalesced per URL; any failure yields an
// empty string.
func (f *RSSFeed) resolveArticleText(ctx context.Context, link string) string {
	f.cacheMu.RLock()
	if cached, ok := f.cache[link]; ok {
		f.cacheMu.RUnlock()
		return cached
	}
	f.cacheMu.RUnlock()

	result, err, _ := f.group.Do(link, func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return "", fmt.Errorf("failed to fetch url: %w", err)
		}
		defer resp.Body.Close()

		u, err := url.Parse(link)
		if err != nil {
			return "", fmt.Errorf("failed to parse url: %w", err)
		}

		article, err := readability.FromReader(resp.Body, u)
		if err != nil {
			return "", fmt.Errorf("failed to parse html: %w", err)
		}

		var builder strings.Builder
		if err := article.RenderText(&builder); err != nil {
			return "", fmt.Errorf("failed to render article text: %w", err)
		}

		text := builder.String()
		f.cacheMu.Lock()
		f.cache[link] = text
		f.cacheMu.Unlock()

		return text, nil
	})
	if err != nil {
		logger.Debug("Failed to resolve article body", "url", link, "err", err)
		return ""
	}

	return result.(string)
}
