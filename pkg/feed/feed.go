// Package feed produces raw articles from heterogeneous news sources and
// normalizes them into one article shape. Aggregation is best-effort: every
// feed fails independently, and the combined result is a plain
// concatenation. Articles are intentionally NOT deduplicated across feeds —
// a known limitation of the source layer, not something to fix silently.
package feed

import (
	"context"

	"github.com/chainsight/riskgraph/backend/pkg/common"
	"github.com/chainsight/riskgraph/backend/pkg/logger"
)

// Feed is a single article source. Fetch returns the feed's current
// articles; a failure affects only this feed's contribution.
type Feed interface {
	Name() string
	Fetch(ctx context.Context) ([]common.Article, error)
}

// Aggregator combines multiple feeds behind one FetchAll call.
type Aggregator struct {
	feeds []Feed
}

// NewAggregator creates an Aggregator over the given feeds.
func NewAggregator(feeds ...Feed) *Aggregator {
	return &Aggregator{feeds: feeds}
}

// FetchAll collects articles from every feed in order. A failing or
// misconfigured feed contributes zero articles and a logged warning; it
// never aborts the others.
func (a *Aggregator) FetchAll(ctx context.Context) []common.Article {
	articles := make([]common.Article, 0)

	for _, f := range a.feeds {
		fetched, err := f.Fetch(ctx)
		if err != nil {
			logger.Warn("Feed fetch failed, skipping", "feed", f.Name(), "err", err)
			continue
		}
		logger.Debug("Feed fetched", "feed", f.Name(), "articles", len(fetched))
		articles = append(articles, fetched...)
	}

	return articles
}
