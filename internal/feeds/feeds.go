// Package feeds builds the configured article sources from the environment.
package feeds

import (
	"github.com/chainsight/riskgraph/backend/internal/util"
	"github.com/chainsight/riskgraph/backend/pkg/feed"
	"github.com/chainsight/riskgraph/backend/pkg/logger"
)

// NewAggregator assembles every feed that has configuration present. With
// nothing configured the built-in sample feed keeps the pipeline usable.
func NewAggregator() *feed.Aggregator {
	sources := make([]feed.Feed, 0)

	if key := util.GetEnvString("NEWSAPI_KEY", ""); key != "" {
		query := util.GetEnvString("NEWSAPI_QUERY", "supply chain disruption")
		sources = append(sources, feed.NewNewsAPIFeed(key, query))
	}

	if feedURL := util.GetEnvString("RSS_FEED_URL", ""); feedURL != "" {
		source := util.GetEnvString("RSS_FEED_SOURCE", "rss")
		sources = append(sources, feed.NewRSSFeed(feedURL, source))
	}

	if query := util.GetEnvString("GDELT_QUERY", ""); query != "" {
		sources = append(sources, feed.NewGDELTFeed(query))
	}

	if len(sources) == 0 || util.GetEnvBool("FEED_MOCK", len(sources) == 0) {
		sources = append(sources, feed.NewMockFeed())
	}

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name())
	}
	logger.Info("Configured feeds", "feeds", names)

	return feed.NewAggregator(sources...)
}
