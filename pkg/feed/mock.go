package feed

import (
	"context"

	"github.com/chainsight/riskgraph/backend/pkg/common"
)

// MockFeed serves a fixed set of sample articles. Used for demos and local
// runs without feed credentials.
type MockFeed struct{}

// NewMockFeed creates the sample feed.
func NewMockFeed() *MockFeed {
	return &MockFeed{}
}

// Name identifies the feed in logs.
func (f *MockFeed) Name() string {
	return "mock"
}

// Fetch returns the built-in sample articles.
func (f *MockFeed) Fetch(ctx context.Context) ([]common.Article, error) {
	return []common.Article{
		{
			Title:  "Strike at Foxconn plant",
			Text:   "A major strike hit Foxconn's Zhengzhou factory disrupting smartphone production.",
			Source: "SampleNews",
		},
		{
			Title:  "Earthquake affects Bosch China supplier",
			Text:   "A strong earthquake near Bosch China EV battery facility halted production.",
			Source: "SampleNews",
		},
	}, nil
}
