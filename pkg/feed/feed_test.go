package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/chainsight/riskgraph/backend/pkg/common"
)

type stubFeed struct {
	name     string
	articles []common.Article
	err      error
}

func (f *stubFeed) Name() string {
	return f.name
}

func (f *stubFeed) Fetch(ctx context.Context) ([]common.Article, error) {
	return f.articles, f.err
}

func TestFetchAll_ConcatenatesInOrder(t *testing.T) {
	a := &stubFeed{name: "a", articles: []common.Article{
		{Title: "one", Source: "a"},
		{Title: "two", Source: "a"},
	}}
	b := &stubFeed{name: "b", articles: []common.Article{
		{Title: "three", Source: "b"},
	}}

	got := NewAggregator(a, b).FetchAll(context.Background())

	if len(got) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(got))
	}
	if got[0].Title != "one" || got[1].Title != "two" || got[2].Title != "three" {
		t.Fatalf("articles out of order: %v", got)
	}
}

func TestFetchAll_FailingFeedIsSkipped(t *testing.T) {
	bad := &stubFeed{name: "bad", err: errors.New("connection refused")}
	good := &stubFeed{name: "good", articles: []common.Article{
		{Title: "survives", Source: "good"},
	}}

	got := NewAggregator(bad, good).FetchAll(context.Background())

	if len(got) != 1 {
		t.Fatalf("expected 1 article, got %d", len(got))
	}
	if got[0].Title != "survives" {
		t.Fatalf("unexpected article %+v", got[0])
	}
}

func TestFetchAll_DoesNotDeduplicate(t *testing.T) {
	article := common.Article{Title: "same story", Source: "x"}
	a := &stubFeed{name: "a", articles: []common.Article{article}}
	b := &stubFeed{name: "b", articles: []common.Article{article}}

	got := NewAggregator(a, b).FetchAll(context.Background())

	if len(got) != 2 {
		t.Fatalf("expected duplicates preserved, got %d articles", len(got))
	}
}

func TestFetchAll_NoFeeds(t *testing.T) {
	got := NewAggregator().FetchAll(context.Background())
	if len(got) != 0 {
		t.Fatalf("expected no articles, got %v", got)
	}
}

func TestMockFeed(t *testing.T) {
	articles, err := NewMockFeed().Fetch(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 sample articles, got %d", len(articles))
	}
	for _, a := range articles {
		if a.Title == "" || a.Text == "" || a.Source == "" {
			t.Fatalf("incomplete sample article %+v", a)
		}
	}
}
