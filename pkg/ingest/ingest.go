// Package ingest drives the risk-event pipeline: fetch articles, extract
// annotations, upsert events into the graph and link affected suppliers,
// then run one scoring pass.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/chainsight/riskgraph/backend/pkg/common"
	"github.com/chainsight/riskgraph/backend/pkg/logger"
	"github.com/chainsight/riskgraph/backend/pkg/match"
	"github.com/chainsight/riskgraph/backend/pkg/risk"
	"github.com/chainsight/riskgraph/backend/pkg/store"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// eventIDPrefix tags every generated risk event id. The id body is a random
// nanoid, so two articles ingested within the same second can never collide.
const eventIDPrefix = "EVT_"

// Analyzer produces a risk annotation for one article's text. It is total:
// implementations mask their own failures with a fallback annotation.
type Analyzer interface {
	Extract(ctx context.Context, text string) common.RiskAnnotation
}

// ArticleSource produces the current batch of raw articles.
type ArticleSource interface {
	FetchAll(ctx context.Context) []common.Article
}

// Ingestor composes the article source, the extractor and the graph store
// into the ingestion pipeline.
type Ingestor struct {
	source   ArticleSource
	analyzer Analyzer
	storage  store.RiskStorage
	scorer   *risk.Scorer
}

// NewIngestor wires the pipeline.
func NewIngestor(source ArticleSource, analyzer Analyzer, storage store.RiskStorage) *Ingestor {
	return &Ingestor{
		source:   source,
		analyzer: analyzer,
		storage:  storage,
		scorer:   risk.NewScorer(storage),
	}
}

// NewEventID generates a collision-free risk event identifier.
func NewEventID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate event ID: %w", err)
	}
	return eventIDPrefix + id, nil
}

// IngestAll runs the pipeline over a batch of articles. Articles are
// processed in source order; a failing article is reported and skipped,
// never aborting the rest of the batch.
func (i *Ingestor) IngestAll(ctx context.Context, articles []common.Article) ([]common.EventRecord, []common.IngestError) {
	records := make([]common.EventRecord, 0, len(articles))
	ingestErrors := make([]common.IngestError, 0)

	// One supplier snapshot per batch; linking matches against the graph
	// state current at the start of the run.
	refs, err := i.storage.ListSupplierRefs(ctx)
	if err != nil {
		logger.Error("Failed to list suppliers for linking", "err", err)
		for _, art := range articles {
			ingestErrors = append(ingestErrors, common.IngestError{Title: art.Title, Err: err.Error()})
		}
		return records, ingestErrors
	}

	for _, art := range articles {
		record, err := i.ingestOne(ctx, art, refs)
		if err != nil {
			logger.Error("Failed to ingest article", "title", art.Title, "err", err)
			ingestErrors = append(ingestErrors, common.IngestError{Title: art.Title, Err: err.Error()})
			continue
		}

		logger.Info("Event created", "event", record.ID, "entities", record.Entities, "suppliers", record.Suppliers)
		records = append(records, record)
	}

	return records, ingestErrors
}

func (i *Ingestor) ingestOne(ctx context.Context, art common.Article, refs []common.SupplierRef) (common.EventRecord, error) {
	annotation := i.analyzer.Extract(ctx, art.Text)

	eventID, err := NewEventID()
	if err != nil {
		return common.EventRecord{}, err
	}

	event := common.RiskEvent{
		ID:             eventID,
		Summary:        annotation.Summary,
		Sentiment:      annotation.Sentiment,
		SentimentScore: annotation.SentimentScore,
		Severity:       annotation.Severity,
		Source:         art.Source,
		IngestedAt:     time.Now().UTC(),
	}
	if err := i.storage.UpsertRiskEvent(ctx, event); err != nil {
		return common.EventRecord{}, err
	}

	// Linking happens after the event upsert; if it fails the event stays
	// link-less, which is an acceptable degraded state rather than
	// corruption.
	supplierIDs := match.LinkEntities(refs, annotation.Entities)
	if err := i.storage.LinkEventSuppliers(ctx, eventID, supplierIDs); err != nil {
		return common.EventRecord{}, err
	}

	return common.EventRecord{
		ID:        eventID,
		Entities:  annotation.Entities,
		Severity:  annotation.Severity,
		Suppliers: supplierIDs,
	}, nil
}

// RunCycle is the ingestion trigger: it fetches the current articles from
// every feed, ingests them, then runs one scoring pass. The returned report
// always distinguishes succeeded articles from failed ones; an error is
// returned only for systemic failures (e.g. total loss of store
// connectivity during scoring).
func (i *Ingestor) RunCycle(ctx context.Context) (common.IngestReport, error) {
	return i.RunBatch(ctx, i.source.FetchAll(ctx))
}

// RunBatch runs one ingestion and scoring pass over a caller-provided batch
// instead of the configured feeds.
func (i *Ingestor) RunBatch(ctx context.Context, articles []common.Article) (common.IngestReport, error) {
	logger.Info("Starting ingestion cycle", "articles", len(articles))

	records, ingestErrors := i.IngestAll(ctx, articles)

	alerts, err := i.scorer.UpdateAll(ctx)
	if err != nil {
		return common.IngestReport{
			Ingested: records,
			Alerts:   []common.AlertRecord{},
			Errors:   ingestErrors,
		}, fmt.Errorf("scoring pass failed: %w", err)
	}

	return common.IngestReport{
		Ingested: records,
		Alerts:   alerts,
		Errors:   ingestErrors,
	}, nil
}
