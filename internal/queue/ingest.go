package queue

import (
	"context"
	"encoding/json"

	"github.com/chainsight/riskgraph/backend/internal/feeds"
	"github.com/chainsight/riskgraph/backend/internal/util"
	"github.com/chainsight/riskgraph/backend/pkg/ai"
	"github.com/chainsight/riskgraph/backend/pkg/extract"
	"github.com/chainsight/riskgraph/backend/pkg/ingest"
	"github.com/chainsight/riskgraph/backend/pkg/logger"
	pgstore "github.com/chainsight/riskgraph/backend/pkg/store/pgx"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"
)

// ProcessIngestMessage runs one ingestion pass and then chains a full
// scoring pass onto the score queue. Per-article failures are reported and
// skipped; retrying the whole message would re-ingest the articles that
// already succeeded under fresh event ids, so only an unreadable message is
// an error.
func ProcessIngestMessage(
	ctx context.Context,
	aiClient ai.RiskAIClient,
	ch *amqp091.Channel,
	conn *pgxpool.Pool,
	msg string,
) error {
	data := new(QueueIngestMsg)
	if err := json.Unmarshal([]byte(msg), &data); err != nil {
		return err
	}

	aggregator := feeds.NewAggregator()
	storage := pgstore.NewRiskDBStorage(conn)
	ingestor := ingest.NewIngestor(aggregator, extract.NewExtractor(aiClient), storage)

	articles := data.Articles
	if len(articles) == 0 {
		articles = aggregator.FetchAll(ctx)
	}
	logger.Info("[Queue] Starting ingestion pass", "articles", len(articles))

	records, ingestErrors := ingestor.IngestAll(ctx, articles)
	for _, ingestErr := range ingestErrors {
		logger.Warn("[Queue] Article failed", "title", ingestErr.Title, "err", ingestErr.Err)
	}
	logger.Info("[Queue] Ingestion pass finished", "events", len(records), "failed", len(ingestErrors))

	// A transient channel hiccup should not fail an otherwise finished pass.
	if err := util.RetryErr(3, func() error {
		return KickoffScore(ch, "")
	}); err != nil {
		return err
	}

	return nil
}
