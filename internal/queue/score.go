package queue

import (
	"context"
	"encoding/json"

	"github.com/chainsight/riskgraph/backend/pkg/logger"
	"github.com/chainsight/riskgraph/backend/pkg/risk"
	pgstore "github.com/chainsight/riskgraph/backend/pkg/store/pgx"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProcessScoreMessage recomputes supplier risk. Recomputation is
// deterministic over stored state, so a retried message converges on the
// same scores.
func ProcessScoreMessage(
	ctx context.Context,
	conn *pgxpool.Pool,
	msg string,
) error {
	data := new(QueueScoreMsg)
	if err := json.Unmarshal([]byte(msg), &data); err != nil {
		return err
	}

	storage := pgstore.NewRiskDBStorage(conn)

	if data.SupplierID != "" {
		score, alert, err := storage.RecomputeSupplierRisk(ctx, data.SupplierID)
		if err != nil {
			return err
		}

		logger.Info("[Queue] Supplier risk recomputed", "supplier", data.SupplierID, "risk", score)
		if alert != nil {
			logger.Warn("[Queue] Alert raised", "supplier", alert.SupplierID, "risk", alert.Risk)
		}
		return nil
	}

	scorer := risk.NewScorer(storage)
	alerts, err := scorer.UpdateAll(ctx)
	if err != nil {
		return err
	}

	logger.Info("[Queue] Scoring pass finished", "alerts", len(alerts))
	for _, alert := range alerts {
		logger.Warn("[Queue] Alert raised", "supplier", alert.SupplierID, "risk", alert.Risk)
	}

	return nil
}
