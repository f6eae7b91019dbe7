package risk

import (
	"context"
	"fmt"

	"github.com/chainsight/riskgraph/backend/pkg/common"
	"github.com/chainsight/riskgraph/backend/pkg/logger"
	"github.com/chainsight/riskgraph/backend/pkg/store"
)

// Scorer runs the scoring pass over every supplier in the graph. Each
// supplier is recomputed inside its own storage transaction; one supplier's
// failure never blocks the rest of the pass.
type Scorer struct {
	storage store.RiskStorage
}

// NewScorer creates a Scorer over the given storage.
func NewScorer(storage store.RiskStorage) *Scorer {
	return &Scorer{storage: storage}
}

// UpdateAll recomputes every supplier's blended risk score and returns the
// alerts opened or refreshed during the pass. Per-supplier failures are
// logged and skipped; an error is returned only when the supplier listing
// itself fails.
func (s *Scorer) UpdateAll(ctx context.Context) ([]common.AlertRecord, error) {
	ids, err := s.storage.ListSupplierIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	alerts := make([]common.AlertRecord, 0)
	for _, id := range ids {
		score, alert, err := s.storage.RecomputeSupplierRisk(ctx, id)
		if err != nil {
			logger.Error("Failed to recompute supplier risk", "supplier", id, "err", err)
			continue
		}

		logger.Debug("Recomputed supplier risk", "supplier", id, "score", score)
		if alert != nil {
			alerts = append(alerts, *alert)
		}
	}

	return alerts, nil
}
