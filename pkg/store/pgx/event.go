package pgx

import (
	"context"
	"fmt"

	"github.com/chainsight/riskgraph/backend/pkg/common"
	"github.com/chainsight/riskgraph/backend/pkg/logger"
)

// UpsertRiskEvent persists one risk event keyed by its id as a single atomic
// statement: created when absent, all annotation fields overwritten when the
// same id is re-ingested. It never duplicates nodes for the same id.
func (s *RiskDBStorage) UpsertRiskEvent(ctx context.Context, event common.RiskEvent) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO risk_events (id, summary, sentiment, sentiment_score, severity, source, event_type, ingested_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
		ON CONFLICT (id) DO UPDATE SET
			summary = EXCLUDED.summary,
			sentiment = EXCLUDED.sentiment,
			sentiment_score = EXCLUDED.sentiment_score,
			severity = EXCLUDED.severity,
			source = EXCLUDED.source,
			event_type = EXCLUDED.event_type,
			ingested_at = EXCLUDED.ingested_at
	`,
		event.ID,
		event.Summary,
		event.Sentiment,
		event.SentimentScore,
		event.Severity,
		event.Source,
		event.Type,
		event.IngestedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert risk event %s: %w", event.ID, err)
	}

	return nil
}

// ListSupplierRefs returns the id, name and aliases of every supplier, the
// projection entity linking matches against.
func (s *RiskDBStorage) ListSupplierRefs(ctx context.Context) ([]common.SupplierRef, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT id, name, COALESCE(aliases, '{}')
		FROM suppliers
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := make([]common.SupplierRef, 0)
	for rows.Next() {
		var ref common.SupplierRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Aliases); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// LinkEventSuppliers creates AFFECTS edges from an event to each supplier.
// Edges have merge semantics: re-linking an existing (event, supplier) pair
// is a no-op.
func (s *RiskDBStorage) LinkEventSuppliers(ctx context.Context, eventID string, supplierIDs []string) error {
	for _, sid := range supplierIDs {
		_, err := s.conn.Exec(ctx, `
			INSERT INTO event_affects (event_id, supplier_id)
			VALUES ($1, $2)
			ON CONFLICT (event_id, supplier_id) DO NOTHING
		`, eventID, sid)
		if err != nil {
			return fmt.Errorf("failed to link event %s to supplier %s: %w", eventID, sid, err)
		}
		logger.Debug("Linked event to supplier", "event", eventID, "supplier", sid)
	}

	return nil
}
