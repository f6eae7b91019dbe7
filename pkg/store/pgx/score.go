package pgx

import (
	"context"
	"fmt"
	"time"

	"github.com/chainsight/riskgraph/backend/pkg/common"
	"github.com/chainsight/riskgraph/backend/pkg/risk"
)

// RecomputeSupplierRisk recomputes one supplier's blended risk score and
// persists it, opening or refreshing an open alert when the score crosses
// the threshold. The whole compute-and-maybe-alert sequence runs inside one
// transaction: a crash mid-update leaves either the fully updated state or
// the prior state, never a score without its alert decision.
func (s *RiskDBStorage) RecomputeSupplierRisk(ctx context.Context, supplierID string) (float64, *common.AlertRecord, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return 0, nil, err
	}
	defer tx.Rollback(ctx)

	var baseRisk float64
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(risk, 0) FROM suppliers WHERE id = $1
	`, supplierID).Scan(&baseRisk)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read supplier %s: %w", supplierID, err)
	}

	rows, err := tx.Query(ctx, `
		SELECT e.severity
		FROM risk_events e
		JOIN event_affects a ON a.event_id = e.id
		WHERE a.supplier_id = $1
	`, supplierID)
	if err != nil {
		return 0, nil, err
	}

	severities := make([]float64, 0)
	for rows.Next() {
		var sev float64
		if err := rows.Scan(&sev); err != nil {
			rows.Close()
			return 0, nil, err
		}
		severities = append(severities, sev)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, nil, err
	}

	score := risk.Blend(baseRisk, severities)

	_, err = tx.Exec(ctx, `
		UPDATE suppliers SET last_computed_risk = $2 WHERE id = $1
	`, supplierID, score)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to persist score for supplier %s: %w", supplierID, err)
	}

	var alert *common.AlertRecord
	if risk.ShouldAlert(score) {
		var createdAt time.Time
		err = tx.QueryRow(ctx, `
			INSERT INTO alerts (supplier_id, open, risk_value, created_at)
			VALUES ($1, TRUE, $2, now())
			ON CONFLICT (supplier_id) WHERE open DO UPDATE SET
				risk_value = EXCLUDED.risk_value,
				created_at = EXCLUDED.created_at
			RETURNING created_at
		`, supplierID, score).Scan(&createdAt)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to upsert alert for supplier %s: %w", supplierID, err)
		}

		alert = &common.AlertRecord{
			SupplierID: supplierID,
			Risk:       score,
			CreatedAt:  createdAt.UTC().Format(time.RFC3339),
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, nil, err
	}

	return score, alert, nil
}
