package pgx

import (
	"context"
	"time"

	"github.com/chainsight/riskgraph/backend/pkg/common"
)

// OpenAlerts lists every currently open alert.
func (s *RiskDBStorage) OpenAlerts(ctx context.Context) ([]common.AlertRecord, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT supplier_id, risk_value, created_at
		FROM alerts
		WHERE open
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]common.AlertRecord, 0)
	for rows.Next() {
		var (
			alert     common.AlertRecord
			createdAt time.Time
		)
		if err := rows.Scan(&alert.SupplierID, &alert.Risk, &createdAt); err != nil {
			return nil, err
		}
		alert.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		alerts = append(alerts, alert)
	}

	return alerts, rows.Err()
}

// CloseAlert transitions a supplier's open alert to closed. Closing is never
// done by the scorer; it is an explicit, separately triggered operation.
// Returns false when the supplier has no open alert.
func (s *RiskDBStorage) CloseAlert(ctx context.Context, supplierID string) (bool, error) {
	tag, err := s.conn.Exec(ctx, `
		UPDATE alerts SET open = FALSE
		WHERE supplier_id = $1 AND open
	`, supplierID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
