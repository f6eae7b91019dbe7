package pgx

import (
	"context"
	"fmt"

	"github.com/chainsight/riskgraph/backend/pkg/common"
)

// UpsertSupplier creates or updates a supplier keyed by id. On conflict every
// column is overwritten with the posted values, baseline risk included, so
// callers re-posting a supplier must send the full record.
func (s *RiskDBStorage) UpsertSupplier(ctx context.Context, supplier common.Supplier) (common.Supplier, error) {
	aliases := supplier.Aliases
	if aliases == nil {
		aliases = []string{}
	}

	row := s.conn.QueryRow(ctx, `
		INSERT INTO suppliers (id, name, country, aliases, risk)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			aliases = EXCLUDED.aliases,
			risk = EXCLUDED.risk
		RETURNING id, name, country, COALESCE(aliases, '{}'), COALESCE(risk, 0), COALESCE(last_computed_risk, 0)
	`,
		supplier.ID,
		supplier.Name,
		supplier.Country,
		aliases,
		supplier.Risk,
	)

	var out common.Supplier
	err := row.Scan(&out.ID, &out.Name, &out.Country, &out.Aliases, &out.Risk, &out.LastComputedRisk)
	if err != nil {
		return common.Supplier{}, fmt.Errorf("failed to upsert supplier %s: %w", supplier.ID, err)
	}

	return out, nil
}

// LinkSupplierProduct creates the product node if needed and a SUPPLIES edge
// from the supplier, both with merge semantics.
func (s *RiskDBStorage) LinkSupplierProduct(ctx context.Context, supplierID string, productName string) error {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO products (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`, productName)
	if err != nil {
		return fmt.Errorf("failed to upsert product %s: %w", productName, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO supplier_products (supplier_id, product_name)
		VALUES ($1, $2)
		ON CONFLICT (supplier_id, product_name) DO NOTHING
	`, supplierID, productName)
	if err != nil {
		return fmt.Errorf("failed to link supplier %s to product %s: %w", supplierID, productName, err)
	}

	return tx.Commit(ctx)
}

// ListSupplierIDs returns every supplier id in the graph.
func (s *RiskDBStorage) ListSupplierIDs(ctx context.Context) ([]string, error) {
	rows, err := s.conn.Query(ctx, `SELECT id FROM suppliers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
