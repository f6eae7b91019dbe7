package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/chainsight/riskgraph/backend/pkg/store"

	"github.com/jackc/pgx/v5"
)

// The facade queries are read-only and total over empty results: an unknown
// supplier or an empty graph yields empty rows, never an error. Ties in the
// rankings are left to the store's natural row order.

// TopRiskySuppliers ranks suppliers by total severity of linked events.
func (s *RiskDBStorage) TopRiskySuppliers(ctx context.Context, limit int) ([]store.SupplierRiskRow, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT
			s.name,
			COALESCE(s.country, ''),
			COUNT(e.id),
			ROUND(AVG(e.severity)::numeric, 2)::float8,
			ROUND(SUM(e.severity)::numeric, 2)::float8
		FROM risk_events e
		JOIN event_affects a ON a.event_id = e.id
		JOIN suppliers s ON s.id = a.supplier_id
		GROUP BY s.id, s.name, s.country
		ORDER BY SUM(e.severity) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]store.SupplierRiskRow, 0)
	for rows.Next() {
		var r store.SupplierRiskRow
		if err := rows.Scan(&r.Supplier, &r.Country, &r.EventCount, &r.AvgSeverity, &r.TotalSeverity); err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// LatestSupplierEvents returns the newest events affecting suppliers whose
// name contains the given substring, case-insensitively.
func (s *RiskDBStorage) LatestSupplierEvents(ctx context.Context, nameSubstring string, limit int) ([]store.EventSummaryRow, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT e.summary, e.severity, e.ingested_at
		FROM risk_events e
		JOIN event_affects a ON a.event_id = e.id
		JOIN suppliers s ON s.id = a.supplier_id
		WHERE lower(s.name) LIKE '%' || lower($1) || '%'
		ORDER BY e.ingested_at DESC
		LIMIT $2
	`, nameSubstring, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]store.EventSummaryRow, 0)
	for rows.Next() {
		var (
			r          store.EventSummaryRow
			ingestedAt time.Time
		)
		if err := rows.Scan(&r.Summary, &r.Severity, &ingestedAt); err != nil {
			return nil, err
		}
		r.Time = ingestedAt.UTC().Format(time.RFC3339)
		out = append(out, r)
	}

	return out, rows.Err()
}

// SupplierRiskSummary aggregates event counts and severities for suppliers
// whose name contains the given substring.
func (s *RiskDBStorage) SupplierRiskSummary(ctx context.Context, nameSubstring string) ([]store.RiskSummaryRow, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT
			s.name,
			COUNT(e.id),
			ROUND(AVG(e.severity)::numeric, 2)::float8,
			MAX(e.severity)
		FROM risk_events e
		JOIN event_affects a ON a.event_id = e.id
		JOIN suppliers s ON s.id = a.supplier_id
		WHERE lower(s.name) LIKE '%' || lower($1) || '%'
		GROUP BY s.id, s.name
	`, nameSubstring)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]store.RiskSummaryRow, 0)
	for rows.Next() {
		var r store.RiskSummaryRow
		if err := rows.Scan(&r.Supplier, &r.TotalEvents, &r.AvgSeverity, &r.MaxSeverity); err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// TopSevereEvents returns the highest-severity events affecting suppliers in
// the given country.
func (s *RiskDBStorage) TopSevereEvents(ctx context.Context, country string, limit int) ([]store.SevereEventRow, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT s.name, COALESCE(s.country, ''), COALESCE(e.event_type, ''), e.severity
		FROM risk_events e
		JOIN event_affects a ON a.event_id = e.id
		JOIN suppliers s ON s.id = a.supplier_id
		WHERE s.country = $1
		ORDER BY e.severity DESC
		LIMIT $2
	`, country, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]store.SevereEventRow, 0)
	for rows.Next() {
		var r store.SevereEventRow
		if err := rows.Scan(&r.Supplier, &r.Country, &r.EventType, &r.Severity); err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// SupplierDashboard aggregates every supplier with its average event severity
// and the distinct types of events affecting it, most exposed first.
func (s *RiskDBStorage) SupplierDashboard(ctx context.Context) ([]store.DashboardRow, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT
			s.name,
			COALESCE(s.country, ''),
			COALESCE(AVG(e.severity), 0),
			COALESCE(array_agg(DISTINCT e.event_type) FILTER (WHERE e.event_type IS NOT NULL), '{}')
		FROM suppliers s
		LEFT JOIN event_affects a ON a.supplier_id = s.id
		LEFT JOIN risk_events e ON e.id = a.event_id
		GROUP BY s.id, s.name, s.country
		ORDER BY COALESCE(AVG(e.severity), 0) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]store.DashboardRow, 0)
	for rows.Next() {
		var r store.DashboardRow
		if err := rows.Scan(&r.Supplier, &r.Country, &r.RiskScore, &r.RiskEvents); err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// GetSupplierDetail returns a supplier with its linked products and events.
// An absent supplier yields (nil, nil).
func (s *RiskDBStorage) GetSupplierDetail(ctx context.Context, id string) (*store.SupplierDetail, error) {
	var detail store.SupplierDetail
	err := s.conn.QueryRow(ctx, `
		SELECT id, name, COALESCE(country, ''), COALESCE(aliases, '{}'), COALESCE(risk, 0), COALESCE(last_computed_risk, 0)
		FROM suppliers
		WHERE id = $1
	`, id).Scan(
		&detail.ID,
		&detail.Name,
		&detail.Country,
		&detail.Aliases,
		&detail.Risk,
		&detail.LastComputedRisk,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	productRows, err := s.conn.Query(ctx, `
		SELECT product_name FROM supplier_products WHERE supplier_id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer productRows.Close()

	detail.Products = make([]string, 0)
	for productRows.Next() {
		var name string
		if err := productRows.Scan(&name); err != nil {
			return nil, err
		}
		detail.Products = append(detail.Products, name)
	}
	if err := productRows.Err(); err != nil {
		return nil, err
	}

	eventRows, err := s.conn.Query(ctx, `
		SELECT e.id, e.summary, e.sentiment, e.sentiment_score, e.severity, e.source, COALESCE(e.event_type, ''), e.ingested_at
		FROM risk_events e
		JOIN event_affects a ON a.event_id = e.id
		WHERE a.supplier_id = $1
		ORDER BY e.ingested_at DESC
	`, id)
	if err != nil {
		return nil, err
	}
	defer eventRows.Close()

	detail.Events = make([]store.EventDetail, 0)
	for eventRows.Next() {
		var (
			e          store.EventDetail
			ingestedAt time.Time
		)
		err := eventRows.Scan(
			&e.ID,
			&e.Summary,
			&e.Sentiment,
			&e.SentimentScore,
			&e.Severity,
			&e.Source,
			&e.Type,
			&ingestedAt,
		)
		if err != nil {
			return nil, err
		}
		e.IngestedAt = ingestedAt.UTC().Format(time.RFC3339)
		detail.Events = append(detail.Events, e)
	}

	return &detail, eventRows.Err()
}
