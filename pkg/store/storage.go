// Package store defines the persistence interface for the supplier risk
// graph. The graph store is the sole source of truth: no component caches
// graph state across calls, and all temporal values leave this layer as
// RFC3339 strings.
package store

import (
	"context"

	"github.com/chainsight/riskgraph/backend/pkg/common"
)

// SupplierRiskRow ranks one supplier by the severity of its linked events.
type SupplierRiskRow struct {
	Supplier      string  `json:"supplier"`
	Country       string  `json:"country"`
	EventCount    int     `json:"event_count"`
	AvgSeverity   float64 `json:"avg_severity"`
	TotalSeverity float64 `json:"total_severity"`
}

// EventSummaryRow is one event affecting a supplier, newest first.
type EventSummaryRow struct {
	Summary  string  `json:"summary"`
	Severity float64 `json:"severity"`
	Time     string  `json:"time"`
}

// RiskSummaryRow aggregates the event history of suppliers matching a name
// filter.
type RiskSummaryRow struct {
	Supplier    string  `json:"supplier"`
	TotalEvents int     `json:"total_events"`
	AvgSeverity float64 `json:"avg_severity"`
	MaxSeverity float64 `json:"max_severity"`
}

// SevereEventRow is one high-severity event affecting a supplier in a
// country.
type SevereEventRow struct {
	Supplier  string  `json:"supplier"`
	Country   string  `json:"country"`
	EventType string  `json:"event_type"`
	Severity  float64 `json:"severity"`
}

// DashboardRow is the per-supplier aggregation backing the dashboard view.
type DashboardRow struct {
	Supplier   string   `json:"supplier"`
	Country    string   `json:"country"`
	RiskScore  float64  `json:"risk_score"`
	RiskEvents []string `json:"risk_events"`
}

// EventDetail is a fully serialized event as returned by detail queries.
type EventDetail struct {
	ID             string  `json:"id"`
	Summary        string  `json:"summary"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	Severity       float64 `json:"severity"`
	Source         string  `json:"source"`
	Type           string  `json:"type,omitempty"`
	IngestedAt     string  `json:"ingested_at"`
}

// SupplierDetail is a supplier with its linked products and events.
type SupplierDetail struct {
	common.Supplier
	Products []string      `json:"products"`
	Events   []EventDetail `json:"events"`
}

// RiskStorage is the persistence contract of the risk graph. Implementations
// must guarantee: single-statement atomic upserts keyed on event/supplier id,
// merge semantics for edges (re-linking is a no-op), and one explicit
// transaction per supplier recompute.
type RiskStorage interface {
	// Ingestion write path.
	UpsertRiskEvent(ctx context.Context, event common.RiskEvent) error
	ListSupplierRefs(ctx context.Context) ([]common.SupplierRef, error)
	LinkEventSuppliers(ctx context.Context, eventID string, supplierIDs []string) error

	// Scoring.
	ListSupplierIDs(ctx context.Context) ([]string, error)
	RecomputeSupplierRisk(ctx context.Context, supplierID string) (float64, *common.AlertRecord, error)

	// Alert lifecycle. CloseAlert reports whether an open alert existed.
	OpenAlerts(ctx context.Context) ([]common.AlertRecord, error)
	CloseAlert(ctx context.Context, supplierID string) (bool, error)

	// Supplier management.
	UpsertSupplier(ctx context.Context, s common.Supplier) (common.Supplier, error)
	LinkSupplierProduct(ctx context.Context, supplierID string, productName string) error

	// Query facade: read-only, total over empty results.
	TopRiskySuppliers(ctx context.Context, limit int) ([]SupplierRiskRow, error)
	GetSupplierDetail(ctx context.Context, id string) (*SupplierDetail, error)
	LatestSupplierEvents(ctx context.Context, nameSubstring string, limit int) ([]EventSummaryRow, error)
	SupplierRiskSummary(ctx context.Context, nameSubstring string) ([]RiskSummaryRow, error)
	TopSevereEvents(ctx context.Context, country string, limit int) ([]SevereEventRow, error)
	SupplierDashboard(ctx context.Context) ([]DashboardRow, error)
}
