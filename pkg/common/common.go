package common

import "time"

// Article is a raw news item produced by a feed. Articles are transient:
// they are consumed once by the ingestion pipeline and never persisted.
type Article struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Sentiment labels for an annotation's overall tone.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// RiskAnnotation is the structured result of analyzing one article's text.
// Every field is always populated: extraction failures produce a deterministic
// fallback annotation instead of an error, so downstream code never branches
// on extractor success.
type RiskAnnotation struct {
	Summary        string   `json:"summary"`
	Sentiment      string   `json:"sentiment"`
	SentimentScore float64  `json:"sentiment_score"`
	Entities       []string `json:"entities"`
	Severity       float64  `json:"severity"`
}

// RiskEvent is a persisted record of one ingested article's risk annotation.
// Events are created once per article via an idempotent upsert keyed on ID
// and are never deleted.
type RiskEvent struct {
	ID             string    `json:"id"`
	Summary        string    `json:"summary"`
	Sentiment      string    `json:"sentiment"`
	SentimentScore float64   `json:"sentiment_score"`
	Severity       float64   `json:"severity"`
	Source         string    `json:"source"`
	Type           string    `json:"type,omitempty"`
	IngestedAt     time.Time `json:"ingested_at"`
}

// Supplier is a monitored company. Risk is the externally maintained static
// baseline; LastComputedRisk is written only by the risk scorer.
type Supplier struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Country          string   `json:"country"`
	Aliases          []string `json:"aliases"`
	Risk             float64  `json:"risk"`
	LastComputedRisk float64  `json:"last_computed_risk"`
}

// SupplierRef is the minimal supplier projection used for entity linking.
type SupplierRef struct {
	ID      string
	Name    string
	Aliases []string
}

// EventRecord summarizes one successful article ingestion for the caller.
type EventRecord struct {
	ID        string   `json:"id"`
	Entities  []string `json:"entities"`
	Severity  float64  `json:"severity"`
	Suppliers []string `json:"suppliers"`
}

// AlertRecord reports an alert opened or refreshed by a scoring pass.
// CreatedAt is serialized to RFC3339 before leaving the core.
type AlertRecord struct {
	SupplierID string  `json:"supplier"`
	Risk       float64 `json:"risk"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

// IngestError records one article that could not be ingested. The batch
// continues past individual failures, so a report carries both successes
// and errors.
type IngestError struct {
	Title string `json:"title"`
	Err   string `json:"error"`
}

// IngestReport is the structured result of one full ingestion cycle.
type IngestReport struct {
	Ingested []EventRecord `json:"ingested"`
	Alerts   []AlertRecord `json:"alerts"`
	Errors   []IngestError `json:"errors,omitempty"`
}
