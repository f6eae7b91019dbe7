package queue

import (
	"encoding/json"
	"fmt"

	"github.com/chainsight/riskgraph/backend/pkg/common"

	"github.com/rabbitmq/amqp091-go"
)

// QueueIngestMsg triggers one ingestion pass. With Articles set, only those
// articles are processed; without, the worker fetches the current batch from
// every configured feed.
type QueueIngestMsg struct {
	Message  string           `json:"message"`
	Articles []common.Article `json:"articles,omitempty"`
}

// QueueScoreMsg triggers a scoring pass. With SupplierID set, only that
// supplier is recomputed; without, every supplier is.
type QueueScoreMsg struct {
	Message    string `json:"message"`
	SupplierID string `json:"supplier_id,omitempty"`
}

// KickoffIngest publishes an ingestion message for the configured feeds.
func KickoffIngest(ch *amqp091.Channel, articles []common.Article) error {
	data := QueueIngestMsg{
		Message:  "Ingest articles",
		Articles: articles,
	}

	msgBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal ingest message: %w", err)
	}

	if err := PublishFIFO(ch, IngestQueue, msgBytes); err != nil {
		return fmt.Errorf("failed to publish ingest message: %w", err)
	}

	return nil
}

// KickoffScore publishes a scoring message. An empty supplierID requests a
// full pass over every supplier.
func KickoffScore(ch *amqp091.Channel, supplierID string) error {
	data := QueueScoreMsg{
		Message:    "Recompute supplier risk",
		SupplierID: supplierID,
	}

	msgBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal score message: %w", err)
	}

	if err := PublishFIFO(ch, ScoreQueue, msgBytes); err != nil {
		return fmt.Errorf("failed to publish score message: %w", err)
	}

	return nil
}
