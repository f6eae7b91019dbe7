package risk

import (
	"context"
	"errors"
	"testing"

	"github.com/chainsight/riskgraph/backend/pkg/common"
	"github.com/chainsight/riskgraph/backend/pkg/store"
)

type scorerStorage struct {
	store.RiskStorage

	ids        []string
	listErr    error
	scores     map[string]float64
	alerts     map[string]*common.AlertRecord
	failFor    map[string]error
	recomputed []string
}

func (s *scorerStorage) ListSupplierIDs(ctx context.Context) ([]string, error) {
	return s.ids, s.listErr
}

func (s *scorerStorage) RecomputeSupplierRisk(ctx context.Context, supplierID string) (float64, *common.AlertRecord, error) {
	if err := s.failFor[supplierID]; err != nil {
		return 0, nil, err
	}
	s.recomputed = append(s.recomputed, supplierID)
	return s.scores[supplierID], s.alerts[supplierID], nil
}

func TestUpdateAll_CollectsAlerts(t *testing.T) {
	storage := &scorerStorage{
		ids:    []string{"S1", "S2"},
		scores: map[string]float64{"S1": 0.62, "S2": 0.3},
		alerts: map[string]*common.AlertRecord{
			"S1": {SupplierID: "S1", Risk: 0.62},
		},
	}

	alerts, err := NewScorer(storage).UpdateAll(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].SupplierID != "S1" || alerts[0].Risk != 0.62 {
		t.Fatalf("unexpected alert %+v", alerts[0])
	}
}

func TestUpdateAll_ContinuesPastFailingSupplier(t *testing.T) {
	storage := &scorerStorage{
		ids:    []string{"S1", "S2", "S3"},
		scores: map[string]float64{"S1": 0.1, "S3": 0.9},
		alerts: map[string]*common.AlertRecord{
			"S3": {SupplierID: "S3", Risk: 0.9},
		},
		failFor: map[string]error{"S2": errors.New("deadlock")},
	}

	alerts, err := NewScorer(storage).UpdateAll(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(storage.recomputed) != 2 {
		t.Fatalf("expected 2 recomputed suppliers, got %v", storage.recomputed)
	}
	if len(alerts) != 1 || alerts[0].SupplierID != "S3" {
		t.Fatalf("expected alert for S3, got %v", alerts)
	}
}

func TestUpdateAll_ListFailure(t *testing.T) {
	storage := &scorerStorage{listErr: errors.New("connection refused")}

	_, err := NewScorer(storage).UpdateAll(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestUpdateAll_NoSuppliers(t *testing.T) {
	storage := &scorerStorage{}

	alerts, err := NewScorer(storage).UpdateAll(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %v", alerts)
	}
}
