package brief

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/chainsight/riskgraph/backend/pkg/ai"
	"github.com/chainsight/riskgraph/backend/pkg/common"
	"github.com/chainsight/riskgraph/backend/pkg/store"
)

type fakeAIClient struct {
	calls    int
	failures int
	response string

	lastPrompt  string
	lastOptions ai.GenerateOptions
}

func (f *fakeAIClient) GenerateCompletion(ctx context.Context, prompt string, opts ...ai.GenerateOption) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastOptions = ai.GenerateOptions{}
	for _, o := range opts {
		o(&f.lastOptions)
	}

	if f.calls <= f.failures {
		return "", errors.New("upstream timeout")
	}
	return f.response, nil
}

func (f *fakeAIClient) GenerateCompletionWithFormat(ctx context.Context, name string, description string, prompt string, out any, opts ...ai.GenerateOption) (string, error) {
	return "", nil
}

func (f *fakeAIClient) ResetMetrics() {}

func (f *fakeAIClient) GetMetrics() ai.ModelMetrics {
	return ai.ModelMetrics{}
}

func supplierFixture() *store.SupplierDetail {
	return &store.SupplierDetail{
		Supplier: common.Supplier{
			ID:               "S1",
			Name:             "Foxconn",
			Country:          "Taiwan",
			Risk:             0.4,
			LastComputedRisk: 0.56,
		},
		Products: []string{"smartphones"},
		Events: []store.EventDetail{
			{Summary: "Strike disrupts production", Severity: 0.8, IngestedAt: "2026-08-30T10:00:00Z"},
		},
	}
}

func TestSupplierBrief_PromptCarriesGraphState(t *testing.T) {
	client := &fakeAIClient{response: "  Foxconn is currently elevated.  "}
	briefer := NewBriefer(client)

	got, err := briefer.SupplierBrief(context.Background(), supplierFixture())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got != "Foxconn is currently elevated." {
		t.Fatalf("expected trimmed briefing, got %q", got)
	}

	for _, want := range []string{"Foxconn", "Taiwan", "0.56", "smartphones", "Strike disrupts production", "0.80"} {
		if !strings.Contains(client.lastPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, client.lastPrompt)
		}
	}
	if len(client.lastOptions.SystemPrompts) != 1 || client.lastOptions.SystemPrompts[0] != ai.BriefPrompt {
		t.Fatalf("expected briefing system prompt, got %v", client.lastOptions.SystemPrompts)
	}
}

func TestSupplierBrief_EmptyEventHistory(t *testing.T) {
	client := &fakeAIClient{response: "No notable risk."}
	briefer := NewBriefer(client)

	detail := supplierFixture()
	detail.Events = nil

	if _, err := briefer.SupplierBrief(context.Background(), detail); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(client.lastPrompt, "No recorded risk events.") {
		t.Fatalf("prompt should state the empty history:\n%s", client.lastPrompt)
	}
}

func TestSupplierBrief_RetriesTransientFailure(t *testing.T) {
	client := &fakeAIClient{failures: 1, response: "Recovered briefing."}
	briefer := NewBriefer(client)

	got, err := briefer.SupplierBrief(context.Background(), supplierFixture())
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if got != "Recovered briefing." {
		t.Fatalf("unexpected briefing %q", got)
	}
	if client.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", client.calls)
	}
}

func TestSupplierBrief_ErrorAfterRetriesExhausted(t *testing.T) {
	client := &fakeAIClient{failures: 10}
	briefer := NewBriefer(client)

	if _, err := briefer.SupplierBrief(context.Background(), supplierFixture()); err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if client.calls != briefTries {
		t.Fatalf("expected %d attempts, got %d", briefTries, client.calls)
	}
}

func TestSupplierBrief_ForwardsModelOptions(t *testing.T) {
	client := &fakeAIClient{response: "ok"}
	briefer := NewBriefer(client, ai.WithModel("gpt-4o"), ai.WithThinking("low"))

	if _, err := briefer.SupplierBrief(context.Background(), supplierFixture()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if client.lastOptions.Model != "gpt-4o" {
		t.Fatalf("expected model override, got %q", client.lastOptions.Model)
	}
	if client.lastOptions.Thinking != "low" {
		t.Fatalf("expected thinking mode, got %q", client.lastOptions.Thinking)
	}
}
