// Package brief turns a supplier's stored graph state into a short
// plain-text risk briefing using the description model.
package brief

import (
	"context"
	"fmt"
	"strings"

	"github.com/chainsight/riskgraph/backend/internal/util"
	"github.com/chainsight/riskgraph/backend/pkg/ai"
	"github.com/chainsight/riskgraph/backend/pkg/store"
)

// briefTries bounds retries of the model call; completions are not cached.
const briefTries = 2

// Briefer generates supplier briefings through a RiskAIClient. Extra
// generation options (model override, thinking mode) are applied on every
// call after the briefing system prompt.
type Briefer struct {
	client ai.RiskAIClient
	opts   []ai.GenerateOption
}

// NewBriefer creates a Briefer backed by the given AI client.
func NewBriefer(client ai.RiskAIClient, opts ...ai.GenerateOption) *Briefer {
	return &Briefer{client: client, opts: opts}
}

// SupplierBrief generates a prose briefing for one supplier from its stored
// attributes, products and linked events. The model call is retried on
// transient failure; unlike extraction there is no fallback, callers get the
// error.
func (b *Briefer) SupplierBrief(ctx context.Context, detail *store.SupplierDetail) (string, error) {
	prompt := buildPrompt(detail)

	genOpts := append([]ai.GenerateOption{ai.WithSystemPrompts(ai.BriefPrompt)}, b.opts...)
	text, err := util.RetryWithContext(ctx, briefTries, func(ctx context.Context) (string, error) {
		return b.client.GenerateCompletion(ctx, prompt, genOpts...)
	})
	if err != nil {
		return "", fmt.Errorf("briefing generation failed for supplier %s: %w", detail.ID, err)
	}

	return strings.TrimSpace(text), nil
}

func buildPrompt(detail *store.SupplierDetail) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Supplier: %s\n", detail.Name)
	if detail.Country != "" {
		fmt.Fprintf(&sb, "Country: %s\n", detail.Country)
	}
	fmt.Fprintf(&sb, "Baseline risk: %.2f\n", detail.Risk)
	fmt.Fprintf(&sb, "Current risk score: %.2f\n", detail.LastComputedRisk)
	if len(detail.Products) > 0 {
		fmt.Fprintf(&sb, "Products: %s\n", strings.Join(detail.Products, ", "))
	}

	if len(detail.Events) == 0 {
		sb.WriteString("No recorded risk events.\n")
		return sb.String()
	}

	sb.WriteString("Recent events:\n")
	for _, event := range detail.Events {
		fmt.Fprintf(&sb, "- [severity %.2f] %s (%s)\n", event.Severity, event.Summary, event.IngestedAt)
	}

	return sb.String()
}
