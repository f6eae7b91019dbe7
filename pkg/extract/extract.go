package extract

import (
	"context"

	"github.com/chainsight/riskgraph/backend/pkg/ai"
	"github.com/chainsight/riskgraph/backend/pkg/common"
	"github.com/chainsight/riskgraph/backend/pkg/logger"

	"github.com/pkoukk/tiktoken-go"
)

// maxInputTokens bounds the article text sent to the model so oversized
// articles cannot blow the context window.
const maxInputTokens = 8000

// Fallback annotation values used when the model call or its output is
// unusable. These are fixed so re-running a failed extraction is
// deterministic.
const (
	fallbackSummaryLen     = 100
	fallbackSentimentScore = 0.5
	fallbackSeverity       = 0.3
)

type analyzeResponse struct {
	Summary        string   `json:"summary" jsonschema_description:"Short factual summary of the article"`
	Sentiment      string   `json:"sentiment" jsonschema_description:"Overall tone: positive, neutral or negative"`
	SentimentScore float64  `json:"sentiment_score" jsonschema_description:"Confidence of the sentiment, between 0 and 1"`
	Entities       []string `json:"entities" jsonschema_description:"Company or supplier names mentioned in the text"`
	Severity       float64  `json:"severity" jsonschema_description:"Supply-chain impact severity, between 0 and 1"`
}

// Extractor turns raw article text into a structured risk annotation using a
// language model. Extraction is total: every failure mode (network, auth,
// empty or malformed output) is masked by a deterministic fallback annotation
// so callers never branch on extractor success.
type Extractor struct {
	client ai.RiskAIClient
}

// NewExtractor creates an Extractor backed by the given AI client.
func NewExtractor(client ai.RiskAIClient) *Extractor {
	return &Extractor{client: client}
}

// Extract analyzes one article's text and returns a fully populated
// annotation. It never returns an error; failures yield the fallback
// annotation and are logged.
func (x *Extractor) Extract(ctx context.Context, text string) common.RiskAnnotation {
	var res analyzeResponse
	raw, err := x.client.GenerateCompletionWithFormat(
		ctx,
		"analyze_article",
		"Extract a supply-chain risk annotation from a news article.",
		truncateToTokens(text, maxInputTokens),
		&res,
		ai.WithSystemPrompts(ai.AnalyzePrompt),
		ai.WithTemperature(0.0),
	)
	if raw != "" {
		logger.Debug("Raw model response", "response", raw)
	}
	if err != nil {
		logger.Warn("Extraction failed, using fallback annotation", "err", err)
		return Fallback(text)
	}

	return sanitize(res, text)
}

// Fallback returns the deterministic annotation used when extraction fails:
// the first 100 characters of the input as summary, neutral sentiment at 0.5,
// no entities, severity 0.3.
func Fallback(text string) common.RiskAnnotation {
	return common.RiskAnnotation{
		Summary:        firstRunes(text, fallbackSummaryLen),
		Sentiment:      common.SentimentNeutral,
		SentimentScore: fallbackSentimentScore,
		Entities:       []string{},
		Severity:       fallbackSeverity,
	}
}

// sanitize enforces the annotation contract on model output: scores clamped
// to [0,1], sentiment restricted to its enum, summary and entities never
// empty/nil.
func sanitize(res analyzeResponse, text string) common.RiskAnnotation {
	a := common.RiskAnnotation{
		Summary:        res.Summary,
		Sentiment:      res.Sentiment,
		SentimentScore: clamp01(res.SentimentScore),
		Entities:       res.Entities,
		Severity:       clamp01(res.Severity),
	}

	if a.Summary == "" {
		a.Summary = firstRunes(text, fallbackSummaryLen)
	}
	switch a.Sentiment {
	case common.SentimentPositive, common.SentimentNeutral, common.SentimentNegative:
	default:
		a.Sentiment = common.SentimentNeutral
	}
	if a.Entities == nil {
		a.Entities = []string{}
	}

	return a
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func truncateToTokens(text string, limit int) string {
	enc, err := tiktoken.GetEncoding("o200k_base")
	if err != nil {
		return text
	}
	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= limit {
		return text
	}
	return enc.Decode(tokens[:limit])
}
