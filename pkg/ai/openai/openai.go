package openai

import (
	"sync"

	"github.com/chainsight/riskgraph/backend/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// RiskOpenAIClient is a client for interacting with OpenAI-compatible chat
// models used by the risk pipeline. It keeps separate model identifiers for
// extraction (structured output) and description (plain text) tasks.
//
// A RiskOpenAIClient should be created using NewRiskOpenAIClient.
type RiskOpenAIClient struct {
	descriptionModel string
	extractionModel  string

	chatURL string
	chatKey string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewRiskOpenAIClientParams defines the configuration parameters for creating
// a new RiskOpenAIClient.
//
// DescriptionModel specifies the model used for plain-text generation.
// ExtractionModel specifies the model used for structured extraction.
// ChatURL and ChatKey configure the chat/completion API endpoint; an empty
// ChatURL targets the default OpenAI endpoint.
type NewRiskOpenAIClientParams struct {
	DescriptionModel string
	ExtractionModel  string

	ChatURL string
	ChatKey string
}

// NewRiskOpenAIClient creates and returns a new RiskOpenAIClient configured
// with the provided parameters.
//
// Example:
//
//	params := openai.NewRiskOpenAIClientParams{
//		DescriptionModel: "gpt-4o-mini",
//		ExtractionModel:  "gpt-4o-mini",
//		ChatKey:          os.Getenv("OPENAI_API_KEY"),
//	}
//	client := openai.NewRiskOpenAIClient(params)
func NewRiskOpenAIClient(
	params NewRiskOpenAIClientParams,
) *RiskOpenAIClient {
	chatClient := newOpenaiClient(params.ChatURL, params.ChatKey)

	return &RiskOpenAIClient{
		descriptionModel: params.DescriptionModel,
		extractionModel:  params.ExtractionModel,

		chatURL: params.ChatURL,
		chatKey: params.ChatKey,

		metricsLock: sync.Mutex{},
		metrics: ai.ModelMetrics{
			InputTokens:  0,
			OutputTokens: 0,
			TotalTokens:  0,
			DurationMs:   0,
		},

		ChatClient: chatClient,
	}
}

func newOpenaiClient(
	baseURL string,
	apiKey string,
) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}
