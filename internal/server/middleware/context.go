package middleware

import (
	"github.com/chainsight/riskgraph/backend/internal/util"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/chainsight/riskgraph/backend/pkg/ai"
	oai "github.com/chainsight/riskgraph/backend/pkg/ai/ollama"
	gai "github.com/chainsight/riskgraph/backend/pkg/ai/openai"
	"github.com/chainsight/riskgraph/backend/pkg/logger"
	"github.com/chainsight/riskgraph/backend/pkg/store"
	pgstore "github.com/chainsight/riskgraph/backend/pkg/store/pgx"
)

type App struct {
	DBConn   *pgxpool.Pool
	Queue    *amqp091.Channel
	Storage  store.RiskStorage
	AiClient ai.RiskAIClient
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(
	db *pgxpool.Pool,
	queue *amqp091.Channel,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			adapter := util.GetEnv("AI_ADAPTER")
			var aiClient ai.RiskAIClient

			switch adapter {
			case "ollama":
				client, err := oai.NewRiskOllamaClient(oai.NewRiskOllamaClientParams{
					DescriptionModel: util.GetEnv("AI_CHAT_DESCRIBE_MODEL"),
					ExtractionModel:  util.GetEnv("AI_CHAT_EXTRACT_MODEL"),

					BaseURL: util.GetEnv("AI_CHAT_URL"),
					ApiKey:  util.GetEnv("AI_CHAT_KEY"),

					MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 15)),
				})
				if err != nil {
					logger.Fatal("Failed to create Ollama client", "err", err)
				}
				aiClient = client
			default:
				aiClient = gai.NewRiskOpenAIClient(gai.NewRiskOpenAIClientParams{
					DescriptionModel: util.GetEnv("AI_CHAT_DESCRIBE_MODEL"),
					ExtractionModel:  util.GetEnv("AI_CHAT_EXTRACT_MODEL"),

					ChatURL: util.GetEnv("AI_CHAT_URL"),
					ChatKey: util.GetEnv("AI_CHAT_KEY"),
				})
			}

			app := &App{
				DBConn:   db,
				Queue:    queue,
				Storage:  pgstore.NewRiskDBStorage(db),
				AiClient: aiClient,
			}
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
