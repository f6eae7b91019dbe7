package routes

import (
	"net/http"

	"github.com/chainsight/riskgraph/backend/internal/feeds"
	"github.com/chainsight/riskgraph/backend/internal/queue"
	"github.com/chainsight/riskgraph/backend/internal/server/middleware"
	"github.com/chainsight/riskgraph/backend/pkg/common"
	"github.com/chainsight/riskgraph/backend/pkg/extract"
	"github.com/chainsight/riskgraph/backend/pkg/ingest"

	"github.com/labstack/echo/v4"
)

// IngestHandler runs one ingestion cycle. With articles in the body only
// those are processed, otherwise the configured feeds are fetched. Async
// requests are handed to the worker via the ingest queue.
func IngestHandler(c echo.Context) error {
	type ingestBody struct {
		Articles []common.Article `json:"articles"`
		Async    bool             `json:"async"`
	}

	type ingestResponse struct {
		Message string               `json:"message"`
		Report  *common.IngestReport `json:"report,omitempty"`
	}

	data := new(ingestBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, ingestResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App

	if data.Async {
		if err := queue.KickoffIngest(app.Queue, data.Articles); err != nil {
			return c.JSON(http.StatusInternalServerError, ingestResponse{
				Message: "Internal server error",
			})
		}
		return c.JSON(http.StatusAccepted, ingestResponse{
			Message: "Ingestion queued",
		})
	}

	ctx := c.Request().Context()
	aggregator := feeds.NewAggregator()
	ingestor := ingest.NewIngestor(aggregator, extract.NewExtractor(app.AiClient), app.Storage)

	var (
		report common.IngestReport
		err    error
	)
	if len(data.Articles) > 0 {
		report, err = ingestor.RunBatch(ctx, data.Articles)
	} else {
		report, err = ingestor.RunCycle(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ingestResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, ingestResponse{
		Message: "Ingestion cycle finished",
		Report:  &report,
	})
}
