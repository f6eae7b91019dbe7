package routes

import (
	"net/http"

	"github.com/chainsight/riskgraph/backend/internal/server/middleware"
	"github.com/chainsight/riskgraph/backend/internal/util"
	"github.com/chainsight/riskgraph/backend/pkg/ai"
	"github.com/chainsight/riskgraph/backend/pkg/brief"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetSupplierBriefHandler generates a plain-text risk briefing for one
// supplier from its stored graph state
func GetSupplierBriefHandler(c echo.Context) error {
	type briefParams struct {
		SupplierID string `param:"id" validate:"required"`
	}

	type briefResponse struct {
		Message string `json:"message"`
		Brief   string `json:"brief,omitempty"`
	}

	params := new(briefParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, briefResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, briefResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	supplier, err := app.Storage.GetSupplierDetail(ctx, params.SupplierID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, briefResponse{
			Message: "Internal server error",
		})
	}
	if supplier == nil {
		return c.JSON(http.StatusNotFound, briefResponse{
			Message: "Supplier not found",
		})
	}

	opts := []ai.GenerateOption{}
	if model := util.GetEnv("AI_BRIEF_MODEL"); model != "" {
		opts = append(opts, ai.WithModel(model))
	}
	if thinking := util.GetEnv("AI_BRIEF_THINKING"); thinking != "" {
		opts = append(opts, ai.WithThinking(thinking))
	}

	briefer := brief.NewBriefer(app.AiClient, opts...)
	text, err := briefer.SupplierBrief(ctx, supplier)
	if err != nil {
		return c.JSON(http.StatusBadGateway, briefResponse{
			Message: "Briefing generation failed",
		})
	}

	return c.JSON(http.StatusOK, briefResponse{
		Message: "Briefing generated successfully",
		Brief:   text,
	})
}
