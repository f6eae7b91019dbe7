package routes

import (
	"net/http"

	"github.com/chainsight/riskgraph/backend/internal/server/middleware"
	"github.com/chainsight/riskgraph/backend/pkg/common"

	"github.com/labstack/echo/v4"
)

// GetAlertsHandler returns every open alert, newest first
func GetAlertsHandler(c echo.Context) error {
	type getAlertsResponse struct {
		Message string               `json:"message"`
		Alerts  []common.AlertRecord `json:"alerts"`
	}

	ctx := c.Request().Context()
	storage := c.(*middleware.AppContext).App.Storage

	alerts, err := storage.OpenAlerts(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getAlertsResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getAlertsResponse{
		Message: "Alerts fetched successfully",
		Alerts:  alerts,
	})
}
