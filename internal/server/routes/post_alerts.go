package routes

import (
	"net/http"

	"github.com/chainsight/riskgraph/backend/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// CloseAlertHandler closes the open alert of a supplier
func CloseAlertHandler(c echo.Context) error {
	type closeAlertParams struct {
		SupplierID string `param:"supplier_id" validate:"required"`
	}

	type closeAlertResponse struct {
		Message string `json:"message"`
	}

	params := new(closeAlertParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, closeAlertResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, closeAlertResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	storage := c.(*middleware.AppContext).App.Storage

	closed, err := storage.CloseAlert(ctx, params.SupplierID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, closeAlertResponse{
			Message: "Internal server error",
		})
	}
	if !closed {
		return c.JSON(http.StatusNotFound, closeAlertResponse{
			Message: "No open alert for this supplier",
		})
	}

	return c.JSON(http.StatusOK, closeAlertResponse{
		Message: "Alert closed successfully",
	})
}
