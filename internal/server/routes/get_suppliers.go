package routes

import (
	"net/http"

	"github.com/chainsight/riskgraph/backend/internal/server/middleware"
	"github.com/chainsight/riskgraph/backend/pkg/store"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetSupplierHandler returns a supplier with its products and linked events
func GetSupplierHandler(c echo.Context) error {
	type getSupplierParams struct {
		SupplierID string `param:"id" validate:"required"`
	}

	type getSupplierResponse struct {
		Message  string                `json:"message"`
		Supplier *store.SupplierDetail `json:"supplier,omitempty"`
	}

	params := new(getSupplierParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getSupplierResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getSupplierResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	storage := c.(*middleware.AppContext).App.Storage

	supplier, err := storage.GetSupplierDetail(ctx, params.SupplierID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getSupplierResponse{
			Message: "Internal server error",
		})
	}
	if supplier == nil {
		return c.JSON(http.StatusNotFound, getSupplierResponse{
			Message: "Supplier not found",
		})
	}

	return c.JSON(http.StatusOK, getSupplierResponse{
		Message:  "Supplier fetched successfully",
		Supplier: supplier,
	})
}
