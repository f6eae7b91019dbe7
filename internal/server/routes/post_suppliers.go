package routes

import (
	"net/http"

	"github.com/chainsight/riskgraph/backend/internal/server/middleware"
	"github.com/chainsight/riskgraph/backend/pkg/common"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// CreateSupplierHandler creates or updates a monitored supplier
func CreateSupplierHandler(c echo.Context) error {
	type createSupplierBody struct {
		ID      string   `json:"id" validate:"required"`
		Name    string   `json:"name" validate:"required"`
		Country string   `json:"country"`
		Aliases []string `json:"aliases"`
		Risk    float64  `json:"risk" validate:"gte=0,lte=1"`
	}

	type createSupplierResponse struct {
		Message  string           `json:"message"`
		Supplier *common.Supplier `json:"supplier,omitempty"`
	}

	data := new(createSupplierBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSupplierResponse{
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createSupplierResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	storage := c.(*middleware.AppContext).App.Storage

	supplier, err := storage.UpsertSupplier(ctx, common.Supplier{
		ID:      data.ID,
		Name:    data.Name,
		Country: data.Country,
		Aliases: data.Aliases,
		Risk:    data.Risk,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createSupplierResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createSupplierResponse{
		Message:  "Supplier saved successfully",
		Supplier: &supplier,
	})
}

// AddSupplierProductHandler links a product to a supplier
func AddSupplierProductHandler(c echo.Context) error {
	type addProductParams struct {
		SupplierID string `param:"id" validate:"required"`
	}

	type addProductBody struct {
		Product string `json:"product" validate:"required"`
	}

	type addProductResponse struct {
		Message string `json:"message"`
	}

	params := new(addProductParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, addProductResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, addProductResponse{
			Message: "Invalid request params",
		})
	}

	data := new(addProductBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, addProductResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, addProductResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	storage := c.(*middleware.AppContext).App.Storage

	if err := storage.LinkSupplierProduct(ctx, params.SupplierID, data.Product); err != nil {
		return c.JSON(http.StatusInternalServerError, addProductResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, addProductResponse{
		Message: "Product linked successfully",
	})
}
