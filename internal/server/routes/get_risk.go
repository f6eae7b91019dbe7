package routes

import (
	"net/http"

	"github.com/chainsight/riskgraph/backend/internal/server/middleware"
	"github.com/chainsight/riskgraph/backend/pkg/store"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// TopRiskySuppliersHandler ranks suppliers by total linked event severity
func TopRiskySuppliersHandler(c echo.Context) error {
	type topRiskyQuery struct {
		Limit int `query:"limit"`
	}

	type topRiskyResponse struct {
		Message   string                  `json:"message"`
		Suppliers []store.SupplierRiskRow `json:"suppliers"`
	}

	query := new(topRiskyQuery)
	if err := c.Bind(query); err != nil {
		return c.JSON(http.StatusBadRequest, topRiskyResponse{
			Message: "Invalid request params",
		})
	}
	if query.Limit <= 0 {
		query.Limit = 5
	}

	ctx := c.Request().Context()
	storage := c.(*middleware.AppContext).App.Storage

	suppliers, err := storage.TopRiskySuppliers(ctx, query.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, topRiskyResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, topRiskyResponse{
		Message:   "Top risky suppliers fetched successfully",
		Suppliers: suppliers,
	})
}

// SupplierEventsHandler lists the latest events affecting suppliers whose
// name contains the given filter
func SupplierEventsHandler(c echo.Context) error {
	type supplierEventsQuery struct {
		Name  string `query:"name" validate:"required"`
		Limit int    `query:"limit"`
	}

	type supplierEventsResponse struct {
		Message string                 `json:"message"`
		Events  []store.EventSummaryRow `json:"events"`
	}

	query := new(supplierEventsQuery)
	if err := c.Bind(query); err != nil {
		return c.JSON(http.StatusBadRequest, supplierEventsResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, supplierEventsResponse{
			Message: "Invalid request params",
		})
	}
	if query.Limit <= 0 {
		query.Limit = 5
	}

	ctx := c.Request().Context()
	storage := c.(*middleware.AppContext).App.Storage

	events, err := storage.LatestSupplierEvents(ctx, query.Name, query.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, supplierEventsResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, supplierEventsResponse{
		Message: "Supplier events fetched successfully",
		Events:  events,
	})
}

// RiskSummaryHandler aggregates the event history of suppliers whose name
// contains the given filter
func RiskSummaryHandler(c echo.Context) error {
	type riskSummaryQuery struct {
		Name string `query:"name" validate:"required"`
	}

	type riskSummaryResponse struct {
		Message string                 `json:"message"`
		Summary []store.RiskSummaryRow `json:"summary"`
	}

	query := new(riskSummaryQuery)
	if err := c.Bind(query); err != nil {
		return c.JSON(http.StatusBadRequest, riskSummaryResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(query); err != nil {
		return c.JSON(http.StatusBadRequest, riskSummaryResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	storage := c.(*middleware.AppContext).App.Storage

	summary, err := storage.SupplierRiskSummary(ctx, query.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, riskSummaryResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, riskSummaryResponse{
		Message: "Risk summary fetched successfully",
		Summary: summary,
	})
}

// SevereEventsHandler lists the most severe events, optionally filtered by
// supplier country
func SevereEventsHandler(c echo.Context) error {
	type severeEventsQuery struct {
		Country string `query:"country"`
		Limit   int    `query:"limit"`
	}

	type severeEventsResponse struct {
		Message string                `json:"message"`
		Events  []store.SevereEventRow `json:"events"`
	}

	query := new(severeEventsQuery)
	if err := c.Bind(query); err != nil {
		return c.JSON(http.StatusBadRequest, severeEventsResponse{
			Message: "Invalid request params",
		})
	}
	if query.Limit <= 0 {
		query.Limit = 5
	}

	ctx := c.Request().Context()
	storage := c.(*middleware.AppContext).App.Storage

	events, err := storage.TopSevereEvents(ctx, query.Country, query.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, severeEventsResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, severeEventsResponse{
		Message: "Severe events fetched successfully",
		Events:  events,
	})
}

// DashboardHandler returns the per-supplier dashboard aggregation
func DashboardHandler(c echo.Context) error {
	type dashboardResponse struct {
		Message   string               `json:"message"`
		Suppliers []store.DashboardRow `json:"suppliers"`
	}

	ctx := c.Request().Context()
	storage := c.(*middleware.AppContext).App.Storage

	suppliers, err := storage.SupplierDashboard(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dashboardResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Message:   "Dashboard fetched successfully",
		Suppliers: suppliers,
	})
}
