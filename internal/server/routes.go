package server

import (
	"github.com/chainsight/riskgraph/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Ingestion trigger
	apiRoutes.POST("/ingest", routes.IngestHandler)

	// Supplier routes
	apiRoutes.POST("/suppliers", routes.CreateSupplierHandler)
	apiRoutes.GET("/suppliers/:id", routes.GetSupplierHandler)
	apiRoutes.GET("/suppliers/:id/brief", routes.GetSupplierBriefHandler)
	apiRoutes.POST("/suppliers/:id/products", routes.AddSupplierProductHandler)

	// Alert routes
	apiRoutes.GET("/alerts", routes.GetAlertsHandler)
	apiRoutes.POST("/alerts/:supplier_id/close", routes.CloseAlertHandler)

	// Risk query routes
	apiRoutes.GET("/risk/top-suppliers", routes.TopRiskySuppliersHandler)
	apiRoutes.GET("/risk/supplier-events", routes.SupplierEventsHandler)
	apiRoutes.GET("/risk/summary", routes.RiskSummaryHandler)
	apiRoutes.GET("/risk/severe-events", routes.SevereEventsHandler)
	apiRoutes.GET("/risk/dashboard", routes.DashboardHandler)
}
