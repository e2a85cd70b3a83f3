package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pump-inventory/internal/controllers"
	"pump-inventory/internal/services"
)

func runReportRouter(g *echo.Group, reportService services.ReportServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewReportController(reportService, logger)

	g.GET("/reports/inventory", ctrl.GetInventory)
}
