package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pump-inventory/internal/controllers"
	"pump-inventory/internal/services"
)

func runPumpRouter(g *echo.Group, pumpService services.PumpServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewPumpController(pumpService, logger)

	g.GET("/pumps", ctrl.GetPumps)
	g.POST("/pumps", ctrl.CreatePump)
	g.PUT("/pumps/:id", ctrl.UpdatePump)
	g.DELETE("/pumps/:id", ctrl.DeletePump)
}
