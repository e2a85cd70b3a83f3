package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pump-inventory/internal/controllers"
	"pump-inventory/internal/services"
)

func runAssetRouter(g *echo.Group, assetService services.AssetServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewAssetController(assetService, logger)

	g.GET("/assets/pump/:pumpId", ctrl.GetAssetsByPump)
	g.POST("/assets", ctrl.CreateAsset)
	g.PUT("/assets/:id", ctrl.UpdateAsset)
	g.DELETE("/assets/:id", ctrl.DeleteAsset)
}
