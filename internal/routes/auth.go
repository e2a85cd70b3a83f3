package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pump-inventory/internal/controllers"
	"pump-inventory/internal/services"
)

func runAuthRouter(
	g *echo.Group,
	authService services.AuthServiceInterface,
	sessionService services.SessionServiceInterface,
	cookieName string,
	logger *zap.Logger,
) {
	ctrl := controllers.NewAuthController(authService, sessionService, cookieName, logger)

	g.POST("/login", ctrl.Login)
	g.POST("/logout", ctrl.Logout)
}
