package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pump-inventory/internal/repositories"
	"pump-inventory/internal/services"
	"pump-inventory/pkg/config"
	"pump-inventory/pkg/middleware"
)

// InitRouter wires repositories, services and controllers and registers every
// route under /api. Login and logout sit outside the session gate; everything
// else requires a live session.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")

	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	sessionRepo := repositories.NewSessionRepository(cacheRepo)

	userRepo := repositories.NewUserRepository(dbConn)
	pumpRepo := repositories.NewPumpRepository(dbConn)
	assetRepo := repositories.NewAssetRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)

	sessionService := services.NewSessionService(sessionRepo, cfg.Session.TTL, logger)
	authService := services.NewAuthService(userRepo, sessionService, cacheRepo, logger, &cfg.Auth)
	pumpService := services.NewPumpService(pumpRepo, assetRepo, txManager, logger)
	assetService := services.NewAssetService(assetRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)

	authMW := middleware.NewAuthMiddleware(sessionService, cfg.Session.CookieName, logger)
	secure := api.Group("", authMW.Auth)

	runAuthRouter(api, authService, sessionService, cfg.Session.CookieName, logger)
	runPumpRouter(secure, pumpService, logger)
	runAssetRouter(secure, assetService, logger)
	runReportRouter(secure, reportService, logger)
}
