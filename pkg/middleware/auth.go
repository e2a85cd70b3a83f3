package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pump-inventory/internal/services"
	"pump-inventory/pkg/contextkeys"
	apperrors "pump-inventory/pkg/errors"
	"pump-inventory/pkg/utils"
)

// AuthMiddleware is the session gate. Every route registered behind it must
// carry a cookie that resolves to a live session; the request is rejected with
// 401 before any body processing otherwise. Login and logout are registered
// outside the gated group and bypass it.
type AuthMiddleware struct {
	sessions   services.SessionServiceInterface
	cookieName string
	logger     *zap.Logger
}

func NewAuthMiddleware(sessions services.SessionServiceInterface, cookieName string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		userID, err := m.sessions.Resolve(c.Request().Context(), cookie.Value)
		if err != nil {
			m.logger.Warn("request with invalid session", zap.String("path", c.Path()))
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
		ctx = context.WithValue(ctx, contextkeys.SessionTokenKey, cookie.Value)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
