package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pump-inventory/internal/dto"
	"pump-inventory/internal/services"
	apperrors "pump-inventory/pkg/errors"
	"pump-inventory/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	sessions    services.SessionServiceInterface
	cookieName  string
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	sessions services.SessionServiceInterface,
	cookieName string,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		cookieName:  cookieName,
		logger:      logger,
	}
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO

	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Missing credentials"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Missing credentials"), ctrl.logger)
	}

	token, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	c.SetCookie(&http.Cookie{
		Name:     ctrl.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ctrl.sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return utils.Ok(c)
}

// Logout destroys the session if one is presented. It always answers
// {"ok":true}: logging out without a live session is not an error.
func (ctrl *AuthController) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(ctrl.cookieName); err == nil && cookie.Value != "" {
		if err := ctrl.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			ctrl.logger.Error("failed to destroy session", zap.Error(err))
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     ctrl.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return utils.Ok(c)
}
