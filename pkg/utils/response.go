package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "pump-inventory/pkg/errors"
)

// MessageResponse is the error body of every failed request: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// OkResponse is the body of mutations that have nothing else to report.
type OkResponse struct {
	OK bool `json:"ok"`
}

var sentinelCodes = map[error]int{
	apperrors.ErrInvalidCredentials: http.StatusUnauthorized,
	apperrors.ErrUnauthorized:       http.StatusUnauthorized,
	apperrors.ErrSessionNotFound:    http.StatusUnauthorized,
	apperrors.ErrNotFound:           http.StatusNotFound,
	apperrors.ErrBadRequest:         http.StatusBadRequest,
}

var sentinelMessages = map[error]string{
	apperrors.ErrInvalidCredentials: "Invalid credentials",
	apperrors.ErrUnauthorized:       "Unauthorized",
	apperrors.ErrSessionNotFound:    "Unauthorized",
	apperrors.ErrNotFound:           "Not found",
	apperrors.ErrBadRequest:         "Bad request",
}

// Ok responds with {"ok": true}.
func Ok(c echo.Context) error {
	return c.JSON(http.StatusOK, OkResponse{OK: true})
}

// ErrorResponse maps a service-layer failure to a status code and a
// {"message": ...} body. Internal causes are logged, never sent to the client.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("http error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		return c.JSON(httpErr.Code, MessageResponse{Message: httpErr.Message})
	}

	for sentinel, code := range sentinelCodes {
		if errors.Is(err, sentinel) {
			return c.JSON(code, MessageResponse{Message: sentinelMessages[sentinel]})
		}
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Missing fields"})
	}

	logger.Error("unexpected error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
}
