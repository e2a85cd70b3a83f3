package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pump-inventory/internal/dto"
	"pump-inventory/internal/services"
	apperrors "pump-inventory/pkg/errors"
	"pump-inventory/pkg/utils"
)

type PumpController struct {
	pumpService services.PumpServiceInterface
	logger      *zap.Logger
}

func NewPumpController(pumpService services.PumpServiceInterface, logger *zap.Logger) *PumpController {
	return &PumpController{
		pumpService: pumpService,
		logger:      logger,
	}
}

func (ctrl *PumpController) GetPumps(c echo.Context) error {
	pumps, err := ctrl.pumpService.GetPumps(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("failed to list pumps", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, pumps)
}

func (ctrl *PumpController) CreatePump(c echo.Context) error {
	var payload dto.CreatePumpDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Missing fields"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Missing fields"), ctrl.logger)
	}

	pump, err := ctrl.pumpService.CreatePump(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, pump)
}

func (ctrl *PumpController) UpdatePump(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdatePumpDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Missing fields"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Missing fields"), ctrl.logger)
	}

	if err := ctrl.pumpService.UpdatePump(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.Ok(c)
}

func (ctrl *PumpController) DeletePump(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.pumpService.DeletePump(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.Ok(c)
}

func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("Invalid id")
	}
	return id, nil
}
