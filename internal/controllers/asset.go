package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pump-inventory/internal/dto"
	"pump-inventory/internal/services"
	apperrors "pump-inventory/pkg/errors"
	"pump-inventory/pkg/utils"
)

type AssetController struct {
	assetService services.AssetServiceInterface
	logger       *zap.Logger
}

func NewAssetController(assetService services.AssetServiceInterface, logger *zap.Logger) *AssetController {
	return &AssetController{
		assetService: assetService,
		logger:       logger,
	}
}

func (ctrl *AssetController) GetAssetsByPump(c echo.Context) error {
	pumpID, err := parseID(c, "pumpId")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	assets, err := ctrl.assetService.GetAssetsByPump(c.Request().Context(), pumpID)
	if err != nil {
		ctrl.logger.Error("failed to list assets", zap.Uint64("pumpID", pumpID), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, assets)
}

func (ctrl *AssetController) CreateAsset(c echo.Context) error {
	var payload dto.CreateAssetDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Missing fields"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	id, err := ctrl.assetService.CreateAsset(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, dto.CreatedAssetDTO{ID: id})
}

func (ctrl *AssetController) UpdateAsset(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateAssetDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Missing fields"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.assetService.UpdateAsset(c.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.Ok(c)
}

func (ctrl *AssetController) DeleteAsset(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.assetService.DeleteAsset(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.Ok(c)
}
