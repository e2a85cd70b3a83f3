package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pump-inventory/internal/entities"
	"pump-inventory/internal/services"
	apperrors "pump-inventory/pkg/errors"
	"pump-inventory/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetInventory serves the inventory projection, as JSON by default or as an
// xlsx attachment with ?format=xlsx. The report is computed from the current
// list state at request time; nothing is stored.
func (ctrl *ReportController) GetInventory(c echo.Context) error {
	filter := entities.InventoryFilter{}
	if s := c.QueryParam("pump_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid pump_id"), ctrl.logger)
		}
		filter.PumpID = &id
	}

	rows, err := ctrl.reportService.GetInventory(c.Request().Context(), filter)
	if err != nil {
		ctrl.logger.Error("failed to build inventory report", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if strings.ToLower(c.QueryParam("format")) == "xlsx" {
		return ctrl.respondWithXLSX(c, rows)
	}
	return c.JSON(http.StatusOK, rows)
}

var inventoryHeaders = []string{
	"Pump", "Location", "Serial number", "Asset name", "Asset number",
	"Barcode", "Quantity", "Units", "Remarks",
}

func inventoryRowToSlice(row entities.InventoryRow) []interface{} {
	return []interface{}{
		row.PumpName, row.Location, row.SerialNumber, row.AssetName, row.AssetNumber,
		row.Barcode.String, row.Quantity, row.Units, row.Remarks.String,
	}
}

func (ctrl *ReportController) respondWithXLSX(c echo.Context, rows []entities.InventoryRow) error {
	f := excelize.NewFile()
	sheet := "Inventory"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &inventoryHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := inventoryRowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "B", 25)
	f.SetColWidth(sheet, "C", "E", 20)
	f.SetColWidth(sheet, "I", "I", 40)

	fileName := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
