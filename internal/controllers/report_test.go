package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pump-inventory/internal/entities"
	"pump-inventory/internal/services"
)

type stubReportRepo struct{ rows []entities.InventoryRow }

func (r *stubReportRepo) GetInventory(ctx context.Context, filter entities.InventoryFilter) ([]entities.InventoryRow, error) {
	if filter.PumpID == nil {
		return r.rows, nil
	}
	out := make([]entities.InventoryRow, 0)
	for _, row := range r.rows {
		if row.PumpID == *filter.PumpID {
			out = append(out, row)
		}
	}
	return out, nil
}

func newReportEcho(rows []entities.InventoryRow) *echo.Echo {
	svc := services.NewReportService(&stubReportRepo{rows: rows}, zap.NewNop())
	ctrl := NewReportController(svc, zap.NewNop())

	e := echo.New()
	e.GET("/api/reports/inventory", ctrl.GetInventory)
	return e
}

func sampleInventory() []entities.InventoryRow {
	return []entities.InventoryRow{
		{
			PumpID: 1, PumpName: "Station 1", Location: "North Rd",
			AssetID: 10, SerialNumber: "SN-10", AssetName: "Dispenser", AssetNumber: "D-1",
			Barcode: null.StringFrom("4607001234567"), Quantity: 1, Units: "pcs",
		},
		{
			PumpID: 2, PumpName: "Station 2", Location: "South Rd",
			AssetID: 11, SerialNumber: "SN-11", AssetName: "Nozzle", AssetNumber: "N-1",
			Quantity: 4, Units: "pcs", Remarks: null.StringFrom("spare set"),
		},
	}
}

func TestReport_InventoryJSON(t *testing.T) {
	e := newReportEcho(sampleInventory())

	req := httptest.NewRequest(http.MethodGet, "/api/reports/inventory", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []entities.InventoryRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Station 1", rows[0].PumpName)
}

func TestReport_InventoryPumpFilter(t *testing.T) {
	e := newReportEcho(sampleInventory())

	req := httptest.NewRequest(http.MethodGet, "/api/reports/inventory?pump_id=2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []entities.InventoryRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, uint64(2), rows[0].PumpID)
}

func TestReport_InventoryInvalidPumpFilter(t *testing.T) {
	e := newReportEcho(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/inventory?pump_id=abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid pump_id"}`, rec.Body.String())
}

func TestReport_InventoryXLSX(t *testing.T) {
	e := newReportEcho(sampleInventory())

	req := httptest.NewRequest(http.MethodGet, "/api/reports/inventory?format=xlsx", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=inventory_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	sheetRows, err := f.GetRows("Inventory")
	require.NoError(t, err)
	require.Len(t, sheetRows, 3)

	assert.Equal(t, "Pump", sheetRows[0][0])
	assert.Equal(t, "Station 1", sheetRows[1][0])
	assert.Equal(t, "SN-11", sheetRows[2][2])
}
