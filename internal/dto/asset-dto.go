package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateAssetDTO struct {
	PumpID       uint64      `json:"pump_id" validate:"required"`
	SerialNumber string      `json:"serial_number" validate:"required"`
	AssetName    string      `json:"asset_name" validate:"required"`
	AssetNumber  string      `json:"asset_number" validate:"required"`
	Barcode      null.String `json:"barcode"`
	Quantity     int         `json:"quantity" validate:"required,min=1"`
	Units        string      `json:"units" validate:"required"`
	Remarks      null.String `json:"remarks"`
}

// UpdateAssetDTO carries the same fields minus pump_id: an asset never moves
// between pumps, it is deleted and recreated instead.
type UpdateAssetDTO struct {
	SerialNumber string      `json:"serial_number" validate:"required"`
	AssetName    string      `json:"asset_name" validate:"required"`
	AssetNumber  string      `json:"asset_number" validate:"required"`
	Barcode      null.String `json:"barcode"`
	Quantity     int         `json:"quantity" validate:"required,min=1"`
	Units        string      `json:"units" validate:"required"`
	Remarks      null.String `json:"remarks"`
}

type CreatedAssetDTO struct {
	ID uint64 `json:"id"`
}
