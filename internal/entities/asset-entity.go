package entities

import (
	"github.com/aarondl/null/v8"
)

type Asset struct {
	ID           uint64      `json:"id" db:"id"`
	PumpID       uint64      `json:"pump_id" db:"pump_id"`
	SerialNumber string      `json:"serial_number" db:"serial_number"`
	AssetName    string      `json:"asset_name" db:"asset_name"`
	AssetNumber  string      `json:"asset_number" db:"asset_number"`
	Barcode      null.String `json:"barcode" db:"barcode"`
	Quantity     int         `json:"quantity" db:"quantity"`
	Units        string      `json:"units" db:"units"`
	Remarks      null.String `json:"remarks" db:"remarks"`
}
