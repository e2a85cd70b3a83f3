package entities

import (
	"github.com/aarondl/null/v8"
)

// InventoryRow is one line of the inventory report: an asset joined with its
// pump. Pure read-time projection, nothing is stored.
type InventoryRow struct {
	PumpID       uint64      `json:"pump_id"`
	PumpName     string      `json:"pump_name"`
	Location     string      `json:"location"`
	AssetID      uint64      `json:"asset_id"`
	SerialNumber string      `json:"serial_number"`
	AssetName    string      `json:"asset_name"`
	AssetNumber  string      `json:"asset_number"`
	Barcode      null.String `json:"barcode"`
	Quantity     int         `json:"quantity"`
	Units        string      `json:"units"`
	Remarks      null.String `json:"remarks"`
}

// InventoryFilter narrows the report; zero value means the whole inventory.
type InventoryFilter struct {
	PumpID *uint64
}
