package entities

type Pump struct {
	ID       uint64 `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Location string `json:"location" db:"location"`
	Manager  string `json:"manager" db:"manager"`

	// Derived aggregate, computed at read time. Never stored.
	AssetCount uint64 `json:"asset_count"`
}
