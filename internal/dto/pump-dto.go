package dto

type CreatePumpDTO struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Manager  string `json:"manager" validate:"required"`
}

// UpdatePumpDTO is a full overwrite of the three mutable fields. There are no
// partial-patch semantics; last writer wins.
type UpdatePumpDTO struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Manager  string `json:"manager" validate:"required"`
}
