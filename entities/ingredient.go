package entities

import (
	"github.com/google/uuid"
)

// Ingredient names are deliberately not unique: the catalog may carry the
// same name with different measurement units.
type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `gorm:"index" json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`

	Timestamp
}
