package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Smoothie is a stored recipe. Only the title is mandatory; the
// ingredient fields are free-form text. Values are persisted exactly as
// received and sanitized on the way out, never at rest.
type Smoothie struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Title      string    `gorm:"type:text;not null" json:"title"`
	Fruit      string    `gorm:"type:text" json:"fruit"`
	Vegetables string    `gorm:"type:text" json:"vegetables"`
	NutsSeeds  string    `gorm:"type:text" json:"nutsSeeds"`
	Liquids    string    `gorm:"type:text" json:"liquids"`
	Powders    string    `gorm:"type:text" json:"powders"`
	Sweetners  string    `gorm:"type:text" json:"sweetners"`
	Other      string    `gorm:"type:text" json:"other"`
}

func (Smoothie) TableName() string {
	return "smoothies"
}

// BeforeCreate assigns the ID in the application so the model works on
// stores without a uuid-generating default (the in-memory test store).
func (s *Smoothie) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
