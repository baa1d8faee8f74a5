package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite is a bare reference to a smoothie. The descriptive fields a
// favorite exposes on the wire are never stored here; reads derive them
// by joining to the smoothies table.
type Favorite struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	SmoothieID uuid.UUID `gorm:"type:uuid;not null;index" json:"favorite_id"`
	Smoothie   Smoothie  `gorm:"foreignKey:SmoothieID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// FavoriteDetail is the read model for a favorite merged with its
// referenced smoothie.
type FavoriteDetail struct {
	ID         uuid.UUID `json:"id"`
	SmoothieID uuid.UUID `json:"favorite_id"`
	Title      string    `json:"title"`
	Fruit      string    `json:"fruit"`
	Vegetables string    `json:"vegetables"`
	NutsSeeds  string    `json:"nutsSeeds"`
	Liquids    string    `json:"liquids"`
	Powders    string    `json:"powders"`
	Sweetners  string    `json:"sweetners"`
	Other      string    `json:"other"`
}
