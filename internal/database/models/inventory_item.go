package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is a physical instance of a catalog product inside one
// household: how much, where it lives, when it expires.
type InventoryItem struct {
	Base
	HouseholdID uuid.UUID  `gorm:"type:uuid;index;not null" json:"household_id"`
	ProductID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"product_id"`
	Quantity    int        `gorm:"default:1" json:"quantity"`
	Unit        string     `gorm:"default:'pz'" json:"unit"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Location    string     `gorm:"default:'pantry'" json:"location"` // pantry, fridge, freezer

	// Relationships
	Product   *Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Household *Household `gorm:"foreignKey:HouseholdID" json:"household,omitempty"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
