package models

// Product is the shared catalog entry (e.g. "Pasta 500g"). Households
// reference it through inventory items; it has no tenant of its own.
type Product struct {
	Base
	EAN      *string `gorm:"uniqueIndex" json:"ean,omitempty"`
	Name     string  `gorm:"index;not null" json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Category string  `json:"category,omitempty"`

	// Relationships
	Items []InventoryItem `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
