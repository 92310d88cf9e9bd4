package models

type Household struct {
	Base
	Name string `gorm:"index;not null" json:"name"`

	// Relationships
	Members []HouseholdMember `gorm:"foreignKey:HouseholdID;constraint:OnDelete:CASCADE" json:"-"`
	Items   []InventoryItem   `gorm:"foreignKey:HouseholdID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Household) TableName() string {
	return "households"
}
