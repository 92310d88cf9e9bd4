package models

import "github.com/google/uuid"

// Household roles. Role is an open string; these are the two the API assigns.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// HouseholdMember joins a user to a household with a role. The composite
// unique index is the source of truth for the one-membership-per-pair
// invariant; a race between two concurrent invites is resolved by the
// database rejecting the second insert.
type HouseholdMember struct {
	Base
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_user_household;not null" json:"user_id"`
	HouseholdID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_user_household;not null" json:"household_id"`
	Role        string    `gorm:"default:'member'" json:"role"`

	// Relationships
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Household *Household `gorm:"foreignKey:HouseholdID" json:"household,omitempty"`
}

func (HouseholdMember) TableName() string {
	return "household_members"
}
