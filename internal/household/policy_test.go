package household_test

import (
	"testing"

	"github.com/emanueletoscanosoftware/fridly/internal/database/models"
	"github.com/emanueletoscanosoftware/fridly/internal/household"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	owner := &models.HouseholdMember{Role: models.RoleOwner}
	member := &models.HouseholdMember{Role: models.RoleMember}

	tests := []struct {
		name         string
		membership   *models.HouseholdMember
		requiredRole string
		want         household.Decision
	}{
		{"no membership, no role required", nil, "", household.NotAMember},
		{"no membership, owner required", nil, models.RoleOwner, household.NotAMember},
		{"member, read access", member, "", household.Allowed},
		{"owner, read access", owner, "", household.Allowed},
		{"owner, owner required", owner, models.RoleOwner, household.Allowed},
		{"member, owner required", member, models.RoleOwner, household.InsufficientRole},
		{"custom role, owner required", &models.HouseholdMember{Role: "guest"}, models.RoleOwner, household.InsufficientRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, household.Decide(tt.membership, tt.requiredRole))
		})
	}
}

func TestDecide_MembershipAbsenceBeatsRoleCheck(t *testing.T) {
	// A non-member must always see "not a member", never "insufficient
	// role" — the latter would reveal that the household exists.
	got := household.Decide(nil, models.RoleOwner)
	assert.Equal(t, household.NotAMember, got)
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "allowed", household.Allowed.String())
	assert.Equal(t, "not_a_member", household.NotAMember.String())
	assert.Equal(t, "insufficient_role", household.InsufficientRole.String())
}
