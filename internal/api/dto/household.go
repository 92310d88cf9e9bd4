package dto

import (
	"github.com/emanueletoscanosoftware/fridly/internal/api/validation"
	"github.com/emanueletoscanosoftware/fridly/internal/household"
)

type CreateHouseholdRequest struct {
	Name string `json:"name"`
}

func (r CreateHouseholdRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "Name is required"
	} else if len(r.Name) > 120 {
		errors["name"] = "Name must be at most 120 characters"
	}

	return errors
}

type InviteMemberRequest struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

func (r InviteMemberRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	} else if !validation.IsValidEmail(r.Email) {
		errors["email"] = "Email is not valid"
	}

	return errors
}

type MemberResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type HouseholdResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Members []MemberResponse `json:"members"`
}

// NewHouseholdResponse maps the service projection onto the wire shape.
func NewHouseholdResponse(hh *household.Household) HouseholdResponse {
	members := make([]MemberResponse, len(hh.Members))
	for i, m := range hh.Members {
		members[i] = MemberResponse{
			ID:    m.UserID.String(),
			Email: m.Email,
			Role:  m.Role,
		}
	}
	return HouseholdResponse{
		ID:      hh.ID.String(),
		Name:    hh.Name,
		Members: members,
	}
}
