package household

import "github.com/emanueletoscanosoftware/fridly/internal/database/models"

// Decision is the outcome of an access check against a household.
type Decision int

const (
	// Allowed means the actor may perform the action.
	Allowed Decision = iota
	// NotAMember means the actor holds no membership in the household.
	// Callers surface this as "not found": a household you do not belong to
	// is indistinguishable from one that does not exist.
	NotAMember
	// InsufficientRole means the actor is a member but lacks the required
	// role. This is surfaced as "forbidden" — the actor's own membership
	// already proves the household exists for them, so nothing leaks.
	InsufficientRole
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case NotAMember:
		return "not_a_member"
	case InsufficientRole:
		return "insufficient_role"
	default:
		return "unknown"
	}
}

// Decide evaluates the access policy for a membership lookup result.
// membership is nil when no (user, household) row exists. requiredRole is
// empty for read access; membership-mutating operations pass "owner".
func Decide(membership *models.HouseholdMember, requiredRole string) Decision {
	if membership == nil {
		return NotAMember
	}
	if requiredRole != "" && membership.Role != requiredRole {
		return InsufficientRole
	}
	return Allowed
}
