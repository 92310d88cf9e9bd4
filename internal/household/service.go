package household

import (
	"context"
	"errors"

	"github.com/emanueletoscanosoftware/fridly/internal/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both a household that does not exist and one the
	// actor is not a member of; the two must stay indistinguishable.
	ErrNotFound = errors.New("household not found")
	// ErrForbidden means the actor is a member but lacks the required role.
	ErrForbidden     = errors.New("operation requires the owner role")
	ErrUserNotFound  = errors.New("no user registered with this email")
	ErrAlreadyMember = errors.New("user is already a member of this household")
)

// Member is one row of a household's materialized member list: the joined
// user identity plus the role carried by the membership. The user's password
// hash never crosses this boundary.
type Member struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// Household is the projection returned by every read operation.
type Household struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Members []Member  `json:"members"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create creates a household and its founding owner membership in one
// transaction: both exist together or not at all.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, name string) (*Household, error) {
	var hh models.Household
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hh = models.Household{Name: name}
		if err := tx.Create(&hh).Error; err != nil {
			return err
		}

		membership := models.HouseholdMember{
			UserID:      ownerID,
			HouseholdID: hh.ID,
			Role:        models.RoleOwner,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return nil, err
	}

	return s.project(ctx, &hh)
}

// List returns every household the user holds a membership in, each with its
// full member list.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Household, error) {
	var hhs []models.Household
	err := s.db.WithContext(ctx).
		Joins("JOIN household_members ON household_members.household_id = households.id").
		Where("household_members.user_id = ?", userID).
		Order("households.created_at ASC").
		Find(&hhs).Error
	if err != nil {
		return nil, err
	}

	out := make([]Household, 0, len(hhs))
	for i := range hhs {
		p, err := s.project(ctx, &hhs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// Get returns the household if the user is a member of it, ErrNotFound
// otherwise.
func (s *Service) Get(ctx context.Context, userID, householdID uuid.UUID) (*Household, error) {
	membership, err := s.membership(ctx, userID, householdID)
	if err != nil {
		return nil, err
	}
	if Decide(membership, "") != Allowed {
		return nil, ErrNotFound
	}

	var hh models.Household
	if err := s.db.WithContext(ctx).First(&hh, "id = ?", householdID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.project(ctx, &hh)
}

// Invite adds a registered user to the household by email. Only owners may
// invite; the invitee joins with the given role ("member" by default).
func (s *Service) Invite(ctx context.Context, actorID, householdID uuid.UUID, email, role string) (*Household, error) {
	actorMembership, err := s.membership(ctx, actorID, householdID)
	if err != nil {
		return nil, err
	}
	switch Decide(actorMembership, models.RoleOwner) {
	case NotAMember:
		return nil, ErrNotFound
	case InsufficientRole:
		return nil, ErrForbidden
	}

	var invitee models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&invitee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	existing, err := s.membership(ctx, invitee.ID, householdID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyMember
	}

	if role == "" {
		role = models.RoleMember
	}

	membership := models.HouseholdMember{
		UserID:      invitee.ID,
		HouseholdID: householdID,
		Role:        role,
	}
	if err := s.db.WithContext(ctx).Create(&membership).Error; err != nil {
		// Two concurrent invites for the same pair: the unique index on
		// (user_id, household_id) rejects the second insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyMember
		}
		return nil, err
	}

	return s.Get(ctx, actorID, householdID)
}

// membership fetches the (user, household) row, nil when absent.
func (s *Service) membership(ctx context.Context, userID, householdID uuid.UUID) (*models.HouseholdMember, error) {
	var m models.HouseholdMember
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND household_id = ?", userID, householdID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// fetchMembers materializes the member list with a single join; there is no
// lazy relation traversal anywhere in this package.
func (s *Service) fetchMembers(ctx context.Context, householdID uuid.UUID) ([]Member, error) {
	var members []Member
	err := s.db.WithContext(ctx).
		Table("household_members").
		Select("users.id AS user_id, users.email AS email, household_members.role AS role").
		Joins("JOIN users ON users.id = household_members.user_id").
		Where("household_members.household_id = ?", householdID).
		Order("household_members.created_at ASC").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (s *Service) project(ctx context.Context, hh *models.Household) (*Household, error) {
	members, err := s.fetchMembers(ctx, hh.ID)
	if err != nil {
		return nil, err
	}
	return &Household{
		ID:      hh.ID,
		Name:    hh.Name,
		Members: members,
	}, nil
}
