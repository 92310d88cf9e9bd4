package auth_test

import (
	"context"
	"testing"

	"github.com/emanueletoscanosoftware/fridly/internal/auth"
	"github.com/emanueletoscanosoftware/fridly/internal/database/models"
	"github.com/emanueletoscanosoftware/fridly/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *auth.Service {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return auth.NewService(db, testutil.CreateTestJWTService())
}

func TestService_Register(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("creates active user with hashed password", func(t *testing.T) {
		user, err := svc.Register(ctx, auth.RegisterInput{Email: "a@x.com", Password: "pw1pw1pw1"})
		require.NoError(t, err)

		assert.Equal(t, "a@x.com", user.Email)
		assert.True(t, user.IsActive)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "pw1pw1pw1", user.PasswordHash)
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		_, err := svc.Register(ctx, auth.RegisterInput{Email: "dup@x.com", Password: "password1"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, auth.RegisterInput{Email: "dup@x.com", Password: "password2"})
		assert.Equal(t, auth.ErrEmailTaken, err)
	})

	t.Run("email comparison is case-sensitive", func(t *testing.T) {
		_, err := svc.Register(ctx, auth.RegisterInput{Email: "case@x.com", Password: "password1"})
		require.NoError(t, err)

		// Stored as-is, no normalization: a different casing is a new account.
		_, err = svc.Register(ctx, auth.RegisterInput{Email: "Case@x.com", Password: "password1"})
		assert.NoError(t, err)
	})
}

func TestService_Login(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, auth.RegisterInput{Email: "login@x.com", Password: "rightpassword"})
	require.NoError(t, err)

	t.Run("valid credentials issue a bearer token", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginInput{Email: "login@x.com", Password: "rightpassword"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrongPw := svc.Login(ctx, auth.LoginInput{Email: "login@x.com", Password: "wrongpassword"})
		_, errNoUser := svc.Login(ctx, auth.LoginInput{Email: "ghost@x.com", Password: "anypassword"})

		assert.Equal(t, auth.ErrInvalidCredentials, errWrongPw)
		assert.Equal(t, auth.ErrInvalidCredentials, errNoUser)
	})

	t.Run("token resolves back to the same user", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginInput{Email: "login@x.com", Password: "rightpassword"})
		require.NoError(t, err)

		claims, err := testutil.CreateTestJWTService().ValidateToken(resp.AccessToken)
		require.NoError(t, err)

		id, err := claims.UserID()
		require.NoError(t, err)

		user, err := svc.GetUserByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "login@x.com", user.Email)
	})
}

func TestService_Login_InactiveUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := auth.NewService(db, testutil.CreateTestJWTService())
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, "inactive@x.com")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	_, err := svc.Login(ctx, auth.LoginInput{Email: "inactive@x.com", Password: "testpassword123"})
	assert.Equal(t, auth.ErrInactiveUser, err)
}

func TestService_GetUserByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, auth.RegisterInput{Email: "byid@x.com", Password: "password1"})
	require.NoError(t, err)

	t.Run("returns the user", func(t *testing.T) {
		got, err := svc.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetUserByID(ctx, uuid.New())
		assert.Equal(t, auth.ErrUserNotFound, err)
	})
}
