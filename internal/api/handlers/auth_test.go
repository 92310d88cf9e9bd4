package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emanueletoscanosoftware/fridly/internal/api/dto"
	"github.com/emanueletoscanosoftware/fridly/internal/api/handlers"
	"github.com/emanueletoscanosoftware/fridly/internal/api/middleware"
	"github.com/emanueletoscanosoftware/fridly/internal/auth"
	"github.com/emanueletoscanosoftware/fridly/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthTestRouter(t *testing.T) (*chi.Mux, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	jwtService := testutil.CreateTestJWTService()
	authService := auth.NewService(db, jwtService)
	handler := handlers.NewAuthHandler(authService)

	r := chi.NewRouter()
	r.Post("/api/auth/register", handler.Register)
	r.Post("/api/auth/login", handler.Login)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtService, authService))
		r.Get("/api/auth/me", handler.Me)
	})

	return r, db
}

func TestAuthHandler_Register(t *testing.T) {
	router, _ := setupAuthTestRouter(t)

	t.Run("successful registration", func(t *testing.T) {
		body := map[string]string{
			"email":    "newuser@example.com",
			"password": "securepassword123",
		}

		req := testutil.UnauthenticatedRequest(t, "POST", "/api/auth/register", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp dto.UserResponse
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "newuser@example.com", resp.Email)

		// The password hash must never appear in a response.
		assert.NotContains(t, rr.Body.String(), "password")
		assert.NotContains(t, rr.Body.String(), "hash")
	})

	t.Run("duplicate email", func(t *testing.T) {
		body := map[string]string{
			"email":    "duplicate@example.com",
			"password": "securepassword123",
		}

		req := testutil.UnauthenticatedRequest(t, "POST", "/api/auth/register", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code)

		// Second registration with same email
		req = testutil.UnauthenticatedRequest(t, "POST", "/api/auth/register", body)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp dto.ErrorResponse
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Equal(t, dto.CodeDuplicateEmail, resp.Code)
	})

	t.Run("missing email", func(t *testing.T) {
		body := map[string]string{"password": "securepassword123"}

		req := testutil.UnauthenticatedRequest(t, "POST", "/api/auth/register", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid email format", func(t *testing.T) {
		body := map[string]string{"email": "not-an-email", "password": "securepassword123"}

		req := testutil.UnauthenticatedRequest(t, "POST", "/api/auth/register", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("password too short", func(t *testing.T) {
		body := map[string]string{"email": "shortpw@example.com", "password": "short"}

		req := testutil.UnauthenticatedRequest(t, "POST", "/api/auth/register", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	router, _ := setupAuthTestRouter(t)

	registerBody := map[string]string{
		"email":    "logintest@example.com",
		"password": "securepassword123",
	}
	req := testutil.UnauthenticatedRequest(t, "POST", "/api/auth/register", registerBody)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("successful login", func(t *testing.T) {
		body := map[string]string{
			"email":    "logintest@example.com",
			"password": "securepassword123",
		}

		req := testutil.UnauthenticatedRequest(t, "POST", "/api/auth/login", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.TokenResponse
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("form login with username field", func(t *testing.T) {
		form := "username=logintest%40example.com&password=securepassword123"
		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.TokenResponse
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password and unknown email give byte-identical responses", func(t *testing.T) {
		wrongPw := map[string]string{"email": "logintest@example.com", "password": "wrongpassword"}
		req := testutil.UnauthenticatedRequest(t, "POST", "/api/auth/login", wrongPw)
		rrWrongPw := httptest.NewRecorder()
		router.ServeHTTP(rrWrongPw, req)

		noUser := map[string]string{"email": "nonexistent@example.com", "password": "anypassword"}
		req = testutil.UnauthenticatedRequest(t, "POST", "/api/auth/login", noUser)
		rrNoUser := httptest.NewRecorder()
		router.ServeHTTP(rrNoUser, req)

		assert.Equal(t, http.StatusBadRequest, rrWrongPw.Code)
		assert.Equal(t, rrWrongPw.Code, rrNoUser.Code)
		assert.Equal(t, rrWrongPw.Body.String(), rrNoUser.Body.String())
	})

	t.Run("missing password", func(t *testing.T) {
		body := map[string]string{"email": "logintest@example.com"}

		req := testutil.UnauthenticatedRequest(t, "POST", "/api/auth/login", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	router, db := setupAuthTestRouter(t)

	user := testutil.CreateTestUser(t, db, "me@example.com")
	token := testutil.GenerateTestToken(t, testutil.CreateTestJWTService(), user)

	t.Run("returns the token's identity", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, "GET", "/api/auth/me", nil, token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.UserResponse
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, "me@example.com", resp.Email)
	})

	t.Run("no token", func(t *testing.T) {
		req := testutil.UnauthenticatedRequest(t, "GET", "/api/auth/me", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
