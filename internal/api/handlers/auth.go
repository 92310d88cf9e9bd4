package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/emanueletoscanosoftware/fridly/internal/api/dto"
	"github.com/emanueletoscanosoftware/fridly/internal/api/middleware"
	"github.com/emanueletoscanosoftware/fridly/internal/auth"
)

type AuthHandler struct {
	authService *auth.Service
}

func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Code: dto.CodeInvalidRequest})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Code: dto.CodeValidationFailed, Details: errs})
		return
	}

	user, err := h.authService.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Email already registered", Code: dto.CodeDuplicateEmail})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Registration failed", Code: dto.CodeInternal})
		return
	}

	writeJSON(w, http.StatusCreated, dto.UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}

// Login handles POST /api/auth/login. It accepts either a JSON body
// {email, password} or an OAuth2-style form {username, password}.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Code: dto.CodeInvalidRequest})
			return
		}
		req.Email = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Code: dto.CodeInvalidRequest})
			return
		}
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Code: dto.CodeValidationFailed, Details: errs})
		return
	}

	resp, err := h.authService.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrInactiveUser) {
			// Unknown email, wrong password, and inactive account all produce
			// the same response; nothing in the body hints at which.
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid credentials", Code: dto.CodeInvalidCredentials})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Login failed", Code: dto.CodeInternal})
		return
	}

	writeJSON(w, http.StatusOK, dto.TokenResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
	})
}

// Me handles GET /api/auth/me, returning the identity resolved from the
// bearer token by the auth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.UserResponse{
		ID:    middleware.GetUserID(r.Context()).String(),
		Email: middleware.GetUserEmail(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
