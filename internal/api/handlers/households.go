package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emanueletoscanosoftware/fridly/internal/api/dto"
	"github.com/emanueletoscanosoftware/fridly/internal/api/middleware"
	"github.com/emanueletoscanosoftware/fridly/internal/household"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type HouseholdHandler struct {
	households *household.Service
}

func NewHouseholdHandler(households *household.Service) *HouseholdHandler {
	return &HouseholdHandler{households: households}
}

// List handles GET /api/households
func (h *HouseholdHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	hhs, err := h.households.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list households", Code: dto.CodeInternal})
		return
	}

	response := make([]dto.HouseholdResponse, len(hhs))
	for i := range hhs {
		response[i] = dto.NewHouseholdResponse(&hhs[i])
	}

	writeJSON(w, http.StatusOK, response)
}

// Create handles POST /api/households
func (h *HouseholdHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req dto.CreateHouseholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Code: dto.CodeInvalidRequest})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Code: dto.CodeValidationFailed, Details: errs})
		return
	}

	hh, err := h.households.Create(r.Context(), userID, req.Name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create household", Code: dto.CodeInternal})
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewHouseholdResponse(hh))
}

// Get handles GET /api/households/{id}
func (h *HouseholdHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	householdID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// An unparseable id names no household the caller can see.
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Household not found", Code: dto.CodeHouseholdNotFound})
		return
	}

	hh, err := h.households.Get(r.Context(), userID, householdID)
	if err != nil {
		if errors.Is(err, household.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Household not found", Code: dto.CodeHouseholdNotFound})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get household", Code: dto.CodeInternal})
		return
	}

	writeJSON(w, http.StatusOK, dto.NewHouseholdResponse(hh))
}

// Invite handles POST /api/households/{id}/members
func (h *HouseholdHandler) Invite(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	householdID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Household not found", Code: dto.CodeHouseholdNotFound})
		return
	}

	var req dto.InviteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Code: dto.CodeInvalidRequest})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Code: dto.CodeValidationFailed, Details: errs})
		return
	}

	hh, err := h.households.Invite(r.Context(), userID, householdID, req.Email, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, household.ErrNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Household not found", Code: dto.CodeHouseholdNotFound})
		case errors.Is(err, household.ErrForbidden):
			writeJSON(w, http.StatusForbidden, dto.ErrorResponse{Error: "Only the owner can add members", Code: dto.CodeInsufficientRole})
		case errors.Is(err, household.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "No user with this email", Code: dto.CodeUserNotFound})
		case errors.Is(err, household.ErrAlreadyMember):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "User is already a member", Code: dto.CodeAlreadyMember})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to add member", Code: dto.CodeInternal})
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.NewHouseholdResponse(hh))
}
