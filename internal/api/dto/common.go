package dto

// ErrorResponse is the uniform error body. Code is a stable machine-readable
// identifier; Error is the human message; Details carries per-field
// validation messages when present.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Stable error codes exposed to clients.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationFailed   = "validation_failed"
	CodeDuplicateEmail     = "duplicate_email"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUnauthorized       = "unauthorized"
	CodeHouseholdNotFound  = "household_not_found"
	CodeInsufficientRole   = "insufficient_role"
	CodeUserNotFound       = "user_not_found"
	CodeAlreadyMember      = "already_member"
	CodeInternal           = "internal_error"
)

type SuccessResponse struct {
	Message string `json:"message"`
}
