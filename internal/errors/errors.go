// Package errors provides custom error types for the means assessment API.
// Service-layer errors use AppError so that responses carry a stable code and
// user-facing messages without leaking internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional field-level details, and
// an optional internal error.
type AppError struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Details    []string `json:"details,omitempty"`
	StatusCode int      `json:"-"`
	Internal   error    `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Messages returns the user-facing messages for the error: the details when
// present, otherwise the single message.
func (e *AppError) Messages() []string {
	if len(e.Details) > 0 {
		return e.Details
	}
	return []string{e.Message}
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    sentinel.Details,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithDetails creates a new AppError carrying field-level messages.
func WithDetails(sentinel *AppError, details []string, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    details,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusUnprocessableEntity}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Assessment prerequisite errors.
var (
	ErrAssessmentNotFound = &AppError{Code: "ASSESSMENT_NOT_FOUND", Message: "No such assessment id", StatusCode: http.StatusUnprocessableEntity}
	ErrApplicantExists    = &AppError{Code: "APPLICANT_EXISTS", Message: "There is already an applicant for this assessment", StatusCode: http.StatusUnprocessableEntity}
	ErrApplicantMissing   = &AppError{Code: "APPLICANT_MISSING", Message: "No applicant for this assessment", StatusCode: http.StatusUnprocessableEntity}
)

// Assessment calculation errors.
var (
	ErrValidationFailed  = &AppError{Code: "VALIDATION_FAILED", Message: "Validation failed", StatusCode: http.StatusUnprocessableEntity}
	ErrThresholdNotFound = &AppError{Code: "THRESHOLD_NOT_FOUND", Message: "Threshold configuration missing for submission date", StatusCode: http.StatusInternalServerError}
)
