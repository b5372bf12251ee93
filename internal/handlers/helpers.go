package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "meansassess/internal/errors"
	"meansassess/internal/logger"
)

const dateLayout = "2006-01-02"

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Errors lists every
// user-facing message; Error carries the machine-readable code.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Errors  []string    `json:"errors"`
	Error   ErrorDetail `json:"error"`
}

// ObjectsResponse represents a successful response carrying created or
// fetched objects.
type ObjectsResponse struct {
	Success bool     `json:"success"`
	Objects any      `json:"objects"`
	Errors  []string `json:"errors"`
}

func respondWithObjects(c *gin.Context, objects any) {
	c.JSON(http.StatusOK, ObjectsResponse{Success: true, Objects: objects, Errors: []string{}})
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and messages. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{
			Success: false,
			Errors:  appErr.Messages(),
			Error:   ErrorDetail{Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Success: false,
		Errors:  []string{apperrors.ErrInternalServer.Message},
		Error:   ErrorDetail{Code: apperrors.ErrInternalServer.Code, Message: apperrors.ErrInternalServer.Message},
	})
}

// bindingError turns a request binding failure into an INVALID_INPUT error
// with one message per offending field.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.WithDetails(apperrors.ErrInvalidInput, []string{err.Error()}, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return apperrors.WithDetails(apperrors.ErrInvalidInput, msgs, nil)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing parameter " + fe.Field()
	case "datetime":
		return fmt.Sprintf("Invalid parameter '%s' value %q: must be a date (YYYY-MM-DD)", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("Invalid parameter '%s' value %q", fe.Field(), fmt.Sprint(fe.Value()))
	}
}

// parseDate parses a YYYY-MM-DD date already checked by the binding layer.
func parseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.WithDetails(apperrors.ErrInvalidInput,
			[]string{fmt.Sprintf("Invalid parameter '%s' value %q: must be a date (YYYY-MM-DD)", field, value)}, nil)
	}
	return d, nil
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

func decimalValue(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
