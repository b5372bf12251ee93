package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "meansassess/internal/errors"
	"meansassess/internal/models"
	"meansassess/internal/uuid"
)

// findAssessment loads the bare assessment row. Unknown or malformed ids are
// reported as ErrAssessmentNotFound.
func findAssessment(db *gorm.DB, assessmentID string) (*models.Assessment, error) {
	if !uuid.IsValid(assessmentID) {
		return nil, apperrors.ErrAssessmentNotFound
	}

	var a models.Assessment
	if err := db.Where("id = ?", assessmentID).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssessmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &a, nil
}

// inFuture reports whether date falls after today (UTC, date only).
func inFuture(date time.Time) bool {
	return dateOnly(date).After(dateOnly(time.Now()))
}

// moneyPlaces is the scale of every stored amount. Finer inputs would be
// rounded by the database before any category total is taken.
const moneyPlaces = 2

const msgTooPrecise = "Amounts cannot have more than 2 decimal places"

func tooPrecise(amounts ...decimal.Decimal) bool {
	for _, d := range amounts {
		if !d.Equal(d.Round(moneyPlaces)) {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// messages collects user-facing validation messages in order, without duplicates.
type messages []string

func (m *messages) add(msg string) {
	for _, existing := range *m {
		if existing == msg {
			return
		}
	}
	*m = append(*m, msg)
}

func (m messages) err() error {
	if len(m) == 0 {
		return nil
	}
	return apperrors.WithDetails(apperrors.ErrValidationFailed, m, nil)
}
