package services

import (
	"gorm.io/gorm"

	"meansassess/internal/assessment"
	apperrors "meansassess/internal/errors"
	"meansassess/internal/models"
)

const msgDependantIncomeInvalid = "Dependant income receipts is invalid"

// dependantService handles dependant creation.
type dependantService struct {
	db *gorm.DB
}

// NewDependantService creates a new DependantServicer.
func NewDependantService(db *gorm.DB) DependantServicer {
	return &dependantService{db: db}
}

// CreateDependants records dependants and their income receipts. Nothing is
// written unless every dependant is valid.
func (s *dependantService) CreateDependants(assessmentID string, dependants []DependantInput) ([]models.Dependant, error) {
	if len(dependants) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing parameter dependants")
	}
	if err := validateDependants(dependants); err != nil {
		return nil, err
	}

	var created []models.Dependant
	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findAssessment(tx, assessmentID)
		if err != nil {
			return err
		}

		for i, in := range dependants {
			dep := models.Dependant{
				AssessmentID:        a.ID,
				Position:            i,
				DateOfBirth:         dateOnly(in.DateOfBirth),
				InFullTimeEducation: in.InFullTimeEducation,
			}
			for _, r := range in.Income {
				dep.IncomeReceipts = append(dep.IncomeReceipts, models.DependantIncomeReceipt{
					DateOfPayment: dateOnly(r.DateOfPayment),
					Amount:        r.Amount,
				})
			}
			if err := tx.Create(&dep).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			created = append(created, dep)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// validateDependants reports, per dependant, an invalid income collection
// before the individual date messages.
func validateDependants(dependants []DependantInput) error {
	var errs messages
	for _, d := range dependants {
		var receiptErrs messages
		for _, r := range d.Income {
			if inFuture(r.DateOfPayment) {
				receiptErrs.add(assessment.MsgDateOfPaymentInFuture)
			}
			if r.Amount.IsNegative() {
				receiptErrs.add(msgAmountNegative)
			}
			if tooPrecise(r.Amount) {
				receiptErrs.add(msgTooPrecise)
			}
		}
		if len(receiptErrs) > 0 {
			errs.add(msgDependantIncomeInvalid)
		}
		if inFuture(d.DateOfBirth) {
			errs.add(assessment.MsgDateOfBirthInFuture)
		}
		for _, msg := range receiptErrs {
			errs.add(msg)
		}
	}
	return errs.err()
}
