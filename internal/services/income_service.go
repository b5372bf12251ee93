package services

import (
	"gorm.io/gorm"

	"meansassess/internal/assessment"
	apperrors "meansassess/internal/errors"
	"meansassess/internal/models"
)

const msgAmountNegative = "Amount cannot be negative"

// incomeService records the applicant's income payments and regular outgoings.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome records payments received and payments made. Nothing is
// written unless every record is valid.
func (s *incomeService) CreateIncome(assessmentID string, payments []IncomePaymentInput, outgoings []OutgoingInput) (*IncomeRecords, error) {
	if len(payments) == 0 && len(outgoings) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing parameter income or outgoings")
	}

	var errs messages
	for _, p := range payments {
		if inFuture(p.PaymentDate) {
			errs.add(assessment.MsgDateOfPaymentInFuture)
		}
		if p.Amount.IsNegative() {
			errs.add(msgAmountNegative)
		}
		if tooPrecise(p.Amount) {
			errs.add(msgTooPrecise)
		}
	}
	for _, o := range outgoings {
		if inFuture(o.PaymentDate) {
			errs.add(assessment.MsgDateOfPaymentInFuture)
		}
		if o.Amount.IsNegative() {
			errs.add(msgAmountNegative)
		}
		if tooPrecise(o.Amount) {
			errs.add(msgTooPrecise)
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	records := &IncomeRecords{
		Payments:  []models.IncomePayment{},
		Outgoings: []models.Outgoing{},
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findAssessment(tx, assessmentID)
		if err != nil {
			return err
		}

		for _, p := range payments {
			records.Payments = append(records.Payments, models.IncomePayment{
				AssessmentID: a.ID,
				Source:       string(p.Source),
				PaymentDate:  dateOnly(p.PaymentDate),
				Amount:       p.Amount,
			})
		}
		for _, o := range outgoings {
			records.Outgoings = append(records.Outgoings, models.Outgoing{
				AssessmentID: a.ID,
				Type:         string(o.Type),
				PaymentDate:  dateOnly(o.PaymentDate),
				Amount:       o.Amount,
			})
		}

		if len(records.Payments) > 0 {
			if err := tx.Create(&records.Payments).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if len(records.Outgoings) > 0 {
			if err := tx.Create(&records.Outgoings).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
