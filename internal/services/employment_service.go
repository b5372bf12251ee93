package services

import (
	"strings"

	"gorm.io/gorm"

	"meansassess/internal/assessment"
	apperrors "meansassess/internal/errors"
	"meansassess/internal/models"
)

const (
	msgNameMissing         = "Missing parameter name"
	msgTaxPositive         = "Tax cannot be positive"
	msgNationalInsPositive = "National insurance cannot be positive"
)

// employmentService records the applicant's employments and payslips.
type employmentService struct {
	db *gorm.DB
}

// NewEmploymentService creates a new EmploymentServicer.
func NewEmploymentService(db *gorm.DB) EmploymentServicer {
	return &employmentService{db: db}
}

// CreateEmployments records each employment with its payslips. A single
// invalid employment rejects the whole submission.
func (s *employmentService) CreateEmployments(assessmentID string, employments []EmploymentInput) ([]models.Employment, error) {
	if len(employments) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing parameter employment_income")
	}
	if err := validateEmployments(employments); err != nil {
		return nil, err
	}

	var created []models.Employment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findAssessment(tx, assessmentID)
		if err != nil {
			return err
		}

		for i, in := range employments {
			emp := models.Employment{
				AssessmentID: a.ID,
				Position:     i,
				Name:         strings.TrimSpace(in.Name),
			}
			for _, p := range in.Payments {
				emp.Payments = append(emp.Payments, models.EmploymentPayment{
					Date:                dateOnly(p.Date),
					Gross:               p.Gross,
					BenefitsInKind:      p.BenefitsInKind,
					Tax:                 p.Tax,
					NationalInsurance:   p.NationalInsurance,
					NetEmploymentIncome: p.NetEmploymentIncome,
				})
			}
			if err := tx.Create(&emp).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			created = append(created, emp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func validateEmployments(employments []EmploymentInput) error {
	var errs messages
	for _, e := range employments {
		if strings.TrimSpace(e.Name) == "" {
			errs.add(msgNameMissing)
		}
		for _, p := range e.Payments {
			if inFuture(p.Date) {
				errs.add(assessment.MsgDateOfPaymentInFuture)
			}
			if p.Gross.IsNegative() || p.BenefitsInKind.IsNegative() {
				errs.add(msgAmountNegative)
			}
			if p.Tax.IsPositive() {
				errs.add(msgTaxPositive)
			}
			if p.NationalInsurance.IsPositive() {
				errs.add(msgNationalInsPositive)
			}
			if tooPrecise(p.Gross, p.BenefitsInKind, p.Tax, p.NationalInsurance, p.NetEmploymentIncome) {
				errs.add(msgTooPrecise)
			}
		}
	}
	return errs.err()
}
