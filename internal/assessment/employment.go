package assessment

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentPayment is one payslip. Tax and NationalInsurance are recorded as
// deductions, so they are zero or negative.
type EmploymentPayment struct {
	Date                time.Time
	Gross               decimal.Decimal
	BenefitsInKind      decimal.Decimal
	Tax                 decimal.Decimal
	NationalInsurance   decimal.Decimal
	NetEmploymentIncome decimal.Decimal
}

// Employment is one of the applicant's jobs.
type Employment struct {
	Name     string
	Payments []EmploymentPayment
}

// employmentIncome returns the monthly gross pay including benefits in kind,
// and the monthly tax and national insurance deducted from it as a positive
// amount.
func employmentIncome(employments []Employment, submissionDate time.Time) (gross, deductions decimal.Decimal) {
	gross, deductions = decimal.Zero, decimal.Zero
	for _, e := range employments {
		for _, p := range e.Payments {
			if !inCalculationPeriod(p.Date, submissionDate) {
				continue
			}
			gross = gross.Add(p.Gross).Add(p.BenefitsInKind)
			deductions = deductions.Sub(p.Tax).Sub(p.NationalInsurance)
		}
	}
	return monthly(gross), monthly(deductions)
}

func employed(in IncomeInput) bool {
	for _, e := range in.Employments {
		for _, p := range e.Payments {
			if inCalculationPeriod(p.Date, in.SubmissionDate) {
				return true
			}
		}
	}
	return !sumPayments(in.Payments, IncomeSourceEmployment, in.SubmissionDate).IsZero()
}
