package assessment

import (
	"time"

	"github.com/shopspring/decimal"

	"meansassess/internal/threshold"
)

// Dependant is a person financially dependent on the applicant.
type Dependant struct {
	DateOfBirth         time.Time
	InFullTimeEducation bool
	IncomeReceipts      []IncomeReceipt
}

// IncomeReceipt is a payment received by a dependant.
type IncomeReceipt struct {
	DateOfPayment time.Time
	Amount        decimal.Decimal
}

// PensionerCapitalDisregard returns the amount of capital disregarded for an
// applicant of pensionable age. It is zero for anyone younger; applicants on a
// qualifying benefit receive the passported amount.
func PensionerCapitalDisregard(applicant Applicant, submissionDate time.Time, th Thresholds) (decimal.Decimal, error) {
	if applicant.DateOfBirth.IsZero() {
		return decimal.Zero, nil
	}
	if day(applicant.DateOfBirth).After(day(submissionDate)) {
		return decimal.Zero, &ValidationError{Messages: []string{MsgDateOfBirthInFuture}}
	}

	minAge, err := th.Value(threshold.PensionerMinimumAge)
	if err != nil {
		return decimal.Zero, err
	}
	if int64(ageAt(applicant.DateOfBirth, submissionDate)) < minAge.IntPart() {
		return decimal.Zero, nil
	}

	if applicant.ReceivesQualifyingBenefit {
		return th.Value(threshold.PensionerDisregardPassported)
	}
	return th.Value(threshold.PensionerDisregardOther)
}

// DependantAllowance returns the monthly allowance for one dependant: the rate
// for their age band less their own monthly income, never below zero.
func DependantAllowance(dep Dependant, submissionDate time.Time, th Thresholds) (decimal.Decimal, error) {
	var v validation
	if day(dep.DateOfBirth).After(day(submissionDate)) {
		v.add(MsgDateOfBirthInFuture)
	}
	for _, r := range dep.IncomeReceipts {
		if day(r.DateOfPayment).After(day(submissionDate)) {
			v.add(MsgDateOfPaymentInFuture)
		}
	}
	if err := v.err(); err != nil {
		return decimal.Zero, err
	}

	rate, err := th.Value(dependantBand(dep, submissionDate))
	if err != nil {
		return decimal.Zero, err
	}

	income := decimal.Zero
	for _, r := range dep.IncomeReceipts {
		if inCalculationPeriod(r.DateOfPayment, submissionDate) {
			income = income.Add(r.Amount)
		}
	}
	income = income.Div(decimal.NewFromInt(calculationPeriodMonths))

	return maxZero(rate.Sub(income)).Round(2), nil
}

func dependantBand(dep Dependant, submissionDate time.Time) string {
	age := ageAt(dep.DateOfBirth, submissionDate)
	switch {
	case age < 16:
		return threshold.DependantChildUnder16
	case age < 18 || dep.InFullTimeEducation:
		return threshold.DependantChild16AndOver
	default:
		return threshold.DependantAdult
	}
}
