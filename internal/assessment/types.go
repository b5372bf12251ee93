// Package assessment holds the means assessment calculation core: category
// assessors, disregards and allowances, the disposable capital and disposable
// income workflows, and the outcome classifier. Everything here is pure
// arithmetic over an in-memory data graph; persistence lives in services.
package assessment

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Thresholds resolves named threshold values for a fixed date.
// threshold.Dated satisfies it.
type Thresholds interface {
	Value(name string) (decimal.Decimal, error)
}

// CapitalItem is a single liquid or non-liquid capital asset.
type CapitalItem struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// Property is a piece of real estate the applicant has an interest in.
// OwnershipFraction is the applicant's share, between 0 and 1.
type Property struct {
	ID                  string          `json:"id,omitempty"`
	Value               decimal.Decimal `json:"value"`
	OutstandingMortgage decimal.Decimal `json:"outstanding_mortgage"`
	OwnershipFraction   decimal.Decimal `json:"ownership_fraction"`
}

// Properties groups the main home with any additional properties.
type Properties struct {
	MainHome             *Property
	AdditionalProperties []Property
}

// Vehicle is a vehicle owned by the applicant.
type Vehicle struct {
	ID                    string          `json:"id,omitempty"`
	Value                 decimal.Decimal `json:"value"`
	LoanAmountOutstanding decimal.Decimal `json:"loan_amount_outstanding"`
	DateOfPurchase        time.Time       `json:"date_of_purchase"`
	InRegularUse          bool            `json:"in_regular_use"`
	UsedForMobility       bool            `json:"used_for_mobility"`
}

// Applicant carries the particulars the disregards depend on.
type Applicant struct {
	DateOfBirth               time.Time
	ReceivesQualifyingBenefit bool
}

// ValidationError collects business-rule violations found while assessing.
// Messages are user facing and returned verbatim to API clients.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// validation accumulates messages and turns them into a *ValidationError.
type validation struct {
	messages []string
}

func (v *validation) add(msg string) {
	for _, m := range v.messages {
		if m == msg {
			return
		}
	}
	v.messages = append(v.messages, msg)
}

func (v *validation) err() error {
	if len(v.messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: v.messages}
}

// Validation messages, shared with the component creation services.
const (
	MsgDateOfBirthInFuture    = "Date of birth cannot be in future"
	MsgDateOfPaymentInFuture  = "Date of payment cannot be in the future"
	MsgDateOfPurchaseInFuture = "Date of purchase cannot be in the future"
)

// ageAt returns whole years completed between dob and at.
func ageAt(dob, at time.Time) int {
	years := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		years--
	}
	return years
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func maxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
