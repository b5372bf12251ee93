package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"meansassess/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date parses a YYYY-MM-DD date in UTC and fails the test on error.
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("invalid date %q: %v", s, err)
	}
	return d
}

// Decimal parses a decimal string and fails the test on error.
func Decimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// CreateTestAssessment creates an assessment submitted on the given date.
func CreateTestAssessment(t *testing.T, db *gorm.DB, submissionDate time.Time) *models.Assessment {
	t.Helper()

	a := &models.Assessment{
		ClientReferenceID:    fmt.Sprintf("ref-%d", nextID()),
		SubmissionDate:       submissionDate,
		MatterProceedingType: models.MatterProceedingTypeDomesticAbuse,
		AssessmentResult:     models.AssessmentResultPending,
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("failed to create test assessment: %v", err)
	}
	return a
}

// CreateTestApplicant creates the applicant of an assessment.
func CreateTestApplicant(t *testing.T, db *gorm.DB, assessmentID string, dateOfBirth time.Time, passported bool) *models.Applicant {
	t.Helper()

	applicant := &models.Applicant{
		AssessmentID:              assessmentID,
		DateOfBirth:               dateOfBirth,
		InvolvementType:           models.InvolvementTypeApplicant,
		ReceivesQualifyingBenefit: passported,
	}
	if err := db.Create(applicant).Error; err != nil {
		t.Fatalf("failed to create test applicant: %v", err)
	}
	return applicant
}

// CreateTestCapitalItem creates a liquid or non-liquid capital item.
func CreateTestCapitalItem(t *testing.T, db *gorm.DB, assessmentID string, kind models.CapitalItemType, value string) *models.CapitalItem {
	t.Helper()

	item := &models.CapitalItem{
		AssessmentID: assessmentID,
		Type:         kind,
		Description:  fmt.Sprintf("Test Item %d", nextID()),
		Value:        Decimal(t, value),
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test capital item: %v", err)
	}
	return item
}

// CreateTestProperty creates a wholly owned property.
func CreateTestProperty(t *testing.T, db *gorm.DB, assessmentID string, mainHome bool, value, mortgage string) *models.Property {
	t.Helper()

	p := &models.Property{
		AssessmentID:        assessmentID,
		MainHome:            mainHome,
		Value:               Decimal(t, value),
		OutstandingMortgage: Decimal(t, mortgage),
		PercentageOwned:     decimal.NewFromInt(100),
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to create test property: %v", err)
	}
	return p
}

// CreateTestVehicle creates a vehicle in regular use with no outstanding loan.
func CreateTestVehicle(t *testing.T, db *gorm.DB, assessmentID string, value string, purchased time.Time) *models.Vehicle {
	t.Helper()

	v := &models.Vehicle{
		AssessmentID:   assessmentID,
		Value:          Decimal(t, value),
		DateOfPurchase: purchased,
		InRegularUse:   true,
	}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("failed to create test vehicle: %v", err)
	}
	return v
}

// CreateTestIncomePayment creates one payment received by the applicant.
func CreateTestIncomePayment(t *testing.T, db *gorm.DB, assessmentID, source string, paid time.Time, amount string) *models.IncomePayment {
	t.Helper()

	p := &models.IncomePayment{
		AssessmentID: assessmentID,
		Source:       source,
		PaymentDate:  paid,
		Amount:       Decimal(t, amount),
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to create test income payment: %v", err)
	}
	return p
}

// CreateTestDependant creates a dependant with no income.
func CreateTestDependant(t *testing.T, db *gorm.DB, assessmentID string, dateOfBirth time.Time) *models.Dependant {
	t.Helper()

	d := &models.Dependant{
		AssessmentID: assessmentID,
		DateOfBirth:  dateOfBirth,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("failed to create test dependant: %v", err)
	}
	return d
}

// CreateTestEmployment creates a job with a single payslip. Net pay is derived
// from gross less tax and national insurance.
func CreateTestEmployment(t *testing.T, db *gorm.DB, assessmentID, name string, paid time.Time, gross, tax, ni string) *models.Employment {
	t.Helper()

	g, tx, n := Decimal(t, gross), Decimal(t, tax), Decimal(t, ni)
	e := &models.Employment{
		AssessmentID: assessmentID,
		Name:         name,
		Payments: []models.EmploymentPayment{{
			Date:                paid,
			Gross:               g,
			Tax:                 tx,
			NationalInsurance:   n,
			NetEmploymentIncome: g.Add(tx).Add(n),
		}},
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("failed to create test employment: %v", err)
	}
	return e
}

// CreateTestEmploymentPayment adds a payslip to an existing employment.
func CreateTestEmploymentPayment(t *testing.T, db *gorm.DB, employmentID string, paid time.Time, gross, tax, ni string) *models.EmploymentPayment {
	t.Helper()

	g, tx, n := Decimal(t, gross), Decimal(t, tax), Decimal(t, ni)
	p := &models.EmploymentPayment{
		EmploymentID:        employmentID,
		Date:                paid,
		Gross:               g,
		Tax:                 tx,
		NationalInsurance:   n,
		NetEmploymentIncome: g.Add(tx).Add(n),
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to create test employment payment: %v", err)
	}
	return p
}
