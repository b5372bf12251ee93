package services

import (
	"time"

	"github.com/shopspring/decimal"

	"meansassess/internal/assessment"
	"meansassess/internal/models"
	"meansassess/internal/pagination"
)

// AssessmentServicer defines the contract for creating, listing and running assessments.
type AssessmentServicer interface {
	CreateAssessment(clientReferenceID string, submissionDate time.Time, matterProceedingType models.MatterProceedingType) (*models.Assessment, error)
	GetAssessments(page pagination.PageRequest) (*pagination.PageResponse[models.Assessment], error)
	GetAssessmentByID(assessmentID string) (*models.Assessment, error)
	RunAssessment(assessmentID string) (*AssessmentResult, error)
}

// AssessmentResult is what an assessment run persisted, plus the full
// calculation report it was derived from.
type AssessmentResult struct {
	Assessment *models.Assessment `json:"assessment"`
	Report     assessment.Report  `json:"report"`
}

// ApplicantInput carries the particulars of the applicant being assessed.
type ApplicantInput struct {
	DateOfBirth               time.Time
	InvolvementType           models.InvolvementType
	HasPartnerOpponent        bool
	ReceivesQualifyingBenefit bool
}

// ApplicantServicer defines the contract for attaching an applicant to an assessment.
type ApplicantServicer interface {
	CreateApplicant(assessmentID string, in ApplicantInput) (*models.Applicant, error)
}

// DependantIncomeInput is one payment received by a dependant.
type DependantIncomeInput struct {
	DateOfPayment time.Time
	Amount        decimal.Decimal
}

// DependantInput describes one dependant and any income they receive.
type DependantInput struct {
	DateOfBirth         time.Time
	InFullTimeEducation bool
	Income              []DependantIncomeInput
}

// DependantServicer defines the contract for attaching dependants to an assessment.
type DependantServicer interface {
	CreateDependants(assessmentID string, dependants []DependantInput) ([]models.Dependant, error)
}

// CapitalItemInput is a liquid or non-liquid asset.
type CapitalItemInput struct {
	Description string
	Value       decimal.Decimal
}

// PropertyInput describes one property. PercentageOwned is between 0 and 100.
type PropertyInput struct {
	Value               decimal.Decimal
	OutstandingMortgage decimal.Decimal
	PercentageOwned     decimal.Decimal
}

// VehicleInput describes one vehicle.
type VehicleInput struct {
	Value                 decimal.Decimal
	LoanAmountOutstanding decimal.Decimal
	DateOfPurchase        time.Time
	InRegularUse          bool
	UsedForMobility       bool
}

// CapitalServicer defines the contract for recording an applicant's capital.
type CapitalServicer interface {
	CreateCapitals(assessmentID string, liquid, nonLiquid []CapitalItemInput) ([]models.CapitalItem, error)
	CreateProperties(assessmentID string, mainHome *PropertyInput, additional []PropertyInput) ([]models.Property, error)
	CreateVehicles(assessmentID string, vehicles []VehicleInput) ([]models.Vehicle, error)
}

// IncomePaymentInput is one payment received by the applicant.
type IncomePaymentInput struct {
	Source      assessment.IncomeSource
	PaymentDate time.Time
	Amount      decimal.Decimal
}

// OutgoingInput is one payment made by the applicant.
type OutgoingInput struct {
	Type        assessment.OutgoingType
	PaymentDate time.Time
	Amount      decimal.Decimal
}

// IncomeRecords is everything created by one income submission.
type IncomeRecords struct {
	Payments  []models.IncomePayment `json:"income_payments"`
	Outgoings []models.Outgoing      `json:"outgoings"`
}

// IncomeServicer defines the contract for recording an applicant's income and outgoings.
type IncomeServicer interface {
	CreateIncome(assessmentID string, payments []IncomePaymentInput, outgoings []OutgoingInput) (*IncomeRecords, error)
}

// EmploymentPaymentInput is one payslip. Tax and NationalInsurance are
// deductions and arrive as zero or negative amounts.
type EmploymentPaymentInput struct {
	Date                time.Time
	Gross               decimal.Decimal
	BenefitsInKind      decimal.Decimal
	Tax                 decimal.Decimal
	NationalInsurance   decimal.Decimal
	NetEmploymentIncome decimal.Decimal
}

// EmploymentInput is one employment and its payslips.
type EmploymentInput struct {
	Name     string
	Payments []EmploymentPaymentInput
}

// EmploymentServicer defines the contract for recording an applicant's employments.
type EmploymentServicer interface {
	CreateEmployments(assessmentID string, employments []EmploymentInput) ([]models.Employment, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
