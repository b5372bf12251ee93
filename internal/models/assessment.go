package models

import "time"

// MatterProceedingType is the kind of legal matter the assessment is for.
type MatterProceedingType string

const (
	MatterProceedingTypeDomesticAbuse MatterProceedingType = "domestic_abuse"
)

// ParseMatterProceedingType accepts the stored spelling and the older
// space-separated one ("domestic abuse") still sent by some clients.
func ParseMatterProceedingType(s string) (MatterProceedingType, bool) {
	switch s {
	case "domestic_abuse", "domestic abuse":
		return MatterProceedingTypeDomesticAbuse, true
	}
	return "", false
}

// AssessmentResult mirrors the eligibility values written by an assessment run.
type AssessmentResult string

const (
	AssessmentResultPending              AssessmentResult = "pending"
	AssessmentResultEligible             AssessmentResult = "eligible"
	AssessmentResultContributionRequired AssessmentResult = "contribution_required"
	AssessmentResultIneligible           AssessmentResult = "ineligible"
)

// Assessment is the root of a means assessment. SubmissionDate is fixed at
// creation and every threshold is resolved against it.
type Assessment struct {
	Base
	ClientReferenceID    string               `json:"client_reference_id"`
	SubmissionDate       time.Time            `gorm:"not null" json:"submission_date"`
	MatterProceedingType MatterProceedingType `gorm:"not null" json:"matter_proceeding_type"`
	AssessmentResult     AssessmentResult     `gorm:"not null;default:'pending'" json:"assessment_result"`

	// Relationships
	Applicant               *Applicant               `gorm:"foreignKey:AssessmentID" json:"applicant,omitempty"`
	Dependants              []Dependant              `gorm:"foreignKey:AssessmentID" json:"dependants,omitempty"`
	CapitalItems            []CapitalItem            `gorm:"foreignKey:AssessmentID" json:"capital_items,omitempty"`
	Properties              []Property               `gorm:"foreignKey:AssessmentID" json:"properties,omitempty"`
	Vehicles                []Vehicle                `gorm:"foreignKey:AssessmentID" json:"vehicles,omitempty"`
	IncomePayments          []IncomePayment          `gorm:"foreignKey:AssessmentID" json:"income_payments,omitempty"`
	Outgoings               []Outgoing               `gorm:"foreignKey:AssessmentID" json:"outgoings,omitempty"`
	Employments             []Employment             `gorm:"foreignKey:AssessmentID" json:"employments,omitempty"`
	CapitalSummary          *CapitalSummary          `gorm:"foreignKey:AssessmentID" json:"capital_summary,omitempty"`
	DisposableIncomeSummary *DisposableIncomeSummary `gorm:"foreignKey:AssessmentID" json:"disposable_income_summary,omitempty"`
}
