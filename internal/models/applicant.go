package models

import "time"

// InvolvementType is the applicant's role in the proceedings.
type InvolvementType string

const (
	InvolvementTypeApplicant InvolvementType = "applicant"
)

// Applicant is the person being assessed. An assessment has at most one.
type Applicant struct {
	Base
	AssessmentID              string          `gorm:"type:uuid;not null;uniqueIndex" json:"assessment_id"`
	DateOfBirth               time.Time       `gorm:"not null" json:"date_of_birth"`
	InvolvementType           InvolvementType `gorm:"not null" json:"involvement_type"`
	HasPartnerOpponent        bool            `gorm:"not null;default:false" json:"has_partner_opponent"`
	ReceivesQualifyingBenefit bool            `gorm:"not null;default:false" json:"receives_qualifying_benefit"`
}
