package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dependant is a person financially dependent on the applicant.
type Dependant struct {
	Base
	AssessmentID        string                   `gorm:"type:uuid;not null;index" json:"assessment_id"`
	Position            int                      `gorm:"not null;default:0" json:"-"`
	DateOfBirth         time.Time                `gorm:"not null" json:"date_of_birth"`
	InFullTimeEducation bool                     `gorm:"not null;default:false" json:"in_full_time_education"`
	IncomeReceipts      []DependantIncomeReceipt `gorm:"foreignKey:DependantID" json:"income,omitempty"`
}

// DependantIncomeReceipt is a payment received by a dependant.
type DependantIncomeReceipt struct {
	Base
	DependantID   string          `gorm:"type:uuid;not null;index" json:"dependant_id"`
	DateOfPayment time.Time       `gorm:"not null" json:"date_of_payment"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
}
