package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomePayment is one payment received by the applicant.
type IncomePayment struct {
	Base
	AssessmentID string          `gorm:"type:uuid;not null;index" json:"assessment_id"`
	Source       string          `gorm:"not null" json:"source"`
	PaymentDate  time.Time       `gorm:"not null" json:"payment_date"`
	Amount       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
}

// Outgoing is one regular payment made by the applicant.
type Outgoing struct {
	Base
	AssessmentID string          `gorm:"type:uuid;not null;index" json:"assessment_id"`
	Type         string          `gorm:"not null" json:"type"`
	PaymentDate  time.Time       `gorm:"not null" json:"payment_date"`
	Amount       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
}
