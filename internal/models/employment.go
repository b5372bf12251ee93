package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employment is one of the applicant's jobs.
type Employment struct {
	Base
	AssessmentID string              `gorm:"type:uuid;not null;index" json:"assessment_id"`
	Position     int                 `gorm:"not null;default:0" json:"-"`
	Name         string              `gorm:"not null" json:"name"`
	Payments     []EmploymentPayment `gorm:"foreignKey:EmploymentID" json:"payments"`
}

// EmploymentPayment is one payslip. Tax and national insurance are stored as
// the negative amounts shown on the payslip.
type EmploymentPayment struct {
	Base
	EmploymentID        string          `gorm:"type:uuid;not null;index" json:"employment_id"`
	Date                time.Time       `gorm:"not null" json:"date"`
	Gross               decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"gross"`
	BenefitsInKind      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"benefits_in_kind"`
	Tax                 decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"tax"`
	NationalInsurance   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"national_insurance"`
	NetEmploymentIncome decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"net_employment_income"`
}
