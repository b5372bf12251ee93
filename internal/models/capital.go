package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapitalItemType separates bank balances from other non-liquid assets.
type CapitalItemType string

const (
	CapitalItemTypeLiquid    CapitalItemType = "liquid"
	CapitalItemTypeNonLiquid CapitalItemType = "non_liquid"
)

// CapitalItem is a single liquid or non-liquid asset.
type CapitalItem struct {
	Base
	AssessmentID string          `gorm:"type:uuid;not null;index" json:"assessment_id"`
	Position     int             `gorm:"not null;default:0" json:"-"`
	Type         CapitalItemType `gorm:"not null" json:"type"`
	Description  string          `gorm:"not null" json:"description"`
	Value        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"value"`
}

// Property is real estate the applicant has an interest in. AssessedCapitalValue
// is written by the most recent assessment run.
type Property struct {
	Base
	AssessmentID         string          `gorm:"type:uuid;not null;index" json:"assessment_id"`
	Position             int             `gorm:"not null;default:0" json:"-"`
	MainHome             bool            `gorm:"not null;default:false" json:"main_home"`
	Value                decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"value"`
	OutstandingMortgage  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"outstanding_mortgage"`
	PercentageOwned      decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"percentage_owned"`
	AssessedCapitalValue decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"assessed_capital_value"`
}

// Vehicle is a vehicle owned by the applicant. AssessedValue is written by
// the most recent assessment run.
type Vehicle struct {
	Base
	AssessmentID          string          `gorm:"type:uuid;not null;index" json:"assessment_id"`
	Position              int             `gorm:"not null;default:0" json:"-"`
	Value                 decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"value"`
	LoanAmountOutstanding decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"loan_amount_outstanding"`
	DateOfPurchase        time.Time       `gorm:"not null" json:"date_of_purchase"`
	InRegularUse          bool            `gorm:"not null;default:false" json:"in_regular_use"`
	UsedForMobility       bool            `gorm:"not null;default:false" json:"used_for_mobility"`
	AssessedValue         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"assessed_value"`
}
