package models

import "github.com/shopspring/decimal"

// CapitalSummary holds the disposable capital figures of the latest run.
// Rows are replaced as a whole on every run.
type CapitalSummary struct {
	Base
	AssessmentID                string           `gorm:"type:uuid;not null;uniqueIndex" json:"assessment_id"`
	LiquidCapitalAssessment     decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"liquid_capital_assessment"`
	NonLiquidCapitalAssessment  decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"non_liquid_capital_assessment"`
	PropertyAssessment          decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"property_assessment"`
	VehicleAssessment           decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"vehicle_assessment"`
	SingleCapitalAssessment     decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"single_capital_assessment"`
	PensionerDisregard          decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"pensioner_disregard"`
	DisposableCapitalAssessment decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"disposable_capital_assessment"`
	TotalCapitalLowerThreshold  decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"total_capital_lower_threshold"`
	TotalCapitalUpperThreshold  decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"total_capital_upper_threshold"`
	CapitalContribution         decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"capital_contribution"`
	AssessmentResult            AssessmentResult `gorm:"not null" json:"assessment_result"`
}

// DisposableIncomeSummary holds the monthly disposable income figures of the
// latest run.
type DisposableIncomeSummary struct {
	Base
	AssessmentID                string           `gorm:"type:uuid;not null;uniqueIndex" json:"assessment_id"`
	GrossIncome                 decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"gross_income"`
	EmploymentIncome            decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0" json:"employment_income"`
	EmploymentDeductions        decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0" json:"employment_deductions"`
	Childcare                   decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"childcare"`
	MaintenanceAllowance        decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"maintenance_allowance"`
	GrossHousingCosts           decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"gross_housing_costs"`
	HousingBenefit              decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"housing_benefit"`
	NetHousingCosts             decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"net_housing_costs"`
	DependantAllowance          decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"dependant_allowance"`
	TotalOutgoingsAndAllowances decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"total_outgoings_and_allowances"`
	TotalDisposableIncome       decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"total_disposable_income"`
	LowerThreshold              decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"lower_threshold"`
	UpperThreshold              decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"upper_threshold"`
	IncomeContribution          decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"income_contribution"`
	AssessmentResult            AssessmentResult `gorm:"not null" json:"assessment_result"`
}
