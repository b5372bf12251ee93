package assessment

import (
	"time"

	"github.com/shopspring/decimal"

	"meansassess/internal/threshold"
)

// CapitalInput is the applicant's capital snapshot for one assessment.
type CapitalInput struct {
	SubmissionDate   time.Time
	Applicant        Applicant
	LiquidCapital    []CapitalItem
	NonLiquidCapital []CapitalItem
	Properties       Properties
	Vehicles         []Vehicle
}

// CapitalSummary is the result of the disposable capital workflow.
type CapitalSummary struct {
	LiquidCapitalItems          []CapitalItem      `json:"liquid_capital_items"`
	NonLiquidCapitalItems       []CapitalItem      `json:"non_liquid_capital_items"`
	LiquidCapitalAssessment     decimal.Decimal    `json:"liquid_capital_assessment"`
	Property                    PropertyAssessment `json:"property"`
	Vehicles                    []AssessedVehicle  `json:"vehicles"`
	NonLiquidCapitalAssessment  decimal.Decimal    `json:"non_liquid_capital_assessment"`
	SingleCapitalAssessment     decimal.Decimal    `json:"single_capital_assessment"`
	PensionerDisregard          decimal.Decimal    `json:"pensioner_disregard"`
	DisposableCapitalAssessment decimal.Decimal    `json:"disposable_capital_assessment"`
	TotalCapitalLowerThreshold  decimal.Decimal    `json:"total_capital_lower_threshold"`
	TotalCapitalUpperThreshold  decimal.Decimal    `json:"total_capital_upper_threshold"`
}

// TotalVehicles sums the assessed values of all vehicles.
func (s CapitalSummary) TotalVehicles() decimal.Decimal {
	total := decimal.Zero
	for _, v := range s.Vehicles {
		total = total.Add(v.AssessedValue)
	}
	return total
}

// TotalProperty sums the assessed main home and additional properties.
func (s CapitalSummary) TotalProperty() decimal.Decimal {
	return s.Property.MainHomeValue().Add(s.Property.AdditionalPropertiesValue())
}

// AssessCapital runs the disposable capital workflow. The steps run in a fixed
// order so the audit trail reads the same way every time; any error aborts the
// whole run and no summary is returned.
func AssessCapital(in CapitalInput, th Thresholds) (CapitalSummary, error) {
	var s CapitalSummary
	s.LiquidCapitalItems = in.LiquidCapital
	s.NonLiquidCapitalItems = in.NonLiquidCapital

	s.LiquidCapitalAssessment = AssessLiquidCapital(in.LiquidCapital)

	property, err := AssessProperties(in.Properties, th)
	if err != nil {
		return CapitalSummary{}, err
	}
	s.Property = property

	vehicles, err := AssessVehicles(in.Vehicles, in.SubmissionDate, th)
	if err != nil {
		return CapitalSummary{}, err
	}
	s.Vehicles = vehicles

	s.NonLiquidCapitalAssessment = AssessNonLiquidCapital(in.NonLiquidCapital)

	s.SingleCapitalAssessment = s.LiquidCapitalAssessment.
		Add(s.Property.MainHomeValue()).
		Add(s.Property.AdditionalPropertiesValue()).
		Add(s.TotalVehicles()).
		Add(s.NonLiquidCapitalAssessment).
		Round(2)

	disregard, err := PensionerCapitalDisregard(in.Applicant, in.SubmissionDate, th)
	if err != nil {
		return CapitalSummary{}, err
	}
	s.PensionerDisregard = disregard
	s.DisposableCapitalAssessment = s.SingleCapitalAssessment.Sub(s.PensionerDisregard)

	if s.TotalCapitalLowerThreshold, err = th.Value(threshold.CapitalLower); err != nil {
		return CapitalSummary{}, err
	}
	if s.TotalCapitalUpperThreshold, err = th.Value(threshold.CapitalUpper); err != nil {
		return CapitalSummary{}, err
	}

	return s, nil
}
