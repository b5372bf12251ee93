package assessment

import (
	"github.com/shopspring/decimal"

	"meansassess/internal/threshold"
)

// AssessedProperty is a property with its assessed capital value.
type AssessedProperty struct {
	Property
	AssessedCapitalValue decimal.Decimal `json:"assessed_capital_value"`
}

// PropertyAssessment is the assessed main home plus additional properties in
// input order.
type PropertyAssessment struct {
	MainHome             *AssessedProperty  `json:"main_home"`
	AdditionalProperties []AssessedProperty `json:"additional_properties"`
}

// MainHomeValue returns the main home's assessed value, or zero without one.
func (p PropertyAssessment) MainHomeValue() decimal.Decimal {
	if p.MainHome == nil {
		return decimal.Zero
	}
	return p.MainHome.AssessedCapitalValue
}

// AdditionalPropertiesValue sums the assessed values of additional properties.
func (p PropertyAssessment) AdditionalPropertiesValue() decimal.Decimal {
	total := decimal.Zero
	for _, ap := range p.AdditionalProperties {
		total = total.Add(ap.AssessedCapitalValue)
	}
	return total
}

// AssessProperties values the applicant's equity in each property. The main
// home is reduced by the property disregard; additional properties are not.
// Neither can go below zero.
func AssessProperties(props Properties, th Thresholds) (PropertyAssessment, error) {
	result := PropertyAssessment{AdditionalProperties: make([]AssessedProperty, 0, len(props.AdditionalProperties))}

	if props.MainHome != nil {
		disregard, err := th.Value(threshold.PropertyDisregard)
		if err != nil {
			return PropertyAssessment{}, err
		}
		equity := applicantEquity(*props.MainHome)
		result.MainHome = &AssessedProperty{
			Property:             *props.MainHome,
			AssessedCapitalValue: maxZero(equity.Sub(disregard)).Round(2),
		}
	}

	for _, p := range props.AdditionalProperties {
		result.AdditionalProperties = append(result.AdditionalProperties, AssessedProperty{
			Property:             p,
			AssessedCapitalValue: maxZero(applicantEquity(p)).Round(2),
		})
	}

	return result, nil
}

func applicantEquity(p Property) decimal.Decimal {
	return p.Value.Sub(p.OutstandingMortgage).Mul(p.OwnershipFraction)
}
