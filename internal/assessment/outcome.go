package assessment

import "github.com/shopspring/decimal"

// Eligibility is the classification of a disposable figure against thresholds.
type Eligibility string

const (
	Eligible             Eligibility = "eligible"
	ContributionRequired Eligibility = "contribution_required"
	Ineligible           Eligibility = "ineligible"
	Pending              Eligibility = "pending"
)

func (e Eligibility) severity() int {
	switch e {
	case Eligible:
		return 1
	case ContributionRequired:
		return 2
	case Ineligible:
		return 3
	default:
		return 0
	}
}

// Outcome is a classification plus the contribution owed, if any.
type Outcome struct {
	Eligibility  Eligibility     `json:"assessment_result"`
	Contribution decimal.Decimal `json:"contribution"`
}

// Classify compares a disposable figure with the lower and upper thresholds.
// A value equal to the lower threshold is eligible; a value equal to the upper
// threshold is ineligible. In between, the contribution is the excess over the
// lower threshold.
func Classify(value, lower, upper decimal.Decimal) Outcome {
	switch {
	case value.LessThanOrEqual(lower):
		return Outcome{Eligibility: Eligible, Contribution: decimal.Zero}
	case value.GreaterThanOrEqual(upper):
		return Outcome{Eligibility: Ineligible, Contribution: decimal.Zero}
	default:
		return Outcome{Eligibility: ContributionRequired, Contribution: value.Sub(lower).Round(2)}
	}
}

// Combine returns the stricter of the given results.
func Combine(results ...Eligibility) Eligibility {
	combined := Pending
	for _, r := range results {
		if r.severity() > combined.severity() {
			combined = r
		}
	}
	return combined
}
