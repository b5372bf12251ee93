package assessment

import (
	"time"

	"github.com/shopspring/decimal"

	"meansassess/internal/threshold"
)

// calculationPeriodMonths is the number of months averaged into a monthly figure.
const calculationPeriodMonths = 3

// IncomeSource identifies where a gross income payment comes from.
type IncomeSource string

const (
	IncomeSourceEmployment       IncomeSource = "employment"
	IncomeSourceBenefits         IncomeSource = "benefits"
	IncomeSourceFriendsOrFamily  IncomeSource = "friends_or_family"
	IncomeSourceMaintenanceIn    IncomeSource = "maintenance_in"
	IncomeSourcePropertyOrLodger IncomeSource = "property_or_lodger"
	IncomeSourcePension          IncomeSource = "pension"
	IncomeSourceHousingBenefit   IncomeSource = "housing_benefit"
)

// OutgoingType identifies a regular outgoing.
type OutgoingType string

const (
	OutgoingChildcare      OutgoingType = "childcare"
	OutgoingMaintenanceOut OutgoingType = "maintenance_out"
	OutgoingHousingCost    OutgoingType = "housing_cost"
)

// IncomePayment is one payment received by the applicant.
type IncomePayment struct {
	Source      IncomeSource
	PaymentDate time.Time
	Amount      decimal.Decimal
}

// Outgoing is one payment made by the applicant.
type Outgoing struct {
	Type        OutgoingType
	PaymentDate time.Time
	Amount      decimal.Decimal
}

// IncomeInput is the applicant's income snapshot for one assessment.
type IncomeInput struct {
	SubmissionDate time.Time
	Payments       []IncomePayment
	Outgoings      []Outgoing
	Employments    []Employment
	Dependants     []Dependant
}

// IncomeSummary is the result of the disposable income workflow. All figures
// are monthly.
type IncomeSummary struct {
	GrossIncome                 decimal.Decimal `json:"gross_income"`
	EmploymentIncome            decimal.Decimal `json:"employment_income"`
	EmploymentDeductions        decimal.Decimal `json:"employment_deductions"`
	Childcare                   decimal.Decimal `json:"childcare"`
	MaintenanceAllowance        decimal.Decimal `json:"maintenance_allowance"`
	GrossHousingCosts           decimal.Decimal `json:"gross_housing_costs"`
	HousingBenefit              decimal.Decimal `json:"housing_benefit"`
	NetHousingCosts             decimal.Decimal `json:"net_housing_costs"`
	DependantAllowance          decimal.Decimal `json:"dependant_allowance"`
	TotalOutgoingsAndAllowances decimal.Decimal `json:"total_outgoings_and_allowances"`
	TotalDisposableIncome       decimal.Decimal `json:"total_disposable_income"`
	LowerThreshold              decimal.Decimal `json:"lower_threshold"`
	UpperThreshold              decimal.Decimal `json:"upper_threshold"`
}

// AssessIncome runs the disposable income workflow: monthly gross income less
// tax and national insurance, childcare, maintenance, net housing costs and
// dependant allowances.
func AssessIncome(in IncomeInput, th Thresholds) (IncomeSummary, error) {
	if err := validateIncomeDates(in); err != nil {
		return IncomeSummary{}, err
	}

	var s IncomeSummary
	for _, p := range in.Payments {
		if p.Source == IncomeSourceHousingBenefit {
			continue
		}
		if inCalculationPeriod(p.PaymentDate, in.SubmissionDate) {
			s.GrossIncome = s.GrossIncome.Add(p.Amount)
		}
	}
	s.EmploymentIncome, s.EmploymentDeductions = employmentIncome(in.Employments, in.SubmissionDate)
	s.GrossIncome = monthly(s.GrossIncome).Add(s.EmploymentIncome)
	s.HousingBenefit = monthly(sumPayments(in.Payments, IncomeSourceHousingBenefit, in.SubmissionDate))

	s.MaintenanceAllowance = monthly(sumOutgoings(in.Outgoings, OutgoingMaintenanceOut, in.SubmissionDate))
	s.GrossHousingCosts = monthly(sumOutgoings(in.Outgoings, OutgoingHousingCost, in.SubmissionDate))

	childcare, err := childcareAllowance(in, th)
	if err != nil {
		return IncomeSummary{}, err
	}
	s.Childcare = childcare

	s.NetHousingCosts = maxZero(s.GrossHousingCosts.Sub(s.HousingBenefit))
	if len(in.Dependants) == 0 {
		limit, err := th.Value(threshold.HousingCostCapSingle)
		if err != nil {
			return IncomeSummary{}, err
		}
		s.NetHousingCosts = decimal.Min(s.NetHousingCosts, limit)
	}

	s.DependantAllowance = decimal.Zero
	for _, dep := range in.Dependants {
		allowance, err := DependantAllowance(dep, in.SubmissionDate, th)
		if err != nil {
			return IncomeSummary{}, err
		}
		s.DependantAllowance = s.DependantAllowance.Add(allowance)
	}

	s.TotalOutgoingsAndAllowances = s.EmploymentDeductions.
		Add(s.Childcare).
		Add(s.MaintenanceAllowance).
		Add(s.NetHousingCosts).
		Add(s.DependantAllowance)
	s.TotalDisposableIncome = s.GrossIncome.Sub(s.TotalOutgoingsAndAllowances).Round(2)

	if s.LowerThreshold, err = th.Value(threshold.IncomeLower); err != nil {
		return IncomeSummary{}, err
	}
	if s.UpperThreshold, err = th.Value(threshold.IncomeUpper); err != nil {
		return IncomeSummary{}, err
	}

	return s, nil
}

// childcareAllowance is only allowed when the applicant is in work and has a
// dependant child below the childcare age limit.
func childcareAllowance(in IncomeInput, th Thresholds) (decimal.Decimal, error) {
	spent := monthly(sumOutgoings(in.Outgoings, OutgoingChildcare, in.SubmissionDate))
	if spent.IsZero() {
		return decimal.Zero, nil
	}
	if !employed(in) {
		return decimal.Zero, nil
	}

	maxAge, err := th.Value(threshold.ChildcareMaxDependantAge)
	if err != nil {
		return decimal.Zero, err
	}
	for _, dep := range in.Dependants {
		if int64(ageAt(dep.DateOfBirth, in.SubmissionDate)) < maxAge.IntPart() {
			return spent, nil
		}
	}
	return decimal.Zero, nil
}

func validateIncomeDates(in IncomeInput) error {
	submitted := day(in.SubmissionDate)
	var v validation
	for _, p := range in.Payments {
		if day(p.PaymentDate).After(submitted) {
			v.add(MsgDateOfPaymentInFuture)
		}
	}
	for _, o := range in.Outgoings {
		if day(o.PaymentDate).After(submitted) {
			v.add(MsgDateOfPaymentInFuture)
		}
	}
	for _, e := range in.Employments {
		for _, p := range e.Payments {
			if day(p.Date).After(submitted) {
				v.add(MsgDateOfPaymentInFuture)
			}
		}
	}
	return v.err()
}

func sumPayments(payments []IncomePayment, source IncomeSource, submissionDate time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Source == source && inCalculationPeriod(p.PaymentDate, submissionDate) {
			total = total.Add(p.Amount)
		}
	}
	return total
}

func sumOutgoings(outgoings []Outgoing, kind OutgoingType, submissionDate time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, o := range outgoings {
		if o.Type == kind && inCalculationPeriod(o.PaymentDate, submissionDate) {
			total = total.Add(o.Amount)
		}
	}
	return total
}

// inCalculationPeriod reports whether paid falls in the three months ending on
// the submission date.
func inCalculationPeriod(paid, submissionDate time.Time) bool {
	end := day(submissionDate)
	start := end.AddDate(0, -calculationPeriodMonths, 0)
	p := day(paid)
	return p.After(start) && !p.After(end)
}

func monthly(total decimal.Decimal) decimal.Decimal {
	return total.Div(decimal.NewFromInt(calculationPeriodMonths)).Round(2)
}
