package assessment

import (
	"time"

	"meansassess/internal/threshold"
)

// Input is an assessment's full data graph as handed over by the persistence layer.
type Input struct {
	SubmissionDate   time.Time
	Applicant        Applicant
	LiquidCapital    []CapitalItem
	NonLiquidCapital []CapitalItem
	Properties       Properties
	Vehicles         []Vehicle
	Payments         []IncomePayment
	Outgoings        []Outgoing
	Employments      []Employment
	Dependants       []Dependant
}

// Report is the complete result of one assessment run.
type Report struct {
	SubmissionDate time.Time      `json:"submission_date"`
	Capital        CapitalSummary `json:"capital"`
	CapitalOutcome Outcome        `json:"capital_outcome"`
	Income         IncomeSummary  `json:"income"`
	IncomeOutcome  Outcome        `json:"income_outcome"`
	Result         Eligibility    `json:"assessment_result"`
}

// Assess binds the threshold table to the submission date, then runs the
// disposable capital and disposable income workflows and classifies both.
func Assess(in Input, table *threshold.Table) (Report, error) {
	th := table.At(in.SubmissionDate)

	capital, err := AssessCapital(CapitalInput{
		SubmissionDate:   in.SubmissionDate,
		Applicant:        in.Applicant,
		LiquidCapital:    in.LiquidCapital,
		NonLiquidCapital: in.NonLiquidCapital,
		Properties:       in.Properties,
		Vehicles:         in.Vehicles,
	}, th)
	if err != nil {
		return Report{}, err
	}

	income, err := AssessIncome(IncomeInput{
		SubmissionDate: in.SubmissionDate,
		Payments:       in.Payments,
		Outgoings:      in.Outgoings,
		Employments:    in.Employments,
		Dependants:     in.Dependants,
	}, th)
	if err != nil {
		return Report{}, err
	}

	capitalOutcome := Classify(capital.DisposableCapitalAssessment, capital.TotalCapitalLowerThreshold, capital.TotalCapitalUpperThreshold)
	incomeOutcome := Classify(income.TotalDisposableIncome, income.LowerThreshold, income.UpperThreshold)

	return Report{
		SubmissionDate: th.Date(),
		Capital:        capital,
		CapitalOutcome: capitalOutcome,
		Income:         income,
		IncomeOutcome:  incomeOutcome,
		Result:         Combine(capitalOutcome.Eligibility, incomeOutcome.Eligibility),
	}, nil
}
