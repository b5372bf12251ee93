package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"meansassess/internal/assessment"
	apperrors "meansassess/internal/errors"
	"meansassess/internal/logger"
	"meansassess/internal/models"
	"meansassess/internal/pagination"
	"meansassess/internal/threshold"
)

var hundred = decimal.NewFromInt(100)

// assessmentService handles assessment creation and assessment runs.
type assessmentService struct {
	db         *gorm.DB
	thresholds *threshold.Table
}

// NewAssessmentService creates a new AssessmentServicer resolving thresholds from table.
func NewAssessmentService(db *gorm.DB, table *threshold.Table) AssessmentServicer {
	return &assessmentService{db: db, thresholds: table}
}

// CreateAssessment creates the root record of a new assessment.
func (s *assessmentService) CreateAssessment(clientReferenceID string, submissionDate time.Time, matterProceedingType models.MatterProceedingType) (*models.Assessment, error) {
	if submissionDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing parameter submission_date")
	}

	a := &models.Assessment{
		ClientReferenceID:    clientReferenceID,
		SubmissionDate:       dateOnly(submissionDate),
		MatterProceedingType: matterProceedingType,
		AssessmentResult:     models.AssessmentResultPending,
	}
	if err := s.db.Create(a).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return a, nil
}

// GetAssessments retrieves a paginated list of assessments, newest first.
func (s *assessmentService) GetAssessments(page pagination.PageRequest) (*pagination.PageResponse[models.Assessment], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Assessment{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assessments []models.Assessment
	if err := s.db.Scopes(pagination.Paginate(page)).Find(&assessments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(assessments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAssessmentByID loads an assessment with its full data graph and the
// summaries of its latest run.
func (s *assessmentService) GetAssessmentByID(assessmentID string) (*models.Assessment, error) {
	if _, err := findAssessment(s.db, assessmentID); err != nil {
		return nil, err
	}
	return loadGraph(s.db, assessmentID)
}

// RunAssessment computes disposable capital and disposable income for an
// assessment and replaces the stored summaries. The assessment row is locked
// for the whole run so the data graph read is the one the summaries describe,
// and either every summary and assessed item value is written or none is.
func (s *assessmentService) RunAssessment(assessmentID string) (*AssessmentResult, error) {
	log := logger.ForAssessment(assessmentID)

	var report assessment.Report
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findAssessment(tx.Clauses(clause.Locking{Strength: "UPDATE"}), assessmentID); err != nil {
			return err
		}
		a, err := loadGraph(tx, assessmentID)
		if err != nil {
			return err
		}
		if a.Applicant == nil {
			return apperrors.ErrApplicantMissing
		}

		report, err = assessment.Assess(toInput(a), s.thresholds)
		if err != nil {
			log.Warnw("assessment run failed", "error", err)
			return translateAssessError(err)
		}

		if err := persistReport(tx, a, report); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infow("assessment run completed",
		"assessment_result", report.Result,
		"disposable_capital", report.Capital.DisposableCapitalAssessment.String(),
		"disposable_income", report.Income.TotalDisposableIncome.String(),
	)

	stored, err := s.GetAssessmentByID(assessmentID)
	if err != nil {
		return nil, err
	}
	return &AssessmentResult{Assessment: stored, Report: report}, nil
}

func loadGraph(db *gorm.DB, assessmentID string) (*models.Assessment, error) {
	var a models.Assessment
	err := db.
		Preload("Applicant").
		Preload("Dependants", orderByPosition).
		Preload("Dependants.IncomeReceipts").
		Preload("CapitalItems", orderByPosition).
		Preload("Properties", orderByPosition).
		Preload("Vehicles", orderByPosition).
		Preload("IncomePayments").
		Preload("Outgoings").
		Preload("Employments", orderByPosition).
		Preload("Employments.Payments").
		Preload("CapitalSummary").
		Preload("DisposableIncomeSummary").
		Where("id = ?", assessmentID).
		First(&a).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &a, nil
}

// translateAssessError maps calculation errors onto the API error taxonomy.
func translateAssessError(err error) error {
	var verr *assessment.ValidationError
	switch {
	case errors.As(err, &verr):
		return apperrors.WithDetails(apperrors.ErrValidationFailed, verr.Messages, err)
	case errors.Is(err, threshold.ErrNotFound):
		return apperrors.Wrap(apperrors.ErrThresholdNotFound, err)
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// persistReport deletes the previous summaries and writes the new ones
// together with per-item assessed values.
func persistReport(tx *gorm.DB, a *models.Assessment, report assessment.Report) error {
	if err := tx.Unscoped().Where("assessment_id = ?", a.ID).Delete(&models.CapitalSummary{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("assessment_id = ?", a.ID).Delete(&models.DisposableIncomeSummary{}).Error; err != nil {
		return err
	}

	c := report.Capital
	capitalSummary := &models.CapitalSummary{
		AssessmentID:                a.ID,
		LiquidCapitalAssessment:     c.LiquidCapitalAssessment,
		NonLiquidCapitalAssessment:  c.NonLiquidCapitalAssessment,
		PropertyAssessment:          c.TotalProperty(),
		VehicleAssessment:           c.TotalVehicles(),
		SingleCapitalAssessment:     c.SingleCapitalAssessment,
		PensionerDisregard:          c.PensionerDisregard,
		DisposableCapitalAssessment: c.DisposableCapitalAssessment,
		TotalCapitalLowerThreshold:  c.TotalCapitalLowerThreshold,
		TotalCapitalUpperThreshold:  c.TotalCapitalUpperThreshold,
		CapitalContribution:         report.CapitalOutcome.Contribution,
		AssessmentResult:            models.AssessmentResult(report.CapitalOutcome.Eligibility),
	}
	if err := tx.Create(capitalSummary).Error; err != nil {
		return err
	}

	i := report.Income
	incomeSummary := &models.DisposableIncomeSummary{
		AssessmentID:                a.ID,
		GrossIncome:                 i.GrossIncome,
		EmploymentIncome:            i.EmploymentIncome,
		EmploymentDeductions:        i.EmploymentDeductions,
		Childcare:                   i.Childcare,
		MaintenanceAllowance:        i.MaintenanceAllowance,
		GrossHousingCosts:           i.GrossHousingCosts,
		HousingBenefit:              i.HousingBenefit,
		NetHousingCosts:             i.NetHousingCosts,
		DependantAllowance:          i.DependantAllowance,
		TotalOutgoingsAndAllowances: i.TotalOutgoingsAndAllowances,
		TotalDisposableIncome:       i.TotalDisposableIncome,
		LowerThreshold:              i.LowerThreshold,
		UpperThreshold:              i.UpperThreshold,
		IncomeContribution:          report.IncomeOutcome.Contribution,
		AssessmentResult:            models.AssessmentResult(report.IncomeOutcome.Eligibility),
	}
	if err := tx.Create(incomeSummary).Error; err != nil {
		return err
	}

	if p := c.Property.MainHome; p != nil {
		if err := setAssessedPropertyValue(tx, p.ID, p.AssessedCapitalValue); err != nil {
			return err
		}
	}
	for _, p := range c.Property.AdditionalProperties {
		if err := setAssessedPropertyValue(tx, p.ID, p.AssessedCapitalValue); err != nil {
			return err
		}
	}
	for _, v := range c.Vehicles {
		if err := tx.Model(&models.Vehicle{}).Where("id = ?", v.ID).Update("assessed_value", v.AssessedValue).Error; err != nil {
			return err
		}
	}

	return tx.Model(&models.Assessment{}).Where("id = ?", a.ID).
		Update("assessment_result", models.AssessmentResult(report.Result)).Error
}

func setAssessedPropertyValue(tx *gorm.DB, propertyID string, value decimal.Decimal) error {
	return tx.Model(&models.Property{}).Where("id = ?", propertyID).Update("assessed_capital_value", value).Error
}

// toInput maps the persisted data graph onto the calculation input.
func toInput(a *models.Assessment) assessment.Input {
	in := assessment.Input{SubmissionDate: a.SubmissionDate}

	if a.Applicant != nil {
		in.Applicant = assessment.Applicant{
			DateOfBirth:               a.Applicant.DateOfBirth,
			ReceivesQualifyingBenefit: a.Applicant.ReceivesQualifyingBenefit,
		}
	}

	for _, item := range a.CapitalItems {
		ci := assessment.CapitalItem{Description: item.Description, Value: item.Value}
		if item.Type == models.CapitalItemTypeLiquid {
			in.LiquidCapital = append(in.LiquidCapital, ci)
		} else {
			in.NonLiquidCapital = append(in.NonLiquidCapital, ci)
		}
	}

	for _, p := range a.Properties {
		prop := assessment.Property{
			ID:                  p.ID,
			Value:               p.Value,
			OutstandingMortgage: p.OutstandingMortgage,
			OwnershipFraction:   p.PercentageOwned.Div(hundred),
		}
		if p.MainHome && in.Properties.MainHome == nil {
			in.Properties.MainHome = &prop
			continue
		}
		in.Properties.AdditionalProperties = append(in.Properties.AdditionalProperties, prop)
	}

	for _, v := range a.Vehicles {
		in.Vehicles = append(in.Vehicles, assessment.Vehicle{
			ID:                    v.ID,
			Value:                 v.Value,
			LoanAmountOutstanding: v.LoanAmountOutstanding,
			DateOfPurchase:        v.DateOfPurchase,
			InRegularUse:          v.InRegularUse,
			UsedForMobility:       v.UsedForMobility,
		})
	}

	for _, p := range a.IncomePayments {
		in.Payments = append(in.Payments, assessment.IncomePayment{
			Source:      assessment.IncomeSource(p.Source),
			PaymentDate: p.PaymentDate,
			Amount:      p.Amount,
		})
	}
	for _, o := range a.Outgoings {
		in.Outgoings = append(in.Outgoings, assessment.Outgoing{
			Type:        assessment.OutgoingType(o.Type),
			PaymentDate: o.PaymentDate,
			Amount:      o.Amount,
		})
	}

	for _, e := range a.Employments {
		emp := assessment.Employment{Name: e.Name}
		for _, p := range e.Payments {
			emp.Payments = append(emp.Payments, assessment.EmploymentPayment{
				Date:                p.Date,
				Gross:               p.Gross,
				BenefitsInKind:      p.BenefitsInKind,
				Tax:                 p.Tax,
				NationalInsurance:   p.NationalInsurance,
				NetEmploymentIncome: p.NetEmploymentIncome,
			})
		}
		in.Employments = append(in.Employments, emp)
	}

	for _, d := range a.Dependants {
		dep := assessment.Dependant{
			DateOfBirth:         d.DateOfBirth,
			InFullTimeEducation: d.InFullTimeEducation,
		}
		for _, r := range d.IncomeReceipts {
			dep.IncomeReceipts = append(dep.IncomeReceipts, assessment.IncomeReceipt{
				DateOfPayment: r.DateOfPayment,
				Amount:        r.Amount,
			})
		}
		in.Dependants = append(in.Dependants, dep)
	}

	return in
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("created_at, position")
}
