package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"meansassess/internal/assessment"
	apperrors "meansassess/internal/errors"
	"meansassess/internal/models"
)

const (
	msgDescriptionMissing     = "Description cannot be blank"
	msgPercentageOutOfRange   = "Percentage owned must be between 0 and 100"
	msgPropertyValueNegative  = "Property value cannot be negative"
	msgVehicleValueNegative   = "Vehicle value cannot be negative"
	msgMortgageNegative       = "Outstanding mortgage cannot be negative"
	msgLoanNegative           = "Loan amount outstanding cannot be negative"
	msgMainHomeAlreadyPresent = "There is already a main home for this assessment"
)

// capitalService records the applicant's capital: bank accounts and other
// assets, properties and vehicles.
type capitalService struct {
	db *gorm.DB
}

// NewCapitalService creates a new CapitalServicer.
func NewCapitalService(db *gorm.DB) CapitalServicer {
	return &capitalService{db: db}
}

// CreateCapitals records liquid and non-liquid capital items.
func (s *capitalService) CreateCapitals(assessmentID string, liquid, nonLiquid []CapitalItemInput) ([]models.CapitalItem, error) {
	if len(liquid) == 0 && len(nonLiquid) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing parameter bank_accounts or non_liquid_capital")
	}

	var errs messages
	for _, item := range append(append([]CapitalItemInput{}, liquid...), nonLiquid...) {
		if strings.TrimSpace(item.Description) == "" {
			errs.add(msgDescriptionMissing)
		}
		if tooPrecise(item.Value) {
			errs.add(msgTooPrecise)
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	var items []models.CapitalItem
	for i, in := range liquid {
		items = append(items, newCapitalItem(models.CapitalItemTypeLiquid, i, in))
	}
	for i, in := range nonLiquid {
		items = append(items, newCapitalItem(models.CapitalItemTypeNonLiquid, len(liquid)+i, in))
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findAssessment(tx, assessmentID)
		if err != nil {
			return err
		}
		for i := range items {
			items[i].AssessmentID = a.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func newCapitalItem(kind models.CapitalItemType, position int, in CapitalItemInput) models.CapitalItem {
	return models.CapitalItem{
		Position:    position,
		Type:        kind,
		Description: strings.TrimSpace(in.Description),
		Value:       in.Value,
	}
}

// CreateProperties records the main home and any additional properties. An
// assessment has at most one main home.
func (s *capitalService) CreateProperties(assessmentID string, mainHome *PropertyInput, additional []PropertyInput) ([]models.Property, error) {
	if mainHome == nil && len(additional) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing parameter properties")
	}

	var errs messages
	all := additional
	if mainHome != nil {
		all = append([]PropertyInput{*mainHome}, additional...)
	}
	for _, p := range all {
		if p.Value.IsNegative() {
			errs.add(msgPropertyValueNegative)
		}
		if p.OutstandingMortgage.IsNegative() {
			errs.add(msgMortgageNegative)
		}
		if p.PercentageOwned.IsNegative() || p.PercentageOwned.GreaterThan(hundred) {
			errs.add(msgPercentageOutOfRange)
		}
		if tooPrecise(p.Value, p.OutstandingMortgage, p.PercentageOwned) {
			errs.add(msgTooPrecise)
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	var created []models.Property
	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findAssessment(tx, assessmentID)
		if err != nil {
			return err
		}

		if mainHome != nil {
			var existing int64
			if err := tx.Model(&models.Property{}).Where("assessment_id = ? AND main_home = ?", a.ID, true).Count(&existing).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if existing > 0 {
				return apperrors.WithDetails(apperrors.ErrValidationFailed, []string{msgMainHomeAlreadyPresent}, nil)
			}
			created = append(created, newProperty(a.ID, 0, true, *mainHome))
		}
		for _, p := range additional {
			created = append(created, newProperty(a.ID, len(created), false, p))
		}

		if err := tx.Create(&created).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func newProperty(assessmentID string, position int, mainHome bool, in PropertyInput) models.Property {
	return models.Property{
		AssessmentID:         assessmentID,
		Position:             position,
		MainHome:             mainHome,
		Value:                in.Value,
		OutstandingMortgage:  in.OutstandingMortgage,
		PercentageOwned:      in.PercentageOwned,
		AssessedCapitalValue: decimal.Zero,
	}
}

// CreateVehicles records the applicant's vehicles in the order given.
func (s *capitalService) CreateVehicles(assessmentID string, vehicles []VehicleInput) ([]models.Vehicle, error) {
	if len(vehicles) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing parameter vehicles")
	}

	var errs messages
	for _, v := range vehicles {
		if inFuture(v.DateOfPurchase) {
			errs.add(assessment.MsgDateOfPurchaseInFuture)
		}
		if v.Value.IsNegative() {
			errs.add(msgVehicleValueNegative)
		}
		if v.LoanAmountOutstanding.IsNegative() {
			errs.add(msgLoanNegative)
		}
		if tooPrecise(v.Value, v.LoanAmountOutstanding) {
			errs.add(msgTooPrecise)
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	var created []models.Vehicle
	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findAssessment(tx, assessmentID)
		if err != nil {
			return err
		}

		for i, v := range vehicles {
			created = append(created, models.Vehicle{
				AssessmentID:          a.ID,
				Position:              i,
				Value:                 v.Value,
				LoanAmountOutstanding: v.LoanAmountOutstanding,
				DateOfPurchase:        dateOnly(v.DateOfPurchase),
				InRegularUse:          v.InRegularUse,
				UsedForMobility:       v.UsedForMobility,
				AssessedValue:         decimal.Zero,
			})
		}
		if err := tx.Create(&created).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
