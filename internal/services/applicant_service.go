package services

import (
	"gorm.io/gorm"

	"meansassess/internal/assessment"
	apperrors "meansassess/internal/errors"
	"meansassess/internal/models"
)

// applicantService handles applicant creation.
type applicantService struct {
	db *gorm.DB
}

// NewApplicantService creates a new ApplicantServicer.
func NewApplicantService(db *gorm.DB) ApplicantServicer {
	return &applicantService{db: db}
}

// CreateApplicant attaches the applicant to an assessment. An assessment has
// at most one applicant.
func (s *applicantService) CreateApplicant(assessmentID string, in ApplicantInput) (*models.Applicant, error) {
	var errs messages
	if inFuture(in.DateOfBirth) {
		errs.add(assessment.MsgDateOfBirthInFuture)
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	involvement := in.InvolvementType
	if involvement == "" {
		involvement = models.InvolvementTypeApplicant
	}

	var applicant *models.Applicant
	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findAssessment(tx, assessmentID)
		if err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Applicant{}).Where("assessment_id = ?", a.ID).Count(&existing).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if existing > 0 {
			return apperrors.ErrApplicantExists
		}

		applicant = &models.Applicant{
			AssessmentID:              a.ID,
			DateOfBirth:               dateOnly(in.DateOfBirth),
			InvolvementType:           involvement,
			HasPartnerOpponent:        in.HasPartnerOpponent,
			ReceivesQualifyingBenefit: in.ReceivesQualifyingBenefit,
		}
		if err := tx.Create(applicant).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return applicant, nil
}
