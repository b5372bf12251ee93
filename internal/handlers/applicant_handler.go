package handlers

import (
	"github.com/gin-gonic/gin"

	"meansassess/internal/models"
	"meansassess/internal/services"
)

// ApplicantHandler handles applicant requests.
type ApplicantHandler struct {
	applicantService services.ApplicantServicer
}

// NewApplicantHandler creates a new ApplicantHandler.
func NewApplicantHandler(applicantService services.ApplicantServicer) *ApplicantHandler {
	return &ApplicantHandler{applicantService: applicantService}
}

// CreateApplicantRequest represents the request payload for adding the applicant.
type CreateApplicantRequest struct {
	Applicant ApplicantPayload `json:"applicant" binding:"required"`
}

// ApplicantPayload describes the applicant being assessed.
type ApplicantPayload struct {
	DateOfBirth               string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	InvolvementType           string `json:"involvement_type" binding:"required,involvement_type"`
	HasPartnerOpponent        *bool  `json:"has_partner_opponent" binding:"required"`
	ReceivesQualifyingBenefit *bool  `json:"receives_qualifying_benefit" binding:"required"`
}

// CreateApplicant handles adding the applicant to an assessment
// @Summary     Add the applicant
// @Description Attach the applicant to an assessment. An assessment has at most one applicant.
// @Tags        applicants
// @Accept      json
// @Produce     json
// @Param       id      path string                 true "Assessment ID"
// @Param       request body CreateApplicantRequest true "Applicant details"
// @Success     200 {object} ObjectsResponse "Applicant created"
// @Failure     422 {object} ErrorResponse "Invalid input, unknown assessment or applicant already present"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assessments/{id}/applicant [post]
func (h *ApplicantHandler) CreateApplicant(c *gin.Context) {
	var req CreateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	dob, err := parseDate("date_of_birth", req.Applicant.DateOfBirth)
	if err != nil {
		respondWithError(c, err)
		return
	}

	applicant, err := h.applicantService.CreateApplicant(c.Param("id"), services.ApplicantInput{
		DateOfBirth:               dob,
		InvolvementType:           models.InvolvementType(req.Applicant.InvolvementType),
		HasPartnerOpponent:        boolValue(req.Applicant.HasPartnerOpponent),
		ReceivesQualifyingBenefit: boolValue(req.Applicant.ReceivesQualifyingBenefit),
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithObjects(c, []*models.Applicant{applicant})
}
