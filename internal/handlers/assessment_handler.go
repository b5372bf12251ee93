package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meansassess/internal/assessment"
	"meansassess/internal/models"
	"meansassess/internal/pagination"
	"meansassess/internal/services"
)

// AssessmentHandler handles assessment creation, listing and runs.
type AssessmentHandler struct {
	assessmentService services.AssessmentServicer
	auditService      services.AuditServicer
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentService services.AssessmentServicer, auditService services.AuditServicer) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService, auditService: auditService}
}

// CreateAssessmentRequest represents the request payload for creating an assessment.
type CreateAssessmentRequest struct {
	ClientReferenceID    string `json:"client_reference_id" binding:"max=100"`
	SubmissionDate       string `json:"submission_date" binding:"required,datetime=2006-01-02"`
	MatterProceedingType string `json:"matter_proceeding_type" binding:"required,matter_proceeding_type"`
}

// AssessmentResponse represents an assessment run in the response.
type AssessmentResponse struct {
	Success    bool               `json:"success"`
	Assessment *models.Assessment `json:"assessment"`
	Result     assessment.Report  `json:"result"`
	Errors     []string           `json:"errors"`
}

// CreateAssessment handles the creation of a new assessment
// @Summary     Create an assessment
// @Description Create a new means assessment. Thresholds are resolved against the submission date.
// @Tags        assessments
// @Accept      json
// @Produce     json
// @Param       request body CreateAssessmentRequest true "Assessment details"
// @Success     200 {object} ObjectsResponse "Assessment created"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assessments [post]
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	submissionDate, err := parseDate("submission_date", req.SubmissionDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	a, err := h.assessmentService.CreateAssessment(req.ClientReferenceID, submissionDate, matterProceedingType(req.MatterProceedingType))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditActionCreateAssessment, "assessment", a.ID, c.ClientIP(),
		map[string]any{"submission_date": req.SubmissionDate, "matter_proceeding_type": req.MatterProceedingType})

	respondWithObjects(c, []*models.Assessment{a})
}

// GetAssessments handles listing assessments
// @Summary     List assessments
// @Description Get a paginated list of assessments, newest first
// @Tags        assessments
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Assessment] "Paginated assessments"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assessments [get]
func (h *AssessmentHandler) GetAssessments(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	result, err := h.assessmentService.GetAssessments(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RunAssessment handles running an assessment
// @Summary     Run an assessment
// @Description Compute disposable capital and disposable income for the assessment, store the summaries and return them
// @Tags        assessments
// @Produce     json
// @Param       id path string true "Assessment ID"
// @Success     200 {object} AssessmentResponse "Assessment result"
// @Failure     422 {object} ErrorResponse "Unknown assessment, missing applicant or invalid records"
// @Failure     500 {object} ErrorResponse "Threshold configuration missing or server error"
// @Router      /assessments/{id} [get]
func (h *AssessmentHandler) RunAssessment(c *gin.Context) {
	result, err := h.assessmentService.RunAssessment(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditActionRunAssessment, "assessment", result.Assessment.ID, c.ClientIP(),
		map[string]any{"assessment_result": result.Report.Result})

	c.JSON(http.StatusOK, AssessmentResponse{
		Success:    true,
		Assessment: result.Assessment,
		Result:     result.Report,
		Errors:     []string{},
	})
}

// matterProceedingType normalises a value already accepted by the binding layer.
func matterProceedingType(s string) models.MatterProceedingType {
	mpt, _ := models.ParseMatterProceedingType(s)
	return mpt
}
