package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"meansassess/internal/services"
)

// EmploymentHandler handles employment income requests.
type EmploymentHandler struct {
	employmentService services.EmploymentServicer
}

// NewEmploymentHandler creates a new EmploymentHandler.
func NewEmploymentHandler(employmentService services.EmploymentServicer) *EmploymentHandler {
	return &EmploymentHandler{employmentService: employmentService}
}

// EmploymentPaymentPayload is one payslip. Tax and national insurance are
// given as negative amounts, as they appear on the payslip.
type EmploymentPaymentPayload struct {
	Date                string           `json:"date" binding:"required,datetime=2006-01-02"`
	Gross               *decimal.Decimal `json:"gross" binding:"required" swaggertype:"number"`
	BenefitsInKind      decimal.Decimal  `json:"benefits_in_kind" swaggertype:"number"`
	Tax                 *decimal.Decimal `json:"tax" binding:"required" swaggertype:"number"`
	NationalInsurance   *decimal.Decimal `json:"national_insurance" binding:"required" swaggertype:"number"`
	NetEmploymentIncome *decimal.Decimal `json:"net_employment_income" binding:"required" swaggertype:"number"`
}

// EmploymentPayload is one employment and its payslips.
type EmploymentPayload struct {
	Name     string                     `json:"name" binding:"required"`
	Payments []EmploymentPaymentPayload `json:"payments" binding:"required,min=1,dive"`
}

// CreateEmploymentsRequest represents the request payload for recording employment income.
type CreateEmploymentsRequest struct {
	EmploymentIncome []EmploymentPayload `json:"employment_income" binding:"required,min=1,dive"`
}

// CreateEmployments handles recording employments and their payslips
// @Summary     Add employment income
// @Description Record the applicant's employments with gross pay, benefits in kind, tax and national insurance per payslip
// @Tags        employments
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Assessment ID"
// @Param       request body CreateEmploymentsRequest true "Employment income"
// @Success     200 {object} ObjectsResponse "Employments created"
// @Failure     422 {object} ErrorResponse "Invalid input or unknown assessment"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assessments/{id}/employments [post]
func (h *EmploymentHandler) CreateEmployments(c *gin.Context) {
	var req CreateEmploymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	inputs := make([]services.EmploymentInput, 0, len(req.EmploymentIncome))
	for _, e := range req.EmploymentIncome {
		in := services.EmploymentInput{Name: e.Name}
		for _, p := range e.Payments {
			paid, err := parseDate("date", p.Date)
			if err != nil {
				respondWithError(c, err)
				return
			}
			in.Payments = append(in.Payments, services.EmploymentPaymentInput{
				Date:                paid,
				Gross:               decimalValue(p.Gross),
				BenefitsInKind:      p.BenefitsInKind,
				Tax:                 decimalValue(p.Tax),
				NationalInsurance:   decimalValue(p.NationalInsurance),
				NetEmploymentIncome: decimalValue(p.NetEmploymentIncome),
			})
		}
		inputs = append(inputs, in)
	}

	employments, err := h.employmentService.CreateEmployments(c.Param("id"), inputs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithObjects(c, employments)
}
