package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"meansassess/internal/assessment"
	"meansassess/internal/services"
)

// IncomeHandler handles income and outgoings requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// IncomePaymentPayload is one payment received by the applicant.
type IncomePaymentPayload struct {
	Source      string           `json:"source" binding:"required,income_source"`
	PaymentDate string           `json:"payment_date" binding:"required,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number"`
}

// OutgoingPayload is one payment made by the applicant.
type OutgoingPayload struct {
	Type        string           `json:"type" binding:"required,outgoing_type"`
	PaymentDate string           `json:"payment_date" binding:"required,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number"`
}

// CreateIncomeRequest represents the request payload for recording income.
type CreateIncomeRequest struct {
	Income    []IncomePaymentPayload `json:"income" binding:"omitempty,dive"`
	Outgoings []OutgoingPayload      `json:"outgoings" binding:"omitempty,dive"`
}

// CreateIncome handles recording income payments and outgoings
// @Summary     Add income
// @Description Record payments received and regular payments made by the applicant
// @Tags        income
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Assessment ID"
// @Param       request body CreateIncomeRequest true "Income and outgoings"
// @Success     200 {object} ObjectsResponse "Income recorded"
// @Failure     422 {object} ErrorResponse "Invalid input or unknown assessment"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assessments/{id}/income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	payments := make([]services.IncomePaymentInput, 0, len(req.Income))
	for _, p := range req.Income {
		paid, err := parseDate("payment_date", p.PaymentDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		payments = append(payments, services.IncomePaymentInput{
			Source:      assessment.IncomeSource(p.Source),
			PaymentDate: paid,
			Amount:      decimalValue(p.Amount),
		})
	}

	outgoings := make([]services.OutgoingInput, 0, len(req.Outgoings))
	for _, o := range req.Outgoings {
		paid, err := parseDate("payment_date", o.PaymentDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		outgoings = append(outgoings, services.OutgoingInput{
			Type:        assessment.OutgoingType(o.Type),
			PaymentDate: paid,
			Amount:      decimalValue(o.Amount),
		})
	}

	records, err := h.incomeService.CreateIncome(c.Param("id"), payments, outgoings)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithObjects(c, []*services.IncomeRecords{records})
}
