package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"meansassess/internal/services"
)

// DependantHandler handles dependant requests.
type DependantHandler struct {
	dependantService services.DependantServicer
}

// NewDependantHandler creates a new DependantHandler.
func NewDependantHandler(dependantService services.DependantServicer) *DependantHandler {
	return &DependantHandler{dependantService: dependantService}
}

// CreateDependantsRequest represents the request payload for adding dependants.
type CreateDependantsRequest struct {
	Dependants []DependantPayload `json:"dependants" binding:"required,min=1,dive"`
}

// DependantPayload describes one dependant.
type DependantPayload struct {
	DateOfBirth         string                   `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	InFullTimeEducation *bool                    `json:"in_full_time_education" binding:"required"`
	Income              []DependantIncomePayload `json:"income" binding:"omitempty,dive"`
}

// DependantIncomePayload is one payment received by a dependant.
type DependantIncomePayload struct {
	DateOfPayment string           `json:"date_of_payment" binding:"required,datetime=2006-01-02"`
	Amount        *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number"`
}

// CreateDependants handles adding dependants to an assessment
// @Summary     Add dependants
// @Description Record the applicant's dependants and any income they receive
// @Tags        dependants
// @Accept      json
// @Produce     json
// @Param       id      path string                  true "Assessment ID"
// @Param       request body CreateDependantsRequest true "Dependants"
// @Success     200 {object} ObjectsResponse "Dependants created"
// @Failure     422 {object} ErrorResponse "Invalid input or unknown assessment"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assessments/{id}/dependants [post]
func (h *DependantHandler) CreateDependants(c *gin.Context) {
	var req CreateDependantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	inputs := make([]services.DependantInput, 0, len(req.Dependants))
	for _, d := range req.Dependants {
		dob, err := parseDate("date_of_birth", d.DateOfBirth)
		if err != nil {
			respondWithError(c, err)
			return
		}
		in := services.DependantInput{DateOfBirth: dob, InFullTimeEducation: boolValue(d.InFullTimeEducation)}
		for _, r := range d.Income {
			paid, err := parseDate("date_of_payment", r.DateOfPayment)
			if err != nil {
				respondWithError(c, err)
				return
			}
			in.Income = append(in.Income, services.DependantIncomeInput{DateOfPayment: paid, Amount: decimalValue(r.Amount)})
		}
		inputs = append(inputs, in)
	}

	dependants, err := h.dependantService.CreateDependants(c.Param("id"), inputs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithObjects(c, dependants)
}
