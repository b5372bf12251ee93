package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"meansassess/internal/services"
)

// CapitalHandler handles capital, property and vehicle requests.
type CapitalHandler struct {
	capitalService services.CapitalServicer
}

// NewCapitalHandler creates a new CapitalHandler.
func NewCapitalHandler(capitalService services.CapitalServicer) *CapitalHandler {
	return &CapitalHandler{capitalService: capitalService}
}

// CapitalItemPayload is a described amount of capital.
type CapitalItemPayload struct {
	Description string           `json:"description" binding:"required,max=255"`
	Value       *decimal.Decimal `json:"value" binding:"required" swaggertype:"number"`
}

// CreateCapitalsRequest represents the request payload for recording capital.
type CreateCapitalsRequest struct {
	BankAccounts     []CapitalItemPayload `json:"bank_accounts" binding:"omitempty,dive"`
	NonLiquidCapital []CapitalItemPayload `json:"non_liquid_capital" binding:"omitempty,dive"`
}

// PropertyPayload describes one property. An omitted mortgage is zero.
type PropertyPayload struct {
	Value               *decimal.Decimal `json:"value" binding:"required" swaggertype:"number"`
	OutstandingMortgage decimal.Decimal  `json:"outstanding_mortgage" swaggertype:"number"`
	PercentageOwned     *decimal.Decimal `json:"percentage_owned" binding:"required" swaggertype:"number"`
}

// CreatePropertiesRequest represents the request payload for recording properties.
type CreatePropertiesRequest struct {
	Properties struct {
		MainHome             *PropertyPayload  `json:"main_home" binding:"omitempty"`
		AdditionalProperties []PropertyPayload `json:"additional_properties" binding:"omitempty,dive"`
	} `json:"properties" binding:"required"`
}

// VehiclePayload describes one vehicle. An omitted loan is zero.
type VehiclePayload struct {
	Value                 *decimal.Decimal `json:"value" binding:"required" swaggertype:"number"`
	LoanAmountOutstanding decimal.Decimal  `json:"loan_amount_outstanding" swaggertype:"number"`
	DateOfPurchase        string           `json:"date_of_purchase" binding:"required,datetime=2006-01-02"`
	InRegularUse          *bool            `json:"in_regular_use" binding:"required"`
	UsedForMobility       bool             `json:"used_for_mobility"`
}

// CreateVehiclesRequest represents the request payload for recording vehicles.
type CreateVehiclesRequest struct {
	Vehicles []VehiclePayload `json:"vehicles" binding:"required,min=1,dive"`
}

// CreateCapitals handles recording liquid and non-liquid capital
// @Summary     Add capital
// @Description Record bank accounts and other non-liquid capital items
// @Tags        capitals
// @Accept      json
// @Produce     json
// @Param       id      path string                true "Assessment ID"
// @Param       request body CreateCapitalsRequest true "Capital items"
// @Success     200 {object} ObjectsResponse "Capital items created"
// @Failure     422 {object} ErrorResponse "Invalid input or unknown assessment"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assessments/{id}/capitals [post]
func (h *CapitalHandler) CreateCapitals(c *gin.Context) {
	var req CreateCapitalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	items, err := h.capitalService.CreateCapitals(c.Param("id"), toCapitalItems(req.BankAccounts), toCapitalItems(req.NonLiquidCapital))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithObjects(c, items)
}

func toCapitalItems(payload []CapitalItemPayload) []services.CapitalItemInput {
	items := make([]services.CapitalItemInput, 0, len(payload))
	for _, p := range payload {
		items = append(items, services.CapitalItemInput{Description: p.Description, Value: decimalValue(p.Value)})
	}
	return items
}

// CreateProperties handles recording the main home and additional properties
// @Summary     Add properties
// @Description Record the applicant's main home and any additional properties
// @Tags        properties
// @Accept      json
// @Produce     json
// @Param       id      path string                  true "Assessment ID"
// @Param       request body CreatePropertiesRequest true "Properties"
// @Success     200 {object} ObjectsResponse "Properties created"
// @Failure     422 {object} ErrorResponse "Invalid input or unknown assessment"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assessments/{id}/properties [post]
func (h *CapitalHandler) CreateProperties(c *gin.Context) {
	var req CreatePropertiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	var mainHome *services.PropertyInput
	if p := req.Properties.MainHome; p != nil {
		in := toPropertyInput(*p)
		mainHome = &in
	}
	additional := make([]services.PropertyInput, 0, len(req.Properties.AdditionalProperties))
	for _, p := range req.Properties.AdditionalProperties {
		additional = append(additional, toPropertyInput(p))
	}

	properties, err := h.capitalService.CreateProperties(c.Param("id"), mainHome, additional)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithObjects(c, properties)
}

func toPropertyInput(p PropertyPayload) services.PropertyInput {
	return services.PropertyInput{
		Value:               decimalValue(p.Value),
		OutstandingMortgage: p.OutstandingMortgage,
		PercentageOwned:     decimalValue(p.PercentageOwned),
	}
}

// CreateVehicles handles recording vehicles
// @Summary     Add vehicles
// @Description Record the applicant's vehicles
// @Tags        vehicles
// @Accept      json
// @Produce     json
// @Param       id      path string                true "Assessment ID"
// @Param       request body CreateVehiclesRequest true "Vehicles"
// @Success     200 {object} ObjectsResponse "Vehicles created"
// @Failure     422 {object} ErrorResponse "Invalid input or unknown assessment"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assessments/{id}/vehicles [post]
func (h *CapitalHandler) CreateVehicles(c *gin.Context) {
	var req CreateVehiclesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	inputs := make([]services.VehicleInput, 0, len(req.Vehicles))
	for _, v := range req.Vehicles {
		purchased, err := parseDate("date_of_purchase", v.DateOfPurchase)
		if err != nil {
			respondWithError(c, err)
			return
		}
		inputs = append(inputs, services.VehicleInput{
			Value:                 decimalValue(v.Value),
			LoanAmountOutstanding: v.LoanAmountOutstanding,
			DateOfPurchase:        purchased,
			InRegularUse:          boolValue(v.InRegularUse),
			UsedForMobility:       v.UsedForMobility,
		})
	}

	vehicles, err := h.capitalService.CreateVehicles(c.Param("id"), inputs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithObjects(c, vehicles)
}
