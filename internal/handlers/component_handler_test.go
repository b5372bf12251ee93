package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "meansassess/internal/errors"
	"meansassess/internal/models"
	"meansassess/internal/services"
)

// --- mock component services ---

type mockApplicantService struct {
	createApplicantFn func(assessmentID string, in services.ApplicantInput) (*models.Applicant, error)
}

func (m *mockApplicantService) CreateApplicant(assessmentID string, in services.ApplicantInput) (*models.Applicant, error) {
	if m.createApplicantFn != nil {
		return m.createApplicantFn(assessmentID, in)
	}
	return &models.Applicant{AssessmentID: assessmentID}, nil
}

type mockDependantService struct {
	createDependantsFn func(assessmentID string, dependants []services.DependantInput) ([]models.Dependant, error)
}

func (m *mockDependantService) CreateDependants(assessmentID string, dependants []services.DependantInput) ([]models.Dependant, error) {
	if m.createDependantsFn != nil {
		return m.createDependantsFn(assessmentID, dependants)
	}
	return []models.Dependant{}, nil
}

type mockCapitalService struct {
	createCapitalsFn   func(assessmentID string, liquid, nonLiquid []services.CapitalItemInput) ([]models.CapitalItem, error)
	createPropertiesFn func(assessmentID string, mainHome *services.PropertyInput, additional []services.PropertyInput) ([]models.Property, error)
	createVehiclesFn   func(assessmentID string, vehicles []services.VehicleInput) ([]models.Vehicle, error)
}

func (m *mockCapitalService) CreateCapitals(assessmentID string, liquid, nonLiquid []services.CapitalItemInput) ([]models.CapitalItem, error) {
	if m.createCapitalsFn != nil {
		return m.createCapitalsFn(assessmentID, liquid, nonLiquid)
	}
	return []models.CapitalItem{}, nil
}

func (m *mockCapitalService) CreateProperties(assessmentID string, mainHome *services.PropertyInput, additional []services.PropertyInput) ([]models.Property, error) {
	if m.createPropertiesFn != nil {
		return m.createPropertiesFn(assessmentID, mainHome, additional)
	}
	return []models.Property{}, nil
}

func (m *mockCapitalService) CreateVehicles(assessmentID string, vehicles []services.VehicleInput) ([]models.Vehicle, error) {
	if m.createVehiclesFn != nil {
		return m.createVehiclesFn(assessmentID, vehicles)
	}
	return []models.Vehicle{}, nil
}

type mockIncomeService struct {
	createIncomeFn func(assessmentID string, payments []services.IncomePaymentInput, outgoings []services.OutgoingInput) (*services.IncomeRecords, error)
}

func (m *mockIncomeService) CreateIncome(assessmentID string, payments []services.IncomePaymentInput, outgoings []services.OutgoingInput) (*services.IncomeRecords, error) {
	if m.createIncomeFn != nil {
		return m.createIncomeFn(assessmentID, payments, outgoings)
	}
	return &services.IncomeRecords{}, nil
}

type mockEmploymentService struct {
	createEmploymentsFn func(assessmentID string, employments []services.EmploymentInput) ([]models.Employment, error)
}

func (m *mockEmploymentService) CreateEmployments(assessmentID string, employments []services.EmploymentInput) ([]models.Employment, error) {
	if m.createEmploymentsFn != nil {
		return m.createEmploymentsFn(assessmentID, employments)
	}
	return []models.Employment{}, nil
}

// verify interface compliance
var (
	_ services.ApplicantServicer  = (*mockApplicantService)(nil)
	_ services.DependantServicer  = (*mockDependantService)(nil)
	_ services.CapitalServicer    = (*mockCapitalService)(nil)
	_ services.IncomeServicer     = (*mockIncomeService)(nil)
	_ services.EmploymentServicer = (*mockEmploymentService)(nil)
)

type componentMocks struct {
	applicant  *mockApplicantService
	dependant  *mockDependantService
	capital    *mockCapitalService
	income     *mockIncomeService
	employment *mockEmploymentService
}

func setupComponentRouter(m componentMocks) *gin.Engine {
	if m.applicant == nil {
		m.applicant = &mockApplicantService{}
	}
	if m.dependant == nil {
		m.dependant = &mockDependantService{}
	}
	if m.capital == nil {
		m.capital = &mockCapitalService{}
	}
	if m.income == nil {
		m.income = &mockIncomeService{}
	}
	if m.employment == nil {
		m.employment = &mockEmploymentService{}
	}

	applicantHandler := NewApplicantHandler(m.applicant)
	dependantHandler := NewDependantHandler(m.dependant)
	capitalHandler := NewCapitalHandler(m.capital)
	incomeHandler := NewIncomeHandler(m.income)
	employmentHandler := NewEmploymentHandler(m.employment)

	r := gin.New()
	r.POST("/assessments/:id/applicant", applicantHandler.CreateApplicant)
	r.POST("/assessments/:id/dependants", dependantHandler.CreateDependants)
	r.POST("/assessments/:id/capitals", capitalHandler.CreateCapitals)
	r.POST("/assessments/:id/properties", capitalHandler.CreateProperties)
	r.POST("/assessments/:id/vehicles", capitalHandler.CreateVehicles)
	r.POST("/assessments/:id/income", incomeHandler.CreateIncome)
	r.POST("/assessments/:id/employments", employmentHandler.CreateEmployments)
	return r
}

func TestApplicantHandler_CreateApplicant(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var got services.ApplicantInput
		svc := &mockApplicantService{
			createApplicantFn: func(id string, in services.ApplicantInput) (*models.Applicant, error) {
				got = in
				return &models.Applicant{AssessmentID: id, InvolvementType: in.InvolvementType}, nil
			},
		}
		r := setupComponentRouter(componentMocks{applicant: svc})

		rec := doRequest(r, "POST", "/assessments/abc/applicant",
			`{"applicant":{"date_of_birth":"1950-01-01","involvement_type":"applicant","has_partner_opponent":false,"receives_qualifying_benefit":true}}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		obj := firstObject(t, parseJSON(t, rec))
		if obj["involvement_type"] != "applicant" {
			t.Errorf("expected applicant, got %v", obj["involvement_type"])
		}
		if !got.ReceivesQualifyingBenefit {
			t.Error("expected qualifying benefit flag to be passed through")
		}
		if got.DateOfBirth.Year() != 1950 {
			t.Errorf("expected 1950 date of birth, got %v", got.DateOfBirth)
		}
	})

	t.Run("returns 422 on missing qualifying benefit flag", func(t *testing.T) {
		r := setupComponentRouter(componentMocks{})

		rec := doRequest(r, "POST", "/assessments/abc/applicant",
			`{"applicant":{"date_of_birth":"1950-01-01","involvement_type":"applicant","has_partner_opponent":false}}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorMessage(t, parseJSON(t, rec), "Missing parameter receives_qualifying_benefit")
	})

	t.Run("returns 422 on invalid involvement type", func(t *testing.T) {
		r := setupComponentRouter(componentMocks{})

		rec := doRequest(r, "POST", "/assessments/abc/applicant",
			`{"applicant":{"date_of_birth":"1950-01-01","involvement_type":"witness","has_partner_opponent":false,"receives_qualifying_benefit":false}}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 422 when applicant already exists", func(t *testing.T) {
		svc := &mockApplicantService{
			createApplicantFn: func(_ string, _ services.ApplicantInput) (*models.Applicant, error) {
				return nil, apperrors.ErrApplicantExists
			},
		}
		r := setupComponentRouter(componentMocks{applicant: svc})

		rec := doRequest(r, "POST", "/assessments/abc/applicant",
			`{"applicant":{"date_of_birth":"1950-01-01","involvement_type":"applicant","has_partner_opponent":false,"receives_qualifying_benefit":false}}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "APPLICANT_EXISTS")
		assertErrorMessage(t, result, "There is already an applicant for this assessment")
	})
}

func TestDependantHandler_CreateDependants(t *testing.T) {
	t.Run("returns 200 and passes income through", func(t *testing.T) {
		var got []services.DependantInput
		svc := &mockDependantService{
			createDependantsFn: func(_ string, deps []services.DependantInput) ([]models.Dependant, error) {
				got = deps
				return []models.Dependant{{InFullTimeEducation: true}}, nil
			},
		}
		r := setupComponentRouter(componentMocks{dependant: svc})

		rec := doRequest(r, "POST", "/assessments/abc/dependants",
			`{"dependants":[{"date_of_birth":"2010-02-02","in_full_time_education":true,"income":[{"date_of_payment":"2019-05-01","amount":"25.50"}]}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		firstObject(t, parseJSON(t, rec))
		if len(got) != 1 || len(got[0].Income) != 1 {
			t.Fatalf("expected 1 dependant with 1 receipt, got %+v", got)
		}
		if got[0].Income[0].Amount.String() != "25.5" {
			t.Errorf("expected amount 25.5, got %s", got[0].Income[0].Amount)
		}
	})

	t.Run("returns 422 on empty list", func(t *testing.T) {
		r := setupComponentRouter(componentMocks{})

		rec := doRequest(r, "POST", "/assessments/abc/dependants", `{"dependants":[]}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 422 on malformed income date", func(t *testing.T) {
		r := setupComponentRouter(componentMocks{})

		rec := doRequest(r, "POST", "/assessments/abc/dependants",
			`{"dependants":[{"date_of_birth":"2010-02-02","in_full_time_education":true,"income":[{"date_of_payment":"yesterday","amount":10}]}]}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestCapitalHandler_CreateCapitals(t *testing.T) {
	t.Run("returns 200 and splits liquid from non-liquid", func(t *testing.T) {
		var gotLiquid, gotNonLiquid []services.CapitalItemInput
		svc := &mockCapitalService{
			createCapitalsFn: func(_ string, liquid, nonLiquid []services.CapitalItemInput) ([]models.CapitalItem, error) {
				gotLiquid, gotNonLiquid = liquid, nonLiquid
				return []models.CapitalItem{{Type: models.CapitalItemTypeLiquid, Description: "Current account"}}, nil
			},
		}
		r := setupComponentRouter(componentMocks{capital: svc})

		rec := doRequest(r, "POST", "/assessments/abc/capitals",
			`{"bank_accounts":[{"description":"Current account","value":"1200.50"}],"non_liquid_capital":[{"description":"Shares","value":300}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		obj := firstObject(t, parseJSON(t, rec))
		if obj["description"] != "Current account" {
			t.Errorf("expected Current account, got %v", obj["description"])
		}
		if len(gotLiquid) != 1 || len(gotNonLiquid) != 1 {
			t.Fatalf("expected 1 liquid and 1 non-liquid item, got %d and %d", len(gotLiquid), len(gotNonLiquid))
		}
		if gotNonLiquid[0].Value.IntPart() != 300 {
			t.Errorf("expected 300, got %s", gotNonLiquid[0].Value)
		}
	})

	t.Run("returns 422 on missing description", func(t *testing.T) {
		r := setupComponentRouter(componentMocks{})

		rec := doRequest(r, "POST", "/assessments/abc/capitals", `{"bank_accounts":[{"value":10}]}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorMessage(t, parseJSON(t, rec), "Missing parameter description")
	})

	t.Run("returns 422 on missing value", func(t *testing.T) {
		called := false
		svc := &mockCapitalService{
			createCapitalsFn: func(_ string, _, _ []services.CapitalItemInput) ([]models.CapitalItem, error) {
				called = true
				return nil, nil
			},
		}
		r := setupComponentRouter(componentMocks{capital: svc})

		rec := doRequest(r, "POST", "/assessments/abc/capitals", `{"non_liquid_capital":[{"description":"Jewellery"}]}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorMessage(t, parseJSON(t, rec), "Missing parameter value")
		if called {
			t.Error("expected the service not to be called")
		}
	})
}

func TestCapitalHandler_CreateProperties(t *testing.T) {
	t.Run("passes main home separately", func(t *testing.T) {
		var gotMain *services.PropertyInput
		var gotAdditional []services.PropertyInput
		svc := &mockCapitalService{
			createPropertiesFn: func(_ string, mainHome *services.PropertyInput, additional []services.PropertyInput) ([]models.Property, error) {
				gotMain, gotAdditional = mainHome, additional
				return []models.Property{{MainHome: true}}, nil
			},
		}
		r := setupComponentRouter(componentMocks{capital: svc})

		rec := doRequest(r, "POST", "/assessments/abc/properties",
			`{"properties":{"main_home":{"value":500000,"outstanding_mortgage":200000,"percentage_owned":15},"additional_properties":[{"value":80000,"outstanding_mortgage":0,"percentage_owned":100}]}}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMain == nil {
			t.Fatal("expected main home")
		}
		if gotMain.PercentageOwned.IntPart() != 15 {
			t.Errorf("expected 15 percent owned, got %s", gotMain.PercentageOwned)
		}
		if len(gotAdditional) != 1 {
			t.Errorf("expected 1 additional property, got %d", len(gotAdditional))
		}
	})

	t.Run("returns service validation messages", func(t *testing.T) {
		svc := &mockCapitalService{
			createPropertiesFn: func(_ string, _ *services.PropertyInput, _ []services.PropertyInput) ([]models.Property, error) {
				return nil, apperrors.WithDetails(apperrors.ErrValidationFailed, []string{"There is already a main home for this assessment"}, nil)
			},
		}
		r := setupComponentRouter(componentMocks{capital: svc})

		rec := doRequest(r, "POST", "/assessments/abc/properties",
			`{"properties":{"main_home":{"value":1,"outstanding_mortgage":0,"percentage_owned":100}}}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "VALIDATION_FAILED")
		assertErrorMessage(t, result, "There is already a main home for this assessment")
	})

	t.Run("returns 422 on additional property without value", func(t *testing.T) {
		r := setupComponentRouter(componentMocks{})

		rec := doRequest(r, "POST", "/assessments/abc/properties",
			`{"properties":{"additional_properties":[{"outstanding_mortgage":0,"percentage_owned":100}]}}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorMessage(t, parseJSON(t, rec), "Missing parameter value")
	})
}

func TestCapitalHandler_CreateVehicles(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var got []services.VehicleInput
		svc := &mockCapitalService{
			createVehiclesFn: func(_ string, vehicles []services.VehicleInput) ([]models.Vehicle, error) {
				got = vehicles
				return []models.Vehicle{{InRegularUse: true}}, nil
			},
		}
		r := setupComponentRouter(componentMocks{capital: svc})

		rec := doRequest(r, "POST", "/assessments/abc/vehicles",
			`{"vehicles":[{"value":9000,"loan_amount_outstanding":2000,"date_of_purchase":"2017-03-01","in_regular_use":true}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(got) != 1 || !got[0].InRegularUse || got[0].UsedForMobility {
			t.Errorf("unexpected vehicle input: %+v", got)
		}
	})

	t.Run("returns 422 on missing purchase date", func(t *testing.T) {
		r := setupComponentRouter(componentMocks{})

		rec := doRequest(r, "POST", "/assessments/abc/vehicles", `{"vehicles":[{"value":9000,"in_regular_use":true}]}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorMessage(t, parseJSON(t, rec), "Missing parameter date_of_purchase")
	})

	t.Run("returns 422 on missing value", func(t *testing.T) {
		r := setupComponentRouter(componentMocks{})

		rec := doRequest(r, "POST", "/assessments/abc/vehicles",
			`{"vehicles":[{"date_of_purchase":"2017-03-01","in_regular_use":true}]}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorMessage(t, parseJSON(t, rec), "Missing parameter value")
	})
}

func TestIncomeHandler_CreateIncome(t *testing.T) {
	t.Run("returns 200 with payments and outgoings", func(t *testing.T) {
		svc := &mockIncomeService{
			createIncomeFn: func(id string, payments []services.IncomePaymentInput, outgoings []services.OutgoingInput) (*services.IncomeRecords, error) {
				records := &services.IncomeRecords{}
				for _, p := range payments {
					records.Payments = append(records.Payments, models.IncomePayment{AssessmentID: id, Source: string(p.Source), Amount: p.Amount})
				}
				for _, o := range outgoings {
					records.Outgoings = append(records.Outgoings, models.Outgoing{AssessmentID: id, Type: string(o.Type), Amount: o.Amount})
				}
				return records, nil
			},
		}
		r := setupComponentRouter(componentMocks{income: svc})

		rec := doRequest(r, "POST", "/assessments/abc/income",
			`{"income":[{"source":"employment","payment_date":"2019-05-01","amount":1500}],"outgoings":[{"type":"childcare","payment_date":"2019-05-02","amount":200}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		obj := firstObject(t, parseJSON(t, rec))
		payments := obj["income_payments"].([]interface{})
		if len(payments) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(payments))
		}
		if payments[0].(map[string]interface{})["source"] != "employment" {
			t.Errorf("expected employment, got %v", payments[0])
		}
		if outgoings := obj["outgoings"].([]interface{}); len(outgoings) != 1 {
			t.Errorf("expected 1 outgoing, got %d", len(outgoings))
		}
	})

	t.Run("returns 422 on unknown income source", func(t *testing.T) {
		r := setupComponentRouter(componentMocks{})

		rec := doRequest(r, "POST", "/assessments/abc/income",
			`{"income":[{"source":"lottery","payment_date":"2019-05-01","amount":1500}]}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorMessage(t, parseJSON(t, rec), `Invalid parameter 'source' value "lottery"`)
	})

	t.Run("returns 422 on missing amount", func(t *testing.T) {
		r := setupComponentRouter(componentMocks{})

		rec := doRequest(r, "POST", "/assessments/abc/income",
			`{"outgoings":[{"type":"childcare","payment_date":"2019-05-02"}]}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorMessage(t, parseJSON(t, rec), "Missing parameter amount")
	})

	t.Run("returns 422 on unknown assessment", func(t *testing.T) {
		svc := &mockIncomeService{
			createIncomeFn: func(_ string, _ []services.IncomePaymentInput, _ []services.OutgoingInput) (*services.IncomeRecords, error) {
				return nil, apperrors.ErrAssessmentNotFound
			},
		}
		r := setupComponentRouter(componentMocks{income: svc})

		rec := doRequest(r, "POST", "/assessments/missing/income",
			`{"outgoings":[{"type":"housing_cost","payment_date":"2019-05-02","amount":650}]}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ASSESSMENT_NOT_FOUND")
	})
}

func employmentBody(secondName string) string {
	payslip := `{"date":"2019-05-30","gross":1046.00,"benefits_in_kind":16.60,"tax":-104.10,"national_insurance":-18.66,"net_employment_income":898.84}`
	return `{"employment_income":[` +
		`{"name":"Job 1","payments":[` + payslip + `,` + payslip + `]},` +
		`{` + secondName + `"payments":[` + payslip + `]}]}`
}

func TestEmploymentHandler_CreateEmployments(t *testing.T) {
	t.Run("returns 200 and passes payslips through", func(t *testing.T) {
		var got []services.EmploymentInput
		svc := &mockEmploymentService{
			createEmploymentsFn: func(id string, employments []services.EmploymentInput) ([]models.Employment, error) {
				got = employments
				return []models.Employment{{AssessmentID: id, Name: employments[0].Name}}, nil
			},
		}
		r := setupComponentRouter(componentMocks{employment: svc})

		rec := doRequest(r, "POST", "/assessments/abc/employments", employmentBody(`"name":"Job 2",`))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		obj := firstObject(t, parseJSON(t, rec))
		if obj["name"] != "Job 1" {
			t.Errorf("expected Job 1, got %v", obj["name"])
		}
		if len(got) != 2 || len(got[0].Payments) != 2 || len(got[1].Payments) != 1 {
			t.Fatalf("unexpected employment input: %+v", got)
		}
		p := got[0].Payments[0]
		if p.Tax.String() != "-104.1" || p.NationalInsurance.String() != "-18.66" || p.BenefitsInKind.String() != "16.6" {
			t.Errorf("unexpected payslip: %+v", p)
		}
		if p.Date.Format("2006-01-02") != "2019-05-30" {
			t.Errorf("expected 2019-05-30, got %s", p.Date)
		}
	})

	t.Run("returns 422 when an employment has no name", func(t *testing.T) {
		called := false
		svc := &mockEmploymentService{
			createEmploymentsFn: func(_ string, _ []services.EmploymentInput) ([]models.Employment, error) {
				called = true
				return nil, nil
			},
		}
		r := setupComponentRouter(componentMocks{employment: svc})

		rec := doRequest(r, "POST", "/assessments/abc/employments", employmentBody(""))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		errs := result["errors"].([]interface{})
		if len(errs) != 1 || errs[0] != "Missing parameter name" {
			t.Errorf("expected only Missing parameter name, got %v", errs)
		}
		if called {
			t.Error("expected no employment to be recorded")
		}
	})

	t.Run("returns 422 on missing gross", func(t *testing.T) {
		r := setupComponentRouter(componentMocks{})

		rec := doRequest(r, "POST", "/assessments/abc/employments",
			`{"employment_income":[{"name":"Job 1","payments":[{"date":"2019-05-30","tax":0,"national_insurance":0,"net_employment_income":10}]}]}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorMessage(t, parseJSON(t, rec), "Missing parameter gross")
	})

	t.Run("returns 422 on unknown assessment", func(t *testing.T) {
		svc := &mockEmploymentService{
			createEmploymentsFn: func(_ string, _ []services.EmploymentInput) ([]models.Employment, error) {
				return nil, apperrors.ErrAssessmentNotFound
			},
		}
		r := setupComponentRouter(componentMocks{employment: svc})

		rec := doRequest(r, "POST", "/assessments/missing/employments", employmentBody(`"name":"Job 2",`))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "ASSESSMENT_NOT_FOUND")
		assertErrorMessage(t, result, "No such assessment id")
	})
}
