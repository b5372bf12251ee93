package integration

import (
	"net/http"
	"testing"
)

func TestAssessmentFlow_CapitalContributionRequired(t *testing.T) {
	app := setupApp(t)

	// Step 1: Create the assessment and attach an adult applicant
	id := app.createAssessment(t, "2019-06-06")
	app.addApplicant(t, id, "1985-05-05", false)

	// Step 2: 5000 in the bank, 300 a month from employment
	app.mustPost(t, "/api/v1/assessments/"+id+"/capitals",
		`{"bank_accounts":[{"description":"Current account","value":"5000"}]}`)
	app.mustPost(t, "/api/v1/assessments/"+id+"/income",
		`{"income":[`+
			`{"source":"employment","payment_date":"2019-04-01","amount":300},`+
			`{"source":"employment","payment_date":"2019-05-01","amount":300},`+
			`{"source":"employment","payment_date":"2019-06-01","amount":300}]}`)

	// Step 3: Run the assessment
	rec := app.request("GET", "/api/v1/assessments/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)

	report := result["result"].(map[string]interface{})
	if report["assessment_result"] != "contribution_required" {
		t.Errorf("expected contribution_required, got %v", report["assessment_result"])
	}
	capitalOutcome := report["capital_outcome"].(map[string]interface{})
	if capitalOutcome["contribution"] != "2000" {
		t.Errorf("expected capital contribution 2000, got %v", capitalOutcome["contribution"])
	}
	incomeOutcome := report["income_outcome"].(map[string]interface{})
	if incomeOutcome["assessment_result"] != "eligible" {
		t.Errorf("expected income eligible, got %v", incomeOutcome["assessment_result"])
	}

	// Step 4: The stored assessment carries both summaries
	a := result["assessment"].(map[string]interface{})
	if a["assessment_result"] != "contribution_required" {
		t.Errorf("expected stored contribution_required, got %v", a["assessment_result"])
	}
	if a["capital_summary"] == nil || a["disposable_income_summary"] == nil {
		t.Fatalf("expected both summaries, got %v", a)
	}

	// Step 5: The assessment is listed
	rec = app.request("GET", "/api/v1/assessments", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if total := parseJSON(t, rec)["total_items"].(float64); total != 1 {
		t.Errorf("expected 1 assessment, got %.0f", total)
	}
}

func TestAssessmentFlow_PropertiesAndVehicles(t *testing.T) {
	app := setupApp(t)

	id := app.createAssessment(t, "2019-06-06")
	app.addApplicant(t, id, "1985-05-05", false)

	app.mustPost(t, "/api/v1/assessments/"+id+"/properties",
		`{"properties":{"main_home":{"value":150000,"outstanding_mortgage":0,"percentage_owned":100}}}`)
	app.mustPost(t, "/api/v1/assessments/"+id+"/vehicles",
		`{"vehicles":[{"value":20000,"loan_amount_outstanding":0,"date_of_purchase":"2018-01-01","in_regular_use":true}]}`)

	rec := app.request("GET", "/api/v1/assessments/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	a := parseJSON(t, rec)["assessment"].(map[string]interface{})

	properties := a["properties"].([]interface{})
	if len(properties) != 1 {
		t.Fatalf("expected 1 property, got %d", len(properties))
	}
	if v := properties[0].(map[string]interface{})["assessed_capital_value"]; v != "50000" {
		t.Errorf("expected assessed main home 50000, got %v", v)
	}

	vehicles := a["vehicles"].([]interface{})
	if len(vehicles) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(vehicles))
	}
	if v := vehicles[0].(map[string]interface{})["assessed_value"]; v != "5000" {
		t.Errorf("expected assessed vehicle 5000, got %v", v)
	}

	// A second main home is rejected
	rec = app.request("POST", "/api/v1/assessments/"+id+"/properties",
		`{"properties":{"main_home":{"value":1000,"outstanding_mortgage":0,"percentage_owned":100}}}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAssessmentFlow_Prerequisites(t *testing.T) {
	app := setupApp(t)

	t.Run("run without applicant", func(t *testing.T) {
		id := app.createAssessment(t, "2019-06-06")

		rec := app.request("GET", "/api/v1/assessments/"+id, "")
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		errs := parseJSON(t, rec)["errors"].([]interface{})
		if len(errs) != 1 || errs[0] != "No applicant for this assessment" {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("second applicant", func(t *testing.T) {
		id := app.createAssessment(t, "2019-06-06")
		app.addApplicant(t, id, "1985-05-05", false)

		rec := app.request("POST", "/api/v1/assessments/"+id+"/applicant",
			`{"applicant":{"date_of_birth":"1990-01-01","involvement_type":"applicant","has_partner_opponent":false,"receives_qualifying_benefit":false}}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})

	t.Run("applicant born in the future", func(t *testing.T) {
		id := app.createAssessment(t, "2019-06-06")

		rec := app.request("POST", "/api/v1/assessments/"+id+"/applicant",
			`{"applicant":{"date_of_birth":"2999-01-01","involvement_type":"applicant","has_partner_opponent":false,"receives_qualifying_benefit":false}}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		errs := parseJSON(t, rec)["errors"].([]interface{})
		if len(errs) != 1 || errs[0] != "Date of birth cannot be in future" {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("unknown assessment", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/assessments/0190a9c4-7d1e-7000-8000-000000000000/capitals",
			`{"bank_accounts":[{"description":"Current account","value":10}]}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		errs := parseJSON(t, rec)["errors"].([]interface{})
		if len(errs) != 1 || errs[0] != "No such assessment id" {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/nowhere", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestAssessmentFlow_EmploymentIncome(t *testing.T) {
	app := setupApp(t)

	id := app.createAssessment(t, "2019-06-06")
	app.addApplicant(t, id, "1985-05-05", false)

	payslip := func(date string) string {
		return `{"date":"` + date + `","gross":1200,"benefits_in_kind":0,"tax":-150,"national_insurance":-60,"net_employment_income":990}`
	}

	// An employment without a name rejects the whole submission
	rec := app.request("POST", "/api/v1/assessments/"+id+"/employments",
		`{"employment_income":[{"name":"Job 1","payments":[`+payslip("2019-05-31")+`]},{"payments":[`+payslip("2019-05-31")+`]}]}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	errs := parseJSON(t, rec)["errors"].([]interface{})
	if len(errs) != 1 || errs[0] != "Missing parameter name" {
		t.Errorf("unexpected errors: %v", errs)
	}

	app.mustPost(t, "/api/v1/assessments/"+id+"/employments",
		`{"employment_income":[{"name":"Job 1","payments":[`+
			payslip("2019-04-30")+`,`+payslip("2019-05-31")+`,`+payslip("2019-06-01")+`]}]}`)

	rec = app.request("GET", "/api/v1/assessments/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)

	income := result["result"].(map[string]interface{})["income"].(map[string]interface{})
	if income["employment_income"] != "1200" {
		t.Errorf("expected employment income 1200, got %v", income["employment_income"])
	}
	if income["employment_deductions"] != "210" {
		t.Errorf("expected employment deductions 210, got %v", income["employment_deductions"])
	}
	if income["total_disposable_income"] != "990" {
		t.Errorf("expected disposable income 990, got %v", income["total_disposable_income"])
	}

	a := result["assessment"].(map[string]interface{})
	if employments := a["employments"].([]interface{}); len(employments) != 1 {
		t.Errorf("expected only the valid employment to be stored, got %d", len(employments))
	}
}

func TestAssessmentFlow_RejectsInvalidAmounts(t *testing.T) {
	app := setupApp(t)
	id := app.createAssessment(t, "2019-06-06")

	tests := []struct {
		name string
		path string
		body string
		msg  string
	}{
		{"negative mortgage", "/properties",
			`{"properties":{"main_home":{"value":0,"outstanding_mortgage":-50000,"percentage_owned":100}}}`,
			"Outstanding mortgage cannot be negative"},
		{"negative loan", "/vehicles",
			`{"vehicles":[{"value":0,"loan_amount_outstanding":-7000,"date_of_purchase":"2018-01-01","in_regular_use":true}]}`,
			"Loan amount outstanding cannot be negative"},
		{"sub-penny amount", "/capitals",
			`{"bank_accounts":[{"description":"Current account","value":"100.005"}]}`,
			"Amounts cannot have more than 2 decimal places"},
		{"omitted value", "/capitals",
			`{"bank_accounts":[{"description":"Current account"}]}`,
			"Missing parameter value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/assessments/"+id+tt.path, tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
			}
			errs := parseJSON(t, rec)["errors"].([]interface{})
			if len(errs) != 1 || errs[0] != tt.msg {
				t.Errorf("expected [%s], got %v", tt.msg, errs)
			}
		})
	}
}
