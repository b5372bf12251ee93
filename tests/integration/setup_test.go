package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"meansassess/internal/handlers"
	"meansassess/internal/logger"
	"meansassess/internal/middleware"
	"meansassess/internal/models"
	"meansassess/internal/services"
	"meansassess/internal/threshold"
	"meansassess/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Assessment{},
		&models.Applicant{},
		&models.Dependant{},
		&models.DependantIncomeReceipt{},
		&models.CapitalItem{},
		&models.Property{},
		&models.Vehicle{},
		&models.IncomePayment{},
		&models.Outgoing{},
		&models.Employment{},
		&models.EmploymentPayment{},
		&models.CapitalSummary{},
		&models.DisposableIncomeSummary{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	thresholds, err := threshold.Default()
	if err != nil {
		t.Fatalf("failed to load thresholds: %v", err)
	}

	// Services
	assessmentService := services.NewAssessmentService(db, thresholds)
	applicantService := services.NewApplicantService(db)
	dependantService := services.NewDependantService(db)
	capitalService := services.NewCapitalService(db)
	incomeService := services.NewIncomeService(db)
	employmentService := services.NewEmploymentService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, auditService)
	applicantHandler := handlers.NewApplicantHandler(applicantService)
	dependantHandler := handlers.NewDependantHandler(dependantService)
	capitalHandler := handlers.NewCapitalHandler(capitalService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	employmentHandler := handlers.NewEmploymentHandler(employmentService)

	// Router
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())
	router.NoRoute(middleware.NoRoute())

	assessments := router.Group("/api/v1/assessments")
	assessments.POST("", assessmentHandler.CreateAssessment)
	assessments.GET("", assessmentHandler.GetAssessments)
	assessments.GET("/:id", assessmentHandler.RunAssessment)
	assessments.POST("/:id/applicant", applicantHandler.CreateApplicant)
	assessments.POST("/:id/dependants", dependantHandler.CreateDependants)
	assessments.POST("/:id/capitals", capitalHandler.CreateCapitals)
	assessments.POST("/:id/properties", capitalHandler.CreateProperties)
	assessments.POST("/:id/vehicles", capitalHandler.CreateVehicles)
	assessments.POST("/:id/income", incomeHandler.CreateIncome)
	assessments.POST("/:id/employments", employmentHandler.CreateEmployments)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// mustPost posts body and fails the test unless the response is 200.
func (app *testApp) mustPost(t *testing.T, path, body string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", path, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST %s failed: %d %s", path, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

// createAssessment creates an assessment submitted on date and returns its ID.
func (app *testApp) createAssessment(t *testing.T, date string) string {
	t.Helper()
	result := app.mustPost(t, "/api/v1/assessments",
		fmt.Sprintf(`{"client_reference_id":"psr-123","submission_date":%q,"matter_proceeding_type":"domestic_abuse"}`, date))
	objects := result["objects"].([]interface{})
	return objects[0].(map[string]interface{})["id"].(string)
}

// addApplicant attaches an applicant born on dob.
func (app *testApp) addApplicant(t *testing.T, id, dob string, passported bool) {
	t.Helper()
	app.mustPost(t, "/api/v1/assessments/"+id+"/applicant",
		fmt.Sprintf(`{"applicant":{"date_of_birth":%q,"involvement_type":"applicant","has_partner_opponent":false,"receives_qualifying_benefit":%t}}`, dob, passported))
}
