package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"meansassess/internal/config"
	"meansassess/internal/database"
	"meansassess/internal/handlers"
	"meansassess/internal/logger"
	"meansassess/internal/middleware"
	"meansassess/internal/services"
	"meansassess/internal/threshold"
	"meansassess/internal/validator"

	_ "meansassess/internal/docs" // Import swagger docs
)

// @title           Means Assessment API
// @version         1.0
// @description     Determines whether a legal aid applicant is financially eligible and what capital and income contributions apply.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	thresholds, err := loadThresholds(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load thresholds: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	assessmentService := services.NewAssessmentService(db, thresholds)
	applicantService := services.NewApplicantService(db)
	dependantService := services.NewDependantService(db)
	capitalService := services.NewCapitalService(db)
	incomeService := services.NewIncomeService(db)
	employmentService := services.NewEmploymentService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, auditService)
	applicantHandler := handlers.NewApplicantHandler(applicantService)
	dependantHandler := handlers.NewDependantHandler(dependantService)
	capitalHandler := handlers.NewCapitalHandler(capitalService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	employmentHandler := handlers.NewEmploymentHandler(employmentService)

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.NoRoute(middleware.NoRoute())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	assessments := v1.Group("/assessments")
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

	log.Infof("Starting means assessment server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// loadThresholds reads the threshold table from THRESHOLDS_FILE, falling back
// to the table bundled with the binary. A table lacking any threshold the
// calculation needs is rejected at startup.
func loadThresholds(cfg *config.Config) (*threshold.Table, error) {
	var (
		table *threshold.Table
		err   error
	)
	if cfg.ThresholdsFile == "" {
		table, err = threshold.Default()
	} else {
		logger.Get().Infof("Loading thresholds from %s", cfg.ThresholdsFile)
		table, err = threshold.LoadFile(cfg.ThresholdsFile)
	}
	if err != nil {
		return nil, err
	}

	if missing := table.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("no entries for %s", strings.Join(missing, ", "))
	}
	logger.Get().Infow("Thresholds loaded", "names", table.Names())
	return table, nil
}
