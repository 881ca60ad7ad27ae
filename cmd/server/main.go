package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/problemops/teamcheck/internal/assessment"
	"github.com/problemops/teamcheck/internal/database"
	"github.com/problemops/teamcheck/internal/errors"
	"github.com/problemops/teamcheck/internal/industry"
	"github.com/problemops/teamcheck/internal/ratelimit"
	"github.com/problemops/teamcheck/internal/security"
)

// createAssessmentRequest is the submission payload. Callers supply either
// the raw 35 answers or pre-aggregated driver scores.
type createAssessmentRequest struct {
	CompanyName  string                  `json:"company_name" binding:"required"`
	Email        string                  `json:"email"`
	Website      string                  `json:"website"`
	CompanyText  string                  `json:"company_text"`
	TeamName     string                  `json:"team_name"`
	TeamSize     int                     `json:"team_size" binding:"required"`
	AvgSalary    float64                 `json:"avg_salary" binding:"required"`
	Industry     string                  `json:"industry"`
	TrainingType assessment.TrainingType `json:"training_type"`
	Revenue      float64                 `json:"revenue"`
	Answers      map[int]int             `json:"answers"`
	DriverScores map[string]float64      `json:"driver_scores"`
}

type assessmentResponse struct {
	ID             string                    `json:"id"`
	CompanyName    string                    `json:"company_name"`
	Industry       string                    `json:"industry"`
	Classification *industry.Result          `json:"industry_classification,omitempty"`
	TrainingType   assessment.TrainingType   `json:"training_type"`
	Result         assessment.AnalysisResult `json:"result"`
	CreatedAt      time.Time                 `json:"created_at"`
}

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Weight tables are process-wide configuration; a bad table is a
	// startup failure, not a per-request error.
	if err := assessment.ValidateWeights(); err != nil {
		slog.Error("Invalid driver weight configuration", "error", err)
		os.Exit(1)
	}

	// Configuration from environment with defaults
	dataDir := getEnvOrDefault("DATA_DIR", "./data")
	port := getEnvOrDefault("PORT", "8080")
	ginMode := getEnvOrDefault("GIN_MODE", gin.ReleaseMode)

	gin.SetMode(ginMode)

	// Initialize database and repository
	db, err := database.NewDB(dataDir)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := database.NewRepository(db)

	// Expired assessments are swept once at startup; the retention window
	// is generous because reports link back to stored results.
	retentionDays, _ := strconv.Atoi(getEnvOrDefault("RETENTION_DAYS", "365"))
	if retentionDays > 0 {
		if n, err := repo.DeleteOldAssessments(retentionDays); err != nil {
			slog.Warn("Retention sweep failed", "error", err)
		} else if n > 0 {
			slog.Info("Retention sweep removed old assessments", "count", n, "retention_days", retentionDays)
		}
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(errors.RecoveryHandler())
	r.Use(security.Headers())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	limiter := ratelimit.NewRateLimiter(ratelimit.DefaultConfig())
	defer limiter.Close()
	r.Use(limiter.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"timestamp":     time.Now().Format(time.RFC3339),
			"version":       assessment.CostFormulaVersion,
			"database_pool": db.GetPoolStats(),
		})
	})

	api := r.Group("/api")

	// Create an assessment: aggregate, analyze, persist.
	api.POST("/assessments", func(c *gin.Context) {
		var req createAssessmentRequest
		if err := c.BindJSON(&req); err != nil {
			errors.Respond(c, errors.NewValidationError("invalid request body", err.Error()))
			return
		}
		if req.TrainingType == "" {
			req.TrainingType = assessment.TrainingNotSure
		}

		scores, err := resolveDriverScores(req)
		if err != nil {
			errors.Respond(c, errors.NewValidationError(err.Error()))
			return
		}

		// Classify industry from company text when the caller did not
		// pick one.
		var classification *industry.Result
		industryName := req.Industry
		if industryName == "" {
			res := industry.Classify(req.CompanyText)
			classification = &res
			industryName = res.Industry
		}

		result, err := assessment.Analyze(assessment.AnalysisInput{
			DriverScores: scores,
			TeamSize:     req.TeamSize,
			AvgSalary:    req.AvgSalary,
			Industry:     industryName,
			TrainingType: req.TrainingType,
			Revenue:      req.Revenue,
		})
		if err != nil {
			errors.Respond(c, errors.NewValidationError(err.Error()))
			return
		}

		rec := database.NewAssessmentRecord()
		rec.CompanyName = req.CompanyName
		rec.Email = req.Email
		rec.Website = req.Website
		rec.TeamName = req.TeamName
		rec.TeamSize = req.TeamSize
		rec.AvgSalary = req.AvgSalary
		rec.Industry = industryName
		rec.TrainingType = string(req.TrainingType)
		rec.Answers = mustJSON(req.Answers)
		rec.DriverScores = mustJSON(scores)
		rec.Result = mustJSON(result)

		if err := repo.SaveAssessment(rec); err != nil {
			errors.Respond(c, errors.NewInternalError("failed to save assessment", err))
			return
		}

		slog.Info("Assessment created",
			"id", rec.ID,
			"company", rec.CompanyName,
			"industry", industryName,
			"tcd", result.TCD.TCD)

		c.JSON(http.StatusCreated, assessmentResponse{
			ID:             rec.ID,
			CompanyName:    rec.CompanyName,
			Industry:       industryName,
			Classification: classification,
			TrainingType:   req.TrainingType,
			Result:         result,
			CreatedAt:      rec.CreatedAt,
		})
	})

	// List recent assessments, newest first.
	api.GET("/assessments", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		records, err := repo.ListRecentAssessments(limit)
		if err != nil {
			errors.Respond(c, errors.NewInternalError("failed to list assessments", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"assessments": records, "count": len(records)})
	})

	// Fetch a stored assessment by id.
	api.GET("/assessments/:id", func(c *gin.Context) {
		rec, err := repo.GetAssessment(c.Param("id"))
		if err != nil {
			if err == database.ErrNotFound {
				errors.Respond(c, errors.NewNotFoundError("assessment", c.Param("id")))
				return
			}
			errors.Respond(c, errors.NewInternalError("failed to load assessment", err))
			return
		}

		var result assessment.AnalysisResult
		if err := json.Unmarshal([]byte(rec.Result), &result); err != nil {
			errors.Respond(c, errors.NewInternalError("failed to decode stored result", err))
			return
		}

		c.JSON(http.StatusOK, assessmentResponse{
			ID:           rec.ID,
			CompanyName:  rec.CompanyName,
			Industry:     rec.Industry,
			TrainingType: assessment.TrainingType(rec.TrainingType),
			Result:       result,
			CreatedAt:    rec.CreatedAt,
		})
	})

	// Stateless cost calculation: TCDInput in, TCDResult out.
	api.POST("/calculate", func(c *gin.Context) {
		var input assessment.TCDInput
		if err := c.BindJSON(&input); err != nil {
			errors.Respond(c, errors.NewValidationError("invalid request body", err.Error()))
			return
		}

		result, err := assessment.CalculateDysfunctionCost(input)
		if err != nil {
			errors.Respond(c, errors.NewValidationError(err.Error()))
			return
		}

		c.JSON(http.StatusOK, result)
	})

	// Supported industries and training options for client pickers.
	api.GET("/industries", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"industries": assessment.MatrixIndustries()})
	})

	api.GET("/training-options", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"options": assessment.TrainingOptions})
	})

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// resolveDriverScores prefers raw answers (aggregated here) over
// pre-computed scores. Loosely-keyed score maps are normalized to the
// canonical driver ids.
func resolveDriverScores(req createAssessmentRequest) (assessment.DriverScores, error) {
	if len(req.Answers) > 0 {
		return assessment.AggregateDriverScores(req.Answers)
	}
	if len(req.DriverScores) > 0 {
		normalized := assessment.NormalizeDriverScores(req.DriverScores)
		return assessment.DriverScores{
			Trust:         normalized[assessment.DriverTrust],
			PsychSafety:   normalized[assessment.DriverPsychSafety],
			TMS:           normalized[assessment.DriverTMS],
			CommQuality:   normalized[assessment.DriverCommQuality],
			GoalClarity:   normalized[assessment.DriverGoalClarity],
			Coordination:  normalized[assessment.DriverCoordination],
			TeamCognition: normalized[assessment.DriverTeamCognition],
		}, nil
	}
	return assessment.DriverScores{}, errAnswersRequired
}

var errAnswersRequired = &validationError{"either answers or driver_scores must be supplied"}

type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
