package database

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentRecord is a stored assessment: the submitted company info and
// answers plus the computed results payload, keyed by an opaque id.
type AssessmentRecord struct {
	ID           string    `json:"id" db:"id"`
	CompanyName  string    `json:"company_name" db:"company_name"`
	Email        string    `json:"email,omitempty" db:"email"`
	Website      string    `json:"website,omitempty" db:"website"`
	TeamName     string    `json:"team_name,omitempty" db:"team_name"`
	TeamSize     int       `json:"team_size" db:"team_size"`
	AvgSalary    float64   `json:"avg_salary" db:"avg_salary"`
	Industry     string    `json:"industry" db:"industry"`
	TrainingType string    `json:"training_type" db:"training_type"`
	Answers      string    `json:"answers,omitempty" db:"answers"`
	DriverScores string    `json:"driver_scores" db:"driver_scores"`
	Result       string    `json:"result" db:"result"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NewAssessmentRecord creates a record with a generated id and timestamps.
func NewAssessmentRecord() *AssessmentRecord {
	now := time.Now().UTC()
	return &AssessmentRecord{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
