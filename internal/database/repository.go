package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no assessment exists for an id.
var ErrNotFound = errors.New("assessment not found")

// Repository handles assessment persistence.
type Repository struct {
	db *DB
}

// NewRepository creates a new repository.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// SaveAssessment inserts a record.
func (r *Repository) SaveAssessment(rec *AssessmentRecord) error {
	_, err := r.db.Exec(`
		INSERT INTO assessments (
			id, company_name, email, website, team_name, team_size, avg_salary,
			industry, training_type, answers, driver_scores, result,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.CompanyName, rec.Email, rec.Website, rec.TeamName,
		rec.TeamSize, rec.AvgSalary, rec.Industry, rec.TrainingType,
		rec.Answers, rec.DriverScores, rec.Result, rec.CreatedAt, rec.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}
	return nil
}

// GetAssessment returns the record for an id, or ErrNotFound.
func (r *Repository) GetAssessment(id string) (*AssessmentRecord, error) {
	var rec AssessmentRecord
	err := r.db.QueryRow(`
		SELECT id, company_name, email, website, team_name, team_size, avg_salary,
		       industry, training_type, answers, driver_scores, result,
		       created_at, updated_at
		FROM assessments
		WHERE id = ?
	`, id).Scan(
		&rec.ID, &rec.CompanyName, &rec.Email, &rec.Website, &rec.TeamName,
		&rec.TeamSize, &rec.AvgSalary, &rec.Industry, &rec.TrainingType,
		&rec.Answers, &rec.DriverScores, &rec.Result,
		&rec.CreatedAt, &rec.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query assessment: %w", err)
	}
	return &rec, nil
}

// ListRecentAssessments returns up to limit records, newest first.
func (r *Repository) ListRecentAssessments(limit int) ([]*AssessmentRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(`
		SELECT id, company_name, email, website, team_name, team_size, avg_salary,
		       industry, training_type, answers, driver_scores, result,
		       created_at, updated_at
		FROM assessments
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var records []*AssessmentRecord
	for rows.Next() {
		var rec AssessmentRecord
		if err := rows.Scan(
			&rec.ID, &rec.CompanyName, &rec.Email, &rec.Website, &rec.TeamName,
			&rec.TeamSize, &rec.AvgSalary, &rec.Industry, &rec.TrainingType,
			&rec.Answers, &rec.DriverScores, &rec.Result,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assessments: %w", err)
	}
	return records, nil
}

// DeleteOldAssessments removes records older than the retention window.
func (r *Repository) DeleteOldAssessments(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res, err := r.db.Exec(`DELETE FROM assessments WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old assessments: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
