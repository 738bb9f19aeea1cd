package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"mortgage-planner/domain"
)

// ReportRepositoryPostgres stores comparison runs in postgres as JSON
// documents.
type ReportRepositoryPostgres struct {
	db *sql.DB
}

// NewReportRepositoryPostgres creates a postgres-backed report
// repository. The caller owns the *sql.DB.
func NewReportRepositoryPostgres(db *sql.DB) *ReportRepositoryPostgres {
	return &ReportRepositoryPostgres{db: db}
}

// Save inserts the input and report as JSON.
func (r *ReportRepositoryPostgres) Save(
	input domain.CompareInput,
	report domain.AggregateReport,
) error {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal compare input: %w", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO planner.strategy_reports (input, report, created_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)`
	if _, err := r.db.Exec(query, inputJSON, reportJSON); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}
