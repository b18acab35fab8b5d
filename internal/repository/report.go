package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gamefinder/gamefinder/internal/domain"
)

// ReportRepository handles moderation report data access operations.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create files a report and returns it with its generated id.
func (r *ReportRepository) Create(ctx context.Context, report domain.Report) (*domain.Report, error) {
	var result domain.Report
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO reports (reporter_id, reportable_id, reportable_type, reason, details, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, reporter_id, reportable_id, reportable_type, reason, details, status, created_at, updated_at`,
		report.ReporterID, report.ReportableID, report.ReportableType, report.Reason, report.Details, report.Status,
	).StructScan(&result)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return &result, nil
}
