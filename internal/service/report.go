package service

import (
	"context"

	"github.com/gamefinder/gamefinder/internal/domain"
)

// ReportStore defines the report data access interface consumed by ReportService.
type ReportStore interface {
	Create(ctx context.Context, report domain.Report) (*domain.Report, error)
}

// ReportService handles moderation reports.
type ReportService struct {
	reports ReportStore
}

// NewReportService creates a new ReportService.
func NewReportService(reports ReportStore) *ReportService {
	return &ReportService{reports: reports}
}

// FileReport records a report filed by a user. New reports always enter
// the queue as pending.
func (s *ReportService) FileReport(ctx context.Context, report domain.Report, reporterID int64) (*domain.Report, error) {
	report.ReporterID = reporterID
	report.Status = domain.ReportStatusPending
	return s.reports.Create(ctx, report)
}
