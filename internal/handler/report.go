package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamefinder/gamefinder/internal/domain"
	"github.com/gamefinder/gamefinder/internal/service"
)

// ReportHandler handles moderation report endpoints.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// CreateReportRequest is the payload for filing a report.
type CreateReportRequest struct {
	ReportableID   int64   `json:"reportable_id" validate:"required,gt=0"`
	ReportableType string  `json:"reportable_type" validate:"required,oneof=USER GAME VENUE"`
	Reason         string  `json:"reason" validate:"required,oneof=SPAM INAPPROPRIATE_BEHAVIOR SAFETY_CONCERN CHEATING OTHER"`
	Details        *string `json:"details,omitempty"`
}

// Create files a report from the authenticated user.
func (h *ReportHandler) Create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return domain.ErrUnauthorized
	}

	var req CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidInput
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.reports.FileReport(c.Request().Context(), domain.Report{
		ReportableID:   req.ReportableID,
		ReportableType: domain.ReportableType(req.ReportableType),
		Reason:         domain.ReportReason(req.Reason),
		Details:        req.Details,
	}, user.ID)
	if err != nil {
		return err
	}

	return JSON(c, http.StatusCreated, report)
}
