package domain

import "time"

// ReportableType identifies what kind of entity a report targets.
type ReportableType string

const (
	ReportableUser  ReportableType = "USER"
	ReportableGame  ReportableType = "GAME"
	ReportableVenue ReportableType = "VENUE"
)

// ReportReason categorizes why something was reported.
type ReportReason string

const (
	ReasonSpam          ReportReason = "SPAM"
	ReasonInappropriate ReportReason = "INAPPROPRIATE_BEHAVIOR"
	ReasonSafetyConcern ReportReason = "SAFETY_CONCERN"
	ReasonCheating      ReportReason = "CHEATING"
	ReasonOther         ReportReason = "OTHER"
)

// ReportStatus tracks the moderation lifecycle of a report.
type ReportStatus string

const (
	ReportStatusPending     ReportStatus = "PENDING"
	ReportStatusUnderReview ReportStatus = "UNDER_REVIEW"
	ReportStatusResolved    ReportStatus = "RESOLVED"
	ReportStatusDismissed   ReportStatus = "DISMISSED"
)

// Report represents a moderation report filed by a user.
type Report struct {
	ID             int64          `json:"id" db:"id"`
	ReporterID     int64          `json:"reporter_id" db:"reporter_id"`
	ReportableID   int64          `json:"reportable_id" db:"reportable_id"`
	ReportableType ReportableType `json:"reportable_type" db:"reportable_type"`
	Reason         ReportReason   `json:"reason" db:"reason"`
	Details        *string        `json:"details,omitempty" db:"details"`
	Status         ReportStatus   `json:"status" db:"status"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}
