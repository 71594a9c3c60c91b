package domain

import "time"

// ReportStatus enumerates lifecycle states for reports.
type ReportStatus string

const (
	ReportStatusDraft       ReportStatus = "DRAFT"
	ReportStatusSubmitted   ReportStatus = "SUBMITTED"
	ReportStatusUnderReview ReportStatus = "UNDER_REVIEW"
	ReportStatusApproved    ReportStatus = "APPROVED"
	ReportStatusRejected    ReportStatus = "REJECTED"
)

// Report is the aggregate for workspace reports. The lifecycle only moves
// forward; SubmittedAt is set on submission and FinalizedAt on approval or
// rejection, so approval latency is FinalizedAt minus SubmittedAt.
type Report struct {
	ID          string
	WorkspaceID string
	AuthorID    string
	TemplateID  string
	Title       string
	Body        string
	Status      ReportStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SubmittedAt *time.Time
	FinalizedAt *time.Time
}

var allowedReportTransitions = map[ReportStatus][]ReportStatus{
	ReportStatusDraft:       {ReportStatusSubmitted},
	ReportStatusSubmitted:   {ReportStatusUnderReview},
	ReportStatusUnderReview: {ReportStatusApproved, ReportStatusRejected},
	ReportStatusApproved:    {},
	ReportStatusRejected:    {},
}

// CanTransitionReport reports whether the status change is a legal forward
// move in the report lifecycle.
func CanTransitionReport(current, next ReportStatus) bool {
	for _, candidate := range allowedReportTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ApprovalTime returns the duration between submission and finalization, or
// false when either timestamp is missing.
func (r *Report) ApprovalTime() (time.Duration, bool) {
	if r.SubmittedAt == nil || r.FinalizedAt == nil {
		return 0, false
	}
	return r.FinalizedAt.Sub(*r.SubmittedAt), true
}
