package events

import (
	"time"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReportSubmitted     EventType = "report_submitted"
	EventReportReviewStarted EventType = "report_review_started"
	EventReportFinalized     EventType = "report_finalized"
	EventTaskCompleted       EventType = "task_completed"
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	WorkspaceID string      `json:"workspace_id"`
	ActorID     string      `json:"actor_id"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ReportSubmittedPayload payload.
type ReportSubmittedPayload struct {
	ReportID   string `json:"report_id"`
	TemplateID string `json:"template_id"`
	Title      string `json:"title"`
}

// ReportFinalizedPayload payload.
type ReportFinalizedPayload struct {
	ReportID  string              `json:"report_id"`
	NewStatus domain.ReportStatus `json:"new_status"`
	Comment   string              `json:"comment,omitempty"`
}

// TaskCompletedPayload payload.
type TaskCompletedPayload struct {
	TaskID     string `json:"task_id"`
	AssigneeID string `json:"assignee_id"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID string                `json:"ticket_id"`
	Priority domain.TicketPriority `json:"priority"`
	Subject  string                `json:"subject"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  string              `json:"ticket_id"`
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}
