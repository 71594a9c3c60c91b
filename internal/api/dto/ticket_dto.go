package dto

import (
	"time"

	"github.com/spec-kit/workspace-hub/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject  string                `json:"subject"`
	Body     string                `json:"body"`
	Priority domain.TicketPriority `json:"priority"`
}

// UpdateTicketStatusRequest payload.
type UpdateTicketStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// TicketResponse projects a ticket for API output.
type TicketResponse struct {
	ID          string                `json:"id"`
	ExternalKey string                `json:"external_key"`
	WorkspaceID string                `json:"workspace_id"`
	RequesterID string                `json:"requester_id"`
	Subject     string                `json:"subject"`
	Body        string                `json:"body,omitempty"`
	Status      domain.TicketStatus   `json:"status"`
	Priority    domain.TicketPriority `json:"priority"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	ClosedAt    *time.Time            `json:"closed_at,omitempty"`
}

// TicketFromDomain maps a domain ticket to its response shape.
func TicketFromDomain(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		ExternalKey: ticket.ExternalKey,
		WorkspaceID: ticket.WorkspaceID,
		RequesterID: ticket.RequesterID,
		Subject:     ticket.Subject,
		Body:        ticket.Body,
		Status:      ticket.Status,
		Priority:    ticket.Priority,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
		ClosedAt:    ticket.ClosedAt,
	}
}
