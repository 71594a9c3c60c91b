package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/workspace-hub/internal/domain"
	"github.com/spec-kit/workspace-hub/internal/events"
	"github.com/spec-kit/workspace-hub/internal/repository"
)

// TicketService coordinates the support-ticket center.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Subject  string
	Body     string
	Priority domain.TicketPriority
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// Create opens a support ticket for the requester.
func (s *TicketService) Create(ctx context.Context, requester *domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		ExternalKey: generateTicketKey(),
		WorkspaceID: requester.WorkspaceID,
		RequesterID: requester.ID,
		Subject:     strings.TrimSpace(input.Subject),
		Body:        strings.TrimSpace(input.Body),
		Status:      domain.TicketStatusOpen,
		Priority:    input.Priority,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventTicketCreated,
		WorkspaceID: ticket.WorkspaceID,
		ActorID:     requester.ID,
		Payload: events.TicketCreatedPayload{
			TicketID: ticket.ID,
			Priority: ticket.Priority,
			Subject:  ticket.Subject,
		},
	})
	return ticket, nil
}

// List returns the tickets visible to the caller: members see their own,
// admins and owners see the whole workspace.
func (s *TicketService) List(ctx context.Context, caller *domain.User) ([]domain.Ticket, error) {
	if caller.Role == domain.RoleMember {
		return s.tickets.ListByRequester(ctx, caller.ID)
	}
	return s.tickets.ListByWorkspace(ctx, caller.WorkspaceID)
}

// Get fetches a ticket ensuring access.
func (s *TicketService) Get(ctx context.Context, caller *domain.User, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !canAccessTicket(caller, ticket) {
		return nil, errors.New("access denied")
	}
	return ticket, nil
}

// UpdateStatus moves a ticket through its lifecycle.
func (s *TicketService) UpdateStatus(ctx context.Context, actor *domain.User, ticketID string, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !canAccessTicket(actor, ticket) {
		return nil, errors.New("access denied")
	}
	if actor.Role == domain.RoleMember && newStatus != domain.TicketStatusClosed {
		return nil, errors.New("members can only close their tickets")
	}
	if !domain.CanTransitionTicket(ticket.Status, newStatus) {
		return nil, errors.New("invalid status transition")
	}

	oldStatus := ticket.Status
	if newStatus == domain.TicketStatusClosed {
		now := time.Now()
		ticket.ClosedAt = &now
	} else if ticket.ClosedAt != nil {
		ticket.ClosedAt = nil
	}
	ticket.Status = newStatus
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventTicketStatusChanged,
		WorkspaceID: ticket.WorkspaceID,
		ActorID:     actor.ID,
		Payload: events.TicketStatusChangedPayload{
			TicketID:  ticket.ID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return ticket, nil
}

func canAccessTicket(caller *domain.User, ticket *domain.Ticket) bool {
	if caller == nil {
		return false
	}
	if ticket.WorkspaceID != caller.WorkspaceID {
		return false
	}
	if caller.Role == domain.RoleMember {
		return ticket.RequesterID == caller.ID
	}
	return true
}

func generateTicketKey() string {
	return "TCK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
