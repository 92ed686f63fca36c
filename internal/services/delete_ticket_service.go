package services

import (
	"context"
	"fmt"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/repositories"
)

// DeleteTicketService manages the front-desk deletion workflow. A ticket
// targets an SHG or a member; owner approval performs the deletion,
// rejection just closes the ticket.
type DeleteTicketService struct {
	tickets *repositories.DeleteTicketRepository
	shgs    *repositories.SHGRepository
	members *repositories.SHGMemberRepository
}

func NewDeleteTicketService(tickets *repositories.DeleteTicketRepository, shgs *repositories.SHGRepository, members *repositories.SHGMemberRepository) *DeleteTicketService {
	return &DeleteTicketService{tickets: tickets, shgs: shgs, members: members}
}

func (s *DeleteTicketService) Create(ctx context.Context, requestedBy int, req *models.CreateDeleteTicketRequest) (*models.DeleteTicket, error) {
	if req.TicketType != models.TicketTypeSHG && req.TicketType != models.TicketTypeSHGMember {
		return nil, fmt.Errorf("invalid ticket type: %s", req.TicketType)
	}

	// The target must exist when the ticket is raised.
	switch req.TicketType {
	case models.TicketTypeSHG:
		if _, err := s.shgs.Get(ctx, req.EntityID); err != nil {
			return nil, fmt.Errorf("shg %d not found", req.EntityID)
		}
	case models.TicketTypeSHGMember:
		if _, err := s.members.Get(ctx, req.EntityID); err != nil {
			return nil, fmt.Errorf("shg member %d not found", req.EntityID)
		}
	}

	ticket := &models.DeleteTicket{
		RequestedBy: requestedBy,
		TicketType:  req.TicketType,
		EntityID:    req.EntityID,
		Reason:      req.Reason,
		Status:      models.TicketStatusPending,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return s.tickets.Get(ctx, ticket.ID)
}

func (s *DeleteTicketService) Get(ctx context.Context, id int) (*models.DeleteTicket, error) {
	return s.tickets.Get(ctx, id)
}

func (s *DeleteTicketService) List(ctx context.Context, status string) ([]*models.DeleteTicket, error) {
	if status != "" && status != models.TicketStatusPending &&
		status != models.TicketStatusApproved && status != models.TicketStatusRejected {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}
	tickets, err := s.tickets.List(ctx, status)
	if err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []*models.DeleteTicket{}
	}
	return tickets, nil
}

// Approve executes the requested deletion and closes the ticket. The
// ticket is resolved first so a concurrent approval cannot run the
// deletion twice; the target having already vanished is not an error.
func (s *DeleteTicketService) Approve(ctx context.Context, id, approvedBy int) (*models.DeleteTicket, error) {
	ticket, err := s.tickets.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.tickets.Resolve(ctx, id, models.TicketStatusApproved, approvedBy); err != nil {
		return nil, err
	}

	switch ticket.TicketType {
	case models.TicketTypeSHG:
		err = s.shgs.Delete(ctx, ticket.EntityID)
	case models.TicketTypeSHGMember:
		err = s.members.Delete(ctx, ticket.EntityID)
	}
	if err != nil {
		return nil, fmt.Errorf("ticket %d approved but deletion failed: %w", id, err)
	}

	return s.tickets.Get(ctx, id)
}

func (s *DeleteTicketService) Reject(ctx context.Context, id, rejectedBy int) (*models.DeleteTicket, error) {
	if err := s.tickets.Resolve(ctx, id, models.TicketStatusRejected, rejectedBy); err != nil {
		return nil, err
	}
	return s.tickets.Get(ctx, id)
}
