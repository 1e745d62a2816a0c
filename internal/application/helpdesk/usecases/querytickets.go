package usecases

import (
	"context"

	"github.com/opsportal/opsportal/internal/application/helpdesk/dto"
	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	vo "github.com/opsportal/opsportal/internal/domain/helpdesk/valueobjects"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID uint
}

type ListTicketsQuery struct {
	Status     string
	Priority   string
	ReporterID *uint
	AssignedTo *uint
	// Trashed is "" for live tickets, "only" for the trash, "with" for both.
	Trashed string
}

type GetTicketUseCase struct {
	ticketRepo helpdesk.TicketRepository
	renderer   renderer
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo helpdesk.TicketRepository,
	assignmentRepo helpdesk.AssignmentRepository,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer{assignmentRepo, markdownService, logger},
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := loadTicket(ctx, uc.ticketRepo, query.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}
	return uc.renderer.one(ctx, t)
}

type ListTicketsUseCase struct {
	ticketRepo helpdesk.TicketRepository
	renderer   renderer
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo helpdesk.TicketRepository,
	assignmentRepo helpdesk.AssignmentRepository,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer{assignmentRepo, markdownService, logger},
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	filter := helpdesk.TicketFilter{
		ReporterID: query.ReporterID,
		AssignedTo: query.AssignedTo,
	}
	if query.Status != "" {
		st, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &st
	}
	if query.Priority != "" {
		p, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &p
	}
	switch helpdesk.TrashFilter(query.Trashed) {
	case helpdesk.TrashExclude, helpdesk.TrashOnly, helpdesk.TrashInclude:
		filter.Trash = helpdesk.TrashFilter(query.Trashed)
	default:
		return nil, errors.NewValidationError("trashed must be empty, only or with")
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}
	return uc.renderer.many(ctx, tickets)
}

func loadTicket(ctx context.Context, repo helpdesk.TicketRepository, id uint, log logger.Interface) (*helpdesk.Ticket, error) {
	if id == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	t, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get ticket", "ticket_id", id, "error", err)
		return nil, errors.NewInternalError("failed to get ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}
