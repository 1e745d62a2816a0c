package usecases

import (
	"context"
	"time"

	"github.com/opsportal/opsportal/internal/application/helpdesk/dto"
	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/services/markdown"
)

type TicketActionCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole
}

// TicketLifecycleUseCase moves tickets in and out of the trash and soft-deletes them.
// The two markers are independent: deleting a trashed ticket keeps trashed_at.
type TicketLifecycleUseCase struct {
	ticketRepo helpdesk.TicketRepository
	renderer   renderer
	logger     logger.Interface
}

func NewTicketLifecycleUseCase(
	ticketRepo helpdesk.TicketRepository,
	assignmentRepo helpdesk.AssignmentRepository,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *TicketLifecycleUseCase {
	return &TicketLifecycleUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer{assignmentRepo, markdownService, logger},
		logger:     logger,
	}
}

func (uc *TicketLifecycleUseCase) Trash(ctx context.Context, cmd TicketActionCommand) (*dto.TicketDTO, error) {
	t, err := uc.apply(ctx, cmd, "trash", func(t *helpdesk.Ticket) error { return t.Trash(time.Now()) })
	if err != nil {
		return nil, err
	}
	return uc.renderer.one(ctx, t)
}

func (uc *TicketLifecycleUseCase) Restore(ctx context.Context, cmd TicketActionCommand) (*dto.TicketDTO, error) {
	t, err := uc.apply(ctx, cmd, "restore", func(t *helpdesk.Ticket) error { return t.Restore() })
	if err != nil {
		return nil, err
	}
	return uc.renderer.one(ctx, t)
}

func (uc *TicketLifecycleUseCase) Delete(ctx context.Context, cmd TicketActionCommand) error {
	_, err := uc.apply(ctx, cmd, "delete", func(t *helpdesk.Ticket) error {
		t.MarkDeleted(time.Now())
		return nil
	})
	return err
}

func (uc *TicketLifecycleUseCase) apply(ctx context.Context, cmd TicketActionCommand, action string, mutate func(*helpdesk.Ticket) error) (*helpdesk.Ticket, error) {
	uc.logger.Infow("executing ticket lifecycle use case", "ticket_id", cmd.TicketID, "action", action, "actor_id", cmd.ActorID)

	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}
	if !authorization.CanHandleTicket(cmd.ActorID, cmd.ActorRole, t.UserID()) {
		return nil, errors.NewForbiddenError("not allowed to " + action + " this ticket")
	}
	if err := mutate(t); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to "+action+" ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to " + action + " ticket")
	}

	uc.logger.Infow("ticket "+action+" applied", "ticket_id", t.ID())
	return t, nil
}
