package usecases

import (
	"context"
	"time"

	"github.com/opsportal/opsportal/internal/application/helpdesk/dto"
	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/helpdesk"
	vo "github.com/opsportal/opsportal/internal/domain/helpdesk/valueobjects"
	"github.com/opsportal/opsportal/internal/infrastructure/email"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/db"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/services/markdown"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

// UpdateTicketCommand carries optional fields. An omitted Assignees list leaves the
// assignment untouched; a present empty list unassigns everyone.
type UpdateTicketCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole
	Title     *string
	Details   *string
	Status    *string
	Priority  *string
	Assignees utils.IDList
}

type UpdateTicketUseCase struct {
	ticketRepo     helpdesk.TicketRepository
	assignmentRepo helpdesk.AssignmentRepository
	assigner       assigner
	renderer       renderer
	markdown       markdown.MarkdownService
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo helpdesk.TicketRepository,
	assignmentRepo helpdesk.AssignmentRepository,
	userRepo directory.Repository,
	notifier email.Notifier,
	markdownService markdown.MarkdownService,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:     ticketRepo,
		assignmentRepo: assignmentRepo,
		assigner:       assigner{assignmentRepo, userRepo, notifier, logger},
		renderer:       renderer{assignmentRepo, markdownService, logger},
		markdown:       markdownService,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}
	if !authorization.CanHandleTicket(cmd.ActorID, cmd.ActorRole, t.UserID()) {
		return nil, errors.NewForbiddenError("not allowed to modify this ticket")
	}

	now := time.Now()
	if cmd.Title != nil || cmd.Details != nil {
		title, details := t.Title(), t.Details()
		if cmd.Title != nil {
			title = *cmd.Title
		}
		if cmd.Details != nil {
			details = uc.markdown.Sanitize(*cmd.Details)
		}
		if err := t.Edit(title, details, now); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Status != nil {
		st, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		_ = t.ChangeStatus(st, now)
	}
	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		_ = t.ChangePriority(p, now)
	}

	var previous, assignees []uint
	if cmd.Assignees.Present {
		if assignees, err = uc.assigner.validate(ctx, cmd.Assignees.IDs); err != nil {
			return nil, err
		}
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if cmd.Assignees.Present {
			var err error
			if previous, err = uc.assignmentRepo.ListForTicket(txCtx, t.ID()); err != nil {
				return err
			}
			if _, err := uc.assigner.replace(txCtx, t, previous, assignees, cmd.ActorID, now); err != nil {
				return err
			}
		}
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID(), "status", t.Status().String())
	if cmd.Assignees.Present {
		uc.assigner.notifyNew(ctx, t, previous, assignees)
	}
	return uc.renderer.one(ctx, t)
}
